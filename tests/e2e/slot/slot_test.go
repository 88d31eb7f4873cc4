//go:build e2e

package slot_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"recruitflow/internal/domain/user"
	"recruitflow/internal/handler/dto/request"
	"recruitflow/internal/handler/dto/response"
	"recruitflow/tests/common/authtest"
	"recruitflow/tests/common/dbtest"
	"recruitflow/tests/common/httptest"
	"recruitflow/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	slotsURL         = "/api/slots"
	adminSlotsURL    = "/api/admin/slots"
	generateSlotsURL = "/api/admin/slots/generate"
)

type SlotSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func (s *SlotSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func TestSlotSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SlotSuite))
}

func (s *SlotSuite) adminToken() string {
	return s.jwtHelper.GenerateToken(s.T(), dbtest.AdminID, user.RoleAdmin)
}

func (s *SlotSuite) candidateToken() string {
	return s.jwtHelper.GenerateToken(s.T(), dbtest.CandidateID, user.RoleCandidate)
}

func (s *SlotSuite) createSlot(startIn time.Duration, capacity int) *response.SlotResponse {
	s.T().Helper()

	start := time.Now().UTC().Truncate(time.Minute).Add(startIn)
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, adminSlotsURL,
		request.CreateSlotRequest{StartAt: start, EndAt: start.Add(time.Hour), Capacity: capacity},
		s.adminToken())

	var body response.SlotResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	return &body
}

func (s *SlotSuite) TestCreateSlot() {
	s.Run("admin creates a slot", func() {
		created := s.createSlot(48*time.Hour, 3)
		s.Equal(int32(3), created.Capacity)
		s.Equal(int32(3), created.AvailableSpots)
		s.True(created.IsOpen)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			slotsURL+"/"+created.ID.String(), nil, s.candidateToken())
		var fetched response.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &fetched)
		s.Equal(created.ID, fetched.ID)
	})

	s.Run("window in the past is refused", func() {
		start := time.Now().UTC().Add(-2 * time.Hour)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, adminSlotsURL,
			request.CreateSlotRequest{StartAt: start, EndAt: start.Add(time.Hour), Capacity: 3},
			s.adminToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("candidate cannot create slots", func() {
		start := time.Now().UTC().Add(48 * time.Hour)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, adminSlotsURL,
			request.CreateSlotRequest{StartAt: start, EndAt: start.Add(time.Hour), Capacity: 3},
			s.candidateToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *SlotSuite) TestGenerateSlots() {
	s.Run("working window is carved into slots", func() {
		start := time.Now().UTC().Truncate(time.Hour).Add(48 * time.Hour)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, generateSlotsURL,
			request.GenerateSlotsRequest{StartAt: start, EndAt: start.Add(3 * time.Hour), IntervalMin: 60, Capacity: 2},
			s.adminToken())

		var body response.GenerateSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(3, body.Created)
		s.Equal(0, body.Skipped)
	})

	s.Run("overlapping sub-windows are skipped, not rejected", func() {
		start := time.Now().UTC().Truncate(time.Hour).Add(48 * time.Hour)

		// Occupy the first hour of the working window.
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, adminSlotsURL,
			request.CreateSlotRequest{StartAt: start, EndAt: start.Add(time.Hour), Capacity: 2},
			s.adminToken())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, generateSlotsURL,
			request.GenerateSlotsRequest{StartAt: start, EndAt: start.Add(3 * time.Hour), IntervalMin: 60, Capacity: 2},
			s.adminToken())

		var body response.GenerateSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(2, body.Created)
		s.Equal(1, body.Skipped)
	})
}

func (s *SlotSuite) TestListAvailable() {
	s.Run("closed and full slots are hidden", func() {
		visible := s.createSlot(48*time.Hour, 2)
		closed := s.createSlot(72*time.Hour, 2)
		full := s.createSlot(96*time.Hour, 1)

		ctx := context.Background()
		_, err := s.DB.Exec(ctx, `UPDATE interview_slots SET is_open = FALSE WHERE id = $1`, closed.ID)
		require.NoError(s.T(), err)
		_, err = s.DB.Exec(ctx, `UPDATE interview_slots SET current_bookings = capacity WHERE id = $1`, full.ID)
		require.NoError(s.T(), err)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, slotsURL, nil, s.candidateToken())

		var body []*response.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(visible.ID, body[0].ID)
	})
}

func (s *SlotSuite) TestSetOpenAndDelete() {
	s.Run("admin closes and reopens a slot", func() {
		created := s.createSlot(48*time.Hour, 2)
		url := adminSlotsURL + "/" + created.ID.String()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, url,
			map[string]any{"is_open": false}, s.adminToken())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		var isOpen bool
		err := s.DB.QueryRow(context.Background(),
			`SELECT is_open FROM interview_slots WHERE id = $1`, created.ID).Scan(&isOpen)
		require.NoError(s.T(), err)
		s.False(isOpen)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, url,
			map[string]any{"is_open": true}, s.adminToken())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("slot with bookings cannot be deleted", func() {
		created := s.createSlot(48*time.Hour, 2)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings",
			request.ClaimSlotRequest{SlotID: created.ID}, s.candidateToken())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			adminSlotsURL+"/"+created.ID.String(), nil, s.adminToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("empty slot is deleted", func() {
		created := s.createSlot(48*time.Hour, 2)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			adminSlotsURL+"/"+created.ID.String(), nil, s.adminToken())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		var count int
		err := s.DB.QueryRow(context.Background(),
			`SELECT COUNT(*) FROM interview_slots WHERE id = $1`, created.ID).Scan(&count)
		require.NoError(s.T(), err)
		s.Zero(count)
	})
}

func (s *SlotSuite) TestRoster() {
	s.Run("lists the bookings on a slot", func() {
		created := s.createSlot(48*time.Hour, 2)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings",
			request.ClaimSlotRequest{SlotID: created.ID}, s.candidateToken())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			adminSlotsURL+"/"+created.ID.String()+"/bookings", nil, s.adminToken())

		var body []*response.SlotRosterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(dbtest.CandidateID, body[0].CandidateID)
	})

	s.Run("unknown slot returns 404", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			adminSlotsURL+"/"+uuid.New().String()+"/bookings", nil, s.adminToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Slot not found")
	})
}
