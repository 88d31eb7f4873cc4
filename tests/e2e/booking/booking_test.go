//go:build e2e

package booking_test

import (
	"context"
	"net/http"
	"sync"
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
	bookingsURL      = "/api/bookings"
	ownBookingURL    = "/api/bookings/me"
	adminBookingsURL = "/api/admin/bookings/"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) candidateToken() string {
	return s.jwtHelper.GenerateToken(s.T(), dbtest.CandidateID, user.RoleCandidate)
}

func (s *BookingSuite) adminToken() string {
	return s.jwtHelper.GenerateToken(s.T(), dbtest.AdminID, user.RoleAdmin)
}

// createSlot inserts a slot directly, bypassing the API, so tests can place
// start times inside the blackout window.
func (s *BookingSuite) createSlot(startIn time.Duration, capacity int) uuid.UUID {
	s.T().Helper()

	id := uuid.New()
	start := time.Now().UTC().Add(startIn)
	_, err := s.DB.Exec(context.Background(), `
		INSERT INTO interview_slots (id, start_at, end_at, capacity, created_by)
		VALUES ($1, $2, $3, $4, $5)`,
		id, start, start.Add(time.Hour), capacity, dbtest.AdminID)
	require.NoError(s.T(), err)
	return id
}

func (s *BookingSuite) slotCounter(slotID uuid.UUID) (current int, version int64) {
	s.T().Helper()

	err := s.DB.QueryRow(context.Background(),
		`SELECT current_bookings, version FROM interview_slots WHERE id = $1`, slotID).
		Scan(&current, &version)
	require.NoError(s.T(), err)
	return current, version
}

func (s *BookingSuite) applicationStatus(userID uuid.UUID) string {
	s.T().Helper()

	var status string
	err := s.DB.QueryRow(context.Background(),
		`SELECT status FROM applications WHERE user_id = $1`, userID).Scan(&status)
	require.NoError(s.T(), err)
	return status
}

func (s *BookingSuite) claim(slotID uuid.UUID, token string) *response.BookingResponse {
	s.T().Helper()

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
		request.ClaimSlotRequest{SlotID: slotID}, token)

	var body response.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	return &body
}

func (s *BookingSuite) TestClaimSlot() {
	s.Run("candidate books an open slot", func() {
		slotID := s.createSlot(48*time.Hour, 2)

		booked := s.claim(slotID, s.candidateToken())
		s.Equal(slotID, booked.SlotID)
		s.Equal(dbtest.CandidateID, booked.CandidateID)

		current, version := s.slotCounter(slotID)
		s.Equal(1, current)
		s.Equal(int64(1), version)
		s.Equal("slot_selected", s.applicationStatus(dbtest.CandidateID))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, ownBookingURL, nil, s.candidateToken())
		var own response.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &own)
		s.Equal(booked.ID, own.ID)
	})

	s.Run("second claim by the same candidate is rejected", func() {
		first := s.createSlot(48*time.Hour, 2)
		second := s.createSlot(72*time.Hour, 2)

		s.claim(first, s.candidateToken())

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
			request.ClaimSlotRequest{SlotID: second}, s.candidateToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already have a booking")

		current, _ := s.slotCounter(second)
		s.Equal(0, current)
	})

	s.Run("full slot is rejected", func() {
		slotID := s.createSlot(48*time.Hour, 1)

		s.claim(slotID, s.candidateToken())

		otherToken := s.jwtHelper.GenerateToken(s.T(), dbtest.SecondCandidateID, user.RoleCandidate)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
			request.ClaimSlotRequest{SlotID: slotID}, otherToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "filled up")

		current, _ := s.slotCounter(slotID)
		s.Equal(1, current)
	})

	s.Run("closed slot is rejected", func() {
		slotID := s.createSlot(48*time.Hour, 2)
		_, err := s.DB.Exec(context.Background(),
			`UPDATE interview_slots SET is_open = FALSE WHERE id = $1`, slotID)
		require.NoError(s.T(), err)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
			request.ClaimSlotRequest{SlotID: slotID}, s.candidateToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "closed")
	})

	s.Run("admin cannot claim", func() {
		slotID := s.createSlot(48*time.Hour, 2)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
			request.ClaimSlotRequest{SlotID: slotID}, s.adminToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("unauthenticated request is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
			request.ClaimSlotRequest{SlotID: uuid.New()}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *BookingSuite) TestCancelBooking() {
	s.Run("cancel outside the blackout window releases the spot", func() {
		slotID := s.createSlot(48*time.Hour, 1)
		s.claim(slotID, s.candidateToken())

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, ownBookingURL, nil, s.candidateToken())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		current, version := s.slotCounter(slotID)
		s.Equal(0, current)
		s.Equal(int64(2), version)
		s.Equal("pending", s.applicationStatus(dbtest.CandidateID))

		// The released spot is claimable again.
		otherToken := s.jwtHelper.GenerateToken(s.T(), dbtest.SecondCandidateID, user.RoleCandidate)
		s.claim(slotID, otherToken)
	})

	s.Run("cancel inside the blackout window is refused", func() {
		slotID := s.createSlot(2*time.Hour, 1)
		s.claim(slotID, s.candidateToken())

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, ownBookingURL, nil, s.candidateToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Cancellation window has closed")

		current, _ := s.slotCounter(slotID)
		s.Equal(1, current)
	})

	s.Run("admin cancel bypasses the blackout window", func() {
		slotID := s.createSlot(2*time.Hour, 1)
		booked := s.claim(slotID, s.candidateToken())

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			adminBookingsURL+booked.ID.String(), nil, s.adminToken())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		current, _ := s.slotCounter(slotID)
		s.Equal(0, current)
		s.Equal("pending", s.applicationStatus(dbtest.CandidateID))
	})

	s.Run("cancel without a booking returns 404", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, ownBookingURL, nil, s.candidateToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No booking found")
	})
}

func (s *BookingSuite) TestConcurrentClaims() {
	s.Run("two candidates race for the last spot", func() {
		slotID := s.createSlot(48*time.Hour, 1)

		tokens := []string{
			s.jwtHelper.GenerateToken(s.T(), dbtest.CandidateID, user.RoleCandidate),
			s.jwtHelper.GenerateToken(s.T(), dbtest.SecondCandidateID, user.RoleCandidate),
		}

		codes := make([]int, len(tokens))
		var wg sync.WaitGroup
		for i, token := range tokens {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
					request.ClaimSlotRequest{SlotID: slotID}, token)
				codes[i] = rec.Code
			}()
		}
		wg.Wait()

		created, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		s.Equal(1, created, "exactly one claim must win, got codes %v", codes)
		s.Equal(1, conflicted, "the loser must get a conflict, got codes %v", codes)

		// Capacity is never oversubscribed.
		current, _ := s.slotCounter(slotID)
		s.Equal(1, current)

		var bookingCount int
		err := s.DB.QueryRow(context.Background(),
			`SELECT COUNT(*) FROM slot_bookings WHERE slot_id = $1`, slotID).Scan(&bookingCount)
		require.NoError(s.T(), err)
		s.Equal(1, bookingCount)
	})
}
