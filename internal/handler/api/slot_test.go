//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"recruitflow/internal/domain/user"
	"recruitflow/internal/handler/api"
	resdto "recruitflow/internal/handler/dto/response"
	"recruitflow/internal/pkg/errs"
	"recruitflow/internal/usecase/commands"
	"recruitflow/internal/usecase/queries"
	"recruitflow/tests/common/builder"
	"recruitflow/tests/common/httptest"
	"recruitflow/tests/common/testutil"
	commandsmock "recruitflow/tests/mock/commands"
	queriesmock "recruitflow/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCtrl            *gomock.Controller
	mockSlotCommands    *commandsmock.MockSlotCommands
	mockBookingCommands *commandsmock.MockBookingCommands
	mockQueries         *queriesmock.MockSlotQueries
	handler             *api.SlotHandler
	adminID             uuid.UUID
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSlotCommands = commandsmock.NewMockSlotCommands(s.mockCtrl)
	s.mockBookingCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.handler = api.NewSlotHandler(s.mockSlotCommands, s.mockBookingCommands, s.mockQueries)
	s.adminID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.adminID)
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.GET("/slots", authMiddleware, s.handler.ListAvailable)
	s.router.GET("/slots/:id", authMiddleware, s.handler.GetSlot)
	s.router.POST("/admin/slots", authMiddleware, s.handler.CreateSlot)
	s.router.POST("/admin/slots/generate", authMiddleware, s.handler.GenerateSlots)
	s.router.GET("/admin/slots", authMiddleware, s.handler.ListAll)
	s.router.GET("/admin/slots/:id/bookings", authMiddleware, s.handler.Roster)
	s.router.PATCH("/admin/slots/:id", authMiddleware, s.handler.SetOpen)
	s.router.DELETE("/admin/slots/:id", authMiddleware, s.handler.DeleteSlot)
	s.router.DELETE("/admin/bookings/:id", authMiddleware, s.handler.AdminCancelBooking)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func (s *SlotHandlerTestSuite) TestListAvailable() {
	views := []*queries.SlotView{
		builder.NewSlotBuilder().BuildView(),
		builder.NewSlotBuilder().BuildView(),
	}

	s.Run("success: returns 200 OK with available slots", func() {
		s.mockQueries.EXPECT().ListAvailable(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots", nil, "bearer-token")

		var body []*resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(views[0].ID, body[0].ID)
		s.Equal(views[0].StartAt.Format("2006-01-02"), body[0].Date)
	})

	s.Run("success: empty list stays a JSON array", func() {
		s.mockQueries.EXPECT().ListAvailable(gomock.Any()).Return([]*queries.SlotView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots", nil, "bearer-token")

		var body []*resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}

func (s *SlotHandlerTestSuite) TestGetSlot() {
	view := builder.NewSlotBuilder().BuildView()

	s.Run("success: returns 200 OK with the slot", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots/"+view.ID.String(), nil, "bearer-token")

		var body resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.AvailableSpots, body.AvailableSpots)
	})

	s.Run("error: 400 Bad Request on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 Not Found for unknown slot", func() {
		unknown := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), unknown).Return(nil, errs.ErrSlotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots/"+unknown.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Slot not found")
	})
}

func (s *SlotHandlerTestSuite) TestCreateSlot() {
	url := "/admin/slots"

	slb := builder.NewSlotBuilder()
	reqBody := slb.BuildCreateRequestDTO()
	returnView := slb.BuildView()

	s.Run("success: returns 201 Created with the slot", func() {
		s.mockSlotCommands.EXPECT().CreateSlot(gomock.Any(), s.adminID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: start_at (required)", mutate: testutil.Field("start_at", nil)},
			{name: "missing field: end_at (required)", mutate: testutil.Field("end_at", nil)},
			{name: "missing field: capacity (required)", mutate: testutil.Field("capacity", nil)},
			{name: "capacity below minimum", mutate: testutil.Field("capacity", 0)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 422 on domain validation failure", func() {
		s.mockSlotCommands.EXPECT().CreateSlot(gomock.Any(), s.adminID, gomock.Any()).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}

func (s *SlotHandlerTestSuite) TestGenerateSlots() {
	url := "/admin/slots/generate"

	reqBody := builder.NewSlotBuilder().BuildGenerateRequestDTO()

	s.Run("success: returns 201 Created with counts", func() {
		s.mockSlotCommands.EXPECT().GenerateSlots(gomock.Any(), s.adminID, gomock.Any()).
			Return(&commands.GenerateSlotsResult{Created: 6, Skipped: 2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.GenerateSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(6, body.Created)
		s.Equal(2, body.Skipped)
	})

	s.Run("error: 400 Bad Request on interval out of range", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "interval below minimum", mutate: testutil.Field("interval_min", 4)},
			{name: "interval above maximum", mutate: testutil.Field("interval_min", 481)},
			{name: "missing field: interval_min (required)", mutate: testutil.Field("interval_min", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *SlotHandlerTestSuite) TestRoster() {
	slotID := uuid.New()

	s.Run("success: returns 200 OK with the roster", func() {
		items := []*queries.SlotRosterItem{
			{BookingID: uuid.New(), CandidateID: uuid.New(), CandidateName: "Taro Yamada", CandidateEmail: "taro@example.com", Confirmed: true},
		}
		s.mockQueries.EXPECT().Roster(gomock.Any(), slotID).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/slots/"+slotID.String()+"/bookings", nil, "bearer-token")

		var body []*resdto.SlotRosterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(items[0].BookingID, body[0].BookingID)
	})

	s.Run("error: 404 Not Found for unknown slot", func() {
		s.mockQueries.EXPECT().Roster(gomock.Any(), slotID).Return(nil, errs.ErrSlotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/slots/"+slotID.String()+"/bookings", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Slot not found")
	})
}

func (s *SlotHandlerTestSuite) TestSetOpen() {
	slotID := uuid.New()
	url := "/admin/slots/" + slotID.String()

	s.Run("success: closes the slot", func() {
		s.mockSlotCommands.EXPECT().SetOpen(gomock.Any(), s.adminID, slotID, false).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"is_open": false}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request when is_open is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *SlotHandlerTestSuite) TestDeleteSlot() {
	slotID := uuid.New()
	url := "/admin/slots/" + slotID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockSlotCommands.EXPECT().DeleteSlot(gomock.Any(), s.adminID, slotID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 409 Conflict when the slot has bookings", func() {
		s.mockSlotCommands.EXPECT().DeleteSlot(gomock.Any(), s.adminID, slotID).
			Return(errs.ErrSlotHasBookings).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *SlotHandlerTestSuite) TestAdminCancelBooking() {
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockBookingCommands.EXPECT().AdminCancelBooking(gomock.Any(), s.adminID, bookingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockBookingCommands.EXPECT().AdminCancelBooking(gomock.Any(), s.adminID, bookingID).
			Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
