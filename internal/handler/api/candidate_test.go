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

type CandidateHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCandidateCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.CandidateHandler
	adminID      uuid.UUID
}

func (s *CandidateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCandidateCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewCandidateHandler(s.mockCommands, s.mockQueries)
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

	s.router.POST("/admin/candidates", authMiddleware, s.handler.RegisterCandidate)
	s.router.GET("/admin/candidates", authMiddleware, s.handler.ListCandidates)
	s.router.PATCH("/admin/applications/:id/status", authMiddleware, s.handler.SetApplicationStatus)
}

func (s *CandidateHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCandidateHandlerSuite(t *testing.T) {
	suite.Run(t, new(CandidateHandlerTestSuite))
}

func (s *CandidateHandlerTestSuite) TestRegisterCandidate() {
	url := "/admin/candidates"

	reqBody := builder.NewCandidateBuilder().BuildRegisterRequestDTO()
	expectedResult := &commands.RegisterCandidateResult{UserID: uuid.New(), ApplicationID: uuid.New()}

	s.Run("success: returns 201 Created with the new IDs", func() {
		s.mockCommands.EXPECT().RegisterCandidate(gomock.Any(), s.adminID, gomock.Any()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.RegisterCandidateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expectedResult.UserID, body.UserID)
		s.Equal(expectedResult.ApplicationID, body.ApplicationID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing field: department (required)", mutate: testutil.Field("department", nil)},
			{name: "missing field: grade (required)", mutate: testutil.Field("grade", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 Conflict on duplicate email", func() {
		s.mockCommands.EXPECT().RegisterCandidate(gomock.Any(), s.adminID, gomock.Any()).
			Return(nil, errs.ErrDuplicateEmail).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *CandidateHandlerTestSuite) TestListCandidates() {
	s.Run("success: returns 200 OK with candidates", func() {
		views := []*queries.CandidateView{
			builder.NewCandidateBuilder().BuildView(),
			builder.NewCandidateBuilder().BuildView(),
		}
		s.mockQueries.EXPECT().ListCandidates(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/candidates", nil, "bearer-token")

		var body []*resdto.CandidateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(views[0].ID, body[0].ID)
	})
}

func (s *CandidateHandlerTestSuite) TestSetApplicationStatus() {
	applicationID := uuid.New()
	url := "/admin/applications/" + applicationID.String() + "/status"

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().SetApplicationStatus(gomock.Any(), s.adminID, applicationID, "interviewed").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "interviewed"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 on invalid status value", func() {
		s.mockCommands.EXPECT().SetApplicationStatus(gomock.Any(), s.adminID, applicationID, "unknown").
			Return(errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "unknown"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 404 for unknown application", func() {
		s.mockCommands.EXPECT().SetApplicationStatus(gomock.Any(), s.adminID, applicationID, "interviewed").
			Return(errs.ErrCandidateNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "interviewed"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 400 Bad Request when status is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
