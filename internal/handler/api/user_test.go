//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"shareit/internal/handler/api"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	"shareit/tests/common/testutil"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.UserHandler
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockCommands, s.mockQueries)

	// User routes carry no identity requirement
	users := s.router.Group("/users")
	users.POST("", s.handler.Create)
	users.GET("", s.handler.List)
	users.GET("/:id", s.handler.Get)
	users.PATCH("/:id", s.handler.Patch)
	users.DELETE("/:id", s.handler.Delete)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *UserHandlerTestSuite) TestCreate() {
	url := "/users"

	ub := builder.NewUserBuilder()
	reqBody := ub.BuildCreateRequestDTO()
	returnView := ub.BuildViewQuery()

	s.Run("success: returns 201 Created without identity header", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, uuid.Nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		s.Equal(returnView.Email, body["email"])
	})

	s.Run("error: 400 Bad Request on invalid payloads", func() {
		for name, mut := range map[string]func(map[string]any){
			"missing email":   testutil.Field("email", nil),
			"malformed email": testutil.Field("email", "not-an-email"),
			"missing name":    testutil.Field("name", nil),
		} {
			s.Run(name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, mut)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, uuid.Nil)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 Conflict on duplicate email", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(nil, errs.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, uuid.Nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

// ================================================================================
// TestPatch
// ================================================================================

func (s *UserHandlerTestSuite) TestPatch() {
	userID := uuid.New()
	url := "/users/" + userID.String()

	returnView := builder.NewUserBuilder().BuildViewQuery()
	returnView.ID = userID

	s.Run("success: returns 200 OK with updated view", func() {
		s.mockCommands.EXPECT().Patch(gomock.Any(), userID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"name": "Renamed"}, uuid.Nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(userID.String(), body["id"])
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "unknown user", commandsError: errs.ErrUserNotFound, expectedStatus: http.StatusNotFound},
			{name: "email taken", commandsError: errs.ErrEmailTaken, expectedStatus: http.StatusConflict},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Patch(gomock.Any(), userID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
					map[string]any{"name": "Renamed"}, uuid.Nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestGet / TestList / TestDelete
// ================================================================================

func (s *UserHandlerTestSuite) TestGet() {
	userID := uuid.New()
	url := "/users/" + userID.String()

	returnView := builder.NewUserBuilder().BuildViewQuery()
	returnView.ID = userID

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), userID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, uuid.Nil)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(userID.String(), body["id"])
	})

	s.Run("error: 404 Not Found for unknown user", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), userID).
			Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, uuid.Nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *UserHandlerTestSuite) TestList() {
	s.Run("success: returns 200 OK with all users", func() {
		views := []*queries.UserView{
			builder.NewUserBuilder().BuildViewQuery(),
			builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
				b.Name = "Jiro Sato"
				b.Email = "jiro@example.com"
			}).BuildViewQuery(),
		}

		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, uuid.Nil)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})
}

func (s *UserHandlerTestSuite) TestDelete() {
	userID := uuid.New()
	url := "/users/" + userID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), userID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, uuid.Nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown user", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), userID).
			Return(errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, uuid.Nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
