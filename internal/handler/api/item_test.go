//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
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

type ItemHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockItemCommands
	mockQueries  *queriesmock.MockItemQueries
	handler      *api.ItemHandler
}

func (s *ItemHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockItemCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockItemQueries(s.mockCtrl)
	s.handler = api.NewItemHandler(s.mockCommands, s.mockQueries)

	items := s.router.Group("/items")
	items.Use(middleware.RequireActor())
	items.POST("", s.handler.Create)
	items.GET("", s.handler.ListOwned)
	items.GET("/search", s.handler.Search)
	items.GET("/:id", s.handler.Get)
	items.PATCH("/:id", s.handler.Patch)
	items.POST("/:id/comment", s.handler.AddComment)
}

func (s *ItemHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestItemHandlerSuite(t *testing.T) {
	suite.Run(t, new(ItemHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ItemHandlerTestSuite) TestCreate() {
	url := "/items"
	actorID := uuid.New()

	ib := builder.NewItemBuilder()
	reqBody := ib.BuildCreateRequestDTO()
	returnView := ib.BuildViewQuery()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), actorID, reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, actorID)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID.String(), body["id"])
		s.NotContains(body, "ownerId", "owner is never exposed")
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		for _, field := range []string{"name", "description", "available"} {
			s.Run("missing "+field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, actorID)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 404 Not Found when no user row matches the actor", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), actorID, reqBody).
			Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, actorID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestPatch
// ================================================================================

func (s *ItemHandlerTestSuite) TestPatch() {
	actorID := uuid.New()
	itemID := uuid.New()
	url := "/items/" + itemID.String()

	name := "Renamed drill"
	reqBody := map[string]any{"name": name}

	returnView := builder.NewItemBuilder().BuildViewQuery()
	returnView.ID = itemID
	returnView.Name = name

	s.Run("success: returns 200 OK with updated view", func() {
		s.mockCommands.EXPECT().Patch(gomock.Any(), actorID, itemID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, actorID)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(name, body["name"])
	})

	s.Run("error: non-owner patch surfaces as 404", func() {
		s.mockCommands.EXPECT().Patch(gomock.Any(), actorID, itemID, gomock.Any()).
			Return(nil, errs.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, actorID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 400 Bad Request on invalid item ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/items/not-a-uuid", reqBody, actorID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestGet / TestListOwned
// ================================================================================

func (s *ItemHandlerTestSuite) TestGet() {
	actorID := uuid.New()
	itemID := uuid.New()
	url := "/items/" + itemID.String()

	detail := builder.NewItemBuilder().BuildDetailViewQuery()
	detail.ID = itemID

	s.Run("success: returns 200 OK with detail view", func() {
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), itemID, actorID).
			Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, actorID)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(itemID.String(), body["id"])
		s.NotNil(body["comments"], "comments is always a list, never null")
	})

	s.Run("error: 404 Not Found for unknown item", func() {
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), itemID, actorID).
			Return(nil, errs.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, actorID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *ItemHandlerTestSuite) TestListOwned() {
	actorID := uuid.New()

	s.Run("success: returns the owner's items with booking windows", func() {
		detail := builder.NewItemBuilder().BuildDetailViewQuery()
		detail.NextBooking = &queries.BookingRef{ID: uuid.New(), BookerID: uuid.New()}

		s.mockQueries.EXPECT().ListForOwner(gomock.Any(), actorID).
			Return([]*queries.ItemDetailView{detail}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items", nil, actorID)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.NotNil(body[0]["nextBooking"])
	})

	s.Run("error: 500 Internal Server Error on store failure", func() {
		s.mockQueries.EXPECT().ListForOwner(gomock.Any(), actorID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items", nil, actorID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}

// ================================================================================
// TestSearch
// ================================================================================

func (s *ItemHandlerTestSuite) TestSearch() {
	actorID := uuid.New()

	s.Run("success: forwards the text parameter", func() {
		view := builder.NewItemBuilder().BuildViewQuery()

		s.mockQueries.EXPECT().Search(gomock.Any(), "drill").
			Return([]*queries.ItemView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/search?text=drill", nil, actorID)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: blank text short-circuits to an empty list", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "").
			Return([]*queries.ItemView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/search", nil, actorID)

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}

// ================================================================================
// TestAddComment
// ================================================================================

func (s *ItemHandlerTestSuite) TestAddComment() {
	actorID := uuid.New()
	itemID := uuid.New()
	url := "/items/" + itemID.String() + "/comment"

	reqBody := map[string]any{"text": "Held up well"}
	returnView := &queries.CommentView{
		ID:         uuid.New(),
		Text:       "Held up well",
		AuthorName: "Taro Yamada",
		Created:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	s.Run("success: returns 200 OK with the stored comment", func() {
		s.mockCommands.EXPECT().AddComment(gomock.Any(), actorID, itemID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, actorID)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Held up well", body["text"])
		s.Equal("Taro Yamada", body["authorName"])
	})

	s.Run("error: 400 Bad Request on blank text", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"text": ""}, actorID)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps gate failures to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "no finished booking", commandsError: errs.ErrCommentWithoutBooking, expectedStatus: http.StatusBadRequest},
			{name: "unknown item", commandsError: errs.ErrItemNotFound, expectedStatus: http.StatusNotFound},
			{name: "unknown author", commandsError: errs.ErrUserNotFound, expectedStatus: http.StatusNotFound},
			{name: "invalid payload", commandsError: commands.ErrInvalidCommentPayload, expectedStatus: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddComment(gomock.Any(), actorID, itemID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, actorID)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
