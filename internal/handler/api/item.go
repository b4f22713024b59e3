package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
)

type ItemHandler struct {
	cmds commands.ItemCommands
	q    queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{cmds: cmds, q: q}
}

// @Summary Create item
// @Description Register an item owned by the acting user
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param request body reqdto.CreateItemRequest true "Item payload"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing actor"), "X-Sharer-User-Id header required", nil)
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), actorID, req)
	if err != nil {
		abortItemError(c, err, "Create item failed")
		return
	}

	resp, err := resdto.FromItemView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Patch item
// @Description Update selected fields of an owned item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param id path string true "Item ID"
// @Param request body reqdto.PatchItemRequest true "Fields to update"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [patch]
func (h *ItemHandler) Patch(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing actor"), "X-Sharer-User-Id header required", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	var req reqdto.PatchItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Patch(c.Request.Context(), actorID, id, req)
	if err != nil {
		abortItemError(c, err, "Patch item failed")
		return
	}

	resp, err := resdto.FromItemView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get item
// @Description Get an item with comments; the owner also sees the booking window
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing actor"), "X-Sharer-User-Id header required", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	view, err := h.q.GetDetail(c.Request.Context(), id, actorID)
	if err != nil {
		abortItemError(c, err, "Get item failed")
		return
	}

	resp, err := resdto.FromItemDetailView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List own items
// @Description List items of the acting user with booking windows and comments
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Success 200 {array} resdto.ItemDetailResponse
// @Failure 400 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) ListOwned(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing actor"), "X-Sharer-User-Id header required", nil)
		return
	}

	views, err := h.q.ListForOwner(c.Request.Context(), actorID)
	if err != nil {
		abortItemError(c, err, "List items failed")
		return
	}

	resp, err := resdto.FromItemDetailViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Search items
// @Description Search available items by text; empty text yields an empty list
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param text query string true "Search text"
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	views, err := h.q.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		abortItemError(c, err, "Search items failed")
		return
	}

	resp, err := resdto.FromItemViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Comment on item
// @Description Leave a comment; requires a completed APPROVED booking by the author
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param id path string true "Item ID"
// @Param request body reqdto.CreateCommentRequest true "Comment payload"
// @Success 200 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{id}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing actor"), "X-Sharer-User-Id header required", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item ID format", nil)
		return
	}

	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.AddComment(c.Request.Context(), actorID, id, req)
	if err != nil {
		abortItemError(c, err, "Add comment failed")
		return
	}

	resp, err := resdto.FromCommentView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func abortItemError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, commands.ErrInvalidItemPayload),
		errors.Is(err, commands.ErrInvalidCommentPayload),
		errors.Is(err, errs.ErrCommentWithoutBooking):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
