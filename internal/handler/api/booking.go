package api

import (
	"errors"
	"net/http"
	"strconv"

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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Request a rental of an item for a half-open period [start, end)
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing actor"), "X-Sharer-User-Id header required", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), actorID, req)
	if err != nil {
		abortBookingError(c, err, "Create booking failed")
		return
	}

	resp, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Decide booking
// @Description Approve or reject a waiting booking; item owner only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param id path string true "Booking ID"
// @Param approved query bool true "true to approve, false to reject"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing actor"), "X-Sharer-User-Id header required", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Query parameter approved must be true or false", nil)
		return
	}

	view, err := h.cmds.Decide(c.Request.Context(), actorID, id, approved)
	if err != nil {
		abortBookingError(c, err, "Decide booking failed")
		return
	}

	resp, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get booking
// @Description Get a booking by ID; booker or item owner only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing actor"), "X-Sharer-User-Id header required", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actorID, id)
	if err != nil {
		abortBookingError(c, err, "Get booking failed")
		return
	}

	resp, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List own bookings
// @Description List bookings made by the acting user, filtered by state
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListForBooker(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing actor"), "X-Sharer-User-Id header required", nil)
		return
	}

	views, err := h.q.ListForBooker(c.Request.Context(), actorID, c.Query("state"))
	if err != nil {
		abortBookingError(c, err, "List bookings failed")
		return
	}

	resp, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List bookings of owned items
// @Description List bookings on items the acting user owns, filtered by state
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Acting user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	actorID, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing actor"), "X-Sharer-User-Id header required", nil)
		return
	}

	views, err := h.q.ListForOwner(c.Request.Context(), actorID, c.Query("state"))
	if err != nil {
		abortBookingError(c, err, "List owner bookings failed")
		return
	}

	resp, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// abortBookingError maps usecase errors to HTTP statuses. Authorization
// failures and self-booking deliberately surface as 404 so outsiders cannot
// distinguish "forbidden" from "absent".
func abortBookingError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrItemNotFound),
		errors.Is(err, errs.ErrBookingNotFound),
		errors.Is(err, errs.ErrNotAuthorized),
		errors.Is(err, errs.ErrSelfBooking):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, errs.ErrInvalidInterval),
		errors.Is(err, errs.ErrItemNotAvailable),
		errors.Is(err, errs.ErrAlreadyApproved),
		errors.Is(err, errs.ErrAlreadyRejected),
		errors.Is(err, errs.ErrUnknownState):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	case errors.Is(err, errs.ErrTimeConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Booking time conflict", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
