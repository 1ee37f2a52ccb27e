package booking

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/list", h.List)
	rg.GET("/bookings/list_my_bookings", h.ListMy)
	rg.GET("/bookings/list_my_hotels_bookings", h.ListMyHotels)
	rg.GET("/bookings/:id", h.GetByID)
	rg.POST("/bookings", h.Create)
	rg.POST("/bookings/create_for_user", h.CreateForUser)
	rg.PUT("/bookings/:id", h.Update)
	rg.DELETE("/bookings/:id", h.Remove)
	rg.POST("/bookings/:id/confirm", h.Confirm)
	rg.POST("/bookings/:id/cancel", h.Cancel)
	rg.POST("/bookings/:id/undo-confirm", h.UndoConfirm)
	rg.POST("/bookings/:id/undo-cancel", h.UndoCancel)
}

func (h *Handler) Create(c *gin.Context) {
	h.create(c, "")
}

// CreateForUser books on behalf of the user named in the query string.
// The service rejects non-admin callers.
func (h *Handler) CreateForUser(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "username query parameter is required")
		return
	}
	h.create(c, username)
}

func (h *Handler) create(c *gin.Context, targetUsername string) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		return
	}

	b, err := h.service.Create(c.Request.Context(), middleware.ActorFromContext(c), targetUsername, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toBookingResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		return
	}

	b, err := h.service.Update(c.Request.Context(), middleware.ActorFromContext(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toBookingResponse(b))
}

func (h *Handler) Remove(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	bs, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toBookingResponses(bs))
}

func (h *Handler) ListMy(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	bs, err := h.service.GetByClientUsername(c.Request.Context(), actor.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toBookingResponses(bs))
}

func (h *Handler) ListMyHotels(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	bs, err := h.service.GetByHotelOwnerUsername(c.Request.Context(), actor.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toBookingResponses(bs))
}

func (h *Handler) Confirm(c *gin.Context) {
	h.setStatus(c, h.service.Confirm)
}

func (h *Handler) Cancel(c *gin.Context) {
	h.setStatus(c, h.service.Cancel)
}

func (h *Handler) UndoConfirm(c *gin.Context) {
	h.setStatus(c, h.service.UndoConfirm)
}

func (h *Handler) UndoCancel(c *gin.Context) {
	h.setStatus(c, h.service.UndoCancel)
}

func (h *Handler) setStatus(c *gin.Context, op func(ctx context.Context, id int64) (*domain.Booking, error)) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := op(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toBookingResponse(b))
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInconsistentDates):
		response.Error(c, http.StatusBadRequest, "INCONSISTENT_DATES", err.Error())
	case errors.Is(err, ErrPastDateBooking):
		response.Error(c, http.StatusBadRequest, "PAST_DATE_BOOKING", err.Error())
	case errors.Is(err, ErrCapacityExceeded):
		response.Error(c, http.StatusBadRequest, "CAPACITY_EXCEEDED", err.Error())
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS_TRANSITION", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, ErrInactiveParty):
		// Inactive parties surface as a server error, not a 4xx.
		response.Error(c, http.StatusInternalServerError, "INACTIVE_PARTY", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process booking")
	}
}
