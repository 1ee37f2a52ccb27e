package rating

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.POST("/ratings/rate/:booking_id", h.Create)
	rg.GET("/ratings", h.ListByHotel)
	rg.GET("/ratings/:id", h.GetByID)
	rg.PUT("/ratings/:id", h.Update)
	rg.DELETE("/ratings/:id", h.Remove)
}

func (h *Handler) Create(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("booking_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR",
			"Rating score is required and must be between 1 and 5")
		return
	}

	rt, err := h.service.Create(c.Request.Context(), middleware.ActorFromContext(c), bookingID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toRatingResponse(rt))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := ratingID(c)
	if !ok {
		return
	}

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR",
			"Rating score is required and must be between 1 and 5")
		return
	}

	rt, err := h.service.Update(c.Request.Context(), middleware.ActorFromContext(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toRatingResponse(rt))
}

func (h *Handler) Remove(c *gin.Context) {
	id, ok := ratingID(c)
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
	id, ok := ratingID(c)
	if !ok {
		return
	}

	rt, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toRatingResponse(rt))
}

func (h *Handler) ListByHotel(c *gin.Context) {
	hotelID, err := strconv.ParseInt(c.Query("hotel_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hotel_id")
		return
	}

	rts, err := h.service.GetByHotel(c.Request.Context(), hotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]RatingResponse, 0, len(rts))
	for i := range rts {
		out = append(out, toRatingResponse(&rts[i]))
	}
	response.Success(c, http.StatusOK, out)
}

func ratingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid rating ID")
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTooEarly):
		response.Error(c, http.StatusBadRequest, "BOOKING_NOT_FINISHED", err.Error())
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusBadRequest, "UNIQUENESS_CONFLICT", err.Error())
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process rating")
	}
}
