package hotel

import (
	"errors"
	"net/http"
	"strconv"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/pkg/response"
	pkgvalidator "hotelbooking/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/hotels", h.List)
	rg.GET("/hotels/:id", h.GetByID)
	rg.POST("/hotels", h.Create)
	rg.PUT("/hotels/:id", h.Update)
	rg.DELETE("/hotels/:id", h.Remove)
}

func (h *Handler) Create(c *gin.Context) {
	var req HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := pkgvalidator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR",
			"Name, city and address are required", details)
		return
	}

	created, err := h.service.Create(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toHotelResponse(created, "No ratings yet"))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := hotelID(c)
	if !ok {
		return
	}

	var req HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := pkgvalidator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR",
			"Name, city and address are required", details)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), middleware.ActorFromContext(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondWithRating(c, http.StatusOK, updated)
}

func (h *Handler) Remove(c *gin.Context) {
	id, ok := hotelID(c)
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
	id, ok := hotelID(c)
	if !ok {
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondWithRating(c, http.StatusOK, found)
}

func (h *Handler) List(c *gin.Context) {
	hotels, err := h.service.GetAll(c.Request.Context(), c.Query("city"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]HotelResponse, 0, len(hotels))
	for i := range hotels {
		rating, err := h.service.RenderRating(c.Request.Context(), hotels[i].ID)
		if err != nil {
			respondError(c, err)
			return
		}
		out = append(out, toHotelResponse(&hotels[i], rating))
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) respondWithRating(c *gin.Context, status int, ht *domain.Hotel) {
	rating, err := h.service.RenderRating(c.Request.Context(), ht.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, status, toHotelResponse(ht, rating))
}

func hotelID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid hotel ID")
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process hotel")
	}
}
