package room

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
	rg.GET("/rooms", h.ListByHotel)
	rg.GET("/rooms/get_available_rooms", h.GetAvailableRooms)
	rg.GET("/rooms/:id", h.GetByID)
	rg.POST("/rooms", h.Create)
	rg.PUT("/rooms/:id", h.Update)
	rg.DELETE("/rooms/:id", h.Remove)
}

func (h *Handler) ListByHotel(c *gin.Context) {
	hotelID, ok := queryID(c, "hotel_id")
	if !ok {
		return
	}

	rooms, err := h.service.GetByHotel(c.Request.Context(), hotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]RoomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, toRoomResponse(&rooms[i]))
	}
	response.Success(c, http.StatusOK, out)
}

// GetAvailableRooms annotates each room of the hotel with the number of
// units still free for the requested period.
func (h *Handler) GetAvailableRooms(c *gin.Context) {
	hotelID, ok := queryID(c, "hotel_id")
	if !ok {
		return
	}
	checkin := c.Query("checkin")
	checkout := c.Query("checkout")
	if checkin == "" || checkout == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "checkin and checkout query parameters are required")
		return
	}

	out, err := h.service.GetAvailableRooms(c.Request.Context(), hotelID, checkin, checkout)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	rm, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toRoomResponse(rm))
}

func (h *Handler) Create(c *gin.Context) {
	hotelID, ok := queryID(c, "hotel_id")
	if !ok {
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		return
	}

	rm, err := h.service.Create(c.Request.Context(), middleware.ActorFromContext(c), hotelID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toRoomResponse(rm))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		return
	}

	rm, err := h.service.Update(c.Request.Context(), middleware.ActorFromContext(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toRoomResponse(rm))
}

func (h *Handler) Remove(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), middleware.ActorFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return 0, false
	}
	return id, true
}

func queryID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrUniquenessConflict):
		response.Error(c, http.StatusBadRequest, "UNIQUENESS_CONFLICT", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process room")
	}
}
