package room

import (
	"time"

	"hotelbooking/internal/domain"
)

const dateLayout = "2006-01-02"

type RoomRequest struct {
	RoomsAmount int  `json:"rooms_amount" binding:"required,gt=0"`
	GuestsCount int  `json:"guests_count" binding:"required,gt=0"`
	Status      bool `json:"status"`
}

type RoomResponse struct {
	ID          int64 `json:"id"`
	HotelID     int64 `json:"hotel_id"`
	GuestsCount int   `json:"guests_count"`
	RoomsAmount int   `json:"rooms_amount"`
	Status      bool  `json:"status"`
}

// AvailableRoomResponse is a room annotated with how many of its units
// remain free over the queried date range.
type AvailableRoomResponse struct {
	RoomResponse
	Available int `json:"available"`
}

func toRoomResponse(rm *domain.Room) RoomResponse {
	return RoomResponse{
		ID:          rm.ID,
		HotelID:     rm.HotelID,
		GuestsCount: rm.GuestsCount,
		RoomsAmount: rm.RoomsAmount,
		Status:      rm.Active,
	}
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
