package domain

import "time"

// Room is a capacity tier within a hotel: all physical rooms that sleep
// GuestsCount guests, with RoomsAmount units in inventory. A hotel has
// at most one Room row per guests count.
type Room struct {
	ID          int64     `json:"id"`
	HotelID     int64     `json:"hotel_id"`
	GuestsCount int       `json:"guests_count" validate:"required,gt=0"`
	RoomsAmount int       `json:"rooms_amount" validate:"required,gt=0"`
	Active      bool      `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Hotel *Hotel `json:"hotel,omitempty"`
}
