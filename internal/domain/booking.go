package domain

import "time"

type BookingStatus string

const (
	BookingDraft     BookingStatus = "draft"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking consumes RoomsAmount units of one room tier for the half-open
// date range [Checkin, Checkout). Checkout day itself is not occupied.
type Booking struct {
	ID             int64         `json:"id"`
	HotelID        int64         `json:"hotel_id" validate:"required"`
	RoomID         int64         `json:"room_id" validate:"required"`
	ClientID       int64         `json:"client_id"`
	LastModifierID int64         `json:"last_modifier_id"`
	Checkin        time.Time     `json:"checkin" validate:"required"`
	Checkout       time.Time     `json:"checkout" validate:"required"`
	RoomsAmount    int           `json:"rooms_amount" validate:"required,gt=0"`
	GuestsCount    int           `json:"guests_count" validate:"required,gt=0"`
	Status         BookingStatus `json:"status"`
	AdditionalInfo string        `json:"additional_info,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	Client *User  `json:"client,omitempty"`
	Hotel  *Hotel `json:"hotel,omitempty"`
	Room   *Room  `json:"room,omitempty"`
}

// Overlaps reports whether the booking occupies any night in
// [checkin, checkout). Ranges that merely touch do not overlap.
func (b *Booking) Overlaps(checkin, checkout time.Time) bool {
	return b.Checkin.Before(checkout) && b.Checkout.After(checkin)
}
