package booking

import (
	"time"

	"hotelbooking/internal/domain"
)

const dateLayout = "2006-01-02"

type BookingRequest struct {
	RoomsAmount    int    `json:"rooms_amount" binding:"required,gt=0"`
	GuestsCount    int    `json:"guests_count" binding:"required,gt=0"`
	Checkin        string `json:"checkin" binding:"required"`
	Checkout       string `json:"checkout" binding:"required"`
	AdditionalInfo string `json:"additional_info"`
	HotelID        int64  `json:"hotel_id" binding:"required"`
	RoomID         int64  `json:"room_id" binding:"required"`
}

type BookingResponse struct {
	ID             int64  `json:"id"`
	HotelID        int64  `json:"hotel_id"`
	RoomID         int64  `json:"room_id"`
	ClientID       int64  `json:"client_id"`
	LastModifierID int64  `json:"last_modifier_id"`
	Checkin        string `json:"checkin"`
	Checkout       string `json:"checkout"`
	RoomsAmount    int    `json:"rooms_amount"`
	GuestsCount    int    `json:"guests_count"`
	Status         string `json:"status"`
	AdditionalInfo string `json:"additional_info,omitempty"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		HotelID:        b.HotelID,
		RoomID:         b.RoomID,
		ClientID:       b.ClientID,
		LastModifierID: b.LastModifierID,
		Checkin:        b.Checkin.Format(dateLayout),
		Checkout:       b.Checkout.Format(dateLayout),
		RoomsAmount:    b.RoomsAmount,
		GuestsCount:    b.GuestsCount,
		Status:         string(b.Status),
		AdditionalInfo: b.AdditionalInfo,
	}
}

func toBookingResponses(bs []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for i := range bs {
		out = append(out, toBookingResponse(&bs[i]))
	}
	return out
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
