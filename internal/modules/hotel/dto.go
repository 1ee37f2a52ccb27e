package hotel

import "hotelbooking/internal/domain"

type HotelRequest struct {
	Name        string `json:"name" validate:"required"`
	City        string `json:"city" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	// OwnerUsername lets an admin create a hotel on behalf of another
	// user. Empty means the acting user owns the hotel.
	OwnerUsername string `json:"owner_username"`
}

type OwnerSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type HotelResponse struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	City        string        `json:"city"`
	Address     string        `json:"address"`
	Email       string        `json:"email,omitempty"`
	PhoneNumber string        `json:"phone_number,omitempty"`
	Description string        `json:"description,omitempty"`
	Available   bool          `json:"available"`
	Rating      string        `json:"rating"`
	Owner       *OwnerSummary `json:"owner,omitempty"`
}

func toHotelResponse(h *domain.Hotel, rating string) HotelResponse {
	resp := HotelResponse{
		ID:          h.ID,
		Name:        h.Name,
		City:        h.City,
		Address:     h.Address,
		Email:       h.Email,
		PhoneNumber: h.PhoneNumber,
		Description: h.Description,
		Available:   h.Available,
		Rating:      rating,
	}
	if h.Owner != nil {
		resp.Owner = &OwnerSummary{ID: h.Owner.ID, Username: h.Owner.Username}
	}
	return resp
}
