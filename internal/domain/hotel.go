package domain

import "time"

type Hotel struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	City        string    `json:"city" validate:"required"`
	Address     string    `json:"address" validate:"required"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Description string    `json:"description,omitempty"`
	Available   bool      `json:"available"`
	OwnerID     int64     `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Owner *User `json:"owner,omitempty"`
}
