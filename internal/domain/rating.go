package domain

import "time"

type Rating struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"booking_id"`
	HotelID    int64     `json:"hotel_id"`
	UserID     int64     `json:"user_id"`
	Score      int       `json:"rating_score" validate:"required,gte=1,lte=5"`
	RatingDate time.Time `json:"rating_date"`
	Title      string    `json:"title,omitempty"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
