package rating

import (
	"hotelbooking/internal/domain"
)

const dateLayout = "2006-01-02"

type RatingRequest struct {
	Score   int    `json:"rating_score" binding:"required,gte=1,lte=5"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

type RatingResponse struct {
	ID         int64  `json:"id"`
	BookingID  int64  `json:"booking_id"`
	HotelID    int64  `json:"hotel_id"`
	UserID     int64  `json:"user_id"`
	Score      int    `json:"rating_score"`
	RatingDate string `json:"rating_date"`
	Title      string `json:"title,omitempty"`
	Comment    string `json:"comment,omitempty"`
}

func toRatingResponse(rt *domain.Rating) RatingResponse {
	return RatingResponse{
		ID:         rt.ID,
		BookingID:  rt.BookingID,
		HotelID:    rt.HotelID,
		UserID:     rt.UserID,
		Score:      rt.Score,
		RatingDate: rt.RatingDate.Format(dateLayout),
		Title:      rt.Title,
		Comment:    rt.Comment,
	}
}
