package rating

import (
	"context"

	"hotelbooking/internal/domain"
)

type RatingRepository interface {
	Create(ctx context.Context, rt *domain.Rating) error
	GetByID(ctx context.Context, id int64) (*domain.Rating, error)
	GetByUserAndBooking(ctx context.Context, userID, bookingID int64) (*domain.Rating, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Rating, error)
	Update(ctx context.Context, rt *domain.Rating) error
	Delete(ctx context.Context, id int64) error
}

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
