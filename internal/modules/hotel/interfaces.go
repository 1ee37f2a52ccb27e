package hotel

import (
	"context"

	"hotelbooking/internal/domain"
)

type HotelRepository interface {
	Create(ctx context.Context, h *domain.Hotel) error
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	List(ctx context.Context) ([]domain.Hotel, error)
	ListByCity(ctx context.Context, city string) ([]domain.Hotel, error)
	Update(ctx context.Context, h *domain.Hotel) error
	Delete(ctx context.Context, id int64) error
}

type RatingRepository interface {
	AverageForHotel(ctx context.Context, hotelID int64) (float64, int64, error)
}

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
