package room

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, rm *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
	GetByHotelAndGuests(ctx context.Context, hotelID int64, guestsCount int) (*domain.Room, error)
	OccupiedCount(ctx context.Context, roomID int64, checkin, checkout time.Time, excludeBookingID int64) (int, error)
	Update(ctx context.Context, rm *domain.Room) error
	Delete(ctx context.Context, id int64) error
}

type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}
