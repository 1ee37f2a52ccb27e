package booking

import (
	"context"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

// BookingRepository is the persistence surface the lifecycle manager
// needs. Admission methods run the capacity check and the write in one
// transaction.
type BookingRepository interface {
	CreateAdmitted(ctx context.Context, b *domain.Booking) (*repository.Admission, error)
	UpdateAdmitted(ctx context.Context, b *domain.Booking) (*repository.Admission, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	ListByClientUsername(ctx context.Context, username string) ([]domain.Booking, error)
	ListByHotelOwnerUsername(ctx context.Context, username string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
