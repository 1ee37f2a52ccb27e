package rating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/authz"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	ratings  RatingRepository
	bookings BookingRepository
}

func NewService(ratings RatingRepository, bookings BookingRepository) *Service {
	return &Service{ratings: ratings, bookings: bookings}
}

// Create rates a finished booking. Only the booking's client may rate,
// only after the checkout date has passed, and only once per booking.
func (s *Service) Create(ctx context.Context, actor authz.Actor, bookingID int64, req RatingRequest) (*domain.Rating, error) {
	b, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(actor, authz.ActionRateBooking, b) {
		return nil, fmt.Errorf("%w: you are not allowed to rate this booking", ErrForbidden)
	}
	if today().Before(b.Checkout) {
		return nil, fmt.Errorf("%w: you can only rate a booking after the end date", ErrTooEarly)
	}

	if _, err := s.ratings.GetByUserAndBooking(ctx, actor.ID, bookingID); err == nil {
		return nil, fmt.Errorf("%w: you have already rated this booking", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rt := &domain.Rating{
		BookingID:  bookingID,
		HotelID:    b.HotelID,
		UserID:     actor.ID,
		Score:      req.Score,
		RatingDate: today(),
		Title:      req.Title,
		Comment:    req.Comment,
	}
	if err := s.ratings.Create(ctx, rt); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: you have already rated this booking", ErrConflict)
		}
		return nil, err
	}
	return rt, nil
}

func (s *Service) Update(ctx context.Context, actor authz.Actor, ratingID int64, req RatingRequest) (*domain.Rating, error) {
	rt, err := s.GetByID(ctx, ratingID)
	if err != nil {
		return nil, err
	}
	b, err := s.getBooking(ctx, rt.BookingID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(actor, authz.ActionRateBooking, b) {
		return nil, fmt.Errorf("%w: you are not allowed to rate this booking", ErrForbidden)
	}
	// Re-validated against the rating's own date, mirroring create.
	if rt.RatingDate.Before(b.Checkout) {
		return nil, fmt.Errorf("%w: you can only rate a booking after the end date", ErrTooEarly)
	}

	rt.Score = req.Score
	rt.Title = req.Title
	rt.Comment = req.Comment
	if err := s.ratings.Update(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *Service) Remove(ctx context.Context, actor authz.Actor, ratingID int64) error {
	rt, err := s.GetByID(ctx, ratingID)
	if err != nil {
		return err
	}
	b, err := s.getBooking(ctx, rt.BookingID)
	if err != nil {
		return err
	}
	if !authz.Can(actor, authz.ActionRateBooking, b) {
		return fmt.Errorf("%w: you are not allowed to delete this rating", ErrForbidden)
	}
	return s.ratings.Delete(ctx, ratingID)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Rating, error) {
	rt, err := s.ratings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: rating with id %d", ErrNotFound, id)
		}
		return nil, err
	}
	return rt, nil
}

func (s *Service) GetByHotel(ctx context.Context, hotelID int64) ([]domain.Rating, error) {
	rts, err := s.ratings.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if len(rts) == 0 {
		return nil, fmt.Errorf("%w: no ratings found for hotel with id %d", ErrNotFound, hotelID)
	}
	return rts, nil
}

func (s *Service) getBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking with id %d", ErrNotFound, bookingID)
		}
		return nil, err
	}
	return b, nil
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
