package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/authz"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	users    UserRepository
	hotels   HotelRepository
	rooms    RoomRepository
}

func NewService(bookings BookingRepository, users UserRepository, hotels HotelRepository, rooms RoomRepository) *Service {
	return &Service{
		bookings: bookings,
		users:    users,
		hotels:   hotels,
		rooms:    rooms,
	}
}

// Create books rooms for targetUsername. Booking for yourself is always
// allowed; booking on behalf of someone else requires admin rights.
func (s *Service) Create(ctx context.Context, actor authz.Actor, targetUsername string, req BookingRequest) (*domain.Booking, error) {
	if targetUsername == "" {
		targetUsername = actor.Username
	}
	if targetUsername != actor.Username && !authz.Can(actor, authz.ActionBookForOther, nil) {
		return nil, fmt.Errorf("%w: user %q cannot book for %q", ErrForbidden, actor.Username, targetUsername)
	}

	checkin, checkout, err := checkDates(req.Checkin, req.Checkout)
	if err != nil {
		return nil, err
	}

	client, err := s.users.GetByUsername(ctx, targetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %q", ErrNotFound, targetUsername)
		}
		return nil, err
	}
	if !client.IsActive {
		return nil, fmt.Errorf("%w: user %q is not active", ErrInactiveParty, client.Username)
	}

	hotel, room, err := s.resolveHotelRoom(ctx, req.HotelID, req.RoomID)
	if err != nil {
		return nil, err
	}
	if !hotel.Available {
		return nil, fmt.Errorf("%w: hotel %q is not available", ErrInactiveParty, hotel.Name)
	}
	if hotel.Owner != nil && !hotel.Owner.IsActive {
		return nil, fmt.Errorf("%w: owner %q of %q is not active", ErrInactiveParty, hotel.Owner.Username, hotel.Name)
	}

	b := &domain.Booking{
		HotelID:        hotel.ID,
		RoomID:         room.ID,
		ClientID:       client.ID,
		LastModifierID: actor.ID,
		Checkin:        checkin,
		Checkout:       checkout,
		RoomsAmount:    req.RoomsAmount,
		GuestsCount:    req.GuestsCount,
		Status:         domain.BookingDraft,
		AdditionalInfo: req.AdditionalInfo,
	}

	adm, err := s.bookings.CreateAdmitted(ctx, b)
	if err != nil {
		return nil, err
	}
	if !adm.Admitted {
		return nil, fmt.Errorf("%w: hotel %q has %d rooms available, requested %d",
			ErrCapacityExceeded, hotel.Name, adm.Available, req.RoomsAmount)
	}
	return b, nil
}

// Update replaces every field of the booking while keeping its id. The
// availability check excludes the booking's own prior occupancy, so an
// unchanged request always re-admits.
func (s *Service) Update(ctx context.Context, actor authz.Actor, id int64, req BookingRequest) (*domain.Booking, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.BookingDraft {
		return nil, fmt.Errorf("%w: booking should be %s", ErrInvalidStatusTransition, domain.BookingDraft)
	}
	if !authz.Can(actor, authz.ActionModifyBooking, current) {
		return nil, fmt.Errorf("%w: user %q is not the client of booking %d", ErrForbidden, actor.Username, id)
	}
	if req.HotelID != current.HotelID {
		return nil, fmt.Errorf("%w: cannot change hotel from id=%d to id=%d", ErrValidation, current.HotelID, req.HotelID)
	}

	checkin, checkout, err := checkDates(req.Checkin, req.Checkout)
	if err != nil {
		return nil, err
	}

	hotel, room, err := s.resolveHotelRoom(ctx, req.HotelID, req.RoomID)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		ID:             current.ID,
		HotelID:        hotel.ID,
		RoomID:         room.ID,
		ClientID:       current.ClientID,
		LastModifierID: actor.ID,
		Checkin:        checkin,
		Checkout:       checkout,
		RoomsAmount:    req.RoomsAmount,
		GuestsCount:    req.GuestsCount,
		Status:         current.Status,
		AdditionalInfo: req.AdditionalInfo,
		CreatedAt:      current.CreatedAt,
	}

	adm, err := s.bookings.UpdateAdmitted(ctx, b)
	if err != nil {
		return nil, err
	}
	if !adm.Admitted {
		return nil, fmt.Errorf("%w: hotel %q has %d rooms available, requested %d",
			ErrCapacityExceeded, hotel.Name, adm.Available, req.RoomsAmount)
	}
	return b, nil
}

func (s *Service) Remove(ctx context.Context, actor authz.Actor, id int64) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.Can(actor, authz.ActionDeleteBooking, b) {
		return fmt.Errorf("%w: user %q cannot delete booking %d", ErrForbidden, actor.Username, id)
	}
	if b.Status != domain.BookingDraft {
		return fmt.Errorf("%w: booking should be %s", ErrInvalidStatusTransition, domain.BookingDraft)
	}
	return s.bookings.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking with id %d", ErrNotFound, id)
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *Service) GetByClientUsername(ctx context.Context, username string) ([]domain.Booking, error) {
	return s.bookings.ListByClientUsername(ctx, username)
}

func (s *Service) GetByHotelOwnerUsername(ctx context.Context, username string) ([]domain.Booking, error) {
	return s.bookings.ListByHotelOwnerUsername(ctx, username)
}

// Confirm moves a draft booking to confirmed.
func (s *Service) Confirm(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.setNextStatus(ctx, id, domain.BookingConfirmed)
}

// Cancel moves a draft booking to cancelled. Cancelled bookings release
// their occupancy.
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.setNextStatus(ctx, id, domain.BookingCancelled)
}

// UndoConfirm returns a confirmed booking to draft.
func (s *Service) UndoConfirm(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.undoStatus(ctx, id, domain.BookingConfirmed)
}

// UndoCancel returns a cancelled booking to draft.
func (s *Service) UndoCancel(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.undoStatus(ctx, id, domain.BookingCancelled)
}

func (s *Service) setNextStatus(ctx context.Context, id int64, next domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingDraft {
		return nil, fmt.Errorf("%w: booking should be %s", ErrInvalidStatusTransition, domain.BookingDraft)
	}
	return s.setStatus(ctx, id, next)
}

func (s *Service) undoStatus(ctx context.Context, id int64, from domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != from {
		return nil, fmt.Errorf("%w: booking should be %s", ErrInvalidStatusTransition, from)
	}
	return s.setStatus(ctx, id, domain.BookingDraft)
}

func (s *Service) setStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *Service) resolveHotelRoom(ctx context.Context, hotelID, roomID int64) (*domain.Hotel, *domain.Room, error) {
	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: hotel with id %d", ErrNotFound, hotelID)
		}
		return nil, nil, err
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: room with id %d", ErrNotFound, roomID)
		}
		return nil, nil, err
	}
	if room.HotelID != hotel.ID {
		return nil, nil, fmt.Errorf("%w: room %d does not belong to hotel %d", ErrValidation, roomID, hotelID)
	}
	if !room.Active {
		return nil, nil, fmt.Errorf("%w: room %d is not active", ErrValidation, roomID)
	}
	return hotel, room, nil
}

// checkDates parses and validates a candidate range: checkin must be
// strictly before checkout and not in the past.
func checkDates(checkinStr, checkoutStr string) (time.Time, time.Time, error) {
	checkin, err := parseDate(checkinStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid checkin %q", ErrValidation, checkinStr)
	}
	checkout, err := parseDate(checkoutStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid checkout %q", ErrValidation, checkoutStr)
	}

	if !checkin.Before(checkout) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: checkin %q >= checkout %q",
			ErrInconsistentDates, checkinStr, checkoutStr)
	}
	if checkin.Before(today()) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: checkin %q is before today", ErrPastDateBooking, checkinStr)
	}
	return checkin, checkout, nil
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
