package room

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
	rooms  RoomRepository
	hotels HotelRepository
}

func NewService(rooms RoomRepository, hotels HotelRepository) *Service {
	return &Service{rooms: rooms, hotels: hotels}
}

func (s *Service) GetByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	return s.rooms.ListByHotel(ctx, hotelID)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	rm, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: room with id %d", ErrNotFound, id)
		}
		return nil, err
	}
	return rm, nil
}

// GetAvailableRooms lists every room of the hotel annotated with its
// computed availability over [checkin, checkout): the room's inventory
// minus the maximum units held by any single overlapping booking.
func (s *Service) GetAvailableRooms(ctx context.Context, hotelID int64, checkinStr, checkoutStr string) ([]AvailableRoomResponse, error) {
	checkin, err := parseDate(checkinStr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid checkin %q", ErrValidation, checkinStr)
	}
	checkout, err := parseDate(checkoutStr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid checkout %q", ErrValidation, checkoutStr)
	}
	if !checkin.Before(checkout) {
		return nil, fmt.Errorf("%w: checkin %q >= checkout %q", ErrValidation, checkinStr, checkoutStr)
	}

	if _, err := s.getHotel(ctx, hotelID); err != nil {
		return nil, err
	}

	rooms, err := s.rooms.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	out := make([]AvailableRoomResponse, 0, len(rooms))
	for i := range rooms {
		available, err := s.availableCount(ctx, &rooms[i], checkin, checkout)
		if err != nil {
			return nil, err
		}
		out = append(out, AvailableRoomResponse{
			RoomResponse: toRoomResponse(&rooms[i]),
			Available:    available,
		})
	}
	return out, nil
}

func (s *Service) availableCount(ctx context.Context, rm *domain.Room, checkin, checkout time.Time) (int, error) {
	occupied, err := s.rooms.OccupiedCount(ctx, rm.ID, checkin, checkout, 0)
	if err != nil {
		return 0, err
	}
	return rm.RoomsAmount - occupied, nil
}

// Create adds a room tier to the hotel. Only the hotel's owner may
// manage rooms, and a hotel holds at most one tier per guests count.
func (s *Service) Create(ctx context.Context, actor authz.Actor, hotelID int64, req RoomRequest) (*domain.Room, error) {
	hotel, err := s.getHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(actor, authz.ActionManageRooms, hotel) {
		return nil, fmt.Errorf("%w: user %q cannot edit rooms of hotel %q", ErrForbidden, actor.Username, hotel.Name)
	}
	if err := s.checkRoomOfTypeExists(ctx, 0, hotelID, req.GuestsCount); err != nil {
		return nil, err
	}

	rm := &domain.Room{
		HotelID:     hotelID,
		GuestsCount: req.GuestsCount,
		RoomsAmount: req.RoomsAmount,
		Active:      req.Status,
	}
	if err := s.rooms.Create(ctx, rm); err != nil {
		if isUniqueViolation(err) {
			return nil, duplicateTypeError(hotelID, req.GuestsCount)
		}
		return nil, err
	}
	return rm, nil
}

func (s *Service) Update(ctx context.Context, actor authz.Actor, roomID int64, req RoomRequest) (*domain.Room, error) {
	rm, err := s.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	hotel, err := s.getHotel(ctx, rm.HotelID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(actor, authz.ActionManageRooms, hotel) {
		return nil, fmt.Errorf("%w: user %q cannot edit rooms of hotel %q", ErrForbidden, actor.Username, hotel.Name)
	}
	if err := s.checkRoomOfTypeExists(ctx, roomID, rm.HotelID, req.GuestsCount); err != nil {
		return nil, err
	}

	rm.GuestsCount = req.GuestsCount
	rm.RoomsAmount = req.RoomsAmount
	rm.Active = req.Status
	if err := s.rooms.Update(ctx, rm); err != nil {
		if isUniqueViolation(err) {
			return nil, duplicateTypeError(rm.HotelID, req.GuestsCount)
		}
		return nil, err
	}
	return rm, nil
}

func (s *Service) Remove(ctx context.Context, actor authz.Actor, roomID int64) error {
	rm, err := s.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	hotel, err := s.getHotel(ctx, rm.HotelID)
	if err != nil {
		return err
	}
	if !authz.Can(actor, authz.ActionManageRooms, hotel) {
		return fmt.Errorf("%w: user %q cannot edit rooms of hotel %q", ErrForbidden, actor.Username, hotel.Name)
	}
	return s.rooms.Delete(ctx, roomID)
}

// checkRoomOfTypeExists rejects a second room tier with the same guests
// count in the hotel. On update, the row being updated is excluded.
func (s *Service) checkRoomOfTypeExists(ctx context.Context, roomID, hotelID int64, guestsCount int) error {
	existing, err := s.rooms.GetByHotelAndGuests(ctx, hotelID, guestsCount)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != roomID {
		return duplicateTypeError(hotelID, guestsCount)
	}
	return nil
}

func (s *Service) getHotel(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: hotel with id %d", ErrNotFound, hotelID)
		}
		return nil, err
	}
	return hotel, nil
}

func duplicateTypeError(hotelID int64, guestsCount int) error {
	return fmt.Errorf("%w: room with guests count %d already exists in hotel with id %d",
		ErrUniquenessConflict, guestsCount, hotelID)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
