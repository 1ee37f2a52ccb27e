package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	HotelID     int64     `gorm:"column:hotel_id;uniqueIndex:idx_hotel_guests"`
	GuestsCount int       `gorm:"column:guests_count;uniqueIndex:idx_hotel_guests"`
	RoomsAmount int       `gorm:"column:rooms_amount"`
	Active      bool      `gorm:"column:active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:          m.ID,
		HotelID:     m.HotelID,
		GuestsCount: m.GuestsCount,
		RoomsAmount: m.RoomsAmount,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toRoomModel(rm *domain.Room) roomModel {
	return roomModel{
		ID:          rm.ID,
		HotelID:     rm.HotelID,
		GuestsCount: rm.GuestsCount,
		RoomsAmount: rm.RoomsAmount,
		Active:      rm.Active,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, rm *domain.Room) error {
	m := toRoomModel(rm)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rm = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var ms []roomModel
	tx := r.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Order("guests_count").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

// GetByHotelAndGuests returns the room tier for the guests count, or
// gorm.ErrRecordNotFound when the hotel has no such tier.
func (r *RoomRepository) GetByHotelAndGuests(ctx context.Context, hotelID int64, guestsCount int) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).
		Where("hotel_id = ? AND guests_count = ?", hotelID, guestsCount).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

// OccupiedCount computes the capacity already committed for the room
// over [checkin, checkout). Pass excludeBookingID > 0 to leave one
// booking out of the count, e.g. the booking being updated.
func (r *RoomRepository) OccupiedCount(ctx context.Context, roomID int64, checkin, checkout time.Time, excludeBookingID int64) (int, error) {
	return occupiedCount(r.db.WithContext(ctx), roomID, checkin, checkout, excludeBookingID)
}

func (r *RoomRepository) Update(ctx context.Context, rm *domain.Room) error {
	m := toRoomModel(rm)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rm = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&roomModel{}, id).Error
}
