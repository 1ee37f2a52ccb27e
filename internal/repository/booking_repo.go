package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	HotelID        int64     `gorm:"column:hotel_id;index"`
	RoomID         int64     `gorm:"column:room_id;index"`
	ClientID       int64     `gorm:"column:client_id;index"`
	LastModifierID int64     `gorm:"column:last_modifier_id"`
	Checkin        time.Time `gorm:"column:checkin"`
	Checkout       time.Time `gorm:"column:checkout"`
	RoomsAmount    int       `gorm:"column:rooms_amount"`
	GuestsCount    int       `gorm:"column:guests_count"`
	Status         string    `gorm:"column:status"`
	AdditionalInfo string    `gorm:"column:additional_info"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:             m.ID,
		HotelID:        m.HotelID,
		RoomID:         m.RoomID,
		ClientID:       m.ClientID,
		LastModifierID: m.LastModifierID,
		Checkin:        m.Checkin,
		Checkout:       m.Checkout,
		RoomsAmount:    m.RoomsAmount,
		GuestsCount:    m.GuestsCount,
		Status:         domain.BookingStatus(m.Status),
		AdditionalInfo: m.AdditionalInfo,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:             b.ID,
		HotelID:        b.HotelID,
		RoomID:         b.RoomID,
		ClientID:       b.ClientID,
		LastModifierID: b.LastModifierID,
		Checkin:        b.Checkin,
		Checkout:       b.Checkout,
		RoomsAmount:    b.RoomsAmount,
		GuestsCount:    b.GuestsCount,
		Status:         string(b.Status),
		AdditionalInfo: b.AdditionalInfo,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// occupiedCount is the committed capacity for a room over the half-open
// range [checkin, checkout): the maximum rooms_amount among overlapping
// non-cancelled bookings, 0 when none overlap. Two ranges overlap iff
// a_in < b_out AND a_out > b_in; touching ranges do not.
func occupiedCount(db *gorm.DB, roomID int64, checkin, checkout time.Time, excludeBookingID int64) (int, error) {
	q := db.Table("bookings").
		Select("COALESCE(MAX(rooms_amount), 0)").
		Where("room_id = ?", roomID).
		Where("status <> ?", string(domain.BookingCancelled)).
		Where("checkin < ? AND checkout > ?", checkout, checkin)
	if excludeBookingID > 0 {
		q = q.Where("id <> ?", excludeBookingID)
	}

	var occupied int
	if err := q.Scan(&occupied).Error; err != nil {
		return 0, err
	}
	return occupied, nil
}

// lockRoom reads the room row, taking a row lock on dialects that
// support it so concurrent admissions on the same room serialize.
func lockRoom(tx *gorm.DB, roomID int64) (*roomModel, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var m roomModel
	if err := q.First(&m, roomID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Admission is the outcome of a capacity check against a room.
type Admission struct {
	Admitted  bool
	Occupied  int
	Available int
}

// CreateAdmitted inserts b if the room still has capacity for it. The
// room row is locked and re-read inside the transaction, so the count
// cannot go stale between check and insert.
func (r *BookingRepository) CreateAdmitted(ctx context.Context, b *domain.Booking) (*Admission, error) {
	return r.admit(ctx, b, false)
}

// UpdateAdmitted replaces the stored booking with b, keeping its id.
// The availability check excludes b's own prior occupancy, so a booking
// never competes with itself.
func (r *BookingRepository) UpdateAdmitted(ctx context.Context, b *domain.Booking) (*Admission, error) {
	return r.admit(ctx, b, true)
}

func (r *BookingRepository) admit(ctx context.Context, b *domain.Booking, replace bool) (*Admission, error) {
	var adm Admission
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := lockRoom(tx, b.RoomID)
		if err != nil {
			return err
		}

		var exclude int64
		if replace {
			exclude = b.ID
		}
		occupied, err := occupiedCount(tx, b.RoomID, b.Checkin, b.Checkout, exclude)
		if err != nil {
			return err
		}

		adm = Admission{
			Occupied:  occupied,
			Available: room.RoomsAmount - occupied,
		}
		if adm.Available-b.RoomsAmount < 0 {
			return nil
		}
		adm.Admitted = true

		m := toBookingModel(b)
		if replace {
			if err := tx.Save(&m).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		*b = *toDomainBooking(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &adm, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

// ListByClientUsername returns the bookings made by the named client.
func (r *BookingRepository) ListByClientUsername(ctx context.Context, username string) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = bookings.client_id").
		Where("users.username = ?", username).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

// ListByHotelOwnerUsername returns the bookings placed against hotels
// owned by the named user.
func (r *BookingRepository) ListByHotelOwnerUsername(ctx context.Context, username string) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Joins("JOIN hotels ON hotels.id = bookings.hotel_id").
		Joins("JOIN users ON users.id = hotels.owner_id").
		Where("users.username = ?", username).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&bookingModel{}, id).Error
}

func toDomainBookings(ms []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
