package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

type hotelModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	City        string    `gorm:"column:city;index"`
	Address     string    `gorm:"column:address"`
	Email       string    `gorm:"column:email"`
	PhoneNumber string    `gorm:"column:phone_number"`
	Description string    `gorm:"column:description"`
	Available   bool      `gorm:"column:available"`
	OwnerID     int64     `gorm:"column:owner_id;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (hotelModel) TableName() string { return "hotels" }

func toDomainHotel(m hotelModel) *domain.Hotel {
	return &domain.Hotel{
		ID:          m.ID,
		Name:        m.Name,
		City:        m.City,
		Address:     m.Address,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		Description: m.Description,
		Available:   m.Available,
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toHotelModel(h *domain.Hotel) hotelModel {
	return hotelModel{
		ID:          h.ID,
		Name:        h.Name,
		City:        h.City,
		Address:     h.Address,
		Email:       h.Email,
		PhoneNumber: h.PhoneNumber,
		Description: h.Description,
		Available:   h.Available,
		OwnerID:     h.OwnerID,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	m := toHotelModel(h)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	owner := h.Owner
	*h = *toDomainHotel(m)
	h.Owner = owner
	return nil
}

// GetByID loads the hotel together with its owner; callers rely on the
// owner's username and active flag for authorization and admission.
func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var m hotelModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	h := toDomainHotel(m)

	var om userModel
	tx = r.db.WithContext(ctx).First(&om, m.OwnerID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	h.Owner = toDomainUser(om)
	return h, nil
}

func (r *HotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	var ms []hotelModel
	tx := r.db.WithContext(ctx).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Hotel, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainHotel(m))
	}
	return out, nil
}

func (r *HotelRepository) ListByCity(ctx context.Context, city string) ([]domain.Hotel, error) {
	var ms []hotelModel
	tx := r.db.WithContext(ctx).Where("city = ?", city).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Hotel, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainHotel(m))
	}
	return out, nil
}

func (r *HotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	m := toHotelModel(h)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	owner := h.Owner
	*h = *toDomainHotel(m)
	h.Owner = owner
	return nil
}

func (r *HotelRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&hotelModel{}, id).Error
}
