package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

type ratingModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	BookingID  int64     `gorm:"column:booking_id;uniqueIndex:idx_user_booking"`
	HotelID    int64     `gorm:"column:hotel_id;index"`
	UserID     int64     `gorm:"column:user_id;uniqueIndex:idx_user_booking"`
	Score      int       `gorm:"column:rating_score"`
	RatingDate time.Time `gorm:"column:rating_date"`
	Title      string    `gorm:"column:title"`
	Comment    string    `gorm:"column:comment"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (ratingModel) TableName() string { return "ratings" }

func toDomainRating(m ratingModel) *domain.Rating {
	return &domain.Rating{
		ID:         m.ID,
		BookingID:  m.BookingID,
		HotelID:    m.HotelID,
		UserID:     m.UserID,
		Score:      m.Score,
		RatingDate: m.RatingDate,
		Title:      m.Title,
		Comment:    m.Comment,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toRatingModel(rt *domain.Rating) ratingModel {
	return ratingModel{
		ID:         rt.ID,
		BookingID:  rt.BookingID,
		HotelID:    rt.HotelID,
		UserID:     rt.UserID,
		Score:      rt.Score,
		RatingDate: rt.RatingDate,
		Title:      rt.Title,
		Comment:    rt.Comment,
		CreatedAt:  rt.CreatedAt,
		UpdatedAt:  rt.UpdatedAt,
	}
}

func (r *RatingRepository) Create(ctx context.Context, rt *domain.Rating) error {
	m := toRatingModel(rt)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rt = *toDomainRating(m)
	return nil
}

func (r *RatingRepository) GetByID(ctx context.Context, id int64) (*domain.Rating, error) {
	var m ratingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRating(m), nil
}

// GetByUserAndBooking enforces the one-rating-per-booking-per-user rule
// at read time; the unique index backs it up at write time.
func (r *RatingRepository) GetByUserAndBooking(ctx context.Context, userID, bookingID int64) (*domain.Rating, error) {
	var m ratingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND booking_id = ?", userID, bookingID).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRating(m), nil
}

func (r *RatingRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Rating, error) {
	var ms []ratingModel
	tx := r.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Rating, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRating(m))
	}
	return out, nil
}

// AverageForHotel returns the mean score and the number of ratings.
func (r *RatingRepository) AverageForHotel(ctx context.Context, hotelID int64) (float64, int64, error) {
	var row struct {
		Avg   float64
		Count int64
	}
	tx := r.db.WithContext(ctx).
		Table("ratings").
		Select("COALESCE(AVG(rating_score), 0) AS avg, COUNT(1) AS count").
		Where("hotel_id = ?", hotelID).
		Scan(&row)
	if tx.Error != nil {
		return 0, 0, tx.Error
	}
	return row.Avg, row.Count, nil
}

func (r *RatingRepository) Update(ctx context.Context, rt *domain.Rating) error {
	m := toRatingModel(rt)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rt = *toDomainRating(m)
	return nil
}

func (r *RatingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&ratingModel{}, id).Error
}
