package rating

import (
	"context"
	"testing"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/authz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, rt *domain.Rating) error {
	args := m.Called(ctx, rt)
	if rt != nil && args.Error(0) == nil {
		rt.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRatingRepository) GetByID(ctx context.Context, id int64) (*domain.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetByUserAndBooking(ctx context.Context, userID, bookingID int64) (*domain.Rating, error) {
	args := m.Called(ctx, userID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *MockRatingRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Rating, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rating), args.Error(1)
}

func (m *MockRatingRepository) Update(ctx context.Context, rt *domain.Rating) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockRatingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func pastBooking() *domain.Booking {
	checkout := time.Now().UTC().AddDate(0, 0, -3)
	return &domain.Booking{
		ID:       5,
		HotelID:  1,
		RoomID:   2,
		ClientID: 10,
		Checkin:  checkout.AddDate(0, 0, -4),
		Checkout: checkout,
		Status:   domain.BookingConfirmed,
	}
}

func ongoingBooking() *domain.Booking {
	b := pastBooking()
	b.Checkout = time.Now().UTC().AddDate(0, 0, 3)
	return b
}

func TestService_Create_AfterCheckout(t *testing.T) {
	ratings := new(MockRatingRepository)
	bookings := new(MockBookingRepository)
	service := NewService(ratings, bookings)
	client := authz.Actor{ID: 10, Username: "guest"}

	bookings.On("GetByID", mock.Anything, int64(5)).Return(pastBooking(), nil)
	ratings.On("GetByUserAndBooking", mock.Anything, int64(10), int64(5)).Return(nil, gorm.ErrRecordNotFound)
	ratings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Rating")).Return(nil)

	rt, err := service.Create(context.Background(), client, 5, RatingRequest{Score: 4, Title: "good stay"})

	assert.NoError(t, err)
	assert.Equal(t, int64(999), rt.ID)
	assert.Equal(t, int64(1), rt.HotelID)
	assert.Equal(t, 4, rt.Score)
	ratings.AssertExpectations(t)
}

func TestService_Create_BeforeCheckout(t *testing.T) {
	ratings := new(MockRatingRepository)
	bookings := new(MockBookingRepository)
	service := NewService(ratings, bookings)
	client := authz.Actor{ID: 10, Username: "guest"}

	bookings.On("GetByID", mock.Anything, int64(5)).Return(ongoingBooking(), nil)

	_, err := service.Create(context.Background(), client, 5, RatingRequest{Score: 4})
	assert.ErrorIs(t, err, ErrTooEarly)
}

func TestService_Create_NotClientForbidden(t *testing.T) {
	ratings := new(MockRatingRepository)
	bookings := new(MockBookingRepository)
	service := NewService(ratings, bookings)
	stranger := authz.Actor{ID: 42, Username: "stranger"}

	bookings.On("GetByID", mock.Anything, int64(5)).Return(pastBooking(), nil)

	_, err := service.Create(context.Background(), stranger, 5, RatingRequest{Score: 4})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Create_SecondRatingRejected(t *testing.T) {
	ratings := new(MockRatingRepository)
	bookings := new(MockBookingRepository)
	service := NewService(ratings, bookings)
	client := authz.Actor{ID: 10, Username: "guest"}

	existing := &domain.Rating{ID: 1, BookingID: 5, UserID: 10, Score: 5}
	bookings.On("GetByID", mock.Anything, int64(5)).Return(pastBooking(), nil)
	ratings.On("GetByUserAndBooking", mock.Anything, int64(10), int64(5)).Return(existing, nil)

	_, err := service.Create(context.Background(), client, 5, RatingRequest{Score: 3})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_Create_BookingMissing(t *testing.T) {
	ratings := new(MockRatingRepository)
	bookings := new(MockBookingRepository)
	service := NewService(ratings, bookings)
	client := authz.Actor{ID: 10, Username: "guest"}

	bookings.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Create(context.Background(), client, 5, RatingRequest{Score: 4})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_OwnRating(t *testing.T) {
	ratings := new(MockRatingRepository)
	bookings := new(MockBookingRepository)
	service := NewService(ratings, bookings)
	client := authz.Actor{ID: 10, Username: "guest"}

	b := pastBooking()
	rt := &domain.Rating{ID: 7, BookingID: 5, HotelID: 1, UserID: 10, Score: 3, RatingDate: b.Checkout.AddDate(0, 0, 1)}
	ratings.On("GetByID", mock.Anything, int64(7)).Return(rt, nil)
	bookings.On("GetByID", mock.Anything, int64(5)).Return(b, nil)
	ratings.On("Update", mock.Anything, mock.AnythingOfType("*domain.Rating")).Return(nil)

	updated, err := service.Update(context.Background(), client, 7, RatingRequest{Score: 5, Comment: "better than remembered"})

	assert.NoError(t, err)
	assert.Equal(t, 5, updated.Score)
}

func TestService_Remove_StrangerForbidden(t *testing.T) {
	ratings := new(MockRatingRepository)
	bookings := new(MockBookingRepository)
	service := NewService(ratings, bookings)
	stranger := authz.Actor{ID: 42, Username: "stranger"}

	rt := &domain.Rating{ID: 7, BookingID: 5, UserID: 10}
	ratings.On("GetByID", mock.Anything, int64(7)).Return(rt, nil)
	bookings.On("GetByID", mock.Anything, int64(5)).Return(pastBooking(), nil)

	err := service.Remove(context.Background(), stranger, 7)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_GetByHotel_EmptyIsNotFound(t *testing.T) {
	ratings := new(MockRatingRepository)
	bookings := new(MockBookingRepository)
	service := NewService(ratings, bookings)

	ratings.On("ListByHotel", mock.Anything, int64(1)).Return([]domain.Rating{}, nil)

	_, err := service.GetByHotel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
