package hotel

import (
	"context"
	"testing"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/authz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	args := m.Called(ctx, h)
	if h != nil && args.Error(0) == nil {
		h.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockHotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) ListByCity(ctx context.Context, city string) ([]domain.Hotel, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHotelRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) AverageForHotel(ctx context.Context, hotelID int64) (float64, int64, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newService() (*Service, *MockHotelRepository, *MockRatingRepository, *MockUserRepository) {
	hotels := new(MockHotelRepository)
	ratings := new(MockRatingRepository)
	users := new(MockUserRepository)
	return NewService(hotels, ratings, users), hotels, ratings, users
}

func TestService_Create_LowercasesNameAndCity(t *testing.T) {
	service, hotels, _, users := newService()
	owner := authz.Actor{ID: 20, Username: "hotelier"}

	users.On("GetByUsername", mock.Anything, "hotelier").
		Return(&domain.User{ID: 20, Username: "hotelier", IsActive: true}, nil)
	hotels.On("Create", mock.Anything, mock.AnythingOfType("*domain.Hotel")).Return(nil)

	h, err := service.Create(context.Background(), owner, HotelRequest{
		Name:    "  Hotel ONE ",
		City:    "Almaty",
		Address: "12 Abay Avenue",
	})

	assert.NoError(t, err)
	assert.Equal(t, "hotel one", h.Name)
	assert.Equal(t, "almaty", h.City)
	assert.Equal(t, int64(20), h.OwnerID)
	assert.True(t, h.Available)
}

func TestService_Create_BlankCityRejected(t *testing.T) {
	service, _, _, _ := newService()
	owner := authz.Actor{ID: 20, Username: "hotelier"}

	_, err := service.Create(context.Background(), owner, HotelRequest{
		Name:    "hotel one",
		City:    "   ",
		Address: "12 Abay Avenue",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_AssignOwnerRequiresAdmin(t *testing.T) {
	service, _, _, _ := newService()
	actor := authz.Actor{ID: 10, Username: "guest"}

	_, err := service.Create(context.Background(), actor, HotelRequest{
		Name:          "hotel one",
		City:          "almaty",
		Address:       "12 Abay Avenue",
		OwnerUsername: "hotelier",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Update_OwnerImmutable(t *testing.T) {
	service, hotels, _, _ := newService()
	owner := authz.Actor{ID: 20, Username: "hotelier"}

	current := &domain.Hotel{
		ID:      1,
		Name:    "hotel one",
		City:    "almaty",
		Address: "12 Abay Avenue",
		OwnerID: 20,
		Owner:   &domain.User{ID: 20, Username: "hotelier"},
	}
	hotels.On("GetByID", mock.Anything, int64(1)).Return(current, nil)

	_, err := service.Update(context.Background(), owner, 1, HotelRequest{
		Name:          "hotel one",
		City:          "almaty",
		Address:       "12 Abay Avenue",
		OwnerUsername: "somebody-else",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Update_StrangerForbidden(t *testing.T) {
	service, hotels, _, _ := newService()
	stranger := authz.Actor{ID: 42, Username: "stranger"}

	current := &domain.Hotel{
		ID:      1,
		Name:    "hotel one",
		City:    "almaty",
		Address: "12 Abay Avenue",
		OwnerID: 20,
		Owner:   &domain.User{ID: 20, Username: "hotelier"},
	}
	hotels.On("GetByID", mock.Anything, int64(1)).Return(current, nil)

	_, err := service.Update(context.Background(), stranger, 1, HotelRequest{
		Name:    "renamed",
		City:    "almaty",
		Address: "12 Abay Avenue",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_GetAll_CityFilterLowercased(t *testing.T) {
	service, hotels, _, _ := newService()

	hotels.On("ListByCity", mock.Anything, "almaty").Return([]domain.Hotel{{ID: 1}}, nil)

	out, err := service.GetAll(context.Background(), "Almaty")

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	hotels.AssertExpectations(t)
}

func TestService_RenderRating(t *testing.T) {
	service, _, ratings, _ := newService()

	ratings.On("AverageForHotel", mock.Anything, int64(1)).Return(4.25, int64(4), nil)
	ratings.On("AverageForHotel", mock.Anything, int64(2)).Return(0.0, int64(0), nil)

	rated, err := service.RenderRating(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "4.2/5", rated)

	unrated, err := service.RenderRating(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, "No ratings yet", unrated)
}
