package booking

import (
	"context"
	"testing"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/authz"
	"hotelbooking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateAdmitted(ctx context.Context, b *domain.Booking) (*repository.Admission, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	adm := args.Get(0).(*repository.Admission)
	if adm.Admitted && b != nil {
		b.ID = 999 // simulate DB insert
	}
	return adm, args.Error(1)
}

func (m *MockBookingRepository) UpdateAdmitted(ctx context.Context, b *domain.Booking) (*repository.Admission, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Admission), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByClientUsername(ctx context.Context, username string) ([]domain.Booking, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByHotelOwnerUsername(ctx context.Context, username string) ([]domain.Booking, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type fixture struct {
	bookings *MockBookingRepository
	users    *MockUserRepository
	hotels   *MockHotelRepository
	rooms    *MockRoomRepository
	service  *Service
}

func newFixture() *fixture {
	f := &fixture{
		bookings: new(MockBookingRepository),
		users:    new(MockUserRepository),
		hotels:   new(MockHotelRepository),
		rooms:    new(MockRoomRepository),
	}
	f.service = NewService(f.bookings, f.users, f.hotels, f.rooms)
	return f
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(dateLayout)
}

func activeClient() *domain.User {
	return &domain.User{ID: 10, Username: "guest", IsActive: true}
}

func availableHotel() *domain.Hotel {
	return &domain.Hotel{
		ID:        1,
		Name:      "hotel one",
		Available: true,
		OwnerID:   20,
		Owner:     &domain.User{ID: 20, Username: "hotelier", IsActive: true},
	}
}

func activeRoom() *domain.Room {
	return &domain.Room{ID: 2, HotelID: 1, GuestsCount: 2, RoomsAmount: 5, Active: true}
}

func validRequest() BookingRequest {
	return BookingRequest{
		RoomsAmount: 2,
		GuestsCount: 2,
		Checkin:     futureDate(7),
		Checkout:    futureDate(10),
		HotelID:     1,
		RoomID:      2,
	}
}

func TestService_Create_Success(t *testing.T) {
	f := newFixture()
	actor := authz.Actor{ID: 10, Username: "guest"}

	f.users.On("GetByUsername", mock.Anything, "guest").Return(activeClient(), nil)
	f.hotels.On("GetByID", mock.Anything, int64(1)).Return(availableHotel(), nil)
	f.rooms.On("GetByID", mock.Anything, int64(2)).Return(activeRoom(), nil)
	f.bookings.On("CreateAdmitted", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(&repository.Admission{Admitted: true, Occupied: 0, Available: 5}, nil)

	b, err := f.service.Create(context.Background(), actor, "", validRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(999), b.ID)
	assert.Equal(t, int64(10), b.ClientID)
	assert.Equal(t, int64(10), b.LastModifierID)
	assert.Equal(t, domain.BookingDraft, b.Status)
	f.bookings.AssertExpectations(t)
}

func TestService_Create_SameCheckinCheckout(t *testing.T) {
	f := newFixture()
	actor := authz.Actor{ID: 10, Username: "guest"}

	req := validRequest()
	req.Checkout = req.Checkin

	_, err := f.service.Create(context.Background(), actor, "", req)
	assert.ErrorIs(t, err, ErrInconsistentDates)
}

func TestService_Create_PastCheckin(t *testing.T) {
	f := newFixture()
	actor := authz.Actor{ID: 10, Username: "guest"}

	req := validRequest()
	req.Checkin = futureDate(-2)
	req.Checkout = futureDate(3)

	_, err := f.service.Create(context.Background(), actor, "", req)
	assert.ErrorIs(t, err, ErrPastDateBooking)
}

func TestService_Create_ForOtherRequiresAdmin(t *testing.T) {
	f := newFixture()
	actor := authz.Actor{ID: 10, Username: "guest", IsAdmin: false}

	_, err := f.service.Create(context.Background(), actor, "someone", validRequest())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Create_ForOtherAsAdmin(t *testing.T) {
	f := newFixture()
	actor := authz.Actor{ID: 1, Username: "admin", IsAdmin: true}

	target := &domain.User{ID: 30, Username: "someone", IsActive: true}
	f.users.On("GetByUsername", mock.Anything, "someone").Return(target, nil)
	f.hotels.On("GetByID", mock.Anything, int64(1)).Return(availableHotel(), nil)
	f.rooms.On("GetByID", mock.Anything, int64(2)).Return(activeRoom(), nil)
	f.bookings.On("CreateAdmitted", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(&repository.Admission{Admitted: true, Available: 5}, nil)

	b, err := f.service.Create(context.Background(), actor, "someone", validRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(30), b.ClientID)
	assert.Equal(t, int64(1), b.LastModifierID)
}

func TestService_Create_InactiveClient(t *testing.T) {
	f := newFixture()
	actor := authz.Actor{ID: 10, Username: "guest"}

	inactive := activeClient()
	inactive.IsActive = false
	f.users.On("GetByUsername", mock.Anything, "guest").Return(inactive, nil)

	_, err := f.service.Create(context.Background(), actor, "", validRequest())
	assert.ErrorIs(t, err, ErrInactiveParty)
}

func TestService_Create_InactiveOwner(t *testing.T) {
	f := newFixture()
	actor := authz.Actor{ID: 10, Username: "guest"}

	h := availableHotel()
	h.Owner.IsActive = false
	f.users.On("GetByUsername", mock.Anything, "guest").Return(activeClient(), nil)
	f.hotels.On("GetByID", mock.Anything, int64(1)).Return(h, nil)
	f.rooms.On("GetByID", mock.Anything, int64(2)).Return(activeRoom(), nil)

	_, err := f.service.Create(context.Background(), actor, "", validRequest())
	assert.ErrorIs(t, err, ErrInactiveParty)
}

func TestService_Create_RoomFromAnotherHotel(t *testing.T) {
	f := newFixture()
	actor := authz.Actor{ID: 10, Username: "guest"}

	foreign := activeRoom()
	foreign.HotelID = 77
	f.users.On("GetByUsername", mock.Anything, "guest").Return(activeClient(), nil)
	f.hotels.On("GetByID", mock.Anything, int64(1)).Return(availableHotel(), nil)
	f.rooms.On("GetByID", mock.Anything, int64(2)).Return(foreign, nil)

	_, err := f.service.Create(context.Background(), actor, "", validRequest())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_CapacityExceeded(t *testing.T) {
	f := newFixture()
	actor := authz.Actor{ID: 10, Username: "guest"}

	f.users.On("GetByUsername", mock.Anything, "guest").Return(activeClient(), nil)
	f.hotels.On("GetByID", mock.Anything, int64(1)).Return(availableHotel(), nil)
	f.rooms.On("GetByID", mock.Anything, int64(2)).Return(activeRoom(), nil)
	f.bookings.On("CreateAdmitted", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(&repository.Admission{Admitted: false, Occupied: 4, Available: 1}, nil)

	_, err := f.service.Create(context.Background(), actor, "", validRequest())

	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Contains(t, err.Error(), "hotel one")
	assert.Contains(t, err.Error(), "1 rooms available")
}

func TestService_Create_UnknownTargetUser(t *testing.T) {
	f := newFixture()
	actor := authz.Actor{ID: 1, Username: "admin", IsAdmin: true}

	f.users.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := f.service.Create(context.Background(), actor, "ghost", validRequest())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_Success(t *testing.T) {
	f := newFixture()
	actor := authz.Actor{ID: 10, Username: "guest"}

	current := &domain.Booking{
		ID:       5,
		HotelID:  1,
		RoomID:   2,
		ClientID: 10,
		Status:   domain.BookingDraft,
	}
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(current, nil)
	f.hotels.On("GetByID", mock.Anything, int64(1)).Return(availableHotel(), nil)
	f.rooms.On("GetByID", mock.Anything, int64(2)).Return(activeRoom(), nil)
	f.bookings.On("UpdateAdmitted", mock.Anything, mock.AnythingOfType("*domain.Booking")).
		Return(&repository.Admission{Admitted: true, Available: 5}, nil)

	req := validRequest()
	req.RoomsAmount = 3

	b, err := f.service.Update(context.Background(), actor, 5, req)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), b.ID)
	assert.Equal(t, 3, b.RoomsAmount)
	assert.Equal(t, int64(10), b.ClientID)
}

func TestService_Update_NotClient(t *testing.T) {
	f := newFixture()
	actor := authz.Actor{ID: 42, Username: "stranger"}

	current := &domain.Booking{ID: 5, HotelID: 1, ClientID: 10, Status: domain.BookingDraft}
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(current, nil)

	_, err := f.service.Update(context.Background(), actor, 5, validRequest())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Update_HotelChangeRejected(t *testing.T) {
	f := newFixture()
	actor := authz.Actor{ID: 10, Username: "guest"}

	current := &domain.Booking{ID: 5, HotelID: 99, ClientID: 10, Status: domain.BookingDraft}
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(current, nil)

	_, err := f.service.Update(context.Background(), actor, 5, validRequest())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Update_RequiresDraft(t *testing.T) {
	f := newFixture()
	actor := authz.Actor{ID: 10, Username: "guest"}

	current := &domain.Booking{ID: 5, HotelID: 1, ClientID: 10, Status: domain.BookingConfirmed}
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(current, nil)

	_, err := f.service.Update(context.Background(), actor, 5, validRequest())
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_Remove_ClientCanDelete(t *testing.T) {
	f := newFixture()
	actor := authz.Actor{ID: 10, Username: "guest"}

	current := &domain.Booking{ID: 5, ClientID: 10, Status: domain.BookingDraft}
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(current, nil)
	f.bookings.On("Delete", mock.Anything, int64(5)).Return(nil)

	err := f.service.Remove(context.Background(), actor, 5)
	assert.NoError(t, err)
	f.bookings.AssertExpectations(t)
}

func TestService_Remove_StrangerForbidden(t *testing.T) {
	f := newFixture()
	actor := authz.Actor{ID: 42, Username: "stranger"}

	current := &domain.Booking{ID: 5, ClientID: 10, Status: domain.BookingDraft}
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(current, nil)

	err := f.service.Remove(context.Background(), actor, 5)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Confirm_FromDraft(t *testing.T) {
	f := newFixture()

	draft := &domain.Booking{ID: 5, Status: domain.BookingDraft}
	confirmed := &domain.Booking{ID: 5, Status: domain.BookingConfirmed}
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(draft, nil).Once()
	f.bookings.On("UpdateStatus", mock.Anything, int64(5), domain.BookingConfirmed).Return(nil)
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(confirmed, nil).Once()

	b, err := f.service.Confirm(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

func TestService_Confirm_AlreadyConfirmed(t *testing.T) {
	f := newFixture()

	confirmed := &domain.Booking{ID: 5, Status: domain.BookingConfirmed}
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(confirmed, nil)

	_, err := f.service.Confirm(context.Background(), 5)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_UndoCancel_BackToDraft(t *testing.T) {
	f := newFixture()

	cancelled := &domain.Booking{ID: 5, Status: domain.BookingCancelled}
	draft := &domain.Booking{ID: 5, Status: domain.BookingDraft}
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(cancelled, nil).Once()
	f.bookings.On("UpdateStatus", mock.Anything, int64(5), domain.BookingDraft).Return(nil)
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(draft, nil).Once()

	b, err := f.service.UndoCancel(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingDraft, b.Status)
}

func TestService_UndoConfirm_RequiresConfirmed(t *testing.T) {
	f := newFixture()

	draft := &domain.Booking{ID: 5, Status: domain.BookingDraft}
	f.bookings.On("GetByID", mock.Anything, int64(5)).Return(draft, nil)

	_, err := f.service.UndoConfirm(context.Background(), 5)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}
