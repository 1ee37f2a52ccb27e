package auth

import (
	"context"
	"testing"

	"hotelbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && args.Error(0) == nil {
		u.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateToken(userID int64, username string, isAdmin bool) (string, error) {
	args := m.Called(userID, username, isAdmin)
	return args.String(0), args.Error(1)
}

func hashOf(password string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(h)
}

func TestService_Register_Success(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockJWTService))

	users.On("GetByUsername", mock.Anything, "guest").Return(nil, gorm.ErrRecordNotFound)
	users.On("GetByEmail", mock.Anything, "guest@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	u, err := service.Register(context.Background(), RegisterRequest{
		Username: "Guest",
		Email:    "Guest@Example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "guest", u.Username)
	assert.Equal(t, "guest@example.com", u.Email)
	assert.True(t, u.IsActive)
	assert.False(t, u.IsAdmin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
}

func TestService_Register_UsernameTaken(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockJWTService))

	existing := &domain.User{ID: 1, Username: "guest"}
	users.On("GetByUsername", mock.Anything, "guest").Return(existing, nil)

	_, err := service.Register(context.Background(), RegisterRequest{
		Username: "guest",
		Email:    "other@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestService_Register_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockJWTService))

	existing := &domain.User{ID: 1, Email: "guest@example.com"}
	users.On("GetByUsername", mock.Anything, "newguy").Return(nil, gorm.ErrRecordNotFound)
	users.On("GetByEmail", mock.Anything, "guest@example.com").Return(existing, nil)

	_, err := service.Register(context.Background(), RegisterRequest{
		Username: "newguy",
		Email:    "guest@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	service := NewService(users, jwt)

	u := &domain.User{ID: 10, Username: "guest", PasswordHash: hashOf("secret123"), IsActive: true}
	users.On("GetByUsername", mock.Anything, "guest").Return(u, nil)
	jwt.On("GenerateToken", int64(10), "guest", false).Return("token-abc", nil)

	token, logged, err := service.Login(context.Background(), LoginRequest{Username: "guest", Password: "secret123"})

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", token)
	assert.Equal(t, int64(10), logged.ID)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockJWTService))

	u := &domain.User{ID: 10, Username: "guest", PasswordHash: hashOf("secret123"), IsActive: true}
	users.On("GetByUsername", mock.Anything, "guest").Return(u, nil)

	_, _, err := service.Login(context.Background(), LoginRequest{Username: "guest", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockJWTService))

	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := service.Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_InactiveUser(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockJWTService))

	u := &domain.User{ID: 10, Username: "guest", PasswordHash: hashOf("secret123"), IsActive: false}
	users.On("GetByUsername", mock.Anything, "guest").Return(u, nil)

	_, _, err := service.Login(context.Background(), LoginRequest{Username: "guest", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInactiveUser)
}
