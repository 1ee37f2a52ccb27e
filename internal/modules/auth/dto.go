package auth

import "hotelbooking/internal/domain"

const dateLayout = "2006-01-02"

type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender" binding:"omitempty,oneof=male female other"`
	PhoneNumber string `json:"phone_number"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type UserProfile struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	IsActive    bool   `json:"is_active"`
	IsAdmin     bool   `json:"is_admin"`
}

func toUserProfile(u *domain.User) UserProfile {
	p := UserProfile{
		ID:          u.ID,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Gender:      string(u.Gender),
		PhoneNumber: u.PhoneNumber,
		IsActive:    u.IsActive,
		IsAdmin:     u.IsAdmin,
	}
	if !u.DateOfBirth.IsZero() {
		p.DateOfBirth = u.DateOfBirth.Format(dateLayout)
	}
	return p
}
