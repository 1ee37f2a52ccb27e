package hotel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/authz"

	"gorm.io/gorm"
)

type Service struct {
	hotels  HotelRepository
	ratings RatingRepository
	users   UserRepository
}

func NewService(hotels HotelRepository, ratings RatingRepository, users UserRepository) *Service {
	return &Service{hotels: hotels, ratings: ratings, users: users}
}

// Create registers a hotel owned by the acting user, or by another user
// when an admin names one. Name and city are stored lowercased.
func (s *Service) Create(ctx context.Context, actor authz.Actor, req HotelRequest) (*domain.Hotel, error) {
	if err := checkRequired(req); err != nil {
		return nil, err
	}

	ownerUsername := actor.Username
	if req.OwnerUsername != "" && req.OwnerUsername != actor.Username {
		if !actor.IsAdmin {
			return nil, fmt.Errorf("%w: only admins can assign another owner", ErrForbidden)
		}
		ownerUsername = req.OwnerUsername
	}
	owner, err := s.users.GetByUsername(ctx, ownerUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %q", ErrNotFound, ownerUsername)
		}
		return nil, err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	h := &domain.Hotel{
		Name:        normalize(req.Name),
		City:        normalize(req.City),
		Address:     strings.TrimSpace(req.Address),
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Description: req.Description,
		Available:   available,
		OwnerID:     owner.ID,
		Owner:       owner,
	}
	if err := s.hotels.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// Update replaces the mutable fields of a hotel. The owner never
// changes here; reassignment is not supported.
func (s *Service) Update(ctx context.Context, actor authz.Actor, id int64, req HotelRequest) (*domain.Hotel, error) {
	h, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.Can(actor, authz.ActionManageHotel, h) {
		return nil, fmt.Errorf("%w: you are not allowed to manage this hotel", ErrForbidden)
	}
	if err := checkRequired(req); err != nil {
		return nil, err
	}
	if req.OwnerUsername != "" && h.Owner != nil && req.OwnerUsername != h.Owner.Username {
		return nil, fmt.Errorf("%w: hotel owner cannot be changed", ErrValidation)
	}

	h.Name = normalize(req.Name)
	h.City = normalize(req.City)
	h.Address = strings.TrimSpace(req.Address)
	h.Email = req.Email
	h.PhoneNumber = req.PhoneNumber
	h.Description = req.Description
	if req.Available != nil {
		h.Available = *req.Available
	}
	if err := s.hotels.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) Remove(ctx context.Context, actor authz.Actor, id int64) error {
	h, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.Can(actor, authz.ActionManageHotel, h) {
		return fmt.Errorf("%w: you are not allowed to manage this hotel", ErrForbidden)
	}
	return s.hotels.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	h, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: hotel with id %d", ErrNotFound, id)
		}
		return nil, err
	}
	return h, nil
}

// GetAll lists every hotel, optionally filtered by city. The city
// filter is lowercased to match the stored form.
func (s *Service) GetAll(ctx context.Context, city string) ([]domain.Hotel, error) {
	if city != "" {
		return s.hotels.ListByCity(ctx, normalize(city))
	}
	return s.hotels.List(ctx)
}

// RenderRating formats a hotel's aggregate rating for display.
func (s *Service) RenderRating(ctx context.Context, hotelID int64) (string, error) {
	avg, count, err := s.ratings.AverageForHotel(ctx, hotelID)
	if err != nil {
		return "", err
	}
	if count == 0 {
		return "No ratings yet", nil
	}
	return fmt.Sprintf("%.1f/5", avg), nil
}

func checkRequired(req HotelRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: hotel name cannot be blank", ErrValidation)
	}
	if strings.TrimSpace(req.City) == "" {
		return fmt.Errorf("%w: hotel city cannot be blank", ErrValidation)
	}
	if strings.TrimSpace(req.Address) == "" {
		return fmt.Errorf("%w: hotel address cannot be blank", ErrValidation)
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
