package profile

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"heritagepalace/internal/domain"
)

const defaultPageSize = 20

type Service struct {
	profiles ProfileRepository
	bookings BookingLister
}

func NewService(profiles ProfileRepository, bookings BookingLister) *Service {
	return &Service{profiles: profiles, bookings: bookings}
}

// Get returns the guest's lifetime counters. A guest who has never
// completed a booking has an empty profile, not an error.
func (s *Service) Get(ctx context.Context, userID int64) (*domain.GuestProfile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &domain.GuestProfile{UserID: userID}, nil
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Bookings(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.bookings.ListByUser(ctx, userID, limit, offset)
}
