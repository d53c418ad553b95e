package profile

import (
	"context"

	"heritagepalace/internal/domain"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.GuestProfile, error)
}

type BookingLister interface {
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
}
