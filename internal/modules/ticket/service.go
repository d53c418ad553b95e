package ticket

import (
	"context"
	"errors"
	"image"

	"gorm.io/gorm"

	"heritagepalace/internal/domain"
)

type BookingGetter interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}

type Service struct {
	bookings BookingGetter
	renderer *Renderer
}

func NewService(bookings BookingGetter, renderer *Renderer) *Service {
	return &Service{bookings: bookings, renderer: renderer}
}

// GetBooking loads a booking for its owner.
func (s *Service) GetBooking(ctx context.Context, id string, userID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}

// RenderTicket rasterizes the confirmation card. Rendering has no side
// effects on the booking, so exports can be retried freely.
func (s *Service) RenderTicket(ctx context.Context, id string, userID int64, width, height int) (image.Image, *domain.Booking, error) {
	b, err := s.GetBooking(ctx, id, userID)
	if err != nil {
		return nil, nil, err
	}

	img, err := s.renderer.Render(b, width, height)
	if err != nil {
		return nil, nil, err
	}
	return img, b, nil
}
