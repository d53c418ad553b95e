package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"heritagepalace/internal/domain"
	"heritagepalace/internal/modules/pricing"
)

type Service struct {
	rooms RoomRepository
}

func NewService(rooms RoomRepository) *Service {
	return &Service{rooms: rooms}
}

// RoomView decorates a room with its parsed nightly rate and GST slab,
// so the front-end never re-implements the price arithmetic.
type RoomView struct {
	domain.Room
	PricePerNight int     `json:"price_per_night"`
	GSTRate       float64 `json:"gst_rate"`
}

func (s *Service) ListRooms(ctx context.Context) ([]RoomView, error) {
	rooms, err := s.rooms.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]RoomView, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, decorate(r))
	}
	return out, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*RoomView, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	v := decorate(*room)
	return &v, nil
}

func decorate(r domain.Room) RoomView {
	unit := pricing.ParsePrice(r.Price)
	return RoomView{
		Room:          r,
		PricePerNight: unit,
		GSTRate:       pricing.GSTRate(unit),
	}
}
