package catalog

import (
	"context"

	"heritagepalace/internal/domain"
)

type RoomRepository interface {
	ListActive(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
