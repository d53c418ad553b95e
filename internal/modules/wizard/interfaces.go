package wizard

import (
	"context"
	"time"

	"heritagepalace/internal/domain"
)

// SessionStore keeps wizard sessions for the lifetime of one open
// modal. Implementations expire abandoned sessions on their own.
type SessionStore interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

type RoomGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// BookingRecorder persists the finalized record. Create must refuse a
// duplicate id rather than overwrite.
type BookingRecorder interface {
	Create(ctx context.Context, b *domain.Booking) error
	Exists(ctx context.Context, id string) (bool, error)
}

// ProfileUpserter merges a completed booking into the guest's lifetime
// counters (additive, creates the profile if absent).
type ProfileUpserter interface {
	Upsert(ctx context.Context, userID int64, email string, spend int, at time.Time) error
}
