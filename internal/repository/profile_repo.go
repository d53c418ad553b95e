package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"heritagepalace/internal/domain"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Upsert merges one completed booking into the guest's lifetime
// counters. The increments are applied in SQL so concurrent bookings by
// the same user combine correctly regardless of ordering.
func (r *ProfileRepository) Upsert(ctx context.Context, userID int64, email string, spend int, at time.Time) error {
	profile := domain.GuestProfile{
		UserID:        userID,
		Email:         email,
		LastBookingAt: at,
		BookingsCount: 1,
		TotalSpend:    spend,
		UpdatedAt:     at,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"email":           email,
				"last_booking_at": at,
				"bookings_count":  gorm.Expr("bookings_count + ?", 1),
				"total_spend":     gorm.Expr("total_spend + ?", spend),
				"updated_at":      at,
			}),
		}).
		Create(&profile).Error
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.GuestProfile, error) {
	var p domain.GuestProfile
	if err := r.db.WithContext(ctx).First(&p, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
