package repository

import (
	"context"

	"gorm.io/gorm"

	"heritagepalace/internal/domain"
)

type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) ListVisible(ctx context.Context, limit int) ([]domain.Testimonial, error) {
	var out []domain.Testimonial
	err := r.db.WithContext(ctx).
		Where("is_hidden = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}
