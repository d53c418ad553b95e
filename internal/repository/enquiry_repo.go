package repository

import (
	"context"

	"gorm.io/gorm"

	"heritagepalace/internal/domain"
)

type EnquiryRepository struct {
	db *gorm.DB
}

func NewEnquiryRepository(db *gorm.DB) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

func (r *EnquiryRepository) Create(ctx context.Context, e *domain.Enquiry) error {
	return r.db.WithContext(ctx).Create(e).Error
}
