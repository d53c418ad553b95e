package testimonial

import (
	"context"

	"heritagepalace/internal/domain"
)

const defaultLimit = 12

type Repository interface {
	ListVisible(ctx context.Context, limit int) ([]domain.Testimonial, error)
	Create(ctx context.Context, t *domain.Testimonial) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Testimonial, error) {
	return s.repo.ListVisible(ctx, defaultLimit)
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateTestimonialRequest) (*domain.Testimonial, error) {
	t := &domain.Testimonial{
		UserID:   &userID,
		Name:     req.Name,
		Location: req.Location,
		Rating:   req.Rating,
		Text:     req.Text,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
