package enquiry

import (
	"context"

	"heritagepalace/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, e *domain.Enquiry) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateEnquiryRequest) (*domain.Enquiry, error) {
	e := &domain.Enquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
