package ads

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/clinicpass/clinic-api/internal/model"
	"github.com/clinicpass/clinic-api/internal/repository"
	apperrors "github.com/clinicpass/clinic-api/pkg/errors"
)

type Service struct {
	repo repository.AdRepository
}

func NewService(repo repository.AdRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, clinicID uuid.UUID) ([]*model.ClinicAd, error) {
	return s.repo.List(ctx, clinicID)
}

func (s *Service) Create(ctx context.Context, clinicID uuid.UUID, req *model.CreateAdRequest) (*model.ClinicAd, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.InvalidInput("missing title")
	}

	ad := &model.ClinicAd{
		ClinicID:    clinicID,
		Title:       title,
		Description: req.Description,
		Images:      req.Images,
		PriceRange:  req.PriceRange,
		Category:    req.Category,
		Active:      true,
	}

	if err := s.repo.Create(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

func (s *Service) Update(ctx context.Context, clinicID, id uuid.UUID, req *model.UpdateAdRequest) (*model.ClinicAd, error) {
	ad, err := s.repo.Get(ctx, clinicID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.InvalidInput("missing title")
		}
		ad.Title = title
	}
	if req.Description != nil {
		ad.Description = *req.Description
	}
	if req.Images != nil {
		ad.Images = req.Images
	}
	if req.PriceRange != nil {
		ad.PriceRange = *req.PriceRange
	}
	if req.Category != nil {
		ad.Category = *req.Category
	}

	if err := s.repo.Update(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

func (s *Service) ToggleActive(ctx context.Context, clinicID, id uuid.UUID) (*model.ClinicAd, error) {
	return s.repo.ToggleActive(ctx, clinicID, id)
}

func (s *Service) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	return s.repo.Delete(ctx, clinicID, id)
}
