package service

import (
	"errors"
	"fmt"
	"strings"

	"church-planning-backend/internal/database/models"
	apperrors "church-planning-backend/internal/errors"
	"church-planning-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MinistryService handles business logic for ministries
type MinistryService struct {
	repo       repository.MinistryRepositoryInterface
	churchRepo repository.ChurchRepositoryInterface
	validator  *validator.Validate
}

// NewMinistryService creates a new ministry service
func NewMinistryService(repo repository.MinistryRepositoryInterface, churchRepo repository.ChurchRepositoryInterface, validator *validator.Validate) *MinistryService {
	return &MinistryService{repo: repo, churchRepo: churchRepo, validator: validator}
}

// CreateMinistryRequest represents the request to create a ministry
type CreateMinistryRequest struct {
	ChurchID uuid.UUID `json:"church_id" validate:"required"`
	Name     string    `json:"name" validate:"required,min=1,max=200"`
}

// UpdateMinistryRequest represents the request to rename a ministry
type UpdateMinistryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// Create creates a ministry in a church
func (s *MinistryService) Create(req *CreateMinistryRequest) (*models.Ministry, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.churchRepo.GetByID(req.ChurchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChurchNotFound
		}
		return nil, fmt.Errorf("failed to verify church: %w", err)
	}

	ministry := &models.Ministry{ChurchID: req.ChurchID, Name: strings.TrimSpace(req.Name)}
	if err := s.repo.Create(ministry); err != nil {
		return nil, fmt.Errorf("failed to create ministry: %w", err)
	}
	return ministry, nil
}

// GetByID retrieves a ministry with its departments
func (s *MinistryService) GetByID(id uuid.UUID) (*models.Ministry, error) {
	ministry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMinistryNotFound
		}
		return nil, fmt.Errorf("failed to get ministry: %w", err)
	}
	return ministry, nil
}

// ListByChurch lists the ministries of a church
func (s *MinistryService) ListByChurch(churchID uuid.UUID) ([]models.Ministry, error) {
	ministries, err := s.repo.GetByChurchID(churchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ministries: %w", err)
	}
	return ministries, nil
}

// Update renames a ministry
func (s *MinistryService) Update(id uuid.UUID, req *UpdateMinistryRequest) (*models.Ministry, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	ministry, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	ministry.Name = strings.TrimSpace(req.Name)
	if err := s.repo.Update(ministry); err != nil {
		return nil, fmt.Errorf("failed to update ministry: %w", err)
	}
	return ministry, nil
}

// Delete deletes a ministry; its departments cascade
func (s *MinistryService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete ministry: %w", err)
	}
	return nil
}
