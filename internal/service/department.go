package service

import (
	"errors"
	"fmt"
	"strings"

	"church-planning-backend/internal/database/models"
	apperrors "church-planning-backend/internal/errors"
	"church-planning-backend/internal/rbac"
	"church-planning-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentService handles business logic for departments
type DepartmentService struct {
	repo         repository.DepartmentRepositoryInterface
	ministryRepo repository.MinistryRepositoryInterface
	validator    *validator.Validate
}

// NewDepartmentService creates a new department service
func NewDepartmentService(repo repository.DepartmentRepositoryInterface, ministryRepo repository.MinistryRepositoryInterface, validator *validator.Validate) *DepartmentService {
	return &DepartmentService{repo: repo, ministryRepo: ministryRepo, validator: validator}
}

// CreateDepartmentRequest represents the request to create a department
type CreateDepartmentRequest struct {
	MinistryID uuid.UUID `json:"ministry_id" validate:"required"`
	Name       string    `json:"name" validate:"required,min=1,max=200"`
}

// UpdateDepartmentRequest represents the request to rename or move a department.
// A department only moves between ministries of the same church.
type UpdateDepartmentRequest struct {
	Name       string     `json:"name" validate:"required,min=1,max=200"`
	MinistryID *uuid.UUID `json:"ministry_id,omitempty"`
}

// Create creates a department in a ministry
func (s *DepartmentService) Create(req *CreateDepartmentRequest) (*models.Department, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	ministry, err := s.getMinistry(req.MinistryID)
	if err != nil {
		return nil, err
	}

	department := &models.Department{MinistryID: ministry.ID, Name: strings.TrimSpace(req.Name)}
	if err := s.repo.Create(department); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	department.Ministry = ministry
	return department, nil
}

// GetByID retrieves a department with its ministry
func (s *DepartmentService) GetByID(id uuid.UUID) (*models.Department, error) {
	department, err := s.repo.GetWithMinistry(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return department, nil
}

// ListByChurch lists the departments of a church the scope allows
func (s *DepartmentService) ListByChurch(churchID uuid.UUID, scope rbac.DepartmentScope) ([]models.Department, error) {
	departments, err := s.repo.GetByChurchID(churchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get departments: %w", err)
	}
	return filterDepartments(departments, scope), nil
}

// ListByMinistry lists the departments of a ministry the scope allows
func (s *DepartmentService) ListByMinistry(ministryID uuid.UUID, scope rbac.DepartmentScope) ([]models.Department, error) {
	departments, err := s.repo.GetByMinistryID(ministryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get departments: %w", err)
	}
	return filterDepartments(departments, scope), nil
}

func filterDepartments(departments []models.Department, scope rbac.DepartmentScope) []models.Department {
	if scope.IsUnscoped() {
		return departments
	}
	out := make([]models.Department, 0, len(departments))
	for _, d := range departments {
		if scope.Allows(d.ID) {
			out = append(out, d)
		}
	}
	return out
}

// Update renames a department and optionally moves it to another ministry
func (s *DepartmentService) Update(id uuid.UUID, req *UpdateDepartmentRequest) (*models.Department, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	department, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.MinistryID != nil && *req.MinistryID != department.MinistryID {
		target, err := s.getMinistry(*req.MinistryID)
		if err != nil {
			return nil, err
		}
		if department.Ministry != nil && target.ChurchID != department.Ministry.ChurchID {
			return nil, apperrors.NewValidationError("ministry_id", "ministry belongs to another church")
		}
		department.MinistryID = target.ID
		department.Ministry = target
	}

	department.Name = strings.TrimSpace(req.Name)
	if err := s.repo.Update(department); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}
	return department, nil
}

// Delete deletes a department; members, links and plannings cascade
func (s *DepartmentService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

func (s *DepartmentService) getMinistry(id uuid.UUID) (*models.Ministry, error) {
	ministry, err := s.ministryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMinistryNotFound
		}
		return nil, fmt.Errorf("failed to verify ministry: %w", err)
	}
	return ministry, nil
}
