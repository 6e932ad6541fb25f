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

// MemberService handles business logic for department members
type MemberService struct {
	repo           repository.MemberRepositoryInterface
	departmentRepo repository.DepartmentRepositoryInterface
	validator      *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(repo repository.MemberRepositoryInterface, departmentRepo repository.DepartmentRepositoryInterface, validator *validator.Validate) *MemberService {
	return &MemberService{repo: repo, departmentRepo: departmentRepo, validator: validator}
}

// CreateMemberRequest represents the request to add a member to a department
type CreateMemberRequest struct {
	DepartmentID uuid.UUID `json:"department_id" validate:"required"`
	FirstName    string    `json:"first_name" validate:"required,min=1,max=100"`
	LastName     string    `json:"last_name" validate:"required,min=1,max=100"`
}

// UpdateMemberRequest represents the request to rename a member or move it to
// another department of the same church
type UpdateMemberRequest struct {
	DepartmentID uuid.UUID `json:"department_id" validate:"required"`
	FirstName    string    `json:"first_name" validate:"required,min=1,max=100"`
	LastName     string    `json:"last_name" validate:"required,min=1,max=100"`
}

// Create adds a member to a department
func (s *MemberService) Create(req *CreateMemberRequest) (*models.Member, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.getDepartment(req.DepartmentID); err != nil {
		return nil, err
	}

	member := &models.Member{
		DepartmentID: req.DepartmentID,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
	}
	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	return member, nil
}

// GetByID retrieves a member
func (s *MemberService) GetByID(id uuid.UUID) (*models.Member, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// ListByDepartment lists the members of a department by last then first name
func (s *MemberService) ListByDepartment(departmentID uuid.UUID) ([]models.Member, error) {
	if _, err := s.getDepartment(departmentID); err != nil {
		return nil, err
	}

	members, err := s.repo.GetByDepartmentID(departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	return members, nil
}

// ListByChurch lists the members of every department of the church the scope allows
func (s *MemberService) ListByChurch(churchID uuid.UUID, scope rbac.DepartmentScope) ([]models.Member, error) {
	departments, err := s.departmentRepo.GetByChurchID(churchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get departments: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(departments))
	for _, d := range departments {
		ids = append(ids, d.ID)
	}
	ids = scope.Filter(ids)
	if len(ids) == 0 {
		return []models.Member{}, nil
	}

	members, err := s.repo.GetByDepartmentIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	return members, nil
}

// Update renames a member and moves it when the department changes. The member
// keeps its id; plannings under the old department's events are dropped.
func (s *MemberService) Update(id uuid.UUID, req *UpdateMemberRequest) (*models.Member, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	member, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.DepartmentID != member.DepartmentID {
		current, err := s.getDepartment(member.DepartmentID)
		if err != nil {
			return nil, err
		}
		target, err := s.getDepartment(req.DepartmentID)
		if err != nil {
			return nil, err
		}
		if current.Ministry == nil || target.Ministry == nil || current.Ministry.ChurchID != target.Ministry.ChurchID {
			return nil, apperrors.NewValidationError("department_id", "department belongs to another church")
		}
		member.DepartmentID = target.ID
		member.Department = target
	}

	member.FirstName = strings.TrimSpace(req.FirstName)
	member.LastName = strings.TrimSpace(req.LastName)
	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}
	return member, nil
}

// Delete deletes a member; its plannings cascade
func (s *MemberService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

func (s *MemberService) getDepartment(id uuid.UUID) (*models.Department, error) {
	department, err := s.departmentRepo.GetWithMinistry(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to verify department: %w", err)
	}
	return department, nil
}
