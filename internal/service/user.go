package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"church-planning-backend/internal/auth"
	"church-planning-backend/internal/database/models"
	apperrors "church-planning-backend/internal/errors"
	"church-planning-backend/internal/logger"
	"church-planning-backend/internal/rbac"
	"church-planning-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles users, their profiles and their role assignments
type UserService struct {
	repo           repository.UserRepositoryInterface
	roleRepo       repository.RoleRepositoryInterface
	churchRepo     repository.ChurchRepositoryInterface
	ministryRepo   repository.MinistryRepositoryInterface
	departmentRepo repository.DepartmentRepositoryInterface
	superAdmin     SuperAdminServiceInterface
	validator      *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(
	repo repository.UserRepositoryInterface,
	roleRepo repository.RoleRepositoryInterface,
	churchRepo repository.ChurchRepositoryInterface,
	ministryRepo repository.MinistryRepositoryInterface,
	departmentRepo repository.DepartmentRepositoryInterface,
	superAdmin SuperAdminServiceInterface,
	validator *validator.Validate,
) *UserService {
	return &UserService{
		repo:           repo,
		roleRepo:       roleRepo,
		churchRepo:     churchRepo,
		ministryRepo:   ministryRepo,
		departmentRepo: departmentRepo,
		superAdmin:     superAdmin,
		validator:      validator,
	}
}

// UpdateProfileRequest represents the request to change a display name
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,min=1,max=100"`
}

// AddRoleRequest represents the request to grant a role at a church. The
// ministry only applies to MINISTER, the departments only to DEPARTMENT_HEAD.
type AddRoleRequest struct {
	ChurchID      uuid.UUID   `json:"church_id" validate:"required"`
	Role          models.Role `json:"role" validate:"required,oneof=SUPER_ADMIN ADMIN SECRETARY MINISTER DEPARTMENT_HEAD"`
	MinistryID    *uuid.UUID  `json:"ministry_id,omitempty"`
	DepartmentIDs []uuid.UUID `json:"department_ids,omitempty"`
}

// UpdateRoleRequest represents the request to change the scope of a role.
// DepartmentIDs, when present, replaces the attached departments.
type UpdateRoleRequest struct {
	RoleID        uuid.UUID    `json:"role_id" validate:"required"`
	MinistryID    *uuid.UUID   `json:"ministry_id,omitempty"`
	ClearMinistry bool         `json:"clear_ministry,omitempty"`
	DepartmentIDs *[]uuid.UUID `json:"department_ids,omitempty"`
}

// RemoveRoleRequest identifies a role assignment by its natural key
type RemoveRoleRequest struct {
	ChurchID uuid.UUID   `json:"church_id" validate:"required"`
	Role     models.Role `json:"role" validate:"required,oneof=SUPER_ADMIN ADMIN SECRETARY MINISTER DEPARTMENT_HEAD"`
}

// ChurchAccess summarizes what the user can do at one church
type ChurchAccess struct {
	ChurchID      uuid.UUID         `json:"church_id"`
	Roles         []models.Role     `json:"roles"`
	Permissions   []rbac.Permission `json:"permissions"`
	Unscoped      bool              `json:"unscoped"`
	DepartmentIDs []uuid.UUID       `json:"department_ids,omitempty"`
}

// MeResponse is the authenticated user with role assignments and resolved access
type MeResponse struct {
	ID          uuid.UUID               `json:"id"`
	Email       string                  `json:"email"`
	Name        string                  `json:"name"`
	DisplayName *string                 `json:"display_name,omitempty"`
	AvatarURL   string                  `json:"avatar_url"`
	Roles       []models.UserChurchRole `json:"roles"`
	Churches    []ChurchAccess          `json:"churches"`
}

// ProvisionUser creates or refreshes the user behind a Google login. Users are
// matched by Google subject first, then by email.
func (s *UserService) ProvisionUser(ctx context.Context, profile *auth.UserProfile) (*models.User, error) {
	if profile == nil || profile.Email == "" || profile.Subject == "" {
		return nil, apperrors.NewValidationError("profile", "subject and email are required")
	}

	email := strings.ToLower(strings.TrimSpace(profile.Email))
	subject := profile.Subject

	user, err := s.repo.GetByGoogleID(subject)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get user by google id: %w", err)
	}
	if user == nil {
		user, err = s.repo.GetByEmail(email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get user by email: %w", err)
		}
	}

	log := logger.WithContext(ctx).WithField("email", email)

	if user == nil {
		user = &models.User{
			Email:     email,
			Name:      profile.Name,
			AvatarURL: profile.AvatarURL,
			GoogleID:  &subject,
		}
		if err := s.repo.Create(user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		log.Info("user created on first login")
	} else {
		user.Name = profile.Name
		user.AvatarURL = profile.AvatarURL
		user.GoogleID = &subject
		if err := s.repo.Update(user); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	if _, err := s.superAdmin.ReconcileUser(ctx, user); err != nil {
		log.WithError(err).Error("failed to reconcile super admin roles")
	}

	return user, nil
}

// GetMe returns the user with role assignments and access per church
func (s *UserService) GetMe(userID uuid.UUID) (*MeResponse, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	roles, err := s.roleRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}

	return &MeResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
		Roles:       roles,
		Churches:    churchAccess(toAssignments(roles)),
	}, nil
}

func churchAccess(assignments []rbac.RoleAssignment) []ChurchAccess {
	var order []uuid.UUID
	seen := make(map[uuid.UUID]bool)
	for _, a := range assignments {
		if !seen[a.ChurchID] {
			seen[a.ChurchID] = true
			order = append(order, a.ChurchID)
		}
	}

	access := make([]ChurchAccess, 0, len(order))
	for _, churchID := range order {
		id := churchID
		relevant := rbac.FilterByChurch(assignments, &id)
		roles := make([]models.Role, 0, len(relevant))
		for _, a := range relevant {
			roles = append(roles, a.Role)
		}
		scope := rbac.ResolveDepartmentScope(relevant)
		access = append(access, ChurchAccess{
			ChurchID:      churchID,
			Roles:         roles,
			Permissions:   rbac.ResolvePermissions(roles).List(),
			Unscoped:      scope.IsUnscoped(),
			DepartmentIDs: scope.DepartmentIDs(),
		})
	}
	return access
}

// ListByChurch lists the users holding a role at the church with those roles
func (s *UserService) ListByChurch(churchID uuid.UUID) ([]models.User, error) {
	users, err := s.repo.GetByChurchID(churchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// UpdateProfile changes a display name. Users edit their own profile; holders of
// a church wide role edit anyone's.
func (s *UserService) UpdateProfile(identity *rbac.Identity, userID uuid.UUID, req *UpdateProfileRequest) (*models.User, error) {
	if identity == nil || identity.UserID == uuid.Nil {
		return nil, apperrors.ErrUnauthenticated
	}

	if identity.UserID != userID {
		roles, err := s.roleRepo.GetByUserID(identity.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to get roles: %w", err)
		}
		allowed := false
		for _, r := range roles {
			if rbac.IsGlobalRole(r.Role) {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, apperrors.ErrForbidden
		}
	}

	if req != nil {
		req.DisplayName = strings.TrimSpace(req.DisplayName)
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateDisplayName(userID, req.DisplayName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update display name: %w", err)
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetRole retrieves one of the user's role assignments
func (s *UserService) GetRole(userID, roleID uuid.UUID) (*models.UserChurchRole, error) {
	role, err := s.roleRepo.GetByID(roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	if role.UserID != userID {
		return nil, apperrors.ErrRoleNotFound
	}
	return role, nil
}

// AddRole grants a role at a church. A user holds each role at most once per church.
func (s *UserService) AddRole(userID uuid.UUID, req *AddRoleRequest) (*models.UserChurchRole, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	if _, err := s.churchRepo.GetByID(req.ChurchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChurchNotFound
		}
		return nil, fmt.Errorf("failed to verify church: %w", err)
	}

	existing, err := s.roleRepo.Find(userID, req.ChurchID, req.Role)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing role: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrRoleExists
	}

	role := &models.UserChurchRole{UserID: userID, ChurchID: req.ChurchID, Role: req.Role}

	if req.Role == models.RoleMinister && req.MinistryID != nil {
		if err := s.checkMinistry(req.ChurchID, *req.MinistryID); err != nil {
			return nil, err
		}
		role.MinistryID = req.MinistryID
	}

	if req.Role == models.RoleDepartmentHead && len(req.DepartmentIDs) > 0 {
		ids, err := s.checkDepartments(req.ChurchID, req.DepartmentIDs)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			role.Departments = append(role.Departments, models.UserDepartment{DepartmentID: id})
		}
	}

	if err := s.roleRepo.Create(role); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	created, err := s.roleRepo.GetByID(role.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return created, nil
}

// UpdateRole changes the ministry and/or the attached departments of a role
func (s *UserService) UpdateRole(userID uuid.UUID, req *UpdateRoleRequest) (*models.UserChurchRole, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	role, err := s.GetRole(userID, req.RoleID)
	if err != nil {
		return nil, err
	}

	switch {
	case req.ClearMinistry:
		role.MinistryID = nil
		if err := s.roleRepo.Update(role); err != nil {
			return nil, fmt.Errorf("failed to update role: %w", err)
		}
	case req.MinistryID != nil:
		if err := s.checkMinistry(role.ChurchID, *req.MinistryID); err != nil {
			return nil, err
		}
		role.MinistryID = req.MinistryID
		if err := s.roleRepo.Update(role); err != nil {
			return nil, fmt.Errorf("failed to update role: %w", err)
		}
	}

	if req.DepartmentIDs != nil {
		ids, err := s.checkDepartments(role.ChurchID, *req.DepartmentIDs)
		if err != nil {
			return nil, err
		}
		if err := s.roleRepo.ReplaceDepartments(role.ID, ids); err != nil {
			return nil, fmt.Errorf("failed to replace departments: %w", err)
		}
	}

	updated, err := s.roleRepo.GetByID(role.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return updated, nil
}

// RemoveRole revokes a role at a church
func (s *UserService) RemoveRole(userID uuid.UUID, req *RemoveRoleRequest) error {
	if err := validateRequest(s.validator, req); err != nil {
		return err
	}

	role, err := s.roleRepo.Find(userID, req.ChurchID, req.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRoleNotFound
		}
		return fmt.Errorf("failed to get role: %w", err)
	}

	if err := s.roleRepo.Delete(role.ID); err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}

func (s *UserService) checkMinistry(churchID, ministryID uuid.UUID) error {
	ministry, err := s.ministryRepo.GetByID(ministryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMinistryNotFound
		}
		return fmt.Errorf("failed to verify ministry: %w", err)
	}
	if ministry.ChurchID != churchID {
		return apperrors.NewValidationError("ministry_id", "ministry belongs to another church")
	}
	return nil
}

// checkDepartments verifies the departments belong to the church and drops duplicates
func (s *UserService) checkDepartments(churchID uuid.UUID, departmentIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(departmentIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	departments, err := s.departmentRepo.GetByChurchID(churchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get departments: %w", err)
	}
	inChurch := make(map[uuid.UUID]bool, len(departments))
	for _, d := range departments {
		inChurch[d.ID] = true
	}

	seen := make(map[uuid.UUID]bool, len(departmentIDs))
	ids := make([]uuid.UUID, 0, len(departmentIDs))
	for _, id := range departmentIDs {
		if !inChurch[id] {
			return nil, apperrors.NewValidationError("department_ids", fmt.Sprintf("department %s does not belong to this church", id))
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, nil
}
