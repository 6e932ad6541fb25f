package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"church-planning-backend/internal/database/models"
	apperrors "church-planning-backend/internal/errors"
	"church-planning-backend/internal/logger"
	"church-planning-backend/internal/rbac"
	"church-planning-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// ChurchService handles business logic for churches
type ChurchService struct {
	repo       repository.ChurchRepositoryInterface
	roleRepo   repository.RoleRepositoryInterface
	superAdmin SuperAdminServiceInterface
	validator  *validator.Validate
}

// NewChurchService creates a new church service
func NewChurchService(repo repository.ChurchRepositoryInterface, roleRepo repository.RoleRepositoryInterface, superAdmin SuperAdminServiceInterface, validator *validator.Validate) *ChurchService {
	return &ChurchService{
		repo:       repo,
		roleRepo:   roleRepo,
		superAdmin: superAdmin,
		validator:  validator,
	}
}

// CreateChurchRequest represents the request to create a church
type CreateChurchRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Slug string `json:"slug,omitempty" validate:"omitempty,max=200"`
}

// UpdateChurchRequest represents the request to rename a church
type UpdateChurchRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Slug string `json:"slug,omitempty" validate:"omitempty,max=200"`
}

// Create creates a church and grants SUPER_ADMIN on it to the super admins
func (s *ChurchService) Create(ctx context.Context, req *CreateChurchRequest) (*models.Church, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	slug, err := s.availableSlug(req.Name, req.Slug, uuid.Nil)
	if err != nil {
		return nil, err
	}

	church := &models.Church{Name: strings.TrimSpace(req.Name), Slug: slug}
	if err := s.repo.Create(church); err != nil {
		return nil, fmt.Errorf("failed to create church: %w", err)
	}

	if _, err := s.superAdmin.ReconcileChurch(ctx, church.ID); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("church_id", church.ID).Error("failed to grant super admins on new church")
	}

	return church, nil
}

// GetByID retrieves a church by ID
func (s *ChurchService) GetByID(id uuid.UUID) (*models.Church, error) {
	church, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChurchNotFound
		}
		return nil, fmt.Errorf("failed to get church: %w", err)
	}
	return church, nil
}

// Update renames a church and recomputes its slug from the given slug, or from
// the name when none is given
func (s *ChurchService) Update(id uuid.UUID, req *UpdateChurchRequest) (*models.Church, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	church, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	slug, err := s.availableSlug(req.Name, req.Slug, id)
	if err != nil {
		return nil, err
	}

	church.Name = strings.TrimSpace(req.Name)
	church.Slug = slug
	if err := s.repo.Update(church); err != nil {
		return nil, fmt.Errorf("failed to update church: %w", err)
	}
	return church, nil
}

// availableSlug slugifies slug, falling back to name, and fails when a church
// other than self already uses it. A nil self matches no church.
func (s *ChurchService) availableSlug(name, slug string, self uuid.UUID) (string, error) {
	result := Slugify(slug)
	if result == "" {
		result = Slugify(name)
	}
	if result == "" {
		return "", apperrors.NewValidationError("name", "must contain at least one letter or digit")
	}

	existing, err := s.repo.GetBySlug(result)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to check existing church: %w", err)
	}
	if existing != nil && (self == uuid.Nil || existing.ID != self) {
		return "", apperrors.ErrChurchExists
	}
	return result, nil
}

// ListForUser returns every church when all is set, otherwise the churches where
// the user holds a role.
func (s *ChurchService) ListForUser(identity *rbac.Identity, all bool) ([]models.Church, error) {
	if all {
		churches, err := s.repo.GetAll()
		if err != nil {
			return nil, fmt.Errorf("failed to get churches: %w", err)
		}
		return churches, nil
	}

	if identity == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	roles, err := s.roleRepo.GetByUserID(identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}

	seen := make(map[uuid.UUID]bool, len(roles))
	ids := make([]uuid.UUID, 0, len(roles))
	for _, r := range roles {
		if !seen[r.ChurchID] {
			seen[r.ChurchID] = true
			ids = append(ids, r.ChurchID)
		}
	}
	if len(ids) == 0 {
		return []models.Church{}, nil
	}

	churches, err := s.repo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get churches: %w", err)
	}
	return churches, nil
}

// Delete deletes a church with everything it owns
func (s *ChurchService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete church: %w", err)
	}
	return nil
}

// Slugify lowercases, strips accents, replaces runs of other characters with a
// single dash and trims dashes at both ends.
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.ToLower(name))
	if err != nil {
		stripped = strings.ToLower(name)
	}

	var b strings.Builder
	dash := false
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
