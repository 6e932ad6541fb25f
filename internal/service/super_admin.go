package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"church-planning-backend/internal/database/models"
	"church-planning-backend/internal/logger"
	"church-planning-backend/internal/metrics"
	"church-planning-backend/internal/repository"

	"github.com/google/uuid"
)

// SuperAdminService grants SUPER_ADMIN on every church to the configured emails.
// Every step is an idempotent upsert on (user, church, role).
type SuperAdminService struct {
	userRepo   repository.UserRepositoryInterface
	churchRepo repository.ChurchRepositoryInterface
	roleRepo   repository.RoleRepositoryInterface
	emails     []string
	metrics    metrics.Recorder
}

// NewSuperAdminService creates a new super-admin reconciliation service
func NewSuperAdminService(userRepo repository.UserRepositoryInterface, churchRepo repository.ChurchRepositoryInterface, roleRepo repository.RoleRepositoryInterface, emails []string, recorder metrics.Recorder) *SuperAdminService {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	return &SuperAdminService{
		userRepo:   userRepo,
		churchRepo: churchRepo,
		roleRepo:   roleRepo,
		emails:     emails,
		metrics:    recorder,
	}
}

// ReconcileResult summarizes a reconciliation run
type ReconcileResult struct {
	Users    int `json:"users"`
	Churches int `json:"churches"`
	Created  int `json:"created"`
}

// Reconcile ensures every existing user with a configured email is SUPER_ADMIN on every church
func (s *SuperAdminService) Reconcile(ctx context.Context) (result *ReconcileResult, err error) {
	start := time.Now()
	defer func() {
		s.metrics.Observe(ctx, "reconcile_super_admins", err == nil, time.Since(start))
	}()

	result = &ReconcileResult{}
	if len(s.emails) == 0 {
		return result, nil
	}

	users, err := s.userRepo.GetByEmails(s.emails)
	if err != nil {
		return nil, fmt.Errorf("failed to get super-admin users: %w", err)
	}
	churches, err := s.churchRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get churches: %w", err)
	}

	result.Users = len(users)
	result.Churches = len(churches)
	for _, u := range users {
		for _, c := range churches {
			created, err := s.roleRepo.Ensure(u.ID, c.ID, models.RoleSuperAdmin)
			if err != nil {
				return nil, fmt.Errorf("failed to grant super admin to %s: %w", u.Email, err)
			}
			if created {
				result.Created++
			}
		}
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"users":    result.Users,
		"churches": result.Churches,
		"created":  result.Created,
	}).Info("super-admin reconciliation finished")
	return result, nil
}

// ReconcileChurch grants SUPER_ADMIN on a new church to the configured users and to
// every user already holding SUPER_ADMIN elsewhere.
func (s *SuperAdminService) ReconcileChurch(ctx context.Context, churchID uuid.UUID) (int, error) {
	userIDs, err := s.roleRepo.GetUserIDsByRole(models.RoleSuperAdmin)
	if err != nil {
		return 0, fmt.Errorf("failed to get super-admin holders: %w", err)
	}

	seen := make(map[uuid.UUID]bool, len(userIDs))
	for _, id := range userIDs {
		seen[id] = true
	}

	if len(s.emails) > 0 {
		users, err := s.userRepo.GetByEmails(s.emails)
		if err != nil {
			return 0, fmt.Errorf("failed to get super-admin users: %w", err)
		}
		for _, u := range users {
			if !seen[u.ID] {
				seen[u.ID] = true
				userIDs = append(userIDs, u.ID)
			}
		}
	}

	created := 0
	for _, id := range userIDs {
		ok, err := s.roleRepo.Ensure(id, churchID, models.RoleSuperAdmin)
		if err != nil {
			return created, fmt.Errorf("failed to grant super admin: %w", err)
		}
		if ok {
			created++
		}
	}

	if created > 0 {
		logger.WithContext(ctx).WithField("church_id", churchID).WithField("created", created).Info("super admins granted on church")
	}
	return created, nil
}

// ReconcileUser grants SUPER_ADMIN on every church when the user's email is configured
func (s *SuperAdminService) ReconcileUser(ctx context.Context, user *models.User) (int, error) {
	if user == nil || !s.isConfigured(user.Email) {
		return 0, nil
	}

	churches, err := s.churchRepo.GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to get churches: %w", err)
	}

	created := 0
	for _, c := range churches {
		ok, err := s.roleRepo.Ensure(user.ID, c.ID, models.RoleSuperAdmin)
		if err != nil {
			return created, fmt.Errorf("failed to grant super admin: %w", err)
		}
		if ok {
			created++
		}
	}

	if created > 0 {
		logger.WithContext(ctx).WithField("created", created).Info("super admin granted on churches")
	}
	return created, nil
}

func (s *SuperAdminService) isConfigured(email string) bool {
	for _, e := range s.emails {
		if strings.EqualFold(strings.TrimSpace(e), email) {
			return true
		}
	}
	return false
}
