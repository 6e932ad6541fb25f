package repository

import (
	"strings"

	"church-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email (case insensitive)
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "LOWER(email) = ?", strings.ToLower(email)).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmails retrieves the users matching any of the (lowercased) emails
func (r *UserRepository) GetByEmails(emails []string) ([]models.User, error) {
	var users []models.User
	if len(emails) == 0 {
		return users, nil
	}
	lowered := make([]string, 0, len(emails))
	for _, e := range emails {
		lowered = append(lowered, strings.ToLower(e))
	}
	err := r.db.Where("LOWER(email) IN ?", lowered).Find(&users).Error
	return users, err
}

// GetByGoogleID retrieves a user by the Google account subject
func (r *UserRepository) GetByGoogleID(googleID string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "google_id = ?", googleID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByChurchID retrieves the users holding a role at the church, with those roles
func (r *UserRepository) GetByChurchID(churchID uuid.UUID) ([]models.User, error) {
	var users []models.User
	sub := r.db.Model(&models.UserChurchRole{}).Select("user_id").Where("church_id = ?", churchID)
	err := r.db.
		Preload("ChurchRoles", "church_id = ?", churchID).
		Preload("ChurchRoles.Departments").
		Where("id IN (?)", sub).
		Order("email ASC").
		Find(&users).Error
	return users, err
}

// Update updates a user's profile fields from the identity provider
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Model(user).Updates(map[string]interface{}{
		"name":       user.Name,
		"avatar_url": user.AvatarURL,
		"google_id":  user.GoogleID,
	}).Error
}

// UpdateDisplayName sets the display name of a user
func (r *UserRepository) UpdateDisplayName(id uuid.UUID, displayName string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("display_name", displayName)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
