package repository

import (
	"church-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// GetByID retrieves an event with its linked departments
func (r *EventRepository) GetByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("EventDepartments.Department").First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetByChurchID retrieves the events of a church, most recent first
func (r *EventRepository) GetByChurchID(churchID uuid.UUID) ([]models.Event, error) {
	var events []models.Event
	err := r.db.
		Preload("EventDepartments.Department").
		Where("church_id = ?", churchID).
		Order("date DESC").
		Find(&events).Error
	return events, err
}

// Update updates an event's title, type and date
func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Model(event).Updates(map[string]interface{}{
		"title": event.Title,
		"type":  event.Type,
		"date":  event.Date,
	}).Error
}

// Delete deletes an event; links and plannings cascade
func (r *EventRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Event{}, "id = ?", id).Error
}
