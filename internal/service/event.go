package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"church-planning-backend/internal/database/models"
	apperrors "church-planning-backend/internal/errors"
	"church-planning-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventService handles business logic for events
type EventService struct {
	repo       repository.EventRepositoryInterface
	churchRepo repository.ChurchRepositoryInterface
	validator  *validator.Validate
}

// NewEventService creates a new event service
func NewEventService(repo repository.EventRepositoryInterface, churchRepo repository.ChurchRepositoryInterface, validator *validator.Validate) *EventService {
	return &EventService{repo: repo, churchRepo: churchRepo, validator: validator}
}

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	ChurchID uuid.UUID `json:"church_id" validate:"required"`
	Title    string    `json:"title" validate:"required,min=1,max=200"`
	Type     string    `json:"type" validate:"required,min=1,max=100"`
	Date     time.Time `json:"date" validate:"required"`
}

// UpdateEventRequest represents the request to update an event
type UpdateEventRequest struct {
	Title string    `json:"title" validate:"required,min=1,max=200"`
	Type  string    `json:"type" validate:"required,min=1,max=100"`
	Date  time.Time `json:"date" validate:"required"`
}

// Create creates an event in a church
func (s *EventService) Create(req *CreateEventRequest) (*models.Event, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.churchRepo.GetByID(req.ChurchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChurchNotFound
		}
		return nil, fmt.Errorf("failed to verify church: %w", err)
	}

	event := &models.Event{
		ChurchID: req.ChurchID,
		Title:    strings.TrimSpace(req.Title),
		Type:     strings.TrimSpace(req.Type),
		Date:     req.Date.UTC(),
	}
	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

// GetByID retrieves an event with its linked departments
func (s *EventService) GetByID(id uuid.UUID) (*models.Event, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// ListByChurch lists the events of a church, most recent first
func (s *EventService) ListByChurch(churchID uuid.UUID) ([]models.Event, error) {
	events, err := s.repo.GetByChurchID(churchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// Update updates the title, type and date of an event
func (s *EventService) Update(id uuid.UUID, req *UpdateEventRequest) (*models.Event, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	event, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	event.Title = strings.TrimSpace(req.Title)
	event.Type = strings.TrimSpace(req.Type)
	event.Date = req.Date.UTC()
	if err := s.repo.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

// Delete deletes an event; links and plannings cascade
func (s *EventService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
