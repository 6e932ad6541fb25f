package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"church-planning-backend/internal/database/models"
	apperrors "church-planning-backend/internal/errors"
	"church-planning-backend/internal/logger"
	"church-planning-backend/internal/metrics"
	"church-planning-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const monthLayout = "2006-01"

var (
	monthlyStatuses  = []models.PlanningStatus{models.PlanningStatusEnService, models.PlanningStatusEnServiceDebrief}
	starViewStatuses = []models.PlanningStatus{models.PlanningStatusEnService, models.PlanningStatusEnServiceDebrief, models.PlanningStatusRemplacant}
)

// PlanningService assigns members of a department to an event. It does not
// check permissions; callers authorize through AccessService first.
type PlanningService struct {
	churchRepo     repository.ChurchRepositoryInterface
	eventRepo      repository.EventRepositoryInterface
	departmentRepo repository.DepartmentRepositoryInterface
	memberRepo     repository.MemberRepositoryInterface
	planningRepo   repository.PlanningRepositoryInterface
	validator      *validator.Validate
	metrics        metrics.Recorder
	now            func() time.Time
}

// NewPlanningService creates a new planning service. A nil recorder discards metrics.
func NewPlanningService(
	churchRepo repository.ChurchRepositoryInterface,
	eventRepo repository.EventRepositoryInterface,
	departmentRepo repository.DepartmentRepositoryInterface,
	memberRepo repository.MemberRepositoryInterface,
	planningRepo repository.PlanningRepositoryInterface,
	validator *validator.Validate,
	recorder metrics.Recorder,
) *PlanningService {
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	return &PlanningService{
		churchRepo:     churchRepo,
		eventRepo:      eventRepo,
		departmentRepo: departmentRepo,
		memberRepo:     memberRepo,
		planningRepo:   planningRepo,
		validator:      validator,
		metrics:        recorder,
		now:            time.Now,
	}
}

// PlanningAssignment is one member's requested status. A null status clears the assignment.
type PlanningAssignment struct {
	MemberID uuid.UUID              `json:"member_id" validate:"required"`
	Status   *models.PlanningStatus `json:"status"`
}

// SetPlanningRequest represents the request to replace statuses of an event department
type SetPlanningRequest struct {
	Plannings []PlanningAssignment `json:"plannings" validate:"required,dive"`
}

// MemberWithStatus is a department member annotated with its planning
type MemberWithStatus struct {
	ID         uuid.UUID              `json:"id"`
	FirstName  string                 `json:"first_name"`
	LastName   string                 `json:"last_name"`
	Status     *models.PlanningStatus `json:"status"`
	PlanningID *uuid.UUID             `json:"planning_id"`
}

// PlanningResponse represents the planning of one department for one event
type PlanningResponse struct {
	EventDepartment models.EventDepartment `json:"event_department"`
	Members         []MemberWithStatus     `json:"members"`
}

// SetPlanningResponse represents the rows written by SetPlanning
type SetPlanningResponse struct {
	EventDepartment models.EventDepartment `json:"event_department"`
	Plannings       []models.Planning      `json:"plannings"`
}

// ScheduledMember is a member on duty in a read model
type ScheduledMember struct {
	ID        uuid.UUID             `json:"id"`
	FirstName string                `json:"first_name"`
	LastName  string                `json:"last_name"`
	Status    models.PlanningStatus `json:"status"`
}

// MonthlyEvent is one event of a department's month
type MonthlyEvent struct {
	ID      uuid.UUID         `json:"id"`
	Title   string            `json:"title"`
	Type    string            `json:"type"`
	Date    time.Time         `json:"date"`
	Members []ScheduledMember `json:"members"`
}

// MonthlyPlanningResponse lists a department's events in a month with members on duty
type MonthlyPlanningResponse struct {
	DepartmentID uuid.UUID      `json:"department_id"`
	Month        string         `json:"month"`
	Events       []MonthlyEvent `json:"events"`
}

// StarViewEvent is the event header of a star view
type StarViewEvent struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Date       time.Time `json:"date"`
	ChurchName string    `json:"church_name"`
}

// StarViewDepartment lists the scheduled members of one linked department
type StarViewDepartment struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	MinistryName string            `json:"ministry_name"`
	Members      []ScheduledMember `json:"members"`
}

// StarViewResponse is the roster of every department serving at an event
type StarViewResponse struct {
	Event       StarViewEvent        `json:"event"`
	Departments []StarViewDepartment `json:"departments"`
	TotalStars  int                  `json:"total_stars"`
}

// GetPlanning returns every member of the department with its status for the event
func (s *PlanningService) GetPlanning(eventID, departmentID uuid.UUID) (*PlanningResponse, error) {
	link, err := s.planningRepo.GetEventDepartment(eventID, departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get event department: %w", err)
	}

	members, err := s.memberRepo.GetByDepartmentID(departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	plannings, err := s.planningRepo.GetByEventDepartmentID(link.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plannings: %w", err)
	}

	byMember := make(map[uuid.UUID]models.Planning, len(plannings))
	for _, p := range plannings {
		byMember[p.MemberID] = p
	}

	result := make([]MemberWithStatus, len(members))
	for i, m := range members {
		result[i] = MemberWithStatus{ID: m.ID, FirstName: m.FirstName, LastName: m.LastName}
		if p, ok := byMember[m.ID]; ok {
			id := p.ID
			result[i].Status = p.Status
			result[i].PlanningID = &id
		}
	}

	return &PlanningResponse{EventDepartment: *link, Members: result}, nil
}

// SetPlanning upserts the statuses of the batch for the event department, creating
// the link when needed. Nothing is written unless the whole batch is valid and the
// link ends up with at most one EN_SERVICE_DEBRIEF member; the stored side of that
// rule is checked by the repository under a lock on the link.
func (s *PlanningService) SetPlanning(ctx context.Context, eventID, departmentID uuid.UUID, req *SetPlanningRequest) (resp *SetPlanningResponse, err error) {
	start := s.now()
	defer func() {
		s.metrics.Observe(ctx, "set_planning", err == nil, s.now().Sub(start))
	}()

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event_id":      eventID,
		"department_id": departmentID,
	})

	if err := s.validateBatch(req); err != nil {
		s.metrics.PlanningRejected("invalid_request")
		return nil, err
	}

	if _, err := s.departmentInEventChurch(eventID, departmentID); err != nil {
		return nil, err
	}

	if countDebrief(req.Plannings) > 1 {
		s.metrics.PlanningRejected("multiple_debrief")
		log.Warn("planning rejected: more than one debrief in batch")
		return nil, apperrors.ErrMultipleDebrief
	}

	if err := s.checkMembership(departmentID, req.Plannings); err != nil {
		s.metrics.PlanningRejected("member_not_in_department")
		return nil, err
	}

	rows := make([]models.Planning, len(req.Plannings))
	for i, a := range req.Plannings {
		rows[i] = models.Planning{MemberID: a.MemberID, Status: a.Status}
	}

	link, saved, err := s.planningRepo.SavePlannings(eventID, departmentID, rows)
	if err != nil {
		if errors.Is(err, repository.ErrMultipleDebrief) {
			s.metrics.PlanningRejected("multiple_debrief")
			log.Warn("planning rejected: debrief already held by another member")
			return nil, apperrors.ErrMultipleDebrief
		}
		return nil, fmt.Errorf("failed to save plannings: %w", err)
	}

	log.WithField("count", len(saved)).Info("planning saved")
	return &SetPlanningResponse{EventDepartment: *link, Plannings: saved}, nil
}

func (s *PlanningService) validateBatch(req *SetPlanningRequest) error {
	if req == nil {
		return apperrors.NewValidationError("plannings", "is required")
	}
	if err := validateRequest(s.validator, req); err != nil {
		return err
	}

	seen := make(map[uuid.UUID]bool, len(req.Plannings))
	for _, a := range req.Plannings {
		if a.Status != nil && !a.Status.IsValid() {
			return apperrors.ErrInvalidPlanningStatus
		}
		if seen[a.MemberID] {
			return apperrors.ErrDuplicateMember
		}
		seen[a.MemberID] = true
	}
	return nil
}

func countDebrief(assignments []PlanningAssignment) int {
	n := 0
	for _, a := range assignments {
		if models.IsDebrief(a.Status) {
			n++
		}
	}
	return n
}

// departmentInEventChurch loads both sides of a link and checks they share a church
func (s *PlanningService) departmentInEventChurch(eventID, departmentID uuid.UUID) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	department, err := s.departmentRepo.GetWithMinistry(departmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	if department.Ministry == nil || department.Ministry.ChurchID != event.ChurchID {
		return nil, apperrors.ErrChurchMismatch
	}
	return event, nil
}

func (s *PlanningService) checkMembership(departmentID uuid.UUID, assignments []PlanningAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(assignments))
	for i, a := range assignments {
		ids[i] = a.MemberID
	}

	members, err := s.memberRepo.GetByIDs(ids)
	if err != nil {
		return fmt.Errorf("failed to get members: %w", err)
	}

	inDepartment := make(map[uuid.UUID]bool, len(members))
	for _, m := range members {
		if m.DepartmentID == departmentID {
			inDepartment[m.ID] = true
		}
	}
	for _, id := range ids {
		if !inDepartment[id] {
			return apperrors.NewValidationError("member_id", fmt.Sprintf("member %s does not belong to this department", id))
		}
	}
	return nil
}

// LinkDepartment asks a department to serve at an event. Linking twice is a no-op.
func (s *PlanningService) LinkDepartment(eventID, departmentID uuid.UUID) (*models.EventDepartment, error) {
	if _, err := s.departmentInEventChurch(eventID, departmentID); err != nil {
		return nil, err
	}

	link, err := s.planningRepo.EnsureEventDepartment(eventID, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to link department: %w", err)
	}
	return link, nil
}

// UnlinkDepartment removes a department from an event along with its plannings
func (s *PlanningService) UnlinkDepartment(eventID, departmentID uuid.UUID) error {
	removed, err := s.planningRepo.DeleteEventDepartment(eventID, departmentID)
	if err != nil {
		return fmt.Errorf("failed to unlink department: %w", err)
	}
	if removed == 0 {
		return apperrors.ErrEventDepartmentNotFound
	}
	return nil
}

// GetMonthlyPlanning lists the department's events in the month (YYYY-MM, current
// month when empty) with the members on duty.
func (s *PlanningService) GetMonthlyPlanning(departmentID uuid.UUID, month string) (*MonthlyPlanningResponse, error) {
	var from time.Time
	if month == "" {
		now := s.now().UTC()
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else {
		parsed, err := time.Parse(monthLayout, month)
		if err != nil {
			return nil, apperrors.ErrInvalidMonthFormat
		}
		from = parsed
	}
	to := from.AddDate(0, 1, 0)

	if _, err := s.departmentRepo.GetByID(departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	links, err := s.planningRepo.GetDepartmentSchedule(departmentID, from, to, monthlyStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to get department schedule: %w", err)
	}

	events := make([]MonthlyEvent, 0, len(links))
	for _, link := range links {
		if link.Event == nil {
			continue
		}
		events = append(events, MonthlyEvent{
			ID:      link.Event.ID,
			Title:   link.Event.Title,
			Type:    link.Event.Type,
			Date:    link.Event.Date,
			Members: scheduledMembers(link.Plannings),
		})
	}

	return &MonthlyPlanningResponse{
		DepartmentID: departmentID,
		Month:        from.Format(monthLayout),
		Events:       events,
	}, nil
}

// GetStarView returns, for every department linked to the event, the members
// serving or standing in, with the total count.
func (s *PlanningService) GetStarView(eventID uuid.UUID) (*StarViewResponse, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	church, err := s.churchRepo.GetByID(event.ChurchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get church: %w", err)
	}

	links, err := s.planningRepo.GetEventRoster(eventID, starViewStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to get event roster: %w", err)
	}

	resp := &StarViewResponse{
		Event: StarViewEvent{
			ID:         event.ID,
			Title:      event.Title,
			Date:       event.Date,
			ChurchName: church.Name,
		},
		Departments: make([]StarViewDepartment, 0, len(links)),
	}

	for _, link := range links {
		dept := StarViewDepartment{Members: scheduledMembers(link.Plannings)}
		if link.Department != nil {
			dept.ID = link.Department.ID
			dept.Name = link.Department.Name
			if link.Department.Ministry != nil {
				dept.MinistryName = link.Department.Ministry.Name
			}
		}
		resp.TotalStars += len(dept.Members)
		resp.Departments = append(resp.Departments, dept)
	}

	return resp, nil
}

func scheduledMembers(plannings []models.Planning) []ScheduledMember {
	members := make([]ScheduledMember, 0, len(plannings))
	for _, p := range plannings {
		if p.Member == nil || p.Status == nil {
			continue
		}
		members = append(members, ScheduledMember{
			ID:        p.Member.ID,
			FirstName: p.Member.FirstName,
			LastName:  p.Member.LastName,
			Status:    *p.Status,
		})
	}
	return members
}
