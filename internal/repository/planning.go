package repository

import (
	"errors"
	"time"

	"church-planning-backend/internal/database"
	"church-planning-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlanningRepository handles event-department links and the plannings under them
type PlanningRepository struct {
	db *gorm.DB
}

// NewPlanningRepository creates a new planning repository
func NewPlanningRepository(db *gorm.DB) *PlanningRepository {
	return &PlanningRepository{db: db}
}

// GetEventDepartment retrieves the link between an event and a department
func (r *PlanningRepository) GetEventDepartment(eventID, departmentID uuid.UUID) (*models.EventDepartment, error) {
	var link models.EventDepartment
	err := r.db.First(&link, "event_id = ? AND department_id = ?", eventID, departmentID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetEventDepartmentsByEventID retrieves the links of an event with their departments
func (r *PlanningRepository) GetEventDepartmentsByEventID(eventID uuid.UUID) ([]models.EventDepartment, error) {
	var links []models.EventDepartment
	err := r.db.Preload("Department").Where("event_id = ?", eventID).Find(&links).Error
	return links, err
}

// EnsureEventDepartment returns the link, creating it when missing. Concurrent
// callers converge on the same row.
func (r *PlanningRepository) EnsureEventDepartment(eventID, departmentID uuid.UUID) (*models.EventDepartment, error) {
	var link *models.EventDepartment
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		link, err = ensureLink(tx, eventID, departmentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// DeleteEventDepartment removes the link and, by cascade, its plannings
func (r *PlanningRepository) DeleteEventDepartment(eventID, departmentID uuid.UUID) (int64, error) {
	result := r.db.Where("event_id = ? AND department_id = ?", eventID, departmentID).Delete(&models.EventDepartment{})
	return result.RowsAffected, result.Error
}

// GetByEventDepartmentID retrieves every planning under a link
func (r *PlanningRepository) GetByEventDepartmentID(eventDepartmentID uuid.UUID) ([]models.Planning, error) {
	var plannings []models.Planning
	err := r.db.Where("event_department_id = ?", eventDepartmentID).Find(&plannings).Error
	return plannings, err
}

// ErrMultipleDebrief is returned by SavePlannings when the link would end up with
// more than one EN_SERVICE_DEBRIEF member
var ErrMultipleDebrief = errors.New("more than one member with EN_SERVICE_DEBRIEF status")

// SavePlannings ensures the link and upserts one row per member in a single
// transaction. Rows are keyed by (event_department_id, member_id); only the
// status of an existing row changes. The link row is locked for the duration so
// concurrent saves on the same link are serialized, rows of members that left the
// department are dropped, and the batch is rejected with ErrMultipleDebrief when
// the stored rows overlaid with it hold more than one debrief.
func (r *PlanningRepository) SavePlannings(eventID, departmentID uuid.UUID, plannings []models.Planning) (*models.EventDepartment, []models.Planning, error) {
	var link *models.EventDepartment
	var saved []models.Planning

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var err error
		if _, err = ensureLink(tx, eventID, departmentID); err != nil {
			return err
		}
		if link, err = lockLink(tx, eventID, departmentID); err != nil {
			return err
		}

		if err := tx.
			Where("event_department_id = ?", link.ID).
			Where("member_id NOT IN (SELECT id FROM members WHERE department_id = ?)", departmentID).
			Delete(&models.Planning{}).Error; err != nil {
			return err
		}
		if len(plannings) == 0 {
			return nil
		}

		var existing []models.Planning
		if err := tx.Where("event_department_id = ?", link.ID).Find(&existing).Error; err != nil {
			return err
		}
		if debriefCount(existing, plannings) > 1 {
			return ErrMultipleDebrief
		}

		// debrief rows go last so a debrief handed from one member to another
		// never holds the single-debrief index twice
		var cleared, debriefs []models.Planning
		memberIDs := make([]uuid.UUID, len(plannings))
		for i, p := range plannings {
			row := models.Planning{
				EventDepartmentID: link.ID,
				MemberID:          p.MemberID,
				Status:            p.Status,
			}
			if models.IsDebrief(p.Status) {
				debriefs = append(debriefs, row)
			} else {
				cleared = append(cleared, row)
			}
			memberIDs[i] = p.MemberID
		}
		for _, rows := range [][]models.Planning{cleared, debriefs} {
			if err := upsertPlannings(tx, rows); err != nil {
				return err
			}
		}

		// re-read: on conflict the generated ids are not the stored ones
		return tx.Where("event_department_id = ? AND member_id IN ?", link.ID, memberIDs).
			Find(&saved).Error
	})
	if err != nil {
		if isSingleDebriefViolation(err) {
			return nil, nil, ErrMultipleDebrief
		}
		return nil, nil, err
	}
	return link, saved, nil
}

func upsertPlannings(tx *gorm.DB, rows []models.Planning) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_department_id"}, {Name: "member_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&rows).Error
}

// debriefCount overlays batch on existing by member and counts debrief statuses
func debriefCount(existing, batch []models.Planning) int {
	statuses := make(map[uuid.UUID]*models.PlanningStatus, len(existing)+len(batch))
	for _, p := range existing {
		statuses[p.MemberID] = p.Status
	}
	for _, p := range batch {
		statuses[p.MemberID] = p.Status
	}

	n := 0
	for _, st := range statuses {
		if models.IsDebrief(st) {
			n++
		}
	}
	return n
}

func isSingleDebriefViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == database.SingleDebriefIndex
}

// GetDepartmentSchedule retrieves the department's links to events dated in
// [from, to), ordered by event date, with plannings in the given statuses and
// their members.
func (r *PlanningRepository) GetDepartmentSchedule(departmentID uuid.UUID, from, to time.Time, statuses []models.PlanningStatus) ([]models.EventDepartment, error) {
	var links []models.EventDepartment
	err := r.db.
		Joins("Event").
		Preload("Plannings", "status IN ?", statuses).
		Preload("Plannings.Member").
		Where("event_departments.department_id = ?", departmentID).
		Where(`"Event"."date" >= ? AND "Event"."date" < ?`, from, to).
		Order(`"Event"."date" ASC`).
		Find(&links).Error
	return links, err
}

// GetEventRoster retrieves every link of the event with its department, the
// department's ministry and the plannings in the given statuses with members,
// ordered by ministry name then department name.
func (r *PlanningRepository) GetEventRoster(eventID uuid.UUID, statuses []models.PlanningStatus) ([]models.EventDepartment, error) {
	var links []models.EventDepartment
	err := r.db.
		Select("event_departments.*").
		Joins("JOIN departments ON departments.id = event_departments.department_id").
		Joins("JOIN ministries ON ministries.id = departments.ministry_id").
		Preload("Department.Ministry").
		Preload("Plannings", "status IN ?", statuses).
		Preload("Plannings.Member").
		Where("event_departments.event_id = ?", eventID).
		Order("ministries.name ASC, departments.name ASC").
		Find(&links).Error
	return links, err
}

func lockLink(tx *gorm.DB, eventID, departmentID uuid.UUID) (*models.EventDepartment, error) {
	var link models.EventDepartment
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&link, "event_id = ? AND department_id = ?", eventID, departmentID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func ensureLink(tx *gorm.DB, eventID, departmentID uuid.UUID) (*models.EventDepartment, error) {
	candidate := models.EventDepartment{EventID: eventID, DepartmentID: departmentID}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}, {Name: "department_id"}},
		DoNothing: true,
	}).Create(&candidate).Error; err != nil {
		return nil, err
	}

	var link models.EventDepartment
	if err := tx.First(&link, "event_id = ? AND department_id = ?", eventID, departmentID).Error; err != nil {
		return nil, err
	}
	return &link, nil
}
