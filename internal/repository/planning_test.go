//go:build integration
// +build integration

package repository

import (
	"errors"
	"sync"
	"testing"
	"time"

	"church-planning-backend/internal/database/models"
	"church-planning-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PlanningRepositoryTestSuite tests the PlanningRepository
type PlanningRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PlanningRepository
	memberRepo    *MemberRepository
	eventRepo     *EventRepository
	factories     *testutils.FactorySet
	hierarchy     *testutils.ChurchHierarchy
}

func status(s models.PlanningStatus) *models.PlanningStatus {
	return &s
}

// SetupSuite runs before all tests in the suite
func (suite *PlanningRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.repo = NewPlanningRepository(db)
	suite.memberRepo = NewMemberRepository(db)
	suite.eventRepo = NewEventRepository(db)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PlanningRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest creates a church hierarchy with an event
func (suite *PlanningRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB
	suite.hierarchy = suite.factories.NewChurchHierarchy()
	suite.Require().NoError(NewChurchRepository(db).Create(suite.hierarchy.Church))
	suite.Require().NoError(NewMinistryRepository(db).Create(suite.hierarchy.Ministry))
	suite.Require().NoError(NewDepartmentRepository(db).Create(suite.hierarchy.Department))
	suite.Require().NoError(suite.eventRepo.Create(suite.hierarchy.Event))
}

// TearDownTest runs after each test
func (suite *PlanningRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PlanningRepositoryTestSuite) createMember(first, last string) *models.Member {
	member := suite.factories.Member.WithName(suite.hierarchy.Department.ID, first, last)
	suite.Require().NoError(suite.memberRepo.Create(member))
	return member
}

// TestEnsureEventDepartmentIsIdempotent tests repeated link creation returns one row
func (suite *PlanningRepositoryTestSuite) TestEnsureEventDepartmentIsIdempotent() {
	eventID, deptID := suite.hierarchy.Event.ID, suite.hierarchy.Department.ID

	first, err := suite.repo.EnsureEventDepartment(eventID, deptID)
	suite.NoError(err)
	second, err := suite.repo.EnsureEventDepartment(eventID, deptID)
	suite.NoError(err)

	suite.Equal(first.ID, second.ID)
	links, err := suite.repo.GetEventDepartmentsByEventID(eventID)
	suite.NoError(err)
	suite.Len(links, 1)
}

// TestGetEventDepartmentNotFound tests a missing link
func (suite *PlanningRepositoryTestSuite) TestGetEventDepartmentNotFound() {
	_, err := suite.repo.GetEventDepartment(suite.hierarchy.Event.ID, suite.hierarchy.Department.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestSavePlanningsUpserts tests that a second save updates instead of duplicating
func (suite *PlanningRepositoryTestSuite) TestSavePlanningsUpserts() {
	a := suite.createMember("Anna", "Martin")
	b := suite.createMember("Paul", "Dubois")
	eventID, deptID := suite.hierarchy.Event.ID, suite.hierarchy.Department.ID

	link, saved, err := suite.repo.SavePlannings(eventID, deptID, []models.Planning{
		{MemberID: a.ID, Status: status(models.PlanningStatusEnServiceDebrief)},
		{MemberID: b.ID, Status: status(models.PlanningStatusEnService)},
	})
	suite.NoError(err)
	suite.Len(saved, 2)

	_, saved, err = suite.repo.SavePlannings(eventID, deptID, []models.Planning{
		{MemberID: a.ID, Status: nil},
	})
	suite.NoError(err)
	suite.Require().Len(saved, 1)
	suite.Nil(saved[0].Status)

	rows, err := suite.repo.GetByEventDepartmentID(link.ID)
	suite.NoError(err)
	suite.Len(rows, 2)
	for _, row := range rows {
		if row.MemberID == a.ID {
			suite.Nil(row.Status)
		} else {
			suite.Equal(models.PlanningStatusEnService, *row.Status)
		}
	}
}

// TestSavePlanningsEmptyBatchCreatesLink tests that an empty batch still links the department
func (suite *PlanningRepositoryTestSuite) TestSavePlanningsEmptyBatchCreatesLink() {
	link, saved, err := suite.repo.SavePlannings(suite.hierarchy.Event.ID, suite.hierarchy.Department.ID, nil)
	suite.NoError(err)
	suite.Empty(saved)
	suite.NotEqual(uuid.Nil, link.ID)
}

// TestSavePlanningsRollsBackOnError tests that a failing batch writes nothing
func (suite *PlanningRepositoryTestSuite) TestSavePlanningsRollsBackOnError() {
	a := suite.createMember("Anna", "Martin")

	_, _, err := suite.repo.SavePlannings(suite.hierarchy.Event.ID, suite.hierarchy.Department.ID, []models.Planning{
		{MemberID: a.ID, Status: status(models.PlanningStatusEnService)},
		{MemberID: uuid.New(), Status: status(models.PlanningStatusEnService)},
	})
	suite.Error(err)

	_, err = suite.repo.GetEventDepartment(suite.hierarchy.Event.ID, suite.hierarchy.Department.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestSavePlanningsRejectsSecondDebrief tests that a stored debrief blocks another member
func (suite *PlanningRepositoryTestSuite) TestSavePlanningsRejectsSecondDebrief() {
	a := suite.createMember("Anna", "Martin")
	b := suite.createMember("Paul", "Dubois")
	eventID, deptID := suite.hierarchy.Event.ID, suite.hierarchy.Department.ID

	link, _, err := suite.repo.SavePlannings(eventID, deptID, []models.Planning{
		{MemberID: a.ID, Status: status(models.PlanningStatusEnServiceDebrief)},
	})
	suite.Require().NoError(err)

	_, _, err = suite.repo.SavePlannings(eventID, deptID, []models.Planning{
		{MemberID: b.ID, Status: status(models.PlanningStatusEnServiceDebrief)},
	})
	suite.ErrorIs(err, ErrMultipleDebrief)

	rows, err := suite.repo.GetByEventDepartmentID(link.ID)
	suite.NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(a.ID, rows[0].MemberID)
}

// TestSavePlanningsHandsDebriefOver tests moving the debrief between members in one batch
func (suite *PlanningRepositoryTestSuite) TestSavePlanningsHandsDebriefOver() {
	a := suite.createMember("Anna", "Martin")
	b := suite.createMember("Paul", "Dubois")
	eventID, deptID := suite.hierarchy.Event.ID, suite.hierarchy.Department.ID

	_, _, err := suite.repo.SavePlannings(eventID, deptID, []models.Planning{
		{MemberID: a.ID, Status: status(models.PlanningStatusEnServiceDebrief)},
	})
	suite.Require().NoError(err)

	_, saved, err := suite.repo.SavePlannings(eventID, deptID, []models.Planning{
		{MemberID: b.ID, Status: status(models.PlanningStatusEnServiceDebrief)},
		{MemberID: a.ID, Status: status(models.PlanningStatusEnService)},
	})
	suite.Require().NoError(err)
	suite.Len(saved, 2)
	for _, row := range saved {
		if row.MemberID == b.ID {
			suite.Equal(models.PlanningStatusEnServiceDebrief, *row.Status)
		} else {
			suite.Equal(models.PlanningStatusEnService, *row.Status)
		}
	}
}

// TestSavePlanningsDropsMembersWhoLeft tests that rows of members moved out of the
// department neither count nor survive the next save
func (suite *PlanningRepositoryTestSuite) TestSavePlanningsDropsMembersWhoLeft() {
	db := suite.baseTestSuite.DB
	a := suite.createMember("Anna", "Martin")
	b := suite.createMember("Paul", "Dubois")
	eventID, deptID := suite.hierarchy.Event.ID, suite.hierarchy.Department.ID

	link, _, err := suite.repo.SavePlannings(eventID, deptID, []models.Planning{
		{MemberID: a.ID, Status: status(models.PlanningStatusEnServiceDebrief)},
	})
	suite.Require().NoError(err)

	other := suite.factories.Department.WithMinistry(suite.hierarchy.Ministry.ID)
	suite.Require().NoError(NewDepartmentRepository(db).Create(other))
	// moved without going through MemberRepository.Update
	suite.Require().NoError(db.Model(&models.Member{}).Where("id = ?", a.ID).Update("department_id", other.ID).Error)

	_, _, err = suite.repo.SavePlannings(eventID, deptID, []models.Planning{
		{MemberID: b.ID, Status: status(models.PlanningStatusEnServiceDebrief)},
	})
	suite.Require().NoError(err)

	rows, err := suite.repo.GetByEventDepartmentID(link.ID)
	suite.NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal(b.ID, rows[0].MemberID)
}

// TestSavePlanningsConcurrentDebriefs tests that two writers racing for the debrief
// leave exactly one debrief behind
func (suite *PlanningRepositoryTestSuite) TestSavePlanningsConcurrentDebriefs() {
	a := suite.createMember("Anna", "Martin")
	b := suite.createMember("Paul", "Dubois")
	eventID, deptID := suite.hierarchy.Event.ID, suite.hierarchy.Department.ID

	link, err := suite.repo.EnsureEventDepartment(eventID, deptID)
	suite.Require().NoError(err)

	start := make(chan struct{})
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, memberID := range []uuid.UUID{a.ID, b.ID} {
		wg.Add(1)
		go func(memberID uuid.UUID) {
			defer wg.Done()
			<-start
			_, _, err := suite.repo.SavePlannings(eventID, deptID, []models.Planning{
				{MemberID: memberID, Status: status(models.PlanningStatusEnServiceDebrief)},
			})
			errs <- err
		}(memberID)
	}
	close(start)
	wg.Wait()
	close(errs)

	var succeeded, rejected int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrMultipleDebrief):
			rejected++
		default:
			suite.Failf("unexpected error", "%v", err)
		}
	}
	suite.Equal(1, succeeded)
	suite.Equal(1, rejected)

	rows, err := suite.repo.GetByEventDepartmentID(link.ID)
	suite.NoError(err)
	suite.Len(rows, 1)
}

// TestSingleDebriefIndex tests that storage refuses a second debrief row written directly
func (suite *PlanningRepositoryTestSuite) TestSingleDebriefIndex() {
	db := suite.baseTestSuite.DB
	a := suite.createMember("Anna", "Martin")
	b := suite.createMember("Paul", "Dubois")

	link, err := suite.repo.EnsureEventDepartment(suite.hierarchy.Event.ID, suite.hierarchy.Department.ID)
	suite.Require().NoError(err)

	suite.NoError(db.Create(&models.Planning{EventDepartmentID: link.ID, MemberID: a.ID, Status: status(models.PlanningStatusEnServiceDebrief)}).Error)
	err = db.Create(&models.Planning{EventDepartmentID: link.ID, MemberID: b.ID, Status: status(models.PlanningStatusEnServiceDebrief)}).Error
	suite.Error(err)
	suite.True(isSingleDebriefViolation(err))
}

// TestDeleteEventDepartmentCascades tests that unlinking removes plannings
func (suite *PlanningRepositoryTestSuite) TestDeleteEventDepartmentCascades() {
	a := suite.createMember("Anna", "Martin")
	link, _, err := suite.repo.SavePlannings(suite.hierarchy.Event.ID, suite.hierarchy.Department.ID, []models.Planning{
		{MemberID: a.ID, Status: status(models.PlanningStatusEnService)},
	})
	suite.Require().NoError(err)

	affected, err := suite.repo.DeleteEventDepartment(suite.hierarchy.Event.ID, suite.hierarchy.Department.ID)
	suite.NoError(err)
	suite.Equal(int64(1), affected)

	rows, err := suite.repo.GetByEventDepartmentID(link.ID)
	suite.NoError(err)
	suite.Empty(rows)
}

// TestGetDepartmentSchedule tests the monthly read model
func (suite *PlanningRepositoryTestSuite) TestGetDepartmentSchedule() {
	a := suite.createMember("Anna", "Martin")
	b := suite.createMember("Paul", "Dubois")
	churchID := suite.hierarchy.Church.ID
	deptID := suite.hierarchy.Department.ID

	late := suite.factories.Event.WithDate(churchID, time.Date(2025, time.March, 23, 10, 0, 0, 0, time.UTC))
	outside := suite.factories.Event.WithDate(churchID, time.Date(2025, time.April, 6, 10, 0, 0, 0, time.UTC))
	suite.NoError(suite.eventRepo.Create(late))
	suite.NoError(suite.eventRepo.Create(outside))

	for _, eventID := range []uuid.UUID{suite.hierarchy.Event.ID, late.ID, outside.ID} {
		_, _, err := suite.repo.SavePlannings(eventID, deptID, []models.Planning{
			{MemberID: a.ID, Status: status(models.PlanningStatusEnService)},
			{MemberID: b.ID, Status: status(models.PlanningStatusIndisponible)},
		})
		suite.Require().NoError(err)
	}

	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	links, err := suite.repo.GetDepartmentSchedule(deptID, from, from.AddDate(0, 1, 0),
		[]models.PlanningStatus{models.PlanningStatusEnService, models.PlanningStatusEnServiceDebrief})
	suite.NoError(err)
	suite.Require().Len(links, 2)
	suite.Equal(suite.hierarchy.Event.ID, links[0].EventID)
	suite.Equal(late.ID, links[1].EventID)
	suite.Require().NotNil(links[0].Event)
	suite.Require().Len(links[0].Plannings, 1)
	suite.Equal(a.ID, links[0].Plannings[0].MemberID)
	suite.NotNil(links[0].Plannings[0].Member)
}

// TestGetEventRoster tests the star view read model
func (suite *PlanningRepositoryTestSuite) TestGetEventRoster() {
	a := suite.createMember("Anna", "Martin")
	b := suite.createMember("Paul", "Dubois")
	_, _, err := suite.repo.SavePlannings(suite.hierarchy.Event.ID, suite.hierarchy.Department.ID, []models.Planning{
		{MemberID: a.ID, Status: status(models.PlanningStatusRemplacant)},
		{MemberID: b.ID, Status: nil},
	})
	suite.Require().NoError(err)

	links, err := suite.repo.GetEventRoster(suite.hierarchy.Event.ID, []models.PlanningStatus{
		models.PlanningStatusEnService, models.PlanningStatusEnServiceDebrief, models.PlanningStatusRemplacant,
	})
	suite.NoError(err)
	suite.Require().Len(links, 1)
	suite.Require().NotNil(links[0].Department)
	suite.Require().NotNil(links[0].Department.Ministry)
	suite.Equal(suite.hierarchy.Ministry.Name, links[0].Department.Ministry.Name)
	suite.Require().Len(links[0].Plannings, 1)
	suite.Equal(a.ID, links[0].Plannings[0].MemberID)
}

// TestGetEventRosterOrdering tests departments come back by ministry then department name
func (suite *PlanningRepositoryTestSuite) TestGetEventRosterOrdering() {
	db := suite.baseTestSuite.DB
	eventID := suite.hierarchy.Event.ID

	welcome := suite.factories.Ministry.WithChurch(suite.hierarchy.Church.ID)
	welcome.Name = "Accueil"
	suite.Require().NoError(NewMinistryRepository(db).Create(welcome))

	var departments []*models.Department
	for _, name := range []string{"Parking", "Entree"} {
		department := suite.factories.Department.WithMinistry(welcome.ID)
		department.Name = name
		suite.Require().NoError(NewDepartmentRepository(db).Create(department))
		departments = append(departments, department)
	}

	for _, deptID := range []uuid.UUID{suite.hierarchy.Department.ID, departments[0].ID, departments[1].ID} {
		_, err := suite.repo.EnsureEventDepartment(eventID, deptID)
		suite.Require().NoError(err)
	}

	links, err := suite.repo.GetEventRoster(eventID, []models.PlanningStatus{models.PlanningStatusEnService})
	suite.NoError(err)
	suite.Require().Len(links, 3)

	names := make([]string, len(links))
	for i, link := range links {
		suite.Require().NotNil(link.Department)
		names[i] = link.Department.Ministry.Name + "/" + link.Department.Name
	}
	suite.Equal([]string{"Accueil/Entree", "Accueil/Parking", "Worship/Sound"}, names)
}

// TestPlanningRepositoryTestSuite runs the planning repository test suite
func TestPlanningRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlanningRepositoryTestSuite))
}
