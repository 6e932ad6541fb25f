package service_test

import (
	"testing"

	"church-planning-backend/internal/database/models"
	apperrors "church-planning-backend/internal/errors"
	"church-planning-backend/internal/mocks"
	"church-planning-backend/internal/rbac"
	"church-planning-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// DepartmentServiceTestSuite defines the test suite for DepartmentService
type DepartmentServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockDeptRepo      *mocks.MockDepartmentRepositoryInterface
	mockMinistryRepo  *mocks.MockMinistryRepositoryInterface
	departmentService *service.DepartmentService

	worship *models.Ministry
	depts   []models.Department
}

// SetupTest sets up the test suite
func (suite *DepartmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDeptRepo = mocks.NewMockDepartmentRepositoryInterface(suite.ctrl)
	suite.mockMinistryRepo = mocks.NewMockMinistryRepositoryInterface(suite.ctrl)
	suite.departmentService = service.NewDepartmentService(suite.mockDeptRepo, suite.mockMinistryRepo, validator.New())

	suite.worship = &models.Ministry{BaseModel: models.BaseModel{ID: uuid.New()}, ChurchID: uuid.New(), Name: "Worship"}
	suite.depts = []models.Department{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Choir", MinistryID: suite.worship.ID},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Sound", MinistryID: suite.worship.ID},
	}
}

// TearDownTest cleans up after each test
func (suite *DepartmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DepartmentServiceTestSuite) TestCreate() {
	suite.mockMinistryRepo.EXPECT().GetByID(suite.worship.ID).Return(suite.worship, nil)
	suite.mockDeptRepo.EXPECT().Create(gomock.Any()).Return(nil)

	dept, err := suite.departmentService.Create(&service.CreateDepartmentRequest{MinistryID: suite.worship.ID, Name: "Lights "})

	suite.Require().NoError(err)
	suite.Equal("Lights", dept.Name)
	suite.Equal(suite.worship, dept.Ministry)
}

func (suite *DepartmentServiceTestSuite) TestCreate_UnknownMinistry() {
	suite.mockMinistryRepo.EXPECT().GetByID(suite.worship.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.departmentService.Create(&service.CreateDepartmentRequest{MinistryID: suite.worship.ID, Name: "Lights"})

	suite.ErrorIs(err, apperrors.ErrMinistryNotFound)
}

func (suite *DepartmentServiceTestSuite) TestListByChurch() {
	churchID := suite.worship.ChurchID

	suite.Run("unscoped sees everything", func() {
		suite.mockDeptRepo.EXPECT().GetByChurchID(churchID).Return(suite.depts, nil)

		depts, err := suite.departmentService.ListByChurch(churchID, rbac.Unscoped())
		suite.Require().NoError(err)
		suite.Len(depts, 2)
	})

	suite.Run("scoped sees its departments", func() {
		suite.mockDeptRepo.EXPECT().GetByChurchID(churchID).Return(suite.depts, nil)

		depts, err := suite.departmentService.ListByChurch(churchID, rbac.Scoped(suite.depts[1].ID))
		suite.Require().NoError(err)
		suite.Require().Len(depts, 1)
		suite.Equal("Sound", depts[0].Name)
	})
}

func (suite *DepartmentServiceTestSuite) TestListByMinistry_NoScope() {
	suite.mockDeptRepo.EXPECT().GetByMinistryID(suite.worship.ID).Return(suite.depts, nil)

	depts, err := suite.departmentService.ListByMinistry(suite.worship.ID, rbac.Scoped())

	suite.Require().NoError(err)
	suite.Empty(depts)
}

func (suite *DepartmentServiceTestSuite) TestUpdate_MoveToForeignMinistry() {
	dept := suite.depts[0]
	dept.Ministry = suite.worship
	foreign := &models.Ministry{BaseModel: models.BaseModel{ID: uuid.New()}, ChurchID: uuid.New()}

	suite.mockDeptRepo.EXPECT().GetWithMinistry(dept.ID).Return(&dept, nil)
	suite.mockMinistryRepo.EXPECT().GetByID(foreign.ID).Return(foreign, nil)

	_, err := suite.departmentService.Update(dept.ID, &service.UpdateDepartmentRequest{Name: "Choir", MinistryID: &foreign.ID})

	suite.True(apperrors.IsValidation(err))
}

func (suite *DepartmentServiceTestSuite) TestUpdate_Rename() {
	dept := suite.depts[0]
	dept.Ministry = suite.worship

	suite.mockDeptRepo.EXPECT().GetWithMinistry(dept.ID).Return(&dept, nil)
	suite.mockDeptRepo.EXPECT().Update(gomock.Any()).Return(nil)

	updated, err := suite.departmentService.Update(dept.ID, &service.UpdateDepartmentRequest{Name: "Gospel Choir"})

	suite.Require().NoError(err)
	suite.Equal("Gospel Choir", updated.Name)
}

func (suite *DepartmentServiceTestSuite) TestDelete() {
	dept := suite.depts[0]
	suite.mockDeptRepo.EXPECT().GetWithMinistry(dept.ID).Return(&dept, nil)
	suite.mockDeptRepo.EXPECT().Delete(dept.ID).Return(nil)

	suite.NoError(suite.departmentService.Delete(dept.ID))
}

// TestDepartmentServiceTestSuite runs the test suite
func TestDepartmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepartmentServiceTestSuite))
}
