package service_test

import (
	"testing"

	"church-planning-backend/internal/database/models"
	apperrors "church-planning-backend/internal/errors"
	"church-planning-backend/internal/mocks"
	"church-planning-backend/internal/rbac"
	"church-planning-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AccessServiceTestSuite defines the test suite for AccessService
type AccessServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRoleRepo  *mocks.MockRoleRepositoryInterface
	mockDeptRepo  *mocks.MockDepartmentRepositoryInterface
	mockEventRepo *mocks.MockEventRepositoryInterface
	accessService *service.AccessService

	identity *rbac.Identity
	churchID uuid.UUID
	deptX    *models.Department
	deptY    *models.Department
}

// SetupTest sets up the test suite
func (suite *AccessServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRoleRepo = mocks.NewMockRoleRepositoryInterface(suite.ctrl)
	suite.mockDeptRepo = mocks.NewMockDepartmentRepositoryInterface(suite.ctrl)
	suite.mockEventRepo = mocks.NewMockEventRepositoryInterface(suite.ctrl)
	suite.accessService = service.NewAccessService(suite.mockRoleRepo, suite.mockDeptRepo, suite.mockEventRepo, []string{"Root@Church.org"})

	suite.identity = &rbac.Identity{UserID: uuid.New(), Email: "head@church.org"}
	suite.churchID = uuid.New()
	ministry := &models.Ministry{BaseModel: models.BaseModel{ID: uuid.New()}, ChurchID: suite.churchID}
	suite.deptX = &models.Department{BaseModel: models.BaseModel{ID: uuid.New()}, MinistryID: ministry.ID, Ministry: ministry}
	suite.deptY = &models.Department{BaseModel: models.BaseModel{ID: uuid.New()}, MinistryID: ministry.ID, Ministry: ministry}
}

// TearDownTest cleans up after each test
func (suite *AccessServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AccessServiceTestSuite) headOf(departmentIDs ...uuid.UUID) models.UserChurchRole {
	role := models.UserChurchRole{UserID: suite.identity.UserID, ChurchID: suite.churchID, Role: models.RoleDepartmentHead}
	for _, id := range departmentIDs {
		role.Departments = append(role.Departments, models.UserDepartment{DepartmentID: id})
	}
	return role
}

func (suite *AccessServiceTestSuite) TestAuthorize_Unauthenticated() {
	_, err := suite.accessService.Authorize(nil, rbac.PermissionPlanningView, nil)
	suite.ErrorIs(err, apperrors.ErrUnauthenticated)

	_, err = suite.accessService.Authorize(&rbac.Identity{}, rbac.PermissionPlanningView, nil)
	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (suite *AccessServiceTestSuite) TestAuthorize_AdminAtChurch() {
	suite.mockRoleRepo.EXPECT().GetByUserID(suite.identity.UserID).Return([]models.UserChurchRole{
		{UserID: suite.identity.UserID, ChurchID: suite.churchID, Role: models.RoleAdmin},
	}, nil)

	session, err := suite.accessService.Authorize(suite.identity, rbac.PermissionEventsManage, &suite.churchID)

	suite.Require().NoError(err)
	suite.True(session.Permissions.Has(rbac.PermissionEventsManage))
	suite.False(session.Permissions.Has(rbac.PermissionUsersManage))
	suite.True(session.DepartmentScope().IsUnscoped())
}

func (suite *AccessServiceTestSuite) TestAuthorize_RoleAtAnotherChurchDoesNotCount() {
	other := uuid.New()
	suite.mockRoleRepo.EXPECT().GetByUserID(suite.identity.UserID).Return([]models.UserChurchRole{
		{UserID: suite.identity.UserID, ChurchID: other, Role: models.RoleAdmin},
	}, nil)

	_, err := suite.accessService.Authorize(suite.identity, rbac.PermissionEventsManage, &suite.churchID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AccessServiceTestSuite) TestAuthorizeDepartment_HeadInScope() {
	suite.mockDeptRepo.EXPECT().GetWithMinistry(suite.deptX.ID).Return(suite.deptX, nil)
	suite.mockRoleRepo.EXPECT().GetByUserID(suite.identity.UserID).Return([]models.UserChurchRole{suite.headOf(suite.deptX.ID)}, nil)

	session, err := suite.accessService.AuthorizeDepartment(suite.identity, rbac.PermissionPlanningEdit, suite.deptX.ID)

	suite.Require().NoError(err)
	suite.Equal(suite.churchID, *session.ChurchID)
}

func (suite *AccessServiceTestSuite) TestAuthorizeDepartment_HeadOutOfScope() {
	suite.mockDeptRepo.EXPECT().GetWithMinistry(suite.deptY.ID).Return(suite.deptY, nil)
	suite.mockRoleRepo.EXPECT().GetByUserID(suite.identity.UserID).Return([]models.UserChurchRole{suite.headOf(suite.deptX.ID)}, nil)

	_, err := suite.accessService.AuthorizeDepartment(suite.identity, rbac.PermissionPlanningEdit, suite.deptY.ID)

	suite.ErrorIs(err, apperrors.ErrOutOfScope)
	suite.True(apperrors.IsAuthorization(err))
}

func (suite *AccessServiceTestSuite) TestAuthorizeDepartment_MinisterThroughMinistry() {
	ministryID := suite.deptY.MinistryID
	role := models.UserChurchRole{
		UserID:     suite.identity.UserID,
		ChurchID:   suite.churchID,
		Role:       models.RoleMinister,
		MinistryID: &ministryID,
		Ministry: &models.Ministry{
			BaseModel:   models.BaseModel{ID: ministryID},
			ChurchID:    suite.churchID,
			Departments: []models.Department{*suite.deptX, *suite.deptY},
		},
	}
	suite.mockDeptRepo.EXPECT().GetWithMinistry(suite.deptY.ID).Return(suite.deptY, nil)
	suite.mockRoleRepo.EXPECT().GetByUserID(suite.identity.UserID).Return([]models.UserChurchRole{role}, nil)

	_, err := suite.accessService.AuthorizeDepartment(suite.identity, rbac.PermissionPlanningEdit, suite.deptY.ID)

	suite.NoError(err)
}

func (suite *AccessServiceTestSuite) TestAuthorizeDepartment_MissingPermission() {
	suite.mockDeptRepo.EXPECT().GetWithMinistry(suite.deptX.ID).Return(suite.deptX, nil)
	suite.mockRoleRepo.EXPECT().GetByUserID(suite.identity.UserID).Return([]models.UserChurchRole{suite.headOf(suite.deptX.ID)}, nil)

	_, err := suite.accessService.AuthorizeDepartment(suite.identity, rbac.PermissionChurchManage, suite.deptX.ID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AccessServiceTestSuite) TestAuthorizeDepartment_NotFound() {
	suite.mockDeptRepo.EXPECT().GetWithMinistry(suite.deptX.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.accessService.AuthorizeDepartment(suite.identity, rbac.PermissionPlanningView, suite.deptX.ID)

	suite.ErrorIs(err, apperrors.ErrDepartmentNotFound)
}

func (suite *AccessServiceTestSuite) TestAuthorizeEvent() {
	event := &models.Event{BaseModel: models.BaseModel{ID: uuid.New()}, ChurchID: suite.churchID}
	suite.mockEventRepo.EXPECT().GetByID(event.ID).Return(event, nil)
	suite.mockRoleRepo.EXPECT().GetByUserID(suite.identity.UserID).Return([]models.UserChurchRole{
		{UserID: suite.identity.UserID, ChurchID: suite.churchID, Role: models.RoleSecretary},
	}, nil)

	_, err := suite.accessService.AuthorizeEvent(suite.identity, rbac.PermissionEventsView, event.ID)
	suite.NoError(err)

	suite.mockEventRepo.EXPECT().GetByID(event.ID).Return(event, nil)
	suite.mockRoleRepo.EXPECT().GetByUserID(suite.identity.UserID).Return([]models.UserChurchRole{
		{UserID: suite.identity.UserID, ChurchID: suite.churchID, Role: models.RoleSecretary},
	}, nil)

	_, err = suite.accessService.AuthorizeEvent(suite.identity, rbac.PermissionEventsManage, event.ID)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AccessServiceTestSuite) TestDepartmentScope() {
	suite.mockRoleRepo.EXPECT().GetByUserID(suite.identity.UserID).Return([]models.UserChurchRole{
		suite.headOf(suite.deptX.ID),
		{UserID: suite.identity.UserID, ChurchID: uuid.New(), Role: models.RoleAdmin},
	}, nil)

	scope, err := suite.accessService.DepartmentScope(suite.identity, suite.churchID)

	suite.Require().NoError(err)
	suite.False(scope.IsUnscoped())
	suite.True(scope.Allows(suite.deptX.ID))
	suite.False(scope.Allows(suite.deptY.ID))
}

func (suite *AccessServiceTestSuite) TestIsSuperAdmin() {
	suite.True(suite.accessService.IsSuperAdmin(&rbac.Identity{Email: "root@church.org"}))
	suite.False(suite.accessService.IsSuperAdmin(suite.identity))
	suite.False(suite.accessService.IsSuperAdmin(nil))
}

// TestAccessServiceTestSuite runs the test suite
func TestAccessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccessServiceTestSuite))
}
