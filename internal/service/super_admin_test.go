package service_test

import (
	"context"
	"errors"
	"testing"

	"church-planning-backend/internal/database/models"
	"church-planning-backend/internal/mocks"
	"church-planning-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SuperAdminServiceTestSuite defines the test suite for SuperAdminService
type SuperAdminServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockUserRepo   *mocks.MockUserRepositoryInterface
	mockChurchRepo *mocks.MockChurchRepositoryInterface
	mockRoleRepo   *mocks.MockRoleRepositoryInterface
	recorder       *captureRecorder
	service        *service.SuperAdminService

	root     models.User
	churches []models.Church
}

// SetupTest sets up the test suite
func (suite *SuperAdminServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockChurchRepo = mocks.NewMockChurchRepositoryInterface(suite.ctrl)
	suite.mockRoleRepo = mocks.NewMockRoleRepositoryInterface(suite.ctrl)
	suite.recorder = newCaptureRecorder()
	suite.service = service.NewSuperAdminService(suite.mockUserRepo, suite.mockChurchRepo, suite.mockRoleRepo, []string{"root@church.org"}, suite.recorder)

	suite.root = models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "root@church.org"}
	suite.churches = []models.Church{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Grace"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Hope"},
	}
}

// TearDownTest cleans up after each test
func (suite *SuperAdminServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SuperAdminServiceTestSuite) TestReconcile() {
	suite.mockUserRepo.EXPECT().GetByEmails([]string{"root@church.org"}).Return([]models.User{suite.root}, nil)
	suite.mockChurchRepo.EXPECT().GetAll().Return(suite.churches, nil)
	suite.mockRoleRepo.EXPECT().Ensure(suite.root.ID, suite.churches[0].ID, models.RoleSuperAdmin).Return(true, nil)
	suite.mockRoleRepo.EXPECT().Ensure(suite.root.ID, suite.churches[1].ID, models.RoleSuperAdmin).Return(false, nil)

	result, err := suite.service.Reconcile(context.Background())

	suite.Require().NoError(err)
	suite.Equal(&service.ReconcileResult{Users: 1, Churches: 2, Created: 1}, result)
	suite.Equal([]bool{true}, suite.recorder.observed["reconcile_super_admins"])
}

func (suite *SuperAdminServiceTestSuite) TestReconcile_NoEmailsConfigured() {
	svc := service.NewSuperAdminService(suite.mockUserRepo, suite.mockChurchRepo, suite.mockRoleRepo, nil, nil)

	result, err := svc.Reconcile(context.Background())

	suite.Require().NoError(err)
	suite.Zero(result.Created)
}

func (suite *SuperAdminServiceTestSuite) TestReconcile_EnsureFails() {
	suite.mockUserRepo.EXPECT().GetByEmails(gomock.Any()).Return([]models.User{suite.root}, nil)
	suite.mockChurchRepo.EXPECT().GetAll().Return(suite.churches, nil)
	suite.mockRoleRepo.EXPECT().Ensure(gomock.Any(), gomock.Any(), models.RoleSuperAdmin).Return(false, errors.New("db down"))

	_, err := suite.service.Reconcile(context.Background())

	suite.Error(err)
	suite.Equal([]bool{false}, suite.recorder.observed["reconcile_super_admins"])
}

func (suite *SuperAdminServiceTestSuite) TestReconcileChurch_UnionOfHoldersAndConfigured() {
	churchID := uuid.New()
	holder := uuid.New()

	suite.mockRoleRepo.EXPECT().GetUserIDsByRole(models.RoleSuperAdmin).Return([]uuid.UUID{holder, suite.root.ID}, nil)
	suite.mockUserRepo.EXPECT().GetByEmails(gomock.Any()).Return([]models.User{suite.root}, nil)
	suite.mockRoleRepo.EXPECT().Ensure(holder, churchID, models.RoleSuperAdmin).Return(true, nil)
	suite.mockRoleRepo.EXPECT().Ensure(suite.root.ID, churchID, models.RoleSuperAdmin).Return(true, nil)

	created, err := suite.service.ReconcileChurch(context.Background(), churchID)

	suite.Require().NoError(err)
	suite.Equal(2, created)
}

func (suite *SuperAdminServiceTestSuite) TestReconcileUser() {
	suite.Run("configured email", func() {
		user := &models.User{BaseModel: models.BaseModel{ID: suite.root.ID}, Email: "Root@Church.org"}
		suite.mockChurchRepo.EXPECT().GetAll().Return(suite.churches, nil)
		suite.mockRoleRepo.EXPECT().Ensure(user.ID, gomock.Any(), models.RoleSuperAdmin).Return(true, nil).Times(2)

		created, err := suite.service.ReconcileUser(context.Background(), user)

		suite.Require().NoError(err)
		suite.Equal(2, created)
	})

	suite.Run("other email", func() {
		created, err := suite.service.ReconcileUser(context.Background(), &models.User{Email: "member@church.org"})

		suite.Require().NoError(err)
		suite.Zero(created)
	})
}

// TestSuperAdminServiceTestSuite runs the test suite
func TestSuperAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SuperAdminServiceTestSuite))
}
