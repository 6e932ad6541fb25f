package service_test

import (
	"context"
	"strings"
	"testing"

	"church-planning-backend/internal/auth"
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

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockUserRepo     *mocks.MockUserRepositoryInterface
	mockRoleRepo     *mocks.MockRoleRepositoryInterface
	mockChurchRepo   *mocks.MockChurchRepositoryInterface
	mockMinistryRepo *mocks.MockMinistryRepositoryInterface
	mockDeptRepo     *mocks.MockDepartmentRepositoryInterface
	mockSuperAdmin   *mocks.MockSuperAdminServiceInterface
	userService      *service.UserService

	churchID uuid.UUID
	user     *models.User
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockRoleRepo = mocks.NewMockRoleRepositoryInterface(suite.ctrl)
	suite.mockChurchRepo = mocks.NewMockChurchRepositoryInterface(suite.ctrl)
	suite.mockMinistryRepo = mocks.NewMockMinistryRepositoryInterface(suite.ctrl)
	suite.mockDeptRepo = mocks.NewMockDepartmentRepositoryInterface(suite.ctrl)
	suite.mockSuperAdmin = mocks.NewMockSuperAdminServiceInterface(suite.ctrl)
	suite.userService = service.NewUserService(
		suite.mockUserRepo,
		suite.mockRoleRepo,
		suite.mockChurchRepo,
		suite.mockMinistryRepo,
		suite.mockDeptRepo,
		suite.mockSuperAdmin,
		validator.New(),
	)

	suite.churchID = uuid.New()
	suite.user = &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Email: "jean@church.org", Name: "Jean"}
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) TestProvisionUser_NewUser() {
	profile := &auth.UserProfile{Subject: "google-1", Email: "New@Church.org", Name: "New", AvatarURL: "https://img/new.png"}

	suite.mockUserRepo.EXPECT().GetByGoogleID("google-1").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByEmail("new@church.org").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		u.ID = uuid.New()
		return nil
	})
	suite.mockSuperAdmin.EXPECT().ReconcileUser(gomock.Any(), gomock.Any()).Return(0, nil)

	user, err := suite.userService.ProvisionUser(context.Background(), profile)

	suite.Require().NoError(err)
	suite.Equal("new@church.org", user.Email)
	suite.Equal("google-1", *user.GoogleID)
	suite.Equal("https://img/new.png", user.AvatarURL)
}

func (suite *UserServiceTestSuite) TestProvisionUser_LinksExistingEmail() {
	profile := &auth.UserProfile{Subject: "google-2", Email: "jean@church.org", Name: "Jean D."}

	suite.mockUserRepo.EXPECT().GetByGoogleID("google-2").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().GetByEmail("jean@church.org").Return(suite.user, nil)
	suite.mockUserRepo.EXPECT().Update(suite.user).Return(nil)
	suite.mockSuperAdmin.EXPECT().ReconcileUser(gomock.Any(), suite.user).Return(2, nil)

	user, err := suite.userService.ProvisionUser(context.Background(), profile)

	suite.Require().NoError(err)
	suite.Equal(suite.user.ID, user.ID)
	suite.Equal("Jean D.", user.Name)
	suite.Equal("google-2", *user.GoogleID)
}

func (suite *UserServiceTestSuite) TestProvisionUser_InvalidProfile() {
	_, err := suite.userService.ProvisionUser(context.Background(), &auth.UserProfile{Email: "a@b.c"})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.userService.ProvisionUser(context.Background(), nil)
	suite.True(apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestGetMe() {
	deptID := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(suite.user.ID).Return(suite.user, nil)
	suite.mockRoleRepo.EXPECT().GetByUserID(suite.user.ID).Return([]models.UserChurchRole{
		{ChurchID: suite.churchID, Role: models.RoleDepartmentHead, Departments: []models.UserDepartment{{DepartmentID: deptID}}},
	}, nil)

	me, err := suite.userService.GetMe(suite.user.ID)

	suite.Require().NoError(err)
	suite.Equal("jean@church.org", me.Email)
	suite.Require().Len(me.Churches, 1)
	access := me.Churches[0]
	suite.Equal(suite.churchID, access.ChurchID)
	suite.False(access.Unscoped)
	suite.Equal([]uuid.UUID{deptID}, access.DepartmentIDs)
	suite.Contains(access.Permissions, rbac.PermissionPlanningEdit)
	suite.NotContains(access.Permissions, rbac.PermissionEventsManage)
}

func (suite *UserServiceTestSuite) TestGetMe_NotFound() {
	suite.mockUserRepo.EXPECT().GetByID(suite.user.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.GetMe(suite.user.ID)

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) TestUpdateProfile_Self() {
	identity := &rbac.Identity{UserID: suite.user.ID}
	suite.mockUserRepo.EXPECT().UpdateDisplayName(suite.user.ID, "Jeannot").Return(nil)
	suite.mockUserRepo.EXPECT().GetByID(suite.user.ID).Return(suite.user, nil)

	_, err := suite.userService.UpdateProfile(identity, suite.user.ID, &service.UpdateProfileRequest{DisplayName: "  Jeannot "})

	suite.NoError(err)
}

func (suite *UserServiceTestSuite) TestUpdateProfile_OtherUser() {
	secretary := &rbac.Identity{UserID: uuid.New()}
	head := &rbac.Identity{UserID: uuid.New()}

	suite.Run("secretary may edit", func() {
		suite.mockRoleRepo.EXPECT().GetByUserID(secretary.UserID).Return([]models.UserChurchRole{{Role: models.RoleSecretary}}, nil)
		suite.mockUserRepo.EXPECT().UpdateDisplayName(suite.user.ID, "Jean").Return(nil)
		suite.mockUserRepo.EXPECT().GetByID(suite.user.ID).Return(suite.user, nil)

		_, err := suite.userService.UpdateProfile(secretary, suite.user.ID, &service.UpdateProfileRequest{DisplayName: "Jean"})
		suite.NoError(err)
	})

	suite.Run("department head may not", func() {
		suite.mockRoleRepo.EXPECT().GetByUserID(head.UserID).Return([]models.UserChurchRole{{Role: models.RoleDepartmentHead}}, nil)

		_, err := suite.userService.UpdateProfile(head, suite.user.ID, &service.UpdateProfileRequest{DisplayName: "Jean"})
		suite.ErrorIs(err, apperrors.ErrForbidden)
	})
}

func (suite *UserServiceTestSuite) TestUpdateProfile_Validation() {
	identity := &rbac.Identity{UserID: suite.user.ID}

	_, err := suite.userService.UpdateProfile(identity, suite.user.ID, &service.UpdateProfileRequest{DisplayName: "   "})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.userService.UpdateProfile(identity, suite.user.ID, &service.UpdateProfileRequest{DisplayName: strings.Repeat("x", 101)})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.userService.UpdateProfile(nil, suite.user.ID, &service.UpdateProfileRequest{DisplayName: "x"})
	suite.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (suite *UserServiceTestSuite) TestUpdateProfile_UnknownUser() {
	identity := &rbac.Identity{UserID: suite.user.ID}
	suite.mockUserRepo.EXPECT().UpdateDisplayName(suite.user.ID, "Jean").Return(gorm.ErrRecordNotFound)

	_, err := suite.userService.UpdateProfile(identity, suite.user.ID, &service.UpdateProfileRequest{DisplayName: "Jean"})

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) expectUserAndChurch() {
	suite.mockUserRepo.EXPECT().GetByID(suite.user.ID).Return(suite.user, nil)
	suite.mockChurchRepo.EXPECT().GetByID(suite.churchID).Return(&models.Church{BaseModel: models.BaseModel{ID: suite.churchID}}, nil)
}

func (suite *UserServiceTestSuite) TestAddRole_DepartmentHead() {
	deptA := models.Department{BaseModel: models.BaseModel{ID: uuid.New()}}
	deptB := models.Department{BaseModel: models.BaseModel{ID: uuid.New()}}
	roleID := uuid.New()

	suite.expectUserAndChurch()
	suite.mockRoleRepo.EXPECT().Find(suite.user.ID, suite.churchID, models.RoleDepartmentHead).Return(nil, gorm.ErrRecordNotFound)
	suite.mockDeptRepo.EXPECT().GetByChurchID(suite.churchID).Return([]models.Department{deptA, deptB}, nil)
	suite.mockRoleRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.UserChurchRole) error {
		suite.Require().Len(r.Departments, 2)
		suite.Nil(r.MinistryID)
		r.ID = roleID
		return nil
	})
	suite.mockRoleRepo.EXPECT().GetByID(roleID).Return(&models.UserChurchRole{BaseModel: models.BaseModel{ID: roleID}}, nil)

	role, err := suite.userService.AddRole(suite.user.ID, &service.AddRoleRequest{
		ChurchID:      suite.churchID,
		Role:          models.RoleDepartmentHead,
		MinistryID:    &deptA.ID,
		DepartmentIDs: []uuid.UUID{deptA.ID, deptB.ID, deptA.ID},
	})

	suite.Require().NoError(err)
	suite.Equal(roleID, role.ID)
}

func (suite *UserServiceTestSuite) TestAddRole_DepartmentOutsideChurch() {
	suite.expectUserAndChurch()
	suite.mockRoleRepo.EXPECT().Find(suite.user.ID, suite.churchID, models.RoleDepartmentHead).Return(nil, gorm.ErrRecordNotFound)
	suite.mockDeptRepo.EXPECT().GetByChurchID(suite.churchID).Return([]models.Department{}, nil)

	_, err := suite.userService.AddRole(suite.user.ID, &service.AddRoleRequest{
		ChurchID:      suite.churchID,
		Role:          models.RoleDepartmentHead,
		DepartmentIDs: []uuid.UUID{uuid.New()},
	})

	suite.True(apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestAddRole_MinisterOfForeignMinistry() {
	ministry := &models.Ministry{BaseModel: models.BaseModel{ID: uuid.New()}, ChurchID: uuid.New()}

	suite.expectUserAndChurch()
	suite.mockRoleRepo.EXPECT().Find(suite.user.ID, suite.churchID, models.RoleMinister).Return(nil, gorm.ErrRecordNotFound)
	suite.mockMinistryRepo.EXPECT().GetByID(ministry.ID).Return(ministry, nil)

	_, err := suite.userService.AddRole(suite.user.ID, &service.AddRoleRequest{
		ChurchID:   suite.churchID,
		Role:       models.RoleMinister,
		MinistryID: &ministry.ID,
	})

	suite.True(apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestAddRole_Duplicate() {
	suite.expectUserAndChurch()
	suite.mockRoleRepo.EXPECT().Find(suite.user.ID, suite.churchID, models.RoleAdmin).Return(&models.UserChurchRole{}, nil)

	_, err := suite.userService.AddRole(suite.user.ID, &service.AddRoleRequest{ChurchID: suite.churchID, Role: models.RoleAdmin})

	suite.ErrorIs(err, apperrors.ErrRoleExists)
}

func (suite *UserServiceTestSuite) TestAddRole_UnknownRole() {
	_, err := suite.userService.AddRole(suite.user.ID, &service.AddRoleRequest{ChurchID: suite.churchID, Role: "PASTOR"})

	suite.True(apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestUpdateRole() {
	roleID := uuid.New()
	ministry := &models.Ministry{BaseModel: models.BaseModel{ID: uuid.New()}, ChurchID: suite.churchID}
	existing := &models.UserChurchRole{BaseModel: models.BaseModel{ID: roleID}, UserID: suite.user.ID, ChurchID: suite.churchID, Role: models.RoleMinister}
	empty := []uuid.UUID{}

	suite.mockRoleRepo.EXPECT().GetByID(roleID).Return(existing, nil).Times(2)
	suite.mockMinistryRepo.EXPECT().GetByID(ministry.ID).Return(ministry, nil)
	suite.mockRoleRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(r *models.UserChurchRole) error {
		suite.Equal(ministry.ID, *r.MinistryID)
		return nil
	})
	suite.mockRoleRepo.EXPECT().ReplaceDepartments(roleID, []uuid.UUID{}).Return(nil)

	_, err := suite.userService.UpdateRole(suite.user.ID, &service.UpdateRoleRequest{
		RoleID:        roleID,
		MinistryID:    &ministry.ID,
		DepartmentIDs: &empty,
	})

	suite.NoError(err)
}

func (suite *UserServiceTestSuite) TestUpdateRole_BelongsToAnotherUser() {
	roleID := uuid.New()
	suite.mockRoleRepo.EXPECT().GetByID(roleID).Return(&models.UserChurchRole{UserID: uuid.New()}, nil)

	_, err := suite.userService.UpdateRole(suite.user.ID, &service.UpdateRoleRequest{RoleID: roleID, ClearMinistry: true})

	suite.ErrorIs(err, apperrors.ErrRoleNotFound)
}

func (suite *UserServiceTestSuite) TestRemoveRole() {
	roleID := uuid.New()

	suite.mockRoleRepo.EXPECT().Find(suite.user.ID, suite.churchID, models.RoleSecretary).Return(&models.UserChurchRole{BaseModel: models.BaseModel{ID: roleID}}, nil)
	suite.mockRoleRepo.EXPECT().Delete(roleID).Return(nil)
	suite.NoError(suite.userService.RemoveRole(suite.user.ID, &service.RemoveRoleRequest{ChurchID: suite.churchID, Role: models.RoleSecretary}))

	suite.mockRoleRepo.EXPECT().Find(suite.user.ID, suite.churchID, models.RoleSecretary).Return(nil, gorm.ErrRecordNotFound)
	err := suite.userService.RemoveRole(suite.user.ID, &service.RemoveRoleRequest{ChurchID: suite.churchID, Role: models.RoleSecretary})
	suite.ErrorIs(err, apperrors.ErrRoleNotFound)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
