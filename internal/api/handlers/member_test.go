package handlers_test

import (
	"net/http"
	"testing"

	"church-planning-backend/internal/api/handlers"
	"church-planning-backend/internal/database/models"
	apperrors "church-planning-backend/internal/errors"
	"church-planning-backend/internal/mocks"
	"church-planning-backend/internal/rbac"
	"church-planning-backend/internal/service"
	"church-planning-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MemberHandlerTestSuite defines the test suite for MemberHandler
type MemberHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockMembers *mocks.MockMemberServiceInterface
	mockAccess  *mocks.MockAccessServiceInterface
	handler     *handlers.MemberHandler
	httpSuite   *testutils.HTTPTestSuite
	identity    *rbac.Identity
	member      *models.Member
}

// SetupTest sets up the test suite
func (suite *MemberHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMembers = mocks.NewMockMemberServiceInterface(suite.ctrl)
	suite.mockAccess = mocks.NewMockAccessServiceInterface(suite.ctrl)
	suite.handler = handlers.NewMemberHandler(suite.mockMembers, suite.mockAccess)
	suite.identity = &rbac.Identity{UserID: uuid.New(), Email: "head@church.org"}
	suite.member = testutils.NewMemberFactory().WithName(uuid.New(), "Marie", "Kabongo")

	suite.httpSuite = testutils.SetupHTTPTest()
	members := suite.httpSuite.Router.Group("/api/v1/members", withIdentity(suite.identity))
	{
		members.GET("", suite.handler.ListMembers)
		members.POST("", suite.handler.CreateMember)
		members.PUT("/:id", suite.handler.UpdateMember)
		members.DELETE("/:id", suite.handler.DeleteMember)
	}
}

// TearDownTest cleans up after each test
func (suite *MemberHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MemberHandlerTestSuite) memberURL() string {
	return "/api/v1/members/" + suite.member.ID.String()
}

func (suite *MemberHandlerTestSuite) TestListMembers() {
	churchID := uuid.New()
	suite.mockAccess.EXPECT().Authorize(suite.identity, rbac.PermissionMembersView, &churchID).Return(&rbac.Session{}, nil)
	suite.mockMembers.EXPECT().ListByChurch(churchID, gomock.Any()).Return([]models.Member{*suite.member}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/members?churchId="+churchID.String(), nil)

	var members []models.Member
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &members)
	suite.Len(members, 1)
}

func (suite *MemberHandlerTestSuite) TestCreateMember() {
	body := map[string]interface{}{
		"department_id": suite.member.DepartmentID.String(),
		"first_name":    "Marie",
		"last_name":     "Kabongo",
	}

	suite.Run("created", func() {
		suite.mockAccess.EXPECT().AuthorizeDepartment(suite.identity, rbac.PermissionMembersManage, suite.member.DepartmentID).Return(&rbac.Session{}, nil)
		suite.mockMembers.EXPECT().Create(&service.CreateMemberRequest{DepartmentID: suite.member.DepartmentID, FirstName: "Marie", LastName: "Kabongo"}).
			Return(suite.member, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/members", body)
		suite.Equal(http.StatusCreated, recorder.Code)
	})

	suite.Run("department out of scope", func() {
		suite.mockAccess.EXPECT().AuthorizeDepartment(suite.identity, rbac.PermissionMembersManage, suite.member.DepartmentID).Return(nil, apperrors.ErrOutOfScope)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/members", body)
		suite.Equal(http.StatusForbidden, recorder.Code)
	})

	suite.Run("invalid json", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/members", "not an object")
		suite.Equal(http.StatusBadRequest, recorder.Code)
	})
}

func (suite *MemberHandlerTestSuite) TestUpdateMember_MoveChecksBothDepartments() {
	target := uuid.New()
	body := map[string]interface{}{
		"department_id": target.String(),
		"first_name":    "Marie",
		"last_name":     "Kabongo",
	}

	suite.Run("target out of scope", func() {
		suite.mockMembers.EXPECT().GetByID(suite.member.ID).Return(suite.member, nil)
		suite.mockAccess.EXPECT().AuthorizeDepartment(suite.identity, rbac.PermissionMembersManage, suite.member.DepartmentID).Return(&rbac.Session{}, nil)
		suite.mockAccess.EXPECT().AuthorizeDepartment(suite.identity, rbac.PermissionMembersManage, target).Return(nil, apperrors.ErrOutOfScope)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, suite.memberURL(), body)
		suite.Equal(http.StatusForbidden, recorder.Code)
	})

	suite.Run("moved", func() {
		suite.mockMembers.EXPECT().GetByID(suite.member.ID).Return(suite.member, nil)
		suite.mockAccess.EXPECT().AuthorizeDepartment(suite.identity, rbac.PermissionMembersManage, suite.member.DepartmentID).Return(&rbac.Session{}, nil)
		suite.mockAccess.EXPECT().AuthorizeDepartment(suite.identity, rbac.PermissionMembersManage, target).Return(&rbac.Session{}, nil)
		suite.mockMembers.EXPECT().Update(suite.member.ID, gomock.Any()).Return(&models.Member{DepartmentID: target}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, suite.memberURL(), body)
		suite.Equal(http.StatusOK, recorder.Code)
	})
}

func (suite *MemberHandlerTestSuite) TestUpdateMember_SameDepartment() {
	body := map[string]interface{}{
		"department_id": suite.member.DepartmentID.String(),
		"first_name":    "Marie-Claire",
		"last_name":     "Kabongo",
	}
	suite.mockMembers.EXPECT().GetByID(suite.member.ID).Return(suite.member, nil)
	suite.mockAccess.EXPECT().AuthorizeDepartment(suite.identity, rbac.PermissionMembersManage, suite.member.DepartmentID).Return(&rbac.Session{}, nil).Times(1)
	suite.mockMembers.EXPECT().Update(suite.member.ID, gomock.Any()).Return(suite.member, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, suite.memberURL(), body)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *MemberHandlerTestSuite) TestDeleteMember() {
	suite.Run("not found", func() {
		suite.mockMembers.EXPECT().GetByID(suite.member.ID).Return(nil, apperrors.ErrMemberNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, suite.memberURL(), nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "member not found")
	})

	suite.Run("deleted", func() {
		suite.mockMembers.EXPECT().GetByID(suite.member.ID).Return(suite.member, nil)
		suite.mockAccess.EXPECT().AuthorizeDepartment(suite.identity, rbac.PermissionMembersManage, suite.member.DepartmentID).Return(&rbac.Session{}, nil)
		suite.mockMembers.EXPECT().Delete(suite.member.ID).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, suite.memberURL(), nil)
		suite.Equal(http.StatusNoContent, recorder.Code)
	})
}

// TestMemberHandlerTestSuite runs the test suite
func TestMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerTestSuite))
}
