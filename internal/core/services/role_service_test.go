package services_test

import (
	"context"
	"testing"

	"github.com/fundacion-admin/backend/internal/core/domain"
	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/core/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) SaveRole(ctx context.Context, role domain.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) UpdateRole(ctx context.Context, role domain.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *MockRoleRepository) FindRoles(ctx context.Context) ([]domain.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Role), args.Error(1)
}

func (m *MockRoleRepository) DeleteRole(ctx context.Context, roleID string) error {
	args := m.Called(ctx, roleID)
	return args.Error(0)
}

func (m *MockRoleRepository) FindPermissions(ctx context.Context, roleID string) ([]string, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRoleRepository) ApplyPermissionDiff(ctx context.Context, roleID string, add []string, remove []string) error {
	args := m.Called(ctx, roleID, add, remove)
	return args.Error(0)
}

type RoleServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRoleRepository
	service  portssvc.RoleSvcFacade
}

func (suite *RoleServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRoleRepository)
	suite.service = services.NewRoleService(suite.mockRepo, nil)
}

func sameSet(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	set := make(map[string]bool, len(got))
	for _, p := range got {
		set[p] = true
	}
	for _, p := range want {
		if !set[p] {
			return false
		}
	}
	return true
}

func (suite *RoleServiceTestSuite) TestCreateRole_NilPermissionsBecomeEmpty() {
	ctx := context.Background()
	req := dto.CreateRoleRequest{Name: "Tesoreria", Description: "gestiona pagos"}

	suite.mockRepo.On("SaveRole", ctx, mock.MatchedBy(func(r domain.Role) bool {
		return r.Name == "Tesoreria" && r.Permissions != nil && len(r.Permissions) == 0
	})).Return(nil).Once()

	role, err := suite.service.CreateRole(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotNil(role.Permissions)
	suite.Empty(role.Permissions)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RoleServiceTestSuite) TestReplacePermissions_OnlyDiffApplied() {
	ctx := context.Background()
	roleID := uuid.NewString()

	current := []string{"billing.read", "billing.write", "reports.read"}
	desired := []string{"billing.read", "reports.read", "sanciones.read"}

	suite.mockRepo.On("FindPermissions", ctx, roleID).Return(current, nil).Once()
	suite.mockRepo.On("ApplyPermissionDiff", ctx, roleID,
		mock.MatchedBy(func(add []string) bool { return sameSet(add, []string{"sanciones.read"}) }),
		mock.MatchedBy(func(remove []string) bool { return sameSet(remove, []string{"billing.write"}) }),
	).Return(nil).Once()
	suite.mockRepo.On("FindRoleByID", ctx, roleID).Return(&domain.Role{
		RoleID:      roleID,
		Name:        "Tesoreria",
		Permissions: desired,
	}, nil).Once()

	role, err := suite.service.ReplacePermissions(ctx, roleID, desired, uuid.NewString())

	suite.Require().NoError(err)
	suite.ElementsMatch(desired, role.Permissions)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RoleServiceTestSuite) TestReplacePermissions_NoChanges() {
	ctx := context.Background()
	roleID := uuid.NewString()

	current := []string{"billing.read"}

	suite.mockRepo.On("FindPermissions", ctx, roleID).Return(current, nil).Once()
	suite.mockRepo.On("ApplyPermissionDiff", ctx, roleID,
		mock.MatchedBy(func(add []string) bool { return len(add) == 0 }),
		mock.MatchedBy(func(remove []string) bool { return len(remove) == 0 }),
	).Return(nil).Once()
	suite.mockRepo.On("FindRoleByID", ctx, roleID).Return(&domain.Role{
		RoleID:      roleID,
		Permissions: current,
	}, nil).Once()

	role, err := suite.service.ReplacePermissions(ctx, roleID, []string{"billing.read"}, uuid.NewString())

	suite.Require().NoError(err)
	suite.ElementsMatch(current, role.Permissions)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RoleServiceTestSuite) TestReplacePermissions_DuplicatesInDesiredCollapse() {
	ctx := context.Background()
	roleID := uuid.NewString()

	suite.mockRepo.On("FindPermissions", ctx, roleID).Return([]string{}, nil).Once()
	suite.mockRepo.On("ApplyPermissionDiff", ctx, roleID,
		mock.MatchedBy(func(add []string) bool { return sameSet(add, []string{"news.write"}) }),
		mock.MatchedBy(func(remove []string) bool { return len(remove) == 0 }),
	).Return(nil).Once()
	suite.mockRepo.On("FindRoleByID", ctx, roleID).Return(&domain.Role{
		RoleID:      roleID,
		Permissions: []string{"news.write"},
	}, nil).Once()

	role, err := suite.service.ReplacePermissions(ctx, roleID, []string{"news.write", "news.write"}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal([]string{"news.write"}, role.Permissions)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestRoleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoleServiceTestSuite))
}
