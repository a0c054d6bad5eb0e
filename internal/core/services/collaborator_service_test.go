package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fundacion-admin/backend/internal/apperrors"
	"github.com/fundacion-admin/backend/internal/core/domain"
	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/core/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/fundacion-admin/backend/internal/platform/mailer"
	"github.com/fundacion-admin/backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockCollaboratorRepository struct {
	mock.Mock
}

func (m *MockCollaboratorRepository) SaveCollaborator(ctx context.Context, c domain.Collaborator) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCollaboratorRepository) UpdateCollaborator(ctx context.Context, c domain.Collaborator) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCollaboratorRepository) FindCollaboratorByID(ctx context.Context, collaboratorID string) (*domain.Collaborator, error) {
	args := m.Called(ctx, collaboratorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collaborator), args.Error(1)
}

func (m *MockCollaboratorRepository) FindCollaboratorByEmail(ctx context.Context, email string) (*domain.Collaborator, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collaborator), args.Error(1)
}

func (m *MockCollaboratorRepository) FindCollaboratorByCedula(ctx context.Context, cedula string) (*domain.Collaborator, error) {
	args := m.Called(ctx, cedula)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collaborator), args.Error(1)
}

func (m *MockCollaboratorRepository) FindCollaborators(ctx context.Context, limit int, offset int) ([]domain.Collaborator, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Collaborator), args.Error(1)
}

func (m *MockCollaboratorRepository) MarkCollaboratorDeleted(ctx context.Context, collaboratorID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, collaboratorID, deletedAt, deletedBy)
	return args.Error(0)
}

// fakeMailer records sent messages synchronously.
type fakeMailer struct {
	sent []mailer.Message
}

func (f *fakeMailer) SendAsync(msg mailer.Message) {
	f.sent = append(f.sent, msg)
}

type CollaboratorServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCollaboratorRepository
	mail     *fakeMailer
	service  portssvc.CollaboratorSvcFacade
}

func (suite *CollaboratorServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCollaboratorRepository)
	suite.mail = &fakeMailer{}
	suite.service = services.NewCollaboratorService(suite.mockRepo, services.WithWelcomeMailer(suite.mail))
}

func validCreateRequest() dto.CreateCollaboratorRequest {
	return dto.CreateCollaboratorRequest{
		Email:     "ana@fundacion.org",
		Cedula:    "1-1111-1111",
		Name:      "Ana Rojas",
		Phone:     "8888-8888",
		BirthDate: time.Now().AddDate(-30, 0, 0),
		Password:  "contrasena-segura",
	}
}

func (suite *CollaboratorServiceTestSuite) TestCreateCollaborator_Success() {
	ctx := context.Background()
	req := validCreateRequest()

	suite.mockRepo.On("FindCollaboratorByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindCollaboratorByCedula", ctx, req.Cedula).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCollaborator", ctx, mock.MatchedBy(func(c domain.Collaborator) bool {
		return c.Email == req.Email && c.PasswordHash != req.Password && utils.CheckPasswordHash(req.Password, c.PasswordHash)
	})).Return(nil).Once()

	c, err := suite.service.CreateCollaborator(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(req.Email, c.Email)
	suite.NotEqual(req.Password, c.PasswordHash)

	suite.Require().Len(suite.mail.sent, 1)
	suite.Equal([]string{req.Email}, suite.mail.sent[0].To)
	suite.Contains(suite.mail.sent[0].Subject, "Bienvenido")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CollaboratorServiceTestSuite) TestCreateCollaborator_Underage() {
	ctx := context.Background()
	req := validCreateRequest()
	req.BirthDate = time.Now().AddDate(-17, 0, 0)

	c, err := suite.service.CreateCollaborator(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(c)
	suite.Empty(suite.mail.sent)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCollaborator", mock.Anything, mock.Anything)
}

func (suite *CollaboratorServiceTestSuite) TestCreateCollaborator_ExactlyEighteen() {
	ctx := context.Background()
	req := validCreateRequest()
	req.BirthDate = time.Now().AddDate(-18, 0, 0).Add(-time.Minute)

	suite.mockRepo.On("FindCollaboratorByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindCollaboratorByCedula", ctx, req.Cedula).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveCollaborator", ctx, mock.Anything).Return(nil).Once()

	c, err := suite.service.CreateCollaborator(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.NotNil(c)
}

func (suite *CollaboratorServiceTestSuite) TestCreateCollaborator_DuplicateEmail() {
	ctx := context.Background()
	req := validCreateRequest()

	existing := &domain.Collaborator{CollaboratorID: uuid.NewString(), Email: req.Email}
	suite.mockRepo.On("FindCollaboratorByEmail", ctx, req.Email).Return(existing, nil).Once()

	c, err := suite.service.CreateCollaborator(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(c)
	suite.Empty(suite.mail.sent)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCollaborator", mock.Anything, mock.Anything)
}

func (suite *CollaboratorServiceTestSuite) TestCreateCollaborator_DuplicateCedula() {
	ctx := context.Background()
	req := validCreateRequest()

	suite.mockRepo.On("FindCollaboratorByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	existing := &domain.Collaborator{CollaboratorID: uuid.NewString(), Cedula: req.Cedula}
	suite.mockRepo.On("FindCollaboratorByCedula", ctx, req.Cedula).Return(existing, nil).Once()

	c, err := suite.service.CreateCollaborator(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(c)
}

func (suite *CollaboratorServiceTestSuite) TestDeleteCollaborator_SoftDelete() {
	ctx := context.Background()
	collaboratorID := uuid.NewString()
	deleterUserID := uuid.NewString()

	suite.mockRepo.On("MarkCollaboratorDeleted", ctx, collaboratorID, mock.Anything, deleterUserID).Return(nil).Once()

	err := suite.service.DeleteCollaborator(ctx, collaboratorID, deleterUserID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCollaboratorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CollaboratorServiceTestSuite))
}
