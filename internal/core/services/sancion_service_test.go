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
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockSancionRepository struct {
	mock.Mock
}

func (m *MockSancionRepository) SaveSancion(ctx context.Context, s domain.Sancion) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSancionRepository) UpdateSancion(ctx context.Context, s domain.Sancion) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSancionRepository) FindSancionByID(ctx context.Context, sancionID string) (*domain.Sancion, error) {
	args := m.Called(ctx, sancionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sancion), args.Error(1)
}

func (m *MockSancionRepository) FindSanciones(ctx context.Context, voluntarioID string, estado domain.EstadoSancion) ([]domain.Sancion, error) {
	args := m.Called(ctx, voluntarioID, estado)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sancion), args.Error(1)
}

func (m *MockSancionRepository) ExpireDueSanciones(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type SancionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSancionRepository
	service  portssvc.SancionSvcFacade
}

func (suite *SancionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSancionRepository)
	suite.service = services.NewSancionService(suite.mockRepo, nil)
}

func (suite *SancionServiceTestSuite) TestCreateSancion_StartsActiva() {
	ctx := context.Background()
	vencimiento := time.Now().Add(30 * 24 * time.Hour)
	req := dto.CreateSancionRequest{
		VoluntarioID:     uuid.NewString(),
		Tipo:             "GRAVE",
		Motivo:           "ausencias reiteradas",
		FechaVencimiento: &vencimiento,
	}

	suite.mockRepo.On("SaveSancion", ctx, mock.MatchedBy(func(s domain.Sancion) bool {
		return s.Estado == domain.SancionActiva && s.VoluntarioID == req.VoluntarioID
	})).Return(nil).Once()

	sancion, err := suite.service.CreateSancion(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.SancionActiva, sancion.Estado)
	suite.Equal(domain.SancionGrave, sancion.Tipo)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SancionServiceTestSuite) TestCreateSancion_VencimientoBeforeInicio() {
	ctx := context.Background()
	inicio := time.Now()
	vencimiento := inicio.Add(-24 * time.Hour)
	req := dto.CreateSancionRequest{
		VoluntarioID:     uuid.NewString(),
		Tipo:             "LEVE",
		Motivo:           "impuntualidad",
		FechaInicio:      &inicio,
		FechaVencimiento: &vencimiento,
	}

	sancion, err := suite.service.CreateSancion(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(sancion)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSancion", mock.Anything, mock.Anything)
}

func (suite *SancionServiceTestSuite) TestGetSancion_RefreshesBeforeRead() {
	ctx := context.Background()
	sancionID := uuid.NewString()
	past := time.Now().Add(-48 * time.Hour)
	stored := &domain.Sancion{
		SancionID:        sancionID,
		VoluntarioID:     uuid.NewString(),
		Tipo:             domain.SancionLeve,
		Motivo:           "impuntualidad",
		FechaInicio:      past.Add(-time.Hour),
		FechaVencimiento: &past,
		Estado:           domain.SancionExpirada,
	}

	suite.mockRepo.On("ExpireDueSanciones", ctx, mock.Anything).Return(int64(1), nil).Once()
	suite.mockRepo.On("FindSancionByID", ctx, sancionID).Return(stored, nil).Once()

	sancion, err := suite.service.GetSancion(ctx, sancionID)

	suite.Require().NoError(err)
	suite.Equal(domain.SancionExpirada, sancion.Estado)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SancionServiceTestSuite) TestListSanciones_FilterPassedThrough() {
	ctx := context.Background()
	voluntarioID := uuid.NewString()

	suite.mockRepo.On("ExpireDueSanciones", ctx, mock.Anything).Return(int64(0), nil).Once()
	suite.mockRepo.On("FindSanciones", ctx, voluntarioID, domain.SancionActiva).
		Return([]domain.Sancion{{SancionID: uuid.NewString(), VoluntarioID: voluntarioID, Estado: domain.SancionActiva}}, nil).Once()

	sanciones, err := suite.service.ListSanciones(ctx, dto.ListSancionesParams{
		VoluntarioID: voluntarioID,
		Estado:       "ACTIVA",
	})

	suite.Require().NoError(err)
	suite.Len(sanciones, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SancionServiceTestSuite) TestUpdateSancion_RevokedIsImmutable() {
	ctx := context.Background()
	sancionID := uuid.NewString()
	revokedAt := time.Now().Add(-time.Hour)
	stored := &domain.Sancion{
		SancionID:       sancionID,
		VoluntarioID:    uuid.NewString(),
		Tipo:            domain.SancionGrave,
		Motivo:          "conducta inapropiada",
		FechaInicio:     revokedAt.Add(-24 * time.Hour),
		Estado:          domain.SancionRevocada,
		FechaRevocacion: &revokedAt,
	}

	suite.mockRepo.On("FindSancionByID", ctx, sancionID).Return(stored, nil).Once()

	motivo := "texto nuevo"
	sancion, err := suite.service.UpdateSancion(ctx, sancionID, dto.UpdateSancionRequest{Motivo: &motivo}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(sancion)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateSancion", mock.Anything, mock.Anything)
}

func (suite *SancionServiceTestSuite) TestRevocarSancion_Success() {
	ctx := context.Background()
	sancionID := uuid.NewString()
	actorUserID := uuid.NewString()
	stored := &domain.Sancion{
		SancionID:    sancionID,
		VoluntarioID: uuid.NewString(),
		Tipo:         domain.SancionMuyGrave,
		Motivo:       "daño a bienes",
		FechaInicio:  time.Now().Add(-24 * time.Hour),
		Estado:       domain.SancionActiva,
	}

	suite.mockRepo.On("FindSancionByID", ctx, sancionID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateSancion", ctx, mock.MatchedBy(func(s domain.Sancion) bool {
		return s.Estado == domain.SancionRevocada && s.FechaRevocacion != nil && s.RevocadaPor == actorUserID
	})).Return(nil).Once()

	sancion, err := suite.service.RevocarSancion(ctx, sancionID, "", actorUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.SancionRevocada, sancion.Estado)
	suite.NotNil(sancion.FechaRevocacion)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SancionServiceTestSuite) TestRevocarSancion_AlreadyRevoked() {
	ctx := context.Background()
	sancionID := uuid.NewString()
	revokedAt := time.Now().Add(-time.Hour)
	stored := &domain.Sancion{
		SancionID:       sancionID,
		VoluntarioID:    uuid.NewString(),
		Estado:          domain.SancionRevocada,
		FechaRevocacion: &revokedAt,
	}

	suite.mockRepo.On("FindSancionByID", ctx, sancionID).Return(stored, nil).Once()

	sancion, err := suite.service.RevocarSancion(ctx, sancionID, "", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(sancion)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateSancion", mock.Anything, mock.Anything)
}

func TestSancionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SancionServiceTestSuite))
}
