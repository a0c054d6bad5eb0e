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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) ProjectDates(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockReportRepository) InvoiceDates(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockReportRepository) TransaccionDates(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockReportRepository) CollaboratorDates(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockReportRepository) SolicitudDates(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockReportRepository) VolunteerDates(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

type MockPDFRenderer struct {
	mock.Mock
}

func (m *MockPDFRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	args := m.Called(ctx, html)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type ReportServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockReportRepository
	mockRenderer *MockPDFRenderer
	service      portssvc.ReportSvcFacade
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportRepository)
	suite.mockRenderer = new(MockPDFRenderer)
	suite.service = services.NewReportService(suite.mockRepo, suite.mockRenderer)
}

func (suite *ReportServiceTestSuite) TestGenerateReport_MonthlyBuckets() {
	ctx := context.Background()

	marzo1 := time.Date(2024, time.March, 3, 10, 0, 0, 0, time.UTC)
	marzo2 := time.Date(2024, time.March, 28, 16, 0, 0, 0, time.UTC)
	julio := time.Date(2024, time.July, 12, 9, 0, 0, 0, time.UTC)

	suite.mockRepo.On("ProjectDates", ctx, mock.Anything, mock.Anything).
		Return([]time.Time{marzo1, marzo2, julio}, nil).Once()

	report, err := suite.service.GenerateReport(ctx, dto.GenerateReportRequest{
		Periodo:     "ANIO",
		Anio:        2024,
		TipoReporte: "Mensual",
		Modulos:     []string{"projects"},
	})

	suite.Require().NoError(err)
	suite.Equal(3, report.TotalRegistros)

	summary, ok := report.Detalles[domain.ModuleProjects]
	suite.Require().True(ok)
	suite.Equal(3, summary.Total)
	suite.Equal(2, summary.Grupos["marzo"])
	suite.Equal(1, summary.Grupos["julio"])
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestGenerateReport_MultipleModulesAccumulate() {
	ctx := context.Background()

	d := time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("InvoiceDates", ctx, mock.Anything, mock.Anything).
		Return([]time.Time{d, d}, nil).Once()
	suite.mockRepo.On("VolunteerDates", ctx, mock.Anything, mock.Anything).
		Return([]time.Time{d}, nil).Once()

	report, err := suite.service.GenerateReport(ctx, dto.GenerateReportRequest{
		Periodo:     "ANIO",
		Anio:        2024,
		TipoReporte: "Trimestral",
		Modulos:     []string{"billing", "volunteer"},
	})

	suite.Require().NoError(err)
	suite.Equal(3, report.TotalRegistros)
	suite.Equal(2, report.Detalles[domain.ModuleBilling].Grupos["T2"])
	suite.Equal(1, report.Detalles[domain.ModuleVolunteer].Grupos["T2"])
}

func (suite *ReportServiceTestSuite) TestGenerateReport_DeduplicatesModules() {
	ctx := context.Background()

	suite.mockRepo.On("ProjectDates", ctx, mock.Anything, mock.Anything).
		Return([]time.Time{}, nil).Once()

	report, err := suite.service.GenerateReport(ctx, dto.GenerateReportRequest{
		Periodo:     "ANIO",
		Anio:        2024,
		TipoReporte: "Anual",
		Modulos:     []string{"projects", "projects"},
	})

	suite.Require().NoError(err)
	suite.Len(report.Detalles, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestGenerateReport_UnknownModule() {
	ctx := context.Background()

	report, err := suite.service.GenerateReport(ctx, dto.GenerateReportRequest{
		Periodo:     "ANIO",
		Anio:        2024,
		TipoReporte: "Mensual",
		Modulos:     []string{"ventas"},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(report)
}

func (suite *ReportServiceTestSuite) TestGenerateReport_RangeEndBeforeStart() {
	ctx := context.Background()

	inicio := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	report, err := suite.service.GenerateReport(ctx, dto.GenerateReportRequest{
		Periodo:     "RANGO",
		FechaInicio: &inicio,
		FechaFin:    &fin,
		TipoReporte: "Mensual",
		Modulos:     []string{"projects"},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(report)
}

func (suite *ReportServiceTestSuite) TestExportPDF_DelegatesToRenderer() {
	ctx := context.Background()
	report := &domain.Report{
		TotalRegistros:  1,
		Detalles:        map[domain.ReportModule]domain.ModuleSummary{domain.ModuleProjects: {Total: 1, Grupos: map[string]int{"enero": 1}}},
		FechaGeneracion: time.Now(),
		Desde:           time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Hasta:           time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		TipoReporte:     domain.ReporteMensual,
	}

	suite.mockRenderer.On("RenderPDF", ctx, mock.MatchedBy(func(html string) bool {
		return html != ""
	})).Return([]byte("%PDF-1.4"), nil).Once()

	out, err := suite.service.ExportPDF(ctx, report)

	suite.Require().NoError(err)
	suite.Equal([]byte("%PDF-1.4"), out)
	suite.mockRenderer.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestExportExcel_ProducesWorkbook() {
	ctx := context.Background()
	report := &domain.Report{
		TotalRegistros:  2,
		Detalles:        map[domain.ReportModule]domain.ModuleSummary{domain.ModuleBilling: {Total: 2, Grupos: map[string]int{"T1": 2}}},
		FechaGeneracion: time.Now(),
		Desde:           time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Hasta:           time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		TipoReporte:     domain.ReporteTrimestral,
	}

	out, err := suite.service.ExportExcel(ctx, report)

	suite.Require().NoError(err)
	suite.NotEmpty(out)
	// XLSX files are zip archives
	suite.Equal(byte('P'), out[0])
	suite.Equal(byte('K'), out[1])
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
