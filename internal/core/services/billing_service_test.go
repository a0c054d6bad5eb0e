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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BillingRepository ---
type MockBillingRepository struct {
	mock.Mock
}

func (m *MockBillingRepository) SaveRequest(ctx context.Context, req domain.BillingRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockBillingRepository) UpdateRequest(ctx context.Context, req domain.BillingRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockBillingRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.BillingRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingRequest), args.Error(1)
}

func (m *MockBillingRepository) FindRequests(ctx context.Context, limit int, offset int) ([]domain.BillingRequest, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillingRequest), args.Error(1)
}

func (m *MockBillingRepository) UpsertInvoice(ctx context.Context, inv domain.BillingInvoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockBillingRepository) FindInvoiceByRequestID(ctx context.Context, requestID string) (*domain.BillingInvoice, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingInvoice), args.Error(1)
}

func (m *MockBillingRepository) FindInvoicesByProject(ctx context.Context, projectID string) ([]domain.BillingInvoice, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillingInvoice), args.Error(1)
}

func (m *MockBillingRepository) SaveAllocation(ctx context.Context, alloc domain.ProgramAllocation) error {
	args := m.Called(ctx, alloc)
	return args.Error(0)
}

func (m *MockBillingRepository) FindAllocationsByProject(ctx context.Context, projectID string) ([]domain.ProgramAllocation, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProgramAllocation), args.Error(1)
}

func (m *MockBillingRepository) SumAllocationsByProject(ctx context.Context, projectID string) (decimal.Decimal, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBillingRepository) SavePaymentAndMarkPaid(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockBillingRepository) FindPaymentsByProject(ctx context.Context, projectID string) ([]domain.Payment, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockBillingRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockBillingRepository) FindReceiptsByProject(ctx context.Context, projectID string) ([]domain.Receipt, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

// --- Mock PresupuestoRepository ---
type MockPresupuestoRepository struct {
	mock.Mock
}

func (m *MockPresupuestoRepository) SavePresupuesto(ctx context.Context, p domain.Presupuesto) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPresupuestoRepository) UpdatePresupuesto(ctx context.Context, p domain.Presupuesto) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPresupuestoRepository) FindPresupuestoByID(ctx context.Context, presupuestoID string) (*domain.Presupuesto, error) {
	args := m.Called(ctx, presupuestoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Presupuesto), args.Error(1)
}

func (m *MockPresupuestoRepository) FindPresupuestosByProject(ctx context.Context, projectID string) ([]domain.Presupuesto, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Presupuesto), args.Error(1)
}

func (m *MockPresupuestoRepository) SumMontoAsignadoByProject(ctx context.Context, projectID string) (decimal.Decimal, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPresupuestoRepository) DeletePresupuesto(ctx context.Context, presupuestoID string) error {
	args := m.Called(ctx, presupuestoID)
	return args.Error(0)
}

// --- Mock FileStore ---
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, content, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// --- Test Suite ---
type BillingServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockBillingRepository
	mockPresupuesto *MockPresupuestoRepository
	mockFiles       *MockFileStore
	service         portssvc.BillingSvcFacade
}

func (suite *BillingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBillingRepository)
	suite.mockPresupuesto = new(MockPresupuestoRepository)
	suite.mockFiles = new(MockFileStore)
	suite.service = services.NewBillingService(suite.mockRepo, suite.mockPresupuesto, suite.mockFiles)
}

func (suite *BillingServiceTestSuite) TestCreateAllocation_Success() {
	ctx := context.Background()
	projectID := uuid.NewString()
	creatorUserID := uuid.NewString()
	req := dto.CreateAllocationRequest{
		ProjectID: projectID,
		Concept:   "materiales",
		Amount:    decimal.NewFromInt(300),
	}

	suite.mockPresupuesto.On("SumMontoAsignadoByProject", ctx, projectID).Return(decimal.NewFromInt(1000), nil).Once()
	suite.mockRepo.On("SumAllocationsByProject", ctx, projectID).Return(decimal.NewFromInt(500), nil).Once()
	suite.mockRepo.On("SaveAllocation", ctx, mock.MatchedBy(func(a domain.ProgramAllocation) bool {
		return a.ProjectID == projectID && a.Amount.Equal(req.Amount) && a.CreatedBy == creatorUserID
	})).Return(nil).Once()

	alloc, err := suite.service.CreateAllocation(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(alloc)
	suite.Equal(projectID, alloc.ProjectID)
	suite.True(alloc.Amount.Equal(req.Amount))

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockPresupuesto.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestCreateAllocation_InsufficientFunds() {
	ctx := context.Background()
	projectID := uuid.NewString()
	req := dto.CreateAllocationRequest{
		ProjectID: projectID,
		Concept:   "equipo",
		Amount:    decimal.NewFromInt(600),
	}

	suite.mockPresupuesto.On("SumMontoAsignadoByProject", ctx, projectID).Return(decimal.NewFromInt(1000), nil).Once()
	suite.mockRepo.On("SumAllocationsByProject", ctx, projectID).Return(decimal.NewFromInt(500), nil).Once()

	alloc, err := suite.service.CreateAllocation(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Nil(alloc)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAllocation", mock.Anything, mock.Anything)
}

func (suite *BillingServiceTestSuite) TestCreateAllocation_ExactRemainderAllowed() {
	ctx := context.Background()
	projectID := uuid.NewString()
	req := dto.CreateAllocationRequest{
		ProjectID: projectID,
		Concept:   "transporte",
		Amount:    decimal.NewFromInt(500),
	}

	suite.mockPresupuesto.On("SumMontoAsignadoByProject", ctx, projectID).Return(decimal.NewFromInt(1000), nil).Once()
	suite.mockRepo.On("SumAllocationsByProject", ctx, projectID).Return(decimal.NewFromInt(500), nil).Once()
	suite.mockRepo.On("SaveAllocation", ctx, mock.Anything).Return(nil).Once()

	alloc, err := suite.service.CreateAllocation(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(alloc)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestCreateRequest_StartsPending() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateBillingRequestRequest{
		ProjectID: uuid.NewString(),
		Amount:    decimal.NewFromInt(250),
		Concept:   "alimentos",
	}

	suite.mockRepo.On("SaveRequest", ctx, mock.MatchedBy(func(r domain.BillingRequest) bool {
		return r.Status == domain.RequestPending && len(r.History) == 1
	})).Return(nil).Once()

	request, err := suite.service.CreateRequest(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.RequestPending, request.Status)
	suite.Len(request.History, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestPatchRequest_InvoiceTotalMismatch() {
	ctx := context.Background()
	requestID := uuid.NewString()
	existing := &domain.BillingRequest{
		RequestID: requestID,
		ProjectID: uuid.NewString(),
		Amount:    decimal.NewFromInt(250),
		Concept:   "alimentos",
		Status:    domain.RequestPending,
	}

	suite.mockRepo.On("FindRequestByID", ctx, requestID).Return(existing, nil).Once()

	patch := dto.PatchBillingRequestRequest{
		FinalInvoice: &dto.FinalInvoiceInput{
			Number:   "F-001",
			Date:     time.Now(),
			Total:    decimal.NewFromInt(300),
			Currency: "CRC",
		},
	}

	updated, err := suite.service.PatchRequest(ctx, requestID, patch, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAmountMismatch)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertInvoice", mock.Anything, mock.Anything)
}

func (suite *BillingServiceTestSuite) TestPatchRequest_InvoiceConceptMatchIgnoresCase() {
	ctx := context.Background()
	requestID := uuid.NewString()
	existing := &domain.BillingRequest{
		RequestID: requestID,
		ProjectID: uuid.NewString(),
		Amount:    decimal.NewFromInt(250),
		Concept:   "Alimentos",
		Status:    domain.RequestPending,
	}

	suite.mockRepo.On("FindRequestByID", ctx, requestID).Return(existing, nil).Once()
	suite.mockRepo.On("UpsertInvoice", ctx, mock.MatchedBy(func(inv domain.BillingInvoice) bool {
		return inv.RequestID == requestID && inv.IsValid && inv.Total.Equal(decimal.NewFromInt(250))
	})).Return(nil).Once()
	suite.mockRepo.On("UpdateRequest", ctx, mock.MatchedBy(func(r domain.BillingRequest) bool {
		return r.Status == domain.RequestValidated
	})).Return(nil).Once()

	concept := "ALIMENTOS"
	patch := dto.PatchBillingRequestRequest{
		FinalInvoice: &dto.FinalInvoiceInput{
			Number:   "F-002",
			Date:     time.Now(),
			Total:    decimal.NewFromInt(250),
			Currency: "CRC",
			Concept:  &concept,
		},
	}

	updated, err := suite.service.PatchRequest(ctx, requestID, patch, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.RequestValidated, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestCreatePayment_ProjectMismatch() {
	ctx := context.Background()
	requestID := uuid.NewString()
	existing := &domain.BillingRequest{
		RequestID: requestID,
		ProjectID: uuid.NewString(),
		Amount:    decimal.NewFromInt(250),
		Status:    domain.RequestApproved,
	}

	suite.mockRepo.On("FindRequestByID", ctx, requestID).Return(existing, nil).Once()

	req := dto.CreatePaymentRequest{
		RequestID: requestID,
		ProjectID: uuid.NewString(), // different project
		Amount:    decimal.NewFromInt(250),
		Currency:  "CRC",
		Reference: "TRF-9",
	}

	payment, err := suite.service.CreatePayment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrProjectMismatch)
	suite.Nil(payment)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePaymentAndMarkPaid", mock.Anything, mock.Anything)
}

func (suite *BillingServiceTestSuite) TestCreatePayment_Success() {
	ctx := context.Background()
	requestID := uuid.NewString()
	projectID := uuid.NewString()
	existing := &domain.BillingRequest{
		RequestID: requestID,
		ProjectID: projectID,
		Amount:    decimal.NewFromInt(250),
		Status:    domain.RequestApproved,
	}

	suite.mockRepo.On("FindRequestByID", ctx, requestID).Return(existing, nil).Once()
	suite.mockRepo.On("SavePaymentAndMarkPaid", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.RequestID == requestID && p.ProjectID == projectID && p.Amount.Equal(existing.Amount)
	})).Return(nil).Once()

	req := dto.CreatePaymentRequest{
		RequestID: requestID,
		ProjectID: projectID,
		Amount:    decimal.NewFromInt(250),
		Currency:  "CRC",
		Reference: "TRF-10",
	}

	payment, err := suite.service.CreatePayment(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal(requestID, payment.RequestID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillingServiceTestSuite) TestCreatePayment_AlreadyPaid() {
	ctx := context.Background()
	requestID := uuid.NewString()
	projectID := uuid.NewString()
	existing := &domain.BillingRequest{
		RequestID: requestID,
		ProjectID: projectID,
		Amount:    decimal.NewFromInt(250),
		Status:    domain.RequestPaid,
	}

	suite.mockRepo.On("FindRequestByID", ctx, requestID).Return(existing, nil).Once()

	req := dto.CreatePaymentRequest{
		RequestID: requestID,
		ProjectID: projectID,
		Amount:    decimal.NewFromInt(250),
		Currency:  "CRC",
		Reference: "TRF-11",
	}

	payment, err := suite.service.CreatePayment(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(payment)
}

func (suite *BillingServiceTestSuite) TestGetProgramLedger_SignsAndOrder() {
	ctx := context.Background()
	projectID := uuid.NewString()

	enero := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	febrero := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	marzo := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	suite.mockPresupuesto.On("FindPresupuestosByProject", ctx, projectID).Return([]domain.Presupuesto{
		{ProjectID: projectID, Proyecto: "Comedor", Mes: 1, Anio: 2024, MontoAsignado: decimal.NewFromInt(1000)},
	}, nil).Once()
	suite.mockRepo.On("FindAllocationsByProject", ctx, projectID).Return([]domain.ProgramAllocation{
		{ProjectID: projectID, Concept: "materiales", Amount: decimal.NewFromInt(200), Date: febrero},
	}, nil).Once()
	suite.mockRepo.On("FindInvoicesByProject", ctx, projectID).Return([]domain.BillingInvoice{
		{Number: "F-001", Total: decimal.NewFromInt(150), Date: marzo},
	}, nil).Once()
	suite.mockRepo.On("FindPaymentsByProject", ctx, projectID).Return([]domain.Payment{
		{Reference: "TRF-1", Amount: decimal.NewFromInt(150), Date: marzo},
	}, nil).Once()
	suite.mockRepo.On("FindReceiptsByProject", ctx, projectID).Return([]domain.Receipt{
		{Filename: "recibo.pdf", UploadedAt: marzo},
	}, nil).Once()

	rows, err := suite.service.GetProgramLedger(ctx, projectID)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 5)

	suite.Equal(domain.LedgerBudget, rows[0].Type)
	suite.Equal(enero, rows[0].Date)
	suite.True(rows[0].Amount.Equal(decimal.NewFromInt(1000)))

	suite.Equal(domain.LedgerAllocation, rows[1].Type)
	suite.True(rows[1].Amount.Equal(decimal.NewFromInt(-200)))

	// same-day rows keep insertion order: invoice, payment, receipt
	suite.Equal(domain.LedgerInvoice, rows[2].Type)
	suite.True(rows[2].Amount.Equal(decimal.NewFromInt(-150)))
	suite.Equal(domain.LedgerPayment, rows[3].Type)
	suite.True(rows[3].Amount.Equal(decimal.NewFromInt(-150)))
	suite.Equal(domain.LedgerReceipt, rows[4].Type)
	suite.True(rows[4].Amount.IsZero())
}

func TestBillingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillingServiceTestSuite))
}
