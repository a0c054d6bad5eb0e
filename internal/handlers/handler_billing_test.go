package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fundacion-admin/backend/internal/apperrors"
	"github.com/fundacion-admin/backend/internal/core/domain"
	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/fundacion-admin/backend/internal/handlers"
	"github.com/fundacion-admin/backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BillingService ---
type MockBillingService struct {
	mock.Mock
}

func (m *MockBillingService) GetRequest(ctx context.Context, requestID string) (*domain.BillingRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingRequest), args.Error(1)
}

func (m *MockBillingService) ListRequests(ctx context.Context, limit int, offset int) ([]domain.BillingRequest, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillingRequest), args.Error(1)
}

func (m *MockBillingService) GetInvoiceByRequest(ctx context.Context, requestID string) (*domain.BillingInvoice, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingInvoice), args.Error(1)
}

func (m *MockBillingService) ListAllocations(ctx context.Context, projectID string) ([]domain.ProgramAllocation, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProgramAllocation), args.Error(1)
}

func (m *MockBillingService) GetProgramLedger(ctx context.Context, projectID string) ([]domain.LedgerRow, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerRow), args.Error(1)
}

func (m *MockBillingService) CreateAllocation(ctx context.Context, req dto.CreateAllocationRequest, creatorUserID string) (*domain.ProgramAllocation, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProgramAllocation), args.Error(1)
}

func (m *MockBillingService) CreateRequest(ctx context.Context, req dto.CreateBillingRequestRequest, creatorUserID string) (*domain.BillingRequest, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingRequest), args.Error(1)
}

func (m *MockBillingService) PatchRequest(ctx context.Context, requestID string, req dto.PatchBillingRequestRequest, updaterUserID string) (*domain.BillingRequest, error) {
	args := m.Called(ctx, requestID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillingRequest), args.Error(1)
}

func (m *MockBillingService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockBillingService) CreateReceipt(ctx context.Context, projectID, paymentID string, file dto.FileUpload, creatorUserID string) (*domain.Receipt, error) {
	args := m.Called(ctx, projectID, paymentID, file, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.BillingSvcFacade = (*MockBillingService)(nil)

// --- Test Suite ---
type BillingHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockBillingService *MockBillingService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *BillingHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fundacion-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *BillingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockBillingService = new(MockBillingService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterBillingRoutes(v1, suite.mockBillingService)
}

func (suite *BillingHandlerTestSuite) TestCreateAllocation_Success() {
	userID := uuid.NewString()
	projectID := uuid.NewString()
	reqBody := dto.CreateAllocationRequest{
		ProjectID: projectID,
		Concept:   "materiales",
		Amount:    decimal.NewFromInt(300),
	}

	expected := &domain.ProgramAllocation{
		AllocationID: uuid.NewString(),
		ProjectID:    projectID,
		Concept:      "materiales",
		Amount:       decimal.NewFromInt(300),
		Date:         time.Now(),
	}

	suite.mockBillingService.On("CreateAllocation", mock.Anything, mock.MatchedBy(func(r dto.CreateAllocationRequest) bool {
		return r.ProjectID == projectID && r.Amount.Equal(reqBody.Amount)
	}), userID).Return(expected, nil).Once()

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/allocations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AllocationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.AllocationID, resp.AllocationID)
	suite.True(resp.Amount.Equal(expected.Amount))
	suite.mockBillingService.AssertExpectations(suite.T())
}

func (suite *BillingHandlerTestSuite) TestCreateAllocation_InsufficientFunds() {
	userID := uuid.NewString()
	reqBody := dto.CreateAllocationRequest{
		ProjectID: uuid.NewString(),
		Concept:   "equipo",
		Amount:    decimal.NewFromInt(9000),
	}

	suite.mockBillingService.On("CreateAllocation", mock.Anything, mock.Anything, userID).
		Return(nil, fmt.Errorf("%w: requested 9000", apperrors.ErrInsufficientFunds)).Once()

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/allocations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBillingService.AssertExpectations(suite.T())
}

func (suite *BillingHandlerTestSuite) TestCreateAllocation_Unauthorized() {
	body, _ := json.Marshal(dto.CreateAllocationRequest{
		ProjectID: uuid.NewString(),
		Concept:   "materiales",
		Amount:    decimal.NewFromInt(100),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/allocations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockBillingService.AssertNotCalled(suite.T(), "CreateAllocation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BillingHandlerTestSuite) TestCreatePayment_Conflict() {
	userID := uuid.NewString()
	reqBody := dto.CreatePaymentRequest{
		RequestID: uuid.NewString(),
		ProjectID: uuid.NewString(),
		Amount:    decimal.NewFromInt(250),
		Currency:  "CRC",
		Reference: "TRF-1",
	}

	suite.mockBillingService.On("CreatePayment", mock.Anything, mock.Anything, userID).
		Return(nil, fmt.Errorf("%w: request already paid", apperrors.ErrDuplicate)).Once()

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/payments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockBillingService.AssertExpectations(suite.T())
}

func (suite *BillingHandlerTestSuite) TestGetLedger_Success() {
	userID := uuid.NewString()
	projectID := uuid.NewString()

	rows := []domain.LedgerRow{
		{Type: domain.LedgerBudget, Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(1000)},
		{Type: domain.LedgerAllocation, Date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(-200)},
	}

	suite.mockBillingService.On("GetProgramLedger", mock.Anything, projectID).Return(rows, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/billing/projects/"+projectID+"/ledger", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LedgerResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(projectID, resp.ProjectID)
	suite.Require().Len(resp.Rows, 2)
	suite.Equal(domain.LedgerBudget, resp.Rows[0].Type)
	suite.mockBillingService.AssertExpectations(suite.T())
}

func (suite *BillingHandlerTestSuite) TestGetRequest_NotFound() {
	userID := uuid.NewString()
	requestID := uuid.NewString()

	suite.mockBillingService.On("GetRequest", mock.Anything, requestID).
		Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/billing/requests/"+requestID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockBillingService.AssertExpectations(suite.T())
}

func TestBillingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BillingHandlerTestSuite))
}
