package services

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/fundacion-admin/backend/internal/apperrors"
	"github.com/fundacion-admin/backend/internal/core/domain"
	portsrepo "github.com/fundacion-admin/backend/internal/core/ports/repositories"
	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/fundacion-admin/backend/internal/platform/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type billingService struct {
	BaseService
	repo        portsrepo.BillingRepositoryFacade
	presupuesto portsrepo.PresupuestoRepository
	files       storage.FileStore
}

// BillingServiceOption configures the billing service.
type BillingServiceOption func(*billingService)

// WithBillingAuditRecorder attaches an audit trail to billing writes.
func WithBillingAuditRecorder(audit portsrepo.AuditRecorder) BillingServiceOption {
	return func(s *billingService) {
		s.Audit = audit
	}
}

// NewBillingService creates the billing lifecycle service. The presupuesto
// repository supplies the budget side of the funds invariant and the ledger.
func NewBillingService(repo portsrepo.BillingRepositoryFacade, presupuesto portsrepo.PresupuestoRepository, files storage.FileStore, opts ...BillingServiceOption) portssvc.BillingSvcFacade {
	s := &billingService{
		repo:        repo,
		presupuesto: presupuesto,
		files:       files,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure implementation matches interface
var _ portssvc.BillingSvcFacade = (*billingService)(nil)

// availableFunds is the project's assigned budget minus what is already
// earmarked by allocations.
func (s *billingService) availableFunds(ctx context.Context, projectID string) (decimal.Decimal, error) {
	budget, err := s.presupuesto.SumMontoAsignadoByProject(ctx, projectID)
	if err != nil {
		return decimal.Zero, err
	}
	allocated, err := s.repo.SumAllocationsByProject(ctx, projectID)
	if err != nil {
		return decimal.Zero, err
	}
	return budget.Sub(allocated), nil
}

// CreateAllocation earmarks funds; rejects amounts above the project's
// available funds.
func (s *billingService) CreateAllocation(ctx context.Context, req dto.CreateAllocationRequest, creatorUserID string) (*domain.ProgramAllocation, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: allocation amount must be positive", apperrors.ErrValidation)
	}

	available, err := s.availableFunds(ctx, req.ProjectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute available funds", slog.String("project_id", req.ProjectID))
		return nil, err
	}
	if req.Amount.GreaterThan(available) {
		return nil, fmt.Errorf("%w: requested %s but only %s available for project %s",
			apperrors.ErrInsufficientFunds, req.Amount, available, req.ProjectID)
	}

	now := time.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}
	alloc := domain.ProgramAllocation{
		AllocationID: uuid.NewString(),
		ProjectID:    req.ProjectID,
		Concept:      req.Concept,
		Amount:       req.Amount,
		Date:         date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SaveAllocation(ctx, alloc); err != nil {
		s.LogError(ctx, err, "Failed to save allocation", slog.String("project_id", req.ProjectID))
		return nil, err
	}

	s.LogInfo(ctx, "Allocation created",
		slog.String("allocation_id", alloc.AllocationID),
		slog.String("project_id", alloc.ProjectID),
		slog.String("amount", alloc.Amount.String()))
	s.RecordAudit(ctx, creatorUserID, "create", "allocation", alloc.AllocationID)
	return &alloc, nil
}

// CreateRequest opens a billing request with status PENDING.
func (s *billingService) CreateRequest(ctx context.Context, req dto.CreateBillingRequestRequest, creatorUserID string) (*domain.BillingRequest, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: request amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	request := domain.BillingRequest{
		RequestID: uuid.NewString(),
		ProjectID: req.ProjectID,
		Amount:    req.Amount,
		Concept:   req.Concept,
		Status:    domain.RequestPending,
		History: []domain.HistoryEntry{
			{At: now, Actor: creatorUserID, Detail: "solicitud creada"},
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SaveRequest(ctx, request); err != nil {
		s.LogError(ctx, err, "Failed to save billing request", slog.String("project_id", req.ProjectID))
		return nil, err
	}

	s.LogInfo(ctx, "Billing request created",
		slog.String("request_id", request.RequestID),
		slog.String("project_id", request.ProjectID))
	s.RecordAudit(ctx, creatorUserID, "create", "billing_request", request.RequestID)
	return &request, nil
}

// PatchRequest updates mutable fields, or upserts the final invoice when the
// patch body carries one. History entries in the patch are appended to the
// request's change log.
func (s *billingService) PatchRequest(ctx context.Context, requestID string, req dto.PatchBillingRequestRequest, updaterUserID string) (*domain.BillingRequest, error) {
	request, err := s.repo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	if req.FinalInvoice != nil {
		if err := s.upsertFinalInvoice(ctx, request, *req.FinalInvoice, updaterUserID, now); err != nil {
			return nil, err
		}
		request.History = append(request.History, domain.HistoryEntry{
			At: now, Actor: updaterUserID, Detail: "factura final registrada",
		})
		if req.Status == nil && request.Status == domain.RequestPending {
			request.Status = domain.RequestValidated
		}
	}

	if req.DraftInvoiceURL != nil {
		request.DraftInvoiceURL = *req.DraftInvoiceURL
	}
	if req.Status != nil {
		request.Status = domain.RequestStatus(*req.Status)
	}
	if req.CreatedBy != nil {
		request.CreatedBy = *req.CreatedBy
	}
	request.History = append(request.History, req.ToDomainHistory()...)
	request.LastUpdatedAt = now
	request.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdateRequest(ctx, *request); err != nil {
		s.LogError(ctx, err, "Failed to update billing request", slog.String("request_id", requestID))
		return nil, err
	}

	s.RecordAudit(ctx, updaterUserID, "update", "billing_request", requestID)
	return request, nil
}

// upsertFinalInvoice validates the invoice against its parent request before
// writing. The total must equal the requested amount and the concept, when
// present, must match the request's concept ignoring case.
func (s *billingService) upsertFinalInvoice(ctx context.Context, request *domain.BillingRequest, in dto.FinalInvoiceInput, updaterUserID string, now time.Time) error {
	if !in.Total.Equal(request.Amount) {
		return fmt.Errorf("%w: invoice total %s does not equal requested amount %s",
			apperrors.ErrAmountMismatch, in.Total, request.Amount)
	}
	concept := request.Concept
	if in.Concept != nil {
		if !strings.EqualFold(*in.Concept, request.Concept) {
			return fmt.Errorf("%w: invoice concept %q does not match request concept %q",
				apperrors.ErrValidation, *in.Concept, request.Concept)
		}
		concept = *in.Concept
	}

	inv := domain.BillingInvoice{
		InvoiceID: uuid.NewString(),
		RequestID: request.RequestID,
		Number:    in.Number,
		Date:      in.Date,
		Total:     in.Total,
		Currency:  domain.Currency(in.Currency),
		Concept:   concept,
		IsValid:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     updaterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterUserID,
		},
	}
	if in.FileURL != nil {
		inv.FileURL = *in.FileURL
	}
	if in.Mime != nil {
		inv.Mime = *in.Mime
	}
	if in.Bytes != nil {
		inv.Bytes = *in.Bytes
	}

	if err := s.repo.UpsertInvoice(ctx, inv); err != nil {
		s.LogError(ctx, err, "Failed to upsert invoice", slog.String("request_id", request.RequestID))
		return err
	}

	s.LogInfo(ctx, "Final invoice recorded",
		slog.String("request_id", request.RequestID),
		slog.String("number", in.Number))
	return nil
}

// CreatePayment records a payment and marks the parent request PAID. The
// payment's project must match the request's project and the request must not
// already be settled.
func (s *billingService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	request, err := s.repo.FindRequestByID(ctx, req.RequestID)
	if err != nil {
		return nil, err
	}
	if request.ProjectID != req.ProjectID {
		return nil, fmt.Errorf("%w: payment project %s does not match request project %s",
			apperrors.ErrProjectMismatch, req.ProjectID, request.ProjectID)
	}
	if request.Status == domain.RequestPaid {
		return nil, fmt.Errorf("%w: request %s is already paid", apperrors.ErrDuplicate, req.RequestID)
	}
	if !req.Amount.Equal(request.Amount) {
		return nil, fmt.Errorf("%w: payment amount %s does not equal requested amount %s",
			apperrors.ErrAmountMismatch, req.Amount, request.Amount)
	}

	now := time.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}
	payment := domain.Payment{
		PaymentID: uuid.NewString(),
		RequestID: req.RequestID,
		ProjectID: req.ProjectID,
		Amount:    req.Amount,
		Currency:  domain.Currency(req.Currency),
		Reference: req.Reference,
		Date:      date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SavePaymentAndMarkPaid(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("request_id", req.RequestID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("request_id", payment.RequestID))
	s.RecordAudit(ctx, creatorUserID, "create", "payment", payment.PaymentID)
	return &payment, nil
}

// CreateReceipt stores an uploaded proof-of-payment file.
func (s *billingService) CreateReceipt(ctx context.Context, projectID, paymentID string, file dto.FileUpload, creatorUserID string) (*domain.Receipt, error) {
	receiptID := uuid.NewString()
	key := path.Join("receipts", projectID, receiptID+path.Ext(file.Filename))

	url, err := s.files.Save(ctx, key, file.Content, file.Mime)
	if err != nil {
		s.LogError(ctx, err, "Failed to store receipt file", slog.String("project_id", projectID))
		return nil, err
	}

	receipt := domain.Receipt{
		ReceiptID:  receiptID,
		ProjectID:  projectID,
		PaymentID:  paymentID,
		URL:        url,
		Mime:       file.Mime,
		Bytes:      file.Size,
		Filename:   file.Filename,
		UploadedAt: time.Now(),
	}

	if err := s.repo.SaveReceipt(ctx, receipt); err != nil {
		s.LogError(ctx, err, "Failed to save receipt", slog.String("project_id", projectID))
		// best effort cleanup of the orphaned file
		_ = s.files.Delete(ctx, key)
		return nil, err
	}

	s.RecordAudit(ctx, creatorUserID, "create", "receipt", receiptID)
	return &receipt, nil
}

// GetRequest retrieves a billing request by ID.
func (s *billingService) GetRequest(ctx context.Context, requestID string) (*domain.BillingRequest, error) {
	return s.repo.FindRequestByID(ctx, requestID)
}

// ListRequests retrieves a paginated list of billing requests.
func (s *billingService) ListRequests(ctx context.Context, limit int, offset int) ([]domain.BillingRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.FindRequests(ctx, limit, offset)
}

// GetInvoiceByRequest retrieves the final invoice of a request.
func (s *billingService) GetInvoiceByRequest(ctx context.Context, requestID string) (*domain.BillingInvoice, error) {
	return s.repo.FindInvoiceByRequestID(ctx, requestID)
}

// ListAllocations retrieves all allocations of a project.
func (s *billingService) ListAllocations(ctx context.Context, projectID string) ([]domain.ProgramAllocation, error) {
	return s.repo.FindAllocationsByProject(ctx, projectID)
}

// GetProgramLedger merges budgets, allocations, invoices, payments and
// receipts into one chronological view. Budgets contribute positive amounts,
// spending rows negative ones, receipts zero. Rows sharing a date keep the
// budget/allocation/invoice/payment/receipt insertion order.
func (s *billingService) GetProgramLedger(ctx context.Context, projectID string) ([]domain.LedgerRow, error) {
	presupuestos, err := s.presupuesto.FindPresupuestosByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	allocations, err := s.repo.FindAllocationsByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	invoices, err := s.repo.FindInvoicesByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.FindPaymentsByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	receipts, err := s.repo.FindReceiptsByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.LedgerRow, 0, len(presupuestos)+len(allocations)+len(invoices)+len(payments)+len(receipts))
	for _, p := range presupuestos {
		rows = append(rows, domain.LedgerRow{
			Type:   domain.LedgerBudget,
			Date:   time.Date(p.Anio, time.Month(p.Mes), 1, 0, 0, 0, 0, time.UTC),
			Amount: p.MontoAsignado,
			Meta:   p.Proyecto,
		})
	}
	for _, a := range allocations {
		rows = append(rows, domain.LedgerRow{
			Type:   domain.LedgerAllocation,
			Date:   a.Date,
			Amount: a.Amount.Neg(),
			Meta:   a.Concept,
		})
	}
	for _, inv := range invoices {
		rows = append(rows, domain.LedgerRow{
			Type:   domain.LedgerInvoice,
			Date:   inv.Date,
			Amount: inv.Total.Neg(),
			Meta:   inv.Number,
		})
	}
	for _, p := range payments {
		rows = append(rows, domain.LedgerRow{
			Type:   domain.LedgerPayment,
			Date:   p.Date,
			Amount: p.Amount.Neg(),
			Meta:   p.Reference,
		})
	}
	for _, r := range receipts {
		rows = append(rows, domain.LedgerRow{
			Type: domain.LedgerReceipt,
			Date: r.UploadedAt,
			Meta: r.Filename,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})
	return rows, nil
}
