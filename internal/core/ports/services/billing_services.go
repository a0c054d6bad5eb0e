package services

import (
	"context"

	"github.com/fundacion-admin/backend/internal/core/domain"
	"github.com/fundacion-admin/backend/internal/dto"
)

// BillingReaderSvc defines read operations over the billing module.
type BillingReaderSvc interface {
	// GetRequest retrieves a billing request by ID.
	GetRequest(ctx context.Context, requestID string) (*domain.BillingRequest, error)

	// ListRequests retrieves a paginated list of billing requests.
	ListRequests(ctx context.Context, limit int, offset int) ([]domain.BillingRequest, error)

	// GetInvoiceByRequest retrieves the final invoice of a request.
	GetInvoiceByRequest(ctx context.Context, requestID string) (*domain.BillingInvoice, error)

	// ListAllocations retrieves all allocations of a project.
	ListAllocations(ctx context.Context, projectID string) ([]domain.ProgramAllocation, error)

	// GetProgramLedger merges budgets, allocations, invoices, payments and
	// receipts into one chronological view.
	GetProgramLedger(ctx context.Context, projectID string) ([]domain.LedgerRow, error)
}

// BillingWriterSvc defines the billing lifecycle operations.
type BillingWriterSvc interface {
	// CreateAllocation earmarks funds; rejects amounts above the project's
	// available funds.
	CreateAllocation(ctx context.Context, req dto.CreateAllocationRequest, creatorUserID string) (*domain.ProgramAllocation, error)

	// CreateRequest opens a billing request with status PENDING.
	CreateRequest(ctx context.Context, req dto.CreateBillingRequestRequest, creatorUserID string) (*domain.BillingRequest, error)

	// PatchRequest updates mutable fields, or upserts the final invoice when
	// the patch body carries one.
	PatchRequest(ctx context.Context, requestID string, req dto.PatchBillingRequestRequest, updaterUserID string) (*domain.BillingRequest, error)

	// CreatePayment records a payment and marks the parent request PAID.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)

	// CreateReceipt stores an uploaded proof-of-payment file.
	CreateReceipt(ctx context.Context, projectID, paymentID string, file dto.FileUpload, creatorUserID string) (*domain.Receipt, error)
}

// BillingSvcFacade combines all billing service interfaces.
type BillingSvcFacade interface {
	BillingReaderSvc
	BillingWriterSvc
}
