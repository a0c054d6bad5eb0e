package repositories

import (
	"context"

	"github.com/fundacion-admin/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillingRequestReader defines read operations for billing requests.
type BillingRequestReader interface {
	// FindRequestByID retrieves a billing request with its history log.
	FindRequestByID(ctx context.Context, requestID string) (*domain.BillingRequest, error)

	// FindRequests retrieves a paginated list of billing requests, newest first.
	FindRequests(ctx context.Context, limit int, offset int) ([]domain.BillingRequest, error)
}

// BillingRequestWriter defines write operations for billing requests.
type BillingRequestWriter interface {
	// SaveRequest persists a new billing request.
	SaveRequest(ctx context.Context, req domain.BillingRequest) error

	// UpdateRequest updates the mutable fields of a billing request.
	UpdateRequest(ctx context.Context, req domain.BillingRequest) error
}

// InvoiceRepository manages final invoices, one per billing request.
type InvoiceRepository interface {
	// UpsertInvoice inserts or replaces the invoice keyed by its requestID.
	UpsertInvoice(ctx context.Context, inv domain.BillingInvoice) error

	// FindInvoiceByRequestID retrieves the invoice attached to a request.
	FindInvoiceByRequestID(ctx context.Context, requestID string) (*domain.BillingInvoice, error)

	// FindInvoicesByProject retrieves all invoices for requests of a project.
	FindInvoicesByProject(ctx context.Context, projectID string) ([]domain.BillingInvoice, error)
}

// AllocationRepository manages program allocations.
type AllocationRepository interface {
	// SaveAllocation persists a new allocation.
	SaveAllocation(ctx context.Context, alloc domain.ProgramAllocation) error

	// FindAllocationsByProject retrieves all allocations of a project.
	FindAllocationsByProject(ctx context.Context, projectID string) ([]domain.ProgramAllocation, error)

	// SumAllocationsByProject totals the allocated amounts of a project.
	SumAllocationsByProject(ctx context.Context, projectID string) (decimal.Decimal, error)
}

// PaymentRepository manages payments.
type PaymentRepository interface {
	// SavePaymentAndMarkPaid inserts the payment and flips the parent
	// request to PAID inside one database transaction.
	SavePaymentAndMarkPaid(ctx context.Context, payment domain.Payment) error

	// FindPaymentsByProject retrieves all payments of a project.
	FindPaymentsByProject(ctx context.Context, projectID string) ([]domain.Payment, error)
}

// ReceiptRepository manages uploaded receipts.
type ReceiptRepository interface {
	// SaveReceipt persists receipt file metadata.
	SaveReceipt(ctx context.Context, receipt domain.Receipt) error

	// FindReceiptsByProject retrieves all receipts of a project.
	FindReceiptsByProject(ctx context.Context, projectID string) ([]domain.Receipt, error)
}

// BillingRepositoryFacade combines all billing-related repository interfaces.
type BillingRepositoryFacade interface {
	BillingRequestReader
	BillingRequestWriter
	InvoiceRepository
	AllocationRepository
	PaymentRepository
	ReceiptRepository
}
