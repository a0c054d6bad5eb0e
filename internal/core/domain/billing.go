package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus indicates where a billing request sits in its lifecycle.
type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestValidated RequestStatus = "VALIDATED"
	RequestApproved  RequestStatus = "APPROVED"
	RequestRejected  RequestStatus = "REJECTED"
	RequestPaid      RequestStatus = "PAID"
)

// Currency codes accepted on invoices and payments.
type Currency string

const (
	CurrencyCRC Currency = "CRC"
	CurrencyUSD Currency = "USD"
)

// HistoryEntry is one line in a billing request's change log.
type HistoryEntry struct {
	At     time.Time `json:"at"`
	Actor  string    `json:"actor,omitempty"`
	Detail string    `json:"detail"`
}

// BillingRequest is a collaborator's petition for funds against a project.
// It carries an ordered change log and transitions to PAID when a matching
// payment is recorded.
type BillingRequest struct {
	RequestID       string          `json:"requestID"`
	ProjectID       string          `json:"projectID"`
	Amount          decimal.Decimal `json:"amount"`
	Concept         string          `json:"concept"`
	Status          RequestStatus   `json:"status"`
	DraftInvoiceURL string          `json:"draftInvoiceURL,omitempty"`
	History         []HistoryEntry  `json:"history"`
	AuditFields
}

// BillingInvoice is the final invoice attached to a billing request.
// At most one exists per request (unique requestID).
type BillingInvoice struct {
	InvoiceID string          `json:"invoiceID"`
	RequestID string          `json:"requestID"`
	Number    string          `json:"number"`
	Date      time.Time       `json:"date"`
	Total     decimal.Decimal `json:"total"`
	Currency  Currency        `json:"currency"`
	Concept   string          `json:"concept,omitempty"`
	IsValid   bool            `json:"isValid"`
	FileURL   string          `json:"fileURL,omitempty"`
	Mime      string          `json:"mime,omitempty"`
	Bytes     int64           `json:"bytes,omitempty"`
	AuditFields
}

// ProgramAllocation earmarks funds from a project's budget pool.
type ProgramAllocation struct {
	AllocationID string          `json:"allocationID"`
	ProjectID    string          `json:"projectID"`
	Concept      string          `json:"concept"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	AuditFields
}

// Payment settles a billing request.
type Payment struct {
	PaymentID string          `json:"paymentID"`
	RequestID string          `json:"requestID"`
	ProjectID string          `json:"projectID"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  Currency        `json:"currency"`
	Reference string          `json:"reference"`
	Date      time.Time       `json:"date"`
	AuditFields
}

// Receipt is an uploaded proof-of-payment file. Purely informational.
type Receipt struct {
	ReceiptID  string    `json:"receiptID"`
	ProjectID  string    `json:"projectID"`
	PaymentID  string    `json:"paymentID,omitempty"`
	URL        string    `json:"url"`
	Mime       string    `json:"mime"`
	Bytes      int64     `json:"bytes"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// LedgerRowType identifies which table a ledger row came from.
type LedgerRowType string

const (
	LedgerBudget     LedgerRowType = "BUDGET"
	LedgerAllocation LedgerRowType = "ALLOCATION"
	LedgerInvoice    LedgerRowType = "INVOICE"
	LedgerPayment    LedgerRowType = "PAYMENT"
	LedgerReceipt    LedgerRowType = "RECEIPT"
)

// LedgerRow is one entry in a project's unified chronological ledger.
// Budgets contribute positive amounts, allocations/invoices/payments
// negative ones, receipts zero.
type LedgerRow struct {
	Type   LedgerRowType   `json:"type"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Meta   string          `json:"meta,omitempty"`
}
