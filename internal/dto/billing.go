package dto

import (
	"time"

	"github.com/fundacion-admin/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAllocationRequest earmarks funds from a project's budget.
type CreateAllocationRequest struct {
	ProjectID string          `json:"projectID" binding:"required"`
	Concept   string          `json:"concept" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Date      *time.Time      `json:"date"`
}

// AllocationResponse is the API shape of a program allocation.
type AllocationResponse struct {
	AllocationID string          `json:"allocationID"`
	ProjectID    string          `json:"projectID"`
	Concept      string          `json:"concept"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
}

func ToAllocationResponse(a *domain.ProgramAllocation) AllocationResponse {
	return AllocationResponse{
		AllocationID: a.AllocationID,
		ProjectID:    a.ProjectID,
		Concept:      a.Concept,
		Amount:       a.Amount,
		Date:         a.Date,
	}
}

// CreateBillingRequestRequest opens a new funding request.
type CreateBillingRequestRequest struct {
	ProjectID string          `json:"projectID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Concept   string          `json:"concept" binding:"required"`
}

// FinalInvoiceInput is the invoice sub-object accepted by the patch endpoint.
type FinalInvoiceInput struct {
	Number   string          `json:"number" binding:"required"`
	Date     time.Time       `json:"date" binding:"required"`
	Total    decimal.Decimal `json:"total" binding:"required"`
	Currency string          `json:"currency" binding:"required,oneof=CRC USD"`
	Concept  *string         `json:"concept"`
	FileURL  *string         `json:"fileURL"`
	Mime     *string         `json:"mime"`
	Bytes    *int64          `json:"bytes"`
}

// PatchBillingRequestRequest updates mutable fields of a billing request.
// A non-nil FinalInvoice delegates to the invoice upsert instead.
type PatchBillingRequestRequest struct {
	DraftInvoiceURL *string            `json:"draftInvoiceURL"`
	Status          *string            `json:"status" binding:"omitempty,oneof=PENDING VALIDATED APPROVED REJECTED PAID"`
	History         []HistoryEntryDTO  `json:"history"`
	CreatedBy       *string            `json:"createdBy"`
	FinalInvoice    *FinalInvoiceInput `json:"finalInvoice"`
}

// HistoryEntryDTO is one change-log line on a billing request.
type HistoryEntryDTO struct {
	At     time.Time `json:"at"`
	Actor  string    `json:"actor,omitempty"`
	Detail string    `json:"detail"`
}

func toHistoryEntries(in []HistoryEntryDTO) []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, len(in))
	for i, h := range in {
		out[i] = domain.HistoryEntry{At: h.At, Actor: h.Actor, Detail: h.Detail}
	}
	return out
}

// ToDomainHistory converts the request change log to domain entries.
func (r PatchBillingRequestRequest) ToDomainHistory() []domain.HistoryEntry {
	if r.History == nil {
		return nil
	}
	return toHistoryEntries(r.History)
}

// BillingRequestResponse is the API shape of a billing request.
type BillingRequestResponse struct {
	RequestID       string                `json:"requestID"`
	ProjectID       string                `json:"projectID"`
	Amount          decimal.Decimal       `json:"amount"`
	Concept         string                `json:"concept"`
	Status          domain.RequestStatus  `json:"status"`
	DraftInvoiceURL string                `json:"draftInvoiceURL,omitempty"`
	History         []domain.HistoryEntry `json:"history"`
	CreatedAt       time.Time             `json:"createdAt"`
	CreatedBy       string                `json:"createdBy,omitempty"`
}

func ToBillingRequestResponse(r *domain.BillingRequest) BillingRequestResponse {
	return BillingRequestResponse{
		RequestID:       r.RequestID,
		ProjectID:       r.ProjectID,
		Amount:          r.Amount,
		Concept:         r.Concept,
		Status:          r.Status,
		DraftInvoiceURL: r.DraftInvoiceURL,
		History:         r.History,
		CreatedAt:       r.CreatedAt,
		CreatedBy:       r.CreatedBy,
	}
}

// InvoiceResponse is the API shape of a final invoice.
type InvoiceResponse struct {
	InvoiceID string          `json:"invoiceID"`
	RequestID string          `json:"requestID"`
	Number    string          `json:"number"`
	Date      time.Time       `json:"date"`
	Total     decimal.Decimal `json:"total"`
	Currency  domain.Currency `json:"currency"`
	Concept   string          `json:"concept,omitempty"`
	IsValid   bool            `json:"isValid"`
	FileURL   string          `json:"fileURL,omitempty"`
}

func ToInvoiceResponse(inv *domain.BillingInvoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID: inv.InvoiceID,
		RequestID: inv.RequestID,
		Number:    inv.Number,
		Date:      inv.Date,
		Total:     inv.Total,
		Currency:  inv.Currency,
		Concept:   inv.Concept,
		IsValid:   inv.IsValid,
		FileURL:   inv.FileURL,
	}
}

// CreatePaymentRequest settles a billing request.
type CreatePaymentRequest struct {
	RequestID string          `json:"requestID" binding:"required"`
	ProjectID string          `json:"projectID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Currency  string          `json:"currency" binding:"required,oneof=CRC USD"`
	Reference string          `json:"reference" binding:"required"`
	Date      *time.Time      `json:"date"`
}

// PaymentResponse is the API shape of a payment.
type PaymentResponse struct {
	PaymentID string          `json:"paymentID"`
	RequestID string          `json:"requestID"`
	ProjectID string          `json:"projectID"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  domain.Currency `json:"currency"`
	Reference string          `json:"reference"`
	Date      time.Time       `json:"date"`
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID: p.PaymentID,
		RequestID: p.RequestID,
		ProjectID: p.ProjectID,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Reference: p.Reference,
		Date:      p.Date,
	}
}

// ReceiptResponse is the API shape of an uploaded receipt.
type ReceiptResponse struct {
	ReceiptID  string    `json:"receiptID"`
	ProjectID  string    `json:"projectID"`
	PaymentID  string    `json:"paymentID,omitempty"`
	URL        string    `json:"url"`
	Mime       string    `json:"mime"`
	Bytes      int64     `json:"bytes"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func ToReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:  r.ReceiptID,
		ProjectID:  r.ProjectID,
		PaymentID:  r.PaymentID,
		URL:        r.URL,
		Mime:       r.Mime,
		Bytes:      r.Bytes,
		Filename:   r.Filename,
		UploadedAt: r.UploadedAt,
	}
}

// LedgerResponse wraps a project's chronological ledger.
type LedgerResponse struct {
	ProjectID string             `json:"projectID"`
	Rows      []domain.LedgerRow `json:"rows"`
}
