package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// BillingRequest row, history stored as a JSONB change log.
type BillingRequest struct {
	RequestID       string          `db:"request_id"`
	ProjectID       string          `db:"project_id"`
	Amount          decimal.Decimal `db:"amount"`
	Concept         string          `db:"concept"`
	Status          string          `db:"status"`
	DraftInvoiceURL sql.NullString  `db:"draft_invoice_url"`
	History         []byte          `db:"history"`
	AuditFields
}

// BillingInvoice row; request_id carries a unique constraint.
type BillingInvoice struct {
	InvoiceID string          `db:"invoice_id"`
	RequestID string          `db:"request_id"`
	Number    string          `db:"number"`
	Date      time.Time       `db:"date"`
	Total     decimal.Decimal `db:"total"`
	Currency  string          `db:"currency"`
	Concept   sql.NullString  `db:"concept"`
	IsValid   bool            `db:"is_valid"`
	FileURL   sql.NullString  `db:"file_url"`
	Mime      sql.NullString  `db:"mime"`
	Bytes     sql.NullInt64   `db:"bytes"`
	AuditFields
}

type ProgramAllocation struct {
	AllocationID string          `db:"allocation_id"`
	ProjectID    string          `db:"project_id"`
	Concept      string          `db:"concept"`
	Amount       decimal.Decimal `db:"amount"`
	Date         time.Time       `db:"date"`
	AuditFields
}

type Payment struct {
	PaymentID string          `db:"payment_id"`
	RequestID string          `db:"request_id"`
	ProjectID string          `db:"project_id"`
	Amount    decimal.Decimal `db:"amount"`
	Currency  string          `db:"currency"`
	Reference string          `db:"reference"`
	Date      time.Time       `db:"date"`
	AuditFields
}

type Receipt struct {
	ReceiptID  string         `db:"receipt_id"`
	ProjectID  string         `db:"project_id"`
	PaymentID  sql.NullString `db:"payment_id"`
	URL        string         `db:"url"`
	Mime       string         `db:"mime"`
	Bytes      int64          `db:"bytes"`
	Filename   string         `db:"filename"`
	UploadedAt time.Time      `db:"uploaded_at"`
}
