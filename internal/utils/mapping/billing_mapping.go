package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/fundacion-admin/backend/internal/core/domain"
	"github.com/fundacion-admin/backend/internal/models"
)

// ToModelBillingRequest converts a domain BillingRequest to a model row,
// marshalling the change log into JSONB.
func ToModelBillingRequest(d domain.BillingRequest) (models.BillingRequest, error) {
	history, err := json.Marshal(d.History)
	if err != nil {
		return models.BillingRequest{}, fmt.Errorf("failed to marshal request history: %w", err)
	}
	return models.BillingRequest{
		RequestID:       d.RequestID,
		ProjectID:       d.ProjectID,
		Amount:          d.Amount,
		Concept:         d.Concept,
		Status:          string(d.Status),
		DraftInvoiceURL: toNullString(d.DraftInvoiceURL),
		History:         history,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainBillingRequest converts a model row back to a domain BillingRequest.
func ToDomainBillingRequest(m models.BillingRequest) (domain.BillingRequest, error) {
	var history []domain.HistoryEntry
	if len(m.History) > 0 {
		if err := json.Unmarshal(m.History, &history); err != nil {
			return domain.BillingRequest{}, fmt.Errorf("failed to unmarshal request history: %w", err)
		}
	}
	return domain.BillingRequest{
		RequestID:       m.RequestID,
		ProjectID:       m.ProjectID,
		Amount:          m.Amount,
		Concept:         m.Concept,
		Status:          domain.RequestStatus(m.Status),
		DraftInvoiceURL: fromNullString(m.DraftInvoiceURL),
		History:         history,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToModelBillingInvoice converts a domain BillingInvoice to a model BillingInvoice
func ToModelBillingInvoice(d domain.BillingInvoice) models.BillingInvoice {
	return models.BillingInvoice{
		InvoiceID:   d.InvoiceID,
		RequestID:   d.RequestID,
		Number:      d.Number,
		Date:        d.Date,
		Total:       d.Total,
		Currency:    string(d.Currency),
		Concept:     toNullString(d.Concept),
		IsValid:     d.IsValid,
		FileURL:     toNullString(d.FileURL),
		Mime:        toNullString(d.Mime),
		Bytes:       sqlNullInt64(d.Bytes),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBillingInvoice converts a model BillingInvoice to a domain BillingInvoice
func ToDomainBillingInvoice(m models.BillingInvoice) domain.BillingInvoice {
	return domain.BillingInvoice{
		InvoiceID:   m.InvoiceID,
		RequestID:   m.RequestID,
		Number:      m.Number,
		Date:        m.Date,
		Total:       m.Total,
		Currency:    domain.Currency(m.Currency),
		Concept:     fromNullString(m.Concept),
		IsValid:     m.IsValid,
		FileURL:     fromNullString(m.FileURL),
		Mime:        fromNullString(m.Mime),
		Bytes:       m.Bytes.Int64,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBillingInvoiceSlice converts a slice of model invoices to domain invoices
func ToDomainBillingInvoiceSlice(ms []models.BillingInvoice) []domain.BillingInvoice {
	ds := make([]domain.BillingInvoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBillingInvoice(m)
	}
	return ds
}

// ToModelProgramAllocation converts a domain ProgramAllocation to a model ProgramAllocation
func ToModelProgramAllocation(d domain.ProgramAllocation) models.ProgramAllocation {
	return models.ProgramAllocation{
		AllocationID: d.AllocationID,
		ProjectID:    d.ProjectID,
		Concept:      d.Concept,
		Amount:       d.Amount,
		Date:         d.Date,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProgramAllocation converts a model ProgramAllocation to a domain ProgramAllocation
func ToDomainProgramAllocation(m models.ProgramAllocation) domain.ProgramAllocation {
	return domain.ProgramAllocation{
		AllocationID: m.AllocationID,
		ProjectID:    m.ProjectID,
		Concept:      m.Concept,
		Amount:       m.Amount,
		Date:         m.Date,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProgramAllocationSlice converts a slice of model allocations to domain allocations
func ToDomainProgramAllocationSlice(ms []models.ProgramAllocation) []domain.ProgramAllocation {
	ds := make([]domain.ProgramAllocation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProgramAllocation(m)
	}
	return ds
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		RequestID:   d.RequestID,
		ProjectID:   d.ProjectID,
		Amount:      d.Amount,
		Currency:    string(d.Currency),
		Reference:   d.Reference,
		Date:        d.Date,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		RequestID:   m.RequestID,
		ProjectID:   m.ProjectID,
		Amount:      m.Amount,
		Currency:    domain.Currency(m.Currency),
		Reference:   m.Reference,
		Date:        m.Date,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model payments to domain payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}

// ToModelReceipt converts a domain Receipt to a model Receipt
func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:  d.ReceiptID,
		ProjectID:  d.ProjectID,
		PaymentID:  toNullString(d.PaymentID),
		URL:        d.URL,
		Mime:       d.Mime,
		Bytes:      d.Bytes,
		Filename:   d.Filename,
		UploadedAt: d.UploadedAt,
	}
}

// ToDomainReceipt converts a model Receipt to a domain Receipt
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:  m.ReceiptID,
		ProjectID:  m.ProjectID,
		PaymentID:  fromNullString(m.PaymentID),
		URL:        m.URL,
		Mime:       m.Mime,
		Bytes:      m.Bytes,
		Filename:   m.Filename,
		UploadedAt: m.UploadedAt,
	}
}

// ToDomainReceiptSlice converts a slice of model receipts to domain receipts
func ToDomainReceiptSlice(ms []models.Receipt) []domain.Receipt {
	ds := make([]domain.Receipt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReceipt(m)
	}
	return ds
}
