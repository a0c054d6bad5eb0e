package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundacion-admin/backend/internal/apperrors"
	"github.com/fundacion-admin/backend/internal/core/domain"
	portsrepo "github.com/fundacion-admin/backend/internal/core/ports/repositories"
	"github.com/fundacion-admin/backend/internal/models"
	"github.com/fundacion-admin/backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxBillingRepository struct {
	BaseRepository
}

// newPgxBillingRepository creates a new repository for billing data.
func newPgxBillingRepository(pool *pgxpool.Pool) portsrepo.BillingRepositoryFacade {
	return &PgxBillingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BillingRepositoryFacade = (*PgxBillingRepository)(nil)

const billingRequestColumns = `request_id, project_id, amount, concept, status, draft_invoice_url, history, created_at, created_by, last_updated_at, last_updated_by`

func scanBillingRequest(row pgx.Row) (models.BillingRequest, error) {
	var m models.BillingRequest
	err := row.Scan(
		&m.RequestID,
		&m.ProjectID,
		&m.Amount,
		&m.Concept,
		&m.Status,
		&m.DraftInvoiceURL,
		&m.History,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveRequest persists a new billing request.
func (r *PgxBillingRepository) SaveRequest(ctx context.Context, req domain.BillingRequest) error {
	m, err := mapping.ToModelBillingRequest(req)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO billing_requests (` + billingRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.RequestID,
		m.ProjectID,
		m.Amount,
		m.Concept,
		m.Status,
		m.DraftInvoiceURL,
		m.History,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("billing request %s", m.RequestID))
	}
	return nil
}

// UpdateRequest updates the mutable fields of a billing request.
func (r *PgxBillingRepository) UpdateRequest(ctx context.Context, req domain.BillingRequest) error {
	m, err := mapping.ToModelBillingRequest(req)
	if err != nil {
		return err
	}

	query := `
		UPDATE billing_requests
		SET amount = $2, concept = $3, status = $4, draft_invoice_url = $5, history = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE request_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.RequestID,
		m.Amount,
		m.Concept,
		m.Status,
		m.DraftInvoiceURL,
		m.History,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update billing request %s: %w", m.RequestID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindRequestByID retrieves a billing request with its history log.
func (r *PgxBillingRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.BillingRequest, error) {
	query := `
		SELECT ` + billingRequestColumns + `
		FROM billing_requests
		WHERE request_id = $1;
	`
	m, err := scanBillingRequest(r.Pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find billing request %s: %w", requestID, err)
	}

	d, err := mapping.ToDomainBillingRequest(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FindRequests retrieves a paginated list of billing requests, newest first.
func (r *PgxBillingRepository) FindRequests(ctx context.Context, limit int, offset int) ([]domain.BillingRequest, error) {
	query := `
		SELECT ` + billingRequestColumns + `
		FROM billing_requests
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query billing requests: %w", err)
	}
	defer rows.Close()

	modelReqs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.BillingRequest, error) {
		return scanBillingRequest(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan billing requests: %w", err)
	}

	domainReqs := make([]domain.BillingRequest, len(modelReqs))
	for i, m := range modelReqs {
		domainReqs[i], err = mapping.ToDomainBillingRequest(m)
		if err != nil {
			return nil, err
		}
	}
	return domainReqs, nil
}

const billingInvoiceColumns = `invoice_id, request_id, number, date, total, currency, concept, is_valid, file_url, mime, bytes, created_at, created_by, last_updated_at, last_updated_by`

func scanBillingInvoice(row pgx.Row) (models.BillingInvoice, error) {
	var m models.BillingInvoice
	err := row.Scan(
		&m.InvoiceID,
		&m.RequestID,
		&m.Number,
		&m.Date,
		&m.Total,
		&m.Currency,
		&m.Concept,
		&m.IsValid,
		&m.FileURL,
		&m.Mime,
		&m.Bytes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// UpsertInvoice inserts or replaces the invoice keyed by its requestID.
func (r *PgxBillingRepository) UpsertInvoice(ctx context.Context, inv domain.BillingInvoice) error {
	m := mapping.ToModelBillingInvoice(inv)

	query := `
		INSERT INTO billing_invoices (` + billingInvoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (request_id) DO UPDATE SET
			number = EXCLUDED.number,
			date = EXCLUDED.date,
			total = EXCLUDED.total,
			currency = EXCLUDED.currency,
			concept = EXCLUDED.concept,
			is_valid = EXCLUDED.is_valid,
			file_url = EXCLUDED.file_url,
			mime = EXCLUDED.mime,
			bytes = EXCLUDED.bytes,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InvoiceID,
		m.RequestID,
		m.Number,
		m.Date,
		m.Total,
		m.Currency,
		m.Concept,
		m.IsValid,
		m.FileURL,
		m.Mime,
		m.Bytes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert invoice for request %s: %w", m.RequestID, err)
	}
	return nil
}

// FindInvoiceByRequestID retrieves the invoice attached to a request.
func (r *PgxBillingRepository) FindInvoiceByRequestID(ctx context.Context, requestID string) (*domain.BillingInvoice, error) {
	query := `
		SELECT ` + billingInvoiceColumns + `
		FROM billing_invoices
		WHERE request_id = $1;
	`
	m, err := scanBillingInvoice(r.Pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice for request %s: %w", requestID, err)
	}

	d := mapping.ToDomainBillingInvoice(m)
	return &d, nil
}

// FindInvoicesByProject retrieves all invoices for requests of a project.
func (r *PgxBillingRepository) FindInvoicesByProject(ctx context.Context, projectID string) ([]domain.BillingInvoice, error) {
	query := `
		SELECT i.invoice_id, i.request_id, i.number, i.date, i.total, i.currency, i.concept, i.is_valid,
			i.file_url, i.mime, i.bytes, i.created_at, i.created_by, i.last_updated_at, i.last_updated_by
		FROM billing_invoices i
		JOIN billing_requests r ON r.request_id = i.request_id
		WHERE r.project_id = $1
		ORDER BY i.date;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices for project %s: %w", projectID, err)
	}
	defer rows.Close()

	modelInvoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.BillingInvoice, error) {
		return scanBillingInvoice(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoices: %w", err)
	}
	return mapping.ToDomainBillingInvoiceSlice(modelInvoices), nil
}

// SaveAllocation persists a new allocation.
func (r *PgxBillingRepository) SaveAllocation(ctx context.Context, alloc domain.ProgramAllocation) error {
	m := mapping.ToModelProgramAllocation(alloc)

	query := `
		INSERT INTO program_allocations (allocation_id, project_id, concept, amount, date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AllocationID,
		m.ProjectID,
		m.Concept,
		m.Amount,
		m.Date,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("allocation %s", m.AllocationID))
	}
	return nil
}

// FindAllocationsByProject retrieves all allocations of a project.
func (r *PgxBillingRepository) FindAllocationsByProject(ctx context.Context, projectID string) ([]domain.ProgramAllocation, error) {
	query := `
		SELECT allocation_id, project_id, concept, amount, date, created_at, created_by, last_updated_at, last_updated_by
		FROM program_allocations
		WHERE project_id = $1
		ORDER BY date;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query allocations for project %s: %w", projectID, err)
	}
	defer rows.Close()

	modelAllocs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ProgramAllocation, error) {
		var m models.ProgramAllocation
		err := row.Scan(
			&m.AllocationID,
			&m.ProjectID,
			&m.Concept,
			&m.Amount,
			&m.Date,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan allocations: %w", err)
	}
	return mapping.ToDomainProgramAllocationSlice(modelAllocs), nil
}

// SumAllocationsByProject totals the allocated amounts of a project.
func (r *PgxBillingRepository) SumAllocationsByProject(ctx context.Context, projectID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM program_allocations
		WHERE project_id = $1;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, projectID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum allocations for project %s: %w", projectID, err)
	}
	return total, nil
}

// SavePaymentAndMarkPaid inserts the payment and flips the parent request to
// PAID inside one database transaction, so a payment row never exists against
// a request that still reads as unpaid.
func (r *PgxBillingRepository) SavePaymentAndMarkPaid(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insertQuery := `
		INSERT INTO payments (payment_id, request_id, project_id, amount, currency, reference, date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.PaymentID,
		m.RequestID,
		m.ProjectID,
		m.Amount,
		m.Currency,
		m.Reference,
		m.Date,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("payment %s", m.PaymentID))
	}

	updateQuery := `
		UPDATE billing_requests
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE request_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery, m.RequestID, string(domain.RequestPaid), m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark request %s as paid: %w", m.RequestID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit payment transaction: %w", err)
	}
	return nil
}

// FindPaymentsByProject retrieves all payments of a project.
func (r *PgxBillingRepository) FindPaymentsByProject(ctx context.Context, projectID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, request_id, project_id, amount, currency, reference, date, created_at, created_by, last_updated_at, last_updated_by
		FROM payments
		WHERE project_id = $1
		ORDER BY date;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for project %s: %w", projectID, err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Payment, error) {
		var m models.Payment
		err := row.Scan(
			&m.PaymentID,
			&m.RequestID,
			&m.ProjectID,
			&m.Amount,
			&m.Currency,
			&m.Reference,
			&m.Date,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}
	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

// SaveReceipt persists receipt file metadata.
func (r *PgxBillingRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	m := mapping.ToModelReceipt(receipt)

	query := `
		INSERT INTO receipts (receipt_id, project_id, payment_id, url, mime, bytes, filename, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReceiptID,
		m.ProjectID,
		m.PaymentID,
		m.URL,
		m.Mime,
		m.Bytes,
		m.Filename,
		m.UploadedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("receipt %s", m.ReceiptID))
	}
	return nil
}

// FindReceiptsByProject retrieves all receipts of a project.
func (r *PgxBillingRepository) FindReceiptsByProject(ctx context.Context, projectID string) ([]domain.Receipt, error) {
	query := `
		SELECT receipt_id, project_id, payment_id, url, mime, bytes, filename, uploaded_at
		FROM receipts
		WHERE project_id = $1
		ORDER BY uploaded_at;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts for project %s: %w", projectID, err)
	}
	defer rows.Close()

	modelReceipts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Receipt, error) {
		var m models.Receipt
		err := row.Scan(
			&m.ReceiptID,
			&m.ProjectID,
			&m.PaymentID,
			&m.URL,
			&m.Mime,
			&m.Bytes,
			&m.Filename,
			&m.UploadedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan receipts: %w", err)
	}
	return mapping.ToDomainReceiptSlice(modelReceipts), nil
}
