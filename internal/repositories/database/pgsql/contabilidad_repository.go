package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fundacion-admin/backend/internal/apperrors"
	"github.com/fundacion-admin/backend/internal/core/domain"
	portsrepo "github.com/fundacion-admin/backend/internal/core/ports/repositories"
	"github.com/fundacion-admin/backend/internal/models"
	"github.com/fundacion-admin/backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxContabilidadRepository struct {
	BaseRepository
}

// newPgxContabilidadRepository creates a new repository for accounting data.
func newPgxContabilidadRepository(pool *pgxpool.Pool) portsrepo.ContabilidadRepositoryFacade {
	return &PgxContabilidadRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ContabilidadRepositoryFacade = (*PgxContabilidadRepository)(nil)

const presupuestoColumns = `presupuesto_id, project_id, proyecto, mes, anio, monto_asignado, monto_ejecutado, created_at, created_by, last_updated_at, last_updated_by`

func scanPresupuesto(row pgx.Row) (models.Presupuesto, error) {
	var m models.Presupuesto
	err := row.Scan(
		&m.PresupuestoID,
		&m.ProjectID,
		&m.Proyecto,
		&m.Mes,
		&m.Anio,
		&m.MontoAsignado,
		&m.MontoEjecutado,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePresupuesto persists a new monthly budget.
func (r *PgxContabilidadRepository) SavePresupuesto(ctx context.Context, p domain.Presupuesto) error {
	m := mapping.ToModelPresupuesto(p)

	query := `
		INSERT INTO presupuestos (` + presupuestoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PresupuestoID,
		m.ProjectID,
		m.Proyecto,
		m.Mes,
		m.Anio,
		m.MontoAsignado,
		m.MontoEjecutado,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("presupuesto %s", m.PresupuestoID))
	}
	return nil
}

// UpdatePresupuesto updates an existing budget.
func (r *PgxContabilidadRepository) UpdatePresupuesto(ctx context.Context, p domain.Presupuesto) error {
	m := mapping.ToModelPresupuesto(p)

	query := `
		UPDATE presupuestos
		SET proyecto = $2, mes = $3, anio = $4, monto_asignado = $5, monto_ejecutado = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE presupuesto_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.PresupuestoID,
		m.Proyecto,
		m.Mes,
		m.Anio,
		m.MontoAsignado,
		m.MontoEjecutado,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update presupuesto %s: %w", m.PresupuestoID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindPresupuestoByID retrieves a budget by its ID.
func (r *PgxContabilidadRepository) FindPresupuestoByID(ctx context.Context, presupuestoID string) (*domain.Presupuesto, error) {
	query := `
		SELECT ` + presupuestoColumns + `
		FROM presupuestos
		WHERE presupuesto_id = $1;
	`
	m, err := scanPresupuesto(r.Pool.QueryRow(ctx, query, presupuestoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find presupuesto %s: %w", presupuestoID, err)
	}

	d := mapping.ToDomainPresupuesto(m)
	return &d, nil
}

// FindPresupuestosByProject retrieves all budgets of a project, oldest first.
func (r *PgxContabilidadRepository) FindPresupuestosByProject(ctx context.Context, projectID string) ([]domain.Presupuesto, error) {
	query := `
		SELECT ` + presupuestoColumns + `
		FROM presupuestos
		WHERE project_id = $1
		ORDER BY anio, mes;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query presupuestos for project %s: %w", projectID, err)
	}
	defer rows.Close()

	modelPresupuestos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Presupuesto, error) {
		return scanPresupuesto(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan presupuestos: %w", err)
	}
	return mapping.ToDomainPresupuestoSlice(modelPresupuestos), nil
}

// SumMontoAsignadoByProject totals the budget assigned to a project.
func (r *PgxContabilidadRepository) SumMontoAsignadoByProject(ctx context.Context, projectID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(monto_asignado), 0)
		FROM presupuestos
		WHERE project_id = $1;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, projectID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum presupuestos for project %s: %w", projectID, err)
	}
	return total, nil
}

// DeletePresupuesto removes a budget row.
func (r *PgxContabilidadRepository) DeletePresupuesto(ctx context.Context, presupuestoID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM presupuestos WHERE presupuesto_id = $1;`, presupuestoID)
	if err != nil {
		return fmt.Errorf("failed to delete presupuesto %s: %w", presupuestoID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const transaccionColumns = `transaccion_id, project_id, tipo, categoria, descripcion, monto, fecha, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaccion(row pgx.Row) (models.Transaccion, error) {
	var m models.Transaccion
	err := row.Scan(
		&m.TransaccionID,
		&m.ProjectID,
		&m.Tipo,
		&m.Categoria,
		&m.Descripcion,
		&m.Monto,
		&m.Fecha,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransaccion persists a new accounting movement.
func (r *PgxContabilidadRepository) SaveTransaccion(ctx context.Context, t domain.Transaccion) error {
	m := mapping.ToModelTransaccion(t)

	query := `
		INSERT INTO transacciones (` + transaccionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransaccionID,
		m.ProjectID,
		m.Tipo,
		m.Categoria,
		m.Descripcion,
		m.Monto,
		m.Fecha,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("transaccion %s", m.TransaccionID))
	}
	return nil
}

// FindTransaccionByID retrieves a movement by its ID.
func (r *PgxContabilidadRepository) FindTransaccionByID(ctx context.Context, transaccionID string) (*domain.Transaccion, error) {
	query := `
		SELECT ` + transaccionColumns + `
		FROM transacciones
		WHERE transaccion_id = $1;
	`
	m, err := scanTransaccion(r.Pool.QueryRow(ctx, query, transaccionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaccion %s: %w", transaccionID, err)
	}

	d := mapping.ToDomainTransaccion(m)
	return &d, nil
}

// FindTransaccionesByProject retrieves all movements of a project, oldest first.
func (r *PgxContabilidadRepository) FindTransaccionesByProject(ctx context.Context, projectID string) ([]domain.Transaccion, error) {
	query := `
		SELECT ` + transaccionColumns + `
		FROM transacciones
		WHERE project_id = $1
		ORDER BY fecha;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transacciones for project %s: %w", projectID, err)
	}
	defer rows.Close()

	modelTransacciones, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaccion, error) {
		return scanTransaccion(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transacciones: %w", err)
	}
	return mapping.ToDomainTransaccionSlice(modelTransacciones), nil
}

// FindTransaccionesInRange retrieves all movements dated inside [from, to].
func (r *PgxContabilidadRepository) FindTransaccionesInRange(ctx context.Context, from, to time.Time) ([]domain.Transaccion, error) {
	query := `
		SELECT ` + transaccionColumns + `
		FROM transacciones
		WHERE fecha >= $1 AND fecha <= $2
		ORDER BY fecha;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query transacciones in range: %w", err)
	}
	defer rows.Close()

	modelTransacciones, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaccion, error) {
		return scanTransaccion(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transacciones: %w", err)
	}
	return mapping.ToDomainTransaccionSlice(modelTransacciones), nil
}

// DeleteTransaccion removes a movement row.
func (r *PgxContabilidadRepository) DeleteTransaccion(ctx context.Context, transaccionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transacciones WHERE transaccion_id = $1;`, transaccionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaccion %s: %w", transaccionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveDocumento persists accounting document metadata.
func (r *PgxContabilidadRepository) SaveDocumento(ctx context.Context, d domain.Documento) error {
	m := mapping.ToModelDocumento(d)

	query := `
		INSERT INTO documentos (documento_id, project_id, url, mime, bytes, filename, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DocumentoID,
		m.ProjectID,
		m.URL,
		m.Mime,
		m.Bytes,
		m.Filename,
		m.UploadedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("documento %s", m.DocumentoID))
	}
	return nil
}

// FindDocumentosByProject retrieves all documents of a project.
func (r *PgxContabilidadRepository) FindDocumentosByProject(ctx context.Context, projectID string) ([]domain.Documento, error) {
	query := `
		SELECT documento_id, project_id, url, mime, bytes, filename, uploaded_at
		FROM documentos
		WHERE project_id = $1
		ORDER BY uploaded_at;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query documentos for project %s: %w", projectID, err)
	}
	defer rows.Close()

	modelDocumentos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Documento, error) {
		var m models.Documento
		err := row.Scan(
			&m.DocumentoID,
			&m.ProjectID,
			&m.URL,
			&m.Mime,
			&m.Bytes,
			&m.Filename,
			&m.UploadedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan documentos: %w", err)
	}
	return mapping.ToDomainDocumentoSlice(modelDocumentos), nil
}
