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
)

type PgxSancionRepository struct {
	BaseRepository
}

// newPgxSancionRepository creates a new repository for sanction data.
func newPgxSancionRepository(pool *pgxpool.Pool) portsrepo.SancionRepositoryFacade {
	return &PgxSancionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SancionRepositoryFacade = (*PgxSancionRepository)(nil)

const sancionColumns = `sancion_id, voluntario_id, tipo, motivo, fecha_inicio, fecha_vencimiento, estado, revocada_por, fecha_revocacion, created_at, created_by, last_updated_at, last_updated_by`

func scanSancion(row pgx.Row) (models.Sancion, error) {
	var m models.Sancion
	err := row.Scan(
		&m.SancionID,
		&m.VoluntarioID,
		&m.Tipo,
		&m.Motivo,
		&m.FechaInicio,
		&m.FechaVencimiento,
		&m.Estado,
		&m.RevocadaPor,
		&m.FechaRevocacion,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveSancion persists a new sanction.
func (r *PgxSancionRepository) SaveSancion(ctx context.Context, s domain.Sancion) error {
	m := mapping.ToModelSancion(s)

	query := `
		INSERT INTO sanciones (` + sancionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SancionID,
		m.VoluntarioID,
		m.Tipo,
		m.Motivo,
		m.FechaInicio,
		m.FechaVencimiento,
		m.Estado,
		m.RevocadaPor,
		m.FechaRevocacion,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("sancion %s", m.SancionID))
	}
	return nil
}

// UpdateSancion updates the mutable fields of a sanction.
func (r *PgxSancionRepository) UpdateSancion(ctx context.Context, s domain.Sancion) error {
	m := mapping.ToModelSancion(s)

	query := `
		UPDATE sanciones
		SET tipo = $2, motivo = $3, fecha_inicio = $4, fecha_vencimiento = $5, estado = $6,
			revocada_por = $7, fecha_revocacion = $8, last_updated_at = $9, last_updated_by = $10
		WHERE sancion_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.SancionID,
		m.Tipo,
		m.Motivo,
		m.FechaInicio,
		m.FechaVencimiento,
		m.Estado,
		m.RevocadaPor,
		m.FechaRevocacion,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update sancion %s: %w", m.SancionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindSancionByID retrieves a sanction by its ID.
func (r *PgxSancionRepository) FindSancionByID(ctx context.Context, sancionID string) (*domain.Sancion, error) {
	query := `
		SELECT ` + sancionColumns + `
		FROM sanciones
		WHERE sancion_id = $1;
	`
	m, err := scanSancion(r.Pool.QueryRow(ctx, query, sancionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sancion %s: %w", sancionID, err)
	}

	d := mapping.ToDomainSancion(m)
	return &d, nil
}

// FindSanciones retrieves sanctions filtered by volunteer and state. Empty
// filter values match everything.
func (r *PgxSancionRepository) FindSanciones(ctx context.Context, voluntarioID string, estado domain.EstadoSancion) ([]domain.Sancion, error) {
	query := `
		SELECT ` + sancionColumns + `
		FROM sanciones
		WHERE ($1 = '' OR voluntario_id = $1)
		  AND ($2 = '' OR estado = $2)
		ORDER BY fecha_inicio DESC;
	`
	rows, err := r.Pool.Query(ctx, query, voluntarioID, string(estado))
	if err != nil {
		return nil, fmt.Errorf("failed to query sanciones: %w", err)
	}
	defer rows.Close()

	modelSanciones, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Sancion, error) {
		return scanSancion(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sanciones: %w", err)
	}
	return mapping.ToDomainSancionSlice(modelSanciones), nil
}

// ExpireDueSanciones bulk-marks as EXPIRADA every sanction that is still
// ACTIVA, not revoked, and whose vencimiento date lies before now.
func (r *PgxSancionRepository) ExpireDueSanciones(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE sanciones
		SET estado = $1, last_updated_at = $2
		WHERE estado = $3
		  AND fecha_revocacion IS NULL
		  AND fecha_vencimiento IS NOT NULL
		  AND fecha_vencimiento < $2;
	`
	tag, err := r.Pool.Exec(ctx, query, string(domain.SancionExpirada), now, string(domain.SancionActiva))
	if err != nil {
		return 0, fmt.Errorf("failed to expire due sanciones: %w", err)
	}
	return tag.RowsAffected(), nil
}
