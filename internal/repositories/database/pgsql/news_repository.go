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
)

type PgxNewsRepository struct {
	BaseRepository
}

// newPgxNewsRepository creates a new repository for news articles.
func newPgxNewsRepository(pool *pgxpool.Pool) portsrepo.NewsRepositoryFacade {
	return &PgxNewsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.NewsRepositoryFacade = (*PgxNewsRepository)(nil)

const newsColumns = `news_id, slug, title, body, author, publish, created_at, created_by, last_updated_at, last_updated_by`

func scanNews(row pgx.Row) (models.News, error) {
	var m models.News
	err := row.Scan(
		&m.NewsID,
		&m.Slug,
		&m.Title,
		&m.Body,
		&m.Author,
		&m.Publish,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveNews persists a new article.
func (r *PgxNewsRepository) SaveNews(ctx context.Context, n domain.News) error {
	m := mapping.ToModelNews(n)

	query := `
		INSERT INTO news (` + newsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.NewsID,
		m.Slug,
		m.Title,
		m.Body,
		m.Author,
		m.Publish,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("news %s", m.NewsID))
	}
	return nil
}

// UpdateNews updates the mutable fields of an article.
func (r *PgxNewsRepository) UpdateNews(ctx context.Context, n domain.News) error {
	m := mapping.ToModelNews(n)

	query := `
		UPDATE news
		SET slug = $2, title = $3, body = $4, author = $5, publish = $6, last_updated_at = $7, last_updated_by = $8
		WHERE news_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.NewsID,
		m.Slug,
		m.Title,
		m.Body,
		m.Author,
		m.Publish,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("news %s", m.NewsID))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindNewsByID retrieves an article by ID.
func (r *PgxNewsRepository) FindNewsByID(ctx context.Context, newsID string) (*domain.News, error) {
	query := `
		SELECT ` + newsColumns + `
		FROM news
		WHERE news_id = $1;
	`
	m, err := scanNews(r.Pool.QueryRow(ctx, query, newsID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find news %s: %w", newsID, err)
	}

	d := mapping.ToDomainNews(m)
	return &d, nil
}

// FindNewsBySlug retrieves an article by its unique slug.
func (r *PgxNewsRepository) FindNewsBySlug(ctx context.Context, slug string) (*domain.News, error) {
	query := `
		SELECT ` + newsColumns + `
		FROM news
		WHERE slug = $1;
	`
	m, err := scanNews(r.Pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find news by slug %s: %w", slug, err)
	}

	d := mapping.ToDomainNews(m)
	return &d, nil
}

// FindNews retrieves a paginated list of articles, newest first.
func (r *PgxNewsRepository) FindNews(ctx context.Context, limit int, offset int) ([]domain.News, error) {
	query := `
		SELECT ` + newsColumns + `
		FROM news
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query news: %w", err)
	}
	defer rows.Close()

	modelNews, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.News, error) {
		return scanNews(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan news: %w", err)
	}
	return mapping.ToDomainNewsSlice(modelNews), nil
}

// DeleteNews removes an article.
func (r *PgxNewsRepository) DeleteNews(ctx context.Context, newsID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM news WHERE news_id = $1;`, newsID)
	if err != nil {
		return fmt.Errorf("failed to delete news %s: %w", newsID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
