package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fundacion-admin/backend/internal/apperrors"
	"github.com/fundacion-admin/backend/internal/core/domain"
	portsrepo "github.com/fundacion-admin/backend/internal/core/ports/repositories"
	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/google/uuid"
)

type newsService struct {
	BaseService
	repo portsrepo.NewsRepositoryFacade
}

// NewNewsService creates the news article service.
func NewNewsService(repo portsrepo.NewsRepositoryFacade, audit portsrepo.AuditRecorder) portssvc.NewsSvcFacade {
	return &newsService{
		BaseService: BaseService{Audit: audit},
		repo:        repo,
	}
}

// Ensure implementation matches interface
var _ portssvc.NewsSvcFacade = (*newsService)(nil)

// CreateNews publishes an article. Slug must be unused.
func (s *newsService) CreateNews(ctx context.Context, req dto.CreateNewsRequest, creatorUserID string) (*domain.News, error) {
	if _, err := s.repo.FindNewsBySlug(ctx, req.Slug); err == nil {
		return nil, fmt.Errorf("%w: slug %q already in use", apperrors.ErrDuplicate, req.Slug)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	n := domain.News{
		NewsID:  uuid.NewString(),
		Slug:    req.Slug,
		Title:   req.Title,
		Body:    req.Body,
		Author:  req.Author,
		Publish: req.Publish,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SaveNews(ctx, n); err != nil {
		s.LogError(ctx, err, "Failed to save news", slog.String("slug", req.Slug))
		return nil, err
	}

	s.LogInfo(ctx, "News created", slog.String("news_id", n.NewsID), slog.String("slug", n.Slug))
	s.RecordAudit(ctx, creatorUserID, "create", "news", n.NewsID)
	return &n, nil
}

// UpdateNews changes an article's mutable fields. The slug is immutable.
func (s *newsService) UpdateNews(ctx context.Context, newsID string, req dto.UpdateNewsRequest, updaterUserID string) (*domain.News, error) {
	n, err := s.repo.FindNewsByID(ctx, newsID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		n.Title = *req.Title
	}
	if req.Body != nil {
		n.Body = *req.Body
	}
	if req.Author != nil {
		n.Author = *req.Author
	}
	if req.Publish != nil {
		n.Publish = *req.Publish
	}
	n.LastUpdatedAt = time.Now()
	n.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdateNews(ctx, *n); err != nil {
		s.LogError(ctx, err, "Failed to update news", slog.String("news_id", newsID))
		return nil, err
	}

	s.RecordAudit(ctx, updaterUserID, "update", "news", newsID)
	return n, nil
}

// GetNewsBySlug retrieves an article by its unique slug.
func (s *newsService) GetNewsBySlug(ctx context.Context, slug string) (*domain.News, error) {
	return s.repo.FindNewsBySlug(ctx, slug)
}

// ListNews retrieves a paginated list of articles.
func (s *newsService) ListNews(ctx context.Context, limit int, offset int) ([]domain.News, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.FindNews(ctx, limit, offset)
}

// DeleteNews removes an article.
func (s *newsService) DeleteNews(ctx context.Context, newsID string) error {
	if err := s.repo.DeleteNews(ctx, newsID); err != nil {
		s.LogError(ctx, err, "Failed to delete news", slog.String("news_id", newsID))
		return err
	}
	return nil
}
