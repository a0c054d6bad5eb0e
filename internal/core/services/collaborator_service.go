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
	"github.com/fundacion-admin/backend/internal/platform/mailer"
	"github.com/fundacion-admin/backend/internal/utils"
	"github.com/google/uuid"
)

// AsyncMailer dispatches mail without blocking the caller.
type AsyncMailer interface {
	SendAsync(msg mailer.Message)
}

type collaboratorService struct {
	BaseService
	repo portsrepo.CollaboratorRepositoryFacade
	mail AsyncMailer
}

// CollaboratorServiceOption configures the collaborator service.
type CollaboratorServiceOption func(*collaboratorService)

// WithWelcomeMailer enables the welcome email on registration.
func WithWelcomeMailer(mail AsyncMailer) CollaboratorServiceOption {
	return func(s *collaboratorService) {
		s.mail = mail
	}
}

// WithCollaboratorAuditRecorder attaches an audit trail to collaborator writes.
func WithCollaboratorAuditRecorder(audit portsrepo.AuditRecorder) CollaboratorServiceOption {
	return func(s *collaboratorService) {
		s.Audit = audit
	}
}

// NewCollaboratorService creates the collaborator account service.
func NewCollaboratorService(repo portsrepo.CollaboratorRepositoryFacade, opts ...CollaboratorServiceOption) portssvc.CollaboratorSvcFacade {
	s := &collaboratorService{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure implementation matches interface
var _ portssvc.CollaboratorSvcFacade = (*collaboratorService)(nil)

const adultAge = 18

// isAdult reports whether the birth date is at least 18 years before now.
func isAdult(birthDate, now time.Time) bool {
	return !birthDate.AddDate(adultAge, 0, 0).After(now)
}

// CreateCollaborator registers a staff member. The account must belong to an
// adult; email and cedula must be unused.
func (s *collaboratorService) CreateCollaborator(ctx context.Context, req dto.CreateCollaboratorRequest, creatorUserID string) (*domain.Collaborator, error) {
	now := time.Now()
	if !isAdult(req.BirthDate, now) {
		return nil, fmt.Errorf("%w: collaborator must be at least %d years old", apperrors.ErrValidation, adultAge)
	}

	if _, err := s.repo.FindCollaboratorByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if _, err := s.repo.FindCollaboratorByCedula(ctx, req.Cedula); err == nil {
		return nil, fmt.Errorf("%w: cedula already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	c := domain.Collaborator{
		CollaboratorID: uuid.NewString(),
		Email:          req.Email,
		Cedula:         req.Cedula,
		Name:           req.Name,
		Phone:          req.Phone,
		BirthDate:      req.BirthDate,
		PasswordHash:   hash,
		RoleID:         req.RoleID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.repo.SaveCollaborator(ctx, c); err != nil {
		s.LogError(ctx, err, "Failed to save collaborator", slog.String("email", req.Email))
		return nil, err
	}

	s.LogInfo(ctx, "Collaborator created", slog.String("collaborator_id", c.CollaboratorID))
	s.RecordAudit(ctx, creatorUserID, "create", "collaborator", c.CollaboratorID)

	if s.mail != nil {
		s.mail.SendAsync(mailer.Message{
			To:      []string{c.Email},
			Subject: "Bienvenido a la fundación",
			Body: fmt.Sprintf("Hola %s,\n\nTu cuenta de colaborador fue creada. Ya puedes ingresar al sistema con tu correo electrónico.\n\nSaludos,\nEl equipo administrativo", c.Name),
		})
	}

	return &c, nil
}

// UpdateCollaborator changes a collaborator's mutable fields.
func (s *collaboratorService) UpdateCollaborator(ctx context.Context, collaboratorID string, req dto.UpdateCollaboratorRequest, updaterUserID string) (*domain.Collaborator, error) {
	c, err := s.repo.FindCollaboratorByID(ctx, collaboratorID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.RoleID != nil {
		c.RoleID = *req.RoleID
	}
	c.LastUpdatedAt = time.Now()
	c.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdateCollaborator(ctx, *c); err != nil {
		s.LogError(ctx, err, "Failed to update collaborator", slog.String("collaborator_id", collaboratorID))
		return nil, err
	}

	s.RecordAudit(ctx, updaterUserID, "update", "collaborator", collaboratorID)
	return c, nil
}

// GetCollaborator retrieves a collaborator by ID.
func (s *collaboratorService) GetCollaborator(ctx context.Context, collaboratorID string) (*domain.Collaborator, error) {
	return s.repo.FindCollaboratorByID(ctx, collaboratorID)
}

// ListCollaborators retrieves a paginated list of collaborators.
func (s *collaboratorService) ListCollaborators(ctx context.Context, limit int, offset int) ([]domain.Collaborator, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.FindCollaborators(ctx, limit, offset)
}

// DeleteCollaborator soft-deletes a collaborator.
func (s *collaboratorService) DeleteCollaborator(ctx context.Context, collaboratorID string, deleterUserID string) error {
	if err := s.repo.MarkCollaboratorDeleted(ctx, collaboratorID, time.Now(), deleterUserID); err != nil {
		s.LogError(ctx, err, "Failed to delete collaborator", slog.String("collaborator_id", collaboratorID))
		return err
	}
	s.RecordAudit(ctx, deleterUserID, "delete", "collaborator", collaboratorID)
	return nil
}
