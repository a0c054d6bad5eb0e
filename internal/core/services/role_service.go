package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/fundacion-admin/backend/internal/core/domain"
	portsrepo "github.com/fundacion-admin/backend/internal/core/ports/repositories"
	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/google/uuid"
)

type roleService struct {
	BaseService
	repo portsrepo.RoleRepositoryFacade
}

// NewRoleService creates the role and permission service.
func NewRoleService(repo portsrepo.RoleRepositoryFacade, audit portsrepo.AuditRecorder) portssvc.RoleSvcFacade {
	return &roleService{
		BaseService: BaseService{Audit: audit},
		repo:        repo,
	}
}

// Ensure implementation matches interface
var _ portssvc.RoleSvcFacade = (*roleService)(nil)

// CreateRole registers a role with its initial permission set.
func (s *roleService) CreateRole(ctx context.Context, req dto.CreateRoleRequest, creatorUserID string) (*domain.Role, error) {
	now := time.Now()
	role := domain.Role{
		RoleID:      uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Permissions: req.Permissions,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if role.Permissions == nil {
		role.Permissions = []string{}
	}

	if err := s.repo.SaveRole(ctx, role); err != nil {
		s.LogError(ctx, err, "Failed to save role", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Role created", slog.String("role_id", role.RoleID))
	s.RecordAudit(ctx, creatorUserID, "create", "role", role.RoleID)
	return &role, nil
}

// UpdateRole changes a role's name or description.
func (s *roleService) UpdateRole(ctx context.Context, roleID string, req dto.UpdateRoleRequest, updaterUserID string) (*domain.Role, error) {
	role, err := s.repo.FindRoleByID(ctx, roleID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		role.Name = *req.Name
	}
	if req.Description != nil {
		role.Description = *req.Description
	}
	role.LastUpdatedAt = time.Now()
	role.LastUpdatedBy = updaterUserID

	if err := s.repo.UpdateRole(ctx, *role); err != nil {
		s.LogError(ctx, err, "Failed to update role", slog.String("role_id", roleID))
		return nil, err
	}

	s.RecordAudit(ctx, updaterUserID, "update", "role", roleID)
	return role, nil
}

// GetRole retrieves a role with its permissions.
func (s *roleService) GetRole(ctx context.Context, roleID string) (*domain.Role, error) {
	return s.repo.FindRoleByID(ctx, roleID)
}

// ListRoles retrieves all roles.
func (s *roleService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return s.repo.FindRoles(ctx)
}

// DeleteRole removes a role.
func (s *roleService) DeleteRole(ctx context.Context, roleID string) error {
	if err := s.repo.DeleteRole(ctx, roleID); err != nil {
		s.LogError(ctx, err, "Failed to delete role", slog.String("role_id", roleID))
		return err
	}
	return nil
}

// permissionDiff computes which links to add and which to drop to go from
// current to desired, ignoring duplicates.
func permissionDiff(current, desired []string) (add, remove []string) {
	have := make(map[string]bool, len(current))
	for _, p := range current {
		have[p] = true
	}
	want := make(map[string]bool, len(desired))
	for _, p := range desired {
		if want[p] {
			continue
		}
		want[p] = true
		if !have[p] {
			add = append(add, p)
		}
	}
	for _, p := range current {
		if !want[p] {
			remove = append(remove, p)
		}
	}
	return add, remove
}

// ReplacePermissions swaps the role's permission set for the supplied one.
// Only the computed additions and removals touch the database, and both apply
// in one transaction, so permissions shared between the old and new sets are
// never dropped and re-added.
func (s *roleService) ReplacePermissions(ctx context.Context, roleID string, permissions []string, actorUserID string) (*domain.Role, error) {
	current, err := s.repo.FindPermissions(ctx, roleID)
	if err != nil {
		return nil, err
	}

	add, remove := permissionDiff(current, permissions)
	if err := s.repo.ApplyPermissionDiff(ctx, roleID, add, remove); err != nil {
		s.LogError(ctx, err, "Failed to apply permission diff", slog.String("role_id", roleID))
		return nil, err
	}

	s.LogInfo(ctx, "Role permissions replaced",
		slog.String("role_id", roleID),
		slog.Int("added", len(add)),
		slog.Int("removed", len(remove)))
	s.RecordAudit(ctx, actorUserID, "replace_permissions", "role", roleID)

	return s.repo.FindRoleByID(ctx, roleID)
}
