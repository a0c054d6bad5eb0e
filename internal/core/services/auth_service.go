package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fundacion-admin/backend/internal/apperrors"
	portsrepo "github.com/fundacion-admin/backend/internal/core/ports/repositories"
	portssvc "github.com/fundacion-admin/backend/internal/core/ports/services"
	"github.com/fundacion-admin/backend/internal/dto"
	"github.com/fundacion-admin/backend/internal/middleware"
	"github.com/fundacion-admin/backend/internal/platform/config"
	"github.com/fundacion-admin/backend/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

type authService struct {
	BaseService
	users     portsrepo.UserReader
	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

// NewAuthService creates the authentication service.
func NewAuthService(cfg *config.Config, users portsrepo.UserReader) portssvc.AuthSvcFacade {
	return &authService{
		users:     users,
		jwtSecret: cfg.JWTSecret,
		jwtExpiry: cfg.JWTExpiryDuration,
		jwtIssuer: cfg.JWTIssuer,
	}
}

// Ensure implementation matches interface
var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies credentials and returns a signed bearer token. Unknown
// emails and wrong passwords produce the same error, so callers cannot probe
// which accounts exist.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogInfo(ctx, "Login rejected", slog.String("email", req.Email))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	now := time.Now()
	expiresAt := now.Add(s.jwtExpiry)
	claims := middleware.AuthClaims{
		Role: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			Issuer:    s.jwtIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token")
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.UserID,
		Name:      user.Name,
	}, nil
}
