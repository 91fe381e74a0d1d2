package services

import (
	"context"
	"fmt"
	"time"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/platform/config"
	"github.com/oficinasys/service_order_app/internal/utils"
)

// authService implements token issuance and validation over the shared JWT
// configuration.
type authService struct {
	cfg *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *authService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// ValidateAccessToken parses and verifies a JWT, returning the user ID it
// was issued for.
func (s *authService) ValidateAccessToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("invalid access token: %w", err)
	}
	return claims.Subject, nil
}
