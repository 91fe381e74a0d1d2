package services

import (
	"context"
	"time"

	"github.com/oficinasys/service_order_app/internal/core/domain"
)

// AuthSvcFacade defines token issuance and validation.
type AuthSvcFacade interface {
	// GenerateAccessToken issues a signed JWT for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAccessToken parses and verifies a JWT, returning the user ID it
	// was issued for.
	ValidateAccessToken(ctx context.Context, tokenString string) (string, error)
}
