package services

import (
	"context"

	"github.com/oficinasys/service_order_app/internal/dto"
)

// LookupService fronts the public registries used to pre-fill registration
// forms. Failures of the upstream registry surface as
// apperrors.ErrLookupUnavailable and never block manual entry.
type LookupService interface {
	// LookupCNPJ fetches company registration data for a CNPJ.
	LookupCNPJ(ctx context.Context, cnpj string) (*dto.CNPJLookupResponse, error)

	// LookupCEP fetches address data for a postal code.
	LookupCEP(ctx context.Context, cep string) (*dto.CEPLookupResponse, error)
}
