package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/dto"
	"github.com/oficinasys/service_order_app/internal/middleware"
	"github.com/oficinasys/service_order_app/internal/platform/brasilapi"
	"github.com/oficinasys/service_order_app/internal/utils"
)

// lookupService fronts the BrasilAPI registries. Upstream failures are
// reported as ErrLookupUnavailable so callers can fall back to manual entry;
// a registry miss for a well-formed document surfaces as ErrNotFound.
type lookupService struct {
	client *brasilapi.Client
}

// NewLookupService creates a new LookupService.
func NewLookupService(client *brasilapi.Client) portssvc.LookupService {
	return &lookupService{client: client}
}

var _ portssvc.LookupService = (*lookupService)(nil)

// LookupCNPJ fetches company registration data for a CNPJ.
func (s *lookupService) LookupCNPJ(ctx context.Context, cnpj string) (*dto.CNPJLookupResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	digits := utils.OnlyDigits(cnpj)
	if !utils.IsValidCNPJ(digits) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCNPJ, cnpj)
	}

	result, err := s.client.FetchCNPJ(ctx, digits)
	if err != nil {
		logger.Warn("CNPJ lookup failed", slog.String("error", err.Error()))
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrLookupUnavailable, err)
	}

	return &dto.CNPJLookupResponse{
		CNPJ:      utils.OnlyDigits(result.CNPJ),
		LegalName: result.RazaoSocial,
		TradeName: result.NomeFantasia,
		Email:     result.Email,
		Phone:     utils.OnlyDigits(result.Phone),
		CEP:       utils.OnlyDigits(result.CEP),
		Street:    result.Street,
		Number:    result.Number,
		District:  result.District,
		City:      result.City,
		State:     result.State,
	}, nil
}

// LookupCEP fetches address data for a postal code.
func (s *lookupService) LookupCEP(ctx context.Context, cep string) (*dto.CEPLookupResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	digits := utils.OnlyDigits(cep)
	if len(digits) != 8 {
		return nil, fmt.Errorf("%w: CEP must have 8 digits", apperrors.ErrValidation)
	}

	result, err := s.client.FetchCEP(ctx, digits)
	if err != nil {
		logger.Warn("CEP lookup failed", slog.String("error", err.Error()))
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrLookupUnavailable, err)
	}

	return &dto.CEPLookupResponse{
		CEP:      utils.OnlyDigits(result.CEP),
		Street:   result.Street,
		District: result.District,
		City:     result.City,
		State:    result.State,
	}, nil
}
