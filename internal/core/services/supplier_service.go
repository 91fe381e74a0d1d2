package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	portsrepo "github.com/oficinasys/service_order_app/internal/core/ports/repositories"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/dto"
	"github.com/oficinasys/service_order_app/internal/middleware"
	"github.com/oficinasys/service_order_app/internal/utils"
)

// supplierService provides supplier registry operations.
type supplierService struct {
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

// CreateSupplier registers a new supplier after CNPJ validation.
func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	cnpj := utils.OnlyDigits(req.CNPJ)
	if !utils.IsValidCNPJ(cnpj) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCNPJ, req.CNPJ)
	}

	now := time.Now().UTC()
	supplier := domain.Supplier{
		SupplierID: uuid.NewString(),
		LegalName:  req.LegalName,
		TradeName:  req.TradeName,
		CNPJ:       cnpj,
		Phone:      utils.OnlyDigits(req.Phone),
		Email:      req.Email,
		CEP:        utils.OnlyDigits(req.CEP),
		Street:     req.Street,
		Number:     req.Number,
		District:   req.District,
		City:       req.City,
		State:      req.State,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		logger.Error("Failed to save supplier", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save supplier: %w", err)
	}

	logger.Info("Supplier created", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

// GetSupplierByID retrieves a specific supplier.
func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to find supplier by ID %s: %w", supplierID, err)
	}
	return supplier, nil
}

// ListSuppliers retrieves a paginated list of suppliers.
func (s *supplierService) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	suppliers, err := s.supplierRepo.ListSuppliers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

// UpdateSupplier applies the provided changes to an existing supplier.
func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to find supplier for update: %w", err)
	}

	if req.LegalName != nil {
		supplier.LegalName = *req.LegalName
	}
	if req.TradeName != nil {
		supplier.TradeName = *req.TradeName
	}
	if req.Phone != nil {
		supplier.Phone = utils.OnlyDigits(*req.Phone)
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.CEP != nil {
		supplier.CEP = utils.OnlyDigits(*req.CEP)
	}
	if req.Street != nil {
		supplier.Street = *req.Street
	}
	if req.Number != nil {
		supplier.Number = *req.Number
	}
	if req.District != nil {
		supplier.District = *req.District
	}
	if req.City != nil {
		supplier.City = *req.City
	}
	if req.State != nil {
		supplier.State = *req.State
	}

	supplier.LastUpdatedAt = time.Now().UTC()
	supplier.LastUpdatedBy = userID

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		logger.Error("Failed to update supplier", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	return supplier, nil
}

// DeleteSupplier removes a supplier.
func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.supplierRepo.FindSupplierByID(ctx, supplierID); err != nil {
		return fmt.Errorf("failed to find supplier for deletion: %w", err)
	}

	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		logger.Error("Failed to delete supplier", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	logger.Info("Supplier deleted", slog.String("supplier_id", supplierID))
	return nil
}
