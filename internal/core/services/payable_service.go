package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	"github.com/oficinasys/service_order_app/internal/core/domain"
	portsrepo "github.com/oficinasys/service_order_app/internal/core/ports/repositories"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/dto"
	"github.com/oficinasys/service_order_app/internal/middleware"
)

var ErrPayableNotPending = errors.New("payable is not pending")

// payableService provides accounts payable operations.
type payableService struct {
	payableRepo  portsrepo.PayableRepositoryFacade
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewPayableService creates a new PayableService.
func NewPayableService(payableRepo portsrepo.PayableRepositoryFacade, supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.PayableSvcFacade {
	return &payableService{
		payableRepo:  payableRepo,
		supplierRepo: supplierRepo,
	}
}

var _ portssvc.PayableSvcFacade = (*payableService)(nil)

// CreatePayable registers a supplier obligation. An installment count above
// one splits it into that many monthly parcels, saved together.
func (s *payableService) CreatePayable(ctx context.Context, req dto.CreatePayableRequest, userID string) ([]domain.PayableAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payable amount must be positive", apperrors.ErrValidation)
	}

	if req.SupplierID != "" {
		if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
			return nil, fmt.Errorf("failed to find supplier for payable: %w", err)
		}
	}

	now := time.Now().UTC()
	issueDate := now
	if req.IssueDate != nil {
		issueDate = req.IssueDate.UTC()
	}
	installments := req.Installments
	if installments < 1 {
		installments = 1
	}

	parcels := domain.SplitInstallments(req.Description, req.Amount, installments, issueDate, req.FirstDueDate.UTC())
	for i := range parcels {
		parcels[i].PayableID = uuid.NewString()
		parcels[i].SupplierID = req.SupplierID
		parcels[i].AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		}
	}

	if err := s.payableRepo.SavePayables(ctx, parcels); err != nil {
		logger.Error("Failed to save payables", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save payables: %w", err)
	}

	logger.Info("Payable registered", slog.Int("installments", len(parcels)), slog.String("amount", req.Amount.String()))
	return parcels, nil
}

// GetPayableByID retrieves a payable.
func (s *payableService) GetPayableByID(ctx context.Context, payableID string) (*domain.PayableAccount, error) {
	payable, err := s.payableRepo.FindPayableByID(ctx, payableID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payable by ID %s: %w", payableID, err)
	}
	return payable, nil
}

// ListPayables retrieves payables matching the filter.
func (s *payableService) ListPayables(ctx context.Context, filter portsrepo.ListPayablesFilter, limit int, offset int) ([]domain.PayableAccount, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	payables, err := s.payableRepo.ListPayables(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list payables: %w", err)
	}
	return payables, nil
}

// UpdatePayable updates a pending payable's details.
func (s *payableService) UpdatePayable(ctx context.Context, payableID string, req dto.UpdatePayableRequest, userID string) (*domain.PayableAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payable, err := s.payableRepo.FindPayableByID(ctx, payableID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payable for update: %w", err)
	}
	if payable.Status != domain.PayablePending {
		return nil, fmt.Errorf("%w: payable %s is %s", ErrPayableNotPending, payableID, payable.Status)
	}

	if req.Description != nil {
		payable.Description = *req.Description
	}
	if req.SupplierID != nil {
		if *req.SupplierID != "" {
			if _, err := s.supplierRepo.FindSupplierByID(ctx, *req.SupplierID); err != nil {
				return nil, fmt.Errorf("failed to find supplier for payable update: %w", err)
			}
		}
		payable.SupplierID = *req.SupplierID
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: payable amount must be positive", apperrors.ErrValidation)
		}
		payable.Amount = *req.Amount
	}
	if req.DueDate != nil {
		payable.DueDate = req.DueDate.UTC()
	}

	payable.LastUpdatedAt = time.Now().UTC()
	payable.LastUpdatedBy = userID

	if err := s.payableRepo.UpdatePayable(ctx, *payable); err != nil {
		logger.Error("Failed to update payable", slog.String("error", err.Error()), slog.String("payable_id", payableID))
		return nil, fmt.Errorf("failed to update payable: %w", err)
	}

	return payable, nil
}

// PayPayable marks a pending payable as PAID.
func (s *payableService) PayPayable(ctx context.Context, payableID string, userID string) (*domain.PayableAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payable, err := s.payableRepo.FindPayableByID(ctx, payableID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payable for payment: %w", err)
	}
	if payable.Status != domain.PayablePending {
		return nil, fmt.Errorf("%w: payable %s is %s", ErrPayableNotPending, payableID, payable.Status)
	}

	now := time.Now().UTC()
	if err := s.payableRepo.UpdatePayableStatus(ctx, payableID, domain.PayablePaid, &now, userID, now); err != nil {
		logger.Error("Failed to pay payable", slog.String("error", err.Error()), slog.String("payable_id", payableID))
		return nil, fmt.Errorf("failed to pay payable: %w", err)
	}

	logger.Info("Payable paid", slog.String("payable_id", payableID))

	payable.Status = domain.PayablePaid
	payable.LastUpdatedAt = now
	payable.LastUpdatedBy = userID
	return payable, nil
}

// ReversePayablePayment returns a paid payable to PENDING.
func (s *payableService) ReversePayablePayment(ctx context.Context, payableID string, userID string) (*domain.PayableAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payable, err := s.payableRepo.FindPayableByID(ctx, payableID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payable for reversal: %w", err)
	}
	if payable.Status != domain.PayablePaid {
		return nil, fmt.Errorf("%w: payable %s is %s", apperrors.ErrInvalidTransition, payableID, payable.Status)
	}

	now := time.Now().UTC()
	if err := s.payableRepo.UpdatePayableStatus(ctx, payableID, domain.PayablePending, nil, userID, now); err != nil {
		logger.Error("Failed to reverse payable payment", slog.String("error", err.Error()), slog.String("payable_id", payableID))
		return nil, fmt.Errorf("failed to reverse payable payment: %w", err)
	}

	logger.Info("Payable payment reversed", slog.String("payable_id", payableID))

	payable.Status = domain.PayablePending
	payable.LastUpdatedAt = now
	payable.LastUpdatedBy = userID
	return payable, nil
}

// DeletePayable removes a pending payable.
func (s *payableService) DeletePayable(ctx context.Context, payableID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	payable, err := s.payableRepo.FindPayableByID(ctx, payableID)
	if err != nil {
		return fmt.Errorf("failed to find payable for deletion: %w", err)
	}
	if payable.Status != domain.PayablePending {
		return fmt.Errorf("%w: payable %s is %s", ErrPayableNotPending, payableID, payable.Status)
	}

	if err := s.payableRepo.DeletePayable(ctx, payableID); err != nil {
		logger.Error("Failed to delete payable", slog.String("error", err.Error()), slog.String("payable_id", payableID))
		return fmt.Errorf("failed to delete payable: %w", err)
	}

	logger.Info("Payable deleted", slog.String("payable_id", payableID))
	return nil
}
