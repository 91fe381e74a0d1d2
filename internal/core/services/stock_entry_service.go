package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	"github.com/oficinasys/service_order_app/internal/core/domain"
	portsrepo "github.com/oficinasys/service_order_app/internal/core/ports/repositories"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/dto"
	"github.com/oficinasys/service_order_app/internal/middleware"
)

// stockEntryService provides goods receipt operations.
type stockEntryService struct {
	stockEntryRepo portsrepo.StockEntryRepositoryFacade
	productRepo    portsrepo.ProductRepositoryFacade
	supplierRepo   portsrepo.SupplierRepositoryFacade
}

// NewStockEntryService creates a new StockEntryService.
func NewStockEntryService(stockEntryRepo portsrepo.StockEntryRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade, supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.StockEntrySvcFacade {
	return &stockEntryService{
		stockEntryRepo: stockEntryRepo,
		productRepo:    productRepo,
		supplierRepo:   supplierRepo,
	}
}

var _ portssvc.StockEntrySvcFacade = (*stockEntryService)(nil)

// CreateStockEntry records a goods receipt. Every line increments its
// product's stock and overwrites the product cost with the received unit
// cost, in the same transaction as the entry insert.
func (s *stockEntryService) CreateStockEntry(ctx context.Context, req dto.CreateStockEntryRequest, userID string) (*domain.StockEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: stock entry requires at least one line", apperrors.ErrValidation)
	}

	if req.SupplierID != "" {
		if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
			return nil, fmt.Errorf("failed to find supplier for stock entry: %w", err)
		}
	}

	productIDs := make([]string, 0, len(req.Lines))
	for _, l := range req.Lines {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: received quantity must be positive for product %s", apperrors.ErrValidation, l.ProductID)
		}
		if l.UnitCost.IsNegative() {
			return nil, fmt.Errorf("%w: unit cost must not be negative for product %s", apperrors.ErrValidation, l.ProductID)
		}
		productIDs = append(productIDs, l.ProductID)
	}

	productsMap, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products for stock entry: %w", err)
	}
	for _, id := range productIDs {
		if _, found := productsMap[id]; !found {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, id)
		}
	}

	now := time.Now().UTC()
	entryDate := now
	if req.EntryDate != nil {
		entryDate = req.EntryDate.UTC()
	}

	entryID := uuid.NewString()
	lines := make([]domain.StockEntryLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = domain.StockEntryLine{
			LineID:    uuid.NewString(),
			EntryID:   entryID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitCost:  l.UnitCost,
		}
	}

	entry := domain.StockEntry{
		EntryID:    entryID,
		SupplierID: req.SupplierID,
		EntryDate:  entryDate,
		Notes:      req.Notes,
		Lines:      lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.stockEntryRepo.SaveStockEntry(ctx, entry); err != nil {
		logger.Error("Failed to save stock entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save stock entry: %w", err)
	}

	logger.Info("Stock entry recorded", slog.String("entry_id", entry.EntryID), slog.Int("lines", len(lines)))
	return &entry, nil
}

// GetStockEntryByID retrieves an entry with its lines.
func (s *stockEntryService) GetStockEntryByID(ctx context.Context, entryID string) (*domain.StockEntry, error) {
	entry, err := s.stockEntryRepo.FindStockEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find stock entry by ID %s: %w", entryID, err)
	}
	return entry, nil
}

// ListStockEntries retrieves a paginated list of entries.
func (s *stockEntryService) ListStockEntries(ctx context.Context, limit int, offset int) ([]domain.StockEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	entries, err := s.stockEntryRepo.ListStockEntries(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock entries: %w", err)
	}
	return entries, nil
}
