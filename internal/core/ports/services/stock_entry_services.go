package services

import (
	"context"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/oficinasys/service_order_app/internal/dto"
)

// StockEntryReaderSvc defines read operations for goods receipts.
type StockEntryReaderSvc interface {
	// GetStockEntryByID retrieves an entry with its lines.
	GetStockEntryByID(ctx context.Context, entryID string) (*domain.StockEntry, error)

	// ListStockEntries retrieves a paginated list of entries, most recent first.
	ListStockEntries(ctx context.Context, limit int, offset int) ([]domain.StockEntry, error)
}

// StockEntryWriterSvc defines write operations for goods receipts.
type StockEntryWriterSvc interface {
	// CreateStockEntry records a goods receipt, incrementing stock and
	// updating product cost prices in one transaction.
	CreateStockEntry(ctx context.Context, req dto.CreateStockEntryRequest, userID string) (*domain.StockEntry, error)
}

// StockEntrySvcFacade combines all stock entry service interfaces.
type StockEntrySvcFacade interface {
	StockEntryReaderSvc
	StockEntryWriterSvc
}
