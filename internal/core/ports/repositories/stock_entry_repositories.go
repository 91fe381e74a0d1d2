package repositories

import (
	"context"

	"github.com/oficinasys/service_order_app/internal/core/domain"
)

// StockEntryReader defines read operations for goods receipts.
type StockEntryReader interface {
	// FindStockEntryByID retrieves an entry with its lines.
	FindStockEntryByID(ctx context.Context, entryID string) (*domain.StockEntry, error)

	// ListStockEntries retrieves entries most recent first.
	ListStockEntries(ctx context.Context, limit int, offset int) ([]domain.StockEntry, error)
}

// StockEntryWriter defines write operations for goods receipts.
type StockEntryWriter interface {
	// SaveStockEntry persists the entry and its lines, receiving stock and
	// updating product cost prices in the same transaction.
	SaveStockEntry(ctx context.Context, entry domain.StockEntry) error
}

// StockEntryRepositoryFacade combines all stock entry repository interfaces.
type StockEntryRepositoryFacade interface {
	StockEntryReader
	StockEntryWriter
}
