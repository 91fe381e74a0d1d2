package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry maps to the stock_entries table.
type StockEntry struct {
	EntryID    string
	SupplierID *string
	EntryDate  time.Time
	Notes      *string
	AuditFields
}

// StockEntryLine maps to the stock_entry_lines table.
type StockEntryLine struct {
	LineID    string
	EntryID   string
	ProductID string
	Quantity  int64
	UnitCost  decimal.Decimal
}
