package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oficinasys/service_order_app/internal/apperrors"
)

// StockEntry records a receipt of goods, usually against a supplier document.
// Each line increments the referenced product's stock and overwrites its cost
// price with the received unit cost (last-cost-wins).
type StockEntry struct {
	EntryID    string           `json:"entryID"` // Primary Key (UUID)
	SupplierID string           `json:"supplierID,omitempty"`
	EntryDate  time.Time        `json:"entryDate"`
	Notes      string           `json:"notes"`
	Lines      []StockEntryLine `json:"lines"`
	AuditFields
}

// StockEntryLine is one product received within a stock entry.
type StockEntryLine struct {
	LineID    string          `json:"lineID"` // Primary Key (UUID)
	EntryID   string          `json:"entryID"`
	ProductID string          `json:"productID"`
	Quantity  int64           `json:"quantity"` // > 0
	UnitCost  decimal.Decimal `json:"unitCost"`
}

// Total is the receipt value of the line.
func (l StockEntryLine) Total() decimal.Decimal {
	return l.UnitCost.Mul(decimal.NewFromInt(l.Quantity))
}

// ReserveStock deducts qty units from onHand. When fewer than qty units are
// available it returns ErrInsufficientStock and leaves onHand untouched, so a
// reservation either deducts exactly qty or deducts nothing. The remaining
// quantity is never negative.
func ReserveStock(onHand, qty int64) (int64, error) {
	if onHand < qty {
		return onHand, fmt.Errorf("%w: %d on hand, %d requested", apperrors.ErrInsufficientStock, onHand, qty)
	}
	return onHand - qty, nil
}
