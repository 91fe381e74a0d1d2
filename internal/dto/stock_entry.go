package dto

import (
	"time"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStockEntryLineRequest is one received product within a goods receipt.
type CreateStockEntryLineRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	UnitCost  decimal.Decimal `json:"unitCost" binding:"required"`
}

// CreateStockEntryRequest defines the data needed to record a goods receipt.
type CreateStockEntryRequest struct {
	SupplierID string                        `json:"supplierID"`
	EntryDate  *time.Time                    `json:"entryDate"`
	Notes      string                        `json:"notes"`
	Lines      []CreateStockEntryLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// StockEntryLineResponse defines the data returned for a receipt line.
type StockEntryLineResponse struct {
	LineID    string          `json:"lineID"`
	ProductID string          `json:"productID"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	Total     decimal.Decimal `json:"total"`
}

// StockEntryResponse defines the data returned for a goods receipt.
type StockEntryResponse struct {
	EntryID    string                   `json:"entryID"`
	SupplierID string                   `json:"supplierID,omitempty"`
	EntryDate  time.Time                `json:"entryDate"`
	Notes      string                   `json:"notes,omitempty"`
	Lines      []StockEntryLineResponse `json:"lines"`
	CreatedAt  time.Time                `json:"createdAt"`
}

// ToStockEntryResponse converts a domain.StockEntry to StockEntryResponse DTO.
func ToStockEntryResponse(e *domain.StockEntry) StockEntryResponse {
	lines := make([]StockEntryLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = StockEntryLineResponse{
			LineID:    l.LineID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitCost:  l.UnitCost,
			Total:     l.Total(),
		}
	}
	return StockEntryResponse{
		EntryID:    e.EntryID,
		SupplierID: e.SupplierID,
		EntryDate:  e.EntryDate,
		Notes:      e.Notes,
		Lines:      lines,
		CreatedAt:  e.CreatedAt,
	}
}

// ToListStockEntryResponse converts a slice of domain.StockEntry to response DTOs.
func ToListStockEntryResponse(entries []domain.StockEntry) []StockEntryResponse {
	res := make([]StockEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToStockEntryResponse(&e)
	}
	return res
}

// ListStockEntriesParams defines query parameters for listing goods receipts.
type ListStockEntriesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListStockEntriesResponse wraps the list of goods receipts.
type ListStockEntriesResponse struct {
	Entries []StockEntryResponse `json:"entries"`
}
