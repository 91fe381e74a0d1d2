package mapping

import (
	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/oficinasys/service_order_app/internal/models"
)

// ToModelStockEntry converts a domain StockEntry header to a model StockEntry.
func ToModelStockEntry(d domain.StockEntry) models.StockEntry {
	return models.StockEntry{
		EntryID:     d.EntryID,
		SupplierID:  strPtr(d.SupplierID),
		EntryDate:   d.EntryDate,
		Notes:       strPtr(d.Notes),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStockEntry converts a model StockEntry header to a domain StockEntry.
func ToDomainStockEntry(m models.StockEntry) domain.StockEntry {
	return domain.StockEntry{
		EntryID:     m.EntryID,
		SupplierID:  strVal(m.SupplierID),
		EntryDate:   m.EntryDate,
		Notes:       strVal(m.Notes),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelStockEntryLine converts a domain StockEntryLine to a model one.
func ToModelStockEntryLine(d domain.StockEntryLine) models.StockEntryLine {
	return models.StockEntryLine{
		LineID:    d.LineID,
		EntryID:   d.EntryID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
		UnitCost:  d.UnitCost,
	}
}

// ToDomainStockEntryLine converts a model StockEntryLine to a domain one.
func ToDomainStockEntryLine(m models.StockEntryLine) domain.StockEntryLine {
	return domain.StockEntryLine{
		LineID:    m.LineID,
		EntryID:   m.EntryID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		UnitCost:  m.UnitCost,
	}
}

// ToDomainStockEntryLineSlice converts a slice of model StockEntryLines.
func ToDomainStockEntryLineSlice(ms []models.StockEntryLine) []domain.StockEntryLine {
	ds := make([]domain.StockEntryLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockEntryLine(m)
	}
	return ds
}
