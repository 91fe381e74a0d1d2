package mapping

import (
	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/oficinasys/service_order_app/internal/models"
)

// ToModelProduct converts a domain Product to a model Product.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:     d.ProductID,
		Description:   d.Description,
		SKU:           d.SKU,
		NCM:           strPtr(d.NCM),
		CEST:          strPtr(d.CEST),
		Origin:        strPtr(d.Origin),
		Unit:          strPtr(d.Unit),
		CostPrice:     d.CostPrice,
		MarginPercent: d.MarginPercent,
		SalePrice:     d.SalePrice,
		StockQuantity: d.StockQuantity,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:     m.ProductID,
		Description:   m.Description,
		SKU:           m.SKU,
		NCM:           strVal(m.NCM),
		CEST:          strVal(m.CEST),
		Origin:        strVal(m.Origin),
		Unit:          strVal(m.Unit),
		CostPrice:     m.CostPrice,
		MarginPercent: m.MarginPercent,
		SalePrice:     m.SalePrice,
		StockQuantity: m.StockQuantity,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model Products to domain Products.
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
