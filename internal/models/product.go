package models

import "github.com/shopspring/decimal"

// Product maps to the products table.
type Product struct {
	ProductID     string
	Description   string
	SKU           string
	NCM           *string
	CEST          *string
	Origin        *string
	Unit          *string
	CostPrice     decimal.Decimal
	MarginPercent decimal.Decimal
	SalePrice     decimal.Decimal
	StockQuantity int64
	AuditFields
}
