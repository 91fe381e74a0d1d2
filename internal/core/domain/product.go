package domain

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog entry with on-hand stock. StockQuantity is only ever
// mutated through stock adjustments and never goes negative.
type Product struct {
	ProductID     string          `json:"productID"` // Primary Key (UUID)
	Description   string          `json:"description"` // Unique
	SKU           string          `json:"sku"`         // Unique, assigned on creation
	NCM           string          `json:"ncm"`
	CEST          string          `json:"cest"`
	Origin        string          `json:"origin"`
	Unit          string          `json:"unit"` // Unit of measure, e.g. UN
	CostPrice     decimal.Decimal `json:"costPrice"`
	MarginPercent decimal.Decimal `json:"marginPercent"`
	SalePrice     decimal.Decimal `json:"salePrice"` // Derived, see SalePriceFrom
	StockQuantity int64           `json:"stockQuantity"`
	AuditFields
}

var oneHundred = decimal.NewFromInt(100)

// SalePriceFrom derives the sale price from a cost price and a margin
// percentage: cost * (1 + margin/100). It is recomputed whenever cost or
// margin changes and never stored independently of them.
func SalePriceFrom(costPrice, marginPercent decimal.Decimal) decimal.Decimal {
	return costPrice.Mul(decimal.NewFromInt(1).Add(marginPercent.Div(oneHundred))).Round(2)
}
