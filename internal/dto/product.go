package dto

import (
	"time"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to add a catalog product.
// The SKU is assigned by the server; the sale price is derived from cost and
// margin.
type CreateProductRequest struct {
	Description   string          `json:"description" binding:"required"`
	NCM           string          `json:"ncm"`
	CEST          string          `json:"cest"`
	Origin        string          `json:"origin"`
	Unit          string          `json:"unit"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	MarginPercent decimal.Decimal `json:"marginPercent"`
	InitialStock  int64           `json:"initialStock" binding:"gte=0"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// Stock quantity is not updatable here; use the stock adjustment endpoint.
type UpdateProductRequest struct {
	Description   *string          `json:"description"`
	NCM           *string          `json:"ncm"`
	CEST          *string          `json:"cest"`
	Origin        *string          `json:"origin"`
	Unit          *string          `json:"unit"`
	CostPrice     *decimal.Decimal `json:"costPrice"`
	MarginPercent *decimal.Decimal `json:"marginPercent"`
}

// AdjustStockRequest sets the on-hand quantity directly (manual stocktake).
type AdjustStockRequest struct {
	Quantity int64 `json:"quantity" binding:"gte=0"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID     string          `json:"productID"`
	Description   string          `json:"description"`
	SKU           string          `json:"sku"`
	NCM           string          `json:"ncm,omitempty"`
	CEST          string          `json:"cest,omitempty"`
	Origin        string          `json:"origin,omitempty"`
	Unit          string          `json:"unit,omitempty"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	MarginPercent decimal.Decimal `json:"marginPercent"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	StockQuantity int64           `json:"stockQuantity"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		Description:   p.Description,
		SKU:           p.SKU,
		NCM:           p.NCM,
		CEST:          p.CEST,
		Origin:        p.Origin,
		Unit:          p.Unit,
		CostPrice:     p.CostPrice,
		MarginPercent: p.MarginPercent,
		SalePrice:     p.SalePrice,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListProductResponse converts a slice of domain.Product to response DTOs.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return res
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListProductsResponse wraps the list of products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}
