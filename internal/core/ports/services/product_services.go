package services

import (
	"context"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/oficinasys/service_order_app/internal/dto"
)

// ProductReaderSvc defines read operations for catalog data.
type ProductReaderSvc interface {
	// GetProductByID retrieves a specific product by its unique identifier.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves a paginated list of products ordered by description.
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for catalog data.
type ProductWriterSvc interface {
	// CreateProduct adds a product to the catalog, assigning its SKU and
	// deriving its sale price.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error)

	// UpdateProduct updates catalog fields, re-deriving the sale price when
	// cost or margin changes.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error)

	// AdjustStock overwrites the on-hand quantity (manual stocktake).
	AdjustStock(ctx context.Context, productID string, quantity int64, userID string) (*domain.Product, error)

	// DeleteProduct removes a product that has no stock movements.
	DeleteProduct(ctx context.Context, productID string, userID string) error
}

// ProductSvcFacade combines all product-related service interfaces.
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
