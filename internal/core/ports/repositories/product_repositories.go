package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductReader defines read operations for catalog data.
type ProductReader interface {
	// FindProductByID retrieves a specific product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductsByIDs retrieves several products at once, keyed by ID.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// ListProducts retrieves products ordered by description.
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error)

	// HasMovements reports whether the product appears in any stock entry or
	// part line. Products with movements are never deleted.
	HasMovements(ctx context.Context, productID string) (bool, error)
}

// ProductWriter defines write operations for catalog data.
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct persists catalog changes (never the stock quantity).
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product.
	DeleteProduct(ctx context.Context, productID string) error

	// NextSKUNumber returns the next value of the SKU sequence.
	NextSKUNumber(ctx context.Context) (int64, error)

	// SetStockQuantity overwrites the on-hand quantity (manual stocktake).
	SetStockQuantity(ctx context.Context, productID string, quantity int64, userID string, now time.Time) error
}

// StockAdjuster holds the stock adjustment primitives. Every method runs
// against a caller-provided transaction so the adjustment commits or rolls
// back together with the order or receipt mutation it accompanies.
type StockAdjuster interface {
	// ReserveStockInTx decrements stock by qty, failing with
	// apperrors.ErrInsufficientStock when fewer than qty units are on hand.
	ReserveStockInTx(ctx context.Context, tx pgx.Tx, productID string, qty int64, userID string, now time.Time) error

	// ReleaseStockInTx increments stock by qty (part line removed, order
	// deleted before invoicing).
	ReleaseStockInTx(ctx context.Context, tx pgx.Tx, productID string, qty int64, userID string, now time.Time) error

	// ReceiveStockInTx increments stock by qty and overwrites the product's
	// cost price with unitCost (last-cost-wins).
	ReceiveStockInTx(ctx context.Context, tx pgx.Tx, productID string, qty int64, unitCost decimal.Decimal, userID string, now time.Time) error
}

// ProductRepositoryFacade combines all product-related repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
	StockAdjuster
}
