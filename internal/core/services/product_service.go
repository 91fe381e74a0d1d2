package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	"github.com/oficinasys/service_order_app/internal/core/domain"
	portsrepo "github.com/oficinasys/service_order_app/internal/core/ports/repositories"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/dto"
	"github.com/oficinasys/service_order_app/internal/middleware"
)

var (
	ErrNegativePrice       = errors.New("price fields must not be negative")
	ErrProductHasMovements = errors.New("product has stock movements and cannot be deleted")
)

// productService provides catalog and stocktake operations.
type productService struct {
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateProduct adds a product to the catalog. The SKU comes from a server
// side sequence and the sale price is derived from cost and margin.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.CostPrice.IsNegative() || req.MarginPercent.IsNegative() {
		return nil, ErrNegativePrice
	}
	if req.InitialStock < 0 {
		return nil, fmt.Errorf("%w: initial stock must not be negative", apperrors.ErrValidation)
	}

	skuNumber, err := s.productRepo.NextSKUNumber(ctx)
	if err != nil {
		logger.Error("Failed to allocate SKU", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to allocate SKU: %w", err)
	}

	now := time.Now().UTC()
	unit := req.Unit
	if unit == "" {
		unit = "UN"
	}

	product := domain.Product{
		ProductID:     uuid.NewString(),
		Description:   req.Description,
		SKU:           fmt.Sprintf("PROD%04d", skuNumber),
		NCM:           req.NCM,
		CEST:          req.CEST,
		Origin:        req.Origin,
		Unit:          unit,
		CostPrice:     req.CostPrice,
		MarginPercent: req.MarginPercent,
		SalePrice:     domain.SalePriceFrom(req.CostPrice, req.MarginPercent),
		StockQuantity: req.InitialStock,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		logger.Error("Failed to save product", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID), slog.String("sku", product.SKU))
	return &product, nil
}

// GetProductByID retrieves a specific product.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	return product, nil
}

// ListProducts retrieves a paginated list of products.
func (s *productService) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	products, err := s.productRepo.ListProducts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// UpdateProduct applies catalog changes, re-deriving the sale price when cost
// or margin changes. Stock quantity is untouched here.
func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product for update: %w", err)
	}

	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.NCM != nil {
		product.NCM = *req.NCM
	}
	if req.CEST != nil {
		product.CEST = *req.CEST
	}
	if req.Origin != nil {
		product.Origin = *req.Origin
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}

	repriced := false
	if req.CostPrice != nil {
		if req.CostPrice.IsNegative() {
			return nil, ErrNegativePrice
		}
		product.CostPrice = *req.CostPrice
		repriced = true
	}
	if req.MarginPercent != nil {
		if req.MarginPercent.IsNegative() {
			return nil, ErrNegativePrice
		}
		product.MarginPercent = *req.MarginPercent
		repriced = true
	}
	if repriced {
		product.SalePrice = domain.SalePriceFrom(product.CostPrice, product.MarginPercent)
	}

	product.LastUpdatedAt = time.Now().UTC()
	product.LastUpdatedBy = userID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		logger.Error("Failed to update product", slog.String("error", err.Error()), slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// AdjustStock overwrites the on-hand quantity from a manual stocktake.
func (s *productService) AdjustStock(ctx context.Context, productID string, quantity int64, userID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if quantity < 0 {
		return nil, fmt.Errorf("%w: stock quantity must not be negative", apperrors.ErrValidation)
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product for stock adjustment: %w", err)
	}

	now := time.Now().UTC()
	if err := s.productRepo.SetStockQuantity(ctx, productID, quantity, userID, now); err != nil {
		logger.Error("Failed to adjust stock", slog.String("error", err.Error()), slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	logger.Info("Stock adjusted", slog.String("product_id", productID), slog.Int64("from", product.StockQuantity), slog.Int64("to", quantity))

	product.StockQuantity = quantity
	product.LastUpdatedAt = now
	product.LastUpdatedBy = userID
	return product, nil
}

// DeleteProduct removes a product with no stock movements.
func (s *productService) DeleteProduct(ctx context.Context, productID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		return fmt.Errorf("failed to find product for deletion: %w", err)
	}

	hasMovements, err := s.productRepo.HasMovements(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to check product movements: %w", err)
	}
	if hasMovements {
		return ErrProductHasMovements
	}

	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		logger.Error("Failed to delete product", slog.String("error", err.Error()), slog.String("product_id", productID))
		return fmt.Errorf("failed to delete product: %w", err)
	}

	logger.Info("Product deleted", slog.String("product_id", productID))
	return nil
}
