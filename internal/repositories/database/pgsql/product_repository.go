package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	"github.com/oficinasys/service_order_app/internal/core/domain"
	portsrepo "github.com/oficinasys/service_order_app/internal/core/ports/repositories"
	"github.com/oficinasys/service_order_app/internal/models"
	"github.com/oficinasys/service_order_app/internal/utils/mapping"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for catalog and stock data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `product_id, description, sku, ncm, cest, origin, unit, cost_price, margin_percent, sale_price, stock_quantity, created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.Description,
		&m.SKU,
		&m.NCM,
		&m.CEST,
		&m.Origin,
		&m.Unit,
		&m.CostPrice,
		&m.MarginPercent,
		&m.SalePrice,
		&m.StockQuantity,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveProduct inserts a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID,
		m.Description,
		m.SKU,
		m.NCM,
		m.CEST,
		m.Origin,
		m.Unit,
		m.CostPrice,
		m.MarginPercent,
		m.SalePrice,
		m.StockQuantity,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: product description or SKU already registered", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save product %s: %w", m.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`

	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}

	d := mapping.ToDomainProduct(m)
	return &d, nil
}

// FindProductsByIDs retrieves multiple products by their IDs, keyed by ID.
// Missing IDs are simply absent from the map.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	defer rows.Close()

	productsMap := make(map[string]domain.Product)
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row during batch fetch: %w", err)
		}
		d := mapping.ToDomainProduct(m)
		productsMap[d.ProductID] = d
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows during batch fetch: %w", err)
	}

	return productsMap, nil
}

// ListProducts retrieves products ordered by description.
func (r *PgxProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY description
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}

	return mapping.ToDomainProductSlice(products), nil
}

// HasMovements reports whether the product appears in any part line or stock
// entry line.
func (r *PgxProductRepository) HasMovements(ctx context.Context, productID string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM part_lines WHERE product_id = $1)
		    OR EXISTS (SELECT 1 FROM stock_entry_lines WHERE product_id = $1);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, productID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check movements for product %s: %w", productID, err)
	}
	return exists, nil
}

// UpdateProduct persists catalog changes. Stock quantity is deliberately
// excluded; it only moves through the stock primitives below.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)

	query := `
		UPDATE products
		SET description = $2,
		    ncm = $3,
		    cest = $4,
		    origin = $5,
		    unit = $6,
		    cost_price = $7,
		    margin_percent = $8,
		    sale_price = $9,
		    last_updated_at = $10,
		    last_updated_by = $11
		WHERE product_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ProductID,
		m.Description,
		m.NCM,
		m.CEST,
		m.Origin,
		m.Unit,
		m.CostPrice,
		m.MarginPercent,
		m.SalePrice,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: product description already registered", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update product %s: %w", m.ProductID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// NextSKUNumber returns the next value of the SKU sequence.
func (r *PgxProductRepository) NextSKUNumber(ctx context.Context) (int64, error) {
	var n int64
	if err := r.Pool.QueryRow(ctx, `SELECT nextval('product_sku_seq');`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to fetch next SKU number: %w", err)
	}
	return n, nil
}

// SetStockQuantity overwrites the on-hand quantity from a manual stocktake.
func (r *PgxProductRepository) SetStockQuantity(ctx context.Context, productID string, quantity int64, userID string, now time.Time) error {
	query := `
		UPDATE products
		SET stock_quantity = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE product_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, productID, quantity, now, userID)
	if err != nil {
		return fmt.Errorf("failed to set stock quantity for product %s: %w", productID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// lockProductStock reads the current stock of a product inside tx, locking
// the row until the transaction ends.
func lockProductStock(ctx context.Context, tx pgx.Tx, productID string) (int64, error) {
	var onHand int64
	err := tx.QueryRow(ctx, `SELECT stock_quantity FROM products WHERE product_id = $1 FOR UPDATE;`, productID).Scan(&onHand)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
		}
		return 0, fmt.Errorf("failed to lock product %s: %w", productID, err)
	}
	return onHand, nil
}

// ReserveStockInTx decrements stock by qty within the caller's transaction,
// failing when fewer than qty units are on hand.
func (r *PgxProductRepository) ReserveStockInTx(ctx context.Context, tx pgx.Tx, productID string, qty int64, userID string, now time.Time) error {
	onHand, err := lockProductStock(ctx, tx, productID)
	if err != nil {
		return err
	}
	remaining, err := domain.ReserveStock(onHand, qty)
	if err != nil {
		return fmt.Errorf("product %s: %w", productID, err)
	}

	query := `
		UPDATE products
		SET stock_quantity = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE product_id = $1;
	`
	if _, err := tx.Exec(ctx, query, productID, remaining, now, userID); err != nil {
		return fmt.Errorf("failed to reserve stock for product %s: %w", productID, err)
	}
	return nil
}

// ReleaseStockInTx increments stock by qty within the caller's transaction.
func (r *PgxProductRepository) ReleaseStockInTx(ctx context.Context, tx pgx.Tx, productID string, qty int64, userID string, now time.Time) error {
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity + $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE product_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, productID, qty, now, userID)
	if err != nil {
		return fmt.Errorf("failed to release stock for product %s: %w", productID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return nil
}

// ReceiveStockInTx increments stock by qty and overwrites the product cost
// with the received unit cost, within the caller's transaction.
func (r *PgxProductRepository) ReceiveStockInTx(ctx context.Context, tx pgx.Tx, productID string, qty int64, unitCost decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity + $2,
		    cost_price = $3,
		    sale_price = ROUND($3 * (1 + margin_percent / 100), 2),
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE product_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, productID, qty, unitCost, now, userID)
	if err != nil {
		return fmt.Errorf("failed to receive stock for product %s: %w", productID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return nil
}
