package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	"github.com/oficinasys/service_order_app/internal/core/domain"
	portsrepo "github.com/oficinasys/service_order_app/internal/core/ports/repositories"
	"github.com/oficinasys/service_order_app/internal/models"
	"github.com/oficinasys/service_order_app/internal/utils/mapping"
	"github.com/oficinasys/service_order_app/internal/utils/pagination"
)

type PgxOrderRepository struct {
	BaseRepository
	productRepo portsrepo.ProductRepositoryFacade
}

// newPgxOrderRepository creates a new repository for service orders and their
// part lines. The product repository supplies the in-transaction stock
// primitives so reservations commit together with line changes.
func newPgxOrderRepository(pool *pgxpool.Pool, productRepo portsrepo.ProductRepositoryFacade) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
		productRepo:    productRepo,
	}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

const orderColumns = `order_id, client_id, problem_description, status, service_value, opened_at, closed_at, created_at, created_by, last_updated_at, last_updated_by`

const partLineColumns = `part_line_id, order_id, product_id, description, quantity, unit_price, created_at, created_by, last_updated_at, last_updated_by`

func scanOrder(row pgx.Row) (models.ServiceOrder, error) {
	var m models.ServiceOrder
	err := row.Scan(
		&m.OrderID,
		&m.ClientID,
		&m.ProblemDescription,
		&m.Status,
		&m.ServiceValue,
		&m.OpenedAt,
		&m.ClosedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanPartLine(row pgx.Row) (models.PartLine, error) {
	var m models.PartLine
	err := row.Scan(
		&m.PartLineID,
		&m.OrderID,
		&m.ProductID,
		&m.Description,
		&m.Quantity,
		&m.UnitPrice,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// insertPartLine inserts a single part line within tx.
func insertPartLine(ctx context.Context, tx pgx.Tx, line models.PartLine) error {
	query := `
		INSERT INTO part_lines (` + partLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		line.PartLineID,
		line.OrderID,
		line.ProductID,
		line.Description,
		line.Quantity,
		line.UnitPrice,
		line.CreatedAt,
		line.CreatedBy,
		line.LastUpdatedAt,
		line.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert part line %s: %w", line.PartLineID, err)
	}
	return nil
}

// SaveOrder persists a new order and its part lines, reserving stock for
// every line in the same transaction.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.ServiceOrder) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelServiceOrder(order)
	query := `
		INSERT INTO service_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, query,
		m.OrderID,
		m.ClientID,
		m.ProblemDescription,
		m.Status,
		m.ServiceValue,
		m.OpenedAt,
		m.ClosedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order %s: %w", m.OrderID, err)
	}

	for _, line := range order.PartLines {
		if err := r.productRepo.ReserveStockInTx(ctx, tx, line.ProductID, line.Quantity, order.CreatedBy, order.CreatedAt); err != nil {
			return err
		}
		if err := insertPartLine(ctx, tx, mapping.ToModelPartLine(line)); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// findPartLinesByOrderIDs retrieves the part lines of several orders at once,
// keyed by order ID.
func (r *PgxOrderRepository) findPartLinesByOrderIDs(ctx context.Context, orderIDs []string) (map[string][]domain.PartLine, error) {
	if len(orderIDs) == 0 {
		return map[string][]domain.PartLine{}, nil
	}

	query := `
		SELECT ` + partLineColumns + `
		FROM part_lines
		WHERE order_id = ANY($1)
		ORDER BY order_id, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query part lines: %w", err)
	}
	defer rows.Close()

	linesMap := make(map[string][]domain.PartLine)
	for rows.Next() {
		m, err := scanPartLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan part line row: %w", err)
		}
		d := mapping.ToDomainPartLine(m)
		linesMap[d.OrderID] = append(linesMap[d.OrderID], d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating part line rows: %w", err)
	}

	return linesMap, nil
}

// FindOrderByID retrieves an order with its part lines.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrder, error) {
	query := `SELECT ` + orderColumns + ` FROM service_orders WHERE order_id = $1;`

	m, err := scanOrder(r.Pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order by ID %s: %w", orderID, err)
	}

	linesMap, err := r.findPartLinesByOrderIDs(ctx, []string{orderID})
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainServiceOrder(m)
	d.PartLines = linesMap[orderID]
	return &d, nil
}

// FindOrdersByIDs retrieves several orders at once, part lines included.
// Missing IDs are simply absent from the result.
func (r *PgxOrderRepository) FindOrdersByIDs(ctx context.Context, orderIDs []string) ([]domain.ServiceOrder, error) {
	if len(orderIDs) == 0 {
		return []domain.ServiceOrder{}, nil
	}

	query := `SELECT ` + orderColumns + ` FROM service_orders WHERE order_id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders by IDs: %w", err)
	}
	defer rows.Close()

	orders := []models.ServiceOrder{}
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row during batch fetch: %w", err)
		}
		orders = append(orders, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows during batch fetch: %w", err)
	}

	linesMap, err := r.findPartLinesByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ServiceOrder, len(orders))
	for i, m := range orders {
		d := mapping.ToDomainServiceOrder(m)
		d.PartLines = linesMap[d.OrderID]
		result[i] = d
	}
	return result, nil
}

// ListOrders retrieves orders matching the filter, most recent first, using
// token-based keyset pagination on (opened_at, created_at).
func (r *PgxOrderRepository) ListOrders(ctx context.Context, filter portsrepo.ListOrdersFilter, limit int, nextToken string) ([]domain.ServiceOrder, string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + orderColumns + ` FROM service_orders WHERE 1=1`
	args := []interface{}{}

	if filter.ClientID != "" {
		args = append(args, filter.ClientID)
		baseQuery += ` AND client_id = $` + strconv.Itoa(len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		baseQuery += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		baseQuery += ` AND opened_at >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		baseQuery += ` AND opened_at < $` + strconv.Itoa(len(args))
	}

	if nextToken != "" {
		lastOpenedAt, lastCreatedAt, decodeErr := pagination.DecodeToken(nextToken)
		if decodeErr != nil {
			return nil, "", fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		args = append(args, lastOpenedAt, lastCreatedAt)
		baseQuery += ` AND (opened_at, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + ` ORDER BY opened_at DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.ServiceOrder, 0, fetchLimit)
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("error iterating order rows: %w", err)
	}

	var newToken string
	if len(orders) > limit {
		last := orders[limit-1]
		newToken = pagination.EncodeToken(last.OpenedAt, last.CreatedAt)
		orders = orders[:limit]
	}

	orderIDs := make([]string, len(orders))
	for i, m := range orders {
		orderIDs[i] = m.OrderID
	}
	linesMap, err := r.findPartLinesByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, "", err
	}

	result := make([]domain.ServiceOrder, len(orders))
	for i, m := range orders {
		d := mapping.ToDomainServiceOrder(m)
		d.PartLines = linesMap[d.OrderID]
		result[i] = d
	}
	return result, newToken, nil
}

// FindPartLineByID retrieves a single part line.
func (r *PgxOrderRepository) FindPartLineByID(ctx context.Context, lineID string) (*domain.PartLine, error) {
	query := `SELECT ` + partLineColumns + ` FROM part_lines WHERE part_line_id = $1;`

	m, err := scanPartLine(r.Pool.QueryRow(ctx, query, lineID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find part line by ID %s: %w", lineID, err)
	}

	d := mapping.ToDomainPartLine(m)
	return &d, nil
}

// UpdateOrder persists header changes.
func (r *PgxOrderRepository) UpdateOrder(ctx context.Context, order domain.ServiceOrder) error {
	m := mapping.ToModelServiceOrder(order)

	query := `
		UPDATE service_orders
		SET client_id = $2,
		    problem_description = $3,
		    service_value = $4,
		    opened_at = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE order_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.OrderID,
		m.ClientID,
		m.ProblemDescription,
		m.ServiceValue,
		m.OpenedAt,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update order %s: %w", m.OrderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateOrderStatus moves the order to a new status, stamping or clearing the
// closed-at timestamp.
func (r *PgxOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, closedAt *time.Time, userID string, now time.Time) error {
	query := `
		UPDATE service_orders
		SET status = $2,
		    closed_at = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE order_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, orderID, status, closedAt, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update status of order %s: %w", orderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteOrder removes the order and its part lines, releasing reserved stock
// in the same transaction.
func (r *PgxOrderRepository) DeleteOrder(ctx context.Context, orderID string, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	rows, err := tx.Query(ctx, `SELECT product_id, quantity FROM part_lines WHERE order_id = $1;`, orderID)
	if err != nil {
		return fmt.Errorf("failed to query part lines of order %s: %w", orderID, err)
	}
	type lineStock struct {
		productID string
		quantity  int64
	}
	lines := []lineStock{}
	for rows.Next() {
		var l lineStock
		if err := rows.Scan(&l.productID, &l.quantity); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan part line of order %s: %w", orderID, err)
		}
		lines = append(lines, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating part lines of order %s: %w", orderID, err)
	}

	for _, l := range lines {
		if err := r.productRepo.ReleaseStockInTx(ctx, tx, l.productID, l.quantity, userID, now); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM part_lines WHERE order_id = $1;`, orderID); err != nil {
		return fmt.Errorf("failed to delete part lines of order %s: %w", orderID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM service_orders WHERE order_id = $1;`, orderID)
	if err != nil {
		return fmt.Errorf("failed to delete order %s: %w", orderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// AddPartLine appends a line to an order, reserving its stock in the same
// transaction.
func (r *PgxOrderRepository) AddPartLine(ctx context.Context, orderID string, line domain.PartLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.productRepo.ReserveStockInTx(ctx, tx, line.ProductID, line.Quantity, line.CreatedBy, line.CreatedAt); err != nil {
		return err
	}

	m := mapping.ToModelPartLine(line)
	m.OrderID = orderID
	if err := insertPartLine(ctx, tx, m); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// RemovePartLine deletes a line, releasing its stock in the same transaction.
func (r *PgxOrderRepository) RemovePartLine(ctx context.Context, lineID string, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var productID string
	var quantity int64
	err = tx.QueryRow(ctx, `SELECT product_id, quantity FROM part_lines WHERE part_line_id = $1 FOR UPDATE;`, lineID).Scan(&productID, &quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to find part line %s for removal: %w", lineID, err)
	}

	if err := r.productRepo.ReleaseStockInTx(ctx, tx, productID, quantity, userID, now); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM part_lines WHERE part_line_id = $1;`, lineID); err != nil {
		return fmt.Errorf("failed to delete part line %s: %w", lineID, err)
	}

	return r.Commit(ctx, tx)
}
