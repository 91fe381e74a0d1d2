package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	"github.com/oficinasys/service_order_app/internal/core/domain"
	portsrepo "github.com/oficinasys/service_order_app/internal/core/ports/repositories"
	"github.com/oficinasys/service_order_app/internal/models"
	"github.com/oficinasys/service_order_app/internal/utils/mapping"
)

type PgxStockEntryRepository struct {
	BaseRepository
	productRepo portsrepo.ProductRepositoryFacade
}

// newPgxStockEntryRepository creates a new repository for goods receipts.
func newPgxStockEntryRepository(pool *pgxpool.Pool, productRepo portsrepo.ProductRepositoryFacade) portsrepo.StockEntryRepositoryFacade {
	return &PgxStockEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
		productRepo:    productRepo,
	}
}

var _ portsrepo.StockEntryRepositoryFacade = (*PgxStockEntryRepository)(nil)

const stockEntryColumns = `entry_id, supplier_id, entry_date, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanStockEntry(row pgx.Row) (models.StockEntry, error) {
	var m models.StockEntry
	err := row.Scan(
		&m.EntryID,
		&m.SupplierID,
		&m.EntryDate,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveStockEntry persists the entry and its lines. Every line increments its
// product's stock and overwrites the product cost, all in one transaction.
func (r *PgxStockEntryRepository) SaveStockEntry(ctx context.Context, entry domain.StockEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelStockEntry(entry)
	query := `
		INSERT INTO stock_entries (` + stockEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, query,
		m.EntryID,
		m.SupplierID,
		m.EntryDate,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert stock entry %s: %w", m.EntryID, err)
	}

	lineQuery := `
		INSERT INTO stock_entry_lines (line_id, entry_id, product_id, quantity, unit_cost)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, line := range entry.Lines {
		ml := mapping.ToModelStockEntryLine(line)
		if _, err := tx.Exec(ctx, lineQuery, ml.LineID, ml.EntryID, ml.ProductID, ml.Quantity, ml.UnitCost); err != nil {
			return fmt.Errorf("failed to insert stock entry line %s: %w", ml.LineID, err)
		}
		if err := r.productRepo.ReceiveStockInTx(ctx, tx, line.ProductID, line.Quantity, line.UnitCost, entry.CreatedBy, entry.CreatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// findLinesByEntryIDs retrieves the lines of several entries, keyed by entry ID.
func (r *PgxStockEntryRepository) findLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.StockEntryLine, error) {
	if len(entryIDs) == 0 {
		return map[string][]domain.StockEntryLine{}, nil
	}

	query := `
		SELECT line_id, entry_id, product_id, quantity, unit_cost
		FROM stock_entry_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock entry lines: %w", err)
	}
	defer rows.Close()

	linesMap := make(map[string][]domain.StockEntryLine)
	for rows.Next() {
		var m models.StockEntryLine
		if err := rows.Scan(&m.LineID, &m.EntryID, &m.ProductID, &m.Quantity, &m.UnitCost); err != nil {
			return nil, fmt.Errorf("failed to scan stock entry line row: %w", err)
		}
		d := mapping.ToDomainStockEntryLine(m)
		linesMap[d.EntryID] = append(linesMap[d.EntryID], d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock entry line rows: %w", err)
	}

	return linesMap, nil
}

// FindStockEntryByID retrieves an entry with its lines.
func (r *PgxStockEntryRepository) FindStockEntryByID(ctx context.Context, entryID string) (*domain.StockEntry, error) {
	query := `SELECT ` + stockEntryColumns + ` FROM stock_entries WHERE entry_id = $1;`

	m, err := scanStockEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find stock entry by ID %s: %w", entryID, err)
	}

	linesMap, err := r.findLinesByEntryIDs(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainStockEntry(m)
	d.Lines = linesMap[entryID]
	return &d, nil
}

// ListStockEntries retrieves entries most recent first.
func (r *PgxStockEntryRepository) ListStockEntries(ctx context.Context, limit int, offset int) ([]domain.StockEntry, error) {
	query := `
		SELECT ` + stockEntryColumns + `
		FROM stock_entries
		ORDER BY entry_date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock entries: %w", err)
	}
	defer rows.Close()

	entries := []models.StockEntry{}
	for rows.Next() {
		m, err := scanStockEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock entry row: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock entry rows: %w", err)
	}

	entryIDs := make([]string, len(entries))
	for i, m := range entries {
		entryIDs[i] = m.EntryID
	}
	linesMap, err := r.findLinesByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}

	result := make([]domain.StockEntry, len(entries))
	for i, m := range entries {
		d := mapping.ToDomainStockEntry(m)
		d.Lines = linesMap[d.EntryID]
		result[i] = d
	}
	return result, nil
}
