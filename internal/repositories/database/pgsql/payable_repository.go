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
)

type PgxPayableRepository struct {
	BaseRepository
}

// newPgxPayableRepository creates a new repository for accounts payable.
func newPgxPayableRepository(pool *pgxpool.Pool) portsrepo.PayableRepositoryFacade {
	return &PgxPayableRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PayableRepositoryFacade = (*PgxPayableRepository)(nil)

const payableColumns = `payable_id, description, supplier_id, amount, issue_date, due_date, status, created_at, created_by, last_updated_at, last_updated_by`

func scanPayable(row pgx.Row) (models.PayableAccount, error) {
	var m models.PayableAccount
	err := row.Scan(
		&m.PayableID,
		&m.Description,
		&m.SupplierID,
		&m.Amount,
		&m.IssueDate,
		&m.DueDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePayables persists a batch of payables in one transaction, so an
// installment split saves all parcels or none.
func (r *PgxPayableRepository) SavePayables(ctx context.Context, payables []domain.PayableAccount) error {
	if len(payables) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	query := `
		INSERT INTO payable_accounts (` + payableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, p := range payables {
		m := mapping.ToModelPayable(p)
		batch.Queue(query,
			m.PayableID,
			m.Description,
			m.SupplierID,
			m.Amount,
			m.IssueDate,
			m.DueDate,
			m.Status,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert payable batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindPayableByID retrieves a payable by its ID.
func (r *PgxPayableRepository) FindPayableByID(ctx context.Context, payableID string) (*domain.PayableAccount, error) {
	query := `SELECT ` + payableColumns + ` FROM payable_accounts WHERE payable_id = $1;`

	m, err := scanPayable(r.Pool.QueryRow(ctx, query, payableID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payable by ID %s: %w", payableID, err)
	}

	d := mapping.ToDomainPayable(m)
	return &d, nil
}

// ListPayables retrieves payables matching the filter, ordered by due date.
func (r *PgxPayableRepository) ListPayables(ctx context.Context, filter portsrepo.ListPayablesFilter, limit int, offset int) ([]domain.PayableAccount, error) {
	query := `SELECT ` + payableColumns + ` FROM payable_accounts WHERE 1=1`
	args := []interface{}{}

	if filter.SupplierID != "" {
		args = append(args, filter.SupplierID)
		query += ` AND supplier_id = $` + strconv.Itoa(len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND due_date >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND due_date < $` + strconv.Itoa(len(args))
	}

	args = append(args, limit, offset)
	query += ` ORDER BY due_date, created_at LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payables: %w", err)
	}
	defer rows.Close()

	payables := []models.PayableAccount{}
	for rows.Next() {
		m, err := scanPayable(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payable row: %w", err)
		}
		payables = append(payables, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payable rows: %w", err)
	}

	return mapping.ToDomainPayableSlice(payables), nil
}

// ListPendingPayables retrieves PENDING payables due in [from, to), ordered
// by due date.
func (r *PgxPayableRepository) ListPendingPayables(ctx context.Context, from time.Time, to time.Time) ([]domain.PayableAccount, error) {
	query := `
		SELECT ` + payableColumns + `
		FROM payable_accounts
		WHERE status = $1 AND due_date >= $2 AND due_date < $3
		ORDER BY due_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, models.PayablePending, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending payables: %w", err)
	}
	defer rows.Close()

	payables := []models.PayableAccount{}
	for rows.Next() {
		m, err := scanPayable(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pending payable row: %w", err)
		}
		payables = append(payables, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending payable rows: %w", err)
	}

	return mapping.ToDomainPayableSlice(payables), nil
}

// UpdatePayable persists changes to a pending payable.
func (r *PgxPayableRepository) UpdatePayable(ctx context.Context, payable domain.PayableAccount) error {
	m := mapping.ToModelPayable(payable)

	query := `
		UPDATE payable_accounts
		SET description = $2,
		    supplier_id = $3,
		    amount = $4,
		    due_date = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE payable_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.PayableID,
		m.Description,
		m.SupplierID,
		m.Amount,
		m.DueDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payable %s: %w", m.PayableID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdatePayableStatus flips a payable between PENDING and PAID, stamping or
// clearing the payment date.
func (r *PgxPayableRepository) UpdatePayableStatus(ctx context.Context, payableID string, status domain.PayableStatus, paidAt *time.Time, userID string, now time.Time) error {
	query := `
		UPDATE payable_accounts
		SET status = $2,
		    paid_at = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE payable_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, payableID, status, paidAt, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update status of payable %s: %w", payableID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePayable removes a payable.
func (r *PgxPayableRepository) DeletePayable(ctx context.Context, payableID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM payable_accounts WHERE payable_id = $1;`, payableID)
	if err != nil {
		return fmt.Errorf("failed to delete payable %s: %w", payableID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
