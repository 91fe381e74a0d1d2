package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	"github.com/oficinasys/service_order_app/internal/core/domain"
	portsrepo "github.com/oficinasys/service_order_app/internal/core/ports/repositories"
	"github.com/oficinasys/service_order_app/internal/models"
	"github.com/oficinasys/service_order_app/internal/utils/mapping"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoices and payments.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, client_id, issued_at, created_at, created_by, last_updated_at, last_updated_by`

const paymentColumns = `payment_id, invoice_id, method, amount, due_date, pix_key, installment_count, status, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.ClientID,
		&m.IssuedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.PaymentID,
		&m.InvoiceID,
		&m.Method,
		&m.Amount,
		&m.DueDate,
		&m.PixKey,
		&m.InstallmentCount,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveInvoice persists the invoice, its payments and its order links, and
// flips every linked order from CLOSED to INVOICED in one transaction. An
// order that is no longer CLOSED makes the whole insert roll back.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, query,
		m.InvoiceID,
		m.ClientID,
		m.IssuedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invoice %s: %w", m.InvoiceID, err)
	}

	batch := &pgx.Batch{}
	paymentQuery := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	for _, p := range invoice.Payments {
		mp := mapping.ToModelPayment(p)
		batch.Queue(paymentQuery,
			mp.PaymentID,
			mp.InvoiceID,
			mp.Method,
			mp.Amount,
			mp.DueDate,
			mp.PixKey,
			mp.InstallmentCount,
			mp.Status,
			mp.CreatedAt,
			mp.CreatedBy,
			mp.LastUpdatedAt,
			mp.LastUpdatedBy,
		)
	}
	linkQuery := `INSERT INTO invoice_orders (invoice_id, order_id) VALUES ($1, $2);`
	for _, orderID := range invoice.OrderIDs {
		batch.Queue(linkQuery, m.InvoiceID, orderID)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to insert payments and order links for invoice %s: %w", m.InvoiceID, err)
	}

	// Flip orders CLOSED -> INVOICED. The affected-row check guarantees no
	// order was concurrently reopened or invoiced elsewhere.
	flipQuery := `
		UPDATE service_orders
		SET status = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE order_id = ANY($1) AND status = $5;
	`
	cmdTag, err := tx.Exec(ctx, flipQuery, invoice.OrderIDs, models.OrderInvoiced, m.CreatedAt, m.CreatedBy, models.OrderClosed)
	if err != nil {
		return fmt.Errorf("failed to mark orders invoiced for invoice %s: %w", m.InvoiceID, err)
	}
	if cmdTag.RowsAffected() != int64(len(invoice.OrderIDs)) {
		return fmt.Errorf("%w: %d of %d orders were closed at invoicing time", apperrors.ErrInvalidOrderSet, cmdTag.RowsAffected(), len(invoice.OrderIDs))
	}

	return r.Commit(ctx, tx)
}

// findOrderIDsByInvoiceID retrieves the linked order IDs of an invoice.
func (r *PgxInvoiceRepository) findOrderIDsByInvoiceID(ctx context.Context, invoiceID string) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT order_id FROM invoice_orders WHERE invoice_id = $1 ORDER BY order_id;`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order links of invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	orderIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan order link of invoice %s: %w", invoiceID, err)
		}
		orderIDs = append(orderIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order links of invoice %s: %w", invoiceID, err)
	}
	return orderIDs, nil
}

// findPaymentsByInvoiceID retrieves the payments of an invoice.
func (r *PgxInvoiceRepository) findPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE invoice_id = $1 ORDER BY due_date, created_at;`

	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments of invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row of invoice %s: %w", invoiceID, err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows of invoice %s: %w", invoiceID, err)
	}

	return mapping.ToDomainPaymentSlice(payments), nil
}

// FindInvoiceByID retrieves an invoice with its payments and order IDs.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`

	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}

	d := mapping.ToDomainInvoice(m)
	if d.OrderIDs, err = r.findOrderIDsByInvoiceID(ctx, invoiceID); err != nil {
		return nil, err
	}
	if d.Payments, err = r.findPaymentsByInvoiceID(ctx, invoiceID); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListInvoices retrieves invoices most recent first, optionally filtered by
// client. Payments and order links are loaded per invoice.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, clientID string, limit int, offset int) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	args := []interface{}{}
	if clientID != "" {
		query += ` WHERE client_id = $1`
		args = append(args, clientID)
	}
	query += fmt.Sprintf(` ORDER BY issued_at DESC, created_at DESC LIMIT $%d OFFSET $%d;`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := []models.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", err)
	}

	result := make([]domain.Invoice, len(invoices))
	for i, m := range invoices {
		d := mapping.ToDomainInvoice(m)
		if d.OrderIDs, err = r.findOrderIDsByInvoiceID(ctx, d.InvoiceID); err != nil {
			return nil, err
		}
		if d.Payments, err = r.findPaymentsByInvoiceID(ctx, d.InvoiceID); err != nil {
			return nil, err
		}
		result[i] = d
	}
	return result, nil
}

// FindPaymentByID retrieves a single payment.
func (r *PgxInvoiceRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`

	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}

	d := mapping.ToDomainPayment(m)
	return &d, nil
}

// ListPendingPayments retrieves PENDING payments due in [from, to), ordered
// by due date.
func (r *PgxInvoiceRepository) ListPendingPayments(ctx context.Context, from time.Time, to time.Time) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE status = $1 AND due_date >= $2 AND due_date < $3
		ORDER BY due_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, models.PaymentPending, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending payments: %w", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pending payment row: %w", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending payment rows: %w", err)
	}

	return mapping.ToDomainPaymentSlice(payments), nil
}

// DeleteInvoice removes the invoice with its payments and links, returning
// the linked orders to CLOSED, in one transaction.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string, userID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	revertQuery := `
		UPDATE service_orders
		SET status = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE order_id IN (SELECT order_id FROM invoice_orders WHERE invoice_id = $1);
	`
	if _, err := tx.Exec(ctx, revertQuery, invoiceID, models.OrderClosed, now, userID); err != nil {
		return fmt.Errorf("failed to revert orders of invoice %s: %w", invoiceID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_orders WHERE invoice_id = $1;`, invoiceID); err != nil {
		return fmt.Errorf("failed to delete order links of invoice %s: %w", invoiceID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE invoice_id = $1;`, invoiceID); err != nil {
		return fmt.Errorf("failed to delete payments of invoice %s: %w", invoiceID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// UpdatePaymentStatus flips a payment between PENDING and RECEIVED.
func (r *PgxInvoiceRepository) UpdatePaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus, userID string, now time.Time) error {
	query := `
		UPDATE payments
		SET status = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE payment_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, paymentID, status, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update status of payment %s: %w", paymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
