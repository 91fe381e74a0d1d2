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

type PgxSupplierRepository struct {
	BaseRepository
}

// newPgxSupplierRepository creates a new repository for supplier data.
func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

const supplierColumns = `supplier_id, legal_name, trade_name, cnpj, phone, email, cep, street, number, district, city, state, created_at, created_by, last_updated_at, last_updated_by`

func scanSupplier(row pgx.Row) (models.Supplier, error) {
	var m models.Supplier
	err := row.Scan(
		&m.SupplierID,
		&m.LegalName,
		&m.TradeName,
		&m.CNPJ,
		&m.Phone,
		&m.Email,
		&m.CEP,
		&m.Street,
		&m.Number,
		&m.District,
		&m.City,
		&m.State,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveSupplier inserts a new supplier.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)

	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SupplierID,
		m.LegalName,
		m.TradeName,
		m.CNPJ,
		m.Phone,
		m.Email,
		m.CEP,
		m.Street,
		m.Number,
		m.District,
		m.City,
		m.State,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: supplier CNPJ already registered", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save supplier %s: %w", m.SupplierID, err)
	}
	return nil
}

// FindSupplierByID retrieves a supplier by its ID.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1;`

	m, err := scanSupplier(r.Pool.QueryRow(ctx, query, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier by ID %s: %w", supplierID, err)
	}

	d := mapping.ToDomainSupplier(m)
	return &d, nil
}

// ListSuppliers retrieves suppliers ordered by legal name.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	query := `
		SELECT ` + supplierColumns + `
		FROM suppliers
		ORDER BY legal_name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []models.Supplier{}
	for rows.Next() {
		m, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}

	return mapping.ToDomainSupplierSlice(suppliers), nil
}

// UpdateSupplier persists changes to an existing supplier.
func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)

	query := `
		UPDATE suppliers
		SET legal_name = $2,
		    trade_name = $3,
		    phone = $4,
		    email = $5,
		    cep = $6,
		    street = $7,
		    number = $8,
		    district = $9,
		    city = $10,
		    state = $11,
		    last_updated_at = $12,
		    last_updated_by = $13
		WHERE supplier_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.SupplierID,
		m.LegalName,
		m.TradeName,
		m.Phone,
		m.Email,
		m.CEP,
		m.Street,
		m.Number,
		m.District,
		m.City,
		m.State,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier %s: %w", m.SupplierID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSupplier removes a supplier.
func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM suppliers WHERE supplier_id = $1;`, supplierID)
	if err != nil {
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
