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

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientColumns = `client_id, kind, name, cpf, legal_name, cnpj, state_registration, email, phone, cep, street, number, district, city, state, created_at, created_by, last_updated_at, last_updated_by`

func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.Kind,
		&m.Name,
		&m.CPF,
		&m.LegalName,
		&m.CNPJ,
		&m.StateRegistration,
		&m.Email,
		&m.Phone,
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

// SaveClient inserts a new client.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)

	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID,
		m.Kind,
		m.Name,
		m.CPF,
		m.LegalName,
		m.CNPJ,
		m.StateRegistration,
		m.Email,
		m.Phone,
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
			return fmt.Errorf("%w: client document already registered", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save client %s: %w", m.ClientID, err)
	}
	return nil
}

// FindClientByID retrieves a client by its ID.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`

	m, err := scanClient(r.Pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}

	d := mapping.ToDomainClient(m)
	return &d, nil
}

// ListClients retrieves clients ordered by display name.
func (r *PgxClientRepository) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		ORDER BY COALESCE(name, legal_name)
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}

	return mapping.ToDomainClientSlice(clients), nil
}

// HasServiceOrders reports whether any service order references the client.
func (r *PgxClientRepository) HasServiceOrders(ctx context.Context, clientID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM service_orders WHERE client_id = $1);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, clientID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check service orders for client %s: %w", clientID, err)
	}
	return exists, nil
}

// UpdateClient persists changes to an existing client. Kind and documents are
// immutable and not part of the update.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)

	query := `
		UPDATE clients
		SET name = $2,
		    legal_name = $3,
		    state_registration = $4,
		    email = $5,
		    phone = $6,
		    cep = $7,
		    street = $8,
		    number = $9,
		    district = $10,
		    city = $11,
		    state = $12,
		    last_updated_at = $13,
		    last_updated_by = $14
		WHERE client_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ClientID,
		m.Name,
		m.LegalName,
		m.StateRegistration,
		m.Email,
		m.Phone,
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
		return fmt.Errorf("failed to update client %s: %w", m.ClientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteClient removes a client.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
