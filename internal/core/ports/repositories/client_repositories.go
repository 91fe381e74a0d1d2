package repositories

import (
	"context"

	"github.com/oficinasys/service_order_app/internal/core/domain"
)

// ClientReader defines read operations for client data.
type ClientReader interface {
	// FindClientByID retrieves a specific client by its unique identifier.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves clients ordered by display name.
	ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error)

	// HasServiceOrders reports whether any service order references the client.
	HasServiceOrders(ctx context.Context, clientID string) (bool, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	// SaveClient persists a new client. Unique violations surface as apperrors.ErrDuplicate.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient persists changes to an existing client.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}

// SupplierReader defines read operations for supplier data.
type SupplierReader interface {
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
}

// SupplierWriter defines write operations for supplier data.
type SupplierWriter interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// SupplierRepositoryFacade combines all supplier-related repository interfaces.
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}
