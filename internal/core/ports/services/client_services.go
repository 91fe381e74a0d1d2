package services

import (
	"context"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/oficinasys/service_order_app/internal/dto"
)

// ClientReaderSvc defines read operations for client data.
type ClientReaderSvc interface {
	// GetClientByID retrieves a specific client by its unique identifier.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves a paginated list of clients ordered by display name.
	ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client data.
type ClientWriterSvc interface {
	// CreateClient registers a new client.
	CreateClient(ctx context.Context, req dto.CreateClientRequest, userID string) (*domain.Client, error)

	// UpdateClient updates an existing client's details.
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error)

	// DeleteClient removes a client without service orders.
	DeleteClient(ctx context.Context, clientID string, userID string) error
}

// ClientSvcFacade combines all client-related service interfaces.
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}

// SupplierReaderSvc defines read operations for supplier data.
type SupplierReaderSvc interface {
	// GetSupplierByID retrieves a specific supplier by its unique identifier.
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves a paginated list of suppliers ordered by legal name.
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
}

// SupplierWriterSvc defines write operations for supplier data.
type SupplierWriterSvc interface {
	// CreateSupplier registers a new supplier.
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error)

	// UpdateSupplier updates an existing supplier's details.
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error)

	// DeleteSupplier removes a supplier.
	DeleteSupplier(ctx context.Context, supplierID string, userID string) error
}

// SupplierSvcFacade combines all supplier-related service interfaces.
type SupplierSvcFacade interface {
	SupplierReaderSvc
	SupplierWriterSvc
}
