package services

import (
	"context"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/oficinasys/service_order_app/internal/core/ports/repositories"
	"github.com/oficinasys/service_order_app/internal/dto"
)

// OrderReaderSvc defines read operations for service orders.
type OrderReaderSvc interface {
	// GetOrderByID retrieves an order with its part lines.
	GetOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrder, error)

	// ListOrders retrieves orders matching the filter with token pagination.
	ListOrders(ctx context.Context, filter repositories.ListOrdersFilter, limit int, nextToken string) ([]domain.ServiceOrder, string, error)
}

// OrderWriterSvc defines write operations for service orders.
type OrderWriterSvc interface {
	// CreateOrder opens a new order, snapshotting part prices and reserving
	// stock for any initial part lines.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, userID string) (*domain.ServiceOrder, error)

	// UpdateOrder updates an open order's header fields.
	UpdateOrder(ctx context.Context, orderID string, req dto.UpdateOrderRequest, userID string) (*domain.ServiceOrder, error)

	// DeleteOrder removes a non-invoiced order, releasing its reserved stock.
	DeleteOrder(ctx context.Context, orderID string, userID string) error
}

// OrderLifecycleSvc defines the order state transitions.
type OrderLifecycleSvc interface {
	// CloseOrder moves an open order to CLOSED, stamping the close time.
	CloseOrder(ctx context.Context, orderID string, userID string) (*domain.ServiceOrder, error)

	// ReopenOrder moves a closed order back to OPEN. Invoiced orders cannot
	// be reopened until their invoice is cancelled.
	ReopenOrder(ctx context.Context, orderID string, userID string) (*domain.ServiceOrder, error)
}

// OrderPartsSvc defines part-line management on open orders.
type OrderPartsSvc interface {
	// AddPartLine appends a part to an open order, snapshotting the product's
	// description and sale price and reserving stock.
	AddPartLine(ctx context.Context, orderID string, req dto.CreatePartLineRequest, userID string) (*domain.ServiceOrder, error)

	// RemovePartLine removes a part from an open order, releasing its stock.
	RemovePartLine(ctx context.Context, orderID string, lineID string, userID string) (*domain.ServiceOrder, error)
}

// OrderSvcFacade combines all order-related service interfaces.
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
	OrderLifecycleSvc
	OrderPartsSvc
}
