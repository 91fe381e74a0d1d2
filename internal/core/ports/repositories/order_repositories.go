package repositories

import (
	"context"
	"time"

	"github.com/oficinasys/service_order_app/internal/core/domain"
)

// ListOrdersFilter narrows an order listing.
type ListOrdersFilter struct {
	ClientID string
	Status   domain.OrderStatus
	From     *time.Time
	To       *time.Time
}

// OrderReader defines read operations for service orders.
type OrderReader interface {
	// FindOrderByID retrieves an order with its part lines.
	FindOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrder, error)

	// FindOrdersByIDs retrieves several orders at once, part lines included.
	FindOrdersByIDs(ctx context.Context, orderIDs []string) ([]domain.ServiceOrder, error)

	// ListOrders retrieves orders matching the filter, most recent first.
	// nextToken is non-empty when more rows remain.
	ListOrders(ctx context.Context, filter ListOrdersFilter, limit int, nextToken string) ([]domain.ServiceOrder, string, error)

	// FindPartLineByID retrieves a single part line.
	FindPartLineByID(ctx context.Context, lineID string) (*domain.PartLine, error)
}

// OrderWriter defines write operations for service orders.
type OrderWriter interface {
	// SaveOrder persists a new order and its part lines, reserving stock for
	// each line in the same transaction.
	SaveOrder(ctx context.Context, order domain.ServiceOrder) error

	// UpdateOrder persists header changes (client, description, service value).
	UpdateOrder(ctx context.Context, order domain.ServiceOrder) error

	// UpdateOrderStatus moves the order to a new status, stamping or clearing
	// the closed-at timestamp as appropriate.
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, closedAt *time.Time, userID string, now time.Time) error

	// DeleteOrder removes the order and its part lines, releasing reserved
	// stock in the same transaction.
	DeleteOrder(ctx context.Context, orderID string, userID string, now time.Time) error

	// AddPartLine appends a line to an order and reserves its stock in the
	// same transaction.
	AddPartLine(ctx context.Context, orderID string, line domain.PartLine) error

	// RemovePartLine deletes a line and releases its stock in the same
	// transaction.
	RemovePartLine(ctx context.Context, lineID string, userID string, now time.Time) error
}

// OrderRepositoryFacade combines all order-related repository interfaces.
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
