package repositories

import (
	"context"
	"time"

	"github.com/oficinasys/service_order_app/internal/core/domain"
)

// ListPayablesFilter narrows a payables listing.
type ListPayablesFilter struct {
	SupplierID string
	Status     domain.PayableStatus
	From       *time.Time
	To         *time.Time
}

// PayableReader defines read operations for accounts payable.
type PayableReader interface {
	// FindPayableByID retrieves a payable by its unique identifier.
	FindPayableByID(ctx context.Context, payableID string) (*domain.PayableAccount, error)

	// ListPayables retrieves payables matching the filter, ordered by due date.
	ListPayables(ctx context.Context, filter ListPayablesFilter, limit int, offset int) ([]domain.PayableAccount, error)

	// ListPendingPayables retrieves PENDING payables due within the window,
	// ordered by due date.
	ListPendingPayables(ctx context.Context, from time.Time, to time.Time) ([]domain.PayableAccount, error)
}

// PayableWriter defines write operations for accounts payable.
type PayableWriter interface {
	// SavePayables persists a batch of payables in one transaction. A single
	// registration producing several installments saves them all or none.
	SavePayables(ctx context.Context, payables []domain.PayableAccount) error

	// UpdatePayable persists changes to a pending payable.
	UpdatePayable(ctx context.Context, payable domain.PayableAccount) error

	// UpdatePayableStatus flips a payable between PENDING and PAID, stamping
	// or clearing the payment date.
	UpdatePayableStatus(ctx context.Context, payableID string, status domain.PayableStatus, paidAt *time.Time, userID string, now time.Time) error

	// DeletePayable removes a payable.
	DeletePayable(ctx context.Context, payableID string) error
}

// PayableRepositoryFacade combines all payable-related repository interfaces.
type PayableRepositoryFacade interface {
	PayableReader
	PayableWriter
}
