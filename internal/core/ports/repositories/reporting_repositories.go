package repositories

import (
	"context"
	"time"

	"github.com/oficinasys/service_order_app/internal/core/domain"
)

// ReportingRepository defines the aggregate queries behind the dashboard and
// billing reports. All figures come from completed (CLOSED or INVOICED)
// orders unless stated otherwise.
type ReportingRepository interface {
	// GetRevenueBetween sums completed order totals whose closed-at falls in
	// [from, to).
	GetRevenueBetween(ctx context.Context, from time.Time, to time.Time) (domain.BillingSummary, error)

	// GetRevenueByMonth returns one point per calendar month in [from, to),
	// zero-filled for months without revenue.
	GetRevenueByMonth(ctx context.Context, from time.Time, to time.Time) ([]domain.MonthlyRevenuePoint, error)

	// CountOrdersByStatus counts orders currently in the given status.
	CountOrdersByStatus(ctx context.Context, status domain.OrderStatus) (int64, error)

	// GetBillingByClient aggregates completed order totals per client for
	// closed-at in [from, to), largest first.
	GetBillingByClient(ctx context.Context, from time.Time, to time.Time) ([]domain.ClientBillingRow, error)
}
