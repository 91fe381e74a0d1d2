package services

import (
	"context"
	"time"

	"github.com/oficinasys/service_order_app/internal/core/domain"
)

// ReportingService defines the read-only reports built over completed orders
// and pending settlements.
type ReportingService interface {
	// GetDashboard computes the landing-page summary as of now: current-month
	// revenue, completed and open order counts, average ticket, and the
	// six-month revenue series.
	GetDashboard(ctx context.Context, now time.Time) (*domain.DashboardSummary, error)

	// GetBillingSummary aggregates completed orders closed in [from, to).
	GetBillingSummary(ctx context.Context, from time.Time, to time.Time) (*domain.BillingSummary, error)

	// GetBillingByClient aggregates completed orders per client for [from, to),
	// largest first.
	GetBillingByClient(ctx context.Context, from time.Time, to time.Time) ([]domain.ClientBillingRow, error)

	// GetCashFlow merges pending invoice payments (inflows) and pending
	// payables (outflows) due in [from, to] into one due-date-ordered series
	// with a running balance.
	GetCashFlow(ctx context.Context, from time.Time, to time.Time) ([]domain.CashFlowItem, error)
}
