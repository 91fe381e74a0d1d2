package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	portsrepo "github.com/oficinasys/service_order_app/internal/core/ports/repositories"
	"github.com/oficinasys/service_order_app/internal/models"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// completedOrderTotals aggregates each completed order opened in [from, to)
// into one row: service value plus the sum of its part lines. Revenue windows
// follow the order's creation date, not its closing date.
const completedOrderTotals = `
	SELECT
		so.order_id,
		so.client_id,
		so.opened_at,
		so.service_value,
		COALESCE(SUM(pl.quantity * pl.unit_price), 0) AS parts_total
	FROM service_orders so
	LEFT JOIN part_lines pl ON pl.order_id = so.order_id
	WHERE so.status IN ('CLOSED', 'INVOICED')
		AND so.opened_at >= $1
		AND so.opened_at < $2
	GROUP BY so.order_id
`

// GetRevenueBetween sums completed order totals whose opened-at falls in [from, to).
func (r *reportingRepository) GetRevenueBetween(ctx context.Context, from time.Time, to time.Time) (domain.BillingSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(o.service_value + o.parts_total), 0) AS total_billed,
			COALESCE(SUM(o.service_value), 0) AS total_services,
			COALESCE(SUM(o.parts_total), 0) AS total_parts,
			COUNT(*) AS order_count
		FROM (` + completedOrderTotals + `) o
	`

	var summary domain.BillingSummary
	err := r.Pool.QueryRow(ctx, query, from, to).Scan(
		&summary.TotalBilled,
		&summary.TotalServices,
		&summary.TotalParts,
		&summary.OrderCount,
	)
	if err != nil {
		return domain.BillingSummary{}, fmt.Errorf("error querying revenue summary: %w", err)
	}

	if summary.OrderCount > 0 {
		summary.AverageTicket = summary.TotalBilled.DivRound(decimal.NewFromInt(int64(summary.OrderCount)), 2)
	} else {
		summary.AverageTicket = decimal.Zero
	}
	return summary, nil
}

// GetRevenueByMonth returns one point per calendar month in [from, to),
// zero-filled for months without revenue. from must be the first day of a month.
func (r *reportingRepository) GetRevenueByMonth(ctx context.Context, from time.Time, to time.Time) ([]domain.MonthlyRevenuePoint, error) {
	query := `
		SELECT
			m.month,
			COALESCE(SUM(o.service_value + o.parts_total), 0) AS revenue
		FROM generate_series($1::timestamptz, $2::timestamptz - interval '1 month', interval '1 month') AS m(month)
		LEFT JOIN (` + completedOrderTotals + `) o
			ON date_trunc('month', o.opened_at) = m.month
		GROUP BY m.month
		ORDER BY m.month
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying monthly revenue: %w", err)
	}
	defer rows.Close()

	var series []domain.MonthlyRevenuePoint
	for rows.Next() {
		var point domain.MonthlyRevenuePoint
		if err := rows.Scan(&point.Month, &point.Revenue); err != nil {
			return nil, fmt.Errorf("error scanning monthly revenue row: %w", err)
		}
		series = append(series, point)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly revenue rows: %w", err)
	}

	if series == nil {
		series = []domain.MonthlyRevenuePoint{}
	}
	return series, nil
}

// CountOrdersByStatus counts orders currently in the given status.
func (r *reportingRepository) CountOrdersByStatus(ctx context.Context, status domain.OrderStatus) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM service_orders WHERE status = $1`,
		models.OrderStatus(status),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting orders by status: %w", err)
	}
	return count, nil
}

// GetBillingByClient aggregates completed order totals per client for
// opened-at in [from, to), largest first.
func (r *reportingRepository) GetBillingByClient(ctx context.Context, from time.Time, to time.Time) ([]domain.ClientBillingRow, error) {
	query := `
		SELECT
			c.client_id,
			COALESCE(c.name, c.legal_name) AS client_name,
			COUNT(*) AS order_count,
			SUM(o.service_value + o.parts_total) AS total_billed
		FROM (` + completedOrderTotals + `) o
		JOIN clients c ON c.client_id = o.client_id
		GROUP BY c.client_id, COALESCE(c.name, c.legal_name)
		ORDER BY total_billed DESC, client_name
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying billing by client: %w", err)
	}
	defer rows.Close()

	var result []domain.ClientBillingRow
	for rows.Next() {
		var row domain.ClientBillingRow
		if err := rows.Scan(&row.ClientID, &row.ClientName, &row.OrderCount, &row.TotalBilled); err != nil {
			return nil, fmt.Errorf("error scanning billing by client row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating billing by client rows: %w", err)
	}

	if result == nil {
		result = []domain.ClientBillingRow{}
	}
	return result, nil
}
