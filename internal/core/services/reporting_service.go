package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	portsrepo "github.com/oficinasys/service_order_app/internal/core/ports/repositories"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
)

const revenueSeriesMonths = 6

// reportingService builds the dashboard, billing and cash flow reports.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
	invoiceRepo   portsrepo.InvoiceRepositoryFacade
	payableRepo   portsrepo.PayableRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, invoiceRepo portsrepo.InvoiceRepositoryFacade, payableRepo portsrepo.PayableRepositoryFacade) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: reportingRepo,
		invoiceRepo:   invoiceRepo,
		payableRepo:   payableRepo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// GetDashboard computes the landing-page summary: current-month revenue and
// ticket, open order count, and the trailing six-month revenue series.
func (s *reportingService) GetDashboard(ctx context.Context, now time.Time) (*domain.DashboardSummary, error) {
	now = now.UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)
	seriesStart := monthStart.AddDate(0, -(revenueSeriesMonths - 1), 0)

	monthSummary, err := s.reportingRepo.GetRevenueBetween(ctx, monthStart, nextMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to compute month revenue: %w", err)
	}

	openCount, err := s.reportingRepo.CountOrdersByStatus(ctx, domain.OrderOpen)
	if err != nil {
		return nil, fmt.Errorf("failed to count open orders: %w", err)
	}

	series, err := s.reportingRepo.GetRevenueByMonth(ctx, seriesStart, nextMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to compute revenue series: %w", err)
	}

	return &domain.DashboardSummary{
		MonthRevenue:    monthSummary.TotalBilled,
		CompletedOrders: monthSummary.OrderCount,
		OpenOrders:      int(openCount),
		AverageTicket:   monthSummary.AverageTicket,
		RevenueByMonth:  series,
	}, nil
}

// GetBillingSummary aggregates completed orders opened in [from, to).
func (s *reportingService) GetBillingSummary(ctx context.Context, from time.Time, to time.Time) (*domain.BillingSummary, error) {
	summary, err := s.reportingRepo.GetRevenueBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute billing summary: %w", err)
	}
	return &summary, nil
}

// GetBillingByClient aggregates completed orders per client, largest first.
func (s *reportingService) GetBillingByClient(ctx context.Context, from time.Time, to time.Time) ([]domain.ClientBillingRow, error) {
	rows, err := s.reportingRepo.GetBillingByClient(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute billing by client: %w", err)
	}
	return rows, nil
}

// GetCashFlow merges pending invoice payments (inflows) and pending payables
// (outflows) due in the window into one due-date-ordered series with a
// running balance.
func (s *reportingService) GetCashFlow(ctx context.Context, from time.Time, to time.Time) ([]domain.CashFlowItem, error) {
	payments, err := s.invoiceRepo.ListPendingPayments(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending payments: %w", err)
	}
	payables, err := s.payableRepo.ListPendingPayables(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending payables: %w", err)
	}

	items := make([]domain.CashFlowItem, 0, len(payments)+len(payables))
	for _, p := range payments {
		items = append(items, domain.CashFlowItem{
			Date:        p.DueDate,
			Description: fmt.Sprintf("Invoice payment (%s)", p.Method),
			Inflow:      p.Amount,
			Outflow:     decimal.Zero,
		})
	}
	for _, p := range payables {
		items = append(items, domain.CashFlowItem{
			Date:        p.DueDate,
			Description: p.Description,
			Inflow:      decimal.Zero,
			Outflow:     p.Amount,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})

	balance := decimal.Zero
	for i := range items {
		balance = balance.Add(items[i].Inflow).Sub(items[i].Outflow)
		items[i].Balance = balance
	}
	return items, nil
}
