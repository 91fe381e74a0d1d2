package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyRevenuePoint is one month of completed-order revenue for the
// dashboard chart. Month is the first day of the month.
type MonthlyRevenuePoint struct {
	Month   time.Time       `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DashboardSummary backs the landing-page cards: current-month figures plus
// the six-month revenue series in chronological order.
type DashboardSummary struct {
	MonthRevenue     decimal.Decimal       `json:"monthRevenue"`
	CompletedOrders  int                   `json:"completedOrders"`
	OpenOrders       int                   `json:"openOrders"`
	AverageTicket    decimal.Decimal       `json:"averageTicket"`
	RevenueByMonth   []MonthlyRevenuePoint `json:"revenueByMonth"`
}

// BillingSummary aggregates the invoices matched by a billing-report filter.
type BillingSummary struct {
	TotalBilled   decimal.Decimal `json:"totalBilled"`
	TotalServices decimal.Decimal `json:"totalServices"`
	TotalParts    decimal.Decimal `json:"totalParts"`
	OrderCount    int             `json:"orderCount"`
	AverageTicket decimal.Decimal `json:"averageTicket"`
}

// ClientBillingRow ranks one client by completed-order value over a period.
type ClientBillingRow struct {
	ClientID    string          `json:"clientID"`
	ClientName  string          `json:"clientName"`
	OrderCount  int             `json:"orderCount"`
	TotalBilled decimal.Decimal `json:"totalBilled"`
}

// CashFlowItem is one projected movement: a pending invoice payment
// (inflow) or a pending payable account (outflow). Balance is the running
// balance after this item, in due-date order.
type CashFlowItem struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Inflow      decimal.Decimal `json:"inflow"`
	Outflow     decimal.Decimal `json:"outflow"`
	Balance     decimal.Decimal `json:"balance"`
}
