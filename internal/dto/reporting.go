package dto

import (
	"time"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlyRevenuePointResponse is one month of the dashboard revenue chart.
type MonthlyRevenuePointResponse struct {
	Month   string          `json:"month"` // YYYY-MM
	Revenue decimal.Decimal `json:"revenue"`
}

// DashboardResponse represents the dashboard report response.
type DashboardResponse struct {
	MonthRevenue    decimal.Decimal               `json:"monthRevenue"`
	CompletedOrders int                           `json:"completedOrders"`
	OpenOrders      int                           `json:"openOrders"`
	AverageTicket   decimal.Decimal               `json:"averageTicket"`
	RevenueByMonth  []MonthlyRevenuePointResponse `json:"revenueByMonth"`
}

// BillingResponse represents the billing report response for a period.
type BillingResponse struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	Summary  struct {
		TotalBilled   decimal.Decimal `json:"totalBilled"`
		TotalServices decimal.Decimal `json:"totalServices"`
		TotalParts    decimal.Decimal `json:"totalParts"`
		OrderCount    int             `json:"orderCount"`
		AverageTicket decimal.Decimal `json:"averageTicket"`
	} `json:"summary"`
}

// ClientBillingRowResponse represents one client's row in the billing-by-client report.
type ClientBillingRowResponse struct {
	ClientID    string          `json:"clientID"`
	ClientName  string          `json:"clientName"`
	OrderCount  int             `json:"orderCount"`
	TotalBilled decimal.Decimal `json:"totalBilled"`
}

// BillingByClientResponse represents the billing-by-client report response.
type BillingByClientResponse struct {
	FromDate string                     `json:"fromDate"`
	ToDate   string                     `json:"toDate"`
	Rows     []ClientBillingRowResponse `json:"rows"`
}

// CashFlowItemResponse is one projected movement in the cash flow report.
type CashFlowItemResponse struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Inflow      decimal.Decimal `json:"inflow"`
	Outflow     decimal.Decimal `json:"outflow"`
	Balance     decimal.Decimal `json:"balance"`
}

// CashFlowResponse represents the projected cash flow report response.
type CashFlowResponse struct {
	FromDate string                 `json:"fromDate"`
	ToDate   string                 `json:"toDate"`
	Items    []CashFlowItemResponse `json:"items"`
	Summary  struct {
		TotalInflow  decimal.Decimal `json:"totalInflow"`
		TotalOutflow decimal.Decimal `json:"totalOutflow"`
		NetBalance   decimal.Decimal `json:"netBalance"`
	} `json:"summary"`
}

// ReportPeriodParams defines the date range shared by the period reports.
type ReportPeriodParams struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// ToDashboardResponse converts a domain.DashboardSummary to a DTO response.
func ToDashboardResponse(s *domain.DashboardSummary) DashboardResponse {
	points := make([]MonthlyRevenuePointResponse, len(s.RevenueByMonth))
	for i, p := range s.RevenueByMonth {
		points[i] = MonthlyRevenuePointResponse{
			Month:   p.Month.Format("2006-01"),
			Revenue: p.Revenue,
		}
	}
	return DashboardResponse{
		MonthRevenue:    s.MonthRevenue,
		CompletedOrders: s.CompletedOrders,
		OpenOrders:      s.OpenOrders,
		AverageTicket:   s.AverageTicket,
		RevenueByMonth:  points,
	}
}

// ToBillingResponse converts a domain.BillingSummary to a DTO response.
func ToBillingResponse(s *domain.BillingSummary, from, to time.Time) BillingResponse {
	response := BillingResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
	}
	response.Summary.TotalBilled = s.TotalBilled
	response.Summary.TotalServices = s.TotalServices
	response.Summary.TotalParts = s.TotalParts
	response.Summary.OrderCount = s.OrderCount
	response.Summary.AverageTicket = s.AverageTicket
	return response
}

// ToBillingByClientResponse converts domain billing rows to a DTO response.
func ToBillingByClientResponse(rows []domain.ClientBillingRow, from, to time.Time) BillingByClientResponse {
	response := BillingByClientResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
		Rows:     make([]ClientBillingRowResponse, len(rows)),
	}
	for i, row := range rows {
		response.Rows[i] = ClientBillingRowResponse{
			ClientID:    row.ClientID,
			ClientName:  row.ClientName,
			OrderCount:  row.OrderCount,
			TotalBilled: row.TotalBilled,
		}
	}
	return response
}

// ToCashFlowResponse converts domain cash flow items to a DTO response.
func ToCashFlowResponse(items []domain.CashFlowItem, from, to time.Time) CashFlowResponse {
	response := CashFlowResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
		Items:    make([]CashFlowItemResponse, len(items)),
	}

	totalInflow := decimal.Zero
	totalOutflow := decimal.Zero
	for i, item := range items {
		response.Items[i] = CashFlowItemResponse{
			Date:        item.Date.Format("2006-01-02"),
			Description: item.Description,
			Inflow:      item.Inflow,
			Outflow:     item.Outflow,
			Balance:     item.Balance,
		}
		totalInflow = totalInflow.Add(item.Inflow)
		totalOutflow = totalOutflow.Add(item.Outflow)
	}

	response.Summary.TotalInflow = totalInflow
	response.Summary.TotalOutflow = totalOutflow
	response.Summary.NetBalance = totalInflow.Sub(totalOutflow)
	return response
}
