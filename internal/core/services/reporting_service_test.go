package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockInvoiceRepo   *MockInvoiceRepository
	mockPayableRepo   *MockPayableRepository
	service           portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockPayableRepo = new(MockPayableRepository)
	suite.service = services.NewReportingService(suite.mockReportingRepo, suite.mockInvoiceRepo, suite.mockPayableRepo)
}

func (suite *ReportingServiceTestSuite) TestGetDashboard() {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	seriesStart := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	monthSummary := domain.BillingSummary{
		TotalBilled:   decimal.NewFromInt(1200),
		OrderCount:    4,
		AverageTicket: decimal.NewFromInt(300),
	}
	series := []domain.MonthlyRevenuePoint{
		{Month: seriesStart, Revenue: decimal.Zero},
		{Month: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Revenue: decimal.NewFromInt(500)},
		{Month: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Revenue: decimal.Zero},
		{Month: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), Revenue: decimal.NewFromInt(900)},
		{Month: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), Revenue: decimal.NewFromInt(750)},
		{Month: monthStart, Revenue: decimal.NewFromInt(1200)},
	}

	suite.mockReportingRepo.On("GetRevenueBetween", ctx, monthStart, nextMonth).Return(monthSummary, nil).Once()
	suite.mockReportingRepo.On("CountOrdersByStatus", ctx, domain.OrderOpen).Return(int64(3), nil).Once()
	suite.mockReportingRepo.On("GetRevenueByMonth", ctx, seriesStart, nextMonth).Return(series, nil).Once()

	dashboard, err := suite.service.GetDashboard(ctx, now)

	suite.Require().NoError(err)
	suite.True(dashboard.MonthRevenue.Equal(decimal.NewFromInt(1200)))
	suite.Equal(4, dashboard.CompletedOrders)
	suite.Equal(3, dashboard.OpenOrders)
	suite.True(dashboard.AverageTicket.Equal(decimal.NewFromInt(300)))
	suite.Len(dashboard.RevenueByMonth, 6)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetCashFlow_MergeAndRunningBalance() {
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	day5 := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	day10 := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	day20 := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	payments := []domain.Payment{
		{Method: domain.MethodPix, Amount: decimal.NewFromInt(500), DueDate: day10},
		{Method: domain.MethodBoleto, Amount: decimal.NewFromInt(300), DueDate: day20},
	}
	payables := []domain.PayableAccount{
		{Description: "Parts order 1/2", Amount: decimal.NewFromInt(200), DueDate: day5},
		{Description: "Rent", Amount: decimal.NewFromInt(400), DueDate: day10},
	}

	suite.mockInvoiceRepo.On("ListPendingPayments", ctx, from, to).Return(payments, nil).Once()
	suite.mockPayableRepo.On("ListPendingPayables", ctx, from, to).Return(payables, nil).Once()

	items, err := suite.service.GetCashFlow(ctx, from, to)

	suite.Require().NoError(err)
	suite.Require().Len(items, 4)

	// Ordered by due date; same-day items keep inflow-before-outflow order
	suite.Equal(day5, items[0].Date)
	suite.Equal("Parts order 1/2", items[0].Description)
	suite.True(items[0].Balance.Equal(decimal.NewFromInt(-200)))

	suite.Equal(day10, items[1].Date)
	suite.Equal("Invoice payment (PIX)", items[1].Description)
	suite.True(items[1].Balance.Equal(decimal.NewFromInt(300)))

	suite.Equal(day10, items[2].Date)
	suite.Equal("Rent", items[2].Description)
	suite.True(items[2].Balance.Equal(decimal.NewFromInt(-100)))

	suite.Equal(day20, items[3].Date)
	suite.Equal("Invoice payment (BOLETO)", items[3].Description)
	suite.True(items[3].Balance.Equal(decimal.NewFromInt(200)))
}

func (suite *ReportingServiceTestSuite) TestGetCashFlow_Empty() {
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	suite.mockInvoiceRepo.On("ListPendingPayments", ctx, from, to).Return([]domain.Payment{}, nil).Once()
	suite.mockPayableRepo.On("ListPendingPayables", ctx, from, to).Return([]domain.PayableAccount{}, nil).Once()

	items, err := suite.service.GetCashFlow(ctx, from, to)

	suite.Require().NoError(err)
	suite.Empty(items)
}

func (suite *ReportingServiceTestSuite) TestGetBillingSummary() {
	ctx := context.Background()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	summary := domain.BillingSummary{
		TotalBilled:   decimal.NewFromInt(5000),
		TotalServices: decimal.NewFromInt(3500),
		TotalParts:    decimal.NewFromInt(1500),
		OrderCount:    10,
		AverageTicket: decimal.NewFromInt(500),
	}

	suite.mockReportingRepo.On("GetRevenueBetween", ctx, from, to).Return(summary, nil).Once()

	got, err := suite.service.GetBillingSummary(ctx, from, to)

	suite.Require().NoError(err)
	suite.True(got.TotalBilled.Equal(decimal.NewFromInt(5000)))
	suite.Equal(10, got.OrderCount)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
