package domain_test

import (
	"testing"
	"time"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestServiceOrder_TotalValue(t *testing.T) {
	tests := []struct {
		name  string
		order domain.ServiceOrder
		want  string
	}{
		{
			name: "labor plus one part line",
			order: domain.ServiceOrder{
				ServiceValue: decimal.NewFromInt(100),
				PartLines: []domain.PartLine{
					{Quantity: 2, UnitPrice: decimal.NewFromInt(25)},
				},
			},
			want: "150",
		},
		{
			name: "labor only",
			order: domain.ServiceOrder{
				ServiceValue: decimal.NewFromFloat(80.50),
			},
			want: "80.5",
		},
		{
			name: "multiple part lines",
			order: domain.ServiceOrder{
				ServiceValue: decimal.Zero,
				PartLines: []domain.PartLine{
					{Quantity: 3, UnitPrice: decimal.NewFromFloat(10.10)},
					{Quantity: 1, UnitPrice: decimal.NewFromFloat(0.99)},
				},
			},
			want: "31.29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.order.TotalValue().String())
		})
	}
}

func TestServiceOrder_Guards(t *testing.T) {
	open := domain.ServiceOrder{Status: domain.OrderOpen}
	closed := domain.ServiceOrder{Status: domain.OrderClosed}
	invoiced := domain.ServiceOrder{Status: domain.OrderInvoiced}

	assert.True(t, open.Editable())
	assert.False(t, closed.Editable())
	assert.False(t, invoiced.Editable())

	assert.True(t, open.Deletable())
	assert.True(t, closed.Deletable())
	assert.False(t, invoiced.Deletable())
}

func TestWithinPaymentTolerance(t *testing.T) {
	total := decimal.NewFromFloat(300.00)

	// Difference of exactly 0.01 is accepted.
	assert.True(t, domain.WithinPaymentTolerance(decimal.NewFromFloat(300.01), total))
	assert.True(t, domain.WithinPaymentTolerance(decimal.NewFromFloat(299.99), total))

	// 0.02 is out.
	assert.False(t, domain.WithinPaymentTolerance(decimal.NewFromFloat(300.02), total))
	assert.False(t, domain.WithinPaymentTolerance(decimal.NewFromFloat(299.98), total))
}

func TestSalePriceFrom(t *testing.T) {
	assert.Equal(t, "130", domain.SalePriceFrom(decimal.NewFromInt(100), decimal.NewFromInt(30)).String())
	assert.Equal(t, "55.13", domain.SalePriceFrom(decimal.NewFromFloat(36.75), decimal.NewFromInt(50)).String())
	assert.Equal(t, "20", domain.SalePriceFrom(decimal.NewFromInt(20), decimal.Zero).String())
}

func TestSplitInstallments(t *testing.T) {
	issue := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	due := time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC)

	parcels := domain.SplitInstallments("ALUGUEL", decimal.NewFromFloat(100.00), 3, issue, due)

	assert.Len(t, parcels, 3)
	// 100/3 rounds to 33.33; remainder of 0.01 lands on the first parcel.
	assert.Equal(t, "33.34", parcels[0].Amount.String())
	assert.Equal(t, "33.33", parcels[1].Amount.String())
	assert.Equal(t, "33.33", parcels[2].Amount.String())

	sum := decimal.Zero
	for _, p := range parcels {
		sum = sum.Add(p.Amount)
	}
	assert.Equal(t, "100", sum.String())

	assert.Equal(t, "ALUGUEL 1/3", parcels[0].Description)
	assert.Equal(t, "ALUGUEL 3/3", parcels[2].Description)
	assert.Equal(t, due, parcels[0].DueDate)
	assert.Equal(t, due.AddDate(0, 2, 0), parcels[2].DueDate)

	single := domain.SplitInstallments("FRETE", decimal.NewFromFloat(42.00), 1, issue, due)
	assert.Len(t, single, 1)
	assert.Equal(t, "FRETE", single[0].Description)
}
