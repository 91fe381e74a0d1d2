package domain_test

import (
	"testing"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserveStock(t *testing.T) {
	tests := []struct {
		name          string
		onHand        int64
		qty           int64
		wantRemaining int64
		wantErr       bool
	}{
		{name: "deducts exactly", onHand: 10, qty: 3, wantRemaining: 7},
		{name: "reserving all on hand leaves zero", onHand: 5, qty: 5, wantRemaining: 0},
		{name: "one unit short", onHand: 4, qty: 5, wantRemaining: 4, wantErr: true},
		{name: "nothing on hand", onHand: 0, qty: 1, wantRemaining: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining, err := domain.ReserveStock(tt.onHand, tt.qty)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantRemaining, remaining)
		})
	}
}

func TestReserveStockDrainsToZeroThenFails(t *testing.T) {
	remaining, err := domain.ReserveStock(5, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), remaining)

	remaining, err = domain.ReserveStock(remaining, 1)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	assert.Equal(t, int64(0), remaining)
}

func TestStockEntryLine_Total(t *testing.T) {
	line := domain.StockEntryLine{Quantity: 4, UnitCost: decimal.NewFromFloat(12.50)}
	assert.Equal(t, "50", line.Total().String())
}
