package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PayableStatus tracks settlement of a supplier obligation.
type PayableStatus string

const (
	PayablePending PayableStatus = "PENDING"
	PayablePaid    PayableStatus = "PAID"
)

// PayableAccount is an obligation owed to a supplier, independent of service
// orders. An installment split produces one PayableAccount per parcel.
type PayableAccount struct {
	PayableID   string          `json:"payableID"` // Primary Key (UUID)
	Description string          `json:"description"`
	SupplierID  string          `json:"supplierID,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	IssueDate   time.Time       `json:"issueDate"`
	DueDate     time.Time       `json:"dueDate"`
	Status      PayableStatus   `json:"status"`
	AuditFields
}

// SplitInstallments divides a total into n monthly parcels of equal rounded
// value, adding the rounding remainder to the first parcel so the parcels
// always sum back to the total. Due dates advance one month per parcel from
// firstDueDate. Descriptions are suffixed "i/n" when n > 1.
func SplitInstallments(description string, total decimal.Decimal, n int, issueDate, firstDueDate time.Time) []PayableAccount {
	if n < 1 {
		n = 1
	}
	parcel := total.Div(decimal.NewFromInt(int64(n))).Round(2)
	remainder := total.Sub(parcel.Mul(decimal.NewFromInt(int64(n))))

	parcels := make([]PayableAccount, n)
	for i := 0; i < n; i++ {
		amount := parcel
		if i == 0 {
			amount = amount.Add(remainder)
		}
		desc := description
		if n > 1 {
			desc = fmt.Sprintf("%s %d/%d", description, i+1, n)
		}
		parcels[i] = PayableAccount{
			Description: desc,
			Amount:      amount,
			IssueDate:   issueDate,
			DueDate:     firstDueDate.AddDate(0, i, 0),
			Status:      PayablePending,
		}
	}
	return parcels
}
