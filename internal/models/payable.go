package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayableStatus mirrors domain.PayableStatus at the persistence layer.
type PayableStatus string

const (
	PayablePending PayableStatus = "PENDING"
	PayablePaid    PayableStatus = "PAID"
)

// PayableAccount maps to the payable_accounts table.
type PayableAccount struct {
	PayableID   string
	Description string
	SupplierID  *string
	Amount      decimal.Decimal
	IssueDate   time.Time
	DueDate     time.Time
	Status      PayableStatus
	AuditFields
}
