package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus mirrors domain.PaymentStatus at the persistence layer.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentReceived PaymentStatus = "RECEIVED"
)

// Invoice maps to the invoices table. Orders are linked through the
// invoice_orders join table.
type Invoice struct {
	InvoiceID string
	ClientID  string
	IssuedAt  time.Time
	AuditFields
}

// Payment maps to the payments table.
type Payment struct {
	PaymentID        string
	InvoiceID        string
	Method           string
	Amount           decimal.Decimal
	DueDate          time.Time
	PixKey           *string
	InstallmentCount int
	Status           PaymentStatus
	AuditFields
}
