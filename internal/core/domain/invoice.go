package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates accepted settlement methods.
type PaymentMethod string

const (
	MethodPix      PaymentMethod = "PIX"
	MethodBoleto   PaymentMethod = "BOLETO"
	MethodCard     PaymentMethod = "CARTAO"
	MethodCash     PaymentMethod = "DINHEIRO"
	MethodTransfer PaymentMethod = "TRANSFERENCIA"
)

// PaymentStatus tracks whether an installment has been settled.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentReceived PaymentStatus = "RECEIVED"
)

// PaymentTolerance is the maximum accepted absolute difference between the
// sum of an invoice's payment lines and the sum of its order totals.
var PaymentTolerance = decimal.NewFromFloat(0.01)

// Invoice groups one or more closed service orders of a single client with
// one or more payment lines.
type Invoice struct {
	InvoiceID string    `json:"invoiceID"` // Primary Key (UUID)
	ClientID  string    `json:"clientID"`
	IssuedAt  time.Time `json:"issuedAt"`
	OrderIDs  []string  `json:"orderIDs"`
	Payments  []Payment `json:"payments"`
	AuditFields
}

// Payment is one installment/method line within an invoice.
type Payment struct {
	PaymentID        string          `json:"paymentID"` // Primary Key (UUID)
	InvoiceID        string          `json:"invoiceID"`
	Method           PaymentMethod   `json:"method"`
	Amount           decimal.Decimal `json:"amount"`
	DueDate          time.Time       `json:"dueDate"`
	PixKey           string          `json:"pixKey,omitempty"`
	InstallmentCount int             `json:"installmentCount"`
	Status           PaymentStatus   `json:"status"`
	AuditFields
}

// PaymentsTotal sums the invoice's payment lines.
func (inv Invoice) PaymentsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range inv.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// HasReceivedPayment reports whether any payment line has been settled.
// An invoice with a received payment cannot be cancelled.
func (inv Invoice) HasReceivedPayment() bool {
	for _, p := range inv.Payments {
		if p.Status == PaymentReceived {
			return true
		}
	}
	return false
}

// WithinPaymentTolerance reports whether a payments sum matches an order
// total within PaymentTolerance.
func WithinPaymentTolerance(paymentsSum, orderTotal decimal.Decimal) bool {
	return paymentsSum.Sub(orderTotal).Abs().LessThanOrEqual(PaymentTolerance)
}
