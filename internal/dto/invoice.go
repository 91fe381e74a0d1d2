package dto

import (
	"time"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest is one payment line within an invoice.
type CreatePaymentRequest struct {
	Method           domain.PaymentMethod `json:"method" binding:"required,oneof=PIX BOLETO CARTAO DINHEIRO TRANSFERENCIA"`
	Amount           decimal.Decimal      `json:"amount" binding:"required"`
	DueDate          *time.Time           `json:"dueDate"`
	PixKey           string               `json:"pixKey"`
	InstallmentCount int                  `json:"installmentCount" binding:"omitempty,gte=1"`
}

// CreateInvoiceRequest defines the data needed to issue an invoice over one
// or more closed orders of the same client.
type CreateInvoiceRequest struct {
	OrderIDs []string               `json:"orderIDs" binding:"required,min=1"`
	IssuedAt *time.Time             `json:"issuedAt"`
	Payments []CreatePaymentRequest `json:"payments" binding:"required,min=1,dive"`
}

// PaymentResponse defines the data returned for a payment line.
type PaymentResponse struct {
	PaymentID        string               `json:"paymentID"`
	InvoiceID        string               `json:"invoiceID"`
	Method           domain.PaymentMethod `json:"method"`
	Amount           decimal.Decimal      `json:"amount"`
	DueDate          time.Time            `json:"dueDate"`
	PixKey           string               `json:"pixKey,omitempty"`
	InstallmentCount int                  `json:"installmentCount,omitempty"`
	Status           domain.PaymentStatus `json:"status"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string            `json:"invoiceID"`
	ClientID      string            `json:"clientID"`
	IssuedAt      time.Time         `json:"issuedAt"`
	OrderIDs      []string          `json:"orderIDs"`
	Payments      []PaymentResponse `json:"payments"`
	PaymentsTotal decimal.Decimal   `json:"paymentsTotal"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:        p.PaymentID,
		InvoiceID:        p.InvoiceID,
		Method:           p.Method,
		Amount:           p.Amount,
		DueDate:          p.DueDate,
		PixKey:           p.PixKey,
		InstallmentCount: p.InstallmentCount,
		Status:           p.Status,
	}
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	payments := make([]PaymentResponse, len(inv.Payments))
	for i, p := range inv.Payments {
		payments[i] = ToPaymentResponse(&p)
	}
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		ClientID:      inv.ClientID,
		IssuedAt:      inv.IssuedAt,
		OrderIDs:      inv.OrderIDs,
		Payments:      payments,
		PaymentsTotal: inv.PaymentsTotal(),
		CreatedAt:     inv.CreatedAt,
	}
}

// ToListInvoiceResponse converts a slice of domain.Invoice to response DTOs.
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv)
	}
	return res
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	ClientID string `form:"clientID"`
	Limit    int    `form:"limit,default=20"`
	Offset   int    `form:"offset,default=0"`
}

// ListInvoicesResponse wraps the list of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}
