package services

import (
	"context"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/oficinasys/service_order_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices.
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice with its payments and order IDs.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated list of invoices, most recent first.
	ListInvoices(ctx context.Context, clientID string, limit int, offset int) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines invoice issuance and cancellation.
type InvoiceWriterSvc interface {
	// CreateInvoice issues an invoice over closed orders of a single client.
	// The payments must cover the order total within the accepted tolerance.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error)

	// CancelInvoice removes an invoice with no received payments, returning
	// its orders to CLOSED.
	CancelInvoice(ctx context.Context, invoiceID string, userID string) error
}

// PaymentSvc defines payment settlement operations.
type PaymentSvc interface {
	// ReceivePayment marks a payment as RECEIVED.
	ReceivePayment(ctx context.Context, paymentID string, userID string) (*domain.Payment, error)

	// ReversePayment returns a received payment to PENDING.
	ReversePayment(ctx context.Context, paymentID string, userID string) (*domain.Payment, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces.
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
	PaymentSvc
}
