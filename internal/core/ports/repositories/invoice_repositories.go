package repositories

import (
	"context"
	"time"

	"github.com/oficinasys/service_order_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoices and payments.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice with its payments and order IDs.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices most recent first, optionally filtered
	// by client.
	ListInvoices(ctx context.Context, clientID string, limit int, offset int) ([]domain.Invoice, error)

	// FindPaymentByID retrieves a single payment.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPendingPayments retrieves PENDING payments due within the window,
	// ordered by due date.
	ListPendingPayments(ctx context.Context, from time.Time, to time.Time) ([]domain.Payment, error)
}

// InvoiceWriter defines write operations for invoices and payments.
type InvoiceWriter interface {
	// SaveInvoice persists the invoice, its payments and its order links, and
	// moves every linked order from CLOSED to INVOICED in one transaction.
	// The status flip verifies its affected row count; any order no longer
	// CLOSED rolls the whole invoice back.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice removes the invoice with its payments and links, and
	// returns the linked orders to CLOSED, in one transaction.
	DeleteInvoice(ctx context.Context, invoiceID string, userID string, now time.Time) error

	// UpdatePaymentStatus flips a payment between PENDING and RECEIVED.
	UpdatePaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus, userID string, now time.Time) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
