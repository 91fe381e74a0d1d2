package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	"github.com/oficinasys/service_order_app/internal/core/domain"
	portsrepo "github.com/oficinasys/service_order_app/internal/core/ports/repositories"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/dto"
	"github.com/oficinasys/service_order_app/internal/middleware"
)

// invoiceService provides invoicing and payment settlement operations.
type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	orderRepo   portsrepo.OrderRepositoryFacade
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, orderRepo portsrepo.OrderRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// validateOrderSet checks that every requested order exists, all belong to
// one client, and all are CLOSED. Returns the client ID and the combined
// order total.
func (s *invoiceService) validateOrderSet(ctx context.Context, orderIDs []string) (string, decimal.Decimal, error) {
	orders, err := s.orderRepo.FindOrdersByIDs(ctx, orderIDs)
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("failed to fetch orders for invoice: %w", err)
	}
	if len(orders) != len(orderIDs) {
		return "", decimal.Zero, fmt.Errorf("%w: %d of %d orders found", apperrors.ErrInvalidOrderSet, len(orders), len(orderIDs))
	}

	clientID := orders[0].ClientID
	total := decimal.Zero
	for _, order := range orders {
		if order.ClientID != clientID {
			return "", decimal.Zero, fmt.Errorf("%w: orders belong to different clients", apperrors.ErrInvalidOrderSet)
		}
		if order.Status != domain.OrderClosed {
			return "", decimal.Zero, fmt.Errorf("%w: order %s is %s", apperrors.ErrInvalidOrderSet, order.OrderID, order.Status)
		}
		total = total.Add(order.TotalValue())
	}
	return clientID, total, nil
}

// CreateInvoice issues an invoice over closed orders of a single client. The
// payment lines must cover the order total within the accepted tolerance,
// and every linked order is flipped to INVOICED in the same transaction.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.OrderIDs) == 0 {
		return nil, fmt.Errorf("%w: invoice requires at least one order", apperrors.ErrInvalidOrderSet)
	}

	clientID, orderTotal, err := s.validateOrderSet(ctx, req.OrderIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	issuedAt := now
	if req.IssuedAt != nil {
		issuedAt = req.IssuedAt.UTC()
	}

	invoiceID := uuid.NewString()
	payments := make([]domain.Payment, len(req.Payments))
	paymentsSum := decimal.Zero
	for i, p := range req.Payments {
		if p.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
		}
		dueDate := issuedAt
		if p.DueDate != nil {
			dueDate = p.DueDate.UTC()
		}
		installments := p.InstallmentCount
		if installments < 1 {
			installments = 1
		}
		payments[i] = domain.Payment{
			PaymentID:        uuid.NewString(),
			InvoiceID:        invoiceID,
			Method:           p.Method,
			Amount:           p.Amount,
			DueDate:          dueDate,
			PixKey:           p.PixKey,
			InstallmentCount: installments,
			Status:           domain.PaymentPending,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		paymentsSum = paymentsSum.Add(p.Amount)
	}

	// The sum is compared before requiring a payment line, so an empty
	// payment list against a nonzero total reports the mismatch with both
	// values rather than the bare missing-method error.
	if !domain.WithinPaymentTolerance(paymentsSum, orderTotal) {
		return nil, fmt.Errorf("%w: payments sum %s, orders total %s", apperrors.ErrPaymentMismatch, paymentsSum.String(), orderTotal.String())
	}
	if len(payments) == 0 {
		return nil, apperrors.ErrMissingPaymentMethod
	}

	invoice := domain.Invoice{
		InvoiceID: invoiceID,
		ClientID:  clientID,
		IssuedAt:  issuedAt,
		OrderIDs:  req.OrderIDs,
		Payments:  payments,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		logger.Error("Failed to save invoice", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	logger.Info("Invoice issued", slog.String("invoice_id", invoice.InvoiceID), slog.String("client_id", clientID), slog.Int("orders", len(req.OrderIDs)))
	return &invoice, nil
}

// GetInvoiceByID retrieves an invoice with its payments and order IDs.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	return invoice, nil
}

// ListInvoices retrieves a paginated list of invoices.
func (s *invoiceService) ListInvoices(ctx context.Context, clientID string, limit int, offset int) ([]domain.Invoice, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	invoices, err := s.invoiceRepo.ListInvoices(ctx, clientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// CancelInvoice removes an invoice with no received payments, returning its
// orders to CLOSED.
func (s *invoiceService) CancelInvoice(ctx context.Context, invoiceID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to find invoice for cancellation: %w", err)
	}
	if invoice.HasReceivedPayment() {
		return fmt.Errorf("%w: invoice %s", apperrors.ErrInvoiceHasReceivedPayments, invoiceID)
	}

	now := time.Now().UTC()
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID, userID, now); err != nil {
		logger.Error("Failed to cancel invoice", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to cancel invoice: %w", err)
	}

	logger.Info("Invoice cancelled", slog.String("invoice_id", invoiceID))
	return nil
}

// ReceivePayment marks a payment as RECEIVED.
func (s *invoiceService) ReceivePayment(ctx context.Context, paymentID string, userID string) (*domain.Payment, error) {
	return s.setPaymentStatus(ctx, paymentID, domain.PaymentReceived, userID)
}

// ReversePayment returns a received payment to PENDING.
func (s *invoiceService) ReversePayment(ctx context.Context, paymentID string, userID string) (*domain.Payment, error) {
	return s.setPaymentStatus(ctx, paymentID, domain.PaymentPending, userID)
}

func (s *invoiceService) setPaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus, userID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payment, err := s.invoiceRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}

	now := time.Now().UTC()
	if err := s.invoiceRepo.UpdatePaymentStatus(ctx, paymentID, status, userID, now); err != nil {
		logger.Error("Failed to update payment status", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	logger.Info("Payment status updated", slog.String("payment_id", paymentID), slog.String("status", string(status)))

	payment.Status = status
	payment.LastUpdatedAt = now
	payment.LastUpdatedBy = userID
	return payment, nil
}
