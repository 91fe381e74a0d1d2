package mapping

import (
	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/oficinasys/service_order_app/internal/models"
)

// ToModelInvoice converts a domain Invoice header to a model Invoice.
// Order links and payments are persisted separately.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:   d.InvoiceID,
		ClientID:    d.ClientID,
		IssuedAt:    d.IssuedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice header to a domain Invoice.
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:   m.InvoiceID,
		ClientID:    m.ClientID,
		IssuedAt:    m.IssuedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPayment converts a domain Payment to a model Payment.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:        d.PaymentID,
		InvoiceID:        d.InvoiceID,
		Method:           string(d.Method),
		Amount:           d.Amount,
		DueDate:          d.DueDate,
		PixKey:           strPtr(d.PixKey),
		InstallmentCount: d.InstallmentCount,
		Status:           models.PaymentStatus(d.Status),
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:        m.PaymentID,
		InvoiceID:        m.InvoiceID,
		Method:           domain.PaymentMethod(m.Method),
		Amount:           m.Amount,
		DueDate:          m.DueDate,
		PixKey:           strVal(m.PixKey),
		InstallmentCount: m.InstallmentCount,
		Status:           domain.PaymentStatus(m.Status),
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments.
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
