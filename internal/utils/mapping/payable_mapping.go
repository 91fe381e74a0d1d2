package mapping

import (
	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/oficinasys/service_order_app/internal/models"
)

// ToModelPayable converts a domain PayableAccount to a model PayableAccount.
func ToModelPayable(d domain.PayableAccount) models.PayableAccount {
	return models.PayableAccount{
		PayableID:   d.PayableID,
		Description: d.Description,
		SupplierID:  strPtr(d.SupplierID),
		Amount:      d.Amount,
		IssueDate:   d.IssueDate,
		DueDate:     d.DueDate,
		Status:      models.PayableStatus(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayable converts a model PayableAccount to a domain PayableAccount.
func ToDomainPayable(m models.PayableAccount) domain.PayableAccount {
	return domain.PayableAccount{
		PayableID:   m.PayableID,
		Description: m.Description,
		SupplierID:  strVal(m.SupplierID),
		Amount:      m.Amount,
		IssueDate:   m.IssueDate,
		DueDate:     m.DueDate,
		Status:      domain.PayableStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPayableSlice converts a slice of model PayableAccounts.
func ToDomainPayableSlice(ms []models.PayableAccount) []domain.PayableAccount {
	ds := make([]domain.PayableAccount, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayable(m)
	}
	return ds
}

// ToModelUser converts a domain User to a model User.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		IsAdmin:      d.IsAdmin,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		IsAdmin:      m.IsAdmin,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
