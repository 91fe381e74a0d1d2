package mapping

import (
	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/oficinasys/service_order_app/internal/models"
)

// ToModelClient converts a domain Client to a model Client.
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:          d.ClientID,
		Kind:              models.ClientKind(d.Kind),
		Name:              strPtr(d.Name),
		CPF:               strPtr(d.CPF),
		LegalName:         strPtr(d.LegalName),
		CNPJ:              strPtr(d.CNPJ),
		StateRegistration: strPtr(d.StateRegistration),
		Email:             strPtr(d.Email),
		Phone:             strPtr(d.Phone),
		CEP:               strPtr(d.CEP),
		Street:            strPtr(d.Street),
		Number:            strPtr(d.Number),
		District:          strPtr(d.District),
		City:              strPtr(d.City),
		State:             strPtr(d.State),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a model Client to a domain Client.
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:          m.ClientID,
		Kind:              domain.ClientKind(m.Kind),
		Name:              strVal(m.Name),
		CPF:               strVal(m.CPF),
		LegalName:         strVal(m.LegalName),
		CNPJ:              strVal(m.CNPJ),
		StateRegistration: strVal(m.StateRegistration),
		Email:             strVal(m.Email),
		Phone:             strVal(m.Phone),
		CEP:               strVal(m.CEP),
		Street:            strVal(m.Street),
		Number:            strVal(m.Number),
		District:          strVal(m.District),
		City:              strVal(m.City),
		State:             strVal(m.State),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClientSlice converts a slice of model Clients to domain Clients.
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}

// ToModelSupplier converts a domain Supplier to a model Supplier.
func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID:  d.SupplierID,
		LegalName:   d.LegalName,
		TradeName:   strPtr(d.TradeName),
		CNPJ:        strPtr(d.CNPJ),
		Phone:       strPtr(d.Phone),
		Email:       strPtr(d.Email),
		CEP:         strPtr(d.CEP),
		Street:      strPtr(d.Street),
		Number:      strPtr(d.Number),
		District:    strPtr(d.District),
		City:        strPtr(d.City),
		State:       strPtr(d.State),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSupplier converts a model Supplier to a domain Supplier.
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:  m.SupplierID,
		LegalName:   m.LegalName,
		TradeName:   strVal(m.TradeName),
		CNPJ:        strVal(m.CNPJ),
		Phone:       strVal(m.Phone),
		Email:       strVal(m.Email),
		CEP:         strVal(m.CEP),
		Street:      strVal(m.Street),
		Number:      strVal(m.Number),
		District:    strVal(m.District),
		City:        strVal(m.City),
		State:       strVal(m.State),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSupplierSlice converts a slice of model Suppliers to domain Suppliers.
func ToDomainSupplierSlice(ms []models.Supplier) []domain.Supplier {
	ds := make([]domain.Supplier, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSupplier(m)
	}
	return ds
}
