package mapping

import (
	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/oficinasys/service_order_app/internal/models"
)

// ToModelServiceOrder converts a domain ServiceOrder to a model ServiceOrder.
// Part lines are mapped separately since they live in their own table.
func ToModelServiceOrder(d domain.ServiceOrder) models.ServiceOrder {
	return models.ServiceOrder{
		OrderID:            d.OrderID,
		ClientID:           d.ClientID,
		ProblemDescription: d.ProblemDescription,
		Status:             models.OrderStatus(d.Status),
		ServiceValue:       d.ServiceValue,
		OpenedAt:           d.OpenedAt,
		ClosedAt:           d.ClosedAt,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainServiceOrder converts a model ServiceOrder to a domain ServiceOrder.
func ToDomainServiceOrder(m models.ServiceOrder) domain.ServiceOrder {
	return domain.ServiceOrder{
		OrderID:            m.OrderID,
		ClientID:           m.ClientID,
		ProblemDescription: m.ProblemDescription,
		Status:             domain.OrderStatus(m.Status),
		ServiceValue:       m.ServiceValue,
		OpenedAt:           m.OpenedAt,
		ClosedAt:           m.ClosedAt,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainServiceOrderSlice converts a slice of model ServiceOrders to domain ones.
func ToDomainServiceOrderSlice(ms []models.ServiceOrder) []domain.ServiceOrder {
	ds := make([]domain.ServiceOrder, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainServiceOrder(m)
	}
	return ds
}

// ToModelPartLine converts a domain PartLine to a model PartLine.
func ToModelPartLine(d domain.PartLine) models.PartLine {
	return models.PartLine{
		PartLineID:  d.PartLineID,
		OrderID:     d.OrderID,
		ProductID:   d.ProductID,
		Description: d.Description,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPartLine converts a model PartLine to a domain PartLine.
func ToDomainPartLine(m models.PartLine) domain.PartLine {
	return domain.PartLine{
		PartLineID:  m.PartLineID,
		OrderID:     m.OrderID,
		ProductID:   m.ProductID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPartLineSlice converts a slice of model PartLines to domain ones.
func ToDomainPartLineSlice(ms []models.PartLine) []domain.PartLine {
	ds := make([]domain.PartLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPartLine(m)
	}
	return ds
}
