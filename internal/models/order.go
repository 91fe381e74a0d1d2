package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus mirrors domain.OrderStatus at the persistence layer.
type OrderStatus string

const (
	OrderOpen     OrderStatus = "OPEN"
	OrderClosed   OrderStatus = "CLOSED"
	OrderInvoiced OrderStatus = "INVOICED"
)

// ServiceOrder maps to the service_orders table.
type ServiceOrder struct {
	OrderID            string
	ClientID           string
	ProblemDescription string
	Status             OrderStatus
	ServiceValue       decimal.Decimal
	OpenedAt           time.Time
	ClosedAt           *time.Time
	AuditFields
}

// PartLine maps to the part_lines table.
type PartLine struct {
	PartLineID  string
	OrderID     string
	ProductID   string
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
	AuditFields
}
