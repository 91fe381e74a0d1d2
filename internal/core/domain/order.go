package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the closed set of service-order states.
type OrderStatus string

const (
	OrderOpen     OrderStatus = "OPEN"
	OrderClosed   OrderStatus = "CLOSED"
	OrderInvoiced OrderStatus = "INVOICED"
)

// CompletedOrderStatuses are the statuses counted as revenue by reporting.
var CompletedOrderStatuses = []OrderStatus{OrderClosed, OrderInvoiced}

// ServiceOrder is a unit of billable repair work for one client, comprising
// labor (ServiceValue) and parts (PartLines).
type ServiceOrder struct {
	OrderID            string          `json:"orderID"` // Primary Key (UUID)
	ClientID           string          `json:"clientID"`
	ProblemDescription string          `json:"problemDescription"`
	Status             OrderStatus     `json:"status"`
	ServiceValue       decimal.Decimal `json:"serviceValue"`
	OpenedAt           time.Time       `json:"openedAt"`
	ClosedAt           *time.Time      `json:"closedAt,omitempty"` // Set on close, cleared on reopen
	PartLines          []PartLine      `json:"partLines,omitempty"`
	AuditFields
}

// PartLine is one stocked product consumed by a service order. Description
// and unit price are snapshots of the product at the time the line was added.
type PartLine struct {
	PartLineID  string          `json:"partLineID"` // Primary Key (UUID)
	OrderID     string          `json:"orderID"`
	ProductID   string          `json:"productID"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"` // > 0
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	AuditFields
}

// Total is the line value: quantity * unit price.
func (p PartLine) Total() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(p.Quantity))
}

// PartsTotal sums the order's part lines.
func (o ServiceOrder) PartsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.PartLines {
		total = total.Add(line.Total())
	}
	return total
}

// TotalValue is labor plus parts.
func (o ServiceOrder) TotalValue() decimal.Decimal {
	return o.ServiceValue.Add(o.PartsTotal())
}

// Editable reports whether guarded mutations (description, service value,
// part lines) are currently allowed.
func (o ServiceOrder) Editable() bool {
	return o.Status == OrderOpen
}

// Deletable reports whether the order may be removed. Invoiced orders are
// never deleted; the invoice must be cancelled first.
func (o ServiceOrder) Deletable() bool {
	return o.Status != OrderInvoiced
}
