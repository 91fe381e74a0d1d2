package dto

import (
	"time"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartLineRequest is one part consumed by an order, either embedded in
// order creation or posted to /parts on an open order.
type CreatePartLineRequest struct {
	ProductID string `json:"productID" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest defines the data needed to open a service order.
type CreateOrderRequest struct {
	ClientID           string                  `json:"clientID" binding:"required"`
	ProblemDescription string                  `json:"problemDescription" binding:"required"`
	ServiceValue       decimal.Decimal         `json:"serviceValue"`
	OpenedAt           *time.Time              `json:"openedAt"`
	PartLines          []CreatePartLineRequest `json:"partLines" binding:"omitempty,dive"`
}

// UpdateOrderRequest defines the data allowed for updating an open order.
type UpdateOrderRequest struct {
	ClientID           *string          `json:"clientID"`
	ProblemDescription *string          `json:"problemDescription"`
	ServiceValue       *decimal.Decimal `json:"serviceValue"`
}

// PartLineResponse defines the data returned for a part line.
type PartLineResponse struct {
	PartLineID  string          `json:"partLineID"`
	ProductID   string          `json:"productID"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// OrderResponse defines the data returned for a service order.
type OrderResponse struct {
	OrderID            string             `json:"orderID"`
	ClientID           string             `json:"clientID"`
	ProblemDescription string             `json:"problemDescription"`
	Status             domain.OrderStatus `json:"status"`
	ServiceValue       decimal.Decimal    `json:"serviceValue"`
	PartsTotal         decimal.Decimal    `json:"partsTotal"`
	TotalValue         decimal.Decimal    `json:"totalValue"`
	OpenedAt           time.Time          `json:"openedAt"`
	ClosedAt           *time.Time         `json:"closedAt,omitempty"`
	PartLines          []PartLineResponse `json:"partLines"`
	CreatedAt          time.Time          `json:"createdAt"`
	LastUpdatedAt      time.Time          `json:"lastUpdatedAt"`
}

// ToPartLineResponse converts a domain.PartLine to PartLineResponse DTO.
func ToPartLineResponse(l *domain.PartLine) PartLineResponse {
	return PartLineResponse{
		PartLineID:  l.PartLineID,
		ProductID:   l.ProductID,
		Description: l.Description,
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		Total:       l.Total(),
	}
}

// ToOrderResponse converts a domain.ServiceOrder to OrderResponse DTO.
func ToOrderResponse(o *domain.ServiceOrder) OrderResponse {
	lines := make([]PartLineResponse, len(o.PartLines))
	for i, l := range o.PartLines {
		lines[i] = ToPartLineResponse(&l)
	}
	return OrderResponse{
		OrderID:            o.OrderID,
		ClientID:           o.ClientID,
		ProblemDescription: o.ProblemDescription,
		Status:             o.Status,
		ServiceValue:       o.ServiceValue,
		PartsTotal:         o.PartsTotal(),
		TotalValue:         o.TotalValue(),
		OpenedAt:           o.OpenedAt,
		ClosedAt:           o.ClosedAt,
		PartLines:          lines,
		CreatedAt:          o.CreatedAt,
		LastUpdatedAt:      o.LastUpdatedAt,
	}
}

// ToListOrderResponse converts a slice of domain.ServiceOrder to response DTOs.
func ToListOrderResponse(orders []domain.ServiceOrder) []OrderResponse {
	res := make([]OrderResponse, len(orders))
	for i, o := range orders {
		res[i] = ToOrderResponse(&o)
	}
	return res
}

// ListOrdersParams defines query parameters for listing orders.
type ListOrdersParams struct {
	ClientID  string `form:"clientID"`
	Status    string `form:"status" binding:"omitempty,oneof=OPEN CLOSED INVOICED"`
	From      string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}

// ListOrdersResponse wraps the list of orders with the pagination token.
type ListOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	NextToken string          `json:"nextToken,omitempty"`
}
