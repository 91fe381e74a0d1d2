package dto

import (
	"time"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePayableRequest registers a supplier obligation. Installments > 1
// splits the amount into that many monthly parcels.
type CreatePayableRequest struct {
	Description  string          `json:"description" binding:"required"`
	SupplierID   string          `json:"supplierID"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	IssueDate    *time.Time      `json:"issueDate"`
	FirstDueDate time.Time       `json:"firstDueDate" binding:"required"`
	Installments int             `json:"installments" binding:"omitempty,gte=1,lte=60"`
}

// UpdatePayableRequest defines the data allowed for updating a pending payable.
type UpdatePayableRequest struct {
	Description *string          `json:"description"`
	SupplierID  *string          `json:"supplierID"`
	Amount      *decimal.Decimal `json:"amount"`
	DueDate     *time.Time       `json:"dueDate"`
}

// PayableResponse defines the data returned for a payable account.
type PayableResponse struct {
	PayableID   string               `json:"payableID"`
	Description string               `json:"description"`
	SupplierID  string               `json:"supplierID,omitempty"`
	Amount      decimal.Decimal      `json:"amount"`
	IssueDate   time.Time            `json:"issueDate"`
	DueDate     time.Time            `json:"dueDate"`
	Status      domain.PayableStatus `json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// ToPayableResponse converts a domain.PayableAccount to PayableResponse DTO.
func ToPayableResponse(p *domain.PayableAccount) PayableResponse {
	return PayableResponse{
		PayableID:   p.PayableID,
		Description: p.Description,
		SupplierID:  p.SupplierID,
		Amount:      p.Amount,
		IssueDate:   p.IssueDate,
		DueDate:     p.DueDate,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
}

// ToListPayableResponse converts a slice of domain.PayableAccount to response DTOs.
func ToListPayableResponse(payables []domain.PayableAccount) []PayableResponse {
	res := make([]PayableResponse, len(payables))
	for i, p := range payables {
		res[i] = ToPayableResponse(&p)
	}
	return res
}

// ListPayablesParams defines query parameters for listing payables.
type ListPayablesParams struct {
	SupplierID string `form:"supplierID"`
	Status     string `form:"status" binding:"omitempty,oneof=PENDING PAID"`
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit      int    `form:"limit,default=20"`
	Offset     int    `form:"offset,default=0"`
}

// ListPayablesResponse wraps the list of payables.
type ListPayablesResponse struct {
	Payables []PayableResponse `json:"payables"`
}
