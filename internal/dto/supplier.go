package dto

import (
	"time"

	"github.com/oficinasys/service_order_app/internal/core/domain"
)

// CreateSupplierRequest defines the data needed to register a supplier.
type CreateSupplierRequest struct {
	LegalName string `json:"legalName" binding:"required"`
	TradeName string `json:"tradeName"`
	CNPJ      string `json:"cnpj" binding:"required,cnpj"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	CEP       string `json:"cep"`
	Street    string `json:"street"`
	Number    string `json:"number"`
	District  string `json:"district"`
	City      string `json:"city"`
	State     string `json:"state" binding:"omitempty,len=2"`
}

// UpdateSupplierRequest defines the data allowed for updating a supplier.
type UpdateSupplierRequest struct {
	LegalName *string `json:"legalName"`
	TradeName *string `json:"tradeName"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	CEP       *string `json:"cep"`
	Street    *string `json:"street"`
	Number    *string `json:"number"`
	District  *string `json:"district"`
	City      *string `json:"city"`
	State     *string `json:"state" binding:"omitempty,len=2"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID    string    `json:"supplierID"`
	LegalName     string    `json:"legalName"`
	TradeName     string    `json:"tradeName,omitempty"`
	CNPJ          string    `json:"cnpj"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	CEP           string    `json:"cep,omitempty"`
	Street        string    `json:"street,omitempty"`
	Number        string    `json:"number,omitempty"`
	District      string    `json:"district,omitempty"`
	City          string    `json:"city,omitempty"`
	State         string    `json:"state,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:    s.SupplierID,
		LegalName:     s.LegalName,
		TradeName:     s.TradeName,
		CNPJ:          s.CNPJ,
		Phone:         s.Phone,
		Email:         s.Email,
		CEP:           s.CEP,
		Street:        s.Street,
		Number:        s.Number,
		District:      s.District,
		City:          s.City,
		State:         s.State,
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
	}
}

// ToListSupplierResponse converts a slice of domain.Supplier to response DTOs.
func ToListSupplierResponse(suppliers []domain.Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		res[i] = ToSupplierResponse(&s)
	}
	return res
}

// ListSuppliersParams defines query parameters for listing suppliers.
type ListSuppliersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListSuppliersResponse wraps the list of suppliers.
type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}
