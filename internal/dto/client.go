package dto

import (
	"time"

	"github.com/oficinasys/service_order_app/internal/core/domain"
)

// CreateClientRequest defines the data needed to register a client.
// For INDIVIDUAL kind, name and cpf are required; for ORGANIZATION,
// legalName and cnpj.
type CreateClientRequest struct {
	Kind              domain.ClientKind `json:"kind" binding:"required,oneof=INDIVIDUAL ORGANIZATION"`
	Name              string            `json:"name" binding:"required_if=Kind INDIVIDUAL"`
	CPF               string            `json:"cpf" binding:"required_if=Kind INDIVIDUAL,omitempty,cpf"`
	LegalName         string            `json:"legalName" binding:"required_if=Kind ORGANIZATION"`
	CNPJ              string            `json:"cnpj" binding:"required_if=Kind ORGANIZATION,omitempty,cnpj"`
	StateRegistration string            `json:"stateRegistration"`
	Email             string            `json:"email" binding:"omitempty,email"`
	Phone             string            `json:"phone"`
	CEP               string            `json:"cep"`
	Street            string            `json:"street"`
	Number            string            `json:"number"`
	District          string            `json:"district"`
	City              string            `json:"city"`
	State             string            `json:"state" binding:"omitempty,len=2"`
}

// UpdateClientRequest defines the data allowed for updating a client.
// The kind and documents are immutable after creation.
type UpdateClientRequest struct {
	Name              *string `json:"name"`
	LegalName         *string `json:"legalName"`
	StateRegistration *string `json:"stateRegistration"`
	Email             *string `json:"email" binding:"omitempty,email"`
	Phone             *string `json:"phone"`
	CEP               *string `json:"cep"`
	Street            *string `json:"street"`
	Number            *string `json:"number"`
	District          *string `json:"district"`
	City              *string `json:"city"`
	State             *string `json:"state" binding:"omitempty,len=2"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID          string            `json:"clientID"`
	Kind              domain.ClientKind `json:"kind"`
	Name              string            `json:"name,omitempty"`
	CPF               string            `json:"cpf,omitempty"`
	LegalName         string            `json:"legalName,omitempty"`
	CNPJ              string            `json:"cnpj,omitempty"`
	StateRegistration string            `json:"stateRegistration,omitempty"`
	DisplayName       string            `json:"displayName"`
	Email             string            `json:"email,omitempty"`
	Phone             string            `json:"phone,omitempty"`
	CEP               string            `json:"cep,omitempty"`
	Street            string            `json:"street,omitempty"`
	Number            string            `json:"number,omitempty"`
	District          string            `json:"district,omitempty"`
	City              string            `json:"city,omitempty"`
	State             string            `json:"state,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	LastUpdatedAt     time.Time         `json:"lastUpdatedAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:          c.ClientID,
		Kind:              c.Kind,
		Name:              c.Name,
		CPF:               c.CPF,
		LegalName:         c.LegalName,
		CNPJ:              c.CNPJ,
		StateRegistration: c.StateRegistration,
		DisplayName:       c.DisplayName(),
		Email:             c.Email,
		Phone:             c.Phone,
		CEP:               c.CEP,
		Street:            c.Street,
		Number:            c.Number,
		District:          c.District,
		City:              c.City,
		State:             c.State,
		CreatedAt:         c.CreatedAt,
		LastUpdatedAt:     c.LastUpdatedAt,
	}
}

// ToListClientResponse converts a slice of domain.Client to response DTOs.
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = ToClientResponse(&c)
	}
	return res
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListClientsResponse wraps the list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}
