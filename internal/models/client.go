package models

// ClientKind mirrors domain.ClientKind at the persistence layer.
type ClientKind string

const (
	Individual   ClientKind = "INDIVIDUAL"
	Organization ClientKind = "ORGANIZATION"
)

// Client maps to the clients table.
type Client struct {
	ClientID          string
	Kind              ClientKind
	Name              *string // Nullable; populated for individuals
	CPF               *string // Nullable, unique
	LegalName         *string // Nullable; populated for organizations
	CNPJ              *string // Nullable, unique
	StateRegistration *string
	Email             *string
	Phone             *string
	CEP               *string
	Street            *string
	Number            *string
	District          *string
	City              *string
	State             *string
	AuditFields
}

// Supplier maps to the suppliers table.
type Supplier struct {
	SupplierID string
	LegalName  string
	TradeName  *string
	CNPJ       *string
	Phone      *string
	Email      *string
	CEP        *string
	Street     *string
	Number     *string
	District   *string
	City       *string
	State      *string
	AuditFields
}
