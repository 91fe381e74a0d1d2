package domain

// ClientKind distinguishes individual persons from organizations.
type ClientKind string

const (
	Individual   ClientKind = "INDIVIDUAL"
	Organization ClientKind = "ORGANIZATION"
)

// Client represents a customer of the shop. Exactly one of the name/document
// pairs is populated: Name+CPF for individuals, LegalName+CNPJ for
// organizations.
type Client struct {
	ClientID         string     `json:"clientID"` // Primary Key (UUID)
	Kind             ClientKind `json:"kind"`
	Name             string     `json:"name"`      // Individual name (empty for organizations)
	CPF              string     `json:"cpf"`       // Digits only, unique (individuals)
	LegalName        string     `json:"legalName"` // Organization legal name (empty for individuals)
	CNPJ             string     `json:"cnpj"`      // Digits only, unique (organizations)
	StateRegistration string    `json:"stateRegistration"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"` // Digits only
	CEP              string     `json:"cep"`   // Digits only
	Street           string     `json:"street"`
	Number           string     `json:"number"`
	District         string     `json:"district"`
	City             string     `json:"city"`
	State            string     `json:"state"` // Two-letter UF
	AuditFields
}

// DisplayName returns the name used when presenting the client, regardless of kind.
func (c Client) DisplayName() string {
	if c.Kind == Individual {
		return c.Name
	}
	return c.LegalName
}

// Document returns the client's tax ID: CPF for individuals, CNPJ for organizations.
func (c Client) Document() string {
	if c.Kind == Individual {
		return c.CPF
	}
	return c.CNPJ
}
