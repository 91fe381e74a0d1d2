package dto

// CNPJLookupResponse carries company registration data fetched from the
// public registry for form pre-fill.
type CNPJLookupResponse struct {
	CNPJ      string `json:"cnpj"`
	LegalName string `json:"legalName"`
	TradeName string `json:"tradeName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	CEP       string `json:"cep,omitempty"`
	Street    string `json:"street,omitempty"`
	Number    string `json:"number,omitempty"`
	District  string `json:"district,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
}

// CEPLookupResponse carries address data fetched from the postal registry.
type CEPLookupResponse struct {
	CEP      string `json:"cep"`
	Street   string `json:"street,omitempty"`
	District string `json:"district,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
}
