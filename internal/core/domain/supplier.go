package domain

// Supplier represents an organization the shop sources goods from.
type Supplier struct {
	SupplierID string `json:"supplierID"` // Primary Key (UUID)
	LegalName  string `json:"legalName"`  // Unique
	TradeName  string `json:"tradeName"`
	CNPJ       string `json:"cnpj"` // Digits only, unique
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	CEP        string `json:"cep"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	AuditFields
}
