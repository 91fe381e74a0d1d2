package domain

// User is an operator account. The password is stored as a bcrypt hash only.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"` // Unique
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"isAdmin"`
	AuditFields
}
