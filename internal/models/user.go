package models

// User maps to the users table.
type User struct {
	UserID       string
	Username     string
	PasswordHash string
	IsAdmin      bool
	AuditFields
}
