package utils

import "golang.org/x/crypto/bcrypt"

// passwordCost is the bcrypt work factor for stored credentials.
const passwordCost = bcrypt.DefaultCost

// HashPassword derives a bcrypt hash from a plaintext password. The returned
// string embeds the salt and cost, so it can be verified without extra state.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches the stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
