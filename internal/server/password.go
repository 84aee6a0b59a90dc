package server

import "golang.org/x/crypto/bcrypt"

// hashPassword generates a bcrypt hash of the shared project password.
// The raw hash bytes are stored as-is in the project document.
func hashPassword(password string) ([]byte, error) {
	// bcrypt cost of 12 is a good balance of security and performance
	return bcrypt.GenerateFromPassword([]byte(password), 12)
}

// verifyPassword compares a plaintext password with its stored hash.
func verifyPassword(password string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
