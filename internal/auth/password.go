// Package auth provides the security handlers: password hashing and JWT
// issuance. Both are invoked by the service layer and fail through return
// values, never through panics that could escape the orchestration boundary.
package auth

import "golang.org/x/crypto/bcrypt"

// Password hashing cost. 12 is a good balance between security and performance.
const bcryptCost = 12

// PasswordHasher hashes and verifies passwords with bcrypt. The salt is
// embedded in the hash, so two hashes of the same plaintext differ while
// verification stays deterministic.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcryptCost}
}

// Hash derives a salted hash from the plaintext.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the plaintext reproduces the stored hash.
func (h *PasswordHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
