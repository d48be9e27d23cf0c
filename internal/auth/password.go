package auth

import "golang.org/x/crypto/bcrypt"

// decoyHash is a valid bcrypt hash compared against when the account does
// not exist, so lookups and mismatches take the same path.
const decoyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value using the
// library's constant-time compare. Never compare hashes with raw equality.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// CompareDecoy burns a bcrypt verification against a throwaway hash. Called
// on the unknown-account path to keep its timing close to a real mismatch.
func CompareDecoy(plain string) {
	_ = bcrypt.CompareHashAndPassword([]byte(decoyHash), []byte(plain))
}
