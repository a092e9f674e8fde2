// Package service defines interfaces for stateless domain logic that does
// not belong to a single entity: password hashing, token issuance and the
// image upload port.
package service

// PasswordHasher hashes plaintext passwords and verifies them against a
// stored digest. The hashing algorithm stays behind this interface so the
// domain never learns it.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether password matches the stored digest.
	Check(password, hash string) bool
}
