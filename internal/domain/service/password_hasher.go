// Package service defines the ports the use cases rely on for work that is not
// persistence: hashing, tokens, media, events and share codes.
package service

// PasswordHasher turns plaintext passwords into salted one-way hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password produces hash. A malformed hash never matches.
	Check(password, hash string) bool
}
