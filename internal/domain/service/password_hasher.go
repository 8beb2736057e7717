// Package service declares the stateless collaborators the use cases depend on.
package service

// PasswordHasher turns passwords into bcrypt-style salted hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check is false for a wrong password and for a corrupt hash alike.
	Check(password, hash string) bool
}
