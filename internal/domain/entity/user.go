package entity

import "strings"

// Role identifies the two-tier access level of a user.
type Role uint8

const (
	// RoleCustomer is the default role assigned at registration
	RoleCustomer Role = 1
	// RoleAdmin can manage customers
	RoleAdmin Role = 2
	// RoleManager can register new administrators
	RoleManager Role = 3
)

// User is the identity record behind a login. The credential is the only
// mutable field in scope: it is replaced exactly once when a legacy
// plain-text password is migrated to a hash.
type User struct {
	ID         uint64
	Name       string
	Email      string
	RoleID     Role
	Credential Credential
}

// NormalizeEmail trims surrounding whitespace and lower-cases an email
// address. Every lookup and every stored email goes through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
