package entity

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt cost used for every credential written by the system.
const HashCost = 10

// CredentialKind discriminates how a stored password value must be verified.
type CredentialKind int

const (
	// CredentialPlaintext marks a legacy password stored as plain text
	CredentialPlaintext CredentialKind = iota
	// CredentialHashed marks a bcrypt-hashed password
	CredentialHashed
)

// Credential is a tagged password value. The tag is decided once, when the
// stored value is materialized into the domain, so verification never has to
// re-inspect the string shape.
type Credential struct {
	kind  CredentialKind
	value string
}

// bcryptPrefixes are the version markers bcrypt emits for its hashes
var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// ParseCredential classifies a stored password value. Values carrying a
// bcrypt version prefix are tagged as hashed, everything else is treated as
// a legacy plain-text credential awaiting migration.
func ParseCredential(stored string) Credential {
	for _, p := range bcryptPrefixes {
		if strings.HasPrefix(stored, p) {
			return Credential{kind: CredentialHashed, value: stored}
		}
	}
	return Credential{kind: CredentialPlaintext, value: stored}
}

// NewHashedCredential wraps an already-computed bcrypt hash.
func NewHashedCredential(hash string) Credential {
	return Credential{kind: CredentialHashed, value: hash}
}

// Kind returns the credential's tag.
func (c Credential) Kind() CredentialKind {
	return c.kind
}

// Value returns the stored representation.
func (c Credential) Value() string {
	return c.value
}

// Verify checks a supplied password against the credential. Hashed
// credentials use bcrypt's own comparison; legacy values require exact byte
// equality.
func (c Credential) Verify(password string) bool {
	if c.kind == CredentialHashed {
		return bcrypt.CompareHashAndPassword([]byte(c.value), []byte(password)) == nil
	}
	return c.value == password
}

// HashPassword computes the bcrypt hash used for new registrations and for
// migrating legacy credentials.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
