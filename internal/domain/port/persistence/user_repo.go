package persistence

import (
	"context"

	"github.com/mazebank/transaction-service/internal/domain/entity"
)

// UserRepository defines the persistence operations for user identity rows.
type UserRepository interface {
	// FindByEmail looks up a user by an already-normalized email address
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by numeric id
	FindByID(ctx context.Context, id uint64) (*entity.User, error)

	// UpdateCredential replaces the stored password value with a bcrypt
	// hash. This is the only user mutation in scope and happens at most
	// once per legacy login.
	UpdateCredential(ctx context.Context, userID uint64, hashed string) error
}
