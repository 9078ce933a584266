package auth

import (
	"context"

	"github.com/mazebank/transaction-service/internal/domain/entity"
	errs "github.com/mazebank/transaction-service/internal/domain/error"
	coreport "github.com/mazebank/transaction-service/internal/domain/port/core"
	"github.com/mazebank/transaction-service/internal/domain/port/persistence"
	"github.com/mazebank/transaction-service/internal/domain/port/usecase"
)

// Service implements usecase.AuthUseCase against the user repository.
type Service struct {
	users  persistence.UserRepository
	logger coreport.Logger
}

// NewService creates a new authentication service
func NewService(users persistence.UserRepository, logger coreport.Logger) *Service {
	return &Service{
		users:  users,
		logger: logger,
	}
}

// Authenticate verifies an email/password pair. Legacy plain-text
// credentials are upgraded to bcrypt in place on the first successful
// match; a failed upgrade write never blocks the login.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	if email == "" || password == "" {
		return nil, errs.ErrMissingFields
	}

	normalized := entity.NormalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if !user.Credential.Verify(password) {
		s.logger.Warn("Credential mismatch", map[string]any{
			"user_id": user.ID,
			"hashed":  user.Credential.Kind() == entity.CredentialHashed,
		})
		return nil, errs.ErrInvalidCredentials
	}

	result := &usecase.AuthResult{
		UserID: user.ID,
		RoleID: user.RoleID,
		Email:  user.Email,
	}

	if user.Credential.Kind() == entity.CredentialPlaintext {
		s.migrateCredential(ctx, user.ID, password, result)
	}

	s.logger.Info("Login successful", map[string]any{
		"user_id":  user.ID,
		"role_id":  user.RoleID,
		"migrated": result.HashMigrated,
	})

	return result, nil
}

// migrateCredential replaces a matched legacy password with its bcrypt
// hash. The write is best-effort: any failure is recorded on the result and
// logged, never returned.
func (s *Service) migrateCredential(ctx context.Context, userID uint64, password string, result *usecase.AuthResult) {
	hashed, err := entity.HashPassword(password)
	if err != nil {
		result.MigrationFailed = true
		s.logger.Warn("Credential migration skipped, hash computation failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	if err := s.users.UpdateCredential(ctx, userID, hashed); err != nil {
		result.MigrationFailed = true
		s.logger.Warn("Credential migration write failed, login still succeeds", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	result.HashMigrated = true
}
