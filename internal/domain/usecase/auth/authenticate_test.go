package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mazebank/transaction-service/internal/domain/entity"
	errs "github.com/mazebank/transaction-service/internal/domain/error"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdateCredential(ctx context.Context, userID uint64, hashed string) error {
	args := m.Called(ctx, userID, hashed)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]any) {}
func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}
func (nopLogger) Flush() error                 { return nil }

func hashedUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := entity.HashPassword(password)
	require.NoError(t, err)
	return &entity.User{
		ID:         7,
		Name:       "Ana",
		Email:      "ana@test.com",
		RoleID:     entity.RoleCustomer,
		Credential: entity.ParseCredential(hash),
	}
}

func legacyUser(password string) *entity.User {
	return &entity.User{
		ID:         7,
		Name:       "Ana",
		Email:      "ana@test.com",
		RoleID:     entity.RoleCustomer,
		Credential: entity.ParseCredential(password),
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Hashed credential, correct password", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, "ana@test.com").Return(hashedUser(t, "secret1"), nil).Once()

		svc := NewService(repo, nopLogger{})
		result, err := svc.Authenticate(ctx, "ana@test.com", "secret1")

		require.NoError(t, err)
		assert.Equal(t, uint64(7), result.UserID)
		assert.Equal(t, entity.RoleCustomer, result.RoleID)
		assert.Equal(t, "ana@test.com", result.Email)
		assert.False(t, result.HashMigrated)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "UpdateCredential", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Email is normalized before lookup", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, "ana@test.com").Return(hashedUser(t, "secret1"), nil).Once()

		svc := NewService(repo, nopLogger{})
		_, err := svc.Authenticate(ctx, "  ANA@Test.com ", "secret1")

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Hashed credential, wrong password", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, "ana@test.com").Return(hashedUser(t, "secret1"), nil).Once()

		svc := NewService(repo, nopLogger{})
		result, err := svc.Authenticate(ctx, "ana@test.com", "wrong")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		repo.AssertNotCalled(t, "UpdateCredential", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Legacy credential migrates on first successful login", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, "ana@test.com").Return(legacyUser("secret1"), nil).Once()
		repo.On("UpdateCredential", mock.Anything, uint64(7), mock.MatchedBy(func(hashed string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hashed), []byte("secret1")) == nil
		})).Return(nil).Once()

		svc := NewService(repo, nopLogger{})
		result, err := svc.Authenticate(ctx, "ana@test.com", "secret1")

		require.NoError(t, err)
		assert.True(t, result.HashMigrated)
		assert.False(t, result.MigrationFailed)
		repo.AssertExpectations(t)
	})

	t.Run("Legacy credential, wrong password does not migrate", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, "ana@test.com").Return(legacyUser("secret1"), nil).Once()

		svc := NewService(repo, nopLogger{})
		result, err := svc.Authenticate(ctx, "ana@test.com", "wrong")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		repo.AssertNotCalled(t, "UpdateCredential", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Migration write failure is swallowed", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, "ana@test.com").Return(legacyUser("secret1"), nil).Once()
		repo.On("UpdateCredential", mock.Anything, uint64(7), mock.Anything).
			Return(errors.New("connection reset")).Once()

		svc := NewService(repo, nopLogger{})
		result, err := svc.Authenticate(ctx, "ana@test.com", "secret1")

		require.NoError(t, err)
		assert.Equal(t, uint64(7), result.UserID)
		assert.False(t, result.HashMigrated)
		assert.True(t, result.MigrationFailed)
	})

	t.Run("Unknown email", func(t *testing.T) {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, "ghost@test.com").Return(nil, errs.ErrUserNotFound).Once()

		svc := NewService(repo, nopLogger{})
		result, err := svc.Authenticate(ctx, "ghost@test.com", "secret1")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Missing fields rejected before lookup", func(t *testing.T) {
		repo := new(mockUserRepo)

		svc := NewService(repo, nopLogger{})
		_, err := svc.Authenticate(ctx, "", "secret1")
		assert.ErrorIs(t, err, errs.ErrMissingFields)

		_, err = svc.Authenticate(ctx, "ana@test.com", "")
		assert.ErrorIs(t, err, errs.ErrMissingFields)

		repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}
