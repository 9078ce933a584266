package usecase

import (
	"context"
	"time"

	"github.com/mazebank/transaction-service/internal/domain/entity"
)

// AuthResult is returned by a successful authentication. The migration
// flags describe the hash-migration side effect of a legacy login; they are
// observability-only and never reach the wire.
type AuthResult struct {
	UserID uint64      `json:"user_id"`
	RoleID entity.Role `json:"role_id"`
	Email  string      `json:"email"`

	HashMigrated    bool `json:"-"`
	MigrationFailed bool `json:"-"`
}

// AuthUseCase verifies credentials, migrating legacy plain-text passwords
// to bcrypt on first successful match.
type AuthUseCase interface {
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
}

// RegisterInput is the raw registration request before validation.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Password string
}

// CardSet groups the three instruments created at registration, keyed the
// way the client expects them.
type CardSet struct {
	Payroll entity.FinancialInstrument `json:"nomina"`
	Credit  entity.FinancialInstrument `json:"credito"`
	Digital entity.FinancialInstrument `json:"digital"`
}

// RegistrationResult mirrors the single row returned by the provisioning
// procedure.
type RegistrationResult struct {
	UserID    uint64  `json:"user_id"`
	UserName  string  `json:"user_name"`
	UserEmail string  `json:"user_email"`
	Cards     CardSet `json:"cards"`
}

// RegisterUseCase creates a customer plus three instruments as one atomic
// unit.
type RegisterUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*RegistrationResult, error)
}

// TransferInput is the raw transfer request before validation. Amount
// arrives as the JSON number the client sent; TransactionAt is optional and
// defaults to now.
type TransferInput struct {
	OriginCardID          uint64
	BeneficiaryName       string
	BeneficiaryAccountRef string
	BeneficiaryBank       string
	Amount                float64
	Concept               string
	TransactionAt         string
}

// TransferUseCase validates and executes a fee-bearing transfer.
type TransferUseCase interface {
	Transfer(ctx context.Context, in TransferInput) (*entity.TransferRecord, error)
}

// ReceiptUseCase dispatches a transaction receipt through the mail
// capability. Its failures must never look like transfer failures.
type ReceiptUseCase interface {
	SendReceipt(ctx context.Context, to, subject, htmlBody string) error
}

// UserProfile is the reduced identity view served by the profile lookup.
type UserProfile struct {
	UserID uint64 `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// UserUseCase serves read-only user data.
type UserUseCase interface {
	GetProfile(ctx context.Context, userID uint64) (*UserProfile, error)
	LastChargeDate(ctx context.Context, userID uint64) (time.Time, error)
}
