package persistence

import (
	"context"
	"time"

	"github.com/mazebank/transaction-service/internal/domain/entity"
)

// ProvisionInput carries the already-validated, already-hashed registration
// data into the atomic provisioning procedure.
type ProvisionInput struct {
	Name           string
	Email          string
	Phone          string
	Address        string
	HashedPassword string
}

// ProvisionResult is the single row returned by the provisioning procedure:
// the new user plus the three instruments created with it.
type ProvisionResult struct {
	UserID    uint64
	UserName  string
	UserEmail string
	Payroll   entity.FinancialInstrument
	Credit    entity.FinancialInstrument
	Digital   entity.FinancialInstrument
}

// TransferInput carries a validated transfer into the atomic transfer
// procedure. TransactionAt is a fixed-precision timestamp string; the
// caller fills it before the procedure runs.
type TransferInput struct {
	OriginCardID          uint64
	BeneficiaryName       string
	BeneficiaryAccountRef string
	BeneficiaryBank       string
	Amount                float64
	Concept               string
	TransactionAt         string
}

// BankProcedures is the port onto the relational engine's atomic stored
// operations. Each call is all-or-nothing at the persistence layer; no
// compensation happens on this side.
type BankProcedures interface {
	// ProvisionCustomer inserts the user row and the three instrument rows
	// as one unit, or nothing at all.
	ProvisionCustomer(ctx context.Context, in ProvisionInput) (*ProvisionResult, error)

	// ExecuteTransfer debits amount+fee from the origin instrument and
	// records the resulting charge.
	ExecuteTransfer(ctx context.Context, in TransferInput) (*entity.TransferRecord, error)

	// LastChargeDate returns the timestamp of the user's most recent charge.
	LastChargeDate(ctx context.Context, userID uint64) (time.Time, error)
}
