package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/mazebank/transaction-service/internal/domain/entity"
	errs "github.com/mazebank/transaction-service/internal/domain/error"
	coreport "github.com/mazebank/transaction-service/internal/domain/port/core"
	"github.com/mazebank/transaction-service/internal/domain/port/persistence"
	"gorm.io/gorm"
)

// Stored procedure names owned by the relational engine.
const (
	procRegisterCustomer = "sp_register_customer"
	procExecuteTransfer  = "sp_execute_transfer"
)

// BankProcedures implements the BankProcedures port by calling the
// relational engine's atomic stored operations through GORM.
type BankProcedures struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBankProcedures creates a new BankProcedures instance
func NewBankProcedures(db *gorm.DB, logger coreport.Logger) *BankProcedures {
	return &BankProcedures{
		db:     db,
		logger: logger,
	}
}

// provisionRow mirrors the single result row of sp_register_customer.
type provisionRow struct {
	UserID               uint64 `gorm:"column:user_id"`
	UserName             string `gorm:"column:user_name"`
	UserEmail            string `gorm:"column:user_email"`
	CardNumberNomina     string `gorm:"column:card_number_nomina"`
	AccountNumberNomina  string `gorm:"column:account_number_nomina"`
	CardNumberCredito    string `gorm:"column:card_number_credito"`
	AccountNumberCredito string `gorm:"column:account_number_credito"`
	CardNumberDigital    string `gorm:"column:card_number_digital"`
	AccountNumberDigital string `gorm:"column:account_number_digital"`
}

// ProvisionCustomer runs the atomic registration procedure: user row plus
// three instrument rows, all or nothing.
func (p *BankProcedures) ProvisionCustomer(ctx context.Context, in persistence.ProvisionInput) (*persistence.ProvisionResult, error) {
	var row provisionRow
	result := p.db.WithContext(ctx).Raw(
		"SELECT * FROM "+procRegisterCustomer+"(?, ?, ?, ?, ?)",
		in.Name,
		in.Email,
		nullable(in.Phone),
		nullable(in.Address),
		in.HashedPassword,
	).Scan(&row)

	if result.Error != nil {
		classified := classifyProcedureError(result.Error)
		p.logger.Error("Provisioning procedure failed", map[string]any{
			"procedure": procRegisterCustomer,
			"email":     in.Email,
			"error":     result.Error.Error(),
		})
		return nil, errs.NewProcedureError(procRegisterCustomer, classified)
	}

	if result.RowsAffected == 0 {
		p.logger.Error("Provisioning procedure returned no row", map[string]any{
			"procedure": procRegisterCustomer,
			"email":     in.Email,
		})
		return nil, errs.ErrNoProcedureResult
	}

	return &persistence.ProvisionResult{
		UserID:    row.UserID,
		UserName:  row.UserName,
		UserEmail: row.UserEmail,
		Payroll: entity.FinancialInstrument{
			CardNumber:    row.CardNumberNomina,
			AccountNumber: row.AccountNumberNomina,
		},
		Credit: entity.FinancialInstrument{
			CardNumber:    row.CardNumberCredito,
			AccountNumber: row.AccountNumberCredito,
		},
		Digital: entity.FinancialInstrument{
			CardNumber:    row.CardNumberDigital,
			AccountNumber: row.AccountNumberDigital,
		},
	}, nil
}

// ExecuteTransfer runs the atomic transfer procedure. The procedure owns
// the fee, the balance check and the charge row; an error or an empty
// result set means nothing was debited.
func (p *BankProcedures) ExecuteTransfer(ctx context.Context, in persistence.TransferInput) (*entity.TransferRecord, error) {
	var record entity.TransferRecord
	result := p.db.WithContext(ctx).Raw(
		"SELECT * FROM "+procExecuteTransfer+"(?, ?, ?, ?, ?, ?, ?)",
		in.OriginCardID,
		in.BeneficiaryName,
		in.BeneficiaryAccountRef,
		nullable(in.BeneficiaryBank),
		in.Amount,
		nullable(in.Concept),
		in.TransactionAt,
	).Scan(&record)

	if result.Error != nil {
		classified := classifyProcedureError(result.Error)
		p.logger.Error("Transfer procedure failed", map[string]any{
			"procedure":      procExecuteTransfer,
			"origin_card_id": in.OriginCardID,
			"error":          result.Error.Error(),
		})
		return nil, errs.NewProcedureError(procExecuteTransfer, classified)
	}

	if result.RowsAffected == 0 {
		p.logger.Error("Transfer procedure returned no row", map[string]any{
			"procedure":      procExecuteTransfer,
			"origin_card_id": in.OriginCardID,
		})
		return nil, errs.ErrNoProcedureResult
	}

	return &record, nil
}

// LastChargeDate returns the timestamp of the user's most recent charge
// across all of their instruments.
func (p *BankProcedures) LastChargeDate(ctx context.Context, userID uint64) (time.Time, error) {
	var row struct {
		Latest sql.NullTime `gorm:"column:latest"`
	}
	result := p.db.WithContext(ctx).Raw(
		`SELECT MAX(c.transaction_at) AS latest FROM charges c
		 JOIN instruments i ON i.instrument_id = c.origin_instrument_id
		 WHERE i.user_id = ?`,
		userID,
	).Scan(&row)

	if result.Error != nil {
		p.logger.Error("Last charge lookup failed", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return time.Time{}, classifyProcedureError(result.Error)
	}

	if !row.Latest.Valid {
		return time.Time{}, errs.ErrNoChargeHistory
	}

	return row.Latest.Time, nil
}

// nullable maps an empty string to SQL NULL, matching the procedures'
// optional parameters.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
