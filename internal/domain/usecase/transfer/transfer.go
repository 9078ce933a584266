package transfer

import (
	"context"
	"fmt"

	"github.com/mazebank/transaction-service/internal/domain/entity"
	errs "github.com/mazebank/transaction-service/internal/domain/error"
	coreport "github.com/mazebank/transaction-service/internal/domain/port/core"
	"github.com/mazebank/transaction-service/internal/domain/port/persistence"
	"github.com/mazebank/transaction-service/internal/domain/port/usecase"
)

// Service implements usecase.TransferUseCase on top of the atomic transfer
// procedure. The procedure owns fee computation, balance checks and the
// charge row; this service only validates input and shapes the call.
type Service struct {
	procedures   persistence.BankProcedures
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new transfer service
func NewService(procedures persistence.BankProcedures, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{
		procedures:   procedures,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Transfer validates and executes a funds transfer. No compensation is
// taken on failure; the procedure is all-or-nothing.
func (s *Service) Transfer(ctx context.Context, in usecase.TransferInput) (*entity.TransferRecord, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	transactionAt := in.TransactionAt
	if transactionAt == "" {
		transactionAt = s.timeProvider.Now().Format(entity.TransferTimeLayout)
	}

	record, err := s.procedures.ExecuteTransfer(ctx, persistence.TransferInput{
		OriginCardID:          in.OriginCardID,
		BeneficiaryName:       in.BeneficiaryName,
		BeneficiaryAccountRef: in.BeneficiaryAccountRef,
		BeneficiaryBank:       in.BeneficiaryBank,
		Amount:                in.Amount,
		Concept:               in.Concept,
		TransactionAt:         transactionAt,
	})
	if err != nil {
		s.logger.Error("Transfer execution failed", map[string]any{
			"origin_card_id": in.OriginCardID,
			"amount":         in.Amount,
			"error":          err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Transfer executed", map[string]any{
		"charge_id":      record.ChargeID,
		"origin_card_id": in.OriginCardID,
		"amount":         record.Amount,
		"fee":            record.Fee,
		"debited_total":  record.DebitedTotal,
	})

	return record, nil
}

// validate rejects malformed input before any procedure call.
func validate(in usecase.TransferInput) error {
	if in.OriginCardID == 0 || in.BeneficiaryName == "" || in.BeneficiaryAccountRef == "" {
		return fmt.Errorf("%w: origin_card_id, beneficiary_name, beneficiary_account_ref and amount are required", errs.ErrMissingFields)
	}
	if !(in.Amount > 0) {
		return errs.ErrInvalidAmount
	}
	return nil
}
