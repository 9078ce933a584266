package register

import (
	"context"
	"fmt"
	"regexp"

	"github.com/mazebank/transaction-service/internal/domain/entity"
	errs "github.com/mazebank/transaction-service/internal/domain/error"
	coreport "github.com/mazebank/transaction-service/internal/domain/port/core"
	"github.com/mazebank/transaction-service/internal/domain/port/persistence"
	"github.com/mazebank/transaction-service/internal/domain/port/usecase"
)

// minPasswordLength is the minimum accepted registration password length.
const minPasswordLength = 6

// emailPattern accepts the basic local@domain.tld shape, nothing stricter.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service implements usecase.RegisterUseCase on top of the atomic
// provisioning procedure.
type Service struct {
	procedures persistence.BankProcedures
	logger     coreport.Logger
}

// NewService creates a new registration service
func NewService(procedures persistence.BankProcedures, logger coreport.Logger) *Service {
	return &Service{
		procedures: procedures,
		logger:     logger,
	}
}

// Register validates the input, hashes the password, and delegates to the
// provisioning procedure. Either the user and all three instruments are
// created, or nothing is.
func (s *Service) Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegistrationResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	// A plain-text password never reaches the persistence layer.
	hashed, err := entity.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: hashing password: %s", errs.ErrInternalServer, err.Error())
	}

	result, err := s.procedures.ProvisionCustomer(ctx, persistence.ProvisionInput{
		Name:           in.Name,
		Email:          entity.NormalizeEmail(in.Email),
		Phone:          in.Phone,
		Address:        in.Address,
		HashedPassword: hashed,
	})
	if err != nil {
		s.logger.Error("Customer provisioning failed", map[string]any{
			"email": entity.NormalizeEmail(in.Email),
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Customer registered with 3 instruments", map[string]any{
		"user_id": result.UserID,
		"email":   result.UserEmail,
	})

	return &usecase.RegistrationResult{
		UserID:    result.UserID,
		UserName:  result.UserName,
		UserEmail: result.UserEmail,
		Cards: usecase.CardSet{
			Payroll: result.Payroll,
			Credit:  result.Credit,
			Digital: result.Digital,
		},
	}, nil
}

// validate rejects malformed input before any collaborator call.
func validate(in usecase.RegisterInput) error {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return fmt.Errorf("%w: name, email and password are required", errs.ErrMissingFields)
	}
	if !emailPattern.MatchString(in.Email) {
		return errs.ErrInvalidEmail
	}
	if len(in.Password) < minPasswordLength {
		return errs.ErrPasswordTooShort
	}
	return nil
}
