package user

import (
	"context"
	"time"

	errs "github.com/mazebank/transaction-service/internal/domain/error"
	coreport "github.com/mazebank/transaction-service/internal/domain/port/core"
	"github.com/mazebank/transaction-service/internal/domain/port/persistence"
	"github.com/mazebank/transaction-service/internal/domain/port/usecase"
)

// Service implements usecase.UserUseCase.
type Service struct {
	users      persistence.UserRepository
	procedures persistence.BankProcedures
	logger     coreport.Logger
}

// NewService creates a new user lookup service
func NewService(users persistence.UserRepository, procedures persistence.BankProcedures, logger coreport.Logger) *Service {
	return &Service{
		users:      users,
		procedures: procedures,
		logger:     logger,
	}
}

// GetProfile returns the reduced identity view for a user id.
func (s *Service) GetProfile(ctx context.Context, userID uint64) (*usecase.UserProfile, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.UserProfile{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
	}, nil
}

// LastChargeDate returns the timestamp of the user's most recent charge.
func (s *Service) LastChargeDate(ctx context.Context, userID uint64) (time.Time, error) {
	if userID == 0 {
		return time.Time{}, errs.ErrInvalidUserID
	}
	return s.procedures.LastChargeDate(ctx, userID)
}
