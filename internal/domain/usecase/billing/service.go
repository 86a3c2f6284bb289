package billing

import (
	"context"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	"github.com/whitecat-hosting/whitecat/internal/domain/port/persistence"
	"github.com/whitecat-hosting/whitecat/internal/domain/port/usecase"
)

// Transaction list limits
const (
	defaultTransactionLimit = 50
	maxTransactionLimit     = 200
)

// Service implements the billing use case. Every balance-affecting operation
// runs its writes inside a unit of work so the debit, the purchase record and
// the ledger entry commit or roll back together.
type Service struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	configRepo   persistence.ServerConfigRepository
	serverRepo   persistence.UserServerRepository
	txRepo       persistence.TransactionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new billing service instance
func NewService(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	configRepo persistence.ServerConfigRepository,
	serverRepo persistence.UserServerRepository,
	txRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.BillingUseCase {
	return &Service{
		uow:          uow,
		userRepo:     userRepo,
		configRepo:   configRepo,
		serverRepo:   serverRepo,
		txRepo:       txRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetBalance returns the user's current balance
func (s *Service) GetBalance(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, errs.ErrUnauthorized
	}
	return s.userRepo.GetBalance(ctx, userID)
}

// Transactions returns the user's most recent ledger entries
func (s *Service) Transactions(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	if userID == "" {
		return nil, errs.ErrUnauthorized
	}
	if limit <= 0 {
		limit = defaultTransactionLimit
	}
	if limit > maxTransactionLimit {
		limit = maxTransactionLimit
	}
	return s.txRepo.ListByUser(ctx, userID, limit)
}

// Servers returns the user's purchase records
func (s *Service) Servers(ctx context.Context, userID string) ([]*entity.UserServer, error) {
	if userID == "" {
		return nil, errs.ErrUnauthorized
	}
	return s.serverRepo.ListByUser(ctx, userID)
}

// checkBalance verifies the user can cover the required amount and returns a
// detailed insufficient-balance error when they cannot
func (s *Service) checkBalance(ctx context.Context, userID string, required int64) error {
	current, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return err
	}
	if current < required {
		s.logger.Warn("Insufficient balance", map[string]any{
			"user_id":  userID,
			"required": required,
			"current":  current,
		})
		return errs.NewInsufficientBalanceError(userID, required, current)
	}
	return nil
}

// rollback rolls the unit of work back, logging any secondary failure
func (s *Service) rollback(txCtx context.Context) {
	if err := s.uow.Rollback(txCtx); err != nil {
		s.logger.Error("Rollback failed", map[string]any{
			"error": err.Error(),
		})
	}
}
