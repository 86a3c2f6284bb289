package billing

import (
	"context"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
)

// Deposit credits the user's balance and appends a deposit ledger entry in
// one storage transaction. Returns the new balance.
//
// There is no upper bound and no payment-gateway integration yet; the
// credited amount is taken at face value.
// TODO: hook up the payment gateway callback before exposing this publicly.
func (s *Service) Deposit(ctx context.Context, userID string, amount int64) (int64, error) {
	if userID == "" {
		return 0, errs.ErrUnauthorized
	}
	if amount <= 0 {
		return 0, errs.NewValidationError(map[string]string{"amount": "amount must be greater than 0"})
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return 0, err
	}

	newBalance, err := s.uow.GetUserRepository(txCtx).AdjustBalance(txCtx, userID, amount)
	if err != nil {
		s.rollback(txCtx)
		return 0, err
	}

	ledgerEntry, err := entity.NewTransaction(userID, entity.TypeDeposit, amount, "Deposit to account", nil, s.timeProvider)
	if err != nil {
		s.rollback(txCtx)
		return 0, err
	}
	if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, ledgerEntry); err != nil {
		s.rollback(txCtx)
		return 0, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return 0, err
	}

	s.logger.Info("Deposit completed", map[string]any{
		"user_id":     userID,
		"amount":      amount,
		"new_balance": newBalance,
	})

	return newBalance, nil
}
