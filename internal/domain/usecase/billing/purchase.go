package billing

import (
	"context"
	"fmt"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
	"github.com/whitecat-hosting/whitecat/internal/domain/port/usecase"
)

// PurchaseServer buys a server on the given tier for the given number of
// calendar months.
//
// Sequence: load and check the tier, precheck the balance (for the detailed
// error), then inside one storage transaction debit the balance, create the
// purchase record and append the ledger entry referencing it. A failure in
// any step rolls back every other.
func (s *Service) PurchaseServer(ctx context.Context, userID string, configID uint64, serverName string, months int) (*usecase.PurchaseResult, error) {
	if userID == "" {
		return nil, errs.ErrUnauthorized
	}

	config, err := s.configRepo.GetByID(ctx, configID)
	if err != nil {
		return nil, err
	}
	if !config.IsActive {
		return nil, errs.ErrConfigInactive
	}

	// Validates server name and month range before any money moves.
	server, err := entity.NewUserServer(userID, configID, serverName, months, s.timeProvider)
	if err != nil {
		return nil, err
	}

	totalPrice := config.TotalPrice(months)
	if err := s.checkBalance(ctx, userID, totalPrice); err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	newBalance, err := s.uow.GetUserRepository(txCtx).AdjustBalance(txCtx, userID, -totalPrice)
	if err != nil {
		s.rollback(txCtx)
		// A concurrent debit can still win between the precheck and the
		// atomic adjustment; re-read so the error carries real amounts.
		if errs.IsInsufficientBalanceError(err) {
			if current, balErr := s.userRepo.GetBalance(ctx, userID); balErr == nil {
				return nil, errs.NewInsufficientBalanceError(userID, totalPrice, current)
			}
		}
		return nil, err
	}

	if err := s.uow.GetUserServerRepository(txCtx).Create(txCtx, server); err != nil {
		s.rollback(txCtx)
		s.logger.Error("Server creation failed, purchase rolled back", map[string]any{
			"user_id":   userID,
			"config_id": configID,
			"error":     err.Error(),
		})
		return nil, err
	}

	description := fmt.Sprintf("Purchase server %s - %s (%d months)", config.Name, serverName, months)
	referenceID := server.ID
	ledgerEntry, err := entity.NewTransaction(userID, entity.TypePurchase, -totalPrice, description, &referenceID, s.timeProvider)
	if err != nil {
		s.rollback(txCtx)
		return nil, err
	}
	if err := s.uow.GetTransactionRepository(txCtx).Create(txCtx, ledgerEntry); err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Server purchased", map[string]any{
		"user_id":     userID,
		"server_id":   server.ID,
		"config":      config.Name,
		"months":      months,
		"total_price": totalPrice,
		"new_balance": newBalance,
	})

	return &usecase.PurchaseResult{
		Server:     server,
		NewBalance: newBalance,
	}, nil
}
