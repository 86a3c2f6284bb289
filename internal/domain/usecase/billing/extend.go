package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
	"github.com/whitecat-hosting/whitecat/internal/domain/port/usecase"
)

// ExtendServer pushes an owned server's expiry out by the given number of
// calendar months, debiting the tier's monthly price per month.
//
// Ownership failures surface as ErrServerNotFound so callers cannot probe
// which server ids exist.
func (s *Service) ExtendServer(ctx context.Context, userID string, serverID uint64, months int) (*usecase.ExtendResult, error) {
	if userID == "" {
		return nil, errs.ErrUnauthorized
	}
	if months < 1 || months > 24 {
		return nil, errs.NewValidationError(map[string]string{"months": "months must be between 1 and 24"})
	}

	server, err := s.serverRepo.GetByID(ctx, serverID)
	if err != nil {
		return nil, err
	}
	if !server.IsOwnedBy(userID) {
		return nil, errs.ErrServerNotFound
	}

	config, err := s.configRepo.GetByID(ctx, server.ConfigID)
	if err != nil {
		if errors.Is(err, errs.ErrConfigNotFound) {
			// The referenced tier was deleted out from under the server.
			s.logger.Error("Server references missing config", map[string]any{
				"server_id": serverID,
				"config_id": server.ConfigID,
			})
		}
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
		if errs.IsInsufficientBalanceError(err) {
			if current, balErr := s.userRepo.GetBalance(ctx, userID); balErr == nil {
				return nil, errs.NewInsufficientBalanceError(userID, totalPrice, current)
			}
		}
		return nil, err
	}

	extended, err := s.uow.GetUserServerRepository(txCtx).Extend(txCtx, serverID, months)
	if err != nil {
		s.rollback(txCtx)
		return nil, err
	}

	description := fmt.Sprintf("Extend server %s (%d months)", server.ServerName, months)
	referenceID := serverID
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

	s.logger.Info("Server extended", map[string]any{
		"user_id":     userID,
		"server_id":   serverID,
		"months":      months,
		"total_price": totalPrice,
		"expires_at":  extended.ExpiresAt,
		"new_balance": newBalance,
	})

	return &usecase.ExtendResult{
		Server:     extended,
		NewBalance: newBalance,
	}, nil
}
