package repository

import (
	"context"
	"fmt"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements the TransactionRepository port using GORM.
// The ledger is append-only; this type deliberately has no update or delete.
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(txModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          txModel.ID,
		UserID:      txModel.UserID,
		Type:        entity.TransactionType(txModel.Type),
		Amount:      txModel.Amount,
		Description: txModel.Description,
		ReferenceID: txModel.ReferenceID,
		CreatedAt:   txModel.CreatedAt,
	}
}

// Create appends a ledger entry and fills in its generated id
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	txModel := model.Transaction{
		UserID:      transaction.UserID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Description: transaction.Description,
		ReferenceID: transaction.ReferenceID,
		CreatedAt:   transaction.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&txModel).Error; err != nil {
		r.logger.Error("Database error when creating transaction", map[string]any{
			"user_id": transaction.UserID,
			"type":    string(transaction.Type),
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	transaction.ID = txModel.ID
	r.logger.Debug("Transaction recorded", map[string]any{
		"transaction_id": txModel.ID,
		"user_id":        txModel.UserID,
		"type":           txModel.Type,
		"amount":         txModel.Amount,
	})
	return nil
}

// ListByUser returns the user's most recent ledger entries, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var txModels []model.Transaction
	if err := query.Find(&txModels).Error; err != nil {
		r.logger.Error("Database error when listing transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	transactions := make([]*entity.Transaction, 0, len(txModels))
	for i := range txModels {
		transactions = append(transactions, r.modelToEntity(&txModels[i]))
	}
	return transactions, nil
}
