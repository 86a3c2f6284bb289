package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements the UserRepository port using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:        userModel.ID,
		Username:  userModel.Username,
		Email:     userModel.Email,
		AvatarURL: userModel.AvatarURL,
		Balance:   userModel.Balance,
		CreatedAt: userModel.CreatedAt,
		UpdatedAt: userModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by their identity-provider id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}
	return r.modelToEntity(&userModel), nil
}

// Upsert inserts the user on first login or refreshes the mutable profile
// fields on later logins. The stored balance is never touched.
func (r *UserRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	var existing model.User
	result := r.db.WithContext(ctx).First(&existing, "id = ?", user.ID)

	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, r.handleDatabaseError("upserting user", result.Error, user.ID)
		}

		userModel := model.User{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			AvatarURL: user.AvatarURL,
			Balance:   0,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		}
		if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
			return nil, r.handleDatabaseError("creating user", err, user.ID)
		}

		r.logger.Info("User created", map[string]any{
			"user_id":  user.ID,
			"username": user.Username,
		})
		return r.modelToEntity(&userModel), nil
	}

	update := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username":   user.Username,
			"email":      user.Email,
			"avatar_url": user.AvatarURL,
			"updated_at": r.timeProvider.Now(),
		})
	if update.Error != nil {
		return nil, r.handleDatabaseError("updating user profile", update.Error, user.ID)
	}

	return r.GetByID(ctx, user.ID)
}

// GetBalance returns the user's current balance
func (r *UserRepository) GetBalance(ctx context.Context, id string) (int64, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return user.Balance, nil
}

// AdjustBalance atomically adds delta to the balance in a single statement.
// The non-negative guard lives in the WHERE clause so two concurrent debits
// cannot both pass an application-side check and overdraw the account.
func (r *UserRepository) AdjustBalance(ctx context.Context, id string, delta int64) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND balance + ? >= 0", id, delta).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return 0, r.handleDatabaseError("adjusting balance", result.Error, id)
	}

	if result.RowsAffected == 0 {
		// Either the user is missing or the debit would overdraw.
		var userModel model.User
		if err := r.db.WithContext(ctx).First(&userModel, "id = ?", id).Error; err != nil {
			return 0, r.handleDatabaseError("adjusting balance", err, id)
		}

		r.logger.Warn("Balance adjustment rejected", map[string]any{
			"user_id": id,
			"delta":   delta,
			"balance": userModel.Balance,
		})
		return 0, errs.NewInsufficientBalanceError(id, -delta, userModel.Balance)
	}

	balance, err := r.GetBalance(ctx, id)
	if err != nil {
		return 0, err
	}

	r.logger.Debug("Balance adjusted", map[string]any{
		"user_id":     id,
		"delta":       delta,
		"new_balance": balance,
	})
	return balance, nil
}

// Delete removes the user; servers and ledger rows cascade at the storage layer
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting user", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	r.logger.Info("User deleted", map[string]any{
		"user_id": id,
	})
	return nil
}
