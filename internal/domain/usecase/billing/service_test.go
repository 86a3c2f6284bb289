package billing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/logger"
	"github.com/whitecat-hosting/whitecat/mocks/port/core"
	"github.com/whitecat-hosting/whitecat/mocks/port/persistence"
)

var fixedTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// fixture bundles the billing service with its mocks. The unit of work's
// repositories double as the outer repositories so expectations cover both
// the prechecks and the transactional writes.
type fixture struct {
	uow        *persistence.MockUnitOfWork
	configRepo *persistence.MockServerConfigRepository
	service    *Service
}

func newFixture() *fixture {
	uow := persistence.NewMockUnitOfWork()
	configRepo := new(persistence.MockServerConfigRepository)

	tp := new(core.MockTimeProvider)
	tp.On("Now").Return(fixedTime)

	service := NewService(uow, uow.UserRepo, configRepo, uow.ServerRepo, uow.TxRepo,
		tp, logger.NewNoopLogger()).(*Service)

	return &fixture{
		uow:        uow,
		configRepo: configRepo,
		service:    service,
	}
}

func catConfig() *entity.ServerConfig {
	return &entity.ServerConfig{
		ID:           2,
		Name:         "Cat",
		CPUCores:     2,
		RAMGB:        2,
		StorageGB:    10,
		PriceMonthly: 100000,
		IsActive:     true,
	}
}

func lionConfig() *entity.ServerConfig {
	return &entity.ServerConfig{
		ID:           3,
		Name:         "Lion",
		CPUCores:     4,
		RAMGB:        4,
		StorageGB:    50,
		PriceMonthly: 200000,
		IsActive:     true,
	}
}

func TestService_Deposit(t *testing.T) {
	ctx := context.Background()

	t.Run("should credit the balance and append a deposit ledger entry", func(t *testing.T) {
		f := newFixture()

		f.uow.On("Begin", ctx).Return(nil, nil)
		f.uow.UserRepo.On("AdjustBalance", mock.Anything, "user-1", int64(50000)).
			Return(int64(150000), nil)
		f.uow.TxRepo.On("Create", mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.Type == entity.TypeDeposit &&
				tx.Amount == 50000 &&
				tx.UserID == "user-1" &&
				tx.ReferenceID == nil &&
				tx.Description == "Deposit to account"
		})).Return(nil)
		f.uow.On("Commit", mock.Anything).Return(nil)

		newBalance, err := f.service.Deposit(ctx, "user-1", 50000)

		assert.NoError(t, err)
		assert.Equal(t, int64(150000), newBalance)
		f.uow.AssertExpectations(t)
		f.uow.TxRepo.AssertExpectations(t)
	})

	t.Run("should reject a non-positive amount before touching storage", func(t *testing.T) {
		f := newFixture()

		for _, amount := range []int64{0, -500} {
			_, err := f.service.Deposit(ctx, "user-1", amount)
			assert.ErrorIs(t, err, errs.ErrValidation)
		}

		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should reject an empty user id", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.Deposit(ctx, "", 500)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should roll back when the ledger append fails", func(t *testing.T) {
		f := newFixture()

		f.uow.On("Begin", ctx).Return(nil, nil)
		f.uow.UserRepo.On("AdjustBalance", mock.Anything, "user-1", int64(500)).
			Return(int64(500), nil)
		f.uow.TxRepo.On("Create", mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		_, err := f.service.Deposit(ctx, "user-1", 500)

		assert.Error(t, err)
		f.uow.AssertCalled(t, "Rollback", mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestService_PurchaseServer(t *testing.T) {
	ctx := context.Background()

	t.Run("should debit, create the record and reference it from the ledger", func(t *testing.T) {
		// User with 300000 buys Cat for 2 months: 200000 total.
		f := newFixture()

		f.configRepo.On("GetByID", ctx, uint64(2)).Return(catConfig(), nil)
		f.uow.UserRepo.On("GetBalance", ctx, "user-1").Return(int64(300000), nil)
		f.uow.On("Begin", ctx).Return(nil, nil)
		f.uow.UserRepo.On("AdjustBalance", mock.Anything, "user-1", int64(-200000)).
			Return(int64(100000), nil)
		f.uow.ServerRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.UserServer")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.UserServer).ID = 42
			}).Return(nil)
		f.uow.TxRepo.On("Create", mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.Type == entity.TypePurchase &&
				tx.Amount == -200000 &&
				tx.ReferenceID != nil && *tx.ReferenceID == 42 &&
				tx.Description == "Purchase server Cat - my-blog (2 months)"
		})).Return(nil)
		f.uow.On("Commit", mock.Anything).Return(nil)

		result, err := f.service.PurchaseServer(ctx, "user-1", 2, "my-blog", 2)

		require.NoError(t, err)
		assert.Equal(t, int64(100000), result.NewBalance)
		assert.Equal(t, uint64(42), result.Server.ID)
		assert.Equal(t, entity.StatusActive, result.Server.Status)
		assert.Equal(t, entity.AddCalendarMonths(fixedTime, 2), result.Server.ExpiresAt)
		f.uow.AssertExpectations(t)
		f.uow.TxRepo.AssertExpectations(t)
	})

	t.Run("should fail with the detailed error when the balance cannot cover it", func(t *testing.T) {
		// Same user after the Cat purchase: 100000 left, Lion costs 200000.
		f := newFixture()

		f.configRepo.On("GetByID", ctx, uint64(3)).Return(lionConfig(), nil)
		f.uow.UserRepo.On("GetBalance", ctx, "user-1").Return(int64(100000), nil)

		result, err := f.service.PurchaseServer(ctx, "user-1", 3, "my-blog", 1)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)

		var balanceErr *errs.InsufficientBalanceError
		require.ErrorAs(t, err, &balanceErr)
		assert.Equal(t, int64(200000), balanceErr.Required)
		assert.Equal(t, int64(100000), balanceErr.Current)
		assert.Equal(t, int64(100000), balanceErr.Missing())

		// Nothing was written.
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
		f.uow.ServerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.uow.TxRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should reject an inactive config", func(t *testing.T) {
		f := newFixture()

		retired := catConfig()
		retired.IsActive = false
		f.configRepo.On("GetByID", ctx, uint64(2)).Return(retired, nil)

		_, err := f.service.PurchaseServer(ctx, "user-1", 2, "my-blog", 1)

		assert.ErrorIs(t, err, errs.ErrConfigInactive)
		f.uow.UserRepo.AssertNotCalled(t, "GetBalance", mock.Anything, mock.Anything)
	})

	t.Run("should fail on an unknown config", func(t *testing.T) {
		f := newFixture()

		f.configRepo.On("GetByID", ctx, uint64(99)).Return(nil, errs.ErrConfigNotFound)

		_, err := f.service.PurchaseServer(ctx, "user-1", 99, "my-blog", 1)

		assert.ErrorIs(t, err, errs.ErrConfigNotFound)
	})

	t.Run("should validate input before any money moves", func(t *testing.T) {
		f := newFixture()

		f.configRepo.On("GetByID", ctx, uint64(2)).Return(catConfig(), nil)

		_, err := f.service.PurchaseServer(ctx, "user-1", 2, "ab", 1)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = f.service.PurchaseServer(ctx, "user-1", 2, "my-blog", 25)
		assert.ErrorIs(t, err, errs.ErrValidation)

		f.uow.UserRepo.AssertNotCalled(t, "GetBalance", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should roll back when the record insert fails", func(t *testing.T) {
		f := newFixture()

		f.configRepo.On("GetByID", ctx, uint64(2)).Return(catConfig(), nil)
		f.uow.UserRepo.On("GetBalance", ctx, "user-1").Return(int64(300000), nil)
		f.uow.On("Begin", ctx).Return(nil, nil)
		f.uow.UserRepo.On("AdjustBalance", mock.Anything, "user-1", int64(-100000)).
			Return(int64(200000), nil)
		f.uow.ServerRepo.On("Create", mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		_, err := f.service.PurchaseServer(ctx, "user-1", 2, "my-blog", 1)

		assert.Error(t, err)
		f.uow.AssertCalled(t, "Rollback", mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestService_ExtendServer(t *testing.T) {
	ctx := context.Background()

	ownedServer := func() *entity.UserServer {
		return &entity.UserServer{
			ID:         7,
			UserID:     "user-1",
			ConfigID:   2,
			ServerName: "my-blog",
			Status:     entity.StatusActive,
			ExpiresAt:  time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("should debit once and push the expiry out", func(t *testing.T) {
		f := newFixture()

		extended := ownedServer()
		extended.ExpiresAt = time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

		f.uow.ServerRepo.On("GetByID", ctx, uint64(7)).Return(ownedServer(), nil)
		f.configRepo.On("GetByID", ctx, uint64(2)).Return(catConfig(), nil)
		f.uow.UserRepo.On("GetBalance", ctx, "user-1").Return(int64(300000), nil)
		f.uow.On("Begin", ctx).Return(nil, nil)
		f.uow.UserRepo.On("AdjustBalance", mock.Anything, "user-1", int64(-100000)).
			Return(int64(200000), nil)
		f.uow.ServerRepo.On("Extend", mock.Anything, uint64(7), 1).Return(extended, nil)
		f.uow.TxRepo.On("Create", mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.Type == entity.TypePurchase &&
				tx.Amount == -100000 &&
				tx.ReferenceID != nil && *tx.ReferenceID == 7 &&
				tx.Description == "Extend server my-blog (1 months)"
		})).Return(nil)
		f.uow.On("Commit", mock.Anything).Return(nil)

		result, err := f.service.ExtendServer(ctx, "user-1", 7, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(200000), result.NewBalance)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), result.Server.ExpiresAt)
		f.uow.AssertExpectations(t)
	})

	t.Run("should report a server owned by someone else as not found", func(t *testing.T) {
		f := newFixture()

		other := ownedServer()
		other.UserID = "user-2"
		f.uow.ServerRepo.On("GetByID", ctx, uint64(7)).Return(other, nil)

		result, err := f.service.ExtendServer(ctx, "user-1", 7, 1)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrServerNotFound)
		f.configRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should fail on an unknown server id", func(t *testing.T) {
		f := newFixture()

		f.uow.ServerRepo.On("GetByID", ctx, uint64(404)).Return(nil, errs.ErrServerNotFound)

		_, err := f.service.ExtendServer(ctx, "user-1", 404, 1)

		assert.ErrorIs(t, err, errs.ErrServerNotFound)
	})

	t.Run("should reject months outside 1-24 without reading storage", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.ExtendServer(ctx, "user-1", 7, 0)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = f.service.ExtendServer(ctx, "user-1", 7, 25)
		assert.ErrorIs(t, err, errs.ErrValidation)

		f.uow.ServerRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("should fail with the detailed error when the balance cannot cover it", func(t *testing.T) {
		f := newFixture()

		f.uow.ServerRepo.On("GetByID", ctx, uint64(7)).Return(ownedServer(), nil)
		f.configRepo.On("GetByID", ctx, uint64(2)).Return(catConfig(), nil)
		f.uow.UserRepo.On("GetBalance", ctx, "user-1").Return(int64(50000), nil)

		_, err := f.service.ExtendServer(ctx, "user-1", 7, 1)

		var balanceErr *errs.InsufficientBalanceError
		require.ErrorAs(t, err, &balanceErr)
		assert.Equal(t, int64(100000), balanceErr.Required)
		assert.Equal(t, int64(50000), balanceErr.Current)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}

func TestService_Transactions(t *testing.T) {
	ctx := context.Background()

	t.Run("should default the limit when none is given", func(t *testing.T) {
		f := newFixture()

		f.uow.TxRepo.On("ListByUser", ctx, "user-1", defaultTransactionLimit).
			Return([]*entity.Transaction{}, nil)

		_, err := f.service.Transactions(ctx, "user-1", 0)

		assert.NoError(t, err)
		f.uow.TxRepo.AssertExpectations(t)
	})

	t.Run("should cap an oversized limit", func(t *testing.T) {
		f := newFixture()

		f.uow.TxRepo.On("ListByUser", ctx, "user-1", maxTransactionLimit).
			Return([]*entity.Transaction{}, nil)

		_, err := f.service.Transactions(ctx, "user-1", 5000)

		assert.NoError(t, err)
		f.uow.TxRepo.AssertExpectations(t)
	})

	t.Run("should reject an empty user id", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.Transactions(ctx, "", 10)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestService_GetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the repository balance", func(t *testing.T) {
		f := newFixture()

		f.uow.UserRepo.On("GetBalance", ctx, "user-1").Return(int64(300000), nil)

		balance, err := f.service.GetBalance(ctx, "user-1")

		assert.NoError(t, err)
		assert.Equal(t, int64(300000), balance)
	})

	t.Run("should reject an empty user id", func(t *testing.T) {
		f := newFixture()

		_, err := f.service.GetBalance(ctx, "")

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestService_Servers(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	servers := []*entity.UserServer{{ID: 1, UserID: "user-1"}}
	f.uow.ServerRepo.On("ListByUser", ctx, "user-1").Return(servers, nil)

	result, err := f.service.Servers(ctx, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, servers, result)
}
