package usecase

import (
	"context"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	"github.com/whitecat-hosting/whitecat/internal/domain/port/usecase"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a testify mock for the usecase.AuthUseCase port
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) BeginLogin(ctx context.Context) (*usecase.LoginStart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.LoginStart), args.Error(1)
}

func (m *MockAuthUseCase) CompleteLogin(ctx context.Context, preAuthToken, code, state string) (string, error) {
	args := m.Called(ctx, preAuthToken, code, state)
	return args.String(0), args.Error(1)
}

func (m *MockAuthUseCase) Logout(ctx context.Context, token string) bool {
	args := m.Called(ctx, token)
	return args.Bool(0)
}

func (m *MockAuthUseCase) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// MockBillingUseCase is a testify mock for the usecase.BillingUseCase port
type MockBillingUseCase struct {
	mock.Mock
}

func (m *MockBillingUseCase) GetBalance(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillingUseCase) Deposit(ctx context.Context, userID string, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillingUseCase) PurchaseServer(ctx context.Context, userID string, configID uint64, serverName string, months int) (*usecase.PurchaseResult, error) {
	args := m.Called(ctx, userID, configID, serverName, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PurchaseResult), args.Error(1)
}

func (m *MockBillingUseCase) ExtendServer(ctx context.Context, userID string, serverID uint64, months int) (*usecase.ExtendResult, error) {
	args := m.Called(ctx, userID, serverID, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ExtendResult), args.Error(1)
}

func (m *MockBillingUseCase) Transactions(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

func (m *MockBillingUseCase) Servers(ctx context.Context, userID string) ([]*entity.UserServer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserServer), args.Error(1)
}

// MockCatalogUseCase is a testify mock for the usecase.CatalogUseCase port
type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) ListConfigs(ctx context.Context) ([]*entity.ServerConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ServerConfig), args.Error(1)
}

func (m *MockCatalogUseCase) GetConfig(ctx context.Context, id uint64) (*entity.ServerConfig, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ServerConfig), args.Error(1)
}
