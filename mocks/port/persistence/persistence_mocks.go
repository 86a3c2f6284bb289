package persistence

import (
	"context"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	"github.com/whitecat-hosting/whitecat/internal/domain/port/persistence"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock for the UserRepository port
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetBalance(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) AdjustBalance(ctx context.Context, id string, delta int64) (int64, error) {
	args := m.Called(ctx, id, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockServerConfigRepository is a testify mock for the ServerConfigRepository port
type MockServerConfigRepository struct {
	mock.Mock
}

func (m *MockServerConfigRepository) GetByID(ctx context.Context, id uint64) (*entity.ServerConfig, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ServerConfig), args.Error(1)
}

func (m *MockServerConfigRepository) GetByName(ctx context.Context, name string) (*entity.ServerConfig, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ServerConfig), args.Error(1)
}

func (m *MockServerConfigRepository) ListActive(ctx context.Context) ([]*entity.ServerConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ServerConfig), args.Error(1)
}

func (m *MockServerConfigRepository) List(ctx context.Context) ([]*entity.ServerConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ServerConfig), args.Error(1)
}

func (m *MockServerConfigRepository) Create(ctx context.Context, config *entity.ServerConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockServerConfigRepository) Update(ctx context.Context, config *entity.ServerConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

// MockUserServerRepository is a testify mock for the UserServerRepository port
type MockUserServerRepository struct {
	mock.Mock
}

func (m *MockUserServerRepository) GetByID(ctx context.Context, id uint64) (*entity.UserServer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserServer), args.Error(1)
}

func (m *MockUserServerRepository) ListByUser(ctx context.Context, userID string) ([]*entity.UserServer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserServer), args.Error(1)
}

func (m *MockUserServerRepository) Create(ctx context.Context, server *entity.UserServer) error {
	args := m.Called(ctx, server)
	return args.Error(0)
}

func (m *MockUserServerRepository) Extend(ctx context.Context, id uint64, months int) (*entity.UserServer, error) {
	args := m.Called(ctx, id, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserServer), args.Error(1)
}

func (m *MockUserServerRepository) UpdateStatus(ctx context.Context, id uint64, status entity.ServerStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockUserServerRepository) FindExpired(ctx context.Context) ([]*entity.UserServer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UserServer), args.Error(1)
}

// MockTransactionRepository is a testify mock for the TransactionRepository port
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

// MockUnitOfWork is a testify mock for the UnitOfWork port. The repository
// accessors return the repositories it was seeded with, so tests can assert
// that writes happened through the transactional context.
type MockUnitOfWork struct {
	mock.Mock

	UserRepo   *MockUserRepository
	ServerRepo *MockUserServerRepository
	TxRepo     *MockTransactionRepository
}

// NewMockUnitOfWork creates a unit of work mock with fresh repository mocks
func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		UserRepo:   new(MockUserRepository),
		ServerRepo: new(MockUserServerRepository),
		TxRepo:     new(MockTransactionRepository),
	}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return ctx, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return m.UserRepo
}

func (m *MockUnitOfWork) GetUserServerRepository(ctx context.Context) persistence.UserServerRepository {
	return m.ServerRepo
}

func (m *MockUnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return m.TxRepo
}
