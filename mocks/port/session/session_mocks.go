package session

import (
	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	"github.com/stretchr/testify/mock"
)

// MockStore is a testify mock for the session.Store port
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(record entity.Session) (string, error) {
	args := m.Called(record)
	return args.String(0), args.Error(1)
}

func (m *MockStore) Get(token string) (*entity.Session, bool) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*entity.Session), args.Bool(1)
}

func (m *MockStore) Update(token string, mutate func(*entity.Session)) bool {
	args := m.Called(token, mutate)
	return args.Bool(0)
}

func (m *MockStore) Delete(token string) bool {
	args := m.Called(token)
	return args.Bool(0)
}

func (m *MockStore) Close() {
	m.Called()
}
