package identity

import (
	"context"

	"github.com/whitecat-hosting/whitecat/internal/domain/port/identity"
	"github.com/stretchr/testify/mock"
)

// MockProvider is a testify mock for the identity.Provider port
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) AuthorizationURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockProvider) ExchangeCode(ctx context.Context, code string) (*identity.Tokens, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Tokens), args.Error(1)
}

func (m *MockProvider) FetchProfile(ctx context.Context, accessToken string) (*identity.Profile, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Profile), args.Error(1)
}
