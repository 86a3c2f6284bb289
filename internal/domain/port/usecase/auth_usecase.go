package usecase

import (
	"context"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
)

// LoginStart holds what the login endpoint needs to redirect the browser
type LoginStart struct {
	AuthorizationURL string
	SessionToken     string // Pre-auth session carrying the anti-forgery state
}

// AuthUseCase defines the OAuth login flow operations
type AuthUseCase interface {
	// BeginLogin creates a pre-auth session with a random anti-forgery
	// state and returns the provider authorization URL to redirect to
	BeginLogin(ctx context.Context) (*LoginStart, error)

	// CompleteLogin handles the provider callback: verifies the returned
	// state against the pre-auth session, exchanges the code, fetches the
	// profile, upserts the user and promotes the session. Returns the
	// token of the authenticated session.
	CompleteLogin(ctx context.Context, preAuthToken, code, state string) (string, error)

	// Logout deletes the session. Returns false if the token was unknown.
	Logout(ctx context.Context, token string) bool

	// CurrentUser resolves a session token to the durable user record.
	// Fails with ErrUnauthorized when the token is absent, expired or
	// never completed the OAuth flow.
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}
