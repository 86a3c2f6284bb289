package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	identityport "github.com/whitecat-hosting/whitecat/internal/domain/port/identity"
	"github.com/whitecat-hosting/whitecat/internal/domain/port/persistence"
	sessionport "github.com/whitecat-hosting/whitecat/internal/domain/port/session"
	"github.com/whitecat-hosting/whitecat/internal/domain/port/usecase"
)

// AuthUseCase implements the OAuth login flow against an external identity
// provider and the injected session store
type AuthUseCase struct {
	provider     identityport.Provider
	sessions     sessionport.Store
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAuthUseCase creates a new auth use case instance
func NewAuthUseCase(
	provider identityport.Provider,
	sessions sessionport.Store,
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AuthUseCase {
	return &AuthUseCase{
		provider:     provider,
		sessions:     sessions,
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// BeginLogin creates a pre-auth session carrying a random anti-forgery state
// and builds the provider authorization URL
func (u *AuthUseCase) BeginLogin(ctx context.Context) (*usecase.LoginStart, error) {
	state, err := randomState()
	if err != nil {
		return nil, err
	}

	token, err := u.sessions.Create(entity.Session{OAuthState: state})
	if err != nil {
		return nil, err
	}

	u.logger.Debug("Login started", map[string]any{
		"session": token[:8],
	})

	return &usecase.LoginStart{
		AuthorizationURL: u.provider.AuthorizationURL(state),
		SessionToken:     token,
	}, nil
}

// CompleteLogin handles the provider callback. The returned state must match
// the value stored in the pre-auth session; a missing pre-auth session or a
// different state fails the login.
func (u *AuthUseCase) CompleteLogin(ctx context.Context, preAuthToken, code, state string) (string, error) {
	if code == "" {
		return "", errs.NewValidationError(map[string]string{"code": "authorization code is required"})
	}

	preAuth, ok := u.sessions.Get(preAuthToken)
	if !ok || preAuth.OAuthState == "" || preAuth.OAuthState != state {
		u.logger.Warn("Authorization state mismatch on callback", map[string]any{
			"have_session": ok,
		})
		return "", errs.ErrStateMismatch
	}

	tokens, err := u.provider.ExchangeCode(ctx, code)
	if err != nil {
		u.logger.Error("Code exchange failed", logFieldsFor(err))
		return "", err
	}

	profile, err := u.provider.FetchProfile(ctx, tokens.AccessToken)
	if err != nil {
		u.logger.Error("Profile fetch failed", logFieldsFor(err))
		return "", err
	}

	user, err := entity.NewUser(profile.ID, profile.Username, profile.Email, profile.AvatarURL, u.timeProvider)
	if err != nil {
		return "", err
	}

	stored, err := u.userRepo.Upsert(ctx, user)
	if err != nil {
		u.logger.Error("Failed to upsert user on login", map[string]any{
			"user_id": profile.ID,
			"error":   err.Error(),
		})
		return "", err
	}

	// The pre-auth session is single use; the authenticated session gets a
	// fresh token so the pre-login cookie value never becomes a credential.
	u.sessions.Delete(preAuthToken)

	sessionToken, err := u.sessions.Create(entity.Session{
		UserID:       stored.ID,
		Username:     stored.Username,
		Email:        stored.Email,
		AvatarURL:    stored.AvatarURL,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
	if err != nil {
		return "", err
	}

	u.logger.Info("User logged in", map[string]any{
		"user_id":  stored.ID,
		"username": stored.Username,
	})

	return sessionToken, nil
}

// Logout deletes the session for the given token
func (u *AuthUseCase) Logout(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	deleted := u.sessions.Delete(token)
	if deleted {
		u.logger.Info("User logged out", map[string]any{
			"session": token[:8],
		})
	}
	return deleted
}

// CurrentUser resolves a session token to the durable user record
func (u *AuthUseCase) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errs.ErrUnauthorized
	}

	session, ok := u.sessions.Get(token)
	if !ok || !session.IsAuthenticated() {
		return nil, errs.ErrUnauthorized
	}

	user, err := u.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			// Session outlived the user row; treat as logged out.
			u.sessions.Delete(token)
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}

	return user, nil
}

// randomState generates the anti-forgery state for the authorization URL
func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// logFieldsFor extracts structured fields from errors that carry them
func logFieldsFor(err error) map[string]any {
	var authErr *errs.AuthError
	if errors.As(err, &authErr) {
		return authErr.LogFields()
	}
	return map[string]any{"error": err.Error()}
}
