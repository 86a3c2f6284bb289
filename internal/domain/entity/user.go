package entity

import (
	"time"

	errs "github.com/whitecat-hosting/whitecat/internal/domain/error"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
)

// User represents an account holder identified by the external identity
// provider. The id is the provider's stable user id, not an internal one.
type User struct {
	ID        string    // Identity-provider user id (primary key)
	Username  string    // Display name cached from the provider
	Email     string    // Optional email from the provider
	AvatarURL string    // Derived avatar CDN URL
	Balance   int64     // Balance in whole currency units, never negative
	CreatedAt time.Time // When the user first logged in
	UpdatedAt time.Time // When the profile was last refreshed
}

// NewUser creates a user from provider profile fields with a zero balance
func NewUser(id, username, email, avatarURL string, timeProvider coreport.TimeProvider) (*User, error) {
	if id == "" {
		return nil, errs.ErrUserNotFound
	}
	if username == "" {
		return nil, errs.NewValidationError(map[string]string{"username": "username is required"})
	}

	now := timeProvider.Now()
	return &User{
		ID:        id,
		Username:  username,
		Email:     email,
		AvatarURL: avatarURL,
		Balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CanAfford checks if the user's balance covers the given amount
func (u *User) CanAfford(amount int64) bool {
	return u.Balance >= amount
}

// RefreshProfile updates the mutable profile fields on login
func (u *User) RefreshProfile(username, email, avatarURL string, timeProvider coreport.TimeProvider) {
	u.Username = username
	u.Email = email
	u.AvatarURL = avatarURL
	u.UpdatedAt = timeProvider.Now()
}
