package entity

import "time"

// Session is the process-local record behind a session cookie. It is not the
// durable identity record: a restart drops every session and users simply
// re-authenticate.
type Session struct {
	ID           string // Opaque random token, also the cookie value
	UserID       string // Empty until the OAuth callback completes
	Username     string // Cached profile fields
	Email        string
	AvatarURL    string
	OAuthState   string // Anti-forgery state issued with the authorization URL
	AccessToken  string
	RefreshToken string
	CreatedAt    time.Time
}

// IsAuthenticated reports whether the OAuth flow completed for this session
func (s *Session) IsAuthenticated() bool {
	return s.UserID != ""
}

// Age returns how long ago the session was created
func (s *Session) Age(now time.Time) time.Duration {
	return now.Sub(s.CreatedAt)
}
