package session

import "github.com/whitecat-hosting/whitecat/internal/domain/entity"

// Store maps opaque tokens to session records. Implementations are
// process-local and injected at composition time, never referenced as a
// package-level singleton.
type Store interface {
	// Create stores a new session built from the given record (the token
	// and creation time are assigned by the store) and returns its token
	Create(record entity.Session) (string, error)

	// Get returns the session for a token, or false if absent or expired
	Get(token string) (*entity.Session, bool)

	// Update applies mutate to the session under the store's lock.
	// Returns false if the token is absent.
	Update(token string, mutate func(*entity.Session)) bool

	// Delete removes the session. Returns false if the token was absent.
	Delete(token string) bool

	// Close stops the background expiry sweep and drops all sessions
	Close()
}
