package session

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	sessionport "github.com/whitecat-hosting/whitecat/internal/domain/port/session"
)

// tokenBytes is the entropy of a session token; hex-encoded the token is a
// fixed 64 characters.
const tokenBytes = 32

// MemoryStore is a process-local session store. A background sweep removes
// records older than maxAge on a fixed interval; this is the only autonomous
// behavior in the system. Restarting the process drops every session, which
// is accepted: users re-authenticate.
type MemoryStore struct {
	mu           sync.RWMutex
	sessions     map[string]entity.Session
	maxAge       time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	stop chan struct{}
	done chan struct{}
}

// NewMemoryStore creates an empty store and starts its expiry sweep
func NewMemoryStore(maxAge, sweepInterval time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *MemoryStore {
	s := &MemoryStore{
		sessions:     make(map[string]entity.Session),
		maxAge:       maxAge,
		timeProvider: timeProvider,
		logger:       logger,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
	go s.sweepLoop(sweepInterval)
	return s
}

// Create stores a new session and returns its token
func (s *MemoryStore) Create(record entity.Session) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	record.ID = token
	record.CreatedAt = s.timeProvider.Now()

	s.mu.Lock()
	s.sessions[token] = record
	s.mu.Unlock()

	return token, nil
}

// Get returns a copy of the session for a token. Records past maxAge are
// reported absent even before the sweep has removed them.
func (s *MemoryStore) Get(token string) (*entity.Session, bool) {
	s.mu.RLock()
	record, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if record.Age(s.timeProvider.Now()) > s.maxAge {
		return nil, false
	}

	copied := record
	return &copied, true
}

// Update applies mutate to the session under the store's lock
func (s *MemoryStore) Update(token string, mutate func(*entity.Session)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.sessions[token]
	if !ok {
		return false
	}

	mutate(&record)
	// Token and creation time are store-owned.
	record.ID = token
	s.sessions[token] = record
	return true
}

// Delete removes the session
func (s *MemoryStore) Delete(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return false
	}
	delete(s.sessions, token)
	return true
}

// Close stops the sweep and drops all sessions
func (s *MemoryStore) Close() {
	close(s.stop)
	<-s.done

	s.mu.Lock()
	s.sessions = make(map[string]entity.Session)
	s.mu.Unlock()
}

// Len returns the number of stored sessions, expired or not
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *MemoryStore) sweepLoop(interval time.Duration) {
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stop:
			return
		}
	}
}

// sweep removes every record older than maxAge
func (s *MemoryStore) sweep() {
	now := s.timeProvider.Now()

	s.mu.Lock()
	removed := 0
	for token, record := range s.sessions {
		if record.Age(now) > s.maxAge {
			delete(s.sessions, token)
			removed++
		}
	}
	remaining := len(s.sessions)
	s.mu.Unlock()

	if removed > 0 {
		s.logger.Debug("Expired sessions swept", map[string]any{
			"removed":   removed,
			"remaining": remaining,
		})
	}
}

func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Compile-time interface check
var _ sessionport.Store = (*MemoryStore)(nil)
