package session

import (
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Store is the process-wide bearer-token capability. It is initialized on a
// successful login, torn down on logout, and injected into anything that needs
// to attach or check the token so tests can swap it out.
type Store interface {
	Init(token string)
	Token() (string, bool)
	ExpiresAt() (time.Time, bool)
	Teardown()
}

type MemoryStore struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Init stores the token. If it parses as a JWT the expiry claim is kept for
// UI hinting; verification stays with the backend, so the parse is unverified
// and an opaque token is stored as-is.
func (s *MemoryStore) Init(token string) {
	var expiresAt time.Time
	if tok, err := jwt.ParseInsecure([]byte(token)); err == nil {
		expiresAt = tok.Expiration()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.expiresAt = expiresAt
}

func (s *MemoryStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *MemoryStore) ExpiresAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt, !s.expiresAt.IsZero()
}

func (s *MemoryStore) Teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expiresAt = time.Time{}
}
