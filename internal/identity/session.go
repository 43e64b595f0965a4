package identity

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Sessions is the capability check behind the admin console: a caller
// either presents a live token or it does not. Tokens are opaque uuids
// held in memory; there are no roles.
type Sessions struct {
	mu    sync.Mutex
	byTok map[string]int64
	repo  Repository
}

func NewSessions(repo Repository) *Sessions {
	return &Sessions{byTok: make(map[string]int64), repo: repo}
}

// Login verifies the credentials and issues a token. A bad email and a
// bad password are indistinguishable to the caller.
func (s *Sessions) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", ErrNotFound
	}
	if !CheckPassword(u.PasswordHash, password) {
		return "", ErrNotFound
	}
	tok := uuid.NewString()
	s.mu.Lock()
	s.byTok[tok] = u.ID
	s.mu.Unlock()
	return tok, nil
}

// Authenticate reports whether the token belongs to a live session.
func (s *Sessions) Authenticate(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.byTok[token]
	return ok
}

func (s *Sessions) Logout(token string) {
	s.mu.Lock()
	delete(s.byTok, token)
	s.mu.Unlock()
}
