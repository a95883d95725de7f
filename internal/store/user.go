package store

import (
	"context"
	"net/http"
	"sync"

	"github.com/nharmon/threadview/internal/types"
)

// UserService resolves the current user, caching the first successful
// lookup for the life of the process.
type UserService struct {
	client *Client

	mu     sync.Mutex
	cached *types.User
}

// NewUserService wraps a store client with user resolution.
func NewUserService(client *Client) *UserService {
	return &UserService{client: client}
}

// CurrentUser returns the authenticated user, resolving it remotely on
// first call.
func (s *UserService) CurrentUser(ctx context.Context) (*types.User, error) {
	s.mu.Lock()
	if s.cached != nil {
		user := *s.cached
		s.mu.Unlock()
		return &user, nil
	}
	s.mu.Unlock()

	var user types.User
	if err := s.client.doJSON(ctx, http.MethodGet, "/api/2/user/me", nil, nil, &user); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = &user
	s.mu.Unlock()
	result := user
	return &result, nil
}

// Prime seeds the cache with a known identity, used when a cached user
// was persisted locally from an earlier session.
func (s *UserService) Prime(user types.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached == nil {
		s.cached = &user
	}
}
