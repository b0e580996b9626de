package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"storefront-gateway/internal/domain"
	"storefront-gateway/pkg/logger"
	"storefront-gateway/pkg/utils"

	"github.com/goccy/go-json"
)

type authAPI interface {
	Login(ctx context.Context, in domain.LoginInput) (*domain.LoginResult, error)
	Register(ctx context.Context, in domain.RegisterInput) (*domain.LoginResult, error)
	Me(ctx context.Context) (*domain.Customer, error)
	Logout(ctx context.Context) error
}

// AuthSession tracks the logged-in customer for the gateway process. The
// token is minted and validated remotely; locally it is only persisted,
// inspected for expiry and attached to outgoing requests. The cart and
// wishlist stores never consult it.
type AuthSession struct {
	mu      sync.Mutex
	store   domain.DocumentStore
	api     authAPI
	loading bool
	session *domain.Session
}

func NewAuthSession(store domain.DocumentStore, api authAPI) *AuthSession {
	s := &AuthSession{store: store, api: api}
	s.rehydrate()
	return s
}

func (s *AuthSession) rehydrate() {
	raw, ok := s.store.Get(domain.SessionStoreKey)
	if !ok {
		return
	}
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil || session.Token == "" {
		return
	}
	if utils.IsTokenExpired(session.Token) {
		logger.Debug().Msg("Dropping expired stored session")
		_ = s.store.Delete(domain.SessionStoreKey)
		return
	}
	s.session = &session
}

// Current returns the logged-in customer, or nil.
func (s *AuthSession) Current() *domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	return s.session.Customer
}

// Loading reports whether a profile fetch is in flight.
func (s *AuthSession) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Token returns the current bearer token, or "". Matches api.TokenSource.
func (s *AuthSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

// Login authenticates against the remote API and adopts the returned token.
func (s *AuthSession) Login(ctx context.Context, in domain.LoginInput) (*domain.Customer, error) {
	result, err := s.api.Login(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, result)
}

// Register creates an account remotely and adopts the returned token.
func (s *AuthSession) Register(ctx context.Context, in domain.RegisterInput) (*domain.Customer, error) {
	result, err := s.api.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.adopt(ctx, result)
}

// AdoptToken takes an externally obtained token, persists it and fetches
// the current profile for it.
func (s *AuthSession) AdoptToken(ctx context.Context, token string) (*domain.Customer, error) {
	if utils.IsTokenExpired(token) {
		return nil, fmt.Errorf("token is expired or malformed")
	}
	return s.adopt(ctx, &domain.LoginResult{Token: token})
}

func (s *AuthSession) adopt(ctx context.Context, result *domain.LoginResult) (*domain.Customer, error) {
	s.mu.Lock()
	s.loading = true
	s.session = &domain.Session{
		Token:     result.Token,
		Customer:  result.Customer,
		AdoptedAt: time.Now(),
	}
	s.persistLocked()
	s.mu.Unlock()

	customer := result.Customer
	if customer == nil {
		fetched, err := s.api.Me(ctx)
		if err != nil {
			s.mu.Lock()
			s.loading = false
			s.mu.Unlock()
			return nil, fmt.Errorf("fetch profile: %w", err)
		}
		customer = fetched
	}

	s.mu.Lock()
	s.loading = false
	if s.session != nil {
		s.session.Customer = customer
		s.persistLocked()
	}
	s.mu.Unlock()
	return customer, nil
}

// Logout invalidates the remote session and clears local token storage.
// The local clear happens regardless of the remote call's outcome.
func (s *AuthSession) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		logger.Warn().Err(err).Msg("Remote logout failed, clearing local session anyway")
	}

	s.mu.Lock()
	s.session = nil
	s.loading = false
	_ = s.store.Delete(domain.SessionStoreKey)
	s.mu.Unlock()
}

func (s *AuthSession) persistLocked() {
	if raw, err := json.Marshal(s.session); err == nil {
		_ = s.store.Set(domain.SessionStoreKey, raw)
	}
}
