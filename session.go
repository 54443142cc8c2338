package civic

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/emmayyque/community-issue-tracker-app/internal/api"
	apierrors "github.com/emmayyque/community-issue-tracker-app/internal/errors"
	"github.com/emmayyque/community-issue-tracker-app/internal/latest"
	"github.com/emmayyque/community-issue-tracker-app/internal/store"
	"github.com/emmayyque/community-issue-tracker-app/internal/types"
)

// SessionState is the authentication state of the device.
type SessionState int

const (
	// StateHydrating means startup restoration from the store has not
	// finished yet. No session ever returns to this state later.
	StateHydrating SessionState = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateHydrating:
		return "Hydrating"
	case StateUnauthenticated:
		return "Unauthenticated"
	case StateAuthenticated:
		return "Authenticated"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

// Session is the single source of truth for "is this device
// authenticated, and as whom". It is constructed explicitly and passed
// down; there is no package-level singleton.
//
// Invariant: Authenticated implies a token is in the store and a user
// is loaded; Unauthenticated implies no in-memory user. Every
// state-changing operation draws a sequence number, so a slow response
// from an older operation can never overwrite a newer one.
type Session struct {
	c   *Client
	log zerolog.Logger

	mu    sync.Mutex
	state SessionState
	user  *types.User

	guard latest.Guard
}

// NewSession returns a session in the Hydrating state. Call Hydrate
// before relying on IsAuthenticated.
func NewSession(c *Client) *Session {
	return &Session{
		c:     c,
		log:   c.log.With().Str("component", "session").Logger(),
		state: StateHydrating,
	}
}

// Hydrate restores the session from the persistent store. With no
// stored token the result is Unauthenticated. With a token, the profile
// is fetched: a rejected token is cleared from the store, and any
// fetch failure lands in Unauthenticated rather than leaving a stale
// "authenticated with no user" state. A transport failure keeps the
// token on disk so a later Hydrate can retry.
func (s *Session) Hydrate(ctx context.Context) error {
	seq := s.guard.Begin()

	token, ok, err := s.c.store.Get(ctx, store.KeyAuthToken)
	if err != nil {
		s.apply(seq, StateUnauthenticated, nil)
		return fmt.Errorf("read stored token: %w", err)
	}
	if !ok {
		s.apply(seq, StateUnauthenticated, nil)
		return nil
	}
	_ = token // the transport attaches it; presence is all that matters here

	user, err := api.GetInfo(ctx, s.c.http, s.c.baseURL)
	if err != nil {
		if apierrors.IsAuthRejection(err) {
			if rmErr := s.c.store.Remove(ctx, store.KeyAuthToken); rmErr != nil {
				s.log.Warn().Err(rmErr).Msg("failed to clear rejected token")
			}
		}
		s.apply(seq, StateUnauthenticated, nil)
		return fmt.Errorf("hydrate profile: %w", err)
	}

	s.apply(seq, StateAuthenticated, user)
	return nil
}

// Login exchanges credentials for a token, persists it, and loads the
// profile before reporting success. A restart after Login resolves
// reproduces the authenticated state via Hydrate.
func (s *Session) Login(ctx context.Context, email, password string) error {
	token, err := api.Login(ctx, s.c.http, s.c.baseURL, types.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	return s.LoginWithToken(ctx, token)
}

// LoginWithToken persists an already-issued token and completes the
// login by fetching the profile, so an authenticated session never has
// an absent user.
func (s *Session) LoginWithToken(ctx context.Context, token string) error {
	seq := s.guard.Begin()

	if err := s.c.store.Set(ctx, store.KeyAuthToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	user, err := api.GetInfo(ctx, s.c.http, s.c.baseURL)
	if err != nil {
		if apierrors.IsAuthRejection(err) {
			if rmErr := s.c.store.Remove(ctx, store.KeyAuthToken); rmErr != nil {
				s.log.Warn().Err(rmErr).Msg("failed to clear rejected token")
			}
		}
		s.apply(seq, StateUnauthenticated, nil)
		return fmt.Errorf("login profile: %w", err)
	}

	s.apply(seq, StateAuthenticated, user)
	return nil
}

// Signup registers a new account. On success the session becomes
// Authenticated with the submitted identity and the issued token is
// persisted. A remote rejection (duplicate email, invalid fields)
// leaves the session untouched; nothing is partially committed.
func (s *Session) Signup(ctx context.Context, req types.SignupRequest) error {
	seq := s.guard.Begin()

	token, err := api.Register(ctx, s.c.http, s.c.baseURL, req)
	if err != nil {
		return err
	}
	if err := s.c.store.Set(ctx, store.KeyAuthToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	s.apply(seq, StateAuthenticated, &types.User{Name: req.Name, Email: req.Email})
	return nil
}

// Logout removes the stored token and resets the session. Local
// security state never stays authenticated after a user-initiated
// logout, so the store removal is best-effort: a failure is logged and
// the reset proceeds anyway.
func (s *Session) Logout(ctx context.Context) {
	seq := s.guard.Begin()

	if err := s.c.store.Remove(ctx, store.KeyAuthToken); err != nil {
		s.log.Warn().Err(err).Msg("failed to remove stored token during logout")
	}
	s.apply(seq, StateUnauthenticated, nil)
}

// UpdateUser merges patch into the current profile, sends the merged
// record, and replaces the in-memory user only after the server
// accepts it. There is no optimistic update: a failed call leaves the
// session exactly as it was.
func (s *Session) UpdateUser(ctx context.Context, patch types.UserPatch) error {
	s.mu.Lock()
	if s.state != StateAuthenticated || s.user == nil {
		s.mu.Unlock()
		return ErrNotAuthenticated
	}
	current := *s.user
	s.mu.Unlock()

	_, ok, err := s.c.store.Get(ctx, store.KeyAuthToken)
	if err != nil {
		return fmt.Errorf("read stored token: %w", err)
	}
	if !ok {
		return ErrNotAuthenticated
	}

	merged := types.MergeUser(current, patch)
	if err := api.UpdateProfile(ctx, s.c.http, s.c.baseURL, merged); err != nil {
		return err
	}

	s.mu.Lock()
	if s.state == StateAuthenticated {
		s.user = &merged
	}
	s.mu.Unlock()
	return nil
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsAuthenticated reports whether the session holds a verified identity.
func (s *Session) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// CurrentUser returns a copy of the loaded identity, when one exists.
func (s *Session) CurrentUser() (types.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return types.User{}, false
	}
	return *s.user, true
}

// apply commits a state transition unless a newer operation has begun
// since seq was drawn, in which case the result is discarded.
func (s *Session) apply(seq uint64, state SessionState, user *types.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.guard.Current(seq) {
		staleResponsesTotal.WithLabelValues("session").Inc()
		s.log.Debug().Uint64("seq", seq).Msg("discarding stale session transition")
		return
	}
	s.state = state
	s.user = user
}
