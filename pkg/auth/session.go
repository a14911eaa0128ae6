package auth

import (
	"context"
	"strings"
)

// Store persists the auth state.
// GetAuthState never fails, it falls back to Anonymous.
type Store interface {
	GetAuthState(ctx context.Context) State
	SaveAuthState(ctx context.Context, s State) error
	ClearAuthState(ctx context.Context)
}

// Session is the in-memory copy of the auth state.
// It goes through init -> loaded -> changed by login/logout -> persisted.
type Session struct {
	store       Store
	state       State
	initialized bool
}

func NewSession(store Store) *Session {
	return &Session{store: store, state: Anonymous()}
}

// Load reads the persisted state, after which the session is initialized
func (s *Session) Load(ctx context.Context) State {
	s.state = s.store.GetAuthState(ctx)
	s.initialized = true
	return s.state
}

// Login validates the credentials and persists the signed in state.
// On a validation error nothing changes. On a write error the session still
// counts as signed in for this run, the error is returned so the caller can tell the user.
func (s *Session) Login(ctx context.Context, email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	s.state = SignedIn(strings.TrimSpace(email))
	return s.store.SaveAuthState(ctx, s.state)
}

func (s *Session) Logout(ctx context.Context) {
	s.state = Anonymous()
	s.store.ClearAuthState(ctx)
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Authenticated() bool {
	return s.state.IsAuthenticated
}

func (s *Session) Initialized() bool {
	return s.initialized
}
