package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  error
	}{
		{"", ErrEmailRequired},
		{"   ", ErrEmailRequired},
		{"ada", ErrEmailInvalid},
		{"ada@", ErrEmailInvalid},
		{"ada@example", ErrEmailInvalid},
		{"ada lovelace@example.com", ErrEmailInvalid},
		{"ada@example.com", nil},
		{" ada@example.co.uk ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			is := is.New(t)
			is.Equal(ValidateEmail(tt.email), tt.want)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	is := is.New(t)
	is.Equal(ValidatePassword(""), ErrPasswordRequired)
	is.Equal(ValidatePassword("12345"), ErrPasswordTooShort)
	is.NoErr(ValidatePassword("123456"))
	// counted in characters, not bytes
	is.Equal(ValidatePassword("كلمةس"), ErrPasswordTooShort)
}

type memStore struct {
	state    *State
	saveErr  error
	cleared  int
	saveHits int
}

func (m *memStore) GetAuthState(context.Context) State {
	if m.state == nil {
		return Anonymous()
	}
	return *m.state
}

func (m *memStore) SaveAuthState(_ context.Context, s State) error {
	m.saveHits++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.state = &s
	return nil
}

func (m *memStore) ClearAuthState(context.Context) {
	m.cleared++
	m.state = nil
}

func TestSession(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh install is anonymous", func(t *testing.T) {
		is := is.New(t)
		s := NewSession(&memStore{})
		is.True(!s.Initialized())
		is.Equal(s.Load(ctx), State{IsAuthenticated: false, User: nil})
		is.True(s.Initialized())
		is.True(!s.Authenticated())
	})

	t.Run("login persists, a new session picks it up", func(t *testing.T) {
		is := is.New(t)
		store := &memStore{}
		s := NewSession(store)
		s.Load(ctx)
		is.NoErr(s.Login(ctx, " ada@example.com ", "secret1"))
		is.True(s.Authenticated())
		is.Equal(s.State().User.Email, "ada@example.com")

		again := NewSession(store)
		is.Equal(again.Load(ctx), SignedIn("ada@example.com"))
	})

	t.Run("invalid credentials change nothing", func(t *testing.T) {
		is := is.New(t)
		store := &memStore{}
		s := NewSession(store)
		is.Equal(s.Login(ctx, "nope", "secret1"), ErrEmailInvalid)
		is.Equal(s.Login(ctx, "ada@example.com", "123"), ErrPasswordTooShort)
		is.True(!s.Authenticated())
		is.Equal(store.saveHits, 0)
	})

	t.Run("write errors are returned", func(t *testing.T) {
		is := is.New(t)
		boom := errors.New("boom")
		s := NewSession(&memStore{saveErr: boom})
		is.Equal(s.Login(ctx, "ada@example.com", "secret1"), boom)
	})

	t.Run("logout clears", func(t *testing.T) {
		is := is.New(t)
		store := &memStore{}
		s := NewSession(store)
		is.NoErr(s.Login(ctx, "ada@example.com", "secret1"))
		s.Logout(ctx)
		is.True(!s.Authenticated())
		is.Equal(store.cleared, 1)
		is.Equal(NewSession(store).Load(ctx), Anonymous())
	})
}
