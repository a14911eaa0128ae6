// Package auth holds the login gate: who is signed in and how that is persisted.
// There is no backend to check credentials against, a well formed email and
// password are enough to sign in.
package auth

import (
	"errors"
	"regexp"
	"strings"
)

type User struct {
	Email string `json:"email"`
}

type State struct {
	IsAuthenticated bool  `json:"isAuthenticated"`
	User            *User `json:"user"`
}

// Anonymous is the state of a fresh install
func Anonymous() State {
	return State{IsAuthenticated: false, User: nil}
}

func SignedIn(email string) State {
	return State{IsAuthenticated: true, User: &User{Email: email}}
}

const MinPasswordLength = 6

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("email is invalid")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password is too short")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
