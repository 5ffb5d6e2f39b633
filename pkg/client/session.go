package client

import (
	"context"
	stderrors "errors"
	"net/http"
	"sync"

	"github.com/pkg/errors"
)

// Session mirrors the signed-in user on the client side.
type Session struct {
	client   *Client
	store    TokenStore
	notifier Notifier
	loading  inflight

	mu            sync.RWMutex
	user          *User
	authenticated bool
}

// NewSession wires a session to client. Any 401 seen by client resets the session.
func NewSession(client *Client, store TokenStore, notifier Notifier) *Session {
	if store == nil {
		store = NewMemoryStore()
	}

	s := &Session{
		client:   client,
		store:    store,
		notifier: notifierOrNop(notifier),
	}
	client.OnUnauthorized(func() {
		if err := s.reset(); err != nil {
			s.notifier.Error(err.Error())
		}
	})

	return s
}

// User returns the signed-in user, or nil.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user
}

// IsAuthenticated reports whether the last known state is signed in.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.authenticated
}

// Loading reports whether a session call is in flight.
func (s *Session) Loading() bool {
	return s.loading.active()
}

// Init restores the session. Without a persisted token no request is made;
// otherwise the server is asked to confirm it and persisted copies are dropped on failure.
func (s *Session) Init(ctx context.Context) error {
	defer s.loading.begin()()

	persisted, err := s.store.Load()
	if err != nil {
		return err
	}
	if persisted.Token == "" {
		s.set(nil)

		return nil
	}

	if s.client.sessionCookie() == "" {
		if err := s.client.restoreSessionCookie(persisted.Token); err != nil {
			return err
		}
	}

	var out struct {
		User *User `json:"user"`
	}
	if _, err := s.client.Do(ctx, http.MethodGet, "/auth/check", nil, &out); err != nil {
		return stderrors.Join(err, s.reset())
	}

	s.set(out.User)

	return nil
}

// Signup creates an account and signs in.
func (s *Session) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	defer s.loading.begin()()

	user, err := s.authenticate(ctx, "/auth/signup", req)
	if err != nil {
		s.notifier.Error(messageOf(err, "Signup failed"))

		return nil, err
	}
	s.notifier.Success("Account created successfully!")

	return user, nil
}

// Login signs in with email and password.
func (s *Session) Login(ctx context.Context, req LoginRequest) (*User, error) {
	defer s.loading.begin()()

	user, err := s.authenticate(ctx, "/auth/login", req)
	if err != nil {
		s.notifier.Error(messageOf(err, "Login failed"))

		return nil, err
	}
	s.notifier.Success("Welcome back, " + user.DisplayName() + "!")

	return user, nil
}

// Logout asks the server to clear the cookie. Local state is cleared even when that fails;
// the returned error also reports persisted copies that could not be removed.
func (s *Session) Logout(ctx context.Context) error {
	defer s.loading.begin()()

	_, err := s.client.Do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if clearErr := s.reset(); clearErr != nil {
		err = stderrors.Join(err, clearErr)
	}
	if err != nil {
		s.notifier.Error(messageOf(err, "Logout failed"))

		return err
	}
	s.notifier.Success("Logged out successfully")

	return nil
}

// UpdateProfile changes the signed-in user's profile and persists the new copy.
func (s *Session) UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error) {
	defer s.loading.begin()()

	var out struct {
		User *User `json:"user"`
	}
	if _, err := s.client.Do(ctx, http.MethodPut, "/auth/update-profile", update, &out); err != nil {
		s.notifier.Error(messageOf(err, "Profile update failed"))

		return nil, err
	}

	persisted, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	persisted.User = out.User
	if err := s.store.Save(persisted); err != nil {
		return nil, err
	}

	s.set(out.User)
	s.notifier.Success("Profile updated successfully!")

	return out.User, nil
}

func (s *Session) authenticate(ctx context.Context, path string, body any) (*User, error) {
	var out struct {
		Token string `json:"token"`
		User  *User  `json:"user"`
	}
	if _, err := s.client.Do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, errors.New("response did not include the user")
	}

	// Requests authenticate with the cookie; the persisted token only restores it on the next Init.
	token := out.Token
	if token == "" {
		token = s.client.sessionCookie()
	}
	if err := s.store.Save(Persisted{Token: token, User: out.User}); err != nil {
		return nil, err
	}

	s.set(out.User)

	return out.User, nil
}

func (s *Session) set(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
	s.authenticated = user != nil
}

// reset drops the in-memory state and the persisted copies. The in-memory state is
// always dropped; the error reports a store that still holds the token.
func (s *Session) reset() error {
	s.set(nil)
	if err := s.store.Clear(); err != nil {
		return errors.Wrap(err, "failed to clear persisted session")
	}

	return nil
}
