package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"message": message,
		"error":   map[string]string{"code": code},
	})
}

var ada = map[string]any{"id": "u-1", "email": "ada@example.com", "fullName": "Ada"}

// sessionAPI serves login, check and logout backed by a single valid cookie value.
func sessionAPI(t *testing.T, mux *http.ServeMux) *atomic.Int32 {
	t.Helper()

	checks := &atomic.Int32{}
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret123" {
			writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")

			return
		}
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "session-1", Path: "/", HttpOnly: true})
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "message": "Login successful", "user": ada, "token": "session-1"})
	})
	mux.HandleFunc("GET /api/auth/check", func(w http.ResponseWriter, r *http.Request) {
		checks.Add(1)
		cookie, err := r.Cookie("token")
		if err != nil || cookie.Value != "session-1" {
			writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "Not authenticated")

			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "User is authenticated", "user": ada})
	})
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "", Path: "/", MaxAge: -1})
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Logged out successfully"})
	})

	return checks
}

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	c, err := New(server.URL + "/api")
	require.NoError(t, err)

	return c
}

func TestSession_LoginPersistsAndRestores(t *testing.T) {
	mux := http.NewServeMux()
	checks := sessionAPI(t, mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	notifier := &recordingNotifier{}
	session := NewSession(newTestClient(t, server), store, notifier)

	user, err := session.Login(context.Background(), LoginRequest{Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.FullName)
	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, []string{"Welcome back, Ada!"}, notifier.successes)

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "session-1", persisted.Token)
	assert.Equal(t, "ada@example.com", persisted.User.Email)

	// A fresh process has an empty cookie jar.
	restored := NewSession(newTestClient(t, server), store, nil)
	require.NoError(t, restored.Init(context.Background()))
	assert.True(t, restored.IsAuthenticated())
	assert.Equal(t, "u-1", restored.User().ID)
	assert.EqualValues(t, 1, checks.Load())
}

func TestSession_InitWithoutTokenStaysAnonymous(t *testing.T) {
	mux := http.NewServeMux()
	checks := sessionAPI(t, mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	session := NewSession(newTestClient(t, server), NewMemoryStore(), nil)

	require.NoError(t, session.Init(context.Background()))
	assert.False(t, session.IsAuthenticated())
	assert.False(t, session.Loading())
	assert.Zero(t, checks.Load())
}

func TestSession_InitWithStaleTokenClearsStore(t *testing.T) {
	mux := http.NewServeMux()
	sessionAPI(t, mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	store := NewMemoryStore()
	require.NoError(t, store.Save(Persisted{Token: "expired", User: &User{ID: "u-1"}}))
	session := NewSession(newTestClient(t, server), store, nil)

	err := session.Init(context.Background())

	assert.True(t, IsUnauthorized(err))
	assert.False(t, session.IsAuthenticated())
	persisted, _ := store.Load()
	assert.Empty(t, persisted.Token)
	assert.Nil(t, persisted.User)
}

func TestSession_LoginFailureNotifies(t *testing.T) {
	mux := http.NewServeMux()
	sessionAPI(t, mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	notifier := &recordingNotifier{}
	session := NewSession(newTestClient(t, server), NewMemoryStore(), notifier)

	_, err := session.Login(context.Background(), LoginRequest{Email: "ada@example.com", Password: "wrong"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "INVALID_CREDENTIALS", apiErr.Code)
	assert.Equal(t, []string{"Invalid email or password"}, notifier.errors)
	assert.False(t, session.IsAuthenticated())
}

func TestSession_LogoutClearsLocalStateWhenServerFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "boom")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := NewMemoryStore()
	require.NoError(t, store.Save(Persisted{Token: "t", User: &User{ID: "u-1"}}))
	session := NewSession(newTestClient(t, server), store, nil)
	session.set(&User{ID: "u-1"})

	err := session.Logout(context.Background())

	assert.Error(t, err)
	assert.False(t, session.IsAuthenticated())
	persisted, _ := store.Load()
	assert.Empty(t, persisted.Token)
}

// stuckStore keeps the persisted token because Clear fails.
type stuckStore struct {
	*MemoryStore
}

func (stuckStore) Clear() error {
	return errors.New("disk full")
}

func TestSession_LogoutReportsTokenLeftInStore(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Logged out successfully"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := stuckStore{MemoryStore: NewMemoryStore()}
	require.NoError(t, store.Save(Persisted{Token: "t", User: &User{ID: "u-1"}}))
	notifier := &recordingNotifier{}
	session := NewSession(newTestClient(t, server), store, notifier)
	session.set(&User{ID: "u-1"})

	err := session.Logout(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.False(t, session.IsAuthenticated())
	assert.Empty(t, notifier.successes)
	assert.Equal(t, []string{"Logout failed"}, notifier.errors)
}

func TestSession_InitReportsTokenLeftInStore(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/check", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Session expired")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := stuckStore{MemoryStore: NewMemoryStore()}
	require.NoError(t, store.Save(Persisted{Token: "expired"}))
	session := NewSession(newTestClient(t, server), store, nil)

	err := session.Init(context.Background())

	assert.True(t, IsUnauthorized(err))
	assert.Contains(t, err.Error(), "disk full")
	assert.False(t, session.IsAuthenticated())
}

func TestSession_AnyUnauthorizedResponseResetsSession(t *testing.T) {
	mux := http.NewServeMux()
	sessionAPI(t, mux)
	mux.HandleFunc("GET /api/blog", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "INVALID_TOKEN", "Session expired")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestClient(t, server)
	store := NewMemoryStore()
	session := NewSession(c, store, nil)
	_, err := session.Login(context.Background(), LoginRequest{Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = NewBlogStore(c, nil).LoadAll(context.Background())

	assert.True(t, IsUnauthorized(err))
	assert.False(t, session.IsAuthenticated())
	persisted, _ := store.Load()
	assert.Empty(t, persisted.Token)
}

func TestSession_UpdateProfilePersistsUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/auth/update-profile", func(w http.ResponseWriter, r *http.Request) {
		var update ProfileUpdate
		_ = json.NewDecoder(r.Body).Decode(&update)
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Profile updated successfully",
			"user":    map[string]any{"id": "u-1", "email": "ada@example.com", "fullName": update.FullName},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := NewMemoryStore()
	require.NoError(t, store.Save(Persisted{Token: "t", User: &User{ID: "u-1", FullName: "Ada"}}))
	session := NewSession(newTestClient(t, server), store, nil)

	user, err := session.UpdateProfile(context.Background(), ProfileUpdate{FullName: "Ada L."})
	require.NoError(t, err)

	assert.Equal(t, "Ada L.", user.FullName)
	assert.Equal(t, "Ada L.", session.User().FullName)
	persisted, _ := store.Load()
	assert.Equal(t, "t", persisted.Token)
	assert.Equal(t, "Ada L.", persisted.User.FullName)
}

func TestSession_LoadingWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	session := NewSession(newTestClient(t, server), nil, nil)

	done := make(chan error, 1)
	go func() { done <- session.Logout(context.Background()) }()

	<-entered
	assert.True(t, session.Loading())
	close(release)
	require.NoError(t, <-done)
	assert.False(t, session.Loading())
}

func TestClient_NonEnvelopeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(t, server).Do(context.Background(), http.MethodGet, "/blog", nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestFileStore(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "session.json"))

	empty, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, empty.Token)

	require.NoError(t, store.Save(Persisted{Token: "abc", User: &User{ID: "u-1", Email: "ada@example.com"}}))
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", loaded.Token)
	assert.Equal(t, "ada@example.com", loaded.User.Email)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	cleared, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, cleared.Token)
}
