package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopapp/shopping-client/internal/apperr"
	"github.com/shopapp/shopping-client/internal/httpx"
	"github.com/shopapp/shopping-client/internal/logger"
)

func newClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	h := httpx.New(srv.URL, time.Second, nil, logger.NewNop())
	return NewHTTPClient(h, logger.NewNop()).(*HTTPClient)
}

func TestLogin_ReturnsSession(t *testing.T) {
	var got map[string]string
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-abc","userId":42}`))
	}))

	sess, err := c.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", got["username"])
	assert.Equal(t, "secret", got["password"])
	assert.Equal(t, "42", sess.UserID)
	assert.Equal(t, "tok-abc", sess.Token)
}

func TestLogin_MissingTokenIsRejected(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))

	_, err := c.Login(context.Background(), "alice", "secret")
	require.Error(t, err)
	assert.Equal(t, apperr.AuthExpired, apperr.KindOf(err))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid username or password"}`))
	}))

	_, err := c.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	assert.Equal(t, apperr.AuthExpired, apperr.KindOf(err))
	assert.Equal(t, "Invalid username or password", apperr.Reason(err))
}

func TestSignup(t *testing.T) {
	var got map[string]string
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/signup", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-new"}`))
	}))

	require.NoError(t, c.Signup(context.Background(), "bob", "pw", "bob@example.com"))
	assert.Equal(t, "bob@example.com", got["email"])
}

func TestLogout(t *testing.T) {
	var gotPath string
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, c.Logout(context.Background()))
	assert.Equal(t, "/api/auth/logout", gotPath)
}
