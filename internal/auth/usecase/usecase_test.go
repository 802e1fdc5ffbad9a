package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopapp/shopping-client/internal/apperr"
	"github.com/shopapp/shopping-client/internal/logger"
	"github.com/shopapp/shopping-client/internal/model"
	"github.com/shopapp/shopping-client/internal/session"
)

type fakeAuthClient struct {
	loginSess  model.Session
	loginErr   error
	logoutErr  error
	logoutHits int
}

func (f *fakeAuthClient) Login(ctx context.Context, username, password string) (model.Session, error) {
	return f.loginSess, f.loginErr
}

func (f *fakeAuthClient) Signup(ctx context.Context, username, password, email string) error {
	return nil
}

func (f *fakeAuthClient) Logout(ctx context.Context) error {
	f.logoutHits++
	return f.logoutErr
}

func TestLogin_StoresSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := session.NewStore(path, logger.NewNop())
	client := &fakeAuthClient{loginSess: model.Session{UserID: "42", Token: "tok"}}
	uc := NewAuthUseCase(client, store, logger.NewNop())

	sess, err := uc.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "42", sess.UserID)

	got, ok := uc.CurrentSession()
	require.True(t, ok)
	assert.Equal(t, "tok", got.Token)
	_, err = os.Stat(path)
	assert.NoError(t, err, "session persisted to disk")
}

func TestLogin_FailureLeavesNoSession(t *testing.T) {
	store := session.NewStore(filepath.Join(t.TempDir(), "s.json"), logger.NewNop())
	client := &fakeAuthClient{loginErr: apperr.New(apperr.AuthExpired, "Invalid username or password")}
	uc := NewAuthUseCase(client, store, logger.NewNop())

	_, err := uc.Login(context.Background(), "alice", "bad")
	require.Error(t, err)
	_, ok := uc.CurrentSession()
	assert.False(t, ok)
}

func TestLogout_ClearsLocalSessionEvenWhenRemoteFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := session.NewStore(path, logger.NewNop())
	require.NoError(t, store.Set(model.Session{UserID: "42", Token: "tok"}))

	client := &fakeAuthClient{logoutErr: apperr.New(apperr.NetworkUnavailable, "auth service timed out")}
	uc := NewAuthUseCase(client, store, logger.NewNop())

	err := uc.Logout(context.Background())
	require.Error(t, err, "remote failure is still reported")
	assert.Equal(t, 1, client.logoutHits)

	// Local state correctness wins over remote success.
	_, ok := uc.CurrentSession()
	assert.False(t, ok)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLogout_Success(t *testing.T) {
	store := session.NewStore(filepath.Join(t.TempDir(), "s.json"), logger.NewNop())
	require.NoError(t, store.Set(model.Session{UserID: "1", Token: "t"}))
	uc := NewAuthUseCase(&fakeAuthClient{}, store, logger.NewNop())

	require.NoError(t, uc.Logout(context.Background()))
	_, ok := uc.CurrentSession()
	assert.False(t, ok)
}
