package auth

import (
	"context"

	"github.com/shopapp/shopping-client/internal/model"
)

// UseCase owns the session lifecycle: created at login, destroyed at
// logout. Local session state always wins over remote call outcomes.
type UseCase interface {
	Login(ctx context.Context, username, password string) (model.Session, error)
	Signup(ctx context.Context, username, password, email string) error

	// Logout invalidates the credential remotely on a best-effort basis and
	// always clears the local session, even when the remote call fails.
	Logout(ctx context.Context) error

	// CurrentSession returns the active session, if any.
	CurrentSession() (model.Session, bool)
}
