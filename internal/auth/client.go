package auth

import (
	"context"

	"github.com/shopapp/shopping-client/internal/model"
)

// Client talks to the external auth service. Token issuance and validation
// are owned by that service; this interface only consumes them.
type Client interface {
	Login(ctx context.Context, username, password string) (model.Session, error)
	Signup(ctx context.Context, username, password, email string) error
	Logout(ctx context.Context) error
}
