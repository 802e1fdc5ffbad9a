package client

import (
	"context"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/shopapp/shopping-client/internal/apperr"
	"github.com/shopapp/shopping-client/internal/auth"
	"github.com/shopapp/shopping-client/internal/httpx"
	"github.com/shopapp/shopping-client/internal/logger"
	"github.com/shopapp/shopping-client/internal/model"
)

type HTTPClient struct {
	http   *httpx.Client
	logger logger.ZapLogger
}

func NewHTTPClient(h *httpx.Client, log logger.ZapLogger) auth.Client {
	return &HTTPClient{http: h, logger: log}
}

type credentialsBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

type authResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (model.Session, error) {
	var resp authResponse
	err := c.http.Do(ctx, http.MethodPost, "/api/auth/login", nil,
		credentialsBody{Username: username, Password: password}, &resp)
	if err != nil {
		return model.Session{}, err
	}
	if resp.Token == "" {
		// 200 without a token means the service answered with something
		// other than a credential; treat it like a rejection.
		return model.Session{}, apperr.New(apperr.AuthExpired, "login response missing token")
	}
	c.logger.Debug("logged in", zap.Int64("user_id", resp.UserID))
	return model.Session{
		UserID: strconv.FormatInt(resp.UserID, 10),
		Token:  resp.Token,
	}, nil
}

func (c *HTTPClient) Signup(ctx context.Context, username, password, email string) error {
	var resp authResponse
	err := c.http.Do(ctx, http.MethodPost, "/api/auth/signup", nil,
		credentialsBody{Username: username, Password: password, Email: email}, &resp)
	if err != nil {
		return err
	}
	if resp.Token == "" {
		return apperr.New(apperr.Unknown, "signup response missing token")
	}
	// Signup does not start a session; the user logs in afterwards.
	return nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.http.Do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}
