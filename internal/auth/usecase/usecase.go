package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/shopapp/shopping-client/internal/auth"
	"github.com/shopapp/shopping-client/internal/logger"
	"github.com/shopapp/shopping-client/internal/model"
	"github.com/shopapp/shopping-client/internal/session"
)

type authUseCase struct {
	client auth.Client
	store  *session.Store
	logger logger.ZapLogger
}

func NewAuthUseCase(client auth.Client, store *session.Store, log logger.ZapLogger) auth.UseCase {
	return &authUseCase{client: client, store: store, logger: log}
}

func (uc *authUseCase) Login(ctx context.Context, username, password string) (model.Session, error) {
	sess, err := uc.client.Login(ctx, username, password)
	if err != nil {
		return model.Session{}, err
	}
	if err := uc.store.Set(sess); err != nil {
		// The session still works for this run; it just will not survive a
		// restart.
		uc.logger.Warn("could not persist session", zap.Error(err))
	}
	return sess, nil
}

func (uc *authUseCase) Signup(ctx context.Context, username, password, email string) error {
	return uc.client.Signup(ctx, username, password, email)
}

func (uc *authUseCase) Logout(ctx context.Context) error {
	err := uc.client.Logout(ctx)
	if err != nil {
		uc.logger.Warn("remote logout failed, clearing local session anyway", zap.Error(err))
	}
	uc.store.Clear()
	return err
}

func (uc *authUseCase) CurrentSession() (model.Session, bool) {
	return uc.store.Get()
}
