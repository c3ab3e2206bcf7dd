package service

import (
	"context"

	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/models"
)

type authService struct {
	session Authenticator
	logger  *logger.Logger
}

// NewAuthService constructs an [AuthService] over session.
func NewAuthService(session Authenticator, logger *logger.Logger) AuthService {
	return &authService{session: session, logger: logger}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	user, err := a.session.Login(ctx, creds)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	return user, nil
}

func (a *authService) Register(ctx context.Context, reg models.Registration) (models.RegisterResult, error) {
	result, err := a.session.Register(ctx, reg)
	if err != nil {
		return models.RegisterResult{}, mapAdapterError(err)
	}
	return result, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

func (a *authService) CurrentUser() (models.User, error) {
	user, ok := a.session.CurrentUser()
	if !ok {
		return models.User{}, ErrNotSignedIn
	}
	return user, nil
}
