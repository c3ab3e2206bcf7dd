package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-edu-resources/internal/adapter"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/internal/validators"
	"github.com/MKhiriev/go-edu-resources/models"
)

type accountService struct {
	adapter   adapter.AuthAdapter
	validator validators.Validator
	logger    *logger.Logger
}

// NewAccountService constructs an [AccountService].
func NewAccountService(auth adapter.AuthAdapter, validator validators.Validator, logger *logger.Logger) AccountService {
	return &accountService{adapter: auth, validator: validator, logger: logger}
}

// VerifyEmail accepts the bare token or the whole verification link from
// the email.
func (a *accountService) VerifyEmail(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if i := strings.LastIndex(token, "/verify/"); i >= 0 {
		token = token[i+len("/verify/"):]
	}
	if token == "" || strings.ContainsAny(token, "/?#") {
		return ErrInvalidLink
	}

	return mapAdapterError(a.adapter.VerifyEmail(ctx, token))
}

func (a *accountService) ResendVerification(ctx context.Context, email string) (string, error) {
	req := models.EmailRequest{Email: strings.TrimSpace(email)}
	if err := a.validator.Validate(ctx, req); err != nil {
		return "", err
	}

	msg, err := a.adapter.ResendVerification(ctx, req)
	return msg, mapAdapterError(err)
}

func (a *accountService) ForgotPassword(ctx context.Context, email string) (string, error) {
	req := models.EmailRequest{Email: strings.TrimSpace(email)}
	if err := a.validator.Validate(ctx, req); err != nil {
		return "", err
	}

	msg, err := a.adapter.RequestPasswordReset(ctx, req)
	return msg, mapAdapterError(err)
}

func (a *accountService) ResetPassword(ctx context.Context, reset models.PasswordReset) (string, error) {
	if err := a.validator.Validate(ctx, reset); err != nil {
		return "", err
	}

	msg, err := a.adapter.ResetPassword(ctx, reset)
	return msg, mapAdapterError(err)
}
