package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-edu-resources/internal/adapter"
	"github.com/MKhiriev/go-edu-resources/internal/app"
	"github.com/MKhiriev/go-edu-resources/internal/logger"
	"github.com/MKhiriev/go-edu-resources/internal/mock"
	"github.com/MKhiriev/go-edu-resources/internal/validators"
	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── AuthService ──────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	session := anonymous()
	session.login = func(creds models.Credentials) (models.User, error) {
		if creds.Password != "student-pass" {
			return models.User{}, backendErr(adapter.ErrUnauthorized, app.MsgInvalidCredentials)
		}
		return student, nil
	}
	svc := NewAuthService(session, logger.Nop())
	ctx := context.Background()

	_, err := svc.Login(ctx, models.Credentials{Email: student.Email, Password: "nope"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.CurrentUser()
	assert.ErrorIs(t, err, ErrNotSignedIn)

	user, err := svc.Login(ctx, models.Credentials{Email: student.Email, Password: "student-pass"})
	require.NoError(t, err)
	assert.Equal(t, student, user)

	current, err := svc.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, student, current)

	require.NoError(t, svc.Logout(ctx))
	assert.Equal(t, 1, session.logouts)
}

func TestAuthService_Login_Unverified(t *testing.T) {
	session := anonymous()
	session.login = func(models.Credentials) (models.User, error) {
		return models.User{}, backendErr(adapter.ErrForbidden, app.MsgEmailNotVerified)
	}

	_, err := NewAuthService(session, logger.Nop()).Login(context.Background(), models.Credentials{})
	assert.ErrorIs(t, err, ErrEmailNotVerified)
}

func TestAuthService_Register(t *testing.T) {
	session := anonymous()
	session.register = func(reg models.Registration) (models.RegisterResult, error) {
		if reg.Email == student.Email {
			return models.RegisterResult{}, backendErr(adapter.ErrBadRequest, app.MsgUserAlreadyExists)
		}
		return models.RegisterResult{VerificationPending: true, Message: "Check your email"}, nil
	}
	svc := NewAuthService(session, logger.Nop())

	_, err := svc.Register(context.Background(), models.Registration{Email: student.Email})
	require.ErrorIs(t, err, ErrAccountExists)

	res, err := svc.Register(context.Background(), models.Registration{Email: "new@college.edu"})
	require.NoError(t, err)
	assert.True(t, res.VerificationPending)
}

// ── AccountService ───────────────────────────────────────────────────────────

func newTestAccountSvc(t *testing.T) (AccountService, *mock.MockAuthAdapter) {
	t.Helper()
	auth := mock.NewMockAuthAdapter(gomock.NewController(t))
	return NewAccountService(auth, validators.NewRequestValidator(), logger.Nop()), auth
}

func TestAccountService_VerifyEmail(t *testing.T) {
	svc, auth := newTestAccountSvc(t)
	ctx := context.Background()

	auth.EXPECT().VerifyEmail(gomock.Any(), "abc123").Return(nil).Times(2)

	require.NoError(t, svc.VerifyEmail(ctx, "abc123"))
	require.NoError(t, svc.VerifyEmail(ctx, " http://localhost:8000/api/auth/verify/abc123 "))

	assert.ErrorIs(t, svc.VerifyEmail(ctx, ""), ErrInvalidLink)
	assert.ErrorIs(t, svc.VerifyEmail(ctx, "abc?x=1"), ErrInvalidLink)

	auth.EXPECT().VerifyEmail(gomock.Any(), "stale").
		Return(backendErr(adapter.ErrBadRequest, app.MsgInvalidVerificationLink))
	assert.ErrorIs(t, svc.VerifyEmail(ctx, "stale"), ErrInvalidLink)
}

func TestAccountService_EmailFlows(t *testing.T) {
	svc, auth := newTestAccountSvc(t)
	ctx := context.Background()

	_, err := svc.ResendVerification(ctx, "not-an-email")
	require.ErrorIs(t, err, validators.ErrInvalidInput)
	_, err = svc.ForgotPassword(ctx, "")
	require.ErrorIs(t, err, validators.ErrInvalidInput)

	auth.EXPECT().ResendVerification(gomock.Any(), models.EmailRequest{Email: "new@college.edu"}).
		Return("Verification email resent successfully.", nil)
	auth.EXPECT().RequestPasswordReset(gomock.Any(), models.EmailRequest{Email: "new@college.edu"}).
		Return("If the email exists, a reset link was sent.", nil)

	msg, err := svc.ResendVerification(ctx, " new@college.edu ")
	require.NoError(t, err)
	assert.Contains(t, msg, "resent")

	msg, err = svc.ForgotPassword(ctx, "new@college.edu")
	require.NoError(t, err)
	assert.Contains(t, msg, "reset link")
}

func TestAccountService_ResetPassword(t *testing.T) {
	svc, auth := newTestAccountSvc(t)
	ctx := context.Background()

	_, err := svc.ResetPassword(ctx, models.PasswordReset{Token: "t", NewPassword: "123"})
	require.ErrorIs(t, err, validators.ErrInvalidInput)

	reset := models.PasswordReset{Token: "t", NewPassword: "new-pass"}
	auth.EXPECT().ResetPassword(gomock.Any(), reset).
		Return("", backendErr(adapter.ErrBadRequest, app.MsgInvalidOrExpiredToken))

	_, err = svc.ResetPassword(ctx, reset)
	assert.ErrorIs(t, err, ErrInvalidLink)
}
