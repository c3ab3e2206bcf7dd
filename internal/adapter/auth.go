package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-edu-resources/models"
	"github.com/go-resty/resty/v2"
)

// Register implements [AuthAdapter]. It POSTs reg to POST /api/auth/register.
// A token in the response is stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, reg models.Registration) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(reg).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	out, err := decode[models.AuthResponse](resp, "register")
	if err != nil {
		return models.AuthResponse{}, err
	}

	if token := out.BearerToken(); token != "" {
		h.SetToken(token)
	}
	return out, nil
}

// Login implements [AuthAdapter]. It POSTs creds to POST /api/auth/login
// and stores the returned access token via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	out, err := decode[models.AuthResponse](resp, "login")
	if err != nil {
		return models.AuthResponse{}, err
	}

	token := out.BearerToken()
	if token == "" {
		return models.AuthResponse{}, fmt.Errorf("%w: login response carries no token", ErrDecodingResponse)
	}

	h.SetToken(token)
	return out, nil
}

// Logout implements [AuthAdapter].
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetProfile implements [AuthAdapter]. GET /api/auth/profile answers either
// {"success": true, "data": {...}} or the bare user.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/auth/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return decodeUser(resp, "profile")
}

// VerifyEmail implements [AuthAdapter]. The backend answers with an HTML page,
// only the status matters.
func (h *httpServerAdapter) VerifyEmail(ctx context.Context, token string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html").
		SetPathParam("token", token).
		Get("/api/auth/verify/{token}")
	if err != nil {
		return fmt.Errorf("verify email request: %w", err)
	}

	return mapHTTPError(resp)
}

// ResendVerification implements [AuthAdapter].
func (h *httpServerAdapter) ResendVerification(ctx context.Context, req models.EmailRequest) (string, error) {
	return h.postMessage(ctx, "/api/auth/resend-verification", req, "resend verification")
}

// RequestPasswordReset implements [AuthAdapter].
func (h *httpServerAdapter) RequestPasswordReset(ctx context.Context, req models.EmailRequest) (string, error) {
	return h.postMessage(ctx, "/api/auth/forgot-password", req, "forgot password")
}

// ResetPassword implements [AuthAdapter].
func (h *httpServerAdapter) ResetPassword(ctx context.Context, req models.PasswordReset) (string, error) {
	return h.postMessage(ctx, "/api/auth/reset-password", req, "reset password")
}

func (h *httpServerAdapter) postMessage(ctx context.Context, path string, body any, what string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", what, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	out, err := decode[models.MessageResponse](resp, what)
	if err != nil {
		return "", err
	}
	return out.Message, nil
}

func decodeUser(resp *resty.Response, what string) (models.User, error) {
	var env models.Envelope[json.RawMessage]
	if err := json.Unmarshal(resp.Body(), &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		var user models.User
		if err = json.Unmarshal(env.Data, &user); err != nil {
			return models.User{}, fmt.Errorf("%w: %s: %w", ErrDecodingResponse, what, err)
		}
		return user, nil
	}

	return decode[models.User](resp, what)
}
