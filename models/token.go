package models

import "strings"

// AuthResponse is the union of the payloads returned by the login and
// register endpoints.
//
// Login answers with {access_token, token_type, user}. Register either
// answers with {message, token, user_id} (immediate account) or with a bare
// {message} when the backend sends a verification email first.
type AuthResponse struct {
	// AccessToken is the bearer token returned by login.
	AccessToken string `json:"access_token,omitempty"`

	// TokenType is the token scheme, "bearer" in practice.
	TokenType string `json:"token_type,omitempty"`

	// Token is the bearer token returned by the immediate register flow.
	Token string `json:"token,omitempty"`

	// UserID is the identifier of a freshly registered account.
	UserID string `json:"user_id,omitempty"`

	// Message is the human-readable outcome reported by the backend.
	Message string `json:"message,omitempty"`

	// User is the profile returned together with the token, if any.
	User *User `json:"user,omitempty"`
}

// BearerToken returns the token carried by the response, or an empty string
// when the response carries none.
func (r AuthResponse) BearerToken() string {
	if t := strings.TrimSpace(r.AccessToken); t != "" {
		return t
	}
	return strings.TrimSpace(r.Token)
}

// RegisterResult is the outcome of a registration as seen by the client.
type RegisterResult struct {
	// User is the authenticated user when the backend issued a token.
	User *User

	// VerificationPending is true when the backend requires the email
	// address to be confirmed before the first login.
	VerificationPending bool

	// Message is the backend message.
	Message string
}
