// Package api defines the response types shared across HTTP handlers.
package api

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body returned for successful requests that
// carry no data.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries the token pair issued on login and refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// SessionResponse reports the identity bound to the current access token.
type SessionResponse struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email,omitempty"`
}
