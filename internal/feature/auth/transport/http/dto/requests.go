// Package dto defines data transfer objects for the auth HTTP API.
package dto

// SignupReq is the request body for the /signup endpoint.
type SignupReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginReq is the request body for the /login endpoint.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshReq is the request body for the /refresh and /logout endpoints.
type RefreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
