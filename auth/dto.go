// Package auth provides authentication functionality: registration, login,
// session issuance and teardown, and the middleware guarding protected pages.
// This file defines the request payloads carried by the login and register
// forms.
package auth

// RegisterRequest represents the registration form payload.
// Email, age, and language are free-form profile fields; they are stored
// verbatim without validation.
type RegisterRequest struct {
	Username string `json:"username" example:"newuser"`
	Password string `json:"password" example:"strongpassword123"`
	Email    string `json:"email" example:"user@example.com"`
	Age      string `json:"age" example:"30"`
	Language string `json:"language" example:"es"`
}

// LoginRequest represents the login form payload.
type LoginRequest struct {
	Username string `json:"username" example:"newuser"`
	Password string `json:"password" example:"strongpassword123"`
}
