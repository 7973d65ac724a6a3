// Package auth, as part of the authentication module.
// This file handles the HTTP requests for the login, register, and logout
// form endpoints. These endpoints are browser-facing: they consume form
// submissions, answer success with redirects, and answer failure with a
// user-visible plaintext message under the appropriate status code.
package auth

import (
	"net/http"

	"github.com/user/datamon-go/apperror"
)

// Handlers wraps the AuthService to provide HTTP handlers.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleLogin godoc
// @Summary User Login
// @Description Authenticates a user from the login form and establishes a session.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce plain
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302 "Session established, redirect to the monitoring page"
// @Failure 401 {string} string "Login failed. Please check your username and password."
// @Router /login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writePlainError(w, apperror.NewBadRequestError("invalid form submission", err))
			return
		}

		req := LoginRequest{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}

		token, expiresAt, err := h.service.Login(r.Context(), req)
		if err != nil {
			writePlainError(w, err)
			return
		}

		// A repeated login simply replaces the previous session cookie.
		SetSessionCookie(w, token, expiresAt)
		http.Redirect(w, r, "/data_monitoring", http.StatusFound)
	}
}

// HandleRegister godoc
// @Summary User Registration
// @Description Registers a new user from the registration form.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce plain
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param email formData string false "Email"
// @Param age formData string false "Age"
// @Param language formData string false "Language"
// @Success 302 "User created, redirect to the login page"
// @Failure 409 {string} string "Username already exists."
// @Router /register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writePlainError(w, apperror.NewBadRequestError("invalid form submission", err))
			return
		}

		req := RegisterRequest{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
			Email:    r.PostFormValue("email"),
			Age:      r.PostFormValue("age"),
			Language: r.PostFormValue("language"),
		}

		if err := h.service.Register(r.Context(), req); err != nil {
			writePlainError(w, err)
			return
		}

		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// HandleLogout godoc
// @Summary User Logout
// @Description Destroys the current session and redirects to the login page.
// @Tags Auth
// @Success 302 "Session destroyed, redirect to the login page"
// @Router /logout [get]
func (h *Handlers) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Clearing is unconditional: logging out without a session is a no-op.
		ClearSessionCookie(w)
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

// writePlainError writes an error as a user-visible plaintext message with
// the status code mapped by the apperror system. The form endpoints keep the
// plaintext shape because their consumer is a browser showing the message
// directly, unlike the JSON API endpoints.
func writePlainError(w http.ResponseWriter, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}
	http.Error(w, appErr.Message, appErr.StatusCode())
}
