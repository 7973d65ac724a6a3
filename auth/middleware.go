// Package auth, as part of the authentication module.
// This file defines the HTTP middleware gating protected pages. It conforms
// to the standard `func(next http.Handler) http.Handler` pattern so it
// composes with the chi router's `Use`.
package auth

import (
	"net/http"
)

// RequireSession returns middleware that admits only requests carrying a
// valid session cookie. Anonymous visitors are redirected to the login page
// at "/" rather than served an error, since the protected resources are
// browser-facing pages. The session's username is placed into the request
// context for downstream handlers.
func RequireSession(service *AuthService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, ok := service.SessionUsername(r)
			if !ok {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}
			ctx := NewContextWithUsername(r.Context(), username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
