// Package auth, as part of the authentication module.
// This file holds the request-scoped session identity. Rather than keeping
// the logged-in user in any ambient global state, the session middleware puts
// the username into the request's context.Context, and downstream handlers
// read it back through the helper below.
package auth

import (
	"context"
)

// contextKey is a custom type for context keys. Using an unexported named
// type prevents collisions with context keys defined in other packages.
type contextKey string

const (
	// usernameContextKey is the key under which the authenticated username
	// is stored in the request context.
	usernameContextKey contextKey = "auth_username"
)

// NewContextWithUsername returns a child context carrying the session's
// username.
func NewContextWithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameContextKey, username)
}

// UsernameFromContext extracts the session username from the context.
// The second return value reports whether a session identity was present.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameContextKey).(string)
	return username, ok
}
