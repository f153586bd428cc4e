// Package utils collects small helpers shared by the server and the client:
// context keys, password hashing, token signing, filename sanitizing,
// JSON response writing and the HTTP client constructor.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so that keys set here
// never collide with string keys from other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the context key under which the auth middleware stores
// the authenticated user ID (int64).
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID under UserIDCtxKey.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user ID from ctx.
// ok is false when the value is missing or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
