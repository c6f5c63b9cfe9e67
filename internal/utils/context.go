// Package utils provides general-purpose helper utilities
// used across different parts of the journal.
// Includes tools for working with context, type-safe keys, note identifiers,
// HTTP response writing, HTTP client initialization, session token generation
// and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionIDCtxKey is the key used to store the authenticated session id in
// the request context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionIDCtxKey, "0190c7b2-...")
var SessionIDCtxKey = contextKey("sessionID")

// GetSessionIDFromContext retrieves the session id placed in ctx by the auth
// middleware. ok is false when the value is missing or empty.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}
