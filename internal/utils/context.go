// Package utils provides general-purpose helpers shared by the contacts
// server and the contact-keeper client: typed context keys, HTTP response
// writing, the resty-based HTTP client, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// OwnerCtxKey stores the enrolled identifier (the X-UUID header value) of
// the caller once the server has confirmed it is known.
var OwnerCtxKey = contextKey("owner")

// WithOwner returns a copy of ctx carrying owner.
func WithOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, OwnerCtxKey, owner)
}

// GetOwnerFromContext retrieves the caller's identifier from the context.
// ok is false if the value is missing, empty, or of an unexpected type.
func GetOwnerFromContext(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(OwnerCtxKey).(string)
	return owner, ok && owner != ""
}
