// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context keys, JSON HTTP responses,
// identifier generation and the HTTP client used to talk to the API.
package utils

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestScopeCtxKey is the key under which the request context manager
// stores the scope of the request being handled.
//
// Values stored under this key are owned by package requestcontext; other
// packages must go through its accessors instead of reading the key directly.
var RequestScopeCtxKey = contextKey("requestScope")
