// Package session carries the caller identity through context.Context.
package session

import "context"

type contextKey struct{}

// Session identifies the caller of one request.
type Session struct {
	UserID      string
	DisplayName string
	UserAgent   string
	IsAdmin     bool
}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session stored in ctx, or an empty session.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(contextKey{}).(*Session); ok && s != nil {
		return s
	}

	return &Session{}
}

// Actor names the caller for audit columns, preferring the display name.
func (s *Session) Actor() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}

	return s.UserID
}
