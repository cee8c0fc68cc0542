package model

import "context"

// Scope identifies the caller of a use case. It is parsed once from the
// caller header at the HTTP edge and passed explicitly from then on.
type Scope struct {
	UserID int64
}

// Anonymous reports whether no caller was identified.
func (s Scope) Anonymous() bool {
	return s.UserID <= 0
}

type scopeKey struct{}

// SetScopeToContext stores sc in ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the Scope stored in ctx.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeKey{}).(Scope)
	return sc, ok
}
