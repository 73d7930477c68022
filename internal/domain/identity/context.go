package identity

import (
	"context"
)

// Unexported key type prevents collisions with other context values.
type resolutionCtxKey struct{}

// NewContext returns a copy of ctx carrying the resolution. Transport
// middleware calls this exactly once per request, before any field
// resolution reads data.
func NewContext(ctx context.Context, res Resolution) context.Context {
	return context.WithValue(ctx, resolutionCtxKey{}, res)
}

// FromContext returns the resolution stored in ctx. A context that was never
// populated yields the anonymous resolution.
func FromContext(ctx context.Context) Resolution {
	res, ok := ctx.Value(resolutionCtxKey{}).(Resolution)
	if !ok {
		return Anonymous()
	}
	return res
}
