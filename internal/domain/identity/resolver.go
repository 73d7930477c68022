package identity

import (
	"context"
)

const bearerPrefix = "Bearer "

// Strategy resolves a raw bearer token (prefix already stripped) to a
// Resolution. Implementations must absorb every fault into a Resolution
// value; resolution never returns an error past this boundary because the
// downstream filter always needs a defined outcome.
type Strategy interface {
	Resolve(ctx context.Context, token string) Resolution
}

// Resolver turns the raw Authorization header value into a Resolution.
// The strategy is fixed at startup and never switched per request.
type Resolver struct {
	strategy Strategy
}

func NewResolver(strategy Strategy) *Resolver {
	return &Resolver{strategy: strategy}
}

// Resolve handles the header-level concerns (absence, prefix stripping) and
// delegates the remaining token to the configured strategy. A credential too
// short to carry a "Bearer " prefix is treated the same as an absent one.
func (r *Resolver) Resolve(ctx context.Context, credential string) Resolution {
	if len(credential) < len(bearerPrefix) {
		return Anonymous()
	}
	return r.strategy.Resolve(ctx, credential[len(bearerPrefix):])
}
