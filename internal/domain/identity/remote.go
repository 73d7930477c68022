package identity

import (
	"context"
	"strings"

	"log/slog"

	"github.com/astro-web3/ledger-authz/internal/infra/introspect"
	"github.com/astro-web3/ledger-authz/pkg/logger"
)

// RemoteStrategy resolves tokens by calling an OAuth2-style introspection
// endpoint. The call is not retried and its result is not cached; every
// request re-derives the subject from the endpoint's answer.
type RemoteStrategy struct {
	introspector introspect.Introspector
}

func NewRemoteStrategy(introspector introspect.Introspector) *RemoteStrategy {
	return &RemoteStrategy{introspector: introspector}
}

func (s *RemoteStrategy) Resolve(ctx context.Context, token string) Resolution {
	resp, err := s.introspector.Introspect(ctx, token)
	if err != nil {
		logger.WarnContext(ctx, "introspection request failed", slog.String("error", err.Error()))
		return Failed("introspection request failed")
	}

	// A payload without a usable boolean "active" is indistinguishable from
	// a broken endpoint, so it maps to failure rather than to a rejection.
	if resp.Active == nil {
		logger.WarnContext(ctx, "introspection response without active flag")
		return Failed("introspection failed")
	}

	if !*resp.Active {
		return Unauthenticated("not authenticated")
	}

	subject := resp.Username
	if at := strings.IndexByte(subject, '@'); at >= 0 {
		subject = subject[:at]
	}
	if subject == "" {
		logger.WarnContext(ctx, "introspection response without username")
		return Failed("introspection returned no username")
	}

	return Resolved(subject)
}
