package identity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/astro-web3/ledger-authz/internal/domain/identity"
	"github.com/astro-web3/ledger-authz/internal/infra/introspect"
)

type mockIntrospector struct {
	introspectFunc func(ctx context.Context, token string) (*introspect.Response, error)
}

func (m *mockIntrospector) Introspect(ctx context.Context, token string) (*introspect.Response, error) {
	return m.introspectFunc(ctx, token)
}

func boolPtr(b bool) *bool {
	return &b
}

func TestRemoteStrategy_ActiveToken(t *testing.T) {
	strategy := identity.NewRemoteStrategy(&mockIntrospector{
		introspectFunc: func(_ context.Context, _ string) (*introspect.Response, error) {
			return &introspect.Response{Active: boolPtr(true), Username: "abc@example.com"}, nil
		},
	})
	resolver := identity.NewResolver(strategy)

	res := resolver.Resolve(context.Background(), "Bearer opaque-token")

	if !res.Authenticated() {
		t.Fatalf("expected resolved state, got %s (%s)", res.State, res.Reason)
	}
	if res.Subject != "abc" {
		t.Errorf("expected subject abc (local part of username), got %q", res.Subject)
	}
}

func TestRemoteStrategy_InactiveToken(t *testing.T) {
	strategy := identity.NewRemoteStrategy(&mockIntrospector{
		introspectFunc: func(_ context.Context, _ string) (*introspect.Response, error) {
			return &introspect.Response{Active: boolPtr(false)}, nil
		},
	})
	resolver := identity.NewResolver(strategy)

	res := resolver.Resolve(context.Background(), "Bearer opaque-token")

	if res.State != identity.StateUnauthenticated {
		t.Errorf("expected unauthenticated state, got %s", res.State)
	}
	if res.Reason != "not authenticated" {
		t.Errorf("expected reason 'not authenticated', got %q", res.Reason)
	}
}

func TestRemoteStrategy_CallFailure(t *testing.T) {
	strategy := identity.NewRemoteStrategy(&mockIntrospector{
		introspectFunc: func(_ context.Context, _ string) (*introspect.Response, error) {
			return nil, errors.New("connection refused")
		},
	})
	resolver := identity.NewResolver(strategy)

	res := resolver.Resolve(context.Background(), "Bearer opaque-token")

	if res.State != identity.StateFailed {
		t.Errorf("expected failed state, got %s", res.State)
	}
}

func TestRemoteStrategy_AmbiguousActiveFlag(t *testing.T) {
	strategy := identity.NewRemoteStrategy(&mockIntrospector{
		introspectFunc: func(_ context.Context, _ string) (*introspect.Response, error) {
			return &introspect.Response{Username: "abc@example.com"}, nil
		},
	})
	resolver := identity.NewResolver(strategy)

	res := resolver.Resolve(context.Background(), "Bearer opaque-token")

	if res.State != identity.StateFailed {
		t.Errorf("expected failed state for missing active flag, got %s", res.State)
	}
	if res.Reason != "introspection failed" {
		t.Errorf("expected reason 'introspection failed', got %q", res.Reason)
	}
}

func TestRemoteStrategy_ActiveWithoutUsername(t *testing.T) {
	strategy := identity.NewRemoteStrategy(&mockIntrospector{
		introspectFunc: func(_ context.Context, _ string) (*introspect.Response, error) {
			return &introspect.Response{Active: boolPtr(true)}, nil
		},
	})
	resolver := identity.NewResolver(strategy)

	res := resolver.Resolve(context.Background(), "Bearer opaque-token")

	if res.State != identity.StateFailed {
		t.Errorf("expected failed state, got %s", res.State)
	}
}

func TestRemoteStrategy_UsernameWithoutDomain(t *testing.T) {
	strategy := identity.NewRemoteStrategy(&mockIntrospector{
		introspectFunc: func(_ context.Context, _ string) (*introspect.Response, error) {
			return &introspect.Response{Active: boolPtr(true), Username: "standalone"}, nil
		},
	})
	resolver := identity.NewResolver(strategy)

	res := resolver.Resolve(context.Background(), "Bearer opaque-token")

	if res.Subject != "standalone" {
		t.Errorf("expected full username as subject when no domain, got %q", res.Subject)
	}
}

func TestRemoteStrategy_TokenPassedWithoutPrefix(t *testing.T) {
	var gotToken string
	strategy := identity.NewRemoteStrategy(&mockIntrospector{
		introspectFunc: func(_ context.Context, token string) (*introspect.Response, error) {
			gotToken = token
			return &introspect.Response{Active: boolPtr(true), Username: "abc@example.com"}, nil
		},
	})
	resolver := identity.NewResolver(strategy)

	resolver.Resolve(context.Background(), "Bearer opaque-token")

	if gotToken != "opaque-token" {
		t.Errorf("expected bearer prefix stripped, introspector saw %q", gotToken)
	}
}
