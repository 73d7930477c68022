package query_test

import (
	"context"
	"errors"
	"testing"

	"github.com/astro-web3/ledger-authz/internal/app/query"
	"github.com/astro-web3/ledger-authz/internal/domain/identity"
	"github.com/astro-web3/ledger-authz/internal/domain/ledger"
	"github.com/astro-web3/ledger-authz/internal/infra/store"
)

type failingRepo struct{}

func (failingRepo) Accounts(_ context.Context) ([]ledger.Account, error) {
	return nil, errors.New("store unavailable")
}

func (failingRepo) Transfers(_ context.Context) ([]ledger.Transfer, error) {
	return nil, errors.New("store unavailable")
}

func resolvedCtx(subject string) context.Context {
	return identity.NewContext(context.Background(), identity.Resolved(subject))
}

func TestService_Accounts_ResolvedSubject(t *testing.T) {
	svc := query.NewService(store.NewSampleMemory())

	accounts, err := svc.Accounts(resolvedCtx(store.SampleOwnerA))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(accounts) != 3 {
		t.Fatalf("expected 3 accounts for %s, got %d", store.SampleOwnerA, len(accounts))
	}
	for _, a := range accounts {
		if a.OwnerID != store.SampleOwnerA {
			t.Errorf("account %s owned by %s leaked into result", a.ID, a.OwnerID)
		}
	}
}

func TestService_Accounts_AnonymousGetsEmptyResult(t *testing.T) {
	svc := query.NewService(store.NewSampleMemory())

	accounts, err := svc.Accounts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if accounts == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(accounts) != 0 {
		t.Errorf("expected 0 accounts for anonymous request, got %d", len(accounts))
	}
}

func TestService_Accounts_UnauthenticatedGetsEmptyResult(t *testing.T) {
	svc := query.NewService(store.NewSampleMemory())
	ctx := identity.NewContext(context.Background(), identity.Unauthenticated("not authenticated"))

	accounts, err := svc.Accounts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("expected 0 accounts for rejected credential, got %d", len(accounts))
	}
}

func TestService_Accounts_FailedResolutionGetsEmptyResult(t *testing.T) {
	svc := query.NewService(store.NewSampleMemory())
	ctx := identity.NewContext(context.Background(), identity.Failed("token decode failed"))

	accounts, err := svc.Accounts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("expected 0 accounts for failed resolution, got %d", len(accounts))
	}
}

func TestService_Transfers_CreditorSideOnly(t *testing.T) {
	svc := query.NewService(store.NewSampleMemory())

	transfers, err := svc.Transfers(resolvedCtx(store.SampleOwnerA))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(transfers) != 1 {
		t.Fatalf("expected 1 transfer for %s, got %d", store.SampleOwnerA, len(transfers))
	}
	if transfers[0].Creditor.OwnerID != store.SampleOwnerA {
		t.Errorf("transfer %s has creditor owner %s", transfers[0].ID, transfers[0].Creditor.OwnerID)
	}
}

func TestService_Transfers_DebitorSideInvisible(t *testing.T) {
	svc := query.NewService(store.NewSampleMemory())

	transfers, err := svc.Transfers(resolvedCtx(store.SampleOwnerB))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, tr := range transfers {
		if tr.Creditor.OwnerID != store.SampleOwnerB {
			t.Errorf("transfer %s visible via non-creditor leg", tr.ID)
		}
	}
}

func TestService_Accounts_RepoError(t *testing.T) {
	svc := query.NewService(failingRepo{})

	if _, err := svc.Accounts(resolvedCtx(store.SampleOwnerA)); err == nil {
		t.Error("expected store error to propagate")
	}
}

// Resolution state is per-request context; concurrent queries for different
// subjects must never observe each other's results.
func TestService_ConcurrentSubjectIsolation(t *testing.T) {
	svc := query.NewService(store.NewSampleMemory())

	const rounds = 50
	errCh := make(chan error, 2)

	check := func(subject string) {
		for range rounds {
			accounts, err := svc.Accounts(resolvedCtx(subject))
			if err != nil {
				errCh <- err
				return
			}
			for _, a := range accounts {
				if a.OwnerID != subject {
					errCh <- errors.New("subject " + subject + " saw account of " + a.OwnerID)
					return
				}
			}
		}
		errCh <- nil
	}

	go check(store.SampleOwnerA)
	go check(store.SampleOwnerB)

	for range 2 {
		if err := <-errCh; err != nil {
			t.Fatal(err)
		}
	}
}
