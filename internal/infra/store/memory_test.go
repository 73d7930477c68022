package store_test

import (
	"context"
	"testing"

	"github.com/astro-web3/ledger-authz/internal/infra/store"
)

func TestSampleMemory_AccountShape(t *testing.T) {
	repo := store.NewSampleMemory()

	accounts, err := repo.Accounts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	owners := map[string]int{}
	for _, a := range accounts {
		owners[a.OwnerID]++
	}

	if owners[store.SampleOwnerA] != 3 {
		t.Errorf("expected 3 accounts for %s, got %d", store.SampleOwnerA, owners[store.SampleOwnerA])
	}
	if owners[store.SampleOwnerB] != 3 {
		t.Errorf("expected 3 accounts for %s, got %d", store.SampleOwnerB, owners[store.SampleOwnerB])
	}
	if len(owners) != 2 {
		t.Errorf("expected exactly 2 owners, got %d", len(owners))
	}
}

func TestSampleMemory_TransferLegs(t *testing.T) {
	repo := store.NewSampleMemory()

	transfers, err := repo.Transfers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, tr := range transfers {
		if tr.Creditor.OwnerID == tr.Debitor.OwnerID {
			t.Errorf("transfer %s has both legs owned by %s", tr.ID, tr.Creditor.OwnerID)
		}
	}
}

func TestMemory_ReadsAreCopies(t *testing.T) {
	repo := store.NewSampleMemory()

	first, _ := repo.Accounts(context.Background())
	first[0].OwnerID = "tampered"

	second, _ := repo.Accounts(context.Background())
	if second[0].OwnerID == "tampered" {
		t.Error("mutating a read slice changed the backing store")
	}
}
