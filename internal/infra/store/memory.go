package store

import (
	"context"

	"github.com/astro-web3/ledger-authz/internal/domain/ledger"
)

// Memory is an immutable in-memory record source. Reads return copies so
// callers can never mutate the backing data.
type Memory struct {
	accounts  []ledger.Account
	transfers []ledger.Transfer
}

func NewMemory(accounts []ledger.Account, transfers []ledger.Transfer) *Memory {
	return &Memory{
		accounts:  accounts,
		transfers: transfers,
	}
}

func (m *Memory) Accounts(_ context.Context) ([]ledger.Account, error) {
	out := make([]ledger.Account, len(m.accounts))
	copy(out, m.accounts)
	return out, nil
}

func (m *Memory) Transfers(_ context.Context) ([]ledger.Transfer, error) {
	out := make([]ledger.Transfer, len(m.transfers))
	copy(out, m.transfers)
	return out, nil
}
