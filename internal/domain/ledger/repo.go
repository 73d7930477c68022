package ledger

import (
	"context"
)

// Repository is a read-only source of owned records. Implementations must
// return records for every owner; filtering down to the requesting subject
// happens in the query layer, never in the store.
type Repository interface {
	Accounts(ctx context.Context) ([]Account, error)
	Transfers(ctx context.Context) ([]Transfer, error)
}
