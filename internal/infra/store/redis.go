package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/astro-web3/ledger-authz/internal/domain/ledger"
)

const (
	accountsKey  = "ledger:accounts"
	transfersKey = "ledger:transfers"
)

// Redis reads the record collections from redis, where each collection is
// stored as one JSON array. It stays read-only at request time; Seed is the
// only writer.
type Redis struct {
	client *redis.Client
}

func NewRedisClient(url string, poolSize int) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	opt.PoolSize = poolSize

	client := redis.NewClient(opt)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Accounts(ctx context.Context) ([]ledger.Account, error) {
	var accounts []ledger.Account
	if err := r.getJSON(ctx, accountsKey, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *Redis) Transfers(ctx context.Context) ([]ledger.Transfer, error) {
	var transfers []ledger.Transfer
	if err := r.getJSON(ctx, transfersKey, &transfers); err != nil {
		return nil, err
	}
	return transfers, nil
}

func (r *Redis) getJSON(ctx context.Context, key string, out any) error {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get %s from redis: %w", key, err)
	}

	if err := json.Unmarshal([]byte(val), out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}

	return nil
}

// Seed writes the record collections, replacing whatever is stored. Used at
// startup when the store is configured to carry the sample data set.
func Seed(
	ctx context.Context,
	client *redis.Client,
	accounts []ledger.Account,
	transfers []ledger.Transfer,
) error {
	accountData, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to marshal accounts: %w", err)
	}
	transferData, err := json.Marshal(transfers)
	if err != nil {
		return fmt.Errorf("failed to marshal transfers: %w", err)
	}

	if err := client.Set(ctx, accountsKey, accountData, 0).Err(); err != nil {
		return fmt.Errorf("failed to seed accounts: %w", err)
	}
	if err := client.Set(ctx, transfersKey, transferData, 0).Err(); err != nil {
		return fmt.Errorf("failed to seed transfers: %w", err)
	}

	return nil
}
