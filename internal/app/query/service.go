package query

import (
	"context"

	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/astro-web3/ledger-authz/internal/domain/identity"
	"github.com/astro-web3/ledger-authz/internal/domain/ledger"
	"github.com/astro-web3/ledger-authz/pkg/logger"
	"github.com/astro-web3/ledger-authz/pkg/tracer"
)

// Service answers the read operations of the query surface, filtered down to
// the subject resolved for the surrounding request. A request whose
// resolution carries no real subject gets a well-formed empty result set,
// never an error status.
type Service interface {
	Accounts(ctx context.Context) ([]ledger.Account, error)
	Transfers(ctx context.Context) ([]ledger.Transfer, error)
}

type service struct {
	repo ledger.Repository
}

func NewService(repo ledger.Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Accounts(ctx context.Context) ([]ledger.Account, error) {
	ctx, span := tracer.Start(ctx, "app.query.Accounts")
	defer span.End()

	res, ok := s.visibleSubject(ctx)
	if !ok {
		span.SetAttributes(attribute.String("authz.state", res.State.String()))
		return []ledger.Account{}, nil
	}

	accounts, err := s.repo.Accounts(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	visible := ledger.Filter(accounts, res.Subject)
	span.SetAttributes(
		attribute.String("authz.state", res.State.String()),
		attribute.Int("query.visible_records", len(visible)),
	)
	return visible, nil
}

func (s *service) Transfers(ctx context.Context) ([]ledger.Transfer, error) {
	ctx, span := tracer.Start(ctx, "app.query.Transfers")
	defer span.End()

	res, ok := s.visibleSubject(ctx)
	if !ok {
		span.SetAttributes(attribute.String("authz.state", res.State.String()))
		return []ledger.Transfer{}, nil
	}

	transfers, err := s.repo.Transfers(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	visible := ledger.Filter(transfers, res.Subject)
	span.SetAttributes(
		attribute.String("authz.state", res.State.String()),
		attribute.Int("query.visible_records", len(visible)),
	)
	return visible, nil
}

// visibleSubject reads the resolution for this request. Anonymous, rejected
// and failed resolutions all collapse to zero visibility; the distinction
// only matters for the audit log.
func (s *service) visibleSubject(ctx context.Context) (identity.Resolution, bool) {
	res := identity.FromContext(ctx)
	if !res.Authenticated() {
		logger.DebugContext(ctx, "query without resolved subject",
			slog.String("state", res.State.String()),
			slog.String("reason", res.Reason),
		)
		return res, false
	}
	return res, true
}
