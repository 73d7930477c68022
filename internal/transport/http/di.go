package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/astro-web3/ledger-authz/internal/app/query"
	"github.com/astro-web3/ledger-authz/internal/config"
	"github.com/astro-web3/ledger-authz/internal/domain/identity"
	"github.com/astro-web3/ledger-authz/internal/domain/ledger"
	"github.com/astro-web3/ledger-authz/internal/infra/introspect"
	"github.com/astro-web3/ledger-authz/internal/infra/store"
	"github.com/astro-web3/ledger-authz/pkg/logger"
	"github.com/astro-web3/ledger-authz/pkg/otel"
	"github.com/astro-web3/ledger-authz/pkg/tracer"
)

type Server struct {
	httpServer *http.Server
}

const (
	idleTimeoutMultiplier = 2
	serviceName           = "ledger-authz"
)

func NewServer(cfg *config.Config) (*Server, error) {
	logger.InitLogger(cfg.Observability.LogLevel, cfg.Observability.Format, cfg.Observability.LogSource)

	otelCfg := otel.Config{
		ServiceName:        serviceName,
		EndpointURL:        cfg.Observability.TracingEndpointURL,
		Enabled:            cfg.Observability.TraceEnabled,
		SampleRatio:        1.0,
		Insecure:           true,
		ResourceAttributes: make(map[string]string),
	}
	if err := tracer.InitTracer(serviceName, otelCfg); err != nil {
		return nil, fmt.Errorf("failed to initialize tracer: %w", err)
	}

	repo, err := newRepository(cfg)
	if err != nil {
		return nil, err
	}

	strategy, err := newStrategy(cfg)
	if err != nil {
		return nil, err
	}

	resolver := identity.NewResolver(strategy)
	queryService := query.NewService(repo)

	router, err := NewRouter(cfg, resolver, queryService)
	if err != nil {
		return nil, fmt.Errorf("failed to build router: %w", err)
	}

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout * idleTimeoutMultiplier,
	}

	return &Server{
		httpServer: httpServer,
	}, nil
}

// newRepository builds the record source named by the config: the seeded
// in-memory sample set, or redis for running against external data.
func newRepository(cfg *config.Config) (ledger.Repository, error) {
	switch cfg.Store.Backend {
	case "", config.StoreBackendMemory:
		return store.NewSampleMemory(), nil
	case config.StoreBackendRedis:
		client, err := store.NewRedisClient(cfg.Store.Redis.URL, cfg.Store.Redis.PoolSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if cfg.Store.Redis.SeedSampleData {
			if err := store.Seed(context.Background(), client, store.SampleAccounts(), store.SampleTransfers()); err != nil {
				return nil, fmt.Errorf("failed to seed redis store: %w", err)
			}
		}
		return store.NewRedis(client), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// newStrategy picks the identity-resolution backend once at startup; it is
// never switched per request.
func newStrategy(cfg *config.Config) (identity.Strategy, error) {
	switch cfg.Auth.Strategy {
	case "", config.AuthStrategyLocal:
		return identity.NewLocalStrategy(), nil
	case config.AuthStrategyIntrospection:
		if cfg.Auth.Introspection.Endpoint == "" {
			return nil, fmt.Errorf("introspection strategy requires auth.introspection.endpoint")
		}
		client := introspect.NewClient(
			cfg.Auth.Introspection.Endpoint,
			cfg.Auth.Introspection.ClientID,
			cfg.Auth.Introspection.ClientSecret,
			cfg.Auth.Introspection.Timeout,
		)
		return identity.NewRemoteStrategy(client), nil
	default:
		return nil, fmt.Errorf("unknown auth strategy %q", cfg.Auth.Strategy)
	}
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
