package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gqlhandler "github.com/graphql-go/handler"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/astro-web3/ledger-authz/internal/app/query"
	"github.com/astro-web3/ledger-authz/internal/config"
	"github.com/astro-web3/ledger-authz/internal/domain/identity"
	"github.com/astro-web3/ledger-authz/internal/transport/graphql"
)

func NewRouter(cfg *config.Config, resolver *identity.Resolver, svc query.Service) (*gin.Engine, error) {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	schema, err := graphql.NewSchema(svc)
	if err != nil {
		return nil, err
	}

	router := gin.New()

	router.Use(gin.Recovery())
	if cfg.Observability.TraceEnabled {
		router.Use(otelgin.Middleware(serviceName))
	}
	router.Use(loggingMiddleware())
	router.Use(identityMiddleware(resolver))

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	queryHandler := gqlhandler.New(&gqlhandler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: cfg.Server.Mode != "release",
	})
	router.POST("/graphql", gin.WrapH(queryHandler))
	router.GET("/graphql", gin.WrapH(queryHandler))

	return router, nil
}
