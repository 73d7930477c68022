package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/astro-web3/ledger-authz/internal/app/query"
)

// NewSchema declares the query surface: two read operations, each returning
// the records visible to the subject carried by the execution context. The
// field resolvers delegate to the query service; authorization never lives
// in the schema itself.
func NewSchema(svc query.Service) (gql.Schema, error) {
	accountType := gql.NewObject(gql.ObjectConfig{
		Name: "Account",
		Fields: gql.Fields{
			"id":       &gql.Field{Type: gql.NewNonNull(gql.String)},
			"iban":     &gql.Field{Type: gql.String},
			"ownerId":  &gql.Field{Type: gql.NewNonNull(gql.String)},
			"currency": &gql.Field{Type: gql.String},
			"balance":  &gql.Field{Type: gql.Int},
		},
	})

	transferType := gql.NewObject(gql.ObjectConfig{
		Name: "Transfer",
		Fields: gql.Fields{
			"id":       &gql.Field{Type: gql.NewNonNull(gql.String)},
			"amount":   &gql.Field{Type: gql.Int},
			"currency": &gql.Field{Type: gql.String},
			"date":     &gql.Field{Type: gql.String},
			"creditor": &gql.Field{Type: gql.NewNonNull(accountType)},
			"debitor":  &gql.Field{Type: gql.NewNonNull(accountType)},
		},
	})

	queryType := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"accounts": &gql.Field{
				Type: gql.NewList(accountType),
				Resolve: func(p gql.ResolveParams) (any, error) {
					return svc.Accounts(p.Context)
				},
			},
			"transfers": &gql.Field{
				Type: gql.NewList(transferType),
				Resolve: func(p gql.ResolveParams) (any, error) {
					return svc.Transfers(p.Context)
				},
			},
		},
	})

	return gql.NewSchema(gql.SchemaConfig{Query: queryType})
}
