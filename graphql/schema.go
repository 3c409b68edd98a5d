// Package graphql assembles the root schema from the query modules.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/vulnview/vulnview-backend/database"
	"github.com/vulnview/vulnview-backend/graphql/modules/comparisons"
	"github.com/vulnview/vulnview-backend/graphql/modules/vulnerabilities"
)

var db database.DBConnection

// InitDB stores the shared database connection for the resolvers.
func InitDB(conn database.DBConnection) {
	db = conn
}

// CreateSchema builds the root query object by mounting each module's fields.
func CreateSchema() (graphql.Schema, error) {
	fields := graphql.Fields{}

	for name, field := range vulnerabilities.GetQueryFields(db) {
		fields[name] = field
	}
	for name, field := range comparisons.GetQueryFields(db) {
		fields[name] = field
	}

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: fields,
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery})
}
