package vulnerabilities

import (
	"github.com/graphql-go/graphql"

	"github.com/vulnview/vulnview-backend/database"
)

// GetQueryFields returns the vulnerability queries to be mounted in the root schema
func GetQueryFields(db database.DBConnection) graphql.Fields {
	return graphql.Fields{
		"vulnerabilities": &graphql.Field{
			Type: graphql.NewList(VulnerabilityType),
			Args: graphql.FieldConfigArgument{
				"team":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"product": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"image":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"version": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"limit":   &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 100},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				team := p.Args["team"].(string)
				product := p.Args["product"].(string)
				image := p.Args["image"].(string)
				version := p.Args["version"].(string)
				limit := p.Args["limit"].(int)
				return ResolveVulnerabilities(p.Context, db, team, product, image, version, limit)
			},
		},
	}
}
