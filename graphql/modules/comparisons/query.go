package comparisons

import (
	"github.com/graphql-go/graphql"

	"github.com/vulnview/vulnview-backend/database"
)

// GetQueryFields returns the comparison queries to be mounted in the root schema
func GetQueryFields(db database.DBConnection) graphql.Fields {
	return graphql.Fields{
		"comparison": &graphql.Field{
			Type: ComparisonType,
			Args: graphql.FieldConfigArgument{
				"team":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"product":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"image":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"versionA": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"versionB": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"bucket":   &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
				"search":   &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				team := p.Args["team"].(string)
				product := p.Args["product"].(string)
				image := p.Args["image"].(string)
				versionA := p.Args["versionA"].(string)
				versionB := p.Args["versionB"].(string)
				bucket := p.Args["bucket"].(string)
				search := p.Args["search"].(string)
				return ResolveComparison(p.Context, db, team, product, image, versionA, versionB, bucket, search)
			},
		},
		"imageVersions": &graphql.Field{
			Type: graphql.NewList(graphql.String),
			Args: graphql.FieldConfigArgument{
				"team":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"product": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"image":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				team := p.Args["team"].(string)
				product := p.Args["product"].(string)
				image := p.Args["image"].(string)
				return ResolveImageVersions(p.Context, db, team, product, image)
			},
		},
	}
}
