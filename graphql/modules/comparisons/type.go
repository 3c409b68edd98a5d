// Package comparisons defines the GraphQL types and queries for the image
// version diff view.
package comparisons

import (
	"github.com/graphql-go/graphql"
)

// ComparisonRowType represents one diff row: a finding plus its bucket
var ComparisonRowType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ComparisonRow",
	Fields: graphql.Fields{
		"cve_id":            &graphql.Field{Type: graphql.String},
		"component":         &graphql.Field{Type: graphql.String},
		"component_type":    &graphql.Field{Type: graphql.String},
		"component_path":    &graphql.Field{Type: graphql.String},
		"component_version": &graphql.Field{Type: graphql.String},
		"fix_versions":      &graphql.Field{Type: graphql.String},
		"summary":           &graphql.Field{Type: graphql.String},
		"severity_score":    &graphql.Field{Type: graphql.Float},
		"severity_rating":   &graphql.Field{Type: graphql.String},
		"comparison":        &graphql.Field{Type: graphql.String},
	},
})

// ComparisonStatsType represents the aggregate bucket counts of one diff
var ComparisonStatsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ComparisonStats",
	Fields: graphql.Fields{
		"shared":         &graphql.Field{Type: graphql.Int},
		"only_version_a": &graphql.Field{Type: graphql.Int},
		"only_version_b": &graphql.Field{Type: graphql.Int},
		"total":          &graphql.Field{Type: graphql.Int},
	},
})

// ComparisonType represents the full output of one version diff
var ComparisonType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Comparison",
	Fields: graphql.Fields{
		"comparison": &graphql.Field{Type: graphql.NewList(ComparisonRowType)},
		"stats":      &graphql.Field{Type: ComparisonStatsType},
	},
})
