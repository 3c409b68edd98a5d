// Package vulnerabilities defines the GraphQL types and queries for image
// vulnerability listings.
package vulnerabilities

import (
	"github.com/graphql-go/graphql"
)

// VulnerabilityType represents one normalized finding row
var VulnerabilityType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Vulnerability",
	Fields: graphql.Fields{
		"cve_id":            &graphql.Field{Type: graphql.String},
		"component":         &graphql.Field{Type: graphql.String},
		"component_type":    &graphql.Field{Type: graphql.String},
		"component_path":    &graphql.Field{Type: graphql.String},
		"component_version": &graphql.Field{Type: graphql.String},
		"fix_versions":      &graphql.Field{Type: graphql.String},
		"summary":           &graphql.Field{Type: graphql.String},
		"description":       &graphql.Field{Type: graphql.String},
		"severity_score":    &graphql.Field{Type: graphql.Float},
		"severity_rating":   &graphql.Field{Type: graphql.String},
		"cvss_version":      &graphql.Field{Type: graphql.String},
		"cvss_vector":       &graphql.Field{Type: graphql.String},
		"weaknesses":        &graphql.Field{Type: graphql.NewList(graphql.String)},
		"references":        &graphql.Field{Type: graphql.NewList(graphql.String)},
		"aliases":           &graphql.Field{Type: graphql.NewList(graphql.String)},
	},
})
