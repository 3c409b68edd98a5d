// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/vulnview/vulnview-backend/database"
	"github.com/vulnview/vulnview-backend/internal/services"
	"github.com/vulnview/vulnview-backend/restapi/modules/comparisons"
	"github.com/vulnview/vulnview-backend/restapi/modules/cve"
	"github.com/vulnview/vulnview-backend/restapi/modules/images"
	"github.com/vulnview/vulnview-backend/restapi/modules/preferences"
	"github.com/vulnview/vulnview-backend/restapi/modules/scans"
	"github.com/vulnview/vulnview-backend/store"
	"github.com/vulnview/vulnview-backend/util"
)

// SetupRoutes configures all REST API routes and the GraphQL endpoint.
func SetupRoutes(app *fiber.App, db database.DBConnection, schema graphql.Schema) {
	scanStore := store.NewScanStore(db)
	compareService := services.NewCompareService(scanStore)

	registry, err := store.LoadSourceRegistry(util.GetEnvDefault("SOURCES_CONFIG", "sources.yaml"))
	if err != nil {
		database.Logger().Sugar().Fatalf("Failed to load source config: %v", err)
	}
	detailClient := store.NewDetailClient(registry)

	// API Group /api/v1
	api := app.Group("/api/v1")

	// GraphQL Route - Mounted within the api group to inherit path prefixes
	api.Post("/graphql", GraphQLHandler(schema))

	// Scan ingestion
	api.Post("/scans", scans.PostScan(scanStore))

	// Image version listings and comparison
	imageGroup := api.Group("/teams/:team/products/:product/images/:image")
	imageGroup.Get("/versions", images.ListVersions(scanStore))
	imageGroup.Get("/versions/:version/vulnerabilities", images.ListVulnerabilities(scanStore))
	imageGroup.Get("/compare", comparisons.CompareVersions(compareService))

	// Upstream vulnerability detail lookup
	api.Get("/cve/:source/:id", cve.GetDetail(detailClient))

	// Per-view display preferences
	api.Get("/preferences/:view", preferences.GetPreferences(scanStore))
	api.Put("/preferences/:view", preferences.PutPreferences(scanStore))

	database.Logger().Sugar().Info("API routes initialized successfully")
}
