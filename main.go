// Package main provides the entry point for the vulnview-backend microservice,
// which stores image scan results and serves the vulnerability comparison API.
package main

import (
	"github.com/vulnview/vulnview-backend/database"
	"github.com/vulnview/vulnview-backend/internal/api"
	"github.com/vulnview/vulnview-backend/util"
)

func main() {
	// Initialize database connection
	db := database.InitializeDatabase()

	// Create Fiber app with REST and GraphQL routes
	app := api.NewFiberApp(db)

	port := util.GetEnvDefault("MS_PORT", "3000")

	logger := database.Logger().Sugar()
	logger.Infof("Starting server on port %s", port)
	logger.Info("GraphQL endpoint available at /api/v1/graphql")
	if err := app.Listen(":" + port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
