// Package cve implements the REST API handlers for vulnerability detail lookup.
package cve

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/vulnview/vulnview-backend/store"
)

// GetDetail handles GET requests for one vulnerability record fetched live
// from an upstream source and normalized.
func GetDetail(client *store.DetailClient) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := client.Fetch(context.Background(), c.Params("source"), c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		if len(records) == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "No record found for " + c.Params("id"),
			})
		}

		return c.JSON(fiber.Map{
			"success":       true,
			"vulnerability": records[0],
		})
	}
}
