// Package images implements the REST API handlers for image version listings.
package images

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/vulnview/vulnview-backend/model"
	"github.com/vulnview/vulnview-backend/store"
)

// ListVersions handles GET requests for the scanned versions of one image,
// newest first.
func ListVersions(scans *store.ScanStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		versions, err := scans.ListVersions(context.Background(), c.Params("team"), c.Params("product"), c.Params("image"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		if versions == nil {
			versions = []string{}
		}

		return c.JSON(fiber.Map{
			"success":  true,
			"versions": versions,
		})
	}
}

// ListVulnerabilities handles GET requests for the normalized findings of one
// image version.
func ListVulnerabilities(scans *store.ScanStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		coord := model.ImageCoordinate{
			Team:    c.Params("team"),
			Product: c.Params("product"),
			Image:   c.Params("image"),
			Version: c.Params("version"),
		}

		findings, err := scans.FindingsForVersion(context.Background(), coord)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"success":         true,
			"vulnerabilities": findings,
		})
	}
}
