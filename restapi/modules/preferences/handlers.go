// Package preferences implements the REST API handlers for per-view display
// preferences.
package preferences

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/vulnview/vulnview-backend/model"
	"github.com/vulnview/vulnview-backend/store"
)

// GetPreferences handles GET requests for the stored preferences of a view.
// Unsaved views return the defaults.
func GetPreferences(scans *store.ScanStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		prefs, err := scans.LoadPreferences(context.Background(), c.Params("view"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"success":     true,
			"preferences": prefs,
		})
	}
}

// PutPreferences handles PUT requests replacing the preferences of a view.
func PutPreferences(scans *store.ScanStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.ViewPreferences
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body: " + err.Error(),
			})
		}

		req.View = c.Params("view")
		if req.PageSize <= 0 {
			req.PageSize = 25
		}

		if err := scans.SavePreferences(context.Background(), req); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"success":     true,
			"preferences": req,
		})
	}
}
