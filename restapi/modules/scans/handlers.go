// Package scans implements the REST API handlers for scan ingestion.
package scans

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vulnview/vulnview-backend/normalize"
	"github.com/vulnview/vulnview-backend/store"
	"github.com/vulnview/vulnview-backend/util"
)

// PostScan handles POST requests for storing one scan snapshot. The payload
// is stored verbatim; normalization happens on read.
func PostScan(scans *store.ScanStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req store.ScanDocument

		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid request body: " + err.Error(),
			})
		}

		if util.IsEmpty(req.Team) || util.IsEmpty(req.Product) || util.IsEmpty(req.Image) || util.IsEmpty(req.Version) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Scan team, product, image, and version are required",
			})
		}

		if !strings.EqualFold(req.Source, string(normalize.SourceNVD)) && !strings.EqualFold(req.Source, string(normalize.SourceOSV)) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Scan source must be 'nvd' or 'osv'",
			})
		}

		var payload interface{}
		if err := json.Unmarshal(req.Payload, &payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Scan payload must be valid JSON: " + err.Error(),
			})
		}

		key, err := scans.SaveScan(context.Background(), req)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Scan stored successfully",
			"key":     key,
		})
	}
}
