// Package comparisons implements the REST API handlers for the image version
// diff view.
package comparisons

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/vulnview/vulnview-backend/compare"
	"github.com/vulnview/vulnview-backend/internal/services"
	"github.com/vulnview/vulnview-backend/model"
	"github.com/vulnview/vulnview-backend/util"
)

// CompareVersions handles GET requests for comparing two scanned versions of
// one image. Query params: version_a and version_b select the sides, bucket
// and q optionally narrow the returned rows. Stats always describe the full
// unfiltered partition.
func CompareVersions(svc *services.CompareService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		versionA := c.Query("version_a")
		versionB := c.Query("version_b")
		if util.IsEmpty(versionA) || util.IsEmpty(versionB) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Query parameters version_a and version_b are required",
			})
		}

		bucket := c.Query("bucket")
		if util.IsNotEmpty(bucket) && !model.ValidBucket(bucket) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Unknown bucket: " + bucket,
			})
		}

		result, err := svc.CompareVersions(context.Background(),
			c.Params("team"), c.Params("product"), c.Params("image"), versionA, versionB)
		if err != nil {
			if errors.Is(err, compare.ErrSameVersion) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"success": false,
					"message": "Select two different versions to compare",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		items := compare.FilterComparison(result, model.ComparisonBucket(bucket), c.Query("q"))
		if items == nil {
			items = []model.ComparisonItem{}
		}

		return c.JSON(fiber.Map{
			"success":    true,
			"comparison": items,
			"stats":      result.Stats,
			"total":      result.Stats.Total(),
		})
	}
}
