package comparisons

import (
	"context"
	"fmt"

	"github.com/vulnview/vulnview-backend/compare"
	"github.com/vulnview/vulnview-backend/database"
	"github.com/vulnview/vulnview-backend/internal/services"
	"github.com/vulnview/vulnview-backend/model"
	"github.com/vulnview/vulnview-backend/store"
)

// ResolveComparison diffs two scanned versions of one image and returns the
// rows and stats as generic maps. The optional bucket and search arguments
// narrow the rows; stats always describe the full partition.
func ResolveComparison(ctx context.Context, db database.DBConnection, team, product, image, versionA, versionB, bucket, search string) (map[string]interface{}, error) {
	if bucket != "" && !model.ValidBucket(bucket) {
		return nil, fmt.Errorf("unknown bucket %q", bucket)
	}

	svc := services.NewCompareService(store.NewScanStore(db))
	result, err := svc.CompareVersions(ctx, team, product, image, versionA, versionB)
	if err != nil {
		return nil, err
	}

	items := compare.FilterComparison(result, model.ComparisonBucket(bucket), search)

	rows := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		row := map[string]interface{}{
			"cve_id":            item.CveID,
			"component":         item.Component,
			"component_type":    item.ComponentType,
			"component_path":    item.ComponentPath,
			"component_version": item.ComponentVersion,
			"fix_versions":      item.FixVersions,
			"summary":           item.Summary,
			"comparison":        string(item.Comparison),
		}
		if item.Cvss != nil {
			row["severity_rating"] = item.Cvss.BaseSeverity
			if item.Cvss.BaseScore != nil {
				row["severity_score"] = *item.Cvss.BaseScore
			}
		}
		rows = append(rows, row)
	}

	return map[string]interface{}{
		"comparison": rows,
		"stats": map[string]interface{}{
			"shared":         result.Stats.Shared,
			"only_version_a": result.Stats.OnlyVersionA,
			"only_version_b": result.Stats.OnlyVersionB,
			"total":          result.Stats.Total(),
		},
	}, nil
}

// ResolveImageVersions lists the scanned versions of one image, newest first.
func ResolveImageVersions(ctx context.Context, db database.DBConnection, team, product, image string) ([]string, error) {
	return store.NewScanStore(db).ListVersions(ctx, team, product, image)
}
