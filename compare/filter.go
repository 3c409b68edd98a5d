package compare

import (
	"strings"

	"github.com/samber/lo"
	"github.com/vulnview/vulnview-backend/model"
	"github.com/vulnview/vulnview-backend/util"
)

// FilterBucket returns the rows of one partition bucket. This is a pure view
// over an already-computed comparison; it never re-runs the diff.
func FilterBucket(result *model.ComparisonResult, bucket model.ComparisonBucket) []model.ComparisonItem {
	return lo.Filter(result.Comparison, func(item model.ComparisonItem, _ int) bool {
		return item.Comparison == bucket
	})
}

// Search scans the fixed display field set case-insensitively for a substring
// match.
func Search(items []model.ComparisonItem, query string) []model.ComparisonItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	return lo.Filter(items, func(item model.ComparisonItem, _ int) bool {
		return matchesQuery(item, q)
	})
}

// FilterComparison applies the bucket filter, then the text search; the two
// compose via logical AND. An empty bucket or query means "no filter".
func FilterComparison(result *model.ComparisonResult, bucket model.ComparisonBucket, query string) []model.ComparisonItem {
	items := result.Comparison
	if bucket != "" {
		items = FilterBucket(result, bucket)
	}
	return Search(items, query)
}

func matchesQuery(item model.ComparisonItem, q string) bool {
	fields := []string{
		item.CveID,
		item.Component,
		item.ComponentType,
		item.ComponentPath,
		string(item.Comparison),
	}
	if item.Cvss != nil {
		fields = append(fields, item.Cvss.BaseSeverity, item.Cvss.Version)
		if item.Cvss.BaseScore != nil {
			fields = append(fields, util.FormatScore(*item.Cvss.BaseScore))
		}
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
