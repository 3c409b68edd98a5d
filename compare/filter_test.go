package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnview/vulnview-backend/model"
)

func buildResult(t *testing.T) *model.ComparisonResult {
	t.Helper()

	findingsA := []model.VulnerabilityRecord{
		record("CVE-2021-23337", "lodash", "/app/node_modules/lodash", 9.8),
		record("CVE-2020-8203", "lodash", "/app/node_modules/lodash", 7.4),
	}
	findingsB := []model.VulnerabilityRecord{
		record("CVE-2021-23337", "lodash", "/app/node_modules/lodash", 9.8),
		record("CVE-2022-25858", "terser", "/app/node_modules/terser", 7.5),
	}

	result, err := Compare(findingsA, findingsB, "1.0.0", "1.1.0")
	require.NoError(t, err)
	return result
}

func TestFilterBucket(t *testing.T) {
	result := buildResult(t)

	shared := FilterBucket(result, model.BucketShared)
	require.Len(t, shared, 1)
	assert.Equal(t, "CVE-2021-23337", shared[0].CveID)

	onlyA := FilterBucket(result, model.BucketOnlyVersionA)
	require.Len(t, onlyA, 1)
	assert.Equal(t, "CVE-2020-8203", onlyA[0].CveID)

	// Stats are untouched by filtering.
	assert.Equal(t, 3, result.Stats.Total())
}

func TestSearch(t *testing.T) {
	result := buildResult(t)

	t.Run("case-insensitive substring over display fields", func(t *testing.T) {
		assert.Len(t, Search(result.Comparison, "LODASH"), 2)
		assert.Len(t, Search(result.Comparison, "terser"), 1)
		assert.Len(t, Search(result.Comparison, "2021-23337"), 1)
	})

	t.Run("matches the bucket label", func(t *testing.T) {
		assert.Len(t, Search(result.Comparison, "only_version_a"), 1)
	})

	t.Run("matches severity and formatted score", func(t *testing.T) {
		assert.Len(t, Search(result.Comparison, "high"), 3)
		assert.Len(t, Search(result.Comparison, "9.8"), 1)
	})

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Len(t, Search(result.Comparison, ""), 3)
		assert.Len(t, Search(result.Comparison, "   "), 3)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		assert.Empty(t, Search(result.Comparison, "no-such-thing"))
	})
}

func TestFilterComparisonComposesWithAnd(t *testing.T) {
	result := buildResult(t)

	items := FilterComparison(result, model.BucketOnlyVersionB, "terser")
	require.Len(t, items, 1)
	assert.Equal(t, "CVE-2022-25858", items[0].CveID)

	// Same query in a bucket that does not contain the row.
	assert.Empty(t, FilterComparison(result, model.BucketShared, "terser"))

	// No filters at all passes everything through.
	assert.Len(t, FilterComparison(result, "", ""), 3)
}
