// Package compare implements the image version diff engine: a three-way
// partition of vulnerability findings between two scanned versions of the
// same image, plus the filtering views layered on top of it.
package compare

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vulnview/vulnview-backend/model"
)

// ErrSameVersion is returned when a caller asks to diff a version against
// itself. That is caller misuse, not a data-quality issue, and must surface
// loudly instead of degrading into a trivial all-shared result.
var ErrSameVersion = errors.New("comparison requires two different versions")

// Compare partitions the findings of version A and version B of one image
// into shared / only-in-A / only-in-B buckets. Identity is the
// (cve_id, component, component_path) tuple; component version, fix versions,
// and scan timestamps are carried through as metadata without affecting the
// partition. For a shared finding, version B's record is kept as the
// representative since it is the more current scan.
//
// Empty inputs are valid: everything on the non-empty side lands in its
// only-version bucket, and two empty inputs produce an empty result with
// zeroed stats.
func Compare(findingsA, findingsB []model.VulnerabilityRecord, versionA, versionB string) (*model.ComparisonResult, error) {
	if versionA == versionB {
		return nil, fmt.Errorf("%w: got %q twice", ErrSameVersion, versionA)
	}

	mapA := keyRecords(findingsA)
	mapB := keyRecords(findingsB)

	var shared, onlyA, onlyB []model.ComparisonItem
	for key, rec := range mapB {
		if _, ok := mapA[key]; ok {
			shared = append(shared, model.ComparisonItem{VulnerabilityRecord: rec, Comparison: model.BucketShared})
		} else {
			onlyB = append(onlyB, model.ComparisonItem{VulnerabilityRecord: rec, Comparison: model.BucketOnlyVersionB})
		}
	}
	for key, rec := range mapA {
		if _, ok := mapB[key]; !ok {
			onlyA = append(onlyA, model.ComparisonItem{VulnerabilityRecord: rec, Comparison: model.BucketOnlyVersionA})
		}
	}

	sortBucket(shared)
	sortBucket(onlyA)
	sortBucket(onlyB)

	items := make([]model.ComparisonItem, 0, len(shared)+len(onlyA)+len(onlyB))
	items = append(items, shared...)
	items = append(items, onlyA...)
	items = append(items, onlyB...)

	// Stats come from the same partition as the rows; they are never
	// recomputed through a separate path.
	return &model.ComparisonResult{
		Comparison: items,
		Stats: model.ComparisonStats{
			Shared:       len(shared),
			OnlyVersionA: len(onlyA),
			OnlyVersionB: len(onlyB),
		},
	}, nil
}

func keyRecords(records []model.VulnerabilityRecord) map[model.FindingKey]model.VulnerabilityRecord {
	keyed := make(map[model.FindingKey]model.VulnerabilityRecord, len(records))
	for _, rec := range records {
		if _, ok := keyed[rec.Key()]; ok {
			continue // duplicate key within one version keeps the first record
		}
		keyed[rec.Key()] = rec
	}
	return keyed
}

// sortBucket orders items by descending CVSS base score with unscored rows
// last, tie-broken by cve_id, then component and path. The ordering is
// derived entirely from the data so output never depends on map iteration
// order.
func sortBucket(items []model.ComparisonItem) {
	sort.Slice(items, func(i, j int) bool {
		si, oki := displayScore(items[i])
		sj, okj := displayScore(items[j])
		if oki != okj {
			return oki
		}
		if oki && si != sj {
			return si > sj
		}
		if items[i].CveID != items[j].CveID {
			return items[i].CveID < items[j].CveID
		}
		if items[i].Component != items[j].Component {
			return items[i].Component < items[j].Component
		}
		return items[i].ComponentPath < items[j].ComponentPath
	})
}

func displayScore(item model.ComparisonItem) (float64, bool) {
	if item.Cvss == nil || item.Cvss.BaseScore == nil {
		return 0, false
	}
	return *item.Cvss.BaseScore, true
}
