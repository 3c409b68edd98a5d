// Package model - comparison output types for the image version diff engine.
package model

// ComparisonBucket is the partition a finding landed in when two image
// versions were diffed.
type ComparisonBucket string

// Partition buckets.
const (
	BucketShared       ComparisonBucket = "shared"
	BucketOnlyVersionA ComparisonBucket = "only_version_a"
	BucketOnlyVersionB ComparisonBucket = "only_version_b"
)

// ValidBucket reports whether s names a partition bucket.
func ValidBucket(s string) bool {
	switch ComparisonBucket(s) {
	case BucketShared, BucketOnlyVersionA, BucketOnlyVersionB:
		return true
	}
	return false
}

// ComparisonItem is one diff row: a finding plus the bucket it fell into.
type ComparisonItem struct {
	VulnerabilityRecord
	Comparison ComparisonBucket `json:"comparison"`
}

// ComparisonStats are the aggregate counts of a partition. They are always
// computed from the partitioned rows themselves, so
// Shared+OnlyVersionA+OnlyVersionB equals the row count.
type ComparisonStats struct {
	Shared       int `json:"shared"`
	OnlyVersionA int `json:"only_version_a"`
	OnlyVersionB int `json:"only_version_b"`
}

// Total returns the summed bucket counts.
func (s ComparisonStats) Total() int {
	return s.Shared + s.OnlyVersionA + s.OnlyVersionB
}

// ComparisonResult is the full output of one version diff.
type ComparisonResult struct {
	Comparison []ComparisonItem `json:"comparison"`
	Stats      ComparisonStats  `json:"stats"`
}

// ImageCoordinate identifies one scanned artifact.
type ImageCoordinate struct {
	Team    string `json:"team"`
	Product string `json:"product"`
	Image   string `json:"image"`
	Version string `json:"version"`
}
