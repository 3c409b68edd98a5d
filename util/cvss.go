// Package util provides utility functions for the backend.
package util

import (
	"strings"

	"github.com/vulnview/vulnview-backend/model"
)

// ParseVector interprets a CVSS vector string into a scored entry. The
// scoring is a coarse three-tier heuristic, not the official CVSS
// calculation; severity badges across the product depend on this exact
// mapping, so it must not be swapped for the official formula.
//
// Unrecognized or garbled vectors yield a best-effort entry with a nil score
// and the vector echoed back. Never returns an error.
func ParseVector(vector string) model.CvssEntry {
	entry := model.CvssEntry{VectorString: vector}
	if vector == "" {
		return entry
	}

	switch {
	case strings.HasPrefix(vector, "CVSS:3.1"), strings.HasPrefix(vector, "CVSS:3.0"):
		entry.Version = strings.TrimPrefix(vector[:8], "CVSS:")
		score := scoreV3(parseMetrics(vector))
		entry.BaseScore = &score
		entry.BaseSeverity = GetSeverityRating(score)
	case strings.HasPrefix(vector, "CVSS:4.0"):
		entry.Version = "4.0"
		score := 7.0 // v4 vectors are not scored metric-by-metric
		entry.BaseScore = &score
		entry.BaseSeverity = GetSeverityRating(score)
	}

	return entry
}

// parseMetrics splits a v3 vector into its metric map. Malformed segments are
// ignored, not fatal.
func parseMetrics(vector string) map[string]string {
	metrics := make(map[string]string)
	for _, segment := range strings.Split(vector, "/") {
		parts := strings.SplitN(segment, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		metrics[parts[0]] = parts[1]
	}
	return metrics
}

func scoreV3(metrics map[string]string) float64 {
	if metrics["AV"] == "N" && metrics["AC"] == "L" && metrics["PR"] == "N" {
		high := 0
		for _, impact := range []string{"C", "I", "A"} {
			if metrics[impact] == "H" {
				high++
			}
		}
		switch {
		case high == 3:
			return 9.8
		case high > 0:
			return 7.5
		}
	}
	return 5.0
}

// GetSeverityRating returns the severity band for a given CVSS score. This is
// the only score-to-band mapping in the repo; list views, the diff view, and
// the CVE detail view all go through it.
func GetSeverityRating(score float64) string {
	switch {
	case score >= 9.0:
		return model.SeverityCritical
	case score >= 7.0:
		return model.SeverityHigh
	case score >= 4.0:
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}

// SelectDisplayEntry picks the single CVSS entry used for diff-row sorting
// and severity badges when a record carries entries from several sources.
// Scores from different sources are not numerically comparable, so there is
// no "highest wins": NVD-attributed entries take precedence, then record
// order.
func SelectDisplayEntry(entries []model.CvssEntry) *model.CvssEntry {
	if len(entries) == 0 {
		return nil
	}
	for i := range entries {
		if strings.EqualFold(entries[i].Source, "NVD") {
			return &entries[i]
		}
	}
	return &entries[0]
}
