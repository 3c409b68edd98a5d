// Package model defines the canonical vulnerability data structures shared by
// the normalizer, the diff engine, and the API layers.
package model

import "time"

// Severity bands derived from a CVSS base score. Every severity badge in the
// product comes from this one set of labels.
const (
	SeverityLow      = "LOW"
	SeverityMedium   = "MEDIUM"
	SeverityHigh     = "HIGH"
	SeverityCritical = "CRITICAL"
)

// CvssEntry is one scored CVSS vector attributed to an upstream source.
// A nil BaseScore means the vector could not be interpreted; an entry with a
// score always carries the matching severity band.
type CvssEntry struct {
	Version      string   `json:"version,omitempty"`
	VectorString string   `json:"vector_string,omitempty"`
	BaseScore    *float64 `json:"base_score,omitempty"`
	BaseSeverity string   `json:"base_severity,omitempty"`
	Source       string   `json:"source,omitempty"`
}

// ConfigurationGroup is one flattened list of CPE match objects collected
// from an NVD configuration tree.
type ConfigurationGroup struct {
	Matches []map[string]interface{} `json:"cpe_match"`
}

// OSVMetadata carries the OSV source bookkeeping that must survive
// normalization. Extra holds database_specific pairs outside the known
// allow-list; they are passed through untouched.
type OSVMetadata struct {
	SchemaVersion    string                 `json:"schema_version,omitempty"`
	Published        string                 `json:"published,omitempty"`
	Modified         string                 `json:"modified,omitempty"`
	Withdrawn        string                 `json:"withdrawn,omitempty"`
	CweIDs           []string               `json:"cwe_ids,omitempty"`
	GithubReviewed   *bool                  `json:"github_reviewed,omitempty"`
	GithubReviewedAt string                 `json:"github_reviewed_at,omitempty"`
	NvdPublishedAt   string                 `json:"nvd_published_at,omitempty"`
	Extra            map[string]interface{} `json:"extra,omitempty"`
}

// VulnerabilityRecord is the canonical post-normalization finding. One record
// is one (CVE, component, component path) triple within one image version's
// scan; component version and scan bookkeeping are metadata, not identity.
type VulnerabilityRecord struct {
	CveID            string               `json:"cve_id"`
	Component        string               `json:"component"`
	ComponentType    string               `json:"component_type,omitempty"`
	ComponentPath    string               `json:"component_path,omitempty"`
	ComponentVersion string               `json:"component_version,omitempty"`
	FixVersions      string               `json:"fix_versions,omitempty"`
	FirstSeen        *time.Time           `json:"first_seen,omitempty"`
	LastSeen         *time.Time           `json:"last_seen,omitempty"`
	Summary          string               `json:"summary,omitempty"`
	Description      string               `json:"description,omitempty"`
	Aliases          []string             `json:"aliases,omitempty"`
	Weaknesses       []string             `json:"weaknesses,omitempty"`
	References       []string             `json:"references,omitempty"`
	Configurations   []ConfigurationGroup `json:"configurations,omitempty"`
	Cvss             *CvssEntry           `json:"cvss,omitempty"`
	CvssEntries      []CvssEntry          `json:"cvss_entries,omitempty"`
	OSV              *OSVMetadata         `json:"osv,omitempty"`
}

// FindingKey uniquely identifies one finding within one image version.
type FindingKey struct {
	CveID         string
	Component     string
	ComponentPath string
}

// Key returns the identity tuple used for set comparison between versions.
func (r VulnerabilityRecord) Key() FindingKey {
	return FindingKey{CveID: r.CveID, Component: r.Component, ComponentPath: r.ComponentPath}
}
