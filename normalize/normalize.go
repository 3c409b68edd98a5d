package normalize

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/osv-scanner/pkg/models"
	"github.com/vulnview/vulnview-backend/model"
	"github.com/vulnview/vulnview-backend/util"
)

// SourceKind selects the upstream schema of a raw payload.
type SourceKind string

// Supported upstream schemas.
const (
	SourceNVD SourceKind = "nvd"
	SourceOSV SourceKind = "osv"
)

// ParseSourceKind maps a source label to its schema, defaulting to NVD.
func ParseSourceKind(s string) SourceKind {
	if strings.EqualFold(s, string(SourceOSV)) {
		return SourceOSV
	}
	return SourceNVD
}

// Normalize converts a raw vulnerability document into canonical records. A
// malformed element is skipped, never fatal; only a structurally nonsensical
// document yields an empty batch.
func Normalize(raw []byte, kind SourceKind) []model.VulnerabilityRecord {
	payload := DecodePayload(raw)

	records := make([]model.VulnerabilityRecord, 0, len(payload.Elements))
	for _, elem := range payload.Elements {
		rec, ok := normalizeElement(elem, kind)
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func normalizeElement(elem Element, kind SourceKind) (model.VulnerabilityRecord, bool) {
	raw := flattenDetail(elem.Raw)

	cveID := extractCveID(raw, elem.Key)
	if cveID == "" {
		return model.VulnerabilityRecord{}, false
	}

	rec := model.VulnerabilityRecord{
		CveID:            cveID,
		Component:        stringField(raw, "component"),
		ComponentType:    stringField(raw, "component_type"),
		ComponentPath:    stringField(raw, "component_path"),
		ComponentVersion: stringField(raw, "component_version"),
		FixVersions:      stringField(raw, "fix_versions"),
		FirstSeen:        timeField(raw, "first_seen"),
		LastSeen:         timeField(raw, "last_seen"),
	}

	// Some scanners put a purl where others put a plain package name; both
	// flatten to the same (name, ecosystem) pair.
	if strings.HasPrefix(rec.Component, "pkg:") {
		if name, ecosystem, err := util.ComponentFromPURL(rec.Component); err == nil {
			rec.Component = name
			if rec.ComponentType == "" {
				rec.ComponentType = ecosystem
			}
		}
	}

	switch kind {
	case SourceOSV:
		applyOSV(&rec, raw)
	default:
		applyNVD(&rec, raw)
	}

	rec.References = ExtractReferenceURLs(raw["references"])
	rec.Weaknesses = extractWeaknesses(raw)
	rec.Cvss = util.SelectDisplayEntry(rec.CvssEntries)
	return rec, true
}

// flattenDetail merges NVD's {"cve": {...}} wrapper into the element so field
// extraction sees one level. Top-level keys win over wrapped ones.
func flattenDetail(raw map[string]interface{}) map[string]interface{} {
	inner, ok := raw["cve"].(map[string]interface{})
	if !ok {
		return raw
	}
	merged := make(map[string]interface{}, len(raw)+len(inner))
	for k, v := range inner {
		merged[k] = v
	}
	for k, v := range raw {
		if k == "cve" {
			continue
		}
		merged[k] = v
	}
	return merged
}

// extractCveID resolves the record identifier: explicit cve_id, then
// osv_id/id, then the mapping key of the keyed payload form. Empty means the
// element is unidentifiable and gets skipped.
func extractCveID(raw map[string]interface{}, mapKey string) string {
	for _, field := range []string{"cve_id", "osv_id", "id"} {
		if id := stringField(raw, field); id != "" {
			return id
		}
	}
	return strings.TrimSpace(mapKey)
}

func applyNVD(rec *model.VulnerabilityRecord, raw map[string]interface{}) {
	rec.Description = selectDescription(raw["descriptions"])
	if rec.Description == "" {
		rec.Description = selectDescription(raw["description"])
	}
	rec.Configurations = ExtractConfigurationGroups(raw["configurations"])
	rec.CvssEntries = extractNVDMetrics(raw["metrics"])
}

// nvdMetricKeys in display priority order; the first NVD-sourced entry found
// becomes the badge entry via SelectDisplayEntry.
var nvdMetricKeys = []string{"cvssMetricV31", "cvssMetricV30", "cvssMetricV40", "cvssMetricV2"}

func extractNVDMetrics(value interface{}) []model.CvssEntry {
	metrics, ok := util.ParseLeniently(value).(map[string]interface{})
	if !ok {
		return nil
	}

	var entries []model.CvssEntry
	for _, key := range nvdMetricKeys {
		list, ok := util.ParseLeniently(metrics[key]).([]interface{})
		if !ok {
			continue
		}
		for _, item := range list {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}

			vector := ""
			version := ""
			if data, ok := util.ParseLeniently(m["cvssData"]).(map[string]interface{}); ok {
				vector = util.CoerceString(data["vectorString"])
				version = util.CoerceString(data["version"])
			}
			if vector == "" {
				vector = util.CoerceString(m["vectorString"])
			}

			entry := util.ParseVector(vector)
			entry.Source = util.CoerceString(m["source"])
			if entry.Version == "" {
				entry.Version = version
			}
			entries = append(entries, entry)
		}
	}
	return entries
}

func applyOSV(rec *model.VulnerabilityRecord, raw map[string]interface{}) {
	rec.Summary = util.CoerceString(util.ParseLeniently(raw["summary"]))
	rec.Description = util.CoerceString(util.ParseLeniently(raw["details"]))
	rec.Aliases = util.CoerceStringSlice(raw["aliases"])
	rec.CvssEntries = extractOSVSeverity(raw)
	rec.OSV = extractOSVMetadata(raw)

	affected := decodeAffected(raw["affected"])
	if rec.FixVersions == "" && len(affected) > 0 {
		fixes := util.ResolveFixVersions(rec.ComponentVersion, affected)
		rec.FixVersions = strings.Join(fixes, ",")
	}
}

func extractOSVSeverity(raw map[string]interface{}) []model.CvssEntry {
	var entries []model.CvssEntry

	if list, ok := util.ParseLeniently(raw["severity"]).([]interface{}); ok {
		for _, item := range list {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			entry := util.ParseVector(util.CoerceString(m["score"]))
			entry.Source = "OSV"
			entries = append(entries, entry)
		}
	}

	// GHSA records sometimes repeat a vector inside database_specific.
	if db, ok := util.ParseLeniently(raw["database_specific"]).(map[string]interface{}); ok {
		vector := ""
		switch cvss := util.ParseLeniently(db["cvss"]).(type) {
		case map[string]interface{}:
			vector = util.CoerceString(cvss["vectorString"])
		case string:
			vector = cvss
		}
		if vector != "" {
			entry := util.ParseVector(vector)
			entry.Source = "database_specific"
			entries = append(entries, entry)
		}
	}

	return entries
}

// osvKnownSpecificKeys is the database_specific allow-list surfaced as typed
// fields; everything else passes through in Extra.
var osvKnownSpecificKeys = map[string]bool{
	"cwe_ids":            true,
	"github_reviewed":    true,
	"github_reviewed_at": true,
	"nvd_published_at":   true,
	"cvss":               true,
	"severity":           true,
}

func extractOSVMetadata(raw map[string]interface{}) *model.OSVMetadata {
	meta := &model.OSVMetadata{
		SchemaVersion: util.CoerceString(raw["schema_version"]),
		Published:     util.CoerceString(raw["published"]),
		Modified:      util.CoerceString(raw["modified"]),
		Withdrawn:     util.CoerceString(raw["withdrawn"]),
	}

	if db, ok := util.ParseLeniently(raw["database_specific"]).(map[string]interface{}); ok {
		meta.CweIDs = util.CoerceStringSlice(db["cwe_ids"])
		if reviewed, ok := db["github_reviewed"].(bool); ok {
			meta.GithubReviewed = &reviewed
		}
		meta.GithubReviewedAt = util.CoerceString(db["github_reviewed_at"])
		meta.NvdPublishedAt = util.CoerceString(db["nvd_published_at"])

		for k, v := range db {
			if osvKnownSpecificKeys[k] {
				continue
			}
			if meta.Extra == nil {
				meta.Extra = make(map[string]interface{})
			}
			meta.Extra[k] = v
		}
	}

	return meta
}

// decodeAffected re-marshals the generic affected list into typed OSV ranges.
// Undecodable entries are dropped, never fatal.
func decodeAffected(value interface{}) []models.Affected {
	list, ok := util.ParseLeniently(value).([]interface{})
	if !ok {
		return nil
	}

	var result []models.Affected
	for _, item := range list {
		bytes, err := json.Marshal(item)
		if err != nil {
			continue
		}
		var affected models.Affected
		if err := json.Unmarshal(bytes, &affected); err == nil {
			result = append(result, affected)
		}
	}
	return result
}

func stringField(raw map[string]interface{}, key string) string {
	return strings.TrimSpace(util.CoerceString(raw[key]))
}

func timeField(raw map[string]interface{}, key string) *time.Time {
	s := stringField(raw, key)
	if s == "" {
		return nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return nil
	}
	return &t
}
