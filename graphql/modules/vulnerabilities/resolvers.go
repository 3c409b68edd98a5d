package vulnerabilities

import (
	"context"

	"github.com/vulnview/vulnview-backend/database"
	"github.com/vulnview/vulnview-backend/model"
	"github.com/vulnview/vulnview-backend/store"
)

// ResolveVulnerabilities fetches the normalized findings of one image version
// with optional limiting.
func ResolveVulnerabilities(ctx context.Context, db database.DBConnection, team, product, image, version string, limit int) ([]map[string]interface{}, error) {
	scans := store.NewScanStore(db)

	findings, err := scans.FindingsForVersion(ctx, model.ImageCoordinate{
		Team:    team,
		Product: product,
		Image:   image,
		Version: version,
	})
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(findings) > limit {
		findings = findings[:limit]
	}

	rows := make([]map[string]interface{}, 0, len(findings))
	for _, rec := range findings {
		rows = append(rows, RecordToRow(rec))
	}
	return rows, nil
}

// RecordToRow flattens a record into the shape the graphql types expose. The
// display CVSS entry supplies the score, rating, version, and vector fields.
func RecordToRow(rec model.VulnerabilityRecord) map[string]interface{} {
	row := map[string]interface{}{
		"cve_id":            rec.CveID,
		"component":         rec.Component,
		"component_type":    rec.ComponentType,
		"component_path":    rec.ComponentPath,
		"component_version": rec.ComponentVersion,
		"fix_versions":      rec.FixVersions,
		"summary":           rec.Summary,
		"description":       rec.Description,
		"weaknesses":        rec.Weaknesses,
		"references":        rec.References,
		"aliases":           rec.Aliases,
	}

	if rec.Cvss != nil {
		row["cvss_version"] = rec.Cvss.Version
		row["cvss_vector"] = rec.Cvss.VectorString
		row["severity_rating"] = rec.Cvss.BaseSeverity
		if rec.Cvss.BaseScore != nil {
			row["severity_score"] = *rec.Cvss.BaseScore
		}
	}
	return row
}
