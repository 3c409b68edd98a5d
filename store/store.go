// Package store persists scan results in ArangoDB and adapts the raw scanner
// payloads into canonical vulnerability records on the way out.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/vulnview/vulnview-backend/database"
	"github.com/vulnview/vulnview-backend/model"
	"github.com/vulnview/vulnview-backend/normalize"
	"github.com/vulnview/vulnview-backend/util"
)

// ScanDocument is the persisted form of one scanned image version: the raw
// vulnerability payload exactly as the scanner delivered it, plus the image
// coordinate. Normalization happens on read so payload quirks never reach
// the database schema.
type ScanDocument struct {
	Key       string          `json:"_key,omitempty"`
	ObjType   string          `json:"objtype,omitempty"`
	Team      string          `json:"team"`
	Product   string          `json:"product"`
	Image     string          `json:"image"`
	Version   string          `json:"version"`
	Source    string          `json:"source"` // payload schema: "nvd" or "osv"
	ScannedAt time.Time       `json:"scanned_at"`
	Payload   json.RawMessage `json:"payload"`
}

// ScanStore reads and writes scan documents.
type ScanStore struct {
	DB database.DBConnection
}

// NewScanStore creates a store over an initialized database connection.
func NewScanStore(db database.DBConnection) *ScanStore {
	return &ScanStore{DB: db}
}

// SaveScan stores one scan snapshot. History is kept; reads pick the latest
// snapshot per coordinate by scanned_at.
func (s *ScanStore) SaveScan(ctx context.Context, doc ScanDocument) (string, error) {
	if doc.ObjType == "" {
		doc.ObjType = "Scan"
	}
	if doc.ScannedAt.IsZero() {
		doc.ScannedAt = time.Now()
	}

	meta, err := s.DB.Collections["scan"].CreateDocument(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to save scan: %w", err)
	}
	return meta.Key, nil
}

// FindingsForVersion returns the normalized findings of the latest scan for
// one image version coordinate. A coordinate that was never scanned yields an
// empty slice, not an error; an empty side of a comparison is valid input.
func (s *ScanStore) FindingsForVersion(ctx context.Context, coord model.ImageCoordinate) ([]model.VulnerabilityRecord, error) {
	query := `
		FOR scan IN scan
			FILTER scan.team == @team
			   AND scan.product == @product
			   AND scan.image == @image
			   AND scan.version == @version
			SORT scan.scanned_at DESC
			LIMIT 1
			RETURN scan
	`

	cursor, err := s.DB.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"team":    coord.Team,
			"product": coord.Product,
			"image":   coord.Image,
			"version": coord.Version,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query scan for %s:%s: %w", coord.Image, coord.Version, err)
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return []model.VulnerabilityRecord{}, nil
	}

	var doc ScanDocument
	if _, err := cursor.ReadDocument(ctx, &doc); err != nil {
		return nil, fmt.Errorf("failed to read scan document: %w", err)
	}

	return normalize.Normalize(doc.Payload, normalize.ParseSourceKind(doc.Source)), nil
}

// ListVersions returns the scanned version labels of one image, newest
// version first by semver when the labels parse, lexicographically otherwise.
func (s *ScanStore) ListVersions(ctx context.Context, team, product, image string) ([]string, error) {
	query := `
		FOR scan IN scan
			FILTER scan.team == @team
			   AND scan.product == @product
			   AND scan.image == @image
			COLLECT version = scan.version
			RETURN version
	`

	cursor, err := s.DB.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"team":    team,
			"product": product,
			"image":   image,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query versions for %s: %w", image, err)
	}
	defer cursor.Close()

	var versions []string
	for cursor.HasMore() {
		var version string
		if _, err := cursor.ReadDocument(ctx, &version); err != nil {
			continue
		}
		versions = append(versions, version)
	}

	sort.Slice(versions, func(i, j int) bool {
		return util.CompareVersionStrings(versions[i], versions[j]) > 0
	})
	return versions, nil
}

// LoadPreferences fetches the stored preferences for a view, or defaults when
// none were saved yet.
func (s *ScanStore) LoadPreferences(ctx context.Context, view string) (*model.ViewPreferences, error) {
	query := `
		FOR p IN preference
			FILTER p.view == @view
			LIMIT 1
			RETURN p
	`

	cursor, err := s.DB.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"view": view},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query preferences: %w", err)
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return model.NewViewPreferences(view), nil
	}

	var prefs model.ViewPreferences
	if _, err := cursor.ReadDocument(ctx, &prefs); err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}
	return &prefs, nil
}

// SavePreferences upserts the preferences document for a view.
func (s *ScanStore) SavePreferences(ctx context.Context, prefs model.ViewPreferences) error {
	if prefs.ObjType == "" {
		prefs.ObjType = "ViewPreferences"
	}
	prefs.Key = util.SanitizeKey(prefs.View)

	query := `
		UPSERT { view: @view }
		INSERT @prefs
		UPDATE @prefs
		IN preference
	`

	cursor, err := s.DB.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"view":  prefs.View,
			"prefs": prefs,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	cursor.Close()
	return nil
}
