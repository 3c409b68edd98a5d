package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vulnview/vulnview-backend/model"
	"github.com/vulnview/vulnview-backend/normalize"
)

// DetailClient fetches a single vulnerability record from a configured
// upstream source and normalizes it. Fetch failures propagate to the caller;
// there is no retry or caching at this layer.
type DetailClient struct {
	Registry   *SourceRegistry
	HTTPClient *http.Client
}

// NewDetailClient creates a client over a source registry.
func NewDetailClient(registry *SourceRegistry) *DetailClient {
	return &DetailClient{
		Registry:   registry,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch retrieves one record by id from the named source and returns its
// normalized form. An id unknown to the upstream yields an empty slice since
// normalization skips elements without a usable identifier.
func (c *DetailClient) Fetch(ctx context.Context, source, id string) ([]model.VulnerabilityRecord, error) {
	src, ok := c.Registry.Lookup(source)
	if !ok {
		return nil, fmt.Errorf("unknown vulnerability source %q", source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.BaseURL+id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s/%s: %w", source, id, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s/%s: %w", source, id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s/%s returned status %d", source, id, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response for %s/%s: %w", source, id, err)
	}

	return normalize.Normalize(body, normalize.ParseSourceKind(src.Kind)), nil
}
