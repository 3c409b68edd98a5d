package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vulnview/vulnview-backend/compare"
	"github.com/vulnview/vulnview-backend/model"
)

type fakeSource struct {
	findings map[string][]model.VulnerabilityRecord
	err      error

	mu    sync.Mutex
	calls []model.ImageCoordinate
}

func (f *fakeSource) FindingsForVersion(_ context.Context, coord model.ImageCoordinate) ([]model.VulnerabilityRecord, error) {
	f.mu.Lock()
	f.calls = append(f.calls, coord)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.findings[coord.Version], nil
}

func TestCompareVersions(t *testing.T) {
	score := 9.8
	source := &fakeSource{
		findings: map[string][]model.VulnerabilityRecord{
			"1.0.0": {
				{CveID: "CVE-1", Component: "libX", Cvss: &model.CvssEntry{BaseScore: &score}},
			},
			"1.1.0": {
				{CveID: "CVE-1", Component: "libX", Cvss: &model.CvssEntry{BaseScore: &score}},
				{CveID: "CVE-2", Component: "libY", Cvss: &model.CvssEntry{BaseScore: &score}},
			},
		},
	}

	svc := NewCompareService(source)
	result, err := svc.CompareVersions(context.Background(), "core", "shop", "api", "1.0.0", "1.1.0")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.Shared)
	assert.Equal(t, 0, result.Stats.OnlyVersionA)
	assert.Equal(t, 1, result.Stats.OnlyVersionB)

	require.Len(t, source.calls, 2)
	for _, call := range source.calls {
		assert.Equal(t, "core", call.Team)
		assert.Equal(t, "shop", call.Product)
		assert.Equal(t, "api", call.Image)
	}
}

func TestCompareVersionsSameVersionShortCircuits(t *testing.T) {
	source := &fakeSource{}
	svc := NewCompareService(source)

	_, err := svc.CompareVersions(context.Background(), "core", "shop", "api", "1.0.0", "1.0.0")
	require.Error(t, err)
	assert.ErrorIs(t, err, compare.ErrSameVersion)
	assert.Empty(t, source.calls, "no loads should happen for a same-version request")
}

func TestCompareVersionsPropagatesLoadErrors(t *testing.T) {
	loadErr := errors.New("cursor timeout")
	svc := NewCompareService(&fakeSource{err: loadErr})

	_, err := svc.CompareVersions(context.Background(), "core", "shop", "api", "1.0.0", "1.1.0")
	require.Error(t, err)
	assert.ErrorIs(t, err, loadErr)
}
