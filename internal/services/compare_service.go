// Package services provides internal service implementations for the vulnview backend.
package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vulnview/vulnview-backend/compare"
	"github.com/vulnview/vulnview-backend/model"
)

// FindingSource supplies the normalized findings of one scanned image version.
type FindingSource interface {
	FindingsForVersion(ctx context.Context, coord model.ImageCoordinate) ([]model.VulnerabilityRecord, error)
}

// CompareService loads both sides of a version comparison and runs the diff.
type CompareService struct {
	Source FindingSource
}

// NewCompareService creates a service over a finding source.
func NewCompareService(source FindingSource) *CompareService {
	return &CompareService{Source: source}
}

// CompareVersions diffs the findings of two versions of one image. The two
// sides load concurrently; the first load error cancels the other and is
// returned as-is.
func (s *CompareService) CompareVersions(ctx context.Context, team, product, image, versionA, versionB string) (*model.ComparisonResult, error) {
	if versionA == versionB {
		return nil, fmt.Errorf("%w: got %q twice", compare.ErrSameVersion, versionA)
	}

	var findingsA, findingsB []model.VulnerabilityRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		findingsA, err = s.Source.FindingsForVersion(gctx, model.ImageCoordinate{Team: team, Product: product, Image: image, Version: versionA})
		return err
	})
	g.Go(func() error {
		var err error
		findingsB, err = s.Source.FindingsForVersion(gctx, model.ImageCoordinate{Team: team, Product: product, Image: image, Version: versionB})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return compare.Compare(findingsA, findingsB, versionA, versionB)
}
