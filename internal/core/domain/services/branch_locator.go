package services

import (
	"math"

	"shipping/internal/core/domain/model/branch"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrBranchNotFound is returned when there is no branch to choose from.
var ErrBranchNotFound = errs.NewObjectNotFoundError("branch", "nearest")

// BranchLocator selects the branch nearest to a point using great-circle distance.
//
// Selection rules:
//   - branches without coordinates (or with an undefined distance) are treated as infinitely far away
//   - when no branch has coordinates, the first branch is returned
//   - ties keep the branch that comes first in the input order
//   - an empty input yields ErrBranchNotFound
//
// Example usage:
//
//	origin, _ := kernel.NewGeoPoint(4.65, -74.10)
//	nearest, err := services.NewBranchLocator().Nearest(origin, branches)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no branches registered
//	}
type BranchLocator struct{}

func NewBranchLocator() BranchLocator {
	return BranchLocator{}
}

// Nearest scans branches once and returns the closest one to origin.
//
// Parameters:
//   - origin: point to measure from (must be constructed)
//   - branches: candidates in a stable order
//
// Returns:
//   - *branch.Branch: the selected branch
//   - error: ErrBranchNotFound for an empty candidate list, or validation errors
func (l BranchLocator) Nearest(origin kernel.GeoPoint, branches []*branch.Branch) (*branch.Branch, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}

	var (
		best     *branch.Branch
		bestDist = math.Inf(1)
	)

	for _, b := range branches {
		if err := b.Validate(); err != nil {
			return nil, err
		}

		d, err := l.distance(origin, b)
		if err != nil {
			return nil, err
		}

		if best == nil || d < bestDist {
			best = b
			bestDist = d
		}
	}

	if best == nil {
		return nil, ErrBranchNotFound
	}

	return best, nil
}

func (l BranchLocator) distance(origin kernel.GeoPoint, b *branch.Branch) (float64, error) {
	loc := b.Location()
	if loc == nil {
		return math.Inf(1), nil
	}
	d, err := origin.DistanceKm(*loc)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(d) {
		return math.Inf(1), nil
	}
	return d, nil
}
