package queries

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/branch"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetBranchQueryIsNotConstructed = errors.New(
		"GetBranchQuery must be created via NewGetBranchQuery constructor",
	)
	ErrListBranchesQueryIsNotConstructed = errors.New(
		"ListBranchesQuery must be created via NewListBranchesQuery constructor",
	)
	ErrFindNearestBranchQueryIsNotConstructed = errors.New(
		"FindNearestBranchQuery must be created via NewFindNearestBranchQuery constructor",
	)
)

type GetBranchQuery struct {
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetBranchQuery(branchID kernel.UUID) (GetBranchQuery, error) {
	if err := branchID.Validate(); err != nil {
		return GetBranchQuery{}, err
	}
	return GetBranchQuery{branchID: branchID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBranchQuery) Validate() error {
	return q.guard.Validate(ErrGetBranchQueryIsNotConstructed)
}

func (q GetBranchQuery) BranchID() kernel.UUID {
	return q.branchID
}

type GetBranchQueryHandler struct {
	reader BranchReader
}

func NewGetBranchQueryHandler(reader BranchReader) GetBranchQueryHandler {
	return GetBranchQueryHandler{reader: reader}
}

func (h GetBranchQueryHandler) Handle(ctx context.Context, q GetBranchQuery) (*branch.Branch, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return h.reader.Get(ctx, q.BranchID())
}

type ListBranchesQuery struct {
	guard guard.ConstructorGuard
}

func NewListBranchesQuery() ListBranchesQuery {
	return ListBranchesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListBranchesQuery) Validate() error {
	return q.guard.Validate(ErrListBranchesQueryIsNotConstructed)
}

type ListBranchesQueryHandler struct {
	reader BranchReader
}

func NewListBranchesQueryHandler(reader BranchReader) ListBranchesQueryHandler {
	return ListBranchesQueryHandler{reader: reader}
}

// Handle returns every branch ordered by name.
func (h ListBranchesQueryHandler) Handle(ctx context.Context, q ListBranchesQuery) ([]*branch.Branch, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return h.reader.GetAll(ctx)
}

// FindNearestBranchQuery asks which branch should take in a shipment picked up
// at the given coordinates.
//
// Example:
//
//	q, err := NewFindNearestBranchQuery(4.65, -74.10)
//	b, err := handler.Handle(ctx, q)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no branches registered yet
//	}
type FindNearestBranchQuery struct {
	origin kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewFindNearestBranchQuery rejects coordinates outside the WGS84 range.
func NewFindNearestBranchQuery(latitude, longitude float64) (FindNearestBranchQuery, error) {
	origin, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return FindNearestBranchQuery{}, err
	}
	return FindNearestBranchQuery{origin: origin, guard: guard.NewConstructorGuard()}, nil
}

func (q FindNearestBranchQuery) Validate() error {
	return q.guard.Validate(ErrFindNearestBranchQueryIsNotConstructed)
}

func (q FindNearestBranchQuery) Origin() kernel.GeoPoint {
	return q.origin
}

// FindNearestBranchQueryHandler scans all branches in memory.
type FindNearestBranchQueryHandler struct {
	reader  BranchReader
	locator services.BranchLocator
}

func NewFindNearestBranchQueryHandler(reader BranchReader) FindNearestBranchQueryHandler {
	return FindNearestBranchQueryHandler{reader: reader, locator: services.NewBranchLocator()}
}

// Handle returns errs.ErrObjectNotFound when no branch exists.
func (h FindNearestBranchQueryHandler) Handle(ctx context.Context, q FindNearestBranchQuery) (*branch.Branch, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	branches, err := h.reader.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return h.locator.Nearest(q.Origin(), branches)
}
