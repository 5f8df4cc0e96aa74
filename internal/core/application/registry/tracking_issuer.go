package registry

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tracking"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// maxCodeAttempts is the first draw plus three regenerations.
const maxCodeAttempts = 4

// CodeGenerator produces an (internal, public) tracking code pair.
type CodeGenerator interface {
	Generate() (string, string, error)
}

// TrackingIssuer creates and stores the tracking record of a new shipment request.
type TrackingIssuer struct {
	repo      ports.TrackingRepository
	generator CodeGenerator
}

func NewTrackingIssuer(repo ports.TrackingRepository, generator CodeGenerator) TrackingIssuer {
	return TrackingIssuer{repo: repo, generator: generator}
}

// Issue draws codes until neither is in use, then persists the record.
//
// Returns errs.ErrConflict when every attempt collided, or when the store
// rejects the insert because another transaction took the code first.
func (i TrackingIssuer) Issue(ctx context.Context) (*tracking.Record, error) {
	var lastPublic string

	for range maxCodeAttempts {
		internal, public, err := i.generator.Generate()
		if err != nil {
			return nil, err
		}
		lastPublic = public

		taken, err := i.taken(ctx, internal, public)
		if err != nil {
			return nil, err
		}
		if taken {
			continue
		}

		record, err := tracking.NewRecord(kernel.NewUUID(), internal, public, time.Now())
		if err != nil {
			return nil, err
		}

		if err = i.repo.Add(ctx, record); err != nil {
			return nil, err
		}

		return record, nil
	}

	return nil, errs.NewConflictError("trackingCode", lastPublic)
}

func (i TrackingIssuer) taken(ctx context.Context, internal, public string) (bool, error) {
	for _, code := range []string{public, internal} {
		exists, err := i.repo.ExistsByCode(ctx, code)
		if err != nil || exists {
			return exists, err
		}
	}
	return false, nil
}
