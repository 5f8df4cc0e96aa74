package branchrepo

import (
	"context"
	"errors"

	"shipping/internal/adapters/out/postgres/pgerr"
	"shipping/internal/core/domain/model/branch"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBranchRepository implements ports.BranchRepository using GORM.
type GormBranchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormBranchRepository(db *gorm.DB, tracker aggregateTracker) *GormBranchRepository {
	return &GormBranchRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormBranchRepository) Add(ctx context.Context, aggregate *branch.Branch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&dto).Error
	})
	if err != nil {
		return pgerr.Translate(err, "branch", dto.Name)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites every column so that cleared optional address fields are persisted too.
func (r *GormBranchRepository) Update(ctx context.Context, aggregate *branch.Branch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	var rows int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&BranchDTO{}).Where("id = ?", dto.ID).Select("*").Omit("id").Updates(&dto)
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return pgerr.Translate(err, "branch", dto.Name)
	}

	if rows == 0 {
		return errs.NewObjectNotFoundError("branch", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete returns errs.ConflictError while shipment requests still reference the branch.
func (r *GormBranchRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var rows int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&BranchDTO{}, "id = ?", id.Bytes())
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return pgerr.Translate(err, "branch", id.String())
	}

	if rows == 0 {
		return errs.NewObjectNotFoundError("branch", id.String())
	}
	return nil
}

func (r *GormBranchRepository) Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BranchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("branch", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormBranchRepository) GetAll(ctx context.Context) ([]*branch.Branch, error) {
	var dtos []BranchDTO
	if err := r.db.WithContext(ctx).Order("name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	branches := make([]*branch.Branch, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}

	return branches, nil
}
