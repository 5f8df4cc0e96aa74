// Package accountrepo stores the local copy of identity accounts.
package accountrepo

import (
	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type AccountDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name     string     `gorm:"size:200;not null"`
	Role     string     `gorm:"size:20;not null;index"`
	BranchID *uuid.UUID `gorm:"type:uuid;index"`
}

func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(a *account.Account) AccountDTO {
	return AccountDTO{
		ID:       a.ID().Bytes(),
		Name:     a.Name(),
		Role:     string(a.Role()),
		BranchID: kernel.OptionalBytes(a.BranchID()),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	a, err := account.NewAccount(id, dto.Name, account.Role(dto.Role))
	if err != nil {
		return nil, err
	}

	branchID, err := kernel.OptionalUUIDFromBytes(dto.BranchID)
	if err != nil {
		return nil, err
	}
	if branchID != nil {
		if err := a.AttachToBranch(*branchID); err != nil {
			return nil, err
		}
	}
	return a, nil
}
