package models

import (
	"github.com/cloudcopper/bytesize"
	"github.com/cloudcopper/bytesize/domain/errors"
	"github.com/cloudcopper/bytesize/domain/vo"
	"github.com/go-playground/validator/v10"
)

type SnapshotID = string

type Snapshots []*Snapshot

// Snapshot is a measured usage of root at time of creation
type Snapshot struct {
	SnapshotID SnapshotID      `gorm:"primaryKey;not null" validate:"required,len=26"` // ULID
	RootID     RootID          `gorm:"index;not null" validate:"required,validid"`
	Files      int64           `gorm:"not null" validate:"min=0"`
	Dirs       int64           `gorm:"not null" validate:"min=0"`
	Size       bytesize.Binary `gorm:"not null"`
	State      vo.UsageState   `gorm:"int" validate:"min=0,max=1"`
	CreatedAt  int64           `gorm:"index;column:created_at" validate:"required,gt=0"` // UTC Unix time of creation
}

func (model *Snapshot) Validate(val *validator.Validate) error {
	if err := val.Struct(model); err != nil {
		return err
	}
	if model.Files == 0 && model.Size != 0 {
		return errors.ErrInconsistentSnapshot
	}
	return nil
}
