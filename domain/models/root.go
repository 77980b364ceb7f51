package models

import (
	"github.com/cloudcopper/bytesize"
	"github.com/cloudcopper/bytesize/domain/vo"
	"github.com/go-playground/validator/v10"
)

type RootID = string

const EmptyRootID = RootID("")

// Root is a directory whose usage is measured.
type Root struct {
	RootID      RootID          `gorm:"primaryKey;not null" validate:"required,validid"`
	Name        string          `gorm:"not null" validate:"required"`
	Description string          `gorm:"string"`
	Path        string          `gorm:"uniqueIndex;not null" validate:"required,min=1,dir,abspath"`
	Quota       bytesize.Binary `validate:"min=0"` // zero is no quota
	Flavor      vo.Flavor       `gorm:"string" validate:"omitempty,oneof=decimal binary"`
	Snapshots   Snapshots       `gorm:"foreignKey:RootID;constraint:OnDelete:CASCADE;" yaml:"-" validate:"-"`
}

func (model *Root) Validate(val *validator.Validate) error {
	if model.Flavor == "" {
		model.Flavor = vo.FlavorBinary
	}
	return val.Struct(model)
}

// State returns usage state of size against the root quota
func (model *Root) State(size bytesize.Binary) vo.UsageState {
	if model.Quota != 0 && size > model.Quota {
		return vo.UsageIsOverQuota
	}
	return vo.UsageIsOK
}
