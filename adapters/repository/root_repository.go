package repository

import (
	"fmt"

	"github.com/cloudcopper/bytesize/domain/models"
	"github.com/cloudcopper/bytesize/lib"
	"github.com/cloudcopper/bytesize/ports"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RootRepository struct {
	db        ports.DB
	validator *validator.Validate
}

func NewRootRepository(db ports.DB, f ports.FS) (*RootRepository, error) {
	r := &RootRepository{
		db:        db,
		validator: lib.NewValidator(f),
	}
	_, err := r.FindAll()
	return r, err
}

// Create saves root model, the existing root of same id is updated
func (r *RootRepository) Create(model *models.Root) error {
	err := r.db.Transaction(func(db *gorm.DB) error {
		if err := model.Validate(r.validator); err != nil {
			return fmt.Errorf("invalid root object: %w", err)
		}

		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(model).Error; err != nil {
			return fmt.Errorf("unable to save root object: %w", err)
		}
		return nil
	})
	return err
}

// Delete removes root id together with its snapshots
func (r *RootRepository) Delete(id models.RootID) error {
	return r.db.Transaction(func(db *gorm.DB) error {
		if err := db.Where("root_id = ?", id).Delete(new(models.Snapshot)).Error; err != nil {
			return fmt.Errorf("unable to delete snapshots: %w", err)
		}
		if err := db.Where("root_id = ?", id).Delete(new(models.Root)).Error; err != nil {
			return fmt.Errorf("unable to delete root object: %w", err)
		}
		return nil
	})
}

func (r *RootRepository) FindAll() ([]*models.Root, error) {
	var roots []*models.Root
	err := r.db.Order("root_id ASC").Find(&roots).Error
	return roots, err
}

func (r *RootRepository) FindByID(id models.RootID) (*models.Root, error) {
	root := &models.Root{}
	err := r.db.Where("root_id = ?", id).First(root).Error
	if err != nil {
		return nil, err
	}
	return root, nil
}

func (r *RootRepository) IterateAll(callback func(*models.Root) (bool, error)) error {
	return iterateAll(r.db.Order("root_id ASC"), callback)
}
