package repository

import (
	"fmt"

	"github.com/cloudcopper/bytesize/domain/models"
	"github.com/cloudcopper/bytesize/lib"
	"github.com/cloudcopper/bytesize/ports"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type SnapshotRepository struct {
	db        ports.DB
	validator *validator.Validate
}

func NewSnapshotRepository(db ports.DB, f ports.FS) (*SnapshotRepository, error) {
	r := &SnapshotRepository{
		db:        db,
		validator: lib.NewValidator(f),
	}
	err := r.db.Model(new(models.Snapshot)).Limit(1).Find(&[]*models.Snapshot{}).Error
	return r, err
}

func (r *SnapshotRepository) Create(model *models.Snapshot) error {
	if err := model.Validate(r.validator); err != nil {
		return fmt.Errorf("invalid snapshot object: %w", err)
	}
	if err := r.db.Create(model).Error; err != nil {
		return fmt.Errorf("unable to save snapshot object: %w", err)
	}
	return nil
}

// FindLatest returns the most recent snapshot of root id.
// The ULID ids are monotonic, so they break ties of same second snapshots.
func (r *SnapshotRepository) FindLatest(id models.RootID) (*models.Snapshot, error) {
	snapshot := &models.Snapshot{}
	err := r.db.Where("root_id = ?", id).Order("created_at DESC").Order("snapshot_id DESC").First(snapshot).Error
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// FindByRootID returns snapshots of root id, newest first.
// Negative limit means no limit.
func (r *SnapshotRepository) FindByRootID(id models.RootID, limit ports.Limit) (models.Snapshots, error) {
	var snapshots models.Snapshots
	db := r.db.Where("root_id = ?", id).Order("created_at DESC").Order("snapshot_id DESC")
	if limit >= 0 {
		db = db.Limit(int(limit))
	}
	err := db.Find(&snapshots).Error
	return snapshots, err
}

// Prune removes all but keep newest snapshots of root id
// and returns number of removed snapshots.
func (r *SnapshotRepository) Prune(id models.RootID, keep int) (int64, error) {
	lib.Assert(keep >= 0, "negative keep")
	var removed int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var ids []models.SnapshotID
		err := tx.Model(new(models.Snapshot)).
			Where("root_id = ?", id).
			Order("created_at DESC").Order("snapshot_id DESC").
			Pluck("snapshot_id", &ids).Error
		if err != nil || len(ids) <= keep {
			return err
		}
		res := tx.Where("snapshot_id IN ?", ids[keep:]).Delete(new(models.Snapshot))
		removed = res.RowsAffected
		return res.Error
	})
	return removed, err
}
