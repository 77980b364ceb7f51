package domain

import (
	"github.com/cloudcopper/bytesize/domain/models"
	"github.com/cloudcopper/bytesize/ports"
)

type SnapshotRepository interface {
	Create(model *models.Snapshot) error
	FindLatest(id models.RootID) (*models.Snapshot, error)
	FindByRootID(id models.RootID, limit ports.Limit) (models.Snapshots, error)
	Prune(id models.RootID, keep int) (int64, error)
}
