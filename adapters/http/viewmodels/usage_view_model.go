package viewmodels

import (
	"time"

	"github.com/cloudcopper/bytesize/domain/models"
	"github.com/cloudcopper/bytesize/domain/vo"
)

type Snapshot struct {
	SnapshotID models.SnapshotID `json:"snapshotID"`
	Files      int64             `json:"files"`
	Dirs       int64             `json:"dirs"`
	Size       *Size             `json:"size"`
	State      string            `json:"state"`
	CreatedAt  time.Time         `json:"createdAt"`
}

func NewSnapshot(flavor vo.Flavor, snapshot *models.Snapshot) *Snapshot {
	return &Snapshot{
		SnapshotID: snapshot.SnapshotID,
		Files:      snapshot.Files,
		Dirs:       snapshot.Dirs,
		Size:       NewSize(flavor, snapshot.Size.Bytes()),
		State:      snapshot.State.String(),
		CreatedAt:  time.Unix(snapshot.CreatedAt, 0).UTC(),
	}
}

func NewSnapshots(flavor vo.Flavor, snapshots models.Snapshots) []*Snapshot {
	a := []*Snapshot{}
	for _, snapshot := range snapshots {
		a = append(a, NewSnapshot(flavor, snapshot))
	}
	return a
}

// Usage is a root with its latest snapshot, if it was measured already
type Usage struct {
	RootID      models.RootID `json:"rootID"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Path        string        `json:"path"`
	Flavor      vo.Flavor     `json:"flavor"`
	Quota       *Size         `json:"quota,omitempty"`
	Latest      *Snapshot     `json:"latest"`
}

func NewUsage(root *models.Root, latest *models.Snapshot) *Usage {
	u := &Usage{
		RootID:      root.RootID,
		Name:        root.Name,
		Description: root.Description,
		Path:        root.Path,
		Flavor:      root.Flavor,
	}
	if root.Quota != 0 {
		u.Quota = NewSize(root.Flavor, root.Quota.Bytes())
	}
	if latest != nil {
		u.Latest = NewSnapshot(root.Flavor, latest)
	}
	return u
}
