package repository

import "github.com/cloudcopper/bytesize/domain"

type Repositories struct {
	root     domain.RootRepository
	snapshot domain.SnapshotRepository
}

func NewRepositories(root domain.RootRepository, snapshot domain.SnapshotRepository) *Repositories {
	r := &Repositories{
		root:     root,
		snapshot: snapshot,
	}

	return r
}

func (r *Repositories) Root() domain.RootRepository {
	return r.root
}

func (r *Repositories) Snapshot() domain.SnapshotRepository {
	return r.snapshot
}
