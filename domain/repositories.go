package domain

type Repositories interface {
	Root() RootRepository
	Snapshot() SnapshotRepository
}
