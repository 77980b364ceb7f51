package app

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/cloudcopper/bytesize/domain"
	"github.com/cloudcopper/bytesize/domain/models"
	"github.com/cloudcopper/bytesize/infra"
	"github.com/cloudcopper/bytesize/infra/disk"
	"github.com/cloudcopper/bytesize/lib"
	"github.com/cloudcopper/bytesize/ports"
	"github.com/oklog/ulid/v2"
)

type UsageService struct {
	log                 ports.Logger
	bus                 ports.EventBus
	walk                disk.FilepathWalk
	repos               domain.Repositories
	keep                int
	settle              time.Duration
	chTopicRootUpdated  chan ports.Event
	chTopicFileModified chan ports.Event
	chTopicFileRemoved  chan ports.Event
	closeWg             sync.WaitGroup
}

// NewUsageService creates usage service:
// - measure roots announced by ports.TopicRootUpdated
// - re-measure root on watcher events of its files
// - store snapshot and keep only newest keep of them
// - publish ports.TopicUsageUpdated and ports.TopicQuotaExceeded
// Events are collected for settle duration before root is measured,
// so burst of file events causes single walk.
func NewUsageService(log ports.Logger, bus ports.EventBus, walk disk.FilepathWalk, repos domain.Repositories, watcherID string, keep int, settle time.Duration) *UsageService {
	log = log.With(slog.String("entity", "UsageService"))
	lib.Assert(keep > 0, "keep must be positive")
	s := &UsageService{
		log:                 log,
		bus:                 bus,
		walk:                walk,
		repos:               repos,
		keep:                keep,
		settle:              settle,
		chTopicRootUpdated:  bus.Sub(ports.TopicRootUpdated),
		chTopicFileModified: bus.Sub(infra.TopicFileModified(watcherID)),
		chTopicFileRemoved:  bus.Sub(infra.TopicFileRemoved(watcherID)),
	}

	s.closeWg.Add(1)
	go func() {
		defer s.closeWg.Done()
		log.Info("process started")
		defer log.Warn("process complete")
		s.background()
	}()

	return s
}

func (s *UsageService) Close() {
	s.log.Info("closing")
	s.bus.Unsub(s.chTopicRootUpdated)
	s.bus.Unsub(s.chTopicFileModified)
	s.bus.Unsub(s.chTopicFileRemoved)
	s.closeWg.Wait()
}

func (s *UsageService) background() {
	pending := map[string]bool{}
	var settled <-chan time.Time

	add := func(files []string) {
		for _, file := range files {
			pending[file] = true
		}
		if settled == nil {
			settled = time.After(s.settle)
		}
	}

	for {
		select {
		case event, ok := <-s.chTopicRootUpdated:
			if !ok {
				return
			}
			add(event)
		case event, ok := <-s.chTopicFileModified:
			if !ok {
				return
			}
			add(event)
		case event, ok := <-s.chTopicFileRemoved:
			if !ok {
				return
			}
			add(event)
		case <-settled:
			settled = nil
			s.measurePending(pending)
			pending = map[string]bool{}
		}
	}
}

// measurePending measures every root containing any of files once
func (s *UsageService) measurePending(files map[string]bool) {
	roots, err := s.repos.Root().FindAll()
	if err != nil {
		s.log.Error("unable to find roots", slog.Any("err", err))
		return
	}
	byPath := map[string]*models.Root{}
	paths := []string{}
	for _, root := range roots {
		byPath[root.Path] = root
		paths = append(paths, root.Path)
	}

	measured := map[string]bool{}
	for file := range files {
		path := lib.RootOf(paths, file)
		if path == "" {
			s.log.Warn("file outside of roots", slog.String("file", file))
			continue
		}
		if measured[path] {
			continue
		}
		measured[path] = true
		s.Measure(byPath[path])
	}
}

// Measure walks root, stores its snapshot and publishes the result
func (s *UsageService) Measure(root *models.Root) (*models.Snapshot, error) {
	log := s.log.With(slog.String("rootID", root.RootID))

	usage, err := s.walk.Measure(root.Path)
	if err != nil {
		log.Error("unable to measure root", slog.String("path", root.Path), slog.Any("err", err))
		return nil, err
	}

	snapshot := &models.Snapshot{
		SnapshotID: ulid.Make().String(),
		RootID:     root.RootID,
		Files:      usage.Files,
		Dirs:       usage.Dirs,
		Size:       usage.Size,
		State:      root.State(usage.Size),
		CreatedAt:  time.Now().UTC().Unix(),
	}
	if err := s.repos.Snapshot().Create(snapshot); err != nil {
		log.Error("unable to create snapshot", slog.Any("err", err))
		return nil, err
	}
	if n, err := s.repos.Snapshot().Prune(root.RootID, s.keep); err != nil {
		log.Error("unable to prune snapshots", slog.Any("err", err))
	} else if n > 0 {
		log.Debug("snapshots pruned", slog.Int64("count", n))
	}

	size := strconv.FormatUint(usage.Size.Bytes(), 10)
	log.Info("usage updated",
		slog.String("size", root.Flavor.Format(usage.Size.Bytes())),
		slog.Int64("files", usage.Files),
		slog.Int64("dirs", usage.Dirs))
	s.bus.Pub(ports.TopicUsageUpdated, ports.Event{root.RootID, size, snapshot.SnapshotID})

	if snapshot.State.IsOverQuota() {
		quota := strconv.FormatUint(root.Quota.Bytes(), 10)
		log.Warn("quota exceeded",
			slog.String("size", root.Flavor.Format(usage.Size.Bytes())),
			slog.String("quota", root.Flavor.Format(root.Quota.Bytes())))
		s.bus.Pub(ports.TopicQuotaExceeded, ports.Event{root.RootID, size, quota})
	}

	return snapshot, nil
}
