package infra

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/cloudcopper/bytesize/domain/errors"
	"github.com/cloudcopper/bytesize/lib"
	"github.com/cloudcopper/bytesize/ports"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// TopicFileModified returns topic of watcher id, where created
// and modified files are published
func TopicFileModified(id string) ports.Topic {
	return fmt.Sprintf("%v-file-modified", id)
}

// TopicFileRemoved returns topic of watcher id, where removed
// and renamed files are published
func TopicFileRemoved(id string) ports.Topic {
	return fmt.Sprintf("%v-file-removed", id)
}

type WatcherService struct {
	id                 string
	log                ports.Logger
	bus                ports.EventBus
	fs                 ports.FS
	chTopicRootUpdated chan ports.Event
	watcher            *fsnotify.Watcher
	closeWg            sync.WaitGroup
}

// NewWatcherService creates watcher of directories
// announced at ports.TopicRootUpdated.
// The fs must be OS filesystem as fsnotify watches real directories.
func NewWatcherService(id string, log ports.Logger, bus ports.EventBus, fs ports.FS) (*WatcherService, error) {
	log = log.With(slog.String("entity", "WatcherService"), slog.String("id", id))
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	s := &WatcherService{
		id:                 id,
		log:                log,
		bus:                bus,
		fs:                 fs,
		chTopicRootUpdated: bus.Sub(ports.TopicRootUpdated),
		watcher:            watcher,
	}
	log.Info("created")

	s.closeWg.Add(1)
	go func() {
		defer s.closeWg.Done()
		log.Info("process started")
		defer log.Warn("process complete")
		s.background()
	}()

	return s, nil
}

func (s *WatcherService) Close() {
	if s == nil {
		return
	}
	if s.watcher == nil {
		return
	}

	s.log.Info("closing")
	s.bus.Unsub(s.chTopicRootUpdated)
	s.watcher.Close()
	s.closeWg.Wait()
	s.watcher = nil
}

// WARN The remove of path would remove if from watch list inside the fsnotify!!!
// WARN	Such even would be communcated by remove event with name of path
func (s *WatcherService) addDir(path string) error {
	log := s.log
	if abspath, err := filepath.Abs(path); abspath != path || err != nil {
		log.Error("add dir failed!!!", slog.Any("err", err), slog.String("path", path), slog.String("abspath", abspath))
		return errors.ErrMustBeAbsPath
	}
	log.Info("add dir", slog.String("path", path))
	err := s.watcher.Add(path)
	if err != nil {
		log.Error("add dir failed!!!", slog.Any("err", err), slog.String("path", path))
	}
	return err
}

// addTree adds path and all its subdirectories,
// as fsnotify does not watch recursively
func (s *WatcherService) addTree(path string) error {
	return afero.Walk(s.fs, path, func(name string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		return s.addDir(name)
	})
}

func (s *WatcherService) background() {
	log, bus := s.log, s.bus
	topicFileModified := TopicFileModified(s.id)
	topicFileRemoved := TopicFileRemoved(s.id)
	for {
		select {
		case event, ok := <-s.chTopicRootUpdated:
			log.Debug("root event", slog.Any("event", event))
			if !ok {
				return
			}
			for _, path := range event {
				if err := s.addTree(path); err != nil {
					log.Error("unable to watch root", slog.String("root", path), slog.Any("err", err))
				}
			}
		case err, ok := <-s.watcher.Errors:
			if err != nil {
				log.Error("watcher error", slog.Any("err", err))
			}
			if !ok {
				return
			}
		case event, ok := <-s.watcher.Events:
			log.Debug("watcher event", slog.Any("event", event))
			if !ok {
				return
			}

			file := event.Name
			if event.Has(fsnotify.Create) && lib.DirExists(s.fs, file) {
				dir := file
				log := log.With(slog.String("dir", dir))
				log.Debug("directory created")
				if err := s.addTree(dir); err != nil {
					log.Error("unable to add recursive dir", slog.Any("err", err))
				}
				bus.Pub(topicFileModified, ports.Event{dir})
				continue
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				size := lib.FileSize(s.fs, file)
				log.Debug("file modified", slog.String("file", file), slog.Uint64("size", size))
				bus.Pub(topicFileModified, ports.Event{file})
			}
			if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				log.Debug("file removed", slog.String("file", file))
				bus.Pub(topicFileRemoved, ports.Event{file})
			}
		}
	}
}
