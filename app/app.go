// Package app runs the usage service: it measures configured roots,
// keeps their snapshots and serves sizes over http.
package app

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudcopper/bytesize/adapters/http"
	"github.com/cloudcopper/bytesize/adapters/repository"
	"github.com/cloudcopper/bytesize/domain/errors"
	"github.com/cloudcopper/bytesize/domain/models"
	"github.com/cloudcopper/bytesize/infra"
	"github.com/cloudcopper/bytesize/infra/config"
	"github.com/cloudcopper/bytesize/infra/disk"
	"github.com/cloudcopper/bytesize/lib"
	"github.com/cloudcopper/bytesize/ports"
	"github.com/spf13/afero"
)

const watcherID = "roots"

// App execute application and returns error, when complete by ctrl-c.
func App(log ports.Logger, cfg *config.Config) error {
	var fs ports.FS = afero.NewOsFs()

	// EventBus
	var bus ports.EventBus = infra.NewEventBus()
	defer bus.Shutdown()

	// Open database
	driver := infra.DriverSqlite
	source := infra.SourceSqliteInMemory
	if cfg.Database != "" {
		source = infra.SourceSqliteFile(cfg.Database)
	}
	db, closeDb, err := infra.NewDatabase(log, driver, source)
	if err != nil {
		log.Error("unable to create database", slog.Any("err", err), slog.String("driver", driver), slog.String("source", source))
		return lib.NewErrorCode(err, errors.RetCreateDatabaseError)
	}
	defer closeDb()
	// Sync database
	if err := db.AutoMigrate(new(models.Root), new(models.Snapshot)); err != nil {
		log.Error("unable sync database", slog.Any("err", err), slog.String("driver", driver), slog.String("source", source))
		return lib.NewErrorCode(err, errors.RetMigrateDatabaseError)
	}
	// Create repositories
	rootRepository, err := repository.NewRootRepository(db, fs)
	if err != nil {
		log.Error("unable create root repository", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetCreateRootRepository)
	}
	snapshotRepository, err := repository.NewSnapshotRepository(db, fs)
	if err != nil {
		log.Error("unable create snapshot repository", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetCreateSnapshotRepository)
	}
	repositories := repository.NewRepositories(rootRepository, snapshotRepository)

	// Create usage service
	// - measure roots at startup
	// - re-measure roots on file events
	usageService := NewUsageService(log, bus, disk.NewFilepathWalk(fs), repositories, watcherID, cfg.Keep, cfg.Settle)
	defer usageService.Close()
	// Create filesystem watcher for roots
	watcher, err := infra.NewWatcherService(watcherID, log, bus, fs)
	if err != nil {
		log.Error("unable to create new watcher service", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetCreateWatcherError)
	}
	defer watcher.Close()

	// Perform neccesery startup operations
	if err := startup(log, cfg, bus, rootRepository); err != nil {
		return err
	}

	// Create router
	router := http.NewRouter(log)
	http.AddRoutes(log, router, infra.NewRender(), repositories)
	// Create http server
	// The router must has all routes already
	// It will start server in separate goroutine
	addr := cfg.Listen
	httpServer, err := infra.NewWebServer(log, addr, router)
	if err != nil {
		log.Error("unable create web server", slog.Any("err", err), slog.String("addr", addr))
		return lib.NewErrorCode(err, errors.RetCreateWebServerError)
	}

	// Add ctrl-c shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	log.Info("press ctrl-c to exit")
	// Wait for ctrl-c
	<-c

	// Close http server
	httpServer.Close()
	return nil
}
