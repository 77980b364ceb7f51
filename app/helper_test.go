package app

import (
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/cloudcopper/bytesize/adapters/repository"
	"github.com/cloudcopper/bytesize/domain/models"
	"github.com/cloudcopper/bytesize/infra"
	"github.com/cloudcopper/bytesize/ports"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func init() {
	level := new(slog.LevelVar)
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
	level.Set(slog.LevelDebug)
}

func timeout() <-chan time.Time {
	return time.After(2 * time.Second)
}

type testFakeAppInternals struct {
	fs    afero.Fs
	bus   ports.EventBus
	repos *repository.Repositories
}

func testFakeApp(t *testing.T, fs afero.Fs, callback func(*testFakeAppInternals)) {
	assert := require.New(t)
	noErr := func(err error) {
		assert.NoError(err)
		if err != nil {
			t.FailNow()
		}
	}

	// Create logger
	log := slog.Default()
	// Create eventbus
	var bus ports.EventBus = infra.NewEventBus()
	defer bus.Shutdown()
	// Create database private to the test
	source := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, closeDb, err := infra.NewDatabase(log, infra.DriverSqlite, source)
	noErr(err)
	defer closeDb()
	noErr(db.AutoMigrate(new(models.Root), new(models.Snapshot)))
	// Create repositories
	rootRepository, err := repository.NewRootRepository(db, fs)
	noErr(err)
	snapshotRepository, err := repository.NewSnapshotRepository(db, fs)
	noErr(err)

	app := &testFakeAppInternals{
		fs:    fs,
		bus:   bus,
		repos: repository.NewRepositories(rootRepository, snapshotRepository),
	}
	callback(app)
}
