package app

import (
	"log/slog"
	"sort"

	"github.com/cloudcopper/bytesize/domain"
	"github.com/cloudcopper/bytesize/domain/errors"
	"github.com/cloudcopper/bytesize/infra/config"
	"github.com/cloudcopper/bytesize/lib"
	"github.com/cloudcopper/bytesize/ports"
)

func startup(log ports.Logger, cfg *config.Config, bus ports.EventBus, rootRepository domain.RootRepository) error {
	keys := make([]string, 0, len(cfg.Roots))
	for k := range cfg.Roots {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	//
	// Remove roots no longer configured,
	// their snapshots are removed by cascade
	//
	configured := map[string]bool{}
	for _, root := range cfg.Roots {
		configured[root.RootID] = true
	}
	roots, err := rootRepository.FindAll()
	if err != nil {
		log.Error("unable find root records", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetCreateRootRecordError)
	}
	for _, root := range roots {
		if configured[root.RootID] {
			continue
		}
		log.Warn("remove root record", slog.String("rootID", root.RootID))
		if err := rootRepository.Delete(root.RootID); err != nil {
			log.Error("unable remove root record", slog.Any("err", err))
			return lib.NewErrorCode(err, errors.RetCreateRootRecordError)
		}
	}

	//
	// Create or update root models
	//
	paths := ports.Event{}
	for _, k := range keys {
		root := cfg.Roots[k]
		log := log.With(slog.String("config", k), slog.String("rootID", root.RootID))

		// Create root model in repository
		if err := rootRepository.Create(root); err != nil {
			log.Error("unable create root record", slog.Any("err", err))
			return lib.NewErrorCode(err, errors.RetCreateRootRecordError)
		}
		paths = append(paths, root.Path)
	}

	// Emit event on roots to watch and measure
	if len(paths) > 0 {
		bus.Pub(ports.TopicRootUpdated, paths)
	}
	return nil
}
