package config

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/cloudcopper/bytesize"
	"github.com/cloudcopper/bytesize/domain/models"
	"github.com/cloudcopper/bytesize/domain/vo"
	"github.com/cloudcopper/bytesize/lib"
	"github.com/cloudcopper/bytesize/ports"
	tpl "github.com/cloudcopper/misc/env/template"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"go-simpler.org/env"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen   string                  `yaml:"listen" env:"BYTESIZE_LISTEN" usage:"http listen address" validate:"required"`
	Database string                  `yaml:"database" env:"BYTESIZE_DB" usage:"sqlite database file, in-memory when empty"`
	Flavor   vo.Flavor               `yaml:"flavor" env:"BYTESIZE_FLAVOR" usage:"default display flavor: decimal (si) or binary (iec)" validate:"flavor"`
	Quota    bytesize.Binary         `yaml:"quota" env:"BYTESIZE_QUOTA" usage:"default quota of roots, 0 is no quota"`
	Keep     int                     `yaml:"keep" env:"BYTESIZE_KEEP" usage:"number of snapshots kept per root" validate:"min=1"`
	Settle   time.Duration           `yaml:"settle" env:"BYTESIZE_SETTLE" usage:"quiet period before a changed root is measured" validate:"min=0"`
	Roots    map[string]*models.Root `yaml:"roots" validate:"-"`
}

func (c *Config) String() string {
	s := ""
	s += fmt.Sprintf("listen: %v\n", c.Listen)
	s += fmt.Sprintf("database: %v\n", c.Database)
	s += fmt.Sprintf("flavor: %v\n", c.Flavor)
	s += fmt.Sprintf("quota: %v\n", c.Quota)
	s += fmt.Sprintf("keep: %v\n", c.Keep)
	s += fmt.Sprintf("settle: %v\n", c.Settle)
	s += "roots:\n"
	keys := make([]string, 0, len(c.Roots))
	for k := range c.Roots {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		root := c.Roots[k]
		s += fmt.Sprintf("  %v:\n", k)
		if k == root.RootID {
			s += fmt.Sprintf("    #rootid: %v\n", root.RootID)
		} else {
			s += fmt.Sprintf("    rootid: %v\n", root.RootID)
		}
		s += fmt.Sprintf("    name: %v\n", root.Name)
		s += fmt.Sprintf("    description: %v\n", root.Description)
		s += fmt.Sprintf("    path: %v\n", root.Path)
		s += fmt.Sprintf("    quota: %v\n", root.Quota)
		s += fmt.Sprintf("    flavor: %v\n", root.Flavor)
	}
	return strings.TrimSuffix(s, "\n")
}

const refRootID = "${ROOT_ID}"

const ErrInvalidConfig = lib.Error("invalid config")

var (
	Listen         = ":8080"
	ConfigFileName = lib.GetEnvDefault("BYTESIZE_CONFIG", "bytesize.yml")
	DatabaseSource = ""
	Flavor         = vo.FlavorBinary
	Keep           = 100
	Settle         = 500 * time.Millisecond
)

// Defaults returns config made of package defaults
func Defaults() *Config {
	return &Config{
		Listen:   Listen,
		Database: DatabaseSource,
		Flavor:   Flavor,
		Keep:     Keep,
		Settle:   Settle,
		Roots:    map[string]*models.Root{},
	}
}

// LoadConfig returns effective config.
// The package defaults are overridden by the config file (optional),
// which are overridden by environment variables from source.
// The nil source means OS environment.
func LoadConfig(log ports.Logger, fs afero.Fs, source env.Source) (*Config, error) {
	cfg := Defaults()
	if err := loadConfigFile(log, fs, ConfigFileName, cfg); err != nil {
		return nil, err
	}

	var opts *env.Options
	if source != nil {
		opts = &env.Options{Source: source}
	}
	if err := env.Load(cfg, opts); err != nil {
		return nil, err
	}

	if err := newValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cfg.Roots = processRootsConfigs(log, cfg)

	// dump effective config
	dump := strings.Split(cfg.String(), "\n")
	for _, s := range dump {
		log.Debug(s)
	}
	return cfg, nil
}

// The loadConfigFile reads named config file from given fs,
// execute file as env template,
// and unmarshal result over the cfg.
// Missing file is not an error.
func loadConfigFile(log ports.Logger, fs afero.Fs, fileName string, cfg *Config) error {
	if lib.NoSuchFile(fs, fileName) {
		log.Warn("no config file", slog.String("fileName", fileName))
		return nil
	}

	log.Info("loading config", slog.String("fileName", fileName))
	blob, err := afero.ReadFile(fs, fileName)
	if err != nil {
		return err
	}

	// parse config as template
	t, err := tpl.Parse(string(blob))
	if err != nil {
		return err
	}
	// execute template
	s, err := t.Execute()
	if err != nil {
		return err
	}

	return yaml.Unmarshal([]byte(s), cfg)
}

// Usage writes description of environment variables to w
func Usage(w io.Writer) {
	env.Usage(Defaults(), w, nil)
}

func newValidator() *validator.Validate {
	val := validator.New()
	val.RegisterValidation("flavor", func(fl validator.FieldLevel) bool {
		return vo.Flavor(fl.Field().String()).IsValid()
	})
	return val
}

// The processRootsConfigs returns only meaningful root configuration
// with correct refRootID macro and defaults applied
func processRootsConfigs(log ports.Logger, cfg *Config) map[string]*models.Root {
	ret := make(map[string]*models.Root)

	for k, v := range cfg.Roots {
		log := log.With(slog.String("configID", k))

		// Skip IDs starting with _
		// Sort of special meaning
		if strings.HasPrefix(k, "_") {
			continue
		}
		if v == nil {
			log.Warn("skip - empty root config")
			continue
		}

		// Correct ID
		if v.RootID == "" {
			v.RootID = refRootID
		}
		v.RootID = strings.ReplaceAll(v.RootID, refRootID, k)
		log = log.With(slog.String("rootID", v.RootID))
		if !lib.IsValidID(v.RootID) {
			log.Error("skip - invalid root id")
			continue
		}

		// Replace all entry of refRootID to ID
		replaceRefRootID := func(s string) string {
			return strings.ReplaceAll(s, refRootID, v.RootID)
		}
		v.Name = replaceRefRootID(v.Name)
		v.Description = replaceRefRootID(v.Description)
		v.Path = replaceRefRootID(v.Path)

		if v.Path == "" {
			log.Warn("skip - root has no path")
			continue
		}
		if v.Name == "" {
			v.Name = v.RootID
		}
		if v.Flavor == "" {
			v.Flavor = cfg.Flavor
		}
		if v.Quota == 0 {
			v.Quota = cfg.Quota
		}

		ret[k] = v
	}

	// Check multiple roots has same path
	return removeSameRoots(log, ret)
}

func removeSameRoots(log ports.Logger, in map[string]*models.Root) map[string]*models.Root {
	out := map[string]*models.Root{}

	isNested := func(a, b string) bool {
		if !strings.HasSuffix(a, "/") {
			a += "/"
		}
		if !strings.HasSuffix(b, "/") {
			b += "/"
		}
		return strings.HasPrefix(a, b) || strings.HasPrefix(b, a)
	}

	for k1, v1 := range in {
		isDup := false

		for k2, v2 := range in {
			if k1 == k2 {
				continue
			}
			switch {
			case v1.Path == v2.Path:
				isDup = true
				log.Error("duplicated config detected", slog.String("rootID", k1), slog.String("path", v1.Path))
			case isNested(v1.Path, v2.Path):
				isDup = true
				log.Error("nested config detected", slog.String("rootID", k1), slog.String("path", v1.Path))
			}
			if isDup {
				break
			}
		}

		if isDup {
			continue
		}
		out[k1] = v1
	}

	return out
}
