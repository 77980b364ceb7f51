package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/cloudcopper/bytesize"
	"github.com/cloudcopper/bytesize/domain/models"
	"github.com/cloudcopper/bytesize/domain/vo"
	"github.com/cloudcopper/bytesize/lib"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type envMap map[string]string

func (e envMap) LookupEnv(key string) (string, bool) {
	value, ok := e[key]
	return value, ok
}

const testConfig = `
flavor: decimal
quota: 10 GiB
keep: 5
roots:
  home:
    name: Home
    path: /srv/home
    quota: 1.5 GiB
  cache:
    path: /srv/cache
    flavor: binary
  _template:
    path: /srv/template
  nested:
    path: /srv/cache/nested
`

func TestLoadConfig(t *testing.T) {
	assert := require.New(t)
	fs := afero.NewMemMapFs()
	assert.NoError(lib.CreateFile(fs, ConfigFileName, testConfig))

	cfg, err := LoadConfig(slog.Default(), fs, envMap{
		"BYTESIZE_LISTEN": "127.0.0.1:0",
		"BYTESIZE_KEEP":   "7",
	})
	assert.NoError(err)
	assert.Equal("127.0.0.1:0", cfg.Listen)
	assert.Equal(vo.FlavorDecimal, cfg.Flavor)
	assert.Equal(bytesize.Gibibytes(10), cfg.Quota)
	assert.Equal(7, cfg.Keep)
	assert.Equal(Settle, cfg.Settle)

	// _template skipped, cache and nested overlap
	assert.Len(cfg.Roots, 1)
	home := cfg.Roots["home"]
	assert.NotNil(home)
	assert.Equal("home", home.RootID)
	assert.Equal("Home", home.Name)
	assert.Equal("/srv/home", home.Path)
	assert.Equal(bytesize.Mebibytes(1536), home.Quota)
	assert.Equal(vo.FlavorDecimal, home.Flavor)
}

func TestLoadConfigDefaults(t *testing.T) {
	assert := require.New(t)
	fs := afero.NewMemMapFs()

	cfg, err := LoadConfig(slog.Default(), fs, envMap{
		"BYTESIZE_QUOTA":  "2 TB",
		"BYTESIZE_SETTLE": "1s",
	})
	assert.NoError(err)
	assert.Equal(Listen, cfg.Listen)
	assert.Equal(vo.FlavorBinary, cfg.Flavor)
	assert.Equal(bytesize.Binary(2_000_000_000_000), cfg.Quota)
	assert.Equal(time.Second, cfg.Settle)
	assert.Empty(cfg.Roots)
}

func TestLoadConfigFlavorAliases(t *testing.T) {
	assert := require.New(t)
	fs := afero.NewMemMapFs()
	assert.NoError(lib.CreateFile(fs, ConfigFileName, `
flavor: iec
roots:
  home:
    path: /srv/home
    flavor: si
  cache:
    path: /srv/cache
`))

	cfg, err := LoadConfig(slog.Default(), fs, envMap{})
	assert.NoError(err)
	assert.Equal(vo.FlavorBinary, cfg.Flavor)
	assert.Equal(vo.FlavorDecimal, cfg.Roots["home"].Flavor)
	assert.Equal(vo.FlavorBinary, cfg.Roots["cache"].Flavor)

	cfg, err = LoadConfig(slog.Default(), fs, envMap{"BYTESIZE_FLAVOR": "si"})
	assert.NoError(err)
	assert.Equal(vo.FlavorDecimal, cfg.Flavor)
	assert.Equal(vo.FlavorDecimal, cfg.Roots["cache"].Flavor)
}

func TestLoadConfigErrors(t *testing.T) {
	testCases := []struct {
		desc   string
		config string
		env    envMap
	}{
		{"bad flavor in file", "flavor: octal\n", envMap{}},
		{"bad flavor in env", "", envMap{"BYTESIZE_FLAVOR": "octal"}},
		{"bad quota in file", "quota: 5 XB\n", envMap{}},
		{"bad quota in env", "", envMap{"BYTESIZE_QUOTA": "lots"}},
		{"bad keep", "keep: 0\n", envMap{}},
		{"bad yaml", "roots: [\n", envMap{}},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert := require.New(t)
			fs := afero.NewMemMapFs()
			if tC.config != "" {
				assert.NoError(lib.CreateFile(fs, ConfigFileName, tC.config))
			}
			_, err := LoadConfig(slog.Default(), fs, tC.env)
			assert.Error(err)
		})
	}
}

func TestProcessRootsConfigs(t *testing.T) {
	assert := require.New(t)
	cfg := Defaults()
	cfg.Quota = bytesize.Gibibytes(1)
	cfg.Roots = map[string]*models.Root{
		"media": {Name: "Media of ${ROOT_ID}", Path: "/srv/${ROOT_ID}"},
		"backup": {
			RootID: "${ROOT_ID}-daily",
			Path:   "/srv/backup",
			Quota:  bytesize.Tebibytes(1),
			Flavor: vo.FlavorDecimal,
		},
		"bad":   {RootID: "bad id", Path: "/srv/bad"},
		"empty": {Name: "no path"},
		"nil":   nil,
		"_skip": {Path: "/srv/skip"},
	}

	roots := processRootsConfigs(slog.Default(), cfg)
	assert.Len(roots, 2)

	media := roots["media"]
	assert.Equal("media", media.RootID)
	assert.Equal("Media of media", media.Name)
	assert.Equal("/srv/media", media.Path)
	assert.Equal(bytesize.Gibibytes(1), media.Quota)
	assert.Equal(vo.FlavorBinary, media.Flavor)

	backup := roots["backup"]
	assert.Equal("backup-daily", backup.RootID)
	assert.Equal("backup-daily", backup.Name)
	assert.Equal(bytesize.Tebibytes(1), backup.Quota)
	assert.Equal(vo.FlavorDecimal, backup.Flavor)
}

func TestRemoveSameRoots(t *testing.T) {
	testCases := []struct {
		desc string
		in   map[string]*models.Root
		out  map[string]*models.Root
	}{
		{
			desc: "well configured",
			in: map[string]*models.Root{
				"root1": {Path: "/srv/root1"},
				"root2": {Path: "/srv/root2"},
				"root3": {Path: "/srv/root3"},
			},
			out: map[string]*models.Root{
				"root1": {Path: "/srv/root1"},
				"root2": {Path: "/srv/root2"},
				"root3": {Path: "/srv/root3"},
			},
		},
		{
			desc: "two path dups",
			in: map[string]*models.Root{
				"root1": {Path: "/srv/root"},
				"root2": {Path: "/srv/root"},
			},
			out: map[string]*models.Root{},
		},
		{
			desc: "only one normal",
			in: map[string]*models.Root{
				"root1": {Path: "/srv/root"},
				"root2": {Path: "/srv/root"},
				"root3": {Path: "/srv/root3"},
			},
			out: map[string]*models.Root{
				"root3": {Path: "/srv/root3"},
			},
		},
		{
			desc: "two nested",
			in: map[string]*models.Root{
				"root1": {Path: "/srv/root/root1"},
				"root2": {Path: "/srv/root"},
				"root3": {Path: "/srv/root3"},
			},
			out: map[string]*models.Root{
				"root3": {Path: "/srv/root3"},
			},
		},
		{
			desc: "common prefix is not nested",
			in: map[string]*models.Root{
				"root1": {Path: "/srv/root"},
				"root2": {Path: "/srv/rootless"},
			},
			out: map[string]*models.Root{
				"root1": {Path: "/srv/root"},
				"root2": {Path: "/srv/rootless"},
			},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			assert := require.New(t)
			out := removeSameRoots(slog.Default(), tC.in)
			assert.Equal(tC.out, out)
		})
	}
}
