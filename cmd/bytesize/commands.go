package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/cloudcopper/bytesize"
	"github.com/cloudcopper/bytesize/app"
	"github.com/cloudcopper/bytesize/domain/errors"
	"github.com/cloudcopper/bytesize/domain/vo"
	"github.com/cloudcopper/bytesize/infra/config"
	"github.com/cloudcopper/bytesize/infra/disk"
	"github.com/cloudcopper/bytesize/lib"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
)

// flagSet returns flag set of command name with common flags
func flagSet(name string, flavor *string, verbose *bool) *flag.FlagSet {
	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.StringVar(flavor, "flavor", lib.GetEnvDefault("BYTESIZE_FLAVOR", string(vo.FlavorBinary)), "display flavor: decimal (si) or binary (iec)")
	fset.BoolVar(verbose, "v", false, "verbose logging")
	return fset
}

func parseFlags(fset *flag.FlagSet, args []string, flavor *string, verbose *bool) (vo.Flavor, error) {
	if err := fset.Parse(args); err != nil {
		return "", lib.NewErrorCode(err, errors.RetParseError)
	}
	if *verbose {
		logLevel.Set(slog.LevelDebug)
	}
	f, err := vo.ParseFlavor(*flavor)
	if err != nil {
		return "", lib.NewErrorCode(fmt.Errorf("%w: %q", err, *flavor), errors.RetParseError)
	}
	return f, nil
}

// runParse prints byte count, display and exact forms of every TEXT
func runParse(log *slog.Logger, args []string, stdout io.Writer) error {
	var flavor string
	var verbose bool
	fset := flagSet("parse", &flavor, &verbose)
	f, err := parseFlags(fset, args, &flavor, &verbose)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	var ret error
	for _, s := range fset.Args() {
		n, err := f.Parse(s)
		if err != nil {
			log.Error("parse failed", slog.String("input", s), slog.Any("err", err))
			ret = lib.NewErrorCode(err, errors.RetParseError)
			continue
		}
		fmt.Fprintf(w, "%v\t%v\t%v\t%v\n", s, n, f.Format(n), bytesize.Binary(n).Exact())
	}
	return ret
}

// runFormat prints display form of every COUNT
func runFormat(log *slog.Logger, args []string, stdout io.Writer) error {
	var flavor string
	var verbose bool
	fset := flagSet("format", &flavor, &verbose)
	f, err := parseFlags(fset, args, &flavor, &verbose)
	if err != nil {
		return err
	}

	var ret error
	for _, s := range fset.Args() {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			err = fmt.Errorf("%w: %q", bytesize.ErrInvalidValue, s)
			log.Error("format failed", slog.String("input", s), slog.Any("err", err))
			ret = lib.NewErrorCode(err, errors.RetParseError)
			continue
		}
		fmt.Fprintln(stdout, f.Format(n))
	}
	return ret
}

// runDu prints usage of every PATH, and fails when any exceeds the quota
func runDu(log *slog.Logger, args []string, stdout io.Writer) error {
	var flavor string
	var verbose bool
	var quota bytesize.Binary
	fset := flagSet("du", &flavor, &verbose)
	fset.Var(&quota, "quota", "fail when usage of any path exceeds quota, e.g. 10GiB")
	f, err := parseFlags(fset, args, &flavor, &verbose)
	if err != nil {
		return err
	}
	paths := fset.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	defer w.Flush()

	walk := disk.NewFilepathWalk(afero.NewOsFs())
	var ret error
	for _, path := range paths {
		log := log.With(slog.String("path", path))
		abs, err := filepath.Abs(path)
		if err == nil {
			path = abs
		}
		usage, err := walk.Measure(path)
		if err != nil {
			log.Error("walk failed", slog.Any("err", err))
			ret = lib.NewErrorCode(err, errors.RetWalkError)
			continue
		}
		fmt.Fprintf(w, "%v\t%v files\t%v dirs\t%v\t\n", f.Format(usage.Size.Bytes()), humanize.Comma(usage.Files), humanize.Comma(usage.Dirs), path)
		if quota != 0 && usage.Size > quota {
			log.Warn("quota exceeded", slog.String("size", f.Format(usage.Size.Bytes())), slog.String("quota", f.Format(quota.Bytes())))
			if ret == nil {
				ret = lib.NewErrorCode(lib.Error("quota exceeded"), errors.RetQuotaExceeded)
			}
		}
	}
	return ret
}

// runServe runs the usage service until ctrl-c
func runServe(log *slog.Logger, args []string, stdout io.Writer) error {
	var flavor string
	var verbose bool
	var quota bytesize.Binary
	fset := flagSet("serve", &flavor, &verbose)
	fset.StringVar(&config.Listen, "listen", config.Listen, "web server listen address")
	fset.StringVar(&config.DatabaseSource, "db", config.DatabaseSource, "sqlite database file (in-memory when empty)")
	fset.StringVar(&config.ConfigFileName, "config", config.ConfigFileName, "config file name")
	fset.IntVar(&config.Keep, "keep", config.Keep, "number of snapshots kept per root")
	fset.DurationVar(&config.Settle, "settle", config.Settle, "quiet period before a changed root is measured")
	fset.Var(&quota, "quota", "default quota of roots, e.g. 10GiB")
	fset.Usage = func() {
		fmt.Fprintf(fset.Output(), "usage: bytesize serve [flags]\n")
		fset.PrintDefaults()
		fmt.Fprintf(fset.Output(), "\nenvironment:\n")
		config.Usage(fset.Output())
	}
	f, err := parseFlags(fset, args, &flavor, &verbose)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(log, afero.NewOsFs(), nil)
	if err != nil {
		log.Error("unable to load config!!!", slog.Any("err", err))
		return lib.NewErrorCode(err, errors.RetLoadConfigError)
	}
	// Explicit flags have the last word
	fset.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "listen":
			cfg.Listen = config.Listen
		case "db":
			cfg.Database = config.DatabaseSource
		case "keep":
			cfg.Keep = config.Keep
		case "settle":
			cfg.Settle = config.Settle
		case "flavor":
			cfg.Flavor = f
		case "quota":
			cfg.Quota = quota
		}
	})
	for _, root := range cfg.Roots {
		if root.Quota == 0 {
			root.Quota = cfg.Quota
		}
	}
	if cfg.Keep < 1 {
		return lib.NewErrorCode(fmt.Errorf("%w: keep %v", config.ErrInvalidConfig, cfg.Keep), errors.RetLoadConfigError)
	}

	log.Info("starting", slog.String("listen", cfg.Listen), slog.Int("roots", len(cfg.Roots)))
	fmt.Fprintf(stdout, "serving %v roots at %v\n", len(cfg.Roots), cfg.Listen)
	return app.App(log, cfg)
}
