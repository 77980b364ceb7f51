package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cloudcopper/bytesize/lib"
)

const (
	retNoErrorCode      = 0
	retGenericErrorCode = 1
)

const ErrUnknownCommand = lib.Error("unknown command")

type command struct {
	name  string
	usage string
	run   func(log *slog.Logger, args []string, stdout io.Writer) error
}

var commands = []command{
	{"parse", "parse [-flavor decimal|binary] TEXT...", runParse},
	{"format", "format [-flavor decimal|binary] COUNT...", runFormat},
	{"du", "du [-flavor decimal|binary] [-quota SIZE] PATH...", runDu},
	{"serve", "serve [-listen ADDR] [-db FILE] [-config FILE] [-flavor decimal|binary] [-quota SIZE]", runServe},
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "usage:\n")
	for _, c := range commands {
		fmt.Fprintf(w, "  bytesize %v\n", c.usage)
	}
}

func run(log *slog.Logger, args []string, stdout io.Writer) error {
	if len(args) < 1 {
		usage(os.Stderr)
		return ErrUnknownCommand
	}
	for _, c := range commands {
		if c.name == args[0] {
			return c.run(log.With(slog.String("command", c.name)), args[1:], stdout)
		}
	}
	usage(os.Stderr)
	return fmt.Errorf("%w: %v", ErrUnknownCommand, args[0])
}

func main() {
	log := slog.Default()
	err := run(log, os.Args[1:], os.Stdout)

	code := retNoErrorCode
	if err != nil {
		code = retGenericErrorCode
		var i lib.ErrorCode
		if errors.As(err, &i) {
			code = i.Code()
		}
		log.Debug("exit", slog.Int("code", code), slog.Any("err", err))
	}

	os.Exit(code)
}
