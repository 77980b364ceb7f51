package lib

import (
	"fmt"
	"log/slog"
	"os"
)

// The params may be:
// - error
// - bool, string
func Assert(params ...interface{}) {
	cond := params[0]
	if cond == nil {
		return
	}

	// error
	if e, ok := cond.(error); ok {
		fatal(e.Error())
		return
	}

	// bool, string
	if b, ok := cond.(bool); ok {
		if !b {
			msg := "assertion failed"
			if len(params) > 1 {
				msg = fmt.Sprint(params[1:]...)
			}
			fatal(msg)
		}
		return
	}

	panic(cond)
}

func fatal(msg string) {
	slog.Error("assert", slog.String("msg", msg))
	os.Exit(1)
}
