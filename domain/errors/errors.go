package errors

import (
	"errors"

	"github.com/cloudcopper/bytesize/lib"
)

const ErrMustBeAbsPath = lib.Error("must be absolute path")
const ErrInconsistentSnapshot = lib.Error("snapshot has size but no files")
const ErrUnknownRoot = lib.Error("unknown root")

var Is = errors.Is
