package bytesize

import (
	"fmt"

	"github.com/cloudcopper/bytesize/lib"
)

const ErrEmpty = lib.Error("cannot parse bytesize from empty string")
const ErrInvalidNumber = lib.Error("invalid number found in string")
const ErrUnresolvedUnit = lib.Error("cannot recognize byte unit in string")

// ErrInvalidValue reports a decoded value which is not a byte count,
// e.g. a negative number or a number wider than 64 bits.
const ErrInvalidValue = lib.Error("invalid value")

// ParseError records a failed parse of Input.
// Err is one of ErrEmpty, ErrInvalidNumber or ErrUnresolvedUnit.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bytesize: %v: %q", e.Err, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
