package vo

import (
	"fmt"

	"github.com/cloudcopper/bytesize"
	"github.com/cloudcopper/bytesize/lib"
)

// Flavor selects the prefixes sizes are displayed with.
type Flavor string

const (
	FlavorDecimal Flavor = "decimal"
	FlavorBinary  Flavor = "binary"
)

const ErrUnknownFlavor = lib.Error("unknown flavor")

func ParseFlavor(s string) (Flavor, error) {
	switch f := Flavor(s); f {
	case FlavorDecimal, FlavorBinary:
		return f, nil
	case "":
		return FlavorBinary, nil
	case "si":
		return FlavorDecimal, nil
	case "iec":
		return FlavorBinary, nil
	}
	return "", ErrUnknownFlavor
}

// UnmarshalText accepts every spelling ParseFlavor does,
// so config files and environment share the aliases of the command line.
func (f *Flavor) UnmarshalText(text []byte) error {
	v, err := ParseFlavor(string(text))
	if err != nil {
		return fmt.Errorf("%w: %q", err, text)
	}
	*f = v
	return nil
}

func (f Flavor) IsValid() bool {
	return f == FlavorDecimal || f == FlavorBinary
}

// Format renders n bytes in flavor f.
func (f Flavor) Format(n uint64) string {
	if f == FlavorDecimal {
		return bytesize.Decimal(n).String()
	}
	return bytesize.Binary(n).String()
}

// Parse parses s with the parser of flavor f.
// Both flavors accept all suffixes, so only the error values may differ.
func (f Flavor) Parse(s string) (uint64, error) {
	if f == FlavorDecimal {
		v, err := bytesize.ParseDecimal(s)
		return v.Bytes(), err
	}
	v, err := bytesize.ParseBinary(s)
	return v.Bytes(), err
}
