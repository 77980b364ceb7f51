package bytesize

import (
	"errors"
	"math"
	"math/bits"
	"strconv"

	"github.com/cloudcopper/bytesize/lib"
)

// Parse parses s into a Size of flavor F.
//
// The accepted form is a non-negative mantissa made of ASCII digits with an
// optional fraction ("12", "1.5"), optionally followed by spaces and a unit
// suffix of either flavor ("B", "k", "kB", "Ki", "KiB", ... "EiB"), matched
// case-insensitively. A bare integer is a count of bytes. A fraction requires
// a unit. Fractional results are truncated toward zero ("0.9B" is 0) and
// results beyond the uint64 range saturate to MaxCount.
func Parse[F Flavor](s string) (Size[F], error) {
	n, err := parseByteCount(s)
	if err != nil {
		return 0, err
	}
	return Size[F](n), nil
}

// ParseDecimal parses s into a Decimal.
func ParseDecimal(s string) (Decimal, error) {
	return Parse[SI](s)
}

// ParseBinary parses s into a Binary.
func ParseBinary(s string) (Binary, error) {
	return Parse[IEC](s)
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse[F Flavor](s string) Size[F] {
	size, err := Parse[F](s)
	if err != nil {
		panic(err)
	}
	return size
}

// MustParseDecimal is like ParseDecimal but panics if s cannot be parsed.
func MustParseDecimal(s string) Decimal { return MustParse[SI](s) }

// MustParseBinary is like ParseBinary but panics if s cannot be parsed.
func MustParseBinary(s string) Binary { return MustParse[IEC](s) }

func parseByteCount(s string) (uint64, error) {
	fail := func(err error) (uint64, error) {
		return 0, &ParseError{Input: s, Err: err}
	}

	if s == "" {
		return fail(ErrEmpty)
	}

	integer := lib.LeadingDigits(s)
	if len(integer) == len(s) {
		// no unit at all, overflow here is a malformed number
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fail(ErrInvalidNumber)
		}
		return n, nil
	}
	if integer == "" {
		return fail(ErrInvalidNumber)
	}

	rest := s[len(integer):]
	if rest[0] == '.' {
		fraction := lib.LeadingDigits(rest[1:])
		if fraction == "" || len(fraction) == len(rest)-1 {
			return fail(ErrInvalidNumber)
		}
		mantissa := s[:len(integer)+1+len(fraction)]
		f, err := strconv.ParseFloat(mantissa, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return fail(ErrInvalidNumber)
		}
		unit, ok := Unit(lib.TrimLeadingSpaces(s[len(mantissa):]))
		if !ok {
			return fail(ErrUnresolvedUnit)
		}
		return saturate(f * float64(unit)), nil
	}

	n, err := strconv.ParseUint(integer, 10, 64)
	if err != nil {
		return fail(ErrInvalidNumber)
	}
	unit, ok := Unit(lib.TrimLeadingSpaces(rest))
	if !ok {
		return fail(ErrUnresolvedUnit)
	}
	hi, lo := bits.Mul64(n, unit)
	if hi != 0 {
		return MaxCount, nil
	}
	return lo, nil
}

// saturate truncates f toward zero, clamping to MaxCount.
func saturate(f float64) uint64 {
	// float64(math.MaxUint64) is 2^64
	if f >= float64(math.MaxUint64) {
		return MaxCount
	}
	return uint64(f)
}
