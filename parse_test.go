package bytesize

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIntDecimal(t *testing.T) {
	testCases := []struct {
		str string
		val Decimal
	}{
		{"0", 0},
		{"999", 999},
		{"999B", 999},
		{"999b", 999},
		{"999k", Kilobytes(999)},
		{"999kB", Kilobytes(999)},
		{"999KB", Kilobytes(999)},
		{"999MB", Megabytes(999)},
		{"999GB", Gigabytes(999)},
		{"999TB", Terabytes(999)},
		{"999PB", Petabytes(999)},
		{"18EB", Exabytes(18)},
		{"18 EB", Exabytes(18)},
		{"18e", Exabytes(18)},
	}
	for _, tC := range testCases {
		t.Run(tC.str, func(t *testing.T) {
			assert := require.New(t)
			v, err := ParseDecimal(tC.str)
			assert.NoError(err)
			assert.Equal(tC.val, v)
		})
	}
}

func TestParseIntBinary(t *testing.T) {
	testCases := []struct {
		str string
		val Binary
	}{
		{"1023", 1023},
		{"1023B", 1023},
		{"1023KiB", Kibibytes(1023)},
		{"1023Ki", Kibibytes(1023)},
		{"1023kib", Kibibytes(1023)},
		{"1023MiB", Mebibytes(1023)},
		{"1023GiB", Gibibytes(1023)},
		{"1023TiB", Tebibytes(1023)},
		{"1023PiB", Pebibytes(1023)},
		{"15EiB", Exbibytes(15)},
	}
	for _, tC := range testCases {
		t.Run(tC.str, func(t *testing.T) {
			assert := require.New(t)
			v, err := ParseBinary(tC.str)
			assert.NoError(err)
			assert.Equal(tC.val, v)
		})
	}
}

func TestParseFloat(t *testing.T) {
	assert := require.New(t)
	// runtime float math, the same the parser does
	f1, f2 := 114.514, 0.1919810

	v, err := ParseDecimal("114.514KB")
	assert.NoError(err)
	assert.Equal(Decimal(uint64(f1*float64(KB))), v)

	v, err = ParseDecimal("0.1919810GB")
	assert.NoError(err)
	assert.Equal(Decimal(uint64(f2*float64(GB))), v)

	w, err := ParseBinary("114.514KiB")
	assert.NoError(err)
	assert.Equal(Binary(uint64(f1*float64(KiB))), w)

	w, err = ParseBinary("0.1919810MiB")
	assert.NoError(err)
	assert.Equal(Binary(uint64(f2*float64(MiB))), w)
}

func TestParseMax(t *testing.T) {
	assert := require.New(t)

	v, err := ParseDecimal("18.4EB")
	assert.NoError(err)
	assert.Less(v.Bytes(), MaxCount)

	w, err := ParseBinary("15.9EiB")
	assert.NoError(err)
	assert.Less(w.Bytes(), MaxCount)

	// oversized results saturate
	for _, s := range []string{"18.5EB", "114514.0EB", "16.0EiB", "114514.0EiB", "19EB", "17EiB", "18446744073709551615KiB"} {
		v, err := ParseDecimal(s)
		assert.NoError(err, s)
		assert.Equal(MaxCount, v.Bytes(), s)

		w, err := ParseBinary(s)
		assert.NoError(err, s)
		assert.Equal(MaxCount, w.Bytes(), s)
	}

	// no unit, largest literal
	v, err = ParseDecimal("18446744073709551615")
	assert.NoError(err)
	assert.Equal(MaxCount, v.Bytes())
}

func TestParseMin(t *testing.T) {
	assert := require.New(t)
	for _, s := range []string{"0B", "0.9B", "0.0B", "0.999999b"} {
		v, err := ParseDecimal(s)
		assert.NoError(err, s)
		assert.Equal(Decimal(0), v, s)

		w, err := ParseBinary(s)
		assert.NoError(err, s)
		assert.Equal(Binary(0), w, s)
	}
}

func TestParseWithMidSpaces(t *testing.T) {
	assert := require.New(t)

	v, err := ParseDecimal("114.514 kB")
	assert.NoError(err)
	assert.Equal(Decimal(114514), v)

	w, err := ParseBinary("114.514    KiB")
	assert.NoError(err)
	assert.Equal(Binary(117262), w)
}

func TestCrossParse(t *testing.T) {
	assert := require.New(t)

	w, err := ParseBinary("114.514 KB")
	assert.NoError(err)
	assert.Equal(Binary(114514), w)

	v, err := ParseDecimal("5.5 GiB")
	assert.NoError(err)
	assert.Equal(Decimal(5632*MiB), v)
}

func TestParseError(t *testing.T) {
	testCases := []struct {
		str string
		err error
	}{
		{"", ErrEmpty},
		{".123GB", ErrInvalidNumber},
		{"-9MiB", ErrInvalidNumber},
		{"+9MiB", ErrInvalidNumber},
		{"11. TiB", ErrInvalidNumber},
		{"114.514", ErrInvalidNumber},
		{"inf B", ErrInvalidNumber},
		{"kB", ErrInvalidNumber},
		{" 1kB", ErrInvalidNumber},
		{"18446744073709551616", ErrInvalidNumber},
		{"99999999999999999999999kB", ErrInvalidNumber},
		{"114.514 ", ErrUnresolvedUnit},
		{"114.514\tKB", ErrUnresolvedUnit},
		{"2.5E10 B", ErrUnresolvedUnit},
		{"1kB ", ErrUnresolvedUnit},
		{"1 ", ErrUnresolvedUnit},
		{"1x", ErrUnresolvedUnit},
		{"1kiB5", ErrUnresolvedUnit},
		{"1-kB", ErrUnresolvedUnit},
		{"1.5Zi", ErrUnresolvedUnit},
	}
	for _, tC := range testCases {
		t.Run(tC.str, func(t *testing.T) {
			assert := require.New(t)
			_, err := ParseDecimal(tC.str)
			assert.ErrorIs(err, tC.err)
			_, err = ParseBinary(tC.str)
			assert.ErrorIs(err, tC.err)

			var perr *ParseError
			assert.True(errors.As(err, &perr))
			assert.Equal(tC.str, perr.Input)
		})
	}
}

func TestParseErrorKindsAreExclusive(t *testing.T) {
	assert := require.New(t)
	_, err := ParseDecimal("")
	assert.NotErrorIs(err, ErrInvalidNumber)
	assert.NotErrorIs(err, ErrUnresolvedUnit)
	_, err = ParseDecimal("1x")
	assert.NotErrorIs(err, ErrEmpty)
	assert.NotErrorIs(err, ErrInvalidNumber)
}

func TestParseUnitTable(t *testing.T) {
	assert := require.New(t)
	multipliers := map[string]uint64{
		"b": B,
		"k": KB, "m": MB, "g": GB, "t": TB, "p": PB, "e": EB,
		"ki": KiB, "mi": MiB, "gi": GiB, "ti": TiB, "pi": PiB, "ei": EiB,
	}
	for n := uint64(0); n < 16; n += 3 {
		for unit, mul := range multipliers {
			suffixes := []string{unit}
			if unit != "b" {
				suffixes = append(suffixes, unit+"b", unit+"B")
			}
			for _, suffix := range suffixes {
				s := fmt.Sprintf("%d%s", n, suffix)
				v, err := ParseDecimal(s)
				assert.NoError(err, s)
				assert.Equal(n*mul, v.Bytes(), s)
				v, err = ParseDecimal(strings.ToUpper(s))
				assert.NoError(err, s)
				assert.Equal(n*mul, v.Bytes(), s)
			}
		}
	}
}

func TestMustParse(t *testing.T) {
	assert := require.New(t)
	assert.Equal(Gibibytes(3), MustParse[IEC]("3GiB"))
	assert.Panics(func() { MustParse[SI]("3 apples") })
	assert.Equal(Kilobytes(18660), MustParseDecimal("18.66 MB"))
	assert.Equal(MaxBinary, MustParseBinary("19EB"))
	assert.Panics(func() { MustParseBinary("") })
}
