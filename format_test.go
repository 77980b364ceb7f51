package bytesize

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestFormatDecimal(t *testing.T) {
	testCases := []struct {
		str string
		val Decimal
	}{
		{"0B", 0},
		{"725B", 725},
		{"999B", 999},
		{"1.0kB", 1000},
		{"310.0kB", Kilobytes(310)},
		{"18.7MB", Kilobytes(18666)},
		{"806.2GB", Megabytes(806233)},
		{"25.3TB", Gigabytes(25270)},
		{"12.7PB", Terabytes(12722)},
		{"18.0EB", Exabytes(18)},
		{"18.4EB", Decimal(MaxCount)},
		{"1.0MB", 999_999},
		{"999.9kB", 999_940},
	}
	for _, tC := range testCases {
		t.Run(tC.str, func(t *testing.T) {
			assert := require.New(t)
			assert.Equal(tC.str, tC.val.String())
		})
	}
}

func TestFormatBinary(t *testing.T) {
	testCases := []struct {
		str string
		val Binary
	}{
		{"0B", 0},
		{"523B", 523},
		{"1023B", 1023},
		{"1.0KiB", 1024},
		{"1.2KiB", 1228},
		{"7.8MiB", Kibibytes(7987)},
		{"91.5GiB", Mebibytes(93696)},
		{"290.8TiB", Gibibytes(297779)},
		{"477.9PiB", Tebibytes(489369)},
		{"15.0EiB", Exbibytes(15)},
		{"16.0EiB", Binary(MaxCount)},
		{"1.0MiB", Binary(MiB - 1)},
	}
	for _, tC := range testCases {
		t.Run(tC.str, func(t *testing.T) {
			assert := require.New(t)
			assert.Equal(tC.str, tC.val.String())
		})
	}
}

func TestFormatBelowFirstStep(t *testing.T) {
	assert := require.New(t)
	for n := uint64(0); n < KB; n++ {
		assert.Equal(fmt.Sprintf("%dB", n), Decimal(n).String())
	}
	for n := uint64(0); n < KiB; n++ {
		assert.Equal(fmt.Sprintf("%dB", n), Binary(n).String())
	}
}

func TestFormatRoundTrip(t *testing.T) {
	assert := require.New(t)

	values := []uint64{0, 1, 999, 1000, 1023, 1024, 1228, 4198, 999_949, 999_999, 1_000_000, MiB - 1, EB, EiB, MaxCount - 1, MaxCount}
	for x := 0; x < 10000; x++ {
		// spread over all magnitudes
		values = append(values, rand.Uint64()>>rand.Intn(64))
	}

	for _, n := range values {
		d := Decimal(n).String()
		v, err := ParseDecimal(d)
		assert.NoError(err, d)
		assert.Equal(d, v.String(), "decimal %d", n)

		b := Binary(n).String()
		w, err := ParseBinary(b)
		assert.NoError(err, b)
		assert.Equal(b, w.String(), "binary %d", n)
	}
}

func TestFormatTolerance(t *testing.T) {
	assert := require.New(t)
	for _, n := range []uint64{1500, 1_234_567, 987_654_321_012, EB + 1} {
		v, err := ParseDecimal(Decimal(n).String())
		assert.NoError(err)
		// one decimal place of the used prefix
		assert.InEpsilon(float64(n), float64(v.Bytes()), 0.05)
	}
	assert.Equal(uint64(math.MaxUint64), MaxCount)
}
