// Package bytesize provides byte count types which render and parse
// human readable sizes such as "1.5GiB", "999MB" or "0B".
//
// The stored quantity is always a plain uint64 byte count. The flavor of a
// size only selects which magnitude prefixes it is displayed with:
// Decimal uses powers of 1000 (kB, MB, ... EB) and Binary uses powers of
// 1024 (KiB, MiB, ... EiB). Both flavors accept each other's suffixes when
// parsing, so a Decimal parses "5.5 GiB" and a Binary parses "114.514 KB".
package bytesize

import (
	"math"
	"math/big"

	"github.com/dustin/go-humanize"
)

// Flavor is the prefix policy of a Size.
type Flavor interface {
	// Base is the multiplier between two adjacent magnitude steps.
	Base() uint64
	// Prefixes holds one prefix letter per magnitude step, starting at base^1.
	Prefixes() string
	// Suffix follows the prefix letter.
	Suffix() string
}

// SI is the decimal flavor: kB, MB, GB, TB, PB, EB.
type SI struct{}

func (SI) Base() uint64     { return KB }
func (SI) Prefixes() string { return "kMGTPE" }
func (SI) Suffix() string   { return "B" }

// IEC is the binary flavor: KiB, MiB, GiB, TiB, PiB, EiB.
type IEC struct{}

func (IEC) Base() uint64     { return KiB }
func (IEC) Prefixes() string { return "KMGTPE" }
func (IEC) Suffix() string   { return "iB" }

// A Size is a count of bytes displayed in flavor F.
type Size[F Flavor] uint64

// Decimal is a byte count displayed with 1000-based prefixes.
type Decimal = Size[SI]

// Binary is a byte count displayed with 1024-based prefixes.
type Binary = Size[IEC]

// MinCount and MaxCount bound the representable byte counts.
const (
	MinCount uint64 = 0
	MaxCount uint64 = math.MaxUint64
)

const (
	MinDecimal = Decimal(MinCount)
	MaxDecimal = Decimal(MaxCount)
	MinBinary  = Binary(MinCount)
	MaxBinary  = Binary(MaxCount)
)

// Bytes returns the raw byte count.
func (s Size[F]) Bytes() uint64 {
	return uint64(s)
}

// String returns the compact display form, e.g. "18.7MB" or "1.2KiB".
func (s Size[F]) String() string {
	var f F
	return format(uint64(s), f)
}

// Exact returns the byte count with thousands separators, e.g. "5,905,580,032B".
func (s Size[F]) Exact() string {
	if uint64(s) <= math.MaxInt64 {
		return humanize.Comma(int64(s)) + "B"
	}
	return humanize.BigComma(new(big.Int).SetUint64(uint64(s))) + "B"
}

// Decimal reinterprets s as a Decimal. The byte count is not rescaled.
func (s Size[F]) Decimal() Decimal {
	return Decimal(uint64(s))
}

// Binary reinterprets s as a Binary. The byte count is not rescaled.
func (s Size[F]) Binary() Binary {
	return Binary(uint64(s))
}

// Add returns s+o. It wraps on overflow like any uint64.
func (s Size[F]) Add(o Size[F]) Size[F] {
	return s + o
}

// Sub returns s-o. It wraps on underflow like any uint64.
func (s Size[F]) Sub(o Size[F]) Size[F] {
	return s - o
}

// Mul returns s*n. It wraps on overflow like any uint64.
func (s Size[F]) Mul(n uint64) Size[F] {
	return s * Size[F](n)
}

// Bytes returns n bytes in flavor F.
func Bytes[F Flavor](n uint64) Size[F] {
	return Size[F](n)
}

// Unit constructors.
// The product n*unit must fit into uint64, it is not checked.

func Kilobytes(n uint64) Decimal { return Decimal(n * KB) }
func Megabytes(n uint64) Decimal { return Decimal(n * MB) }
func Gigabytes(n uint64) Decimal { return Decimal(n * GB) }
func Terabytes(n uint64) Decimal { return Decimal(n * TB) }
func Petabytes(n uint64) Decimal { return Decimal(n * PB) }
func Exabytes(n uint64) Decimal  { return Decimal(n * EB) }

func Kibibytes(n uint64) Binary { return Binary(n * KiB) }
func Mebibytes(n uint64) Binary { return Binary(n * MiB) }
func Gibibytes(n uint64) Binary { return Binary(n * GiB) }
func Tebibytes(n uint64) Binary { return Binary(n * TiB) }
func Pebibytes(n uint64) Binary { return Binary(n * PiB) }
func Exbibytes(n uint64) Binary { return Binary(n * EiB) }
