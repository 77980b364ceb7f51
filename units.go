package bytesize

import "strings"

// Common units of data.
const (
	B uint64 = 1

	KB = 1000 * B
	MB = 1000 * KB
	GB = 1000 * MB
	TB = 1000 * GB
	PB = 1000 * TB
	EB = 1000 * PB

	KiB = 1024 * B
	MiB = 1024 * KiB
	GiB = 1024 * MiB
	TiB = 1024 * GiB
	PiB = 1024 * TiB
	EiB = 1024 * PiB
)

// units maps lower-cased suffixes of both flavors to their multiplier.
var units = map[string]uint64{
	"b": B,

	"k": KB, "kb": KB,
	"m": MB, "mb": MB,
	"g": GB, "gb": GB,
	"t": TB, "tb": TB,
	"p": PB, "pb": PB,
	"e": EB, "eb": EB,

	"ki": KiB, "kib": KiB,
	"mi": MiB, "mib": MiB,
	"gi": GiB, "gib": GiB,
	"ti": TiB, "tib": TiB,
	"pi": PiB, "pib": PiB,
	"ei": EiB, "eib": EiB,
}

// Unit returns the multiplier of suffix, matched case-insensitively.
func Unit(suffix string) (uint64, bool) {
	unit, ok := units[strings.ToLower(suffix)]
	return unit, ok
}
