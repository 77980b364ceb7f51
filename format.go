package bytesize

import "strconv"

// format renders n with the prefixes of f.
// Counts below the first magnitude step render as "{n}B", the rest with one
// fractional digit, the prefix letter and the flavor suffix.
func format(n uint64, f Flavor) string {
	base := f.Base()
	if n < base {
		return strconv.FormatUint(n, 10) + "B"
	}

	prefixes := f.Prefixes()
	exp, div := 1, base
	for exp < len(prefixes) && n/div >= base {
		exp, div = exp+1, div*base
	}

	number := strconv.FormatFloat(float64(n)/float64(div), 'f', 1, 64)
	// 999999 would round to "1000.0k", move to the next prefix instead
	if exp < len(prefixes) && number == strconv.FormatUint(base, 10)+".0" {
		exp, div = exp+1, div*base
		number = strconv.FormatFloat(float64(n)/float64(div), 'f', 1, 64)
	}

	return number + prefixes[exp-1:exp] + f.Suffix()
}
