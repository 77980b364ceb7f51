package random

import (
	"time"

	"github.com/cloudcopper/bytesize"
	"golang.org/x/exp/rand"
)

func init() {
	rand.Seed(uint64(time.Now().UnixNano()))
}

// Value returns random value in range of [a[0],a[1]]
func Value(a []int) int {
	m, n := a[0], a[1]
	return rand.Intn(n-m+1) + m
}

// Element returns random element of a
func Element[T any](a []T) T {
	return a[Value([]int{0, len(a) - 1})]
}

// Size returns random size in range of [0,max].
// Small sizes are as likely as big ones, so all prefixes get covered.
func Size(max bytesize.Binary) bytesize.Binary {
	if max == 0 {
		return 0
	}
	n := rand.Uint64() >> rand.Intn(64)
	if max != bytesize.Binary(bytesize.MaxCount) {
		n %= max.Bytes() + 1
	}
	return bytesize.Binary(n)
}
