package random

import (
	"testing"

	"github.com/cloudcopper/bytesize"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	assert := require.New(t)
	assert.Equal(bytesize.Binary(0), Size(0))
	for x := 0; x < 1000; x++ {
		assert.LessOrEqual(Size(bytesize.Kibibytes(4)), bytesize.Kibibytes(4))
		_ = Size(bytesize.Binary(bytesize.MaxCount))
	}
}

func TestValue(t *testing.T) {
	assert := require.New(t)
	for x := 0; x < 1000; x++ {
		v := Value([]int{3, 5})
		assert.GreaterOrEqual(v, 3)
		assert.LessOrEqual(v, 5)
	}
}
