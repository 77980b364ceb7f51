package viewmodels

import (
	"github.com/cloudcopper/bytesize"
	"github.com/cloudcopper/bytesize/domain/vo"
)

// Size is a byte count in all its renderings
type Size struct {
	Input  string    `json:"input,omitempty"`
	Flavor vo.Flavor `json:"flavor"`
	Bytes  uint64    `json:"bytes"`
	Text   string    `json:"text"`
	Exact  string    `json:"exact"`
}

func NewSize(flavor vo.Flavor, n uint64) *Size {
	return &Size{
		Flavor: flavor,
		Bytes:  n,
		Text:   flavor.Format(n),
		Exact:  bytesize.Binary(n).Exact(),
	}
}

// Error is the body of a rejected request
type Error struct {
	Input string `json:"input,omitempty"`
	Kind  string `json:"kind"`
	Error string `json:"error"`
}
