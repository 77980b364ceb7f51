package infra

import (
	"os"

	"github.com/unrolled/render"
)

type Render = *render.Render

// NewRender returns renderer of JSON responses
func NewRender() Render {
	opts := render.Options{
		IndentJSON:    true,
		UnEscapeHTML:  true,
		IsDevelopment: os.Getenv("GO_ENV") == "development",
	}
	r := render.New(opts)
	return r
}
