package controllers

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/cloudcopper/bytesize/infra"
	"github.com/cloudcopper/bytesize/ports"
)

type VersionController struct {
	log    ports.Logger
	render infra.Render
}

func NewVersionController(log ports.Logger, render infra.Render) *VersionController {
	log = log.With(slog.String("entity", "VersionController"))
	c := &VersionController{
		log:    log,
		render: render,
	}
	return c
}

// Index handles GET /version
func (c *VersionController) Index(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Path      string `json:"path"`
		Version   string `json:"version"`
		GoVersion string `json:"goVersion"`
	}{}
	if info, ok := debug.ReadBuildInfo(); ok {
		data.Path = info.Main.Path
		data.Version = info.Main.Version
		data.GoVersion = info.GoVersion
	}
	c.render.JSON(w, http.StatusOK, data)
}
