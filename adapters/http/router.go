package http

import (
	"os"
	"time"

	"github.com/cloudcopper/bytesize/adapters/http/controllers"
	"github.com/cloudcopper/bytesize/domain"
	"github.com/cloudcopper/bytesize/infra"
	"github.com/cloudcopper/bytesize/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	slogchi "github.com/samber/slog-chi"
)

func NewRouter(log ports.Logger) ports.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(slogchi.New(log))
	r.Use(middleware.Recoverer)
	if os.Getenv("GO_ENV") != "development" {
		r.Use(middleware.Timeout(10 * time.Second))
	}

	return r
}

// AddRoutes registers the size and usage endpoints on router
func AddRoutes(log ports.Logger, router ports.Router, render infra.Render, repos domain.Repositories) {
	sizeController := controllers.NewSizeController(log, render)
	usageController := controllers.NewUsageController(log, render, repos)
	versionController := controllers.NewVersionController(log, render)

	router.Get("/parse", sizeController.Parse)
	router.Get("/format", sizeController.Format)
	router.Get("/usage", usageController.Index)
	router.Get("/usage/history", usageController.History)
	router.Get("/version", versionController.Index)
}
