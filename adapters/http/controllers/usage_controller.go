package controllers

import (
	"log/slog"
	"net/http"

	"github.com/cloudcopper/bytesize/adapters/http/viewmodels"
	"github.com/cloudcopper/bytesize/domain"
	"github.com/cloudcopper/bytesize/domain/models"
	"github.com/cloudcopper/bytesize/infra"
	"github.com/cloudcopper/bytesize/ports"
)

type UsageController struct {
	log    ports.Logger
	render infra.Render
	repos  domain.Repositories
}

func NewUsageController(log ports.Logger, render infra.Render, repos domain.Repositories) *UsageController {
	log = log.With(slog.String("entity", "UsageController"))
	c := &UsageController{
		log:    log,
		render: render,
		repos:  repos,
	}
	return c
}

// Index handles GET /usage
func (c *UsageController) Index(w http.ResponseWriter, r *http.Request) {
	roots, err := c.repos.Root().FindAll()
	if err != nil {
		c.renderServerError(w, "", err)
		return
	}

	data := []*viewmodels.Usage{}
	for _, root := range roots {
		latest, err := c.repos.Snapshot().FindLatest(root.RootID)
		if err == ports.ErrRecordNotFound {
			// not measured yet
			latest, err = nil, nil
		}
		if err != nil {
			c.renderServerError(w, root.RootID, err)
			return
		}
		data = append(data, viewmodels.NewUsage(root, latest))
	}

	c.render.JSON(w, http.StatusOK, data)
}

// History handles GET /usage/history?root=ID&page=N
func (c *UsageController) History(w http.ResponseWriter, r *http.Request) {
	rootID := r.URL.Query().Get("root")

	root, err := c.repos.Root().FindByID(rootID)
	if err == ports.ErrRecordNotFound { // 404
		c.renderRootNotFound(w, rootID, err)
		return
	}
	if err != nil { // 500
		c.renderServerError(w, rootID, err)
		return
	}

	snapshots, err := c.repos.Snapshot().FindByRootID(rootID, -1)
	if err != nil {
		c.renderServerError(w, rootID, err)
		return
	}

	perPage := 20
	snapshots, page := helperPagination(r, snapshots, perPage)

	data := struct {
		Root      *viewmodels.Usage      `json:"root"`
		Page      int                    `json:"page"`
		Snapshots []*viewmodels.Snapshot `json:"snapshots"`
	}{
		Root:      viewmodels.NewUsage(root, nil),
		Page:      page,
		Snapshots: viewmodels.NewSnapshots(root.Flavor, snapshots),
	}
	c.render.JSON(w, http.StatusOK, data)
}

func (c *UsageController) renderRootNotFound(w http.ResponseWriter, rootID models.RootID, err error) {
	type Data struct {
		RootID models.RootID `json:"rootID"`
		Error  string        `json:"error"`
	}
	c.render.JSON(w, http.StatusNotFound, Data{rootID, err.Error()})
}

func (c *UsageController) renderServerError(w http.ResponseWriter, rootID models.RootID, err error) {
	type Data struct {
		RootID models.RootID `json:"rootID,omitempty"`
		Error  string        `json:"error"`
	}
	c.log.Error("request failed", slog.String("rootID", rootID), slog.Any("err", err))
	c.render.JSON(w, http.StatusInternalServerError, Data{rootID, err.Error()})
}
