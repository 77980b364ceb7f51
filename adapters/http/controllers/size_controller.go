package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cloudcopper/bytesize"
	"github.com/cloudcopper/bytesize/adapters/http/viewmodels"
	"github.com/cloudcopper/bytesize/domain/vo"
	"github.com/cloudcopper/bytesize/infra"
	"github.com/cloudcopper/bytesize/ports"
)

type SizeController struct {
	log    ports.Logger
	render infra.Render
}

func NewSizeController(log ports.Logger, render infra.Render) *SizeController {
	log = log.With(slog.String("entity", "SizeController"))
	c := &SizeController{
		log:    log,
		render: render,
	}
	return c
}

// Parse handles GET /parse?s=TEXT&flavor=FLAVOR
func (c *SizeController) Parse(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("s")
	flavor, err := vo.ParseFlavor(r.URL.Query().Get("flavor"))
	if err != nil {
		c.renderBadRequest(w, input, err)
		return
	}

	n, err := flavor.Parse(input)
	if err != nil {
		c.log.Debug("parse failed", slog.String("input", input), slog.Any("err", err))
		c.renderBadRequest(w, input, err)
		return
	}

	data := viewmodels.NewSize(flavor, n)
	data.Input = input
	c.render.JSON(w, http.StatusOK, data)
}

// Format handles GET /format?n=COUNT&flavor=FLAVOR
func (c *SizeController) Format(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("n")
	flavor, err := vo.ParseFlavor(r.URL.Query().Get("flavor"))
	if err != nil {
		c.renderBadRequest(w, input, err)
		return
	}

	n, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		c.renderBadRequest(w, input, bytesize.ErrInvalidValue)
		return
	}

	c.render.JSON(w, http.StatusOK, viewmodels.NewSize(flavor, n))
}

func (c *SizeController) renderBadRequest(w http.ResponseWriter, input string, err error) {
	data := viewmodels.Error{
		Input: input,
		Kind:  ErrorKind(err),
		Error: err.Error(),
	}
	c.render.JSON(w, http.StatusBadRequest, data)
}

// ErrorKind classifies err for API clients
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, bytesize.ErrEmpty):
		return "empty"
	case errors.Is(err, bytesize.ErrInvalidNumber):
		return "invalid-number"
	case errors.Is(err, bytesize.ErrUnresolvedUnit):
		return "unresolved-unit"
	case errors.Is(err, bytesize.ErrInvalidValue):
		return "invalid-value"
	case errors.Is(err, vo.ErrUnknownFlavor):
		return "unknown-flavor"
	}
	return "unknown"
}
