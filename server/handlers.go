// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/engine"
	"github.com/katalvlaran/degrees/logging"
	"github.com/katalvlaran/degrees/present"
	"github.com/katalvlaran/degrees/resolver"
)

// Handlers serves the HTTP API on top of an engine.
type Handlers struct {
	eng         *engine.Engine
	names       *resolver.Resolver
	logger      *slog.Logger
	parallelism int
}

// NewHandlers returns handlers for eng. Batch requests run at most
// parallelism searches at once.
func NewHandlers(eng *engine.Engine, parallelism int, logger *slog.Logger) *Handlers {
	return &Handlers{
		eng:         eng,
		names:       resolver.New(eng.Dataset(), nil),
		logger:      logging.OrDefault(logger),
		parallelism: parallelism,
	}
}

// RegisterRoutes mounts the API on rg.
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/health", h.HandleHealth)
	rg.GET("/path", h.HandlePath)
	rg.POST("/paths", h.HandleBatch)
}

// HandleHealth reports liveness and dataset size.
func (h *Handlers) HandleHealth(c *gin.Context) {
	ds := h.eng.Dataset()
	c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
		People: ds.NumPeople(),
		Movies: ds.NumMovies(),
		Stars:  ds.NumStars(),
	})
}

// HandlePath answers GET /v1/path?source=&target=&strategy=.
func (h *Handlers) HandlePath(c *gin.Context) {
	var q PathQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}
	eng, err := h.eng.Using(engine.Strategy(q.Strategy))
	if err != nil {
		h.fail(c, err)
		return
	}
	source, err := h.lookup(q.Source)
	if err != nil {
		h.fail(c, err)
		return
	}
	target, err := h.lookup(q.Target)
	if err != nil {
		h.fail(c, err)
		return
	}

	out, err := eng.Search(c.Request.Context(), source, target)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.describe(out))
}

// HandleBatch answers POST /v1/paths.
func (h *Handlers) HandleBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "bad_request"})
		return
	}
	eng, err := h.eng.Using(engine.Strategy(req.Strategy))
	if err != nil {
		h.fail(c, err)
		return
	}

	outs, err := eng.Batch(c.Request.Context(), req.Queries, h.parallelism)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := BatchResponse{Results: make([]PathResponse, len(outs))}
	for i, out := range outs {
		resp.Results[i] = h.describe(out)
	}
	c.JSON(http.StatusOK, resp)
}

// lookup accepts a person id, falling back to a unique name.
func (h *Handlers) lookup(s string) (core.PersonID, error) {
	if id := core.PersonID(s); h.eng.Dataset().HasPerson(id) {
		return id, nil
	}
	return h.names.Resolve(s)
}

func (h *Handlers) describe(out *engine.Outcome) PathResponse {
	ds := h.eng.Dataset()
	return PathResponse{
		RunID:    out.RunID,
		Strategy: out.Strategy,
		Source:   personRef(ds, out.Source),
		Target:   personRef(ds, out.Target),
		Found:    out.Found,
		Degrees:  out.Path.Degrees(),
		Hops:     present.Describe(ds, out.Source, out.Path),
		Stats:    out.Stats,
		Error:    out.Error,
	}
}

func personRef(ds *core.Dataset, id core.PersonID) PersonRef {
	ref := PersonRef{ID: id}
	if p, ok := ds.Person(id); ok {
		ref.Name = p.Name
	}
	return ref
}

// fail maps domain errors onto HTTP statuses.
func (h *Handlers) fail(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "internal"
	switch {
	case errors.Is(err, engine.ErrUnknownStrategy):
		status, code = http.StatusBadRequest, "unknown_strategy"
	case errors.Is(err, resolver.ErrNotResolved):
		status, code = http.StatusBadRequest, "ambiguous_name"
	case errors.Is(err, engine.ErrInvalidEndpoint), errors.Is(err, resolver.ErrUnknownName):
		status, code = http.StatusNotFound, "unknown_person"
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, ErrorResponse{Error: err.Error(), Code: code})
}
