// SPDX-License-Identifier: MIT

package server

import (
	"github.com/katalvlaran/degrees/bidir"
	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/engine"
	"github.com/katalvlaran/degrees/present"
)

// HealthResponse is returned by GET /v1/health.
type HealthResponse struct {
	Status string `json:"status"`
	People int    `json:"people"`
	Movies int    `json:"movies"`
	Stars  int    `json:"stars"`
}

// PathQuery is bound from the query string of GET /v1/path.
// Source and target may be person ids or unambiguous names.
type PathQuery struct {
	Source   string `form:"source" binding:"required"`
	Target   string `form:"target" binding:"required"`
	Strategy string `form:"strategy"`
}

// PersonRef names one endpoint.
type PersonRef struct {
	ID   core.PersonID `json:"id"`
	Name string        `json:"name"`
}

// PathResponse describes one search.
type PathResponse struct {
	RunID    string          `json:"run_id,omitempty"`
	Strategy engine.Strategy `json:"strategy"`
	Source   PersonRef       `json:"source"`
	Target   PersonRef       `json:"target"`
	Found    bool            `json:"found"`
	Degrees  int             `json:"degrees"`
	Hops     []present.Hop   `json:"hops"`
	Stats    bidir.Stats     `json:"stats"`
	Error    string          `json:"error,omitempty"`
}

// BatchRequest is the body of POST /v1/paths. Queries use person ids.
type BatchRequest struct {
	Queries  []engine.Query `json:"queries" binding:"required,min=1,max=1000,dive"`
	Strategy string         `json:"strategy"`
}

// BatchResponse holds results in request order.
type BatchResponse struct {
	Results []PathResponse `json:"results"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
