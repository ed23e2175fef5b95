// SPDX-License-Identifier: MIT
package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/config"
	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/engine"
	"github.com/katalvlaran/degrees/logging"
	"github.com/katalvlaran/degrees/server"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.AddPerson("102", "Kevin Bacon", "1958"))
	require.NoError(t, b.AddPerson("158", "Tom Hanks", "1956"))
	require.NoError(t, b.AddPerson("129", "Tom Cruise", "1962"))
	require.NoError(t, b.AddPerson("1697", "Tom Hanks", "1990"))
	require.NoError(t, b.AddPerson("200", "Emma Watson", "1990"))
	require.NoError(t, b.AddMovie("112384", "Apollo 13", "1995"))
	require.NoError(t, b.AddMovie("104257", "A Few Good Men", "1992"))
	require.NoError(t, b.AddStar("102", "112384"))
	require.NoError(t, b.AddStar("158", "112384"))
	require.NoError(t, b.AddStar("158", "104257"))
	require.NoError(t, b.AddStar("129", "104257"))

	eng, err := engine.New(b.Build(), engine.WithLogger(logging.Discard()))
	require.NoError(t, err)

	return server.NewRouter(server.NewHandlers(eng, 2, logging.Discard()))
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestHandleHealth(t *testing.T) {
	w := do(t, setupRouter(t), http.MethodGet, "/v1/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp server.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, server.HealthResponse{Status: "healthy", People: 5, Movies: 2, Stars: 4}, resp)
}

func TestHandlePath(t *testing.T) {
	router := setupRouter(t)

	w := do(t, router, http.MethodGet, "/v1/path?source=102&target=129&strategy=bfs", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp server.PathResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, engine.StrategyBFS, resp.Strategy)
	assert.Equal(t, 2, resp.Degrees)
	assert.Equal(t, "Kevin Bacon", resp.Source.Name)
	require.Len(t, resp.Hops, 2)
	assert.Equal(t, "Apollo 13", resp.Hops[0].Title)
	assert.Equal(t, "Tom Cruise", resp.Hops[1].ToName)
	assert.NotEmpty(t, resp.RunID)
}

func TestHandlePath_ByNameAndNotConnected(t *testing.T) {
	w := do(t, setupRouter(t), http.MethodGet, "/v1/path?source=kevin+bacon&target=Emma+Watson", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp server.PathResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Found)
	assert.Equal(t, core.PersonID("102"), resp.Source.ID)
	assert.Equal(t, core.PersonID("200"), resp.Target.ID)
	assert.Empty(t, resp.Hops)
	assert.Equal(t, engine.StrategyBidirectional, resp.Strategy)
}

func TestHandlePath_Errors(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name   string
		url    string
		status int
		code   string
	}{
		{"MissingTarget", "/v1/path?source=102", http.StatusBadRequest, "bad_request"},
		{"UnknownStrategy", "/v1/path?source=102&target=129&strategy=astar", http.StatusBadRequest, "unknown_strategy"},
		{"UnknownPerson", "/v1/path?source=102&target=nobody", http.StatusNotFound, "unknown_person"},
		{"AmbiguousName", "/v1/path?source=tom+hanks&target=102", http.StatusBadRequest, "ambiguous_name"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, router, http.MethodGet, tc.url, "")
			assert.Equal(t, tc.status, w.Code)

			var resp server.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.code, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandleBatch(t *testing.T) {
	router := setupRouter(t)
	body := `{"strategy":"dfs","queries":[
		{"source":"102","target":"129"},
		{"source":"102","target":"200"},
		{"source":"102","target":"ghost"}
	]}`

	w := do(t, router, http.MethodPost, "/v1/paths", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp server.BatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 3)
	assert.True(t, resp.Results[0].Found)
	assert.Equal(t, engine.StrategyDFS, resp.Results[0].Strategy)
	assert.False(t, resp.Results[1].Found)
	assert.Empty(t, resp.Results[1].Error)
	assert.NotEmpty(t, resp.Results[2].Error)

	w = do(t, router, http.MethodPost, "/v1/paths", `{"queries":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodPost, "/v1/paths", `{"strategy":"astar","queries":[{"source":"102","target":"129"}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupRouter(t)
	do(t, router, http.MethodGet, "/v1/path?source=102&target=129", "")

	w := do(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "degrees_searches_total")
}

func TestNew_UsesConfig(t *testing.T) {
	ds := core.NewBuilder().Build()
	eng, err := engine.New(ds, engine.WithLogger(logging.Discard()))
	require.NoError(t, err)

	cfg := config.Default()
	srv := server.New(cfg.Server, cfg.Batch, eng, logging.Discard())
	gin.SetMode(gin.TestMode)

	w := do(t, srv.Handler(), http.MethodGet, "/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
