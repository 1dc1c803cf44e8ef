package httpapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/bimatch/bipartite"
	"github.com/katalvlaran/bimatch/builder"
	"github.com/katalvlaran/bimatch/internal/config"
	"github.com/katalvlaran/bimatch/internal/httpapi"
)

const teams = `{"alice": {"db": 3, "web": 1}, "bob": {"db": 2, "web": 4}}`

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newTestServer(t *testing.T) (*httptest.Server, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	srv := httptest.NewServer(httpapi.NewServer(zap.New(core), config.Default()))
	t.Cleanup(srv.Close)

	return srv, logs
}

func post(t *testing.T, url, contentType, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url, contentType, strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, data
}

func TestMatch_JSON(t *testing.T) {
	srv, logs := newTestServer(t)

	resp, body := post(t, srv.URL+"/api/v1/match", "application/json", teams)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get(httpapi.HeaderRequestID))

	var got struct {
		Assignment map[string]string `json:"assignment"`
		Weight     float64           `json:"weight"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, map[string]string{"alice": "web", "bob": "db"}, got.Assignment)
	assert.Equal(t, 3.0, got.Weight)

	access := logs.FilterMessage("http request").All()
	require.Len(t, access, 1)
	fields := access[0].ContextMap()
	assert.Equal(t, "/api/v1/match", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}

func TestMatch_MaximizeText(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := post(t, srv.URL+"/api/v1/match?objective=max&format=text", "application/json", teams)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice -> db (3)\nbob -> web (4)\ntotal: 7\n", string(body))
}

func TestMatch_YAMLBody(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := post(t, srv.URL+"/api/v1/match?format=text", "application/yaml",
		"alice: {db: 3, web: 1}\nbob: {db: 2, web: 4}\n")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice -> web (1)\nbob -> db (2)\ntotal: 3\n", string(body))
}

func TestMatch_Errors(t *testing.T) {
	srv, _ := newTestServer(t)

	cases := []struct {
		name   string
		query  string
		body   string
		status int
		code   string
	}{
		{"malformed", "", `[1,2]`, http.StatusBadRequest, "bad_request"},
		{"objective", "?objective=sideways", teams, http.StatusBadRequest, "bad_request"},
		{"format", "?format=xml", teams, http.StatusBadRequest, "bad_request"},
		{"unequal", "", `{"a": {"x": 1, "y": 2}}`, http.StatusUnprocessableEntity, "dimension_mismatch"},
		{"odd cycle", "", `{"a": {"b": 1}, "b": {"c": 1}, "c": {"a": 1}}`, http.StatusUnprocessableEntity, "not_bipartite"},
		{"overflow", "", `{"a": {"x": 1e999}}`, http.StatusUnprocessableEntity, "invalid_weight"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := post(t, srv.URL+"/api/v1/match"+tc.query, "application/json", tc.body)
			require.Equal(t, tc.status, resp.StatusCode, string(body))

			var e errorBody
			require.NoError(t, json.Unmarshal(body, &e))
			assert.Equal(t, tc.code, e.Error)
			assert.NotEmpty(t, e.Message)
		})
	}
}

func TestMatch_BodyTooLarge(t *testing.T) {
	cfg := config.Default()
	cfg.MaxBodyBytes = 8
	srv := httptest.NewServer(httpapi.NewServer(nil, cfg))
	defer srv.Close()

	resp, _ := post(t, srv.URL+"/api/v1/match", "application/json", teams)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

// TestMatch_Timeout checks that an expired solve gets exactly one response
// from the handler and nothing else writes a second status.
func TestMatch_Timeout(t *testing.T) {
	in, err := builder.CompleteBipartite(150, builder.WithSeed(3))
	require.NoError(t, err)
	var doc bytes.Buffer
	require.NoError(t, bipartite.EncodeJSON(&doc, in))

	cfg := config.Default()
	cfg.Timeout = time.Nanosecond
	core, logs := observer.New(zap.InfoLevel)
	var serverLog bytes.Buffer
	srv := httptest.NewUnstartedServer(httpapi.NewServer(zap.New(core), cfg))
	srv.Config.ErrorLog = log.New(&serverLog, "", 0)
	srv.Start()

	resp, body := post(t, srv.URL+"/api/v1/match", "application/json", doc.String())
	srv.Close() // waits for the handler and middleware to finish

	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	var eb errorBody
	require.NoError(t, json.Unmarshal(body, &eb))
	assert.Equal(t, "timeout", eb.Error)
	assert.Empty(t, serverLog.String())

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusServiceUnavailable, entries[0].ContextMap()["status"])
}

func TestRequestIDPropagation(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/match", bytes.NewBufferString(teams))
	require.NoError(t, err)
	req.Header.Set(httpapi.HeaderRequestID, "req-42")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "req-42", resp.Header.Get(httpapi.HeaderRequestID))
}

func TestHealthzAndNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/match")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var e errorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Equal(t, "not_found", e.Error)

	resp2, err := http.Get(srv.URL + "/api/v1/match")
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp2.StatusCode)
}
