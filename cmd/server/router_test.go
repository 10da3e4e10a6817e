package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dave-vazquez/lambda-posts/internal/config"
	"github.com/dave-vazquez/lambda-posts/internal/platform/logger"
	"github.com/dave-vazquez/lambda-posts/internal/platform/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Port: 5000, LogLevel: "debug"},
		Database: config.DatabaseConfig{Driver: config.DriverMemory, MaxOpenConns: 1},
		CORS:     config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) (*httptest.Server, *slog.Logger) {
	t.Helper()

	log, _ := logger.GetTestLogger(t)
	mem := memory.New()
	app := &application{
		config:    cfg,
		logger:    log,
		userStore: mem.Users(),
		postStore: mem.Posts(),
	}

	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)
	return srv, log
}

type result struct {
	status int
	body   map[string]interface{}
	raw    string
}

func call(t *testing.T, srv *httptest.Server, method, path, body string) result {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	res := result{status: resp.StatusCode, raw: string(raw)}
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &res.body))
	}
	return res
}

func TestIndexAndHealth(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	res := call(t, srv, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "<h2>Let's write some middleware!</h2>", res.raw)

	res = call(t, srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "OK", res.raw)

	res = call(t, srv, http.MethodGet, "/api/docs/openapi.yaml", "")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Contains(t, res.raw, "openapi:")
}

func TestUsersAndPostsEndToEnd(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	// Create three users so the nested post below targets id 3.
	var ids []float64
	for _, name := range []string{"Frodo", "Sam", "Mac"} {
		res := call(t, srv, http.MethodPost, "/api/users", fmt.Sprintf(`{"name":%q}`, name))
		require.Equal(t, http.StatusCreated, res.status, res.raw)
		assert.Equal(t, true, res.body["success"])
		user := res.body["user"].(map[string]interface{})
		assert.NotContains(t, ids, user["id"], "ids are distinct")
		ids = append(ids, user["id"].(float64))
	}

	res := call(t, srv, http.MethodGet, "/api/users/3", "")
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "Mac", res.body["user"].(map[string]interface{})["name"])

	res = call(t, srv, http.MethodPost, "/api/users/3/posts", `{"text":"hello"}`)
	require.Equal(t, http.StatusCreated, res.status, res.raw)
	assert.JSONEq(t, `{"success":true,"post":{"id":1,"text":"hello","user_id":3}}`, res.raw)

	res = call(t, srv, http.MethodGet, "/api/users/3/posts", "")
	require.Equal(t, http.StatusOK, res.status)
	assert.Len(t, res.body["posts"], 1)

	res = call(t, srv, http.MethodGet, "/api/posts/999", "")
	assert.Equal(t, http.StatusNotFound, res.status)
	assert.Equal(t, false, res.body["success"])
	assert.Equal(t, "Could not find a post by that id.", res.body["message"])
	assert.NotEmpty(t, res.body["trace_id"])

	res = call(t, srv, http.MethodPut, "/api/posts/1", `{"text":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, res.status)
	assert.Equal(t, "Please provide text and a user id.", res.body["message"])

	res = call(t, srv, http.MethodPut, "/api/posts/1", `{"text":"hi","user_id":2}`)
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, float64(2), res.body["post"].(map[string]interface{})["user_id"])

	res = call(t, srv, http.MethodGet, "/api/posts", "")
	require.Equal(t, http.StatusOK, res.status)
	assert.Len(t, res.body["posts"], 1)

	res = call(t, srv, http.MethodDelete, "/api/users/2", "")
	require.Equal(t, http.StatusOK, res.status)
	assert.Equal(t, "Sam", res.body["user"].(map[string]interface{})["name"])

	res = call(t, srv, http.MethodDelete, "/api/users/2", "")
	assert.Equal(t, http.StatusNotFound, res.status)
	assert.Equal(t, "Could not find a user by that id.", res.body["message"])

	res = call(t, srv, http.MethodGet, "/api/posts", "")
	require.Equal(t, http.StatusOK, res.status)
	assert.Empty(t, res.body["posts"], "deleting a user removes their posts")

	res = call(t, srv, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, res.status)
	assert.Len(t, res.body["users"], 2)
}

func TestUnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	res := call(t, srv, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, res.status)
	assert.Equal(t, false, res.body["success"])

	res = call(t, srv, http.MethodPatch, "/api/users", "")
	assert.Equal(t, http.StatusMethodNotAllowed, res.status)
	assert.Equal(t, false, res.body["success"])
}

func TestRateLimitedRouter(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2}
	srv, _ := newTestServer(t, cfg)

	assert.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/users", "").status)
	assert.Equal(t, http.StatusOK, call(t, srv, http.MethodGet, "/api/users", "").status)

	res := call(t, srv, http.MethodGet, "/api/users", "")
	assert.Equal(t, http.StatusTooManyRequests, res.status)
	assert.Equal(t, false, res.body["success"])
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/users", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
