// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/danielhkuo/juego-fantastico/cliparse"
)

// IndexTemplate is a minimal stand-in for web/templates/index.html
const IndexTemplate = `<!doctype html><html><head><title>{{.Title}}</title></head><body><h1>{{.Title}}</h1></body></html>`

// GameScript is served as static/js/game.js by TestWebFS
const GameScript = "const game = new Phaser.Game(config);\n"

// GetTestConfig returns a configuration matching the process defaults
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:      cliparse.DefaultPort,
		Host:      cliparse.DefaultHost,
		SecretKey: cliparse.DefaultSecretKey,
		Debug:     true,
	}
}

// TestWebFS returns an in-memory web tree laid out like package web
func TestWebFS() fstest.MapFS {
	return fstest.MapFS{
		"templates/index.html": &fstest.MapFile{Data: []byte(IndexTemplate)},
		"static/js/game.js":    &fstest.MapFile{Data: []byte(GameScript)},
	}
}

// SilenceLogs discards default slog output for the duration of the test
func SilenceLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

// Get performs a GET request against handler
func Get(t *testing.T, handler http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(t, handler, http.MethodGet, path, headers)
}

// Do performs a request with an empty body against handler
func Do(t *testing.T, handler http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}
