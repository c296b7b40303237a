// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/juego-fantastico/cliparse"
	"github.com/danielhkuo/juego-fantastico/middleware"
)

// APIPrefix is the URL namespace open to cross-origin requests
const APIPrefix = "/api/"

var ErrInvalidGroup = errors.New("invalid route group")

// Route binds one method and path to a handler.
// Path uses http.ServeMux syntax, e.g. "/{$}" for the exact root.
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// Group is a named bundle of routes plus an optional static asset tree
type Group struct {
	Name          string
	Prefix        string // prepended to every route path; "" mounts at root
	StaticURLPath string // e.g. "/static/main"
	Static        fs.FS
	Routes        []Route
}

// App is a fully wired server instance
type App struct {
	cfg     cliparse.Config
	mux     *http.ServeMux
	handler http.Handler
	groups  []string
}

// New builds an App from cfg and groups. Groups are registered in slice
// order. New performs no network I/O; the caller owns listening.
func New(cfg cliparse.Config, groups ...Group) (*App, error) {
	a := &App{
		cfg: cfg,
		mux: http.NewServeMux(),
	}

	seen := make(map[string]bool, len(groups))
	for _, g := range groups {
		if seen[g.Name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidGroup, g.Name)
		}
		if err := a.register(g); err != nil {
			return nil, err
		}
		seen[g.Name] = true
		a.groups = append(a.groups, g.Name)
	}

	// Health check
	err := a.handle("GET /health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))
	if err != nil {
		return nil, err
	}

	cors := middleware.CORS(middleware.WithErrorPages(a.mux), middleware.CORSPolicy{
		PathPrefix:     APIPrefix,
		AllowedOrigins: []string{"*"},
	})
	a.handler = middleware.Recover(middleware.WithLogging(cors.ServeHTTP), cfg.Debug)

	return a, nil
}

// Config returns a copy of the configuration the App was built with
func (a *App) Config() cliparse.Config {
	return a.cfg
}

// Groups returns registered group names in registration order
func (a *App) Groups() []string {
	return append([]string(nil), a.groups...)
}

func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

func (a *App) register(g Group) error {
	if g.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidGroup)
	}
	if g.Prefix != "" && (!strings.HasPrefix(g.Prefix, "/") || strings.HasSuffix(g.Prefix, "/")) {
		return fmt.Errorf("%w: %s: prefix %q must start and not end with /", ErrInvalidGroup, g.Name, g.Prefix)
	}

	for _, rt := range g.Routes {
		if rt.Handler == nil {
			return fmt.Errorf("%w: %s: %s %s has no handler", ErrInvalidGroup, g.Name, rt.Method, rt.Path)
		}
		if !strings.HasPrefix(rt.Path, "/") {
			return fmt.Errorf("%w: %s: path %q must start with /", ErrInvalidGroup, g.Name, rt.Path)
		}
		pattern := g.Prefix + rt.Path
		if rt.Method != "" {
			pattern = rt.Method + " " + pattern
		}
		if err := a.handle(pattern, rt.Handler); err != nil {
			return fmt.Errorf("%s: %w", g.Name, err)
		}
	}

	if g.Static != nil {
		urlPath := strings.TrimSuffix(g.StaticURLPath, "/")
		if !strings.HasPrefix(urlPath, "/") {
			return fmt.Errorf("%w: %s: static tree needs a URL path", ErrInvalidGroup, g.Name)
		}
		files := http.StripPrefix(urlPath, staticFiles(g.Static))
		if err := a.handle("GET "+urlPath+"/", files); err != nil {
			return fmt.Errorf("%s: %w", g.Name, err)
		}
	}

	slog.Debug("route group registered",
		"name", g.Name,
		"prefix", g.Prefix,
		"routes", len(g.Routes),
		"static", g.StaticURLPath,
	)
	return nil
}

// handle registers pattern, reporting ServeMux pattern conflicts as errors
func (a *App) handle(pattern string, h http.Handler) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidGroup, v)
		}
	}()
	a.mux.Handle(pattern, h)
	return nil
}

// staticFiles serves regular files from fsys. Directories and missing
// files get the 404 error page. index.html is served as-is rather than
// redirected to its directory.
func staticFiles(fsys fs.FS) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		if !fs.ValidPath(name) || name == "." {
			middleware.ErrorPage(w, http.StatusNotFound, "")
			return
		}

		f, err := fsys.Open(name)
		if err != nil {
			middleware.ErrorPage(w, http.StatusNotFound, "")
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil || !info.Mode().IsRegular() {
			middleware.ErrorPage(w, http.StatusNotFound, "")
			return
		}

		content, ok := f.(io.ReadSeeker)
		if !ok {
			data, err := io.ReadAll(f)
			if err != nil {
				slog.Error("failed to read static file", "name", name, "error", err)
				middleware.ErrorPage(w, http.StatusInternalServerError, "")
				return
			}
			content = bytes.NewReader(data)
		}
		http.ServeContent(w, r, info.Name(), info.ModTime(), content)
	})
}
