// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/juego-fantastico/cliparse"
	"github.com/danielhkuo/juego-fantastico/middleware"
	"github.com/danielhkuo/juego-fantastico/models"
	"github.com/danielhkuo/juego-fantastico/router"
)

const (
	MainGroupName     = "main"
	MainStaticURLPath = "/static/main"
)

type MainHandler struct {
	cfg      cliparse.Config
	renderer *Renderer
}

func NewMainHandler(cfg cliparse.Config, renderer *Renderer) *MainHandler {
	return &MainHandler{
		cfg:      cfg,
		renderer: renderer,
	}
}

// Index handles GET / and renders the game page
func (h *MainHandler) Index(w http.ResponseWriter, r *http.Request) {
	data := models.PageData{Title: models.GameTitle}

	if err := h.renderer.Render(w, http.StatusOK, models.TemplateIndex, data); err != nil {
		slog.Error("failed to render page", "template", models.TemplateIndex, "error", err)
		detail := ""
		if h.cfg.Debug {
			detail = err.Error()
		}
		middleware.ErrorPage(w, http.StatusInternalServerError, detail)
	}
}

// NewMainGroup builds the "main" route group from a web tree holding
// templates/ and static/ directories.
func NewMainGroup(cfg cliparse.Config, web fs.FS) (router.Group, error) {
	templates, err := subdir(web, "templates")
	if err != nil {
		return router.Group{}, err
	}
	static, err := subdir(web, "static")
	if err != nil {
		return router.Group{}, err
	}

	// Only a directory on disk can change under us
	reload := cfg.Debug && cfg.WebDir != ""
	renderer, err := NewRenderer(templates, reload)
	if err != nil {
		return router.Group{}, fmt.Errorf("%s group: %w", MainGroupName, err)
	}

	h := NewMainHandler(cfg, renderer)

	return router.Group{
		Name:          MainGroupName,
		StaticURLPath: MainStaticURLPath,
		Static:        static,
		Routes: []router.Route{
			{Method: http.MethodGet, Path: "/{$}", Handler: h.Index},
		},
	}, nil
}

func subdir(fsys fs.FS, dir string) (fs.FS, error) {
	info, err := fs.Stat(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("%s group: %w", MainGroupName, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s group: %s is not a directory", MainGroupName, dir)
	}
	return fs.Sub(fsys, dir)
}
