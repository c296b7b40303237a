// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
)

const templatePattern = "*.html"

// Renderer executes the HTML templates of one route group
type Renderer struct {
	fsys   fs.FS
	reload bool
	tpl    *template.Template
}

// NewRenderer parses every *.html file at the root of fsys.
// With reload set, templates are parsed again on each Render call so edits
// on disk show up without a restart.
func NewRenderer(fsys fs.FS, reload bool) (*Renderer, error) {
	tpl, err := parseTemplates(fsys)
	if err != nil {
		return nil, err
	}
	return &Renderer{fsys: fsys, reload: reload, tpl: tpl}, nil
}

func parseTemplates(fsys fs.FS) (*template.Template, error) {
	tpl, err := template.New("").ParseFS(fsys, templatePattern)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tpl, nil
}

// Render executes template name with data and writes it with status.
// Nothing is written to w when rendering fails.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	tpl := r.tpl
	if r.reload {
		fresh, err := parseTemplates(r.fsys)
		if err != nil {
			return err
		}
		tpl = fresh
		slog.Debug("templates reloaded", "template", name)
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
