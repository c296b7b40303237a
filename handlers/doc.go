// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the route groups of the game site.

# Main Group

NewMainGroup builds the "main" route group from a web tree with templates/
and static/ directories (normally web.FS, or a directory on disk):

	mainGroup, err := handlers.NewMainGroup(cfg, web.FS)

Routes:

	GET /               → MainHandler.Index (renders index.html)
	GET /static/main/*  → files under static/

Index passes models.PageData{Title: "Mi Juego Fantástico"} to the template.

# Rendering

Renderer parses every *.html template once at construction. Templates are
executed into a buffer first, so a failing template produces a clean 500
error page instead of a half-written document. When Debug is on and the
assets come from a directory (WebDir), templates are parsed again on each
request.
*/
package handlers
