// Package web embeds the HTML templates and static assets of the game page.
//
// Layout:
//
//	templates/index.html
//	static/js/game.js
//	static/css/style.css
//	static/assets/
//
// Usage:
//
//	handlers.NewMainGroup(cfg, web.FS)
package web

import "embed"

//go:embed templates static
var FS embed.FS
