// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the rendering contexts passed to HTML templates.

# Page Types

  - PageData: title of the rendered page
  - ErrorPage: status, status text, message and optional debug detail

Values are built per request and discarded after the response is written.

# Constants

	GameTitle     = "Mi Juego Fantástico"
	TemplateIndex = "index.html"
*/
package models
