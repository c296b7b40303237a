// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Mi Juego Fantástico web server.

The server renders a single page that hosts a browser game, serves the
game's static assets and exposes a liveness probe.

# Starting the Server

No configuration is required:

	go run .

Or with flags:

	go run . -p 8080 -secret-key "..." -debug=false

# Configuration

Settings, all optional:

  - PORT (-p): Server port (default: 5000)
  - SECRET_KEY (-secret-key): Server-side secret (default: dev-secret-key)
  - DEBUG (-debug): Verbose diagnostics (default: true)
  - WEB_DIR (-web): Serve templates/static from disk instead of the embedded copy

A .env file in the working directory is loaded first (-env picks another
file). The server always listens on 0.0.0.0. A PORT that is not an integer
in 1-65535 stops startup with exit code 1.

# Architecture

  - router: Application factory, route groups, middleware chain
  - handlers: The "main" route group (index page, template rendering)
  - middleware: CORS, logging, error pages, panic recovery
  - models: Template rendering contexts
  - web: Embedded templates and static files
  - logging: slog setup
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
