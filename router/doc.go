// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router assembles the HTTP application.

# Application Factory

New builds one ready-to-serve App from a configuration and an explicit,
ordered list of route groups:

	mainGroup, err := handlers.NewMainGroup(cfg, web.FS)
	app, err := router.New(cfg, mainGroup)

Every call returns an independent instance. New never listens; pass the App
to an http.Server as its Handler.

# Route Groups

A Group is a named bundle of routes with an optional static tree:

	router.Group{
		Name:          "main",
		StaticURLPath: "/static/main",
		Static:        staticFS,
		Routes: []router.Route{
			{Method: "GET", Path: "/{$}", Handler: h.Index},
		},
	}

Route paths are joined to the group Prefix and registered on an
http.ServeMux. Static files are served below StaticURLPath without
directory listings. Invalid or conflicting groups make New return
ErrInvalidGroup.

# Endpoints

Always registered:

	GET /health - Liveness probe, body "OK"

# Middleware Chain

	Recover → WithLogging → CORS(/api/*, origin *) → WithErrorPages → mux

Unmatched requests render HTML 404/405 pages. Panics render a 500 page,
with the panic value when Debug is on.
*/
package router
