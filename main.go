package main

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/juego-fantastico/cliparse"
	"github.com/danielhkuo/juego-fantastico/handlers"
	"github.com/danielhkuo/juego-fantastico/logging"
	"github.com/danielhkuo/juego-fantastico/router"
	"github.com/danielhkuo/juego-fantastico/web"
)

func main() {
	var err error

	// Load .env before anything reads the environment
	envFile, explicit := cliparse.EnvFileFromArgs(os.Args[1:])
	if err = cliparse.LoadEnvFile(envFile, explicit); err != nil {
		slog.Error("Error loading env file", "file", envFile, "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(os.Stderr, cfg.Debug))
	if cfg.UsingDefaultSecret() {
		slog.Warn("SECRET_KEY not set, using development secret")
	}

	server, err := newServer(cfg)
	if err != nil {
		slog.Error("application setup failed", "error", err)
		os.Exit(1)
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "addr", server.Addr, "debug", cfg.Debug)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}

// newServer assembles the application for cfg without listening
func newServer(cfg cliparse.Config) (*http.Server, error) {
	mainGroup, err := handlers.NewMainGroup(cfg, webAssets(cfg))
	if err != nil {
		return nil, err
	}

	app, err := router.New(cfg, mainGroup)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Handler: app,
		Addr:    cfg.Addr(),
	}, nil
}

// webAssets returns the embedded web tree, or cfg.WebDir when set
func webAssets(cfg cliparse.Config) fs.FS {
	if cfg.WebDir != "" {
		return os.DirFS(cfg.WebDir)
	}
	return web.FS
}
