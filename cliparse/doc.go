// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

The Config is resolved once at startup and passed by value to the router.
Nothing mutates it afterwards.

# Config Fields

  - Port: Server listen port (default: 5000)
  - Host: Listen host, always 0.0.0.0
  - SecretKey: Server-side secret (default: "dev-secret-key")
  - Debug: Verbose diagnostics (default: true)
  - WebDir: Serve templates/static from disk instead of the embedded copy

# CLI Flags

	-p            Server port
	-secret-key   Secret key
	-debug        true/false
	-web          Web asset directory
	-env          Dotenv file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT       → -p
	SECRET_KEY → -secret-key
	DEBUG      → -debug
	WEB_DIR    → -web

CLI flags take precedence over environment variables.

# Dotenv

LoadEnvFile reads a dotenv file before flags are parsed. Variables already
present in the environment are kept. The default .env may be absent; a file
named with -env must exist, and -env= disables loading:

	path, explicit := cliparse.EnvFileFromArgs(os.Args[1:])
	if err := cliparse.LoadEnvFile(path, explicit); err != nil {
		// ...
	}

# Validation

ParseFlags returns ErrInvalidPort when PORT is not an integer or is outside
1-65535. The server refuses to start rather than fall back to the default.
*/
package cliparse
