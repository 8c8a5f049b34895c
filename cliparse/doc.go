// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: connection string (default for sqlite: file:mycontra.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SessionKeySalt: Secret for session key and share slug HMACs (required)
  - LogLevel: debug, info, warn or error (default: info)

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	--session-salt  Session key salt
	--log-level     Log level

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	SESSION_KEY_SALT → --session-salt
	LOG_LEVEL        → --log-level

CLI flags take precedence over environment variables. The server loads a
.env file with godotenv before parsing.

# Validation

The parsed Config is checked with go-playground/validator. ParseFlags
returns an error if SESSION_KEY_SALT is missing, if postgres is selected
without a URL, or if a value is out of range.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(db, cfg)
*/
package cliparse
