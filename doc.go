// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the mycontraception API server.

mycontraception is an educational contraception questionnaire. Answers are
run through an ordered rule table that sorts each contraceptive method
into recommended, use with caution, or avoid, with the reasons that
applied. It is not medical advice.

# Starting the Server

Only the session key salt is required; everything else has a default:

	SESSION_KEY_SALT=change-me go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -session-salt change-me

A .env file in the working directory is loaded first.

# Configuration

Required settings:

  - SESSION_KEY_SALT (--session-salt): Secret for session keys and share slugs

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string (default: file:mycontra.db)
  - LOG_LEVEL (--log-level): debug, info, warn, error (default: info)

# Architecture

  - catalog: embedded method and question tables
  - engine: rule evaluation and result ordering
  - walker: one-question-at-a-time navigation and answer validation
  - present: cards, groups and the text report
  - handlers: HTTP request handlers (catalog, evaluate, sessions, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Session keys, IDs and hashing
  - db: Connection and schema creation
  - cliparse: Configuration parsing
  - cmd/mycontra: command-line client

See package documentation for each component.
*/
package main
