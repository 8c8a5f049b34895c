// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/mycontraception/cliparse"
)

// Open connects to the configured database and verifies the connection
func Open(ctx context.Context, cfg cliparse.Config) (*sql.DB, error) {
	conn, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.DatabaseType == cliparse.DatabaseSQLite {
		// one writer at a time; :memory: databases exist per connection
		conn.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return conn, nil
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range strings.Split(schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// Timestamps are written by the application so both drivers store the same values.
const schema = `
-- Questionnaire sessions
CREATE TABLE IF NOT EXISTS session (
    id TEXT PRIMARY KEY,
    step INTEGER NOT NULL DEFAULT 0,
    answers TEXT NOT NULL DEFAULT '{}',
    version INTEGER NOT NULL DEFAULT 1,
    ip_hash TEXT,
    user_agent TEXT,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

-- Evaluation snapshots
CREATE TABLE IF NOT EXISTS evaluation (
    id TEXT PRIMARY KEY,
    session_id TEXT REFERENCES session(id) ON DELETE CASCADE,
    share_slug TEXT NOT NULL UNIQUE,
    inputs_hash TEXT NOT NULL,
    computed_at TIMESTAMP NOT NULL,
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_evaluation_session_id ON evaluation(session_id);
CREATE INDEX IF NOT EXISTS idx_evaluation_inputs_hash ON evaluation(inputs_hash);
`
