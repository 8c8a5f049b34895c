// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates its schema.

# Connecting

Open uses the driver named by the config (lib/pq for postgres,
modernc.org/sqlite for sqlite). The caller must import the driver:

	conn, err := db.Open(ctx, cfg)

SQLite connections are limited to one open connection.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The statements are portable between PostgreSQL and SQLite.

# Tables

  - session: questionnaire progress (step, answers JSON, version counter)
  - evaluation: immutable evaluation snapshots (payload JSON, inputs hash)

# Relationships

	session 1──* evaluation

Deleting a session deletes its evaluations. Evaluations created through
POST /evaluate are not stored.

# Indexes

  - evaluation.share_slug (unique)
  - evaluation.session_id
  - evaluation.inputs_hash
*/
package db
