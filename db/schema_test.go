// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/mycontraception/cliparse"
)

func memoryConfig() cliparse.Config {
	return cliparse.Config{
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  ":memory:",
	}
}

func TestCreateSchema(t *testing.T) {
	conn, err := Open(context.Background(), memoryConfig())
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, CreateSchema(conn))
	require.NoError(t, CreateSchema(conn), "schema creation should be idempotent")

	now := time.Now().UTC()
	_, err = conn.Exec(`
		INSERT INTO session (id, answers, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`, "s1", `{"pregnant":"no"}`, now, now)
	require.NoError(t, err)

	var step, version int
	var answers string
	err = conn.QueryRow(`SELECT step, answers, version FROM session WHERE id = $1`, "s1").
		Scan(&step, &answers, &version)
	require.NoError(t, err)
	assert.Equal(t, 0, step)
	assert.Equal(t, 1, version)
	assert.Equal(t, `{"pregnant":"no"}`, answers)

	insert := `
		INSERT INTO evaluation (id, session_id, share_slug, inputs_hash, computed_at, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = conn.Exec(insert, "e1", "s1", "slug1", "hash", now, "{}")
	require.NoError(t, err)

	_, err = conn.Exec(insert, "e2", nil, "slug1", "hash", now, "{}")
	assert.Error(t, err, "share_slug must be unique")
}
