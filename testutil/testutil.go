// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/mycontraception/auth"
	"github.com/danielhkuo/mycontraception/cliparse"
	"github.com/danielhkuo/mycontraception/db"
	"github.com/danielhkuo/mycontraception/engine"
	_ "modernc.org/sqlite"
)

// TestDBURL is an in-memory SQLite database, private to one connection
const TestDBURL = ":memory:"

// SetupTestDB opens a fresh in-memory database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), GetTestConfig())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseURL:    TestDBURL,
		DatabaseType:   cliparse.DatabaseSQLite,
		SessionKeySalt: "test-session-salt",
		LogLevel:       "info",
	}
}

// CreateTestSession inserts a session at the given step with the given
// answers and returns its ID and key.
func CreateTestSession(t *testing.T, conn *sql.DB, cfg cliparse.Config, step int, answers engine.AnswerSet) (sessionID, sessionKey string) {
	t.Helper()

	sessionID, err := auth.NewSessionID()
	if err != nil {
		t.Fatalf("Failed to generate session ID: %v", err)
	}
	if answers == nil {
		answers = engine.AnswerSet{}
	}
	data, err := json.Marshal(answers)
	if err != nil {
		t.Fatalf("Failed to encode answers: %v", err)
	}

	now := time.Now().UTC()
	_, err = conn.Exec(`
		INSERT INTO session (id, step, answers, version, created_at, updated_at)
		VALUES ($1, $2, $3, 1, $4, $5)
	`, sessionID, step, string(data), now, now)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return sessionID, auth.GenerateSessionKey(sessionID, cfg.SessionKeySalt)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
