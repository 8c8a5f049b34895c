// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/mycontraception/cliparse"
	"github.com/danielhkuo/mycontraception/engine"
	"github.com/danielhkuo/mycontraception/middleware"
	"github.com/danielhkuo/mycontraception/models"
	"github.com/danielhkuo/mycontraception/present"
)

// snapshotPayload is the JSON stored in evaluation.payload
type snapshotPayload struct {
	Answers    engine.AnswerSet  `json:"answers"`
	Evaluation engine.Evaluation `json:"evaluation"`
}

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// GetShared handles GET /results/{slug}
// Returns a stored evaluation exactly as it was computed. No session key
// is needed; the slug is the capability.
func (h *ResultsHandler) GetShared(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	var snap models.EvaluationSnapshot
	var payload string
	err := h.db.QueryRowContext(r.Context(), `
		SELECT id, session_id, share_slug, inputs_hash, computed_at, payload
		FROM evaluation
		WHERE share_slug = $1
	`, slug).Scan(&snap.ID, &snap.SessionID, &snap.ShareSlug, &snap.InputsHash, &snap.ComputedAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Results not found")
		return
	}
	if err != nil {
		slog.Error("failed to query evaluation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var p snapshotPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		slog.Error("failed to decode evaluation payload", "evaluation_id", snap.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Corrupt evaluation")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EvaluationResponse{
		EvaluationID: snap.ID,
		ShareSlug:    snap.ShareSlug,
		InputsHash:   snap.InputsHash,
		ComputedAt:   snap.ComputedAt,
		Report:       present.Build(p.Evaluation),
		Results:      p.Evaluation.Results,
	})
}

// findSnapshot returns the stored evaluation of a session for the given
// inputs hash, or sql.ErrNoRows.
func findSnapshot(ctx context.Context, db *sql.DB, sessionID, hash string) (models.EvaluationSnapshot, error) {
	var snap models.EvaluationSnapshot
	err := db.QueryRowContext(ctx, `
		SELECT id, session_id, share_slug, inputs_hash, computed_at
		FROM evaluation
		WHERE session_id = $1 AND inputs_hash = $2
		ORDER BY computed_at DESC
		LIMIT 1
	`, sessionID, hash).Scan(&snap.ID, &snap.SessionID, &snap.ShareSlug, &snap.InputsHash, &snap.ComputedAt)
	return snap, err
}
