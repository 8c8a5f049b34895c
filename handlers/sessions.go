// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/mycontraception/auth"
	"github.com/danielhkuo/mycontraception/cliparse"
	"github.com/danielhkuo/mycontraception/engine"
	"github.com/danielhkuo/mycontraception/middleware"
	"github.com/danielhkuo/mycontraception/models"
	"github.com/danielhkuo/mycontraception/present"
	"github.com/danielhkuo/mycontraception/walker"
)

var (
	errSessionNotFound = errors.New("session not found")
	errVersionConflict = errors.New("session was modified by another request")
)

type SessionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSessionHandler(db *sql.DB, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{db: db, cfg: cfg}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := auth.NewSessionID()
	if err != nil {
		slog.Error("failed to generate session ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.SessionKeySalt)
	var userAgent *string
	if ua := r.UserAgent(); ua != "" {
		userAgent = &ua
	}

	now := time.Now().UTC()
	s := models.Session{
		ID:        sessionID,
		Step:      0,
		Answers:   engine.AnswerSet{},
		Version:   1,
		IPHash:    &ipHash,
		UserAgent: userAgent,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = h.db.ExecContext(r.Context(), `
		INSERT INTO session (id, step, answers, version, ip_hash, user_agent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, s.ID, s.Step, "{}", s.Version, s.IPHash, s.UserAgent, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		slog.Error("failed to insert session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("session created", "session_id", sessionID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID:  sessionID,
		SessionKey: auth.GenerateSessionKey(sessionID, h.cfg.SessionKeySalt),
		Session:    sessionView(s),
	})
}

// GetSession handles GET /sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.authorizedSession(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sessionView(s))
}

// SubmitAnswer handles POST /sessions/{id}/answers
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	s, ok := h.authorizedSession(w, r)
	if !ok {
		return
	}

	var req models.SubmitAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "value is required")
		return
	}

	next, err := walker.Answer(s.State(), req.Value)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.saveAndRespond(w, r, s, next)
}

// Back handles POST /sessions/{id}/back
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	s, ok := h.authorizedSession(w, r)
	if !ok {
		return
	}
	h.saveAndRespond(w, r, s, walker.Back(s.State()))
}

// Reset handles POST /sessions/{id}/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s, ok := h.authorizedSession(w, r)
	if !ok {
		return
	}
	h.saveAndRespond(w, r, s, walker.Reset())
}

// GetResults handles GET /sessions/{id}/results
// Evaluates a completed questionnaire and stores a snapshot. Asking again
// with unchanged answers returns the stored snapshot.
func (h *SessionHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	s, ok := h.authorizedSession(w, r)
	if !ok {
		return
	}

	state := s.State()
	if !walker.Complete(state) {
		progress := walker.GetProgress(state)
		middleware.ErrorResponse(w, http.StatusConflict,
			fmt.Sprintf("questionnaire not complete (question %d of %d)", progress.Current, progress.Total))
		return
	}

	ev, hash, err := evaluate(state.Answers)
	if err != nil {
		slog.Error("failed to evaluate session", "session_id", s.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Evaluation failed")
		return
	}

	snap, err := findSnapshot(r.Context(), h.db, s.ID, hash)
	if errors.Is(err, sql.ErrNoRows) {
		snap, err = h.storeSnapshot(r.Context(), s, hash, ev)
	}
	if err != nil {
		slog.Error("failed to store evaluation", "session_id", s.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EvaluationResponse{
		EvaluationID: snap.ID,
		ShareSlug:    snap.ShareSlug,
		InputsHash:   snap.InputsHash,
		ComputedAt:   snap.ComputedAt,
		Report:       present.Build(ev),
		Results:      ev.Results,
	})
}

// authorizedSession checks the session key and loads the session.
// On failure it writes the error response and returns false.
func (h *SessionHandler) authorizedSession(w http.ResponseWriter, r *http.Request) (models.Session, bool) {
	sessionID, err := auth.ParseSessionID(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return models.Session{}, false
	}

	key := r.Header.Get(middleware.SessionKeyHeader)
	if err := auth.ValidateSessionKey(sessionID, key, h.cfg.SessionKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid session key")
		return models.Session{}, false
	}

	s, err := h.loadSession(r.Context(), sessionID)
	if errors.Is(err, errSessionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return models.Session{}, false
	}
	if err != nil {
		slog.Error("failed to load session", "session_id", sessionID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Session{}, false
	}
	return s, true
}

func (h *SessionHandler) saveAndRespond(w http.ResponseWriter, r *http.Request, s models.Session, next walker.State) {
	saved, err := h.saveSession(r.Context(), s, next)
	if errors.Is(err, errVersionConflict) {
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to update session", "session_id", s.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sessionView(saved))
}

func (h *SessionHandler) loadSession(ctx context.Context, sessionID string) (models.Session, error) {
	var s models.Session
	var answers string
	err := h.db.QueryRowContext(ctx, `
		SELECT id, step, answers, version, ip_hash, user_agent, created_at, updated_at
		FROM session
		WHERE id = $1
	`, sessionID).Scan(
		&s.ID, &s.Step, &answers, &s.Version,
		&s.IPHash, &s.UserAgent, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, errSessionNotFound
	}
	if err != nil {
		return models.Session{}, err
	}

	if err := json.Unmarshal([]byte(answers), &s.Answers); err != nil {
		return models.Session{}, fmt.Errorf("decode answers for session %s: %w", sessionID, err)
	}
	return s, nil
}

// saveSession writes next if the stored version still matches s.Version
func (h *SessionHandler) saveSession(ctx context.Context, s models.Session, next walker.State) (models.Session, error) {
	answers, err := json.Marshal(next.Answers)
	if err != nil {
		return models.Session{}, fmt.Errorf("encode answers: %w", err)
	}

	now := time.Now().UTC()
	res, err := h.db.ExecContext(ctx, `
		UPDATE session
		SET step = $1, answers = $2, version = version + 1, updated_at = $3
		WHERE id = $4 AND version = $5
	`, next.Step, string(answers), now, s.ID, s.Version)
	if err != nil {
		return models.Session{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Session{}, err
	}
	if n == 0 {
		return models.Session{}, errVersionConflict
	}

	s.Step = next.Step
	s.Answers = next.Answers
	s.Version++
	s.UpdatedAt = now
	return s, nil
}

func (h *SessionHandler) storeSnapshot(ctx context.Context, s models.Session, hash string, ev engine.Evaluation) (models.EvaluationSnapshot, error) {
	evaluationID, err := auth.GenerateID(16)
	if err != nil {
		return models.EvaluationSnapshot{}, err
	}

	snap := models.EvaluationSnapshot{
		ID:         evaluationID,
		SessionID:  &s.ID,
		ShareSlug:  auth.GenerateShareSlug(evaluationID, h.cfg.SessionKeySalt),
		ComputedAt: time.Now().UTC(),
		InputsHash: hash,
	}

	payload, err := json.Marshal(snapshotPayload{Answers: s.Answers, Evaluation: ev})
	if err != nil {
		return models.EvaluationSnapshot{}, fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = h.db.ExecContext(ctx, `
		INSERT INTO evaluation (id, session_id, share_slug, inputs_hash, computed_at, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, snap.ID, snap.SessionID, snap.ShareSlug, snap.InputsHash, snap.ComputedAt, string(payload))
	if err != nil {
		return models.EvaluationSnapshot{}, err
	}

	slog.Info("evaluation stored",
		"session_id", s.ID,
		"evaluation_id", snap.ID,
		"recommended", ev.Counts.Recommended,
		"caution", ev.Counts.Caution,
		"avoid", ev.Counts.Avoid,
	)
	return snap, nil
}

func sessionView(s models.Session) models.SessionView {
	state := s.State()
	view := models.SessionView{
		ID:        s.ID,
		State:     state,
		Progress:  walker.GetProgress(state),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if q, ok := walker.Current(state); ok {
		view.Question = &q
	}
	if prev, ok := walker.Previous(state); ok {
		view.Previous = prev
	}
	return view
}
