// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/mycontraception/auth"
	"github.com/danielhkuo/mycontraception/catalog"
	"github.com/danielhkuo/mycontraception/cliparse"
	"github.com/danielhkuo/mycontraception/engine"
	"github.com/danielhkuo/mycontraception/middleware"
	"github.com/danielhkuo/mycontraception/models"
	"github.com/danielhkuo/mycontraception/present"
	"github.com/danielhkuo/mycontraception/walker"
)

type EvaluateHandler struct {
	cfg cliparse.Config
}

func NewEvaluateHandler(cfg cliparse.Config) *EvaluateHandler {
	return &EvaluateHandler{cfg: cfg}
}

// Evaluate handles POST /evaluate
// Stateless: answers are checked, evaluated and returned without being stored.
func (h *EvaluateHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req models.EvaluateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answers is required")
		return
	}

	answers, err := walker.CheckAll(req.Answers)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ev, hash, err := evaluate(answers)
	if err != nil {
		slog.Error("failed to evaluate answers", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Evaluation failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EvaluationResponse{
		InputsHash: hash,
		ComputedAt: time.Now().UTC(),
		Report:     present.Build(ev),
		Results:    ev.Results,
	})
}

// evaluate runs the engine against the full catalog and hashes the
// normalized answers.
func evaluate(answers engine.AnswerSet) (engine.Evaluation, string, error) {
	ev, err := engine.EvaluateStrict(answers, catalog.Methods())
	if err != nil {
		return engine.Evaluation{}, "", err
	}
	hash, err := auth.HashAnswers(engine.ParseAnswers(answers).Set())
	if err != nil {
		return engine.Evaluation{}, "", err
	}
	return ev, hash, nil
}
