// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/mycontraception/catalog"
	"github.com/danielhkuo/mycontraception/engine"
	"github.com/danielhkuo/mycontraception/present"
	"github.com/danielhkuo/mycontraception/walker"
)

var validate = validator.New()

// Request types

type EvaluateRequest struct {
	Answers engine.AnswerSet `json:"answers" validate:"required"`
}

// Validate checks the request shape. Individual answers are checked
// against their questions by the handler.
func (r *EvaluateRequest) Validate() error {
	return validate.Struct(r)
}

// Value is an option token or a number, depending on the current question
type SubmitAnswerRequest struct {
	Value any `json:"value" validate:"required"`
}

func (r *SubmitAnswerRequest) Validate() error {
	return validate.Struct(r)
}

// Response types

type CreateSessionResponse struct {
	SessionID  string      `json:"session_id"`
	SessionKey string      `json:"session_key"`
	Session    SessionView `json:"session"`
}

type SessionView struct {
	ID        string            `json:"id"`
	State     walker.State      `json:"state"`
	Progress  walker.Progress   `json:"progress"`
	Question  *catalog.Question `json:"question,omitempty"`
	Previous  any               `json:"previous,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type EvaluationResponse struct {
	EvaluationID string          `json:"evaluation_id,omitempty"`
	ShareSlug    string          `json:"share_slug,omitempty"`
	InputsHash   string          `json:"inputs_hash"`
	ComputedAt   time.Time       `json:"computed_at"`
	Report       present.Report  `json:"report"`
	Results      []engine.Result `json:"results"`
}

type MethodsResponse struct {
	Methods []catalog.Method `json:"methods"`
}

type QuestionsResponse struct {
	Questions []catalog.Question `json:"questions"`
	Total     int                `json:"total"`
}

type RulesResponse struct {
	Rules []RuleInfo `json:"rules"`
}

type RuleInfo struct {
	Order   int    `json:"order"`
	ID      string `json:"id"`
	Summary string `json:"summary"`
}

// Domain types

type Session struct {
	ID        string
	Step      int
	Answers   engine.AnswerSet
	Version   int
	IPHash    *string
	UserAgent *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// State returns the walker state stored in the session
func (s Session) State() walker.State {
	answers := s.Answers
	if answers == nil {
		answers = engine.AnswerSet{}
	}
	return walker.State{Step: s.Step, Answers: answers}
}

// EvaluationSnapshot is a stored, immutable evaluation result
type EvaluationSnapshot struct {
	ID         string    `json:"id"`
	SessionID  *string   `json:"session_id,omitempty"`
	ShareSlug  string    `json:"share_slug"`
	ComputedAt time.Time `json:"computed_at"`
	InputsHash string    `json:"inputs_hash"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
