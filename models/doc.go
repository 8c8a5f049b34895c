// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON, validated with go-playground/validator:

  - EvaluateRequest: answers (question id → value)
  - SubmitAnswerRequest: value for the current question

# Response Types

Types for JSON responses:

  - CreateSessionResponse: session_id, session_key, session
  - SessionView: walker state, progress, current question
  - EvaluationResponse: report, results, inputs_hash, share_slug
  - MethodsResponse, QuestionsResponse, RulesResponse
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Session: stored questionnaire progress with optimistic version
  - EvaluationSnapshot: immutable stored evaluation
*/
package models
