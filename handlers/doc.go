// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the mycontraception API.

# Handler Types

Each handler is a struct with its database and config dependencies:

  - CatalogHandler: methods, questions and rules (no dependencies)
  - EvaluateHandler: stateless evaluation of an answer set
  - SessionHandler: questionnaire sessions and their results
  - ResultsHandler: shared results by slug

	sessionHandler := handlers.NewSessionHandler(db, cfg)

# Sessions

A session holds the walker state: the current step and the answers so far.

	POST /sessions                → CreateSession (returns session_key)
	POST /sessions/{id}/answers   → SubmitAnswer
	POST /sessions/{id}/back      → Back
	POST /sessions/{id}/reset     → Reset
	GET  /sessions/{id}/results   → GetResults (409 until complete)

Session operations require the X-Session-Key header. Each update checks
the row's version counter; a request that lost a race gets 409.

# Evaluation

Answers are checked against their questions with walker.Check before the
engine runs. Unknown question ids are rejected. Results include the
engine output in catalog order and a display report built by present.

The inputs hash is the SHA-256 of the normalized answers, so the same
answers always hash the same regardless of how numbers were sent.

# Snapshots

GetResults stores each distinct evaluation of a session in the
evaluation table with a share slug:

	GET /results/{slug} → GetShared

Repeating GetResults with unchanged answers returns the stored snapshot.

# Error Mapping

	invalid answer          → 400
	bad or missing key      → 401
	unknown session or slug → 404
	incomplete or conflict  → 409
	storage failure         → 500
*/
package handlers
