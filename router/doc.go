// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the mycontraception API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health and banner:

	GET /health
	GET /

Catalog (public, read-only):

	GET /methods   - Method catalog in display order
	GET /questions - Questionnaire in asking order
	GET /rules     - Rule table in application order

Evaluation (public, nothing stored):

	POST /evaluate - Evaluate a full or partial answer set

Sessions (X-Session-Key required except on create):

	POST /sessions               - Start a questionnaire
	GET  /sessions/{id}          - Current state and question
	POST /sessions/{id}/answers  - Answer the current question
	POST /sessions/{id}/back     - Go to the previous question
	POST /sessions/{id}/reset    - Start over
	GET  /sessions/{id}/results  - Evaluate and store a snapshot

Shared results (public, by slug):

	GET /results/{slug}

All routes except health and root are wrapped with middleware.WithLogging.
*/
package router
