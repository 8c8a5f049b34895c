// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/mycontraception/cliparse"
	"github.com/danielhkuo/mycontraception/handlers"
	"github.com/danielhkuo/mycontraception/middleware"
)

// Banner is returned by GET /
const Banner = "mycontraception API v1"

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	catalogHandler := handlers.NewCatalogHandler()
	evaluateHandler := handlers.NewEvaluateHandler(cfg)
	sessionHandler := handlers.NewSessionHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Catalog (read-only)
	mux.HandleFunc("GET /methods", middleware.WithLogging(catalogHandler.ListMethods))
	mux.HandleFunc("GET /questions", middleware.WithLogging(catalogHandler.ListQuestions))
	mux.HandleFunc("GET /rules", middleware.WithLogging(catalogHandler.ListRules))

	// Stateless evaluation
	mux.HandleFunc("POST /evaluate", middleware.WithLogging(evaluateHandler.Evaluate))

	// Questionnaire sessions (require X-Session-Key after creation)
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.GetSession))
	mux.HandleFunc("POST /sessions/{id}/answers", middleware.WithLogging(sessionHandler.SubmitAnswer))
	mux.HandleFunc("POST /sessions/{id}/back", middleware.WithLogging(sessionHandler.Back))
	mux.HandleFunc("POST /sessions/{id}/reset", middleware.WithLogging(sessionHandler.Reset))
	mux.HandleFunc("GET /sessions/{id}/results", middleware.WithLogging(sessionHandler.GetResults))

	// Shared results (public, by slug)
	mux.HandleFunc("GET /results/{slug}", middleware.WithLogging(resultsHandler.GetShared))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Banner))
	})

	return mux
}
