// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/mycontraception/catalog"
	"github.com/danielhkuo/mycontraception/engine"
	"github.com/danielhkuo/mycontraception/middleware"
	"github.com/danielhkuo/mycontraception/models"
)

// CatalogHandler serves the read-only method, question and rule tables
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListMethods handles GET /methods
func (h *CatalogHandler) ListMethods(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.MethodsResponse{
		Methods: catalog.Methods(),
	})
}

// ListQuestions handles GET /questions
func (h *CatalogHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	qs := catalog.Questions()
	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{
		Questions: qs,
		Total:     len(qs),
	})
}

// ListRules handles GET /rules
func (h *CatalogHandler) ListRules(w http.ResponseWriter, r *http.Request) {
	rules := engine.Rules()
	resp := models.RulesResponse{Rules: make([]models.RuleInfo, len(rules))}
	for i, rule := range rules {
		resp.Rules[i] = models.RuleInfo{Order: i + 1, ID: rule.ID, Summary: rule.Summary}
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}
