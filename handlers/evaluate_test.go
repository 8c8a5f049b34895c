// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/mycontraception/engine"
	"github.com/danielhkuo/mycontraception/models"
	"github.com/danielhkuo/mycontraception/present"
	"github.com/danielhkuo/mycontraception/testutil"
)

func postEvaluate(t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewEvaluateHandler(testutil.GetTestConfig())
	w := httptest.NewRecorder()
	handler.Evaluate(w, testutil.MakeRequest("POST", "/evaluate", body, nil))
	return w
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		answers    engine.AnswerSet
		wantCounts engine.Counts
	}{
		{
			name:       "no answers recommends everything",
			answers:    engine.AnswerSet{},
			wantCounts: engine.Counts{Recommended: 10},
		},
		{
			name:       "breast cancer avoids all hormonal methods",
			answers:    engine.AnswerSet{"breast_cancer": "yes"},
			wantCounts: engine.Counts{Recommended: 2, Avoid: 8},
		},
		{
			name:       "heavy smoker over 35",
			answers:    engine.AnswerSet{"age": 40, "smoking": "yes_ge15"},
			wantCounts: engine.Counts{Recommended: 7, Avoid: 3},
		},
		{
			name:       "possible pregnancy",
			answers:    engine.AnswerSet{"pregnant": "yes"},
			wantCounts: engine.Counts{Caution: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postEvaluate(t, models.EvaluateRequest{Answers: tt.answers})
			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.EvaluationResponse
			testutil.AssertJSON(t, w, &resp)

			assert.Equal(t, tt.wantCounts, resp.Report.Counts)
			assert.Len(t, resp.Results, 10)
			assert.Len(t, resp.InputsHash, 64)
			assert.Empty(t, resp.EvaluationID, "stateless evaluation is not stored")
			assert.Equal(t, present.Footer, resp.Report.Footer)
			require.Len(t, resp.Report.Groups, 3)
			assert.Len(t, resp.Report.Groups[0].Cards, tt.wantCounts.Recommended)
			assert.Len(t, resp.Report.Groups[1].Cards, tt.wantCounts.Caution)
			assert.Len(t, resp.Report.Groups[2].Cards, tt.wantCounts.Avoid)
		})
	}
}

func TestEvaluate_BreastCancerReasons(t *testing.T) {
	w := postEvaluate(t, models.EvaluateRequest{Answers: engine.AnswerSet{"breast_cancer": "yes"}})
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.EvaluationResponse
	testutil.AssertJSON(t, w, &resp)

	for _, r := range resp.Results {
		if r.Method.Hormonal {
			assert.Equal(t, engine.Avoid, r.Status, r.Method.ID)
			assert.Contains(t, r.Reasons, "Current/past breast cancer: hormonal contraception is contraindicated.")
		} else {
			assert.Equal(t, engine.Recommended, r.Status, r.Method.ID)
		}
	}
}

func TestEvaluate_HashIgnoresNumberForm(t *testing.T) {
	var hashes []string
	for _, age := range []any{36, "36", 36.0} {
		w := postEvaluate(t, models.EvaluateRequest{Answers: engine.AnswerSet{"age": age}})
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.EvaluationResponse
		testutil.AssertJSON(t, w, &resp)
		hashes = append(hashes, resp.InputsHash)
	}
	assert.Equal(t, hashes[0], hashes[1])
	assert.Equal(t, hashes[0], hashes[2])
}

func TestEvaluate_BadRequests(t *testing.T) {
	tests := []struct {
		name        string
		body        any
		wantMessage string
	}{
		{"missing answers", map[string]any{}, "answers is required"},
		{"unknown question", models.EvaluateRequest{Answers: engine.AnswerSet{"favourite_colour": "blue"}}, "unknown question: favourite_colour"},
		{"invalid option", models.EvaluateRequest{Answers: engine.AnswerSet{"smoking": "sometimes"}}, "not one of the options"},
		{"age out of range", models.EvaluateRequest{Answers: engine.AnswerSet{"age": 5}}, "out of range"},
		{"age not a number", models.EvaluateRequest{Answers: engine.AnswerSet{"age": "old"}}, "not a valid number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postEvaluate(t, tt.body)
			testutil.AssertStatus(t, w, http.StatusBadRequest)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			assert.Contains(t, resp.Message, tt.wantMessage)
		})
	}
}

func TestEvaluate_InvalidJSON(t *testing.T) {
	handler := NewEvaluateHandler(testutil.GetTestConfig())
	req := httptest.NewRequest("POST", "/evaluate", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler.Evaluate(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
