// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"log/slog"

	"github.com/danielhkuo/mycontraception/catalog"
)

// Result is the classification of one method in one evaluation run
type Result struct {
	Method  catalog.Method `json:"method"`
	Status  Status         `json:"status"`
	Reasons []string       `json:"reasons"`
}

// UnknownRef records a rule that targeted a method missing from the catalog
type UnknownRef struct {
	Rule     string
	MethodID string
}

// ResultSet is the mutable per-run state rules operate on.
// A ResultSet is never shared between runs.
type ResultSet struct {
	results []Result
	index   map[string]int

	rule    string
	unknown []UnknownRef
}

func newResultSet(methods []catalog.Method) *ResultSet {
	rs := &ResultSet{
		results: make([]Result, len(methods)),
		index:   make(map[string]int, len(methods)),
	}
	for i, m := range methods {
		rs.results[i] = Result{
			Method:  m,
			Status:  Recommended,
			Reasons: []string{},
		}
		rs.index[m.ID] = i
	}
	return rs
}

// MarkAvoid sets the method to Avoid and records the reason.
// Returns false if the method is not in the set.
func (rs *ResultSet) MarkAvoid(methodID, reason string) bool {
	return rs.apply(methodID, Avoid, reason)
}

// MarkCaution raises the method to Caution unless it is already Avoid.
// The reason is recorded either way.
func (rs *ResultSet) MarkCaution(methodID, reason string) bool {
	return rs.apply(methodID, Caution, reason)
}

// Annotate records a reason without touching the status
func (rs *ResultSet) Annotate(methodID, reason string) bool {
	return rs.apply(methodID, Recommended, reason)
}

// MarkAvoidAll applies MarkAvoid to each id with the same reason
func (rs *ResultSet) MarkAvoidAll(ids []string, reason string) {
	for _, id := range ids {
		rs.MarkAvoid(id, reason)
	}
}

// MarkCautionAll applies MarkCaution to each id with the same reason
func (rs *ResultSet) MarkCautionAll(ids []string, reason string) {
	for _, id := range ids {
		rs.MarkCaution(id, reason)
	}
}

// AnnotateAll applies Annotate to each id with the same reason
func (rs *ResultSet) AnnotateAll(ids []string, reason string) {
	for _, id := range ids {
		rs.Annotate(id, reason)
	}
}

// IDs returns the ids of every method in the set, in catalog order
func (rs *ResultSet) IDs() []string {
	ids := make([]string, len(rs.results))
	for i, r := range rs.results {
		ids[i] = r.Method.ID
	}
	return ids
}

// Get returns a copy of the current result for a method
func (rs *ResultSet) Get(methodID string) (Result, bool) {
	i, ok := rs.index[methodID]
	if !ok {
		return Result{}, false
	}
	r := rs.results[i]
	r.Reasons = append([]string{}, r.Reasons...)
	return r, true
}

// Unknown lists rule references to methods that were not in the set
func (rs *ResultSet) Unknown() []UnknownRef {
	return append([]UnknownRef(nil), rs.unknown...)
}

func (rs *ResultSet) apply(methodID string, s Status, reason string) bool {
	i, ok := rs.index[methodID]
	if !ok {
		slog.Warn("rule references unknown method", "rule", rs.rule, "method_id", methodID)
		rs.unknown = append(rs.unknown, UnknownRef{Rule: rs.rule, MethodID: methodID})
		return false
	}
	r := &rs.results[i]
	r.Status = Merge(r.Status, s)
	if reason != "" {
		r.Reasons = append(r.Reasons, reason)
	}
	return true
}
