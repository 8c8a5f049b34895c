// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/danielhkuo/mycontraception/catalog"
)

// ErrUnknownMethod is returned by EvaluateStrict when a rule targets a
// method id that is not in the catalog being evaluated.
var ErrUnknownMethod = errors.New("unknown method id")

// Counts holds the number of methods per status
type Counts struct {
	Recommended int `json:"recommended"`
	Caution     int `json:"caution"`
	Avoid       int `json:"avoid"`
}

// Total is the number of methods evaluated
func (c Counts) Total() int {
	return c.Recommended + c.Caution + c.Avoid
}

// Evaluation is the output of one run.
// Results is in catalog order. Each status group is sorted by reason count,
// most first, with catalog order breaking ties.
type Evaluation struct {
	Results     []Result `json:"results"`
	Recommended []Result `json:"recommended"`
	Caution     []Result `json:"caution"`
	Avoid       []Result `json:"avoid"`
	Counts      Counts   `json:"counts"`
}

// Group returns the sorted results for one status
func (e Evaluation) Group(s Status) []Result {
	switch s {
	case Recommended:
		return e.Recommended
	case Caution:
		return e.Caution
	case Avoid:
		return e.Avoid
	}
	return nil
}

// Evaluate classifies every method against the answers. Missing answers
// count as negative. Rules that name a method outside methods are logged
// and skipped.
func Evaluate(answers AnswerSet, methods []catalog.Method) Evaluation {
	return EvaluateAnswers(ParseAnswers(answers), methods)
}

// EvaluateAnswers is Evaluate for answers that are already typed
func EvaluateAnswers(a Answers, methods []catalog.Method) Evaluation {
	rs := run(a, methods)
	return finish(rs)
}

// EvaluateStrict behaves like Evaluate but fails if any rule referenced a
// method id that methods does not contain.
func EvaluateStrict(answers AnswerSet, methods []catalog.Method) (Evaluation, error) {
	rs := run(ParseAnswers(answers), methods)
	if unknown := rs.Unknown(); len(unknown) > 0 {
		errs := make([]error, 0, len(unknown))
		for _, u := range unknown {
			errs = append(errs, fmt.Errorf("%w %q (rule %s)", ErrUnknownMethod, u.MethodID, u.Rule))
		}
		return Evaluation{}, errors.Join(errs...)
	}
	return finish(rs), nil
}

func run(a Answers, methods []catalog.Method) *ResultSet {
	rs := newResultSet(methods)
	for _, r := range rules {
		rs.rule = r.ID
		r.Apply(a, rs)
	}
	rs.rule = ""
	return rs
}

func finish(rs *ResultSet) Evaluation {
	ev := Evaluation{
		Results:     rs.results,
		Recommended: []Result{},
		Caution:     []Result{},
		Avoid:       []Result{},
	}

	for _, r := range rs.results {
		switch r.Status {
		case Recommended:
			ev.Recommended = append(ev.Recommended, r)
		case Caution:
			ev.Caution = append(ev.Caution, r)
		default:
			ev.Avoid = append(ev.Avoid, r)
		}
	}

	byReasons := func(group []Result) {
		sort.SliceStable(group, func(i, j int) bool {
			return len(group[i].Reasons) > len(group[j].Reasons)
		})
	}
	byReasons(ev.Recommended)
	byReasons(ev.Caution)
	byReasons(ev.Avoid)

	ev.Counts = Counts{
		Recommended: len(ev.Recommended),
		Caution:     len(ev.Caution),
		Avoid:       len(ev.Avoid),
	}
	return ev
}
