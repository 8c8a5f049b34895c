// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package walker

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/mycontraception/catalog"
	"github.com/danielhkuo/mycontraception/engine"
)

var (
	ErrComplete        = errors.New("questionnaire already complete")
	ErrNoAnswer        = errors.New("no answer given")
	ErrInvalidOption   = errors.New("not one of the options")
	ErrNotNumber       = errors.New("not a valid number")
	ErrOutOfRange      = errors.New("number out of range")
	ErrUnknownQuestion = errors.New("unknown question")
)

var (
	questions = catalog.Questions()
	validate  = validator.New()
)

// State is the progress through the questionnaire.
// Operations never modify a State in place; they return a new one.
type State struct {
	Step    int              `json:"step"`
	Answers engine.AnswerSet `json:"answers"`
}

// Progress mirrors the progress bar: "Question Current of Total", Percent done
type Progress struct {
	Current int  `json:"current"`
	Total   int  `json:"total"`
	Percent int  `json:"percent"`
	Done    bool `json:"done"`
}

// New returns the state at the first question with no answers
func New() State {
	return State{Step: 0, Answers: engine.AnswerSet{}}
}

// Reset discards all progress
func Reset() State {
	return New()
}

// Total is the number of questions
func Total() int {
	return len(questions)
}

// Current returns the question at the current step, or false once every
// question has been answered.
func Current(s State) (catalog.Question, bool) {
	if s.Step < 0 || s.Step >= len(questions) {
		return catalog.Question{}, false
	}
	return questions[s.Step], true
}

// Complete reports whether the walker has moved past the last question
func Complete(s State) bool {
	return s.Step >= len(questions)
}

// Previous returns the stored answer for the current question, if any
func Previous(s State) (any, bool) {
	q, ok := Current(s)
	if !ok {
		return nil, false
	}
	v, ok := s.Answers[q.ID]
	return v, ok
}

// Answer validates value against the current question, stores it and
// moves to the next question.
func Answer(s State, value any) (State, error) {
	q, ok := Current(s)
	if !ok {
		return s, ErrComplete
	}
	stored, err := Check(q, value)
	if err != nil {
		return s, err
	}
	next := s.clone()
	next.Answers[q.ID] = stored
	next.Step++
	return next, nil
}

// Back moves to the previous question, keeping answers
func Back(s State) State {
	next := s.clone()
	next.Step = max(0, min(next.Step, len(questions))-1)
	return next
}

// GetProgress reports where the walker is
func GetProgress(s State) Progress {
	total := len(questions)
	if Complete(s) {
		return Progress{Current: total, Total: total, Percent: 100, Done: true}
	}
	return Progress{
		Current: max(1, min(s.Step+1, total)),
		Total:   total,
		Percent: int(math.Round(float64(s.Step) / float64(total) * 100)),
	}
}

// Check validates a raw answer for q and returns the value to store:
// the option token for single-choice questions, a float64 for numbers.
func Check(q catalog.Question, value any) (any, error) {
	switch q.Type {
	case catalog.TypeSingle:
		return checkOption(q, value)
	case catalog.TypeNumber:
		return checkNumber(q, value)
	}
	return nil, fmt.Errorf("question %s: unsupported type %q", q.ID, q.Type)
}

// CheckAll validates a whole answer set, such as one read from a file.
// Unanswered questions are allowed. Keys are checked in sorted order so
// the first error reported is stable.
func CheckAll(raw engine.AnswerSet) (engine.AnswerSet, error) {
	checked := make(engine.AnswerSet, len(raw))
	for _, id := range slices.Sorted(maps.Keys(raw)) {
		q, ok := catalog.QuestionByID(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
		}
		v, err := Check(q, raw[id])
		if err != nil {
			return nil, err
		}
		checked[id] = v
	}
	return checked, nil
}

func checkOption(q catalog.Question, value any) (any, error) {
	token, ok := value.(string)
	if !ok {
		if value == nil {
			return nil, fmt.Errorf("%w for %s", ErrNoAnswer, q.ID)
		}
		return nil, fmt.Errorf("%w: %v for %s", ErrInvalidOption, value, q.ID)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w for %s", ErrNoAnswer, q.ID)
	}
	if err := validate.Var(token, "oneof="+strings.Join(q.OptionValues(), " ")); err != nil {
		return nil, fmt.Errorf("%w: %q for %s", ErrInvalidOption, token, q.ID)
	}
	return token, nil
}

func checkNumber(q catalog.Question, value any) (any, error) {
	num, err := toNumber(value)
	if err != nil {
		return nil, fmt.Errorf("%w for %s", err, q.ID)
	}

	var tags []string
	if q.Min != nil {
		tags = append(tags, "gte="+formatFloat(*q.Min))
	}
	if q.Max != nil {
		tags = append(tags, "lte="+formatFloat(*q.Max))
	}
	if len(tags) > 0 {
		if err := validate.Var(num, strings.Join(tags, ",")); err != nil {
			return nil, fmt.Errorf("%w: %s must be between %s and %s", ErrOutOfRange, q.ID, bound(q.Min), bound(q.Max))
		}
	}
	return num, nil
}

func toNumber(value any) (float64, error) {
	var f float64
	switch v := value.(type) {
	case nil:
		return 0, ErrNoAnswer
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0, ErrNotNumber
		}
		f = n
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return 0, ErrNoAnswer
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, ErrNotNumber
		}
		f = n
	default:
		return 0, ErrNotNumber
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotNumber
	}
	return f, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func bound(f *float64) string {
	if f == nil {
		return "any"
	}
	return formatFloat(*f)
}

func (s State) clone() State {
	answers := make(engine.AnswerSet, len(s.Answers))
	for k, v := range s.Answers {
		answers[k] = v
	}
	return State{Step: s.Step, Answers: answers}
}
