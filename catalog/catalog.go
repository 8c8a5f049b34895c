// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Question types
const (
	TypeSingle = "single"
	TypeNumber = "number"
)

//go:embed methods.yaml questions.yaml
var dataFS embed.FS

// Method is a contraceptive method definition
type Method struct {
	ID        string   `yaml:"id" json:"id"`
	Name      string   `yaml:"name" json:"name"`
	Tags      []string `yaml:"tags" json:"tags"`
	BaseNotes string   `yaml:"base_notes" json:"base_notes"`
	Estrogen  bool     `yaml:"estrogen" json:"estrogen"`
	Hormonal  bool     `yaml:"hormonal" json:"hormonal"`
}

// Option is one choice of a single-choice question
type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
	Desc  string `yaml:"desc,omitempty" json:"desc,omitempty"`
}

// Question is one questionnaire item
type Question struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Help        string   `yaml:"help" json:"help"`
	Type        string   `yaml:"type" json:"type"`
	Options     []Option `yaml:"options,omitempty" json:"options,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Min         *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max         *float64 `yaml:"max,omitempty" json:"max,omitempty"`
}

// OptionValues returns the option tokens in declaration order
func (q Question) OptionValues() []string {
	values := make([]string, len(q.Options))
	for i, opt := range q.Options {
		values[i] = opt.Value
	}
	return values
}

var (
	methods   []Method
	questions []Question

	methodIndex   = map[string]int{}
	questionIndex = map[string]int{}
)

func init() {
	var err error
	methods, questions, err = load()
	if err != nil {
		panic(err)
	}
	for i, m := range methods {
		methodIndex[m.ID] = i
	}
	for i, q := range questions {
		questionIndex[q.ID] = i
	}
}

func load() ([]Method, []Question, error) {
	var ms []Method
	if err := decode("methods.yaml", &ms); err != nil {
		return nil, nil, err
	}
	var qs []Question
	if err := decode("questions.yaml", &qs); err != nil {
		return nil, nil, err
	}
	if err := validateMethods(ms); err != nil {
		return nil, nil, err
	}
	if err := validateQuestions(qs); err != nil {
		return nil, nil, err
	}
	return ms, qs, nil
}

func decode(name string, v any) error {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func validateMethods(ms []Method) error {
	seen := make(map[string]bool, len(ms))
	for _, m := range ms {
		if m.ID == "" {
			return fmt.Errorf("method %q has no id", m.Name)
		}
		if seen[m.ID] {
			return fmt.Errorf("duplicate method id %q", m.ID)
		}
		seen[m.ID] = true
	}
	return nil
}

func validateQuestions(qs []Question) error {
	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		if q.ID == "" {
			return fmt.Errorf("question %q has no id", q.Title)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		switch q.Type {
		case TypeSingle:
			if len(q.Options) == 0 {
				return fmt.Errorf("question %q: single-choice without options", q.ID)
			}
		case TypeNumber:
			if q.Min != nil && q.Max != nil && *q.Min > *q.Max {
				return fmt.Errorf("question %q: min %v > max %v", q.ID, *q.Min, *q.Max)
			}
		default:
			return fmt.Errorf("question %q: unknown type %q", q.ID, q.Type)
		}
	}
	return nil
}

// Methods returns the method catalog in display order.
// The slice and its tags are copies; callers may modify them freely.
func Methods() []Method {
	out := make([]Method, len(methods))
	for i, m := range methods {
		out[i] = m.clone()
	}
	return out
}

// Questions returns the questionnaire in the order it is asked
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = q.clone()
	}
	return out
}

// MethodByID looks up a method by id
func MethodByID(id string) (Method, bool) {
	i, ok := methodIndex[id]
	if !ok {
		return Method{}, false
	}
	return methods[i].clone(), true
}

// QuestionByID looks up a question by id
func QuestionByID(id string) (Question, bool) {
	i, ok := questionIndex[id]
	if !ok {
		return Question{}, false
	}
	return questions[i].clone(), true
}

// MethodIDs returns method ids in catalog order
func MethodIDs() []string {
	ids := make([]string, len(methods))
	for i, m := range methods {
		ids[i] = m.ID
	}
	return ids
}

func (m Method) clone() Method {
	m.Tags = append([]string(nil), m.Tags...)
	return m
}

func (q Question) clone() Question {
	q.Options = append([]Option(nil), q.Options...)
	if q.Min != nil {
		v := *q.Min
		q.Min = &v
	}
	if q.Max != nil {
		v := *q.Max
		q.Max = &v
	}
	return q
}
