// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// AnswerSet maps question id to the raw answer: an option token for
// single-choice questions, a number for numeric ones.
type AnswerSet map[string]any

// Postpartum timing
type Postpartum string

const (
	NotPostpartum             Postpartum = "no"
	BreastfeedingUnder6Weeks  Postpartum = "bf_lt6w"
	Breastfeeding6WeeksPlus   Postpartum = "bf_ge6w"
	NotBreastfeedingUnder3Wks Postpartum = "nb_lt3w"
	NotBreastfeeding3WksPlus  Postpartum = "nb_ge3w"
)

// Smoking level
type Smoking string

const (
	NonSmoker   Smoking = "no"
	LightSmoker Smoking = "yes_lt15" // < 15 cigarettes/day
	HeavySmoker Smoking = "yes_ge15" // >= 15 cigarettes/day
)

// Preference is what matters most to the user
type Preference string

const (
	NoPreference   Preference = ""
	LowMaintenance Preference = "low_maintenance"
	NonHormonal    Preference = "non_hormonal"
	CycleControl   Preference = "cycle_control"
	FastFertility  Preference = "reversible_fast"
)

// Answers is the typed form of an AnswerSet. Zero value means every
// question was answered negatively.
type Answers struct {
	Pregnant        bool
	Postpartum      Postpartum
	Age             float64
	Smoking         Smoking
	MigraineAura    bool
	VTEHistory      bool
	BreastCancer    bool
	SevereLiver     bool
	UncontrolledHTN bool
	DiabetesMicro   bool
	CVDisease       bool
	EnzymeInducers  bool
	Weight90        bool
	Preference      Preference
}

// ParseAnswers converts raw answers into Answers.
// Missing or unrecognised values fall back to the negative default.
func ParseAnswers(set AnswerSet) Answers {
	a := Answers{
		Pregnant:        set.yes("pregnant"),
		Postpartum:      NotPostpartum,
		Age:             set.number("age"),
		Smoking:         NonSmoker,
		MigraineAura:    set.yes("migraine_aura"),
		VTEHistory:      set.yes("vte_history"),
		BreastCancer:    set.yes("breast_cancer"),
		SevereLiver:     set.yes("severe_liver"),
		UncontrolledHTN: set.yes("uncontrolled_htn"),
		DiabetesMicro:   set.yes("diabetes_micro"),
		CVDisease:       set.yes("cv_disease"),
		EnzymeInducers:  set.yes("enzyme_inducers"),
		Weight90:        set.yes("weight90"),
		Preference:      NoPreference,
	}

	switch p := Postpartum(set.token("postpartum")); p {
	case BreastfeedingUnder6Weeks, Breastfeeding6WeeksPlus, NotBreastfeedingUnder3Wks, NotBreastfeeding3WksPlus:
		a.Postpartum = p
	}
	switch s := Smoking(set.token("smoking")); s {
	case LightSmoker, HeavySmoker:
		a.Smoking = s
	}
	switch p := Preference(set.token("preferences")); p {
	case LowMaintenance, NonHormonal, CycleControl, FastFertility:
		a.Preference = p
	}
	return a
}

// Set converts typed answers back to their raw form.
// ParseAnswers(a.Set()) == a for any a returned by ParseAnswers.
func (a Answers) Set() AnswerSet {
	yn := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}
	set := AnswerSet{
		"pregnant":         yn(a.Pregnant),
		"postpartum":       string(a.Postpartum),
		"age":              a.Age,
		"smoking":          string(a.Smoking),
		"migraine_aura":    yn(a.MigraineAura),
		"vte_history":      yn(a.VTEHistory),
		"breast_cancer":    yn(a.BreastCancer),
		"severe_liver":     yn(a.SevereLiver),
		"uncontrolled_htn": yn(a.UncontrolledHTN),
		"diabetes_micro":   yn(a.DiabetesMicro),
		"cv_disease":       yn(a.CVDisease),
		"enzyme_inducers":  yn(a.EnzymeInducers),
		"weight90":         yn(a.Weight90),
	}
	if set["postpartum"] == "" {
		set["postpartum"] = string(NotPostpartum)
	}
	if set["smoking"] == "" {
		set["smoking"] = string(NonSmoker)
	}
	if a.Preference != NoPreference {
		set["preferences"] = string(a.Preference)
	}
	return set
}

// HasEstrogenContraindication reports whether any absolute contraindication
// to estrogen-containing methods is present.
func (a Answers) HasEstrogenContraindication() bool {
	return a.MigraineAura ||
		a.VTEHistory ||
		a.CVDisease ||
		a.UncontrolledHTN ||
		a.DiabetesMicro ||
		a.SevereLiver ||
		a.BreastCancer
}

func (s AnswerSet) token(id string) string {
	v, ok := s[id].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

func (s AnswerSet) yes(id string) bool {
	return s.token(id) == "yes"
}

func (s AnswerSet) number(id string) float64 {
	var f float64
	switch v := s[id].(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case int32:
		f = float64(v)
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = n
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
