// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package present

import (
	"strings"

	"github.com/danielhkuo/mycontraception/engine"
)

const (
	maxTags  = 2
	maxNotes = 4

	EmptyGroup   = "No methods in this category based on answers."
	Footer       = "STI protection: condoms recommended when needed"
	TagSeparator = " • "
)

// Card is the display form of one method result.
// Notes holds up to four reasons, or the base notes when no rule fired.
type Card struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Status       engine.Status `json:"status"`
	TagLine      string        `json:"tag_line"`
	BaseNotes    string        `json:"base_notes"`
	Notes        []string      `json:"notes"`
	HasReasons   bool          `json:"has_reasons"`
	ReasonsTotal int           `json:"reasons_total"`
}

// Group is one status section of a report
type Group struct {
	Status engine.Status `json:"status"`
	Title  string        `json:"title"`
	Cards  []Card        `json:"cards"`
	Empty  string        `json:"empty,omitempty"`
}

// Report is everything needed to display an evaluation
type Report struct {
	Groups []Group       `json:"groups"`
	Counts engine.Counts `json:"counts"`
	Footer string        `json:"footer"`
}

// Build turns an evaluation into display cards, keeping the engine's order
func Build(ev engine.Evaluation) Report {
	rep := Report{Counts: ev.Counts, Footer: Footer}
	for _, s := range engine.Statuses {
		g := Group{Status: s, Title: title(s), Cards: []Card{}}
		for _, r := range ev.Group(s) {
			g.Cards = append(g.Cards, NewCard(r))
		}
		if len(g.Cards) == 0 {
			g.Empty = EmptyGroup
		}
		rep.Groups = append(rep.Groups, g)
	}
	return rep
}

// NewCard builds the card for a single result
func NewCard(r engine.Result) Card {
	c := Card{
		ID:           r.Method.ID,
		Name:         r.Method.Name,
		Status:       r.Status,
		TagLine:      TagLine(r.Method.Tags),
		BaseNotes:    r.Method.BaseNotes,
		HasReasons:   len(r.Reasons) > 0,
		ReasonsTotal: len(r.Reasons),
	}
	if c.HasReasons {
		n := min(len(r.Reasons), maxNotes)
		c.Notes = append([]string{}, r.Reasons[:n]...)
	} else {
		c.Notes = []string{r.Method.BaseNotes}
	}
	return c
}

// TagLine joins the first two tags for display
func TagLine(tags []string) string {
	return strings.Join(tags[:min(len(tags), maxTags)], TagSeparator)
}

func title(s engine.Status) string {
	switch s {
	case engine.Recommended:
		return "Recommended"
	case engine.Caution:
		return "Use with caution"
	default:
		return "Avoid"
	}
}
