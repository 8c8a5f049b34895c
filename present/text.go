// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/danielhkuo/mycontraception/engine"
)

// Styles controls how WriteText renders each part of a report
type Styles struct {
	Heading map[engine.Status]lipgloss.Style
	Name    lipgloss.Style
	Tag     lipgloss.Style
	Note    lipgloss.Style
	Muted   lipgloss.Style
	Pill    lipgloss.Style
}

// DefaultStyles colours headings by status
func DefaultStyles() Styles {
	return Styles{
		Heading: map[engine.Status]lipgloss.Style{
			engine.Recommended: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
			engine.Caution:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFB300")),
			engine.Avoid:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E53935")),
		},
		Name:  lipgloss.NewStyle().Bold(true),
		Tag:   lipgloss.NewStyle().Foreground(lipgloss.Color("#3FE3FF")),
		Note:  lipgloss.NewStyle().PaddingLeft(4),
		Muted: lipgloss.NewStyle().Faint(true).PaddingLeft(2),
		Pill:  lipgloss.NewStyle().Bold(true),
	}
}

// PlainStyles renders without any formatting
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Heading: map[engine.Status]lipgloss.Style{},
		Name:    plain,
		Tag:     plain,
		Note:    plain.PaddingLeft(4),
		Muted:   plain.PaddingLeft(2),
		Pill:    plain,
	}
}

// WriteText writes a report as terminal text
func WriteText(w io.Writer, rep Report, st Styles) error {
	var b strings.Builder

	for _, g := range rep.Groups {
		heading, ok := st.Heading[g.Status]
		if !ok {
			heading = lipgloss.NewStyle()
		}
		fmt.Fprintf(&b, "%s (%d)\n", heading.Render(g.Title), len(g.Cards))
		if len(g.Cards) == 0 {
			b.WriteString(st.Muted.Render(g.Empty) + "\n\n")
			continue
		}
		for _, c := range g.Cards {
			fmt.Fprintf(&b, "  %s  %s\n", st.Name.Render(c.Name), st.Tag.Render("["+c.TagLine+"]"))
			b.WriteString(st.Note.Render(c.BaseNotes) + "\n")
			if c.HasReasons {
				for _, n := range c.Notes {
					b.WriteString(st.Note.Render("- "+n) + "\n")
				}
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s recommended · %s caution · %s avoid\n",
		st.Pill.Render(fmt.Sprint(rep.Counts.Recommended)),
		st.Pill.Render(fmt.Sprint(rep.Counts.Caution)),
		st.Pill.Render(fmt.Sprint(rep.Counts.Avoid)),
	)
	b.WriteString(rep.Footer + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}
