// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/mycontraception/catalog"
	"github.com/danielhkuo/mycontraception/engine"
	"github.com/danielhkuo/mycontraception/present"
)

var idColumn = lipgloss.NewStyle().Width(20)

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List contraceptive methods in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			methods := catalog.Methods()
			if wantJSON(cmd) {
				return writeJSON(cmd, methods)
			}
			st := styles(cmd)
			out := cmd.OutOrStdout()
			for _, m := range methods {
				fmt.Fprintf(out, "%s%s  %s\n",
					idColumn.Render(m.ID),
					st.Name.Render(m.Name),
					st.Tag.Render("["+strings.Join(m.Tags, present.TagSeparator)+"]"),
				)
			}
			return nil
		},
	}
}

func newQuestionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "List questionnaire items in the order they are asked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			questions := catalog.Questions()
			if wantJSON(cmd) {
				return writeJSON(cmd, questions)
			}
			st := styles(cmd)
			out := cmd.OutOrStdout()
			for i, q := range questions {
				fmt.Fprintf(out, "%2d. %s%s\n", i+1, idColumn.Render(q.ID), st.Name.Render(q.Title))
				switch q.Type {
				case catalog.TypeSingle:
					fmt.Fprintf(out, "    %s\n", st.Muted.Render(strings.Join(q.OptionValues(), " | ")))
				case catalog.TypeNumber:
					fmt.Fprintf(out, "    %s\n", st.Muted.Render(numberRange(q)))
				}
			}
			return nil
		},
	}
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List evaluation rules in the order they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := engine.Rules()
			if wantJSON(cmd) {
				type rule struct {
					ID      string `json:"id"`
					Summary string `json:"summary"`
				}
				out := make([]rule, len(rules))
				for i, r := range rules {
					out[i] = rule{ID: r.ID, Summary: r.Summary}
				}
				return writeJSON(cmd, out)
			}
			idStyle := idColumn.Width(28)
			for i, r := range rules {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s%s\n", i+1, idStyle.Render(r.ID), r.Summary)
			}
			return nil
		},
	}
}

func numberRange(q catalog.Question) string {
	switch {
	case q.Min != nil && q.Max != nil:
		return fmt.Sprintf("number %g-%g", *q.Min, *q.Max)
	case q.Min != nil:
		return fmt.Sprintf("number >= %g", *q.Min)
	case q.Max != nil:
		return fmt.Sprintf("number <= %g", *q.Max)
	}
	return "number"
}
