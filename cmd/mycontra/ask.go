// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/mycontraception/catalog"
	"github.com/danielhkuo/mycontraception/engine"
	"github.com/danielhkuo/mycontraception/present"
	"github.com/danielhkuo/mycontraception/walker"
)

var errQuit = errors.New("questionnaire stopped")

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask",
		Short: "Answer the questionnaire interactively",
		Long: "Asks each question in turn. Enter an option number or value, or a number for numeric " +
			"questions. Commands: b (back), r (start over), q (quit). An empty line keeps the previous answer.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := styles(cmd)
			state, err := ask(cmd.InOrStdin(), cmd.OutOrStdout(), st)
			if errors.Is(err, errQuit) {
				fmt.Fprintln(cmd.OutOrStdout(), "Stopped.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			ev := engine.Evaluate(state.Answers, catalog.Methods())
			return writeEvaluation(cmd, state.Answers, ev)
		},
	}
}

// ask walks the questionnaire until every question is answered
func ask(in io.Reader, out io.Writer, st present.Styles) (walker.State, error) {
	scanner := bufio.NewScanner(in)
	s := walker.New()

	for !walker.Complete(s) {
		q, _ := walker.Current(s)
		prev, hasPrev := walker.Previous(s)
		printQuestion(out, st, s, q, prev, hasPrev)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return s, fmt.Errorf("failed to read answer: %w", err)
			}
			return s, io.ErrUnexpectedEOF
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "b", "back":
			s = walker.Back(s)
			continue
		case "r", "reset":
			s = walker.Reset()
			continue
		case "q", "quit":
			return s, errQuit
		}

		var value any = resolveOption(q, line)
		if line == "" && hasPrev {
			value = prev
		}

		next, err := walker.Answer(s, value)
		if err != nil {
			fmt.Fprintf(out, "  %s\n", st.Muted.Render(err.Error()))
			continue
		}
		s = next
	}
	return s, nil
}

func printQuestion(out io.Writer, st present.Styles, s walker.State, q catalog.Question, prev any, hasPrev bool) {
	p := walker.GetProgress(s)
	fmt.Fprintf(out, "\nQuestion %d of %d (%d%%)\n", p.Current, p.Total, p.Percent)
	fmt.Fprintln(out, st.Name.Render(q.Title))
	if q.Help != "" {
		fmt.Fprintln(out, st.Muted.Render(q.Help))
	}

	switch q.Type {
	case catalog.TypeSingle:
		for i, opt := range q.Options {
			line := fmt.Sprintf("  %d) %s", i+1, opt.Label)
			if opt.Desc != "" {
				line += " - " + opt.Desc
			}
			fmt.Fprintln(out, line)
		}
	case catalog.TypeNumber:
		fmt.Fprintf(out, "  %s (%s)\n", q.Placeholder, numberRange(q))
	}

	if hasPrev {
		fmt.Fprintf(out, "  previous answer: %v\n", prev)
	}
	fmt.Fprint(out, "> ")
}

// resolveOption maps an option number to its value for single-choice
// questions. Anything else is passed through for the walker to check.
func resolveOption(q catalog.Question, line string) string {
	if q.Type != catalog.TypeSingle {
		return line
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(q.Options) {
		return line
	}
	return q.Options[n-1].Value
}
