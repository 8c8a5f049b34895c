// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/mycontraception/catalog"
	"github.com/danielhkuo/mycontraception/engine"
	"github.com/danielhkuo/mycontraception/walker"
)

func newEvaluateCmd() *cobra.Command {
	var answersPath string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate answers read from a YAML or JSON file",
		Long: "Reads an answer set (question id to value) and prints the grouped methods. " +
			"Unanswered questions count as no. Use --answers - to read YAML or JSON from stdin.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := readAnswers(answersPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			answers, err := walker.CheckAll(raw)
			if err != nil {
				return fmt.Errorf("invalid answers in %s: %w", answersPath, err)
			}
			ev := engine.Evaluate(answers, catalog.Methods())
			return writeEvaluation(cmd, answers, ev)
		},
	}

	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", "Answers file (.yaml, .yml, .json, or - for stdin)")
	if err := cmd.MarkFlagRequired("answers"); err != nil {
		panic(fmt.Sprintf("failed to mark answers flag as required: %v", err))
	}
	return cmd
}

// readAnswers decodes an answer file. JSON files keep numbers as
// json.Number; everything else is parsed as YAML, which also accepts JSON.
func readAnswers(path string, stdin io.Reader) (engine.AnswerSet, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read answers: %w", err)
	}

	answers := engine.AnswerSet{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		dec := json.NewDecoder(strings.NewReader(string(data)))
		dec.UseNumber()
		if err := dec.Decode(&answers); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return answers, nil
	}

	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return answers, nil
}
