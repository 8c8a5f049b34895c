// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command mycontra runs the contraception questionnaire from a terminal.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/mycontraception/auth"
	"github.com/danielhkuo/mycontraception/engine"
	"github.com/danielhkuo/mycontraception/models"
	"github.com/danielhkuo/mycontraception/present"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mycontra",
		Short: "Educational contraception questionnaire",
		Long: "mycontra asks the questionnaire or reads answers from a file and groups each " +
			"contraceptive method into recommended, use with caution, or avoid. " +
			"Educational only; not medical advice.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("plain", false, "Disable colours and text styling")
	root.PersistentFlags().Bool("json", false, "Print JSON instead of text")

	root.AddCommand(
		newMethodsCmd(),
		newQuestionsCmd(),
		newRulesCmd(),
		newEvaluateCmd(),
		newAskCmd(),
	)
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func styles(cmd *cobra.Command) present.Styles {
	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		return present.PlainStyles()
	}
	return present.DefaultStyles()
}

func wantJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeEvaluation prints an evaluation as a report, or as the same JSON
// the HTTP API returns from POST /evaluate.
func writeEvaluation(cmd *cobra.Command, answers engine.AnswerSet, ev engine.Evaluation) error {
	rep := present.Build(ev)
	if !wantJSON(cmd) {
		return present.WriteText(cmd.OutOrStdout(), rep, styles(cmd))
	}

	hash, err := auth.HashAnswers(engine.ParseAnswers(answers).Set())
	if err != nil {
		return err
	}
	return writeJSON(cmd, models.EvaluationResponse{
		InputsHash: hash,
		ComputedAt: time.Now().UTC(),
		Report:     rep,
		Results:    ev.Results,
	})
}
