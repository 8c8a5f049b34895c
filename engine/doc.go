// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine classifies contraceptive methods from questionnaire answers.

# Evaluation

	ev := engine.Evaluate(answers, catalog.Methods())
	for _, r := range ev.Avoid {
		fmt.Println(r.Method.Name, r.Reasons)
	}

Every method starts as Recommended with no reasons. Rules then run in a
fixed order (see Rules) and call three primitives on a per-run ResultSet:

  - MarkAvoid: status becomes Avoid
  - MarkCaution: status becomes Caution unless already Avoid
  - Annotate: reason only, status unchanged

All three go through Merge, so a status can only get more severe within a
run. Reasons are appended in rule order, even when the status does not move.

# Output

Results are partitioned into Recommended, Caution and Avoid. Each group is
stably sorted by number of reasons, descending, so catalog order decides
ties. Counts gives the size of each group.

# Answers

AnswerSet is the raw question id → value map kept by the questionnaire.
ParseAnswers turns it into the typed Answers record. Anything missing or
unrecognised becomes the negative answer, so partial answer sets evaluate
without error.

# Unknown Methods

A rule that names a method absent from the evaluated catalog is logged and
skipped by Evaluate. EvaluateStrict reports it as ErrUnknownMethod instead.

Evaluation has no I/O and no shared state; the same inputs always give the
same output.
*/
package engine
