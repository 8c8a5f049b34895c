// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package walker steps through the questionnaire one question at a time.

Progress is a plain State value (current step + answers) that callers own
and pass back in:

	s := walker.New()
	s, err := walker.Answer(s, "no")      // pregnant
	s, err = walker.Answer(s, "bf_lt6w")  // postpartum
	s, err = walker.Answer(s, "34")       // age
	s = walker.Back(s)

Answer validates input for the current question before storing it:
single-choice values must be one of the option tokens, numbers must parse
and sit within the question's min/max. Validation uses
go-playground/validator. Errors wrap ErrNoAnswer, ErrInvalidOption,
ErrNotNumber, ErrOutOfRange or ErrComplete.

Once Complete reports true, State.Answers is ready for engine.Evaluate.

Answer sets that arrive all at once (an HTTP body, a file) go through
CheckAll, which applies the same checks per question and rejects ids that
are not in the questionnaire with ErrUnknownQuestion.
*/
package walker
