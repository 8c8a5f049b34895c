// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package present formats engine output for people.

Build groups results into display cards, one Group per status:

	rep := present.Build(engine.Evaluate(answers, catalog.Methods()))
	present.WriteText(os.Stdout, rep, present.DefaultStyles())

A card shows the first two tags and up to four reasons. When no rule
produced a reason the card falls back to the method's base notes.
*/
package present
