// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the static method and question definitions.

# Data

Both lists are declared in embedded YAML and decoded once at init:

  - methods.yaml: id, name, tags, base_notes, estrogen, hormonal
  - questions.yaml: id, title, help, type, options or min/max

A malformed file or a broken invariant (duplicate id, min > max,
single-choice question without options) panics at init.

# Access

	for _, m := range catalog.Methods() {
		fmt.Println(m.ID, m.Name)
	}

	q, ok := catalog.QuestionByID("age")

Accessors return copies. The catalog itself never changes at runtime.
*/
package catalog
