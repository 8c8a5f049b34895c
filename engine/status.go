// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "fmt"

// Status is a method classification, ordered by severity:
// Recommended < Caution < Avoid.
type Status int

const (
	Recommended Status = iota
	Caution
	Avoid
)

// Statuses lists every status in severity order
var Statuses = []Status{Recommended, Caution, Avoid}

// Merge returns the more severe of two statuses.
// Applying a status always goes through Merge, so Avoid can never be undone.
func Merge(a, b Status) Status {
	if b > a {
		return b
	}
	return a
}

func (s Status) String() string {
	switch s {
	case Recommended:
		return "recommended"
	case Caution:
		return "caution"
	case Avoid:
		return "avoid"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ParseStatus is the inverse of String
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if st.String() == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", s)
}

func (s Status) MarshalText() ([]byte, error) {
	if s < Recommended || s > Avoid {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	st, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}
