// Package filter implements the job filter chain: four independent
// AND-predicates applied in a fixed order over the loaded record set.
package filter

import (
	"strings"

	"github.com/ruminaider/job-browser/internal/jobs"
)

// State holds the user's filter selections. Empty fields are unset.
type State struct {
	Role         string
	Technologies []string
	Experience   string
	CTC          Range
}

// IsZero reports whether every criterion is unset.
func (s State) IsZero() bool {
	return s.Role == "" && len(s.Technologies) == 0 && s.Experience == "" && s.CTC.IsUnset()
}

// Reset returns a state with every criterion unset except the compensation
// range, which is set to the data bounds. Passing the zero Range yields the
// zero State.
func Reset(bounds Range) State {
	return State{CTC: bounds}
}

// Equal reports whether two states select the same records by construction.
func (s State) Equal(o State) bool {
	if s.Role != o.Role || s.Experience != o.Experience || !s.CTC.Equal(o.CTC) {
		return false
	}
	if len(s.Technologies) != len(o.Technologies) {
		return false
	}
	for i := range s.Technologies {
		if s.Technologies[i] != o.Technologies[i] {
			return false
		}
	}
	return true
}

// Summary returns a short human-readable description of the active criteria.
func (s State) Summary() string {
	var parts []string
	if s.Role != "" {
		parts = append(parts, "role="+s.Role)
	}
	if len(s.Technologies) > 0 {
		parts = append(parts, "tech="+strings.Join(s.Technologies, "+"))
	}
	if s.Experience != "" {
		parts = append(parts, "exp="+s.Experience)
	}
	if !s.CTC.IsUnset() {
		parts = append(parts, "ctc="+s.CTC.String())
	}
	if len(parts) == 0 {
		return "no filters"
	}
	return strings.Join(parts, " ")
}

// Predicate filters records for one criterion. It must not modify its input
// and returns a new slice.
type Predicate func(records []jobs.Record, s State) []jobs.Record

// Chain is the fixed evaluation order. The predicates are commutative; the
// order only keeps results deterministic.
var Chain = []Predicate{ByRole, ByTechnologies, ByExperience, ByCTC}

// Apply runs the full chain and returns the matching records in their
// original relative order.
func Apply(records []jobs.Record, s State) []jobs.Record {
	out := passAll(records)
	for _, p := range Chain {
		out = p(out, s)
	}
	return out
}

// ByRole keeps records whose role equals s.Role exactly.
func ByRole(records []jobs.Record, s State) []jobs.Record {
	if s.Role == "" {
		return passAll(records)
	}
	return keep(records, func(r jobs.Record) bool { return r.Role == s.Role })
}

// ByTechnologies keeps records carrying every selected technology.
func ByTechnologies(records []jobs.Record, s State) []jobs.Record {
	if len(s.Technologies) == 0 {
		return passAll(records)
	}
	return keep(records, func(r jobs.Record) bool {
		for _, t := range s.Technologies {
			if !r.HasTechnology(t) {
				return false
			}
		}
		return true
	})
}

// ByExperience matches the experience label as an opaque string.
func ByExperience(records []jobs.Record, s State) []jobs.Record {
	if s.Experience == "" {
		return passAll(records)
	}
	return keep(records, func(r jobs.Record) bool { return r.Experience == s.Experience })
}

// ByCTC keeps records whose compensation lies within s.CTC inclusive.
func ByCTC(records []jobs.Record, s State) []jobs.Record {
	if s.CTC.IsUnset() {
		return passAll(records)
	}
	return keep(records, func(r jobs.Record) bool { return s.CTC.Contains(r.CTC) })
}

func passAll(records []jobs.Record) []jobs.Record {
	return append([]jobs.Record(nil), records...)
}

func keep(records []jobs.Record, ok func(jobs.Record) bool) []jobs.Record {
	out := make([]jobs.Record, 0, len(records))
	for _, r := range records {
		if ok(r) {
			out = append(out, r)
		}
	}
	return out
}
