package filter

import "fmt"

// Range is an inclusive compensation range. The zero value {0, 0} means
// "unset" and matches every record.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// IsUnset reports whether r is the {0, 0} sentinel.
func (r Range) IsUnset() bool {
	return r.Min == 0 && r.Max == 0
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// SetMin moves the lower handle. If it passes the upper handle the upper
// handle follows so the range stays valid.
func (r Range) SetMin(v float64) Range {
	r.Min = v
	if r.Max < r.Min {
		r.Max = r.Min
	}
	return r
}

// SetMax moves the upper handle, pulling the lower handle down with it when
// needed.
func (r Range) SetMax(v float64) Range {
	r.Max = v
	if r.Min > r.Max {
		r.Min = r.Max
	}
	return r
}

// Normalize swaps inverted bounds.
func (r Range) Normalize() Range {
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	return r
}

// Within clamps both handles into bounds. An unset bounds value leaves r
// untouched.
func (r Range) Within(bounds Range) Range {
	if bounds.IsUnset() {
		return r
	}
	bounds = bounds.Normalize()
	clamp := func(v float64) float64 {
		if v < bounds.Min {
			return bounds.Min
		}
		if v > bounds.Max {
			return bounds.Max
		}
		return v
	}
	r.Min = clamp(r.Min)
	r.Max = clamp(r.Max)
	return r.Normalize()
}

// Equal reports whether both handles match.
func (r Range) Equal(o Range) bool {
	return r.Min == o.Min && r.Max == o.Max
}

func (r Range) String() string {
	if r.IsUnset() {
		return "any"
	}
	return fmt.Sprintf("%g-%g", r.Min, r.Max)
}
