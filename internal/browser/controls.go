package browser

import (
	"math"

	"github.com/ruminaider/job-browser/internal/filter"
	"github.com/ruminaider/job-browser/internal/jobs"
)

// All is the sentinel option meaning "no restriction" in single-selects.
const All = "All"

// Controls is what the filter form is populated from.
type Controls struct {
	Roles        []string     // All first, then distinct roles
	Technologies []string     // distinct technology tags
	Experience   []string     // All first, then distinct labels
	CTCBounds    filter.Range // observed data bounds
	CTCStep      float64
	Populated    bool
}

// OptionValue maps a single-select option to a filter value; the All sentinel
// becomes the empty (unset) value.
func OptionValue(opt string) string {
	if opt == All {
		return ""
	}
	return opt
}

// OptionLabel is the inverse of OptionValue.
func OptionLabel(value string) string {
	if value == "" {
		return All
	}
	return value
}

func controlsFor(f jobs.Facets) Controls {
	if f.Empty() {
		return Controls{}
	}
	bounds := filter.Range{Min: f.MinCTC, Max: f.MaxCTC}
	return Controls{
		Roles:        append([]string{All}, f.Roles...),
		Technologies: append([]string(nil), f.Technologies...),
		Experience:   append([]string{All}, f.Experience...),
		CTCBounds:    bounds,
		CTCStep:      rangeStep(bounds),
		Populated:    true,
	}
}

// rangeStep picks a 1/2/5 x 10^k increment giving roughly twenty stops
// across the bounds.
func rangeStep(r filter.Range) float64 {
	span := r.Max - r.Min
	if span <= 0 {
		return 1
	}
	raw := span / 20
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5} {
		if raw <= m*mag {
			return m * mag
		}
	}
	return 10 * mag
}
