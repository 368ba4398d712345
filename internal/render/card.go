// Package render reconciles the set of job cards shown on screen against the
// desired visible sequence with a minimal add/remove diff.
package render

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/ruminaider/job-browser/internal/jobs"
)

// CardView is the presentation-ready form of a job record. It is built fresh
// for every inserted node and carries no reference back to the record.
type CardView struct {
	ID         int
	Title      string
	Company    string
	Location   string
	Type       string
	Experience string
	Salary     string
	Tags       []string
}

// Card builds the view for one record.
func Card(r jobs.Record) CardView {
	return CardView{
		ID:         r.ID,
		Title:      orDash(r.Role),
		Company:    orDash(r.Company),
		Location:   orDash(r.Location),
		Type:       r.Type,
		Experience: orDash(r.Experience),
		Salary:     FormatCTC(r.CTC),
		Tags:       append([]string(nil), r.Technologies...),
	}
}

// FormatCTC renders an annual compensation figure. Whole values print without
// decimals, large values get thousands separators.
func FormatCTC(v float64) string {
	s := humanize.CommafWithDigits(v, 2)
	return "CTC " + s
}

// TagLine joins the tags for single-line display.
func (c CardView) TagLine() string {
	return strings.Join(c.Tags, " · ")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
