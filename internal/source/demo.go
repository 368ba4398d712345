package source

import (
	"context"
	_ "embed"

	"github.com/ruminaider/job-browser/internal/apperr"
	"github.com/ruminaider/job-browser/internal/jobs"
)

// DemoLocation selects the bundled sample listings.
const DemoLocation = "demo"

//go:embed demo.json
var demoJSON []byte

// Demo serves the bundled sample listings.
type Demo struct{}

func (Demo) String() string { return DemoLocation }

// Load implements Source.
func (Demo) Load(ctx context.Context) ([]jobs.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.LoadFailure("loading cancelled", err)
	}
	records, err := jobs.Parse(demoJSON)
	if err != nil {
		return nil, apperr.Internal("decoding bundled listings", err)
	}
	return records, nil
}
