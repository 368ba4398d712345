package render

// Placeholder names the non-card slot shown on the surface.
type Placeholder int

const (
	PlaceholderNone Placeholder = iota
	PlaceholderInitialLoading
	PlaceholderBatchLoading
	PlaceholderNoResults
	PlaceholderError
)

func (p Placeholder) String() string {
	switch p {
	case PlaceholderNone:
		return "none"
	case PlaceholderInitialLoading:
		return "initial-loading"
	case PlaceholderBatchLoading:
		return "batch-loading"
	case PlaceholderNoResults:
		return "no-results"
	case PlaceholderError:
		return "error"
	default:
		return "unknown"
	}
}
