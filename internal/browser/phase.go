package browser

import "github.com/ruminaider/job-browser/internal/render"

// Phase is the state of the rendering surface.
//
//	Empty -> Loading -> Populated <-> Updating
//	Populated -> NoResults -> Populated
//	Loading -> Error (terminal)
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseLoading
	PhasePopulated
	PhaseUpdating
	PhaseNoResults
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseLoading:
		return "loading"
	case PhasePopulated:
		return "populated"
	case PhaseUpdating:
		return "updating"
	case PhaseNoResults:
		return "no-results"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Interactive reports whether filter and scroll input is accepted.
func (p Phase) Interactive() bool {
	return p == PhasePopulated || p == PhaseUpdating || p == PhaseNoResults
}

// Placeholder returns the slot shown alongside (or instead of) the cards.
func (p Phase) Placeholder() render.Placeholder {
	switch p {
	case PhaseLoading:
		return render.PlaceholderInitialLoading
	case PhaseUpdating:
		return render.PlaceholderBatchLoading
	case PhaseNoResults:
		return render.PlaceholderNoResults
	case PhaseError:
		return render.PlaceholderError
	default:
		return render.PlaceholderNone
	}
}
