package tui

import (
	"github.com/ruminaider/job-browser/internal/filter"
	"github.com/ruminaider/job-browser/internal/jobs"
)

// FocusZone identifies which component currently has keyboard focus.
type FocusZone int

const (
	FocusSidebar FocusZone = iota // filter sections
	FocusList                     // job cards
)

// Section identifies a filter section in the sidebar.
type Section int

const (
	SectionRole Section = iota
	SectionTechnologies
	SectionExperience
	SectionCompensation
	SectionReset
)

// String returns the display name for a section.
func (s Section) String() string {
	switch s {
	case SectionRole:
		return "Role"
	case SectionTechnologies:
		return "Technologies"
	case SectionExperience:
		return "Experience"
	case SectionCompensation:
		return "Compensation"
	case SectionReset:
		return "Reset filters"
	default:
		return "Unknown"
	}
}

// AllSections lists every section in sidebar display order.
var AllSections = []Section{
	SectionRole,
	SectionTechnologies,
	SectionExperience,
	SectionCompensation,
	SectionReset,
}

// --- Inter-component messages ---

// SectionSwitchMsg is sent when the sidebar active section changes.
type SectionSwitchMsg struct{ Section Section }

// OpenSectionMsg asks the root to open the editor for a section.
type OpenSectionMsg struct{ Section Section }

// FocusChangeMsg requests a focus zone transition.
type FocusChangeMsg struct{ Zone FocusZone }

// OverlayCloseMsg is emitted when any overlay is dismissed.
type OverlayCloseMsg struct {
	Result    string       // choice overlays
	Results   []string     // multi-choice overlays
	Range     filter.Range // range overlays
	Confirmed bool         // true = OK/Enter, false = Esc
}

// LoadedMsg carries the fetched record set.
type LoadedMsg struct{ Records []jobs.Record }

// LoadFailedMsg reports a failed fetch.
type LoadFailedMsg struct{ Err error }

// TickMsg fires a scheduled callback.
type TickMsg struct{ ID int }
