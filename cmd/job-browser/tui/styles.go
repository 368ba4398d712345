package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// SidebarWidth is the fixed width of the filter sidebar.
const SidebarWidth = 30

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorMantle   = lipgloss.Color(flavor.Mantle().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorPeach    = lipgloss.Color(flavor.Peach().Hex)
	colorTeal     = lipgloss.Color(flavor.Teal().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Sidebar styles.
var (
	// ActiveSidebarStyle is used for the highlighted filter section.
	ActiveSidebarStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Background(colorSurface1).
				Bold(true).
				PaddingLeft(1)

	// InactiveSidebarStyle is used for the other sections.
	InactiveSidebarStyle = lipgloss.NewStyle().
				Foreground(colorText).
				PaddingLeft(1)

	// UnavailableSidebarStyle is used when no options were loaded.
	UnavailableSidebarStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0).
				PaddingLeft(1)

	// SidebarValueStyle renders the current selection under a section name.
	SidebarValueStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0).
				PaddingLeft(3)

	SidebarContainerStyle = lipgloss.NewStyle().
				Width(SidebarWidth).
				BorderRight(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorSurface1)
)

// Card styles.
var (
	CardTitleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	CardSalaryStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	CardMetaStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	CardTagStyle = lipgloss.NewStyle().
			Foreground(colorTeal)

	// EnteringCardStyle dims a card that has not been revealed yet.
	EnteringCardStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0)

	// LeavingCardStyle marks a card that is about to be detached.
	LeavingCardStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Faint(true).
				Strikethrough(true)

	CardGutterStyle = lipgloss.NewStyle().
			Foreground(colorMauve)
)

// Placeholder styles.
var (
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0).
				Italic(true).
				PaddingLeft(2)

	ErrorPlaceholderStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Bold(true).
				PaddingLeft(2)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(colorPeach)

	DimStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)
)

// Content pane styles.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	UnselectedStyle = lipgloss.NewStyle().
			Foreground(colorText)

	ContentPaneStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)
)

// Status bar styles.
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)
)

// Overlay styles.
var (
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Background(colorMantle).
			Foreground(colorText).
			Padding(1, 2)

	OverlayTitleStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	OverlayButtonActiveStyle = lipgloss.NewStyle().
					Foreground(colorBase).
					Background(colorBlue).
					Padding(0, 2)

	OverlayButtonInactiveStyle = lipgloss.NewStyle().
					Foreground(colorText).
					Background(colorSurface1).
					Padding(0, 2)

	OverlayChoiceCursorStyle = lipgloss.NewStyle().
					Foreground(colorBlue).
					Bold(true)

	OverlayScrollHintStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0)

	// RangeTrackStyle and RangeFillStyle draw the compensation slider.
	RangeTrackStyle = lipgloss.NewStyle().
			Foreground(colorSurface1)

	RangeFillStyle = lipgloss.NewStyle().
			Foreground(colorBlue)
)
