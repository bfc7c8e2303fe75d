package validate

import "github.com/charmbracelet/lipgloss"

// Transparent is the zero color: lipgloss renders it as "no color set".
// An unset valid/invalid color therefore leaves the border unpainted
// rather than failing.
const Transparent = lipgloss.Color("")

// Style is the construction-time border configuration of an Input.
// With HasBorder false the input carries no border and color
// transitions are not tracked.
type Style struct {
	HasBorder    bool
	BorderColor  lipgloss.Color // base color before any transition
	ValidColor   lipgloss.Color
	InvalidColor lipgloss.Color
	CornerRadius float64 // > 0 means rounded corners
	BorderWidth  float64 // inset of the border box, in cells
}

// DefaultStyle returns the documented defaults: no border, black base
// color, transparent transition colors, square corners, width 5.
func DefaultStyle() Style {
	return Style{
		HasBorder:    false,
		BorderColor:  lipgloss.Color("0"),
		ValidColor:   Transparent,
		InvalidColor: Transparent,
		CornerRadius: 0,
		BorderWidth:  5,
	}
}
