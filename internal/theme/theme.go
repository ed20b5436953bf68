// Package theme holds the site's color tokens and breakpoints.
package theme

import "fmt"

// DefaultLargeBreakpoint is the viewport width, in CSS pixels, at which the
// navigation switches from the collapsible menu to the full bar.
const DefaultLargeBreakpoint = 1024

// Colors are the named color tokens components may use.
type Colors struct {
	PrimaryMed string
	DarkGray   string
	White      string
}

// MediaQueries are the named breakpoint at-rules.
type MediaQueries struct {
	LargeUp   string
	LargeDown string
}

// Theme is read-only style context shared by every component.
type Theme struct {
	Colors       Colors
	MediaQueries MediaQueries

	// LargeBreakpoint is the smallest width classified as Large.
	LargeBreakpoint int
}

// Viewport classifies a viewport width against the large breakpoint.
type Viewport uint8

const (
	// Compact is below the large breakpoint (largeDown).
	Compact Viewport = iota
	// Large is at or above the large breakpoint (largeUp).
	Large
)

// Viewports lists every viewport class in cascade order.
var Viewports = []Viewport{Large, Compact}

func (v Viewport) String() string {
	switch v {
	case Compact:
		return "compact"
	case Large:
		return "large"
	default:
		return fmt.Sprintf("viewport(%d)", uint8(v))
	}
}

// Default returns the site theme.
func Default() Theme {
	return New(DefaultLargeBreakpoint, Colors{
		PrimaryMed: "#C2185B",
		DarkGray:   "#4A4A4A",
		White:      "#FFFFFF",
	})
}

// New builds a theme whose media queries split at largeBreakpoint.
func New(largeBreakpoint int, colors Colors) Theme {
	return Theme{
		Colors: colors,
		MediaQueries: MediaQueries{
			LargeUp:   fmt.Sprintf("@media (min-width: %dpx)", largeBreakpoint),
			LargeDown: fmt.Sprintf("@media (max-width: %dpx)", largeBreakpoint-1),
		},
		LargeBreakpoint: largeBreakpoint,
	}
}

// Classify returns the viewport class for a width in CSS pixels.
func (t Theme) Classify(width int) Viewport {
	if width >= t.LargeBreakpoint {
		return Large
	}
	return Compact
}

// Media returns the media query that selects viewport v.
func (t Theme) Media(v Viewport) string {
	if v == Large {
		return t.MediaQueries.LargeUp
	}
	return t.MediaQueries.LargeDown
}
