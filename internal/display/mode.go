// Package display models xrandr outputs as objects. It tracks which settings
// a caller changed and synthesizes the minimal xrandr invocation that applies
// exactly those changes.
package display

import "fmt"

// Mode is one supported resolution/refresh-rate combination for an output.
// Modes are immutable; they are created while parsing a query result and
// replaced wholesale on every refresh.
type Mode struct {
	Width     int
	Height    int
	Refresh   float64
	Current   bool
	Preferred bool
}

// Resolution returns the mode's resolution.
func (m Mode) Resolution() Resolution {
	return Resolution{Width: m.Width, Height: m.Height}
}

// String returns a summary form, e.g. "<1920x1080, 60, curr: true, pref: true>".
func (m Mode) String() string {
	return fmt.Sprintf("<%s, %g, curr: %t, pref: %t>",
		m.Resolution(), m.Refresh, m.Current, m.Preferred)
}

// Resolution is a width/height pair in pixels. The zero value is the
// "no resolution" sentinel used before the first query.
type Resolution struct {
	Width  int
	Height int
}

// String returns the xrandr spelling, e.g. "1920x1080".
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// IsZero reports whether the resolution is the unset sentinel.
func (r Resolution) IsZero() bool {
	return r.Width == 0 && r.Height == 0
}
