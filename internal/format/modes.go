// Package format renders displays and modes for console output.
package format

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/displayctl/internal/display"
)

// FormatModes writes one line per mode, marking the current mode with "*"
// and the preferred mode with "+", the way xrandr itself does.
func FormatModes(modes []display.Mode, writer io.Writer) error {
	for _, mode := range modes {
		current := " "
		if mode.Current {
			current = "*"
		}
		preferred := " "
		if mode.Preferred {
			preferred = "+"
		}
		_, err := fmt.Fprintf(writer, "%-11s %7.2f%s%s\n",
			mode.Resolution(), mode.Refresh, current, preferred)
		if err != nil {
			return err
		}
	}
	return nil
}
