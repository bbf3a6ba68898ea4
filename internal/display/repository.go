// Package display models xrandr outputs as objects.
package display

import "github.com/cristianoliveira/displayctl/internal/xrandr"

// Connected returns one Display per connected output, in query order.
func Connected(client xrandr.Client) ([]*Display, error) {
	records, err := client.QueryAll()
	if err != nil {
		return nil, err
	}
	displays := make([]*Display, 0, len(records))
	for _, record := range records {
		displays = append(displays, New(client, record))
	}
	return displays, nil
}

// Enabled returns the connected displays that have a current mode.
func Enabled(client xrandr.Client) ([]*Display, error) {
	displays, err := Connected(client)
	if err != nil {
		return nil, err
	}
	enabled := displays[:0]
	for _, d := range displays {
		if d.IsEnabled() {
			enabled = append(enabled, d)
		}
	}
	return enabled, nil
}

// Get returns the Display for a single output by name.
// Returns xrandr.ErrOutputNotFound if the output is not connected.
func Get(client xrandr.Client, name string) (*Display, error) {
	record, err := client.QueryOne(name)
	if err != nil {
		return nil, err
	}
	return New(client, record), nil
}
