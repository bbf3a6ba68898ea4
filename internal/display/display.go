// Package display models xrandr outputs as objects.
package display

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/displayctl/internal/colors"
	"github.com/cristianoliveira/displayctl/internal/xrandr"
)

// commandName is the first token of every synthesized invocation.
const commandName = xrandr.DefaultBinary

// Display is the mutable aggregate for one physical output. Callers mutate
// settings through the guarded setters, which record pending changes in the
// change set; Apply synthesizes and runs the xrandr command for exactly those
// changes and then reconciles against a fresh query.
//
// A Display is not safe for concurrent use; callers serialize access.
type Display struct {
	client xrandr.Client

	name        string
	resolution  Resolution
	primary     bool
	enabled     bool
	connected   bool
	rotation    string
	position    Position
	currentMode int // index into modes, -1 when none is current
	modes       []Mode

	changes ChangeSet
}

// New creates a Display for one output, seeded from an initial query record.
func New(client xrandr.Client, record xrandr.Record) *Display {
	d := &Display{
		client:      client,
		name:        record.Name,
		currentMode: -1,
	}
	d.applyRecord(record)
	return d
}

// Name returns the output name.
func (d *Display) Name() string { return d.name }

// Resolution returns the current resolution, or the zero sentinel if the
// display has never been enabled.
func (d *Display) Resolution() Resolution { return d.resolution }

// IsPrimary reports whether this output is the primary display.
func (d *Display) IsPrimary() bool { return d.primary }

// IsEnabled reports whether this output has a current mode.
func (d *Display) IsEnabled() bool { return d.enabled }

// IsConnected reports whether this output reported any modes.
func (d *Display) IsConnected() bool { return d.connected }

// Rotation returns the rotation symbol, "normal" if the query reported none.
func (d *Display) Rotation() string { return d.rotation }

// Position returns the pending relative position, if one was set.
func (d *Display) Position() Position { return d.position }

// CurrentMode returns the mode marked current in the last query, and whether
// one exists.
func (d *Display) CurrentMode() (Mode, bool) {
	if d.currentMode < 0 {
		return Mode{}, false
	}
	return d.modes[d.currentMode], true
}

// Modes returns the modes reported by the most recent query.
func (d *Display) Modes() []Mode {
	modes := make([]Mode, len(d.modes))
	copy(modes, d.modes)
	return modes
}

// Pending returns a copy of the change set.
func (d *Display) Pending() ChangeSet { return d.changes }

// AvailableResolutions returns the resolution of every reported mode,
// in query order.
func (d *Display) AvailableResolutions() []Resolution {
	resolutions := make([]Resolution, len(d.modes))
	for i, mode := range d.modes {
		resolutions[i] = mode.Resolution()
	}
	return resolutions
}

// AvailableResolutionStrings returns the resolutions in "WxH" form.
func (d *Display) AvailableResolutionStrings() []string {
	strs := make([]string, len(d.modes))
	for i, mode := range d.modes {
		strs[i] = mode.Resolution().String()
	}
	return strs
}

// SetResolution requests a new resolution. The resolution must be one of the
// reported modes; use SetResolutionUnchecked for modelines xrandr does not
// list. Returns ErrDisplayOff if the display is disabled and no enable is
// pending, since a resolution is meaningless on an off display.
func (d *Display) SetResolution(width, height int) error {
	return d.setResolution(Resolution{Width: width, Height: height}, false)
}

// SetResolutionUnchecked requests a resolution without validating it against
// the reported mode list.
func (d *Display) SetResolutionUnchecked(width, height int) error {
	return d.setResolution(Resolution{Width: width, Height: height}, true)
}

func (d *Display) setResolution(res Resolution, unchecked bool) error {
	if !d.enabled && !d.changes.Enabled {
		return fmt.Errorf("%w: %s", ErrDisplayOff, d.name)
	}
	if res == d.resolution {
		return nil
	}
	if !unchecked {
		if err := d.checkResolution(res); err != nil {
			return err
		}
	}
	d.resolution = res
	d.changes.Resolution = true
	return nil
}

// checkResolution confirms the resolution appears among the reported modes.
func (d *Display) checkResolution(res Resolution) error {
	for _, mode := range d.modes {
		if mode.Resolution() == res {
			return nil
		}
	}
	return &UnsupportedResolutionError{
		Requested: res,
		Available: d.AvailableResolutions(),
	}
}

// SetEnabled requests the display be turned on or off. Setting the current
// value is a no-op. Requesting a value twice cancels the pending change.
func (d *Display) SetEnabled(enabled bool) {
	if enabled == d.enabled {
		return
	}
	d.enabled = !d.enabled
	d.changes.Enabled = !d.changes.Enabled
}

// SetPrimary requests this output become (or stop being tracked as) the
// primary display. Same no-op and cancellation semantics as SetEnabled.
func (d *Display) SetPrimary(primary bool) {
	if primary == d.primary {
		return
	}
	d.primary = !d.primary
	d.changes.Primary = !d.changes.Primary
}

// SetRotation requests a rotation by symbol ("normal", "left", "right",
// "inverted"). The lookup is case-insensitive.
func (d *Display) SetRotation(symbol string) error {
	if _, err := DegreesFromRotation(symbol); err != nil {
		return err
	}
	symbol = strings.ToLower(strings.TrimSpace(symbol))
	if symbol != d.rotation {
		d.rotation = symbol
		d.changes.Rotation = true
	}
	return nil
}

// SetRotationDegrees requests a rotation by degree value (0, 90, 180, 270).
func (d *Display) SetRotationDegrees(degrees int) error {
	symbol, err := RotationFromDegrees(degrees)
	if err != nil {
		return err
	}
	return d.SetRotation(symbol)
}

// SetPosition requests placement relative to another output. The direction is
// stored lowercased but not validated here; BuildCommand validates it against
// the position table when the command is synthesized.
func (d *Display) SetPosition(direction, relativeTo string) {
	pos := Position{Direction: strings.ToLower(direction), RelativeTo: relativeTo}
	if pos != d.position {
		d.position = pos
		d.changes.Position = true
	}
}

// BuildCommand synthesizes the xrandr invocation for the pending changes.
// It returns nil when no change is pending. Disabling dominates: when an
// off request is pending the command is exactly
// [xrandr --output <name> --off], since xrandr has no use for the other
// settings on a disabled output.
func (d *Display) BuildCommand() ([]string, error) {
	if !d.changes.Any() {
		return nil, nil
	}

	cmd := []string{commandName, "--output", d.name}

	if d.changes.Enabled && !d.enabled {
		return append(cmd, "--off"), nil
	}

	if d.changes.Resolution {
		cmd = append(cmd, "--mode", d.resolution.String())
	} else {
		// Re-assert auto mode so a display that is merely being
		// re-enabled still gets a valid mode.
		cmd = append(cmd, "--auto")
	}

	// xrandr has no un-primary flag; the marker is only ever asserted.
	if d.primary && d.changes.Primary {
		cmd = append(cmd, "--primary")
	}

	if d.changes.Rotation {
		cmd = append(cmd, "--rotate", d.rotation)
	}

	if d.changes.Position {
		flag, err := PositionFlag(d.position.Direction)
		if err != nil {
			return nil, err
		}
		cmd = append(cmd, flag, d.position.RelativeTo)
	}

	return cmd, nil
}

// Apply executes the synthesized command for the pending changes, then
// reconciles against a fresh query and clears the change set. The refresh
// runs whether or not the invocation succeeded, so the object ends up
// reflecting whatever the tool actually achieved; an execution error takes
// precedence over a refresh error in the return value.
func (d *Display) Apply() error {
	cmd, err := d.BuildCommand()
	if err != nil {
		return err
	}
	return d.execAndRefresh(cmd)
}

// ApplyDefault applies the preferred mode via --auto, bypassing the change
// set, then reconciles like Apply.
func (d *Display) ApplyDefault() error {
	return d.execAndRefresh([]string{commandName, "--output", d.name, "--auto"})
}

func (d *Display) execAndRefresh(cmd []string) error {
	var execErr error
	if len(cmd) > 0 {
		colors.StructuredDebug("display", "apply", "started", nil, d.name, map[string]interface{}{"command": strings.Join(cmd, " ")})
		// cmd[0] is the tool name; the client prepends the binary itself.
		_, _, execErr = d.client.Run(cmd[1:]...)
		if execErr != nil {
			colors.StructuredError("display", "apply", "failed", execErr, d.name, nil)
		}
	}
	if err := d.Refresh(); err != nil {
		if execErr != nil {
			return execErr
		}
		return err
	}
	return execErr
}

// Refresh re-queries this output and replaces modes, current mode, and
// derived fields from the result, clearing the change set. State is only
// swapped in when the query succeeds.
func (d *Display) Refresh() error {
	record, err := d.client.QueryOne(d.name)
	if err != nil {
		return err
	}
	d.applyRecord(record)
	return nil
}

// applyRecord splices fresh query data into the display and clears the
// change set. This is the single reconciliation path shared by construction
// and refresh.
func (d *Display) applyRecord(record xrandr.Record) {
	modes := make([]Mode, len(record.Modes))
	current := -1
	for i, m := range record.Modes {
		modes[i] = Mode{
			Width:     m.Width,
			Height:    m.Height,
			Refresh:   m.Refresh,
			Current:   m.Current,
			Preferred: m.Preferred,
		}
		if m.Current && current < 0 {
			current = i
		}
	}
	d.modes = modes
	d.currentMode = current
	d.enabled = current >= 0
	d.connected = len(modes) > 0
	d.rotation = record.Rotation
	if d.rotation == "" {
		d.rotation = RotationNormal
	}
	d.primary = record.Primary
	if d.enabled {
		d.resolution = d.modes[current].Resolution()
	}
	d.changes.Reset()
}

// String returns a summary form for logs.
func (d *Display) String() string {
	return fmt.Sprintf("<%s, primary: %t, modes: %d, conn: %t, rot: %s, enabled: %t>",
		d.name, d.primary, len(d.modes), d.connected, d.rotation, d.enabled)
}
