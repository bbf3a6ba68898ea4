// Package display models xrandr outputs as objects.
package display

// ChangeSet tracks which configurable fields were mutated since the last
// reconciliation. All entries are false at creation and immediately after a
// successful apply or refresh.
type ChangeSet struct {
	Resolution bool
	Enabled    bool
	Primary    bool
	Rotation   bool
	Position   bool
}

// Any reports whether any field has a pending change.
func (c ChangeSet) Any() bool {
	return c.Resolution || c.Enabled || c.Primary || c.Rotation || c.Position
}

// Reset clears every entry.
func (c *ChangeSet) Reset() {
	*c = ChangeSet{}
}
