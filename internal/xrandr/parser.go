// Package xrandr provides a thin abstraction over the xrandr command line tool.
package xrandr

import (
	"regexp"
	"strconv"
	"strings"
)

// Mode is one resolution/refresh-rate entry reported for an output.
type Mode struct {
	Width     int
	Height    int
	Refresh   float64
	Current   bool
	Preferred bool
}

// Record holds the raw parsed state of one connected output.
type Record struct {
	Name     string
	Primary  bool
	Rotation string
	Modes    []Mode
}

// Matches e.g. "HDMI-1 connected primary 1920x1080+0+0 inverted (normal ...)".
// The rotation token only appears when the output is rotated.
var outputLine = regexp.MustCompile(
	`^(?P<out>[\w-]+)\s(?P<status>connected)(?P<pr>\sprimary)?(\s[\w+]+)?(\s(?P<rot>\w+))?`,
)

// Matches mode lines e.g. "   1920x1080     60.00*+  59.94".
// Only the first refresh rate of the line is captured, with its
// current (*) and preferred (+) markers.
var modeLine = regexp.MustCompile(
	`^\s+(?P<width>\d+)x(?P<height>\d+)\s+(?P<freq>(?:\d+\.)?\d+)(?P<curr>[*\s]?)?(?P<pref>[+\s]?)?`,
)

var (
	outputNameIdx     = outputLine.SubexpIndex("out")
	outputPrimaryIdx  = outputLine.SubexpIndex("pr")
	outputRotationIdx = outputLine.SubexpIndex("rot")

	modeWidthIdx     = modeLine.SubexpIndex("width")
	modeHeightIdx    = modeLine.SubexpIndex("height")
	modeFreqIdx      = modeLine.SubexpIndex("freq")
	modeCurrentIdx   = modeLine.SubexpIndex("curr")
	modePreferredIdx = modeLine.SubexpIndex("pref")
)

// ParseStatus parses xrandr status output into one Record per connected
// output. Disconnected outputs are skipped; mode lines are attached to the
// most recently seen output line.
func ParseStatus(text string) []Record {
	var records []Record
	var modes []Mode

	flush := func() {
		if len(modes) > 0 && len(records) > 0 {
			records[len(records)-1].Modes = modes
			modes = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if match := outputLine.FindStringSubmatch(line); match != nil {
			flush()
			records = append(records, Record{
				Name:     match[outputNameIdx],
				Primary:  match[outputPrimaryIdx] != "",
				Rotation: match[outputRotationIdx],
			})
			continue
		}
		if match := modeLine.FindStringSubmatch(line); match != nil {
			width, _ := strconv.Atoi(match[modeWidthIdx])
			height, _ := strconv.Atoi(match[modeHeightIdx])
			freq, _ := strconv.ParseFloat(match[modeFreqIdx], 64)
			modes = append(modes, Mode{
				Width:     width,
				Height:    height,
				Refresh:   freq,
				Current:   strings.TrimSpace(match[modeCurrentIdx]) != "",
				Preferred: strings.TrimSpace(match[modePreferredIdx]) != "",
			})
		}
	}
	flush()

	return records
}
