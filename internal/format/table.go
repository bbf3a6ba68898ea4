// Package format renders displays and modes for console output.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/displayctl/internal/colors"
	"github.com/cristianoliveira/displayctl/internal/display"
)

// TableConfig holds configuration for table formatting.
type TableConfig struct {
	// ShowHeaders determines whether to show column headers.
	ShowHeaders bool

	// HeaderColor is the color to use for headers.
	HeaderColor string
}

// DefaultTableConfig returns a default table configuration.
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		ShowHeaders: true,
		HeaderColor: colors.Blue,
	}
}

// TableColumn represents a column in a table.
type TableColumn struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in characters.
	Width int

	// Alignment is the text alignment (left, right, center).
	Alignment string

	// Extractor extracts the value from a display.
	Extractor func(*display.Display) string
}

// TableFormatter renders displays as a fixed-width table.
type TableFormatter struct {
	config  *TableConfig
	columns []TableColumn
}

// NewTableFormatter creates a TableFormatter with the default columns.
func NewTableFormatter() *TableFormatter {
	columns := []TableColumn{
		{
			Name:  "Output",
			Width: 12,
			Extractor: func(d *display.Display) string {
				return d.Name()
			},
		},
		{
			Name:  "State",
			Width: 8,
			Extractor: func(d *display.Display) string {
				if d.IsEnabled() {
					return "on"
				}
				return "off"
			},
		},
		{
			Name:      "Primary",
			Width:     7,
			Alignment: "center",
			Extractor: func(d *display.Display) string {
				if d.IsPrimary() {
					return "*"
				}
				return ""
			},
		},
		{
			Name:  "Resolution",
			Width: 11,
			Extractor: func(d *display.Display) string {
				if d.Resolution().IsZero() {
					return "-"
				}
				return d.Resolution().String()
			},
		},
		{
			Name:  "Rotation",
			Width: 8,
			Extractor: func(d *display.Display) string {
				return d.Rotation()
			},
		},
		{
			Name:      "Modes",
			Width:     5,
			Alignment: "right",
			Extractor: func(d *display.Display) string {
				return fmt.Sprintf("%d", len(d.Modes()))
			},
		},
	}
	return &TableFormatter{
		config:  DefaultTableConfig(),
		columns: columns,
	}
}

// WithColumns adds custom columns to the formatter.
func (f *TableFormatter) WithColumns(columns ...TableColumn) *TableFormatter {
	f.columns = append(f.columns, columns...)
	return f
}

// FormatDisplays formats displays in a table.
func (f *TableFormatter) FormatDisplays(displays []*display.Display, writer io.Writer) error {
	if len(displays) == 0 {
		return nil
	}

	if f.config.ShowHeaders {
		if err := f.writeHeader(writer); err != nil {
			return err
		}
		if err := f.writeSeparator(writer); err != nil {
			return err
		}
	}

	for _, d := range displays {
		if err := f.writeRow(d, writer); err != nil {
			return err
		}
	}

	return nil
}

// writeHeader writes the table header.
func (f *TableFormatter) writeHeader(writer io.Writer) error {
	for i, col := range f.columns {
		header := formatString(col.Name, col.Width, "left")
		if i == 0 {
			if _, err := fmt.Fprintf(writer, "%s%s%s", f.config.HeaderColor, header, colors.Reset); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(writer, "  %s", header); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(writer)
	return err
}

// writeSeparator writes the table separator.
func (f *TableFormatter) writeSeparator(writer io.Writer) error {
	for i, col := range f.columns {
		separator := strings.Repeat("-", col.Width)
		if i == 0 {
			if _, err := fmt.Fprintf(writer, "%s%s%s", f.config.HeaderColor, separator, colors.Reset); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(writer, "  %s", separator); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(writer)
	return err
}

// writeRow writes a single table row.
func (f *TableFormatter) writeRow(d *display.Display, writer io.Writer) error {
	for i, col := range f.columns {
		value := formatString(col.Extractor(d), col.Width, col.Alignment)
		if i > 0 {
			if _, err := fmt.Fprintf(writer, "  %s", value); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(writer, "%s", value); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(writer)
	return err
}

// Helper functions

// formatString formats a string with the specified width and alignment.
func formatString(s string, width int, alignment string) string {
	if len(s) >= width {
		return s[:width]
	}

	switch alignment {
	case "right":
		return strings.Repeat(" ", width-len(s)) + s
	case "center":
		left := (width - len(s)) / 2
		right := width - len(s) - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default: // left
		return s + strings.Repeat(" ", width-len(s))
	}
}
