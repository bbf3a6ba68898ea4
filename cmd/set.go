/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cristianoliveira/displayctl/internal/colors"
	"github.com/cristianoliveira/displayctl/internal/display"
	"github.com/spf13/cobra"
)

var (
	setResolution string
	setUnchecked  bool
	setRotate     string
	setPosition   string
	setPrimary    bool
	setOn         bool
	setDryRun     bool
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <output>",
	Short: "Change settings for an output",
	Long: `Change one or more settings for an output and apply them in a single
xrandr invocation.

Examples:
  displayctl set HDMI-1 --resolution 1920x1080
  displayctl set HDMI-1 --rotate left
  displayctl set HDMI-1 --rotate 90 --primary
  displayctl set HDMI-1 --position leftof:eDP-1
  displayctl set HDMI-1 --on --resolution 2560x1440 --dry-run`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		d, err := display.Get(client, args[0])
		if err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}

		if err := applySetFlags(d); err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}

		if setDryRun {
			command, err := d.BuildCommand()
			if err != nil {
				colors.Error(err.Error())
				os.Exit(1)
			}
			if command == nil {
				colors.Info("No changes pending")
				return
			}
			fmt.Println(strings.Join(command, " "))
			return
		}

		if !d.Pending().Any() {
			colors.Info("No changes pending")
			return
		}
		if err := d.Apply(); err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}
		colors.Success("Applied settings for " + d.Name())
	},
}

// applySetFlags queues the requested changes on the display.
// Enable is queued first so a resolution change on an off display is allowed
// when --on accompanies it.
func applySetFlags(d *display.Display) error {
	if setOn {
		d.SetEnabled(true)
	}

	if setResolution != "" {
		width, height, err := parseResolution(setResolution)
		if err != nil {
			return err
		}
		if setUnchecked {
			err = d.SetResolutionUnchecked(width, height)
		} else {
			err = d.SetResolution(width, height)
		}
		if err != nil {
			return err
		}
	}

	if setRotate != "" {
		if degrees, err := strconv.Atoi(setRotate); err == nil {
			if err := d.SetRotationDegrees(degrees); err != nil {
				return err
			}
		} else if err := d.SetRotation(setRotate); err != nil {
			return err
		}
	}

	if setPosition != "" {
		direction, relativeTo, found := strings.Cut(setPosition, ":")
		if !found || relativeTo == "" {
			return fmt.Errorf("invalid position %q: expected <direction>:<output>", setPosition)
		}
		d.SetPosition(direction, relativeTo)
	}

	if setPrimary {
		d.SetPrimary(true)
	}

	return nil
}

// parseResolution parses "WxH" into a width/height pair.
func parseResolution(s string) (int, int, error) {
	w, h, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		return 0, 0, fmt.Errorf("invalid resolution %q: expected WxH", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid resolution width %q", w)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid resolution height %q", h)
	}
	return width, height, nil
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().StringVar(&setResolution, "resolution", "", "resolution to set, e.g. 1920x1080")
	setCmd.Flags().BoolVar(&setUnchecked, "unchecked", false, "skip validating the resolution against the mode list")
	setCmd.Flags().StringVar(&setRotate, "rotate", "", "rotation: normal, left, right, inverted, or degrees (0/90/180/270)")
	setCmd.Flags().StringVar(&setPosition, "position", "", "relative position, e.g. leftof:HDMI-1")
	setCmd.Flags().BoolVar(&setPrimary, "primary", false, "mark the output as primary")
	setCmd.Flags().BoolVar(&setOn, "on", false, "enable the output")
	setCmd.Flags().BoolVar(&setDryRun, "dry-run", false, "print the xrandr command instead of running it")
}
