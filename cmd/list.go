/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/cristianoliveira/displayctl/internal/colors"
	"github.com/cristianoliveira/displayctl/internal/display"
	"github.com/cristianoliveira/displayctl/internal/format"
	"github.com/spf13/cobra"
)

var listEnabledOnly bool

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List connected displays",
	Long: `List connected displays as reported by xrandr.

Shows the output name, on/off state, primary marker, current resolution,
rotation, and the number of available modes.`,
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		var displays []*display.Display
		var err error
		if listEnabledOnly {
			displays, err = display.Enabled(client)
		} else {
			displays, err = display.Connected(client)
		}
		if err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}

		if len(displays) == 0 {
			colors.Info("No connected displays")
			return
		}

		formatter := format.NewTableFormatter()
		if err := formatter.FormatDisplays(displays, os.Stdout); err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listEnabledOnly, "enabled", false, "only show enabled displays")
}
