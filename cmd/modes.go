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

// modesCmd represents the modes command
var modesCmd = &cobra.Command{
	Use:   "modes <output>",
	Short: "List available modes for an output",
	Long: `List the modes xrandr reports for one output.

The current mode is marked with "*" and the preferred mode with "+".`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		d, err := display.Get(client, args[0])
		if err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}

		if err := format.FormatModes(d.Modes(), os.Stdout); err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(modesCmd)
}
