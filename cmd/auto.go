/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/cristianoliveira/displayctl/internal/colors"
	"github.com/cristianoliveira/displayctl/internal/display"
	"github.com/spf13/cobra"
)

// autoCmd represents the auto command
var autoCmd = &cobra.Command{
	Use:   "auto <output>",
	Short: "Apply the preferred settings for an output",
	Long: `Apply the preferred settings for an output.

Runs xrandr --output <output> --auto regardless of pending changes, which
enables the output with its preferred mode.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		d, err := display.Get(client, args[0])
		if err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}

		if err := d.ApplyDefault(); err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}
		colors.Success("Applied preferred settings for " + d.Name())
	},
}

func init() {
	rootCmd.AddCommand(autoCmd)
}
