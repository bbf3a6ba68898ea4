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

// enableCmd represents the enable command
var enableCmd = &cobra.Command{
	Use:   "enable <output>",
	Short: "Turn an output on",
	Long: `Turn an output on.

The output comes up in auto mode, which picks its preferred resolution.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		d, err := display.Get(client, args[0])
		if err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}

		if d.IsEnabled() {
			colors.Info(d.Name() + " is already enabled")
			return
		}

		d.SetEnabled(true)
		if err := d.Apply(); err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}
		colors.Success(d.Name() + " enabled")
	},
}

func init() {
	rootCmd.AddCommand(enableCmd)
}
