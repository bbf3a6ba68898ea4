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

// disableCmd represents the disable command
var disableCmd = &cobra.Command{
	Use:   "disable <output>",
	Short: "Turn an output off",
	Long:  `Turn an output off with xrandr --off.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		d, err := display.Get(client, args[0])
		if err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}

		if !d.IsEnabled() {
			colors.Info(d.Name() + " is already disabled")
			return
		}

		d.SetEnabled(false)
		if err := d.Apply(); err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}
		colors.Success(d.Name() + " disabled")
	},
}

func init() {
	rootCmd.AddCommand(disableCmd)
}
