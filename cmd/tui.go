/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/displayctl/internal/colors"
	"github.com/cristianoliveira/displayctl/internal/tui"
	"github.com/spf13/cobra"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive display panel",
	Long: `Interactive display panel.

Navigate displays, queue changes (enable, primary, rotation), and apply
them without leaving the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		// JSON debug logs corrupt the alternate screen
		colors.DisableStructuredLogging()
		defer colors.EnableStructuredLogging()

		model, err := tui.NewModel(newClient())
		if err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}

		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			colors.Error(err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
