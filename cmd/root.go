/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"time"

	"github.com/cristianoliveira/displayctl/internal/colors"
	"github.com/cristianoliveira/displayctl/internal/config"
	"github.com/cristianoliveira/displayctl/internal/logging"
	"github.com/cristianoliveira/displayctl/internal/xrandr"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "displayctl",
	Short: "Manage displays through xrandr without memorizing its flags.",
	Long:  `Manage displays through xrandr without memorizing its flags.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if config.GetBool("debug", false) {
			colors.SetDebug(true)
		}
		if err := logging.InitGlobal(); err != nil {
			colors.Warning("failed to initialize logging: " + err.Error())
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	defer func() {
		_ = logging.ShutdownGlobal()
	}()
	return rootCmd.Execute()
}

func init() {
	// Set version for use in help output
	rootCmd.Version = Version

	// Hide the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

// newClient builds the xrandr client from the loaded configuration.
func newClient() xrandr.Client {
	timeout := time.Duration(config.GetInt("command_timeout", 5)) * time.Second
	return xrandr.NewDefaultClient(
		xrandr.WithBinary(config.Get("xrandr_path", xrandr.DefaultBinary)),
		xrandr.WithTimeout(timeout),
	)
}
