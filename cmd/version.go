/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cristianoliveira/displayctl/internal/version"
	"github.com/spf13/cobra"
)

// Version is the displayctl version shown in help and the version command.
var Version = version.String()

// versionOutputWriter allows tests to capture the version output.
var versionOutputWriter io.Writer = os.Stdout

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// PrintVersion prints the version line.
func PrintVersion() {
	fmt.Fprintf(versionOutputWriter, "displayctl v%s\n", GetVersion())
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the displayctl version",
	Run: func(cmd *cobra.Command, args []string) {
		PrintVersion()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
