// ABOUTME: Version command for the vish CLI.
// ABOUTME: Version string is overridable at build time via ldflags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vish version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vish %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
