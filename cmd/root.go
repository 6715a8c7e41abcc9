package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"os"
)

// RootCmd is the base command for the Gatekeeper CLI tool.
var RootCmd = &cobra.Command{
	Use:   "gatekeeper",
	Short: "Gatekeeper container security policy validator",
	Long: `Gatekeeper validates OCI container runtime configurations against a
fixed security policy before a workload is launched. It can verify a single
configuration, sanitise one by applying conservative defaults, scan a batch
of configurations from a manifest, and explain verdict codes.`,
	Run: func(cmd *cobra.Command, args []string) {
		// This will be executed if no subcommands are provided
		fmt.Println("Welcome to Gatekeeper. Use 'gatekeeper --help' to see available commands.")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
