package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gatekeeper/pkg/boundary"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the validator version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(boundary.Version())
		},
	})
}
