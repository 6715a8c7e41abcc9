package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"gatekeeper/pkg/boundary"
)

func init() {
	RootCmd.AddCommand(createExplainCommand())
}

// createExplainCommand prints the stable diagnostic message for a verdict
// code.
func createExplainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [verdictCode]",
		Short: "Print the diagnostic message for a verdict code",
		Long: `This command prints the stable human-readable diagnostic for a verdict code.
The messages are part of the external contract and change only at a major
version, so tooling may match on them.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("Error: invalid verdict code - %v\n", err)
				os.Exit(1)
			}
			fmt.Println(boundary.ErrorMessage(code))
		},
	}
}
