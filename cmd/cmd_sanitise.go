package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gatekeeper/pkg/boundary"
	"gatekeeper/pkg/ociparse"
	"gatekeeper/pkg/policy"
)

func init() {
	RootCmd.AddCommand(createSanitiseCommand())
}

// createSanitiseCommand runs a configuration file through the sanitising
// boundary operation and writes the result.
func createSanitiseCommand() *cobra.Command {
	var outputPath string

	sanitiseCmd := &cobra.Command{
		Use:   "sanitise [configFilePath]",
		Short: "Sanitise a container configuration by applying conservative defaults",
		Long: `This command reads an OCI runtime configuration file, runs it through the
sanitising boundary operation, and writes the sanitised document to the output
file (or standard output). A negative result is the negated verdict code of
the failure, except an internal error, which reports its own code (-1).`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			data, err := os.ReadFile(args[0])
			if err != nil {
				log.Error().Err(err).Str("path", args[0]).Msg("Failed to read configuration file")
				fmt.Printf("Error: cannot read configuration file - %v\n", err)
				os.Exit(1)
			}

			out := make([]byte, ociparse.MaxJSON)
			n := boundary.SanitiseConfig(data, out)
			if n < 0 {
				// Internal errors come back as their own (negative)
				// code, not negated like the positive codes.
				code := -n
				if n == policy.VerdictInternalError.ToExitCode() {
					code = n
				}
				fmt.Printf("Sanitise failed (%d): %s\n", n, boundary.ErrorMessage(code))
				os.Exit(1)
			}

			if outputPath == "" {
				fmt.Printf("%s\n", out[:n])
				return
			}
			if err := os.WriteFile(outputPath, out[:n], 0644); err != nil {
				log.Error().Err(err).Str("path", outputPath).Msg("Failed to write sanitised configuration")
				fmt.Printf("Error: cannot write sanitised configuration - %v\n", err)
				os.Exit(1)
			}
			log.Info().Str("path", outputPath).Int("bytes", n).Msg("Sanitised configuration written")
		},
	}

	sanitiseCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the sanitised configuration to this file")

	return sanitiseCmd
}
