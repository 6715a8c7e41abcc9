package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gatekeeper/pkg/ocischema"
)

func init() {
	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Schema diagnostics for container configurations",
		Long: `Commands to check a configuration document against the embedded OCI
runtime-configuration schema and to generate a separate schema file from the
shape the validator consumes (the embedded schema is not rewritten). These are
diagnostics only: the validator itself accepts
documents the schema rejects and simply keeps its defaults.`,
	}

	schemaCmd.AddCommand(createSchemaCheckCommand())
	schemaCmd.AddCommand(createSchemaGenerateCommand())

	RootCmd.AddCommand(schemaCmd)
}

// createSchemaCheckCommand validates a document against the embedded schema.
func createSchemaCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [configFilePath]",
		Short: "Check a configuration document against the embedded schema",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			data, err := os.ReadFile(args[0])
			if err != nil {
				log.Error().Err(err).Str("path", args[0]).Msg("Failed to read configuration file")
				fmt.Printf("Error: cannot read configuration file - %v\n", err)
				os.Exit(1)
			}
			if err := ocischema.ValidateDocument(data); err != nil {
				fmt.Printf("Schema check failed:\n%v\n", err)
				os.Exit(1)
			}
			fmt.Println("Schema check passed")
		},
	}
}

// createSchemaGenerateCommand regenerates the schema file.
func createSchemaGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate the JSON schema for the consumed configuration subset",
		Run: func(cmd *cobra.Command, args []string) {
			if err := ocischema.GenSchema(); err != nil {
				fmt.Printf("Error: schema generation failed - %v\n", err)
				os.Exit(1)
			}
		},
	}
}
