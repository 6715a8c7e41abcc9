package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	programmConfig "gatekeeper/internal/config"
	"gatekeeper/pkg/manifest"
	"gatekeeper/pkg/ociparse"
	"gatekeeper/pkg/policy"
)

func init() {
	RootCmd.AddCommand(createScanCommand())
}

// createScanCommand verifies every target of a scan manifest and prints a
// colourised summary.
func createScanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [manifestPath]",
		Short: "Verify every configuration listed in a scan manifest",
		Long: `This command loads a YAML scan manifest, verifies each listed configuration
file against the security policy (applying the per-target deployment
overrides), and prints a summary. The exit status is non-zero when any target
fails validation.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			manifestPath := programmConfig.DefaultManifestName
			if len(args) > 0 {
				manifestPath = args[0]
			}

			m, err := manifest.NewParser().LoadManifest(manifestPath)
			if err != nil {
				fmt.Printf("Error: cannot load scan manifest - %v\n", err)
				os.Exit(1)
			}

			successColor := color.New(color.FgGreen).SprintFunc()
			errorColor := color.New(color.FgRed).SprintFunc()

			failures := 0
			for i := range m.Targets {
				target := &m.Targets[i]
				if target.ConfigPath == "" {
					continue
				}
				code := scanTarget(target)
				if code == 0 {
					fmt.Printf("%s %s\n", successColor("PASS"), target.Name)
					continue
				}
				failures++
				fmt.Printf("%s %s (verdict %d: %s)\n", errorColor("FAIL"), target.Name, code, policy.MessageForCode(code))
			}

			fmt.Printf("Scanned %d targets, %d failed\n", len(m.Targets), failures)
			if failures > 0 {
				os.Exit(1)
			}
		},
	}
}

// scanTarget verifies one manifest target and returns its verdict code.
func scanTarget(target *manifest.Target) int {
	data, err := os.ReadFile(target.ConfigPath)
	if err != nil {
		log.Error().Err(err).Str("name", target.Name).Str("path", target.ConfigPath).Msg("Failed to read target configuration")
		return policy.VerdictParseError.ToExitCode()
	}

	status, cfg := ociparse.ParseConfig(data)
	if status != ociparse.StatusOK {
		return policy.VerdictParseError.ToExitCode()
	}

	target.ApplyOverrides(&cfg)
	return policy.Validate(cfg).ToExitCode()
}
