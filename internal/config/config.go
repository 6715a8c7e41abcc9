package config

import "path/filepath"

// Version is the validator version reported over every surface. It changes
// only together with the verdict-code and message contract.
const Version = "0.1.0"

// Host-side defaults. The validator core takes no configuration; these
// paths serve the CLI front-end only.
var (
	// SchemaDirectory is where generated JSON schema files are written.
	SchemaDirectory = filepath.Join(".", "schemas")

	// SchemaFileName is the generated schema file for the configuration
	// shape the scanner consumes.
	SchemaFileName = "gatekeeper-config.json"

	// DefaultManifestName is the scan manifest the scan command looks for
	// when no path is given.
	DefaultManifestName = "gatekeeper-scan.yaml"
)
