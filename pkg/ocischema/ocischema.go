// Package ocischema carries the diagnostic schema tooling around the
// validator: checking an input document against the embedded OCI
// runtime-configuration schema, and generating a separate schema file from
// the Go shape of the consumed subset (the embedded schema is not rewritten).
// The validator itself never runs these; a
// document that fails the schema still goes through the bounded scanner
// and simply keeps its defaults.
package ocischema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"

	embedfiles "gatekeeper/embedded"
	programmConfig "gatekeeper/internal/config"
)

// RuntimeDocument mirrors the subset of the OCI runtime configuration the
// scanner consumes. It exists for schema generation and diagnostics, not
// for parsing: the scanner never unmarshals into it.
type RuntimeDocument struct {
	Process *ProcessSection `json:"process,omitempty"`
	Root    *RootSection    `json:"root,omitempty"`
	Linux   *LinuxSection   `json:"linux,omitempty"`
}

// ProcessSection holds the entrypoint identity.
type ProcessSection struct {
	User UserSection `json:"user"`
}

// UserSection holds the UID/GID pair the container runs as.
type UserSection struct {
	UID uint64 `json:"uid"`
	GID uint64 `json:"gid,omitempty"`
}

// RootSection describes the root filesystem.
type RootSection struct {
	Path     string `json:"path,omitempty"`
	Readonly bool   `json:"readonly,omitempty"`
}

// LinuxSection holds the Linux-specific isolation settings.
type LinuxSection struct {
	Namespaces []NamespaceSection `json:"namespaces,omitempty"`
}

// NamespaceSection is one namespace entry.
type NamespaceSection struct {
	Type string `json:"type"`
	Path string `json:"path,omitempty"`
}

// ValidateDocument checks a configuration document against the embedded
// schema and returns an error listing every violation.
func ValidateDocument(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(embedfiles.RuntimeConfigSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		var validationErrors string
		for _, err := range result.Errors() {
			validationErrors += fmt.Sprintf("- %s\n", err.String())
		}
		log.Error().Msgf("Schema check failed: %s", validationErrors)
		return fmt.Errorf("schema check failed:\n%s", validationErrors)
	}

	log.Debug().Msg("Schema check succeeded")
	return nil
}

// GenSchema reflects the consumed-document shape into a JSON schema and
// writes it under the configured schema directory.
func GenSchema() error {
	reflector := new(jsonschema.Reflector)
	reflector.RequiredFromJSONSchemaTags = true

	schemaDir := programmConfig.SchemaDirectory
	if err := os.MkdirAll(schemaDir, os.ModePerm); err != nil {
		log.Error().Err(err).Msgf("Failed to create schema directory: %s", schemaDir)
		return fmt.Errorf("failed to create schema directory: %w", err)
	}

	schema := reflector.Reflect(&RuntimeDocument{})
	schemaData, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal schema to JSON")
		return fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}

	schemaFilePath := filepath.Join(schemaDir, programmConfig.SchemaFileName)
	if err := os.WriteFile(schemaFilePath, schemaData, 0644); err != nil {
		log.Error().Err(err).Msgf("Failed to write schema file: %s", schemaFilePath)
		return fmt.Errorf("failed to write schema file: %w", err)
	}

	log.Info().Msgf("Schema generated and saved successfully to: %s", schemaFilePath)
	return nil
}
