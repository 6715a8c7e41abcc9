// Package manifest loads and saves the batch-scan manifest: a YAML list of
// container configuration files to verify, with optional per-target
// overrides for the fields the scanner does not read (privileged flag,
// network mode, capability adjustments).
package manifest

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"gatekeeper/pkg/policy"
)

// ScanManifest is the top-level structure of the YAML manifest.
type ScanManifest struct {
	Targets []Target `yaml:"targets"`
}

// Target names one configuration file to verify. The override fields are
// applied to the parsed configuration before validation; they exist
// because network mode, the privileged flag, and capability changes are
// deployment decisions the configuration document does not carry.
type Target struct {
	Name        string   `yaml:"name"`
	ConfigPath  string   `yaml:"config_path"`
	Privileged  bool     `yaml:"privileged"`
	NetworkMode string   `yaml:"network_mode"`
	CapAdd      []string `yaml:"cap_add"`
	CapDrop     []string `yaml:"cap_drop"`
}

// Parser is responsible for loading and updating scan manifests.
type Parser struct {
	mutex sync.Mutex
}

// NewParser creates and returns a new Parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// LoadManifest reads and decodes a scan manifest from path.
func (p *Parser) LoadManifest(path string) (*ScanManifest, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	log.Debug().Str("path", path).Msg("Loading scan manifest")
	file, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to open scan manifest")
		return nil, fmt.Errorf("failed to open scan manifest: %w", err)
	}
	defer file.Close()

	var m ScanManifest
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&m); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to decode scan manifest")
		return nil, fmt.Errorf("failed to decode scan manifest: %w", err)
	}

	for i := range m.Targets {
		target := &m.Targets[i]
		if target.ConfigPath == "" {
			log.Warn().Str("name", target.Name).Msg("Target has no config_path and will be skipped")
		}
	}

	log.Debug().Str("path", path).Int("target_count", len(m.Targets)).Msg("Scan manifest loaded successfully")
	return &m, nil
}

// SaveManifest writes the manifest back to path.
func (p *Parser) SaveManifest(path string, m *ScanManifest) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	log.Debug().Str("path", path).Msg("Saving scan manifest")
	data, err := yaml.Marshal(m)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal scan manifest")
		return fmt.Errorf("failed to marshal scan manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to write scan manifest")
		return fmt.Errorf("failed to write scan manifest: %w", err)
	}

	log.Debug().Str("path", path).Int("target_count", len(m.Targets)).Msg("Scan manifest saved successfully")
	return nil
}

// ApplyOverrides rewrites cfg with the target's deployment overrides.
// Unknown capability or network-mode names are skipped with a warning,
// never treated as errors.
func (t *Target) ApplyOverrides(cfg *policy.ContainerConfig) {
	if t.Privileged {
		cfg.Privileged = true
	}
	if t.NetworkMode != "" {
		if mode, ok := policy.ParsePrivilegeLevel(t.NetworkMode); ok {
			cfg.NetworkMode = mode
		} else {
			log.Warn().Str("name", t.Name).Str("network_mode", t.NetworkMode).Msg("Unknown network mode, keeping current value")
		}
	}
	for _, name := range t.CapAdd {
		if cap, ok := policy.ParseCapability(name); ok {
			cfg.Capabilities = cfg.Capabilities.Add(cap)
		} else {
			log.Warn().Str("name", t.Name).Str("capability", name).Msg("Unknown capability in cap_add, skipping")
		}
	}
	for _, name := range t.CapDrop {
		if cap, ok := policy.ParseCapability(name); ok {
			cfg.Capabilities = cfg.Capabilities.Drop(cap)
		} else {
			log.Warn().Str("name", t.Name).Str("capability", name).Msg("Unknown capability in cap_drop, skipping")
		}
	}
}
