package policy

import "strings"

// PrivilegeLevel orders the network privilege a container may hold.
type PrivilegeLevel uint8

const (
	NetworkUnprivileged PrivilegeLevel = iota
	NetworkRestricted
	NetworkAdmin
)

var privilegeLevelNames = [...]string{
	NetworkUnprivileged: "unprivileged",
	NetworkRestricted:   "restricted",
	NetworkAdmin:        "admin",
}

func (p PrivilegeLevel) String() string {
	if int(p) >= len(privilegeLevelNames) {
		return "unprivileged"
	}
	return privilegeLevelNames[p]
}

// ParsePrivilegeLevel maps a level name onto the enumeration,
// case-insensitively. Unknown names report ok=false.
func ParsePrivilegeLevel(name string) (PrivilegeLevel, bool) {
	tag := strings.ToLower(strings.TrimSpace(name))
	for i, known := range privilegeLevelNames {
		if tag == known {
			return PrivilegeLevel(i), true
		}
	}
	return NetworkUnprivileged, false
}

// ContainerConfig is the security-relevant projection of an OCI runtime
// configuration. The record is total: every field carries a meaningful
// value at all times, starting from DefaultConfig.
type ContainerConfig struct {
	// Privileged is the administrator-explicit bypass. A privileged
	// configuration passes validation unconditionally.
	Privileged bool

	// RootReadOnly marks the root filesystem read-only.
	RootReadOnly bool

	// Capabilities is the effective capability set.
	Capabilities CapabilitySet

	// UserID is the UID the container entrypoint runs as; 0 is root.
	// Parsing saturates instead of overflowing.
	UserID uint64

	// UserNamespace is true when a user-namespace UID mapping is enabled.
	UserNamespace bool

	// NetworkMode is the network privilege level.
	NetworkMode PrivilegeLevel

	// NoNewPrivileges blocks privilege gain via setuid binaries and file
	// capabilities.
	NoNewPrivileges bool

	// SeccompEnabled is true when a seccomp profile is applied.
	SeccompEnabled bool
}

// DefaultConfig returns the conservative baseline configuration. Fields a
// parsed document does not mention keep these values, and the baseline
// itself satisfies the security predicate.
func DefaultConfig() ContainerConfig {
	return ContainerConfig{
		Privileged:      false,
		RootReadOnly:    true,
		Capabilities:    DefaultCapabilities,
		UserID:          1000,
		UserNamespace:   true,
		NetworkMode:     NetworkUnprivileged,
		NoNewPrivileges: true,
		SeccompEnabled:  true,
	}
}
