package policy

import "strings"

// Capability identifies one of the Linux capabilities the validator reasons
// about. The enumeration is closed: capabilities outside this list are not
// representable and are ignored wherever capability names are parsed.
type Capability uint8

const (
	CapChown Capability = iota
	CapDacOverride
	CapFsetid
	CapFowner
	CapMknod
	CapNetRaw
	CapSetgid
	CapSetuid
	CapSetfcap
	CapSetpcap
	CapNetBindService
	CapSysChroot
	CapKill
	CapAuditWrite
	CapNetAdmin
	CapSysAdmin

	capabilityCount = 16
)

var capabilityNames = [capabilityCount]string{
	"CHOWN",
	"DAC_OVERRIDE",
	"FSETID",
	"FOWNER",
	"MKNOD",
	"NET_RAW",
	"SETGID",
	"SETUID",
	"SETFCAP",
	"SETPCAP",
	"NET_BIND_SERVICE",
	"SYS_CHROOT",
	"KILL",
	"AUDIT_WRITE",
	"NET_ADMIN",
	"SYS_ADMIN",
}

// String returns the kernel-style capability tag without the CAP_ prefix.
func (c Capability) String() string {
	if int(c) >= capabilityCount {
		return "UNKNOWN"
	}
	return capabilityNames[c]
}

// ParseCapability maps a capability name onto the enumeration. The CAP_
// prefix is optional and matching is case-insensitive. Names outside the
// enumeration report ok=false; callers are expected to skip them rather
// than fail.
func ParseCapability(name string) (Capability, bool) {
	tag := strings.ToUpper(strings.TrimSpace(name))
	tag = strings.TrimPrefix(tag, "CAP_")
	for i, known := range capabilityNames {
		if tag == known {
			return Capability(i), true
		}
	}
	return 0, false
}

// CapabilitySet is a total mapping from Capability to present/absent,
// packed as a bitmask over the 16-value enumeration.
type CapabilitySet uint16

const (
	// EmptyCapabilities has every capability absent.
	EmptyCapabilities CapabilitySet = 0

	// DefaultCapabilities is the conservative runtime default: every
	// enumerated capability except NET_ADMIN and SYS_ADMIN.
	DefaultCapabilities CapabilitySet = (1<<capabilityCount - 1) &^
		(1<<CapNetAdmin | 1<<CapSysAdmin)
)

// Has reports whether the capability is present in the set.
func (s CapabilitySet) Has(c Capability) bool {
	return s&(1<<c) != 0
}

// Add returns the set with the capability present.
func (s CapabilitySet) Add(c Capability) CapabilitySet {
	return s | (1 << c)
}

// Drop returns the set with the capability absent.
func (s CapabilitySet) Drop(c Capability) CapabilitySet {
	return s &^ (1 << c)
}

// Equal reports whether both sets hold exactly the same capabilities.
func (s CapabilitySet) Equal(other CapabilitySet) bool {
	return s == other
}

// List returns the present capabilities in enumeration order.
func (s CapabilitySet) List() []Capability {
	var caps []Capability
	for c := Capability(0); c < capabilityCount; c++ {
		if s.Has(c) {
			caps = append(caps, c)
		}
	}
	return caps
}

func (s CapabilitySet) String() string {
	names := make([]string, 0, capabilityCount)
	for _, c := range s.List() {
		names = append(names, c.String())
	}
	return strings.Join(names, ",")
}
