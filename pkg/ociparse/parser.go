// Package ociparse projects an OCI runtime-configuration document onto the
// security-relevant policy.ContainerConfig record. It reads exactly three
// paths (.process.user.uid, .root.readonly, and the user entry of
// .linux.namespaces) and ignores everything else; fields a document does
// not mention keep the conservative defaults. The projection never fails
// hard: hostile or truncated input degrades to the default record.
package ociparse

import "gatekeeper/pkg/policy"

// MaxJSON bounds the accepted input. Longer documents are rejected
// outright, with no partial parsing.
const MaxJSON = 65536

// Status reports how an input was handled.
type Status uint8

const (
	StatusOK Status = iota
	StatusTooLong
	StatusInvalidJSON

	// StatusMissingField and StatusInvalidValue are part of the status
	// taxonomy but unused by the current projection, which treats both
	// conditions as "keep the default". Reserved for a stricter mode.
	StatusMissingField
	StatusInvalidValue
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusTooLong:
		return "too-long"
	case StatusInvalidJSON:
		return "invalid-json"
	case StatusMissingField:
		return "missing-field"
	case StatusInvalidValue:
		return "invalid-value"
	default:
		return "unknown"
	}
}

// ParseConfig projects data onto a total container configuration and
// hardens it. On StatusOK the returned configuration therefore satisfies
// the security predicate by construction. Non-OK statuses carry the
// default configuration.
func ParseConfig(data []byte) (Status, policy.ContainerConfig) {
	status, cfg := ParseRawConfig(data)
	policy.Harden(&cfg)
	return status, cfg
}

// ParseRawConfig is the projection without the hardening rewrite. It
// exists for diagnostics that need to see what a document actually asks
// for; anything feeding a launch decision goes through ParseConfig.
//
// Each recognised field is located by an independent scan from the start
// of the input. That costs an extra pass per field but keeps every lookup
// free of shared parser state.
func ParseRawConfig(data []byte) (Status, policy.ContainerConfig) {
	cfg := policy.DefaultConfig()
	if len(data) > MaxJSON {
		return StatusTooLong, cfg
	}
	if len(data) == 0 {
		return StatusInvalidJSON, cfg
	}

	if pos, ok := seekKey(data, 0, "process"); ok {
		if pos, ok = seekKey(data, pos, "user"); ok {
			if pos, ok = seekKey(data, pos, "uid"); ok {
				if uid, ok := parseUint(data, pos); ok {
					cfg.UserID = uid
				}
			}
		}
	}

	if pos, ok := seekKey(data, 0, "linux"); ok {
		if hasUserNamespaceEntry(data, pos) {
			cfg.UserNamespace = true
		}
	}

	if pos, ok := seekKey(data, 0, "root"); ok {
		if pos, ok = seekKey(data, pos, "readonly"); ok {
			cfg.RootReadOnly = parseBool(data, pos)
		}
	}

	return StatusOK, cfg
}

// hasUserNamespaceEntry reports whether a "type":"user" pair occurs at or
// after pos. The walk is intentionally not scoped to the namespaces array:
// any such pair inside the linux section (or structurally adjacent to it)
// counts. Tightening the scoping is a pending decision; the lax form only
// ever enables the user namespace, which is a constraint, not a privilege.
func hasUserNamespaceEntry(data []byte, pos int) bool {
	var buf [tokenBufferSize]byte
	i := pos
	for i < len(data) {
		if data[i] != '"' {
			i++
			continue
		}
		n, next, ok := readToken(data, i, &buf)
		if !ok {
			return false
		}
		i = next
		if string(buf[:n]) != "type" {
			continue
		}
		j := skipSpace(data, i)
		if j >= len(data) || data[j] != ':' {
			continue
		}
		j = skipSpace(data, j+1)
		if j >= len(data) || data[j] != '"' {
			continue
		}
		n, _, ok = readToken(data, j, &buf)
		if ok && string(buf[:n]) == "user" {
			return true
		}
	}
	return false
}
