// Package policy defines the container-configuration record, the security
// predicate over it, and the pure operations that classify (Validate) and
// rewrite (Harden) a configuration. Everything in this package is
// deterministic and free of I/O; the host decides what to do with a verdict.
package policy

// Secure reports whether the configuration satisfies the security
// predicate. A privileged configuration is secure by administrator fiat;
// otherwise all four clauses must hold:
//
//  1. SYS_ADMIN is absent.
//  2. The container does not run as root, or a user namespace is enabled.
//  3. NET_ADMIN is absent, or the network mode is at least Restricted.
//  4. The container does not run as root, or no_new_privileges is set,
//     or a user namespace is enabled.
func Secure(cfg ContainerConfig) bool {
	if cfg.Privileged {
		return true
	}
	if cfg.Capabilities.Has(CapSysAdmin) {
		return false
	}
	if cfg.UserID == 0 && !cfg.UserNamespace {
		return false
	}
	if cfg.Capabilities.Has(CapNetAdmin) && cfg.NetworkMode == NetworkUnprivileged {
		return false
	}
	if cfg.UserID == 0 && !cfg.NoNewPrivileges && !cfg.UserNamespace {
		return false
	}
	return true
}

// Validate classifies the configuration. Clauses are evaluated in a fixed
// order and the first failing clause selects the verdict, so a
// configuration violating several clauses always reports the same one.
func Validate(cfg ContainerConfig) Verdict {
	if cfg.Privileged {
		return VerdictValid
	}
	if cfg.Capabilities.Has(CapSysAdmin) {
		return VerdictInvalidCapabilities
	}
	if cfg.UserID == 0 && !cfg.UserNamespace {
		return VerdictInvalidUserNS
	}
	if cfg.Capabilities.Has(CapNetAdmin) && cfg.NetworkMode == NetworkUnprivileged {
		return VerdictInvalidNetworkMode
	}
	if cfg.UserID == 0 && !cfg.NoNewPrivileges && !cfg.UserNamespace {
		return VerdictPrivilegeEscape
	}
	return VerdictValid
}

// IsSafeCapability reports whether granting cap is acceptable under the
// given privilege flag and network mode.
func IsSafeCapability(cap Capability, privileged bool, netMode PrivilegeLevel) bool {
	if privileged {
		return true
	}
	switch cap {
	case CapSysAdmin:
		return false
	case CapNetAdmin:
		return netMode != NetworkUnprivileged
	default:
		return true
	}
}

// Harden rewrites the configuration in place so that Secure holds.
// Rewrites flow toward constraint: capabilities are dropped and isolation
// is enabled, but privilege is never raised. Enabling the user namespace
// for a root UID is the one addition, and it maps container root to an
// unprivileged host UID, a reduction. Harden is idempotent and leaves a
// privileged configuration untouched.
func Harden(cfg *ContainerConfig) {
	if cfg.Privileged {
		return
	}
	cfg.Capabilities = cfg.Capabilities.Drop(CapSysAdmin)
	if cfg.UserID == 0 {
		cfg.UserNamespace = true
	}
	if cfg.Capabilities.Has(CapNetAdmin) && cfg.NetworkMode == NetworkUnprivileged {
		cfg.Capabilities = cfg.Capabilities.Drop(CapNetAdmin)
	}
	// Unreachable after the namespace rewrite above, kept as a backstop
	// for the root-without-isolation clause.
	if cfg.UserID == 0 && !cfg.UserNamespace {
		cfg.NoNewPrivileges = true
	}
}
