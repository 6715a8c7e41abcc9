package policy

// Verdict classifies a container configuration. The integer encoding is
// part of the external contract and is stable at the major version.
type Verdict int

const (
	VerdictValid               Verdict = 0
	VerdictInvalidCapabilities Verdict = 1
	VerdictInvalidUserNS       Verdict = 2
	VerdictInvalidNetworkMode  Verdict = 3
	VerdictPrivilegeEscape     Verdict = 4
	VerdictParseError          Verdict = 5
	VerdictInternalError       Verdict = -1
)

// ToExitCode returns the stable integer encoding of the verdict.
func (v Verdict) ToExitCode() int {
	switch v {
	case VerdictValid, VerdictInvalidCapabilities, VerdictInvalidUserNS,
		VerdictInvalidNetworkMode, VerdictPrivilegeEscape, VerdictParseError:
		return int(v)
	default:
		return int(VerdictInternalError)
	}
}

// VerdictFromExitCode decodes an integer received over the boundary. Any
// integer outside the defined encoding decodes to VerdictInternalError.
func VerdictFromExitCode(code int) Verdict {
	switch code {
	case 0:
		return VerdictValid
	case 1:
		return VerdictInvalidCapabilities
	case 2:
		return VerdictInvalidUserNS
	case 3:
		return VerdictInvalidNetworkMode
	case 4:
		return VerdictPrivilegeEscape
	case 5:
		return VerdictParseError
	default:
		return VerdictInternalError
	}
}

// Diagnostic messages per verdict. Downstream tooling matches on these
// byte-for-byte; they change only at a major version.
const (
	msgValid           = "Configuration is valid and secure"
	msgInvalidCaps     = "SYS_ADMIN capability requires privileged mode"
	msgInvalidUserNS   = "Root UID (0) requires user namespace to be enabled"
	msgInvalidNetMode  = "NET_ADMIN capability requires Restricted or Admin network mode"
	msgPrivilegeEscape = "Potential privilege escalation: set no_new_privileges or enable user namespace"
	msgParseError      = "Failed to parse container configuration"
	msgInternalError   = "Internal error in security validation"
	msgUnknownCode     = "Unknown error code"
)

// Message returns the stable human-readable diagnostic for the verdict.
func (v Verdict) Message() string {
	switch v {
	case VerdictValid:
		return msgValid
	case VerdictInvalidCapabilities:
		return msgInvalidCaps
	case VerdictInvalidUserNS:
		return msgInvalidUserNS
	case VerdictInvalidNetworkMode:
		return msgInvalidNetMode
	case VerdictPrivilegeEscape:
		return msgPrivilegeEscape
	case VerdictParseError:
		return msgParseError
	case VerdictInternalError:
		return msgInternalError
	default:
		return msgUnknownCode
	}
}

// MessageForCode returns the diagnostic for an integer verdict code, or
// the unknown-code message for integers outside the encoding.
func MessageForCode(code int) string {
	switch code {
	case 0, 1, 2, 3, 4, 5, -1:
		return VerdictFromExitCode(code).Message()
	default:
		return msgUnknownCode
	}
}

func (v Verdict) String() string {
	switch v {
	case VerdictValid:
		return "valid"
	case VerdictInvalidCapabilities:
		return "invalid-capabilities"
	case VerdictInvalidUserNS:
		return "invalid-user-namespace"
	case VerdictInvalidNetworkMode:
		return "invalid-network-mode"
	case VerdictPrivilegeEscape:
		return "invalid-privilege-escape"
	case VerdictParseError:
		return "parse-error"
	default:
		return "internal-error"
	}
}
