// Package boundary adapts the parser and the policy to the integer-coded
// surface downstream callers depend on. It owns input validation (nil
// slices, buffer sizes) and guarantees that no panic escapes: every
// operation has a recover path that reports an internal error instead.
// The C-ABI shim in cshared/ is a thin pointer-handling wrapper over this
// package; the host CLI calls it directly.
package boundary

import (
	"gatekeeper/internal/config"
	"gatekeeper/pkg/ociparse"
	"gatekeeper/pkg/policy"
)

// VerifyConfig parses, hardens, and validates the document and returns the
// verdict code. A nil or oversized input, and any parse failure, yield the
// parse-error code. The function never panics.
func VerifyConfig(data []byte) (code int) {
	defer func() {
		if recover() != nil {
			code = policy.VerdictInternalError.ToExitCode()
		}
	}()
	if data == nil || len(data) > ociparse.MaxJSON {
		return policy.VerdictParseError.ToExitCode()
	}
	status, cfg := ociparse.ParseConfig(data)
	if status != ociparse.StatusOK {
		return policy.VerdictParseError.ToExitCode()
	}
	return policy.Validate(cfg).ToExitCode()
}

// SanitiseConfig runs the verify pipeline and, on success, writes the
// sanitised document into out and returns the number of bytes written.
// Failures return a negative value: the negated verdict code for the
// positive codes, and the internal-error code verbatim (it is already
// negative; negating it would produce a positive value and break the
// negative-on-failure contract).
//
// The written document is currently the input itself: parsing already
// applies the hardening rewrite before validation, and re-serialising the
// hardened record is reserved for a future revision of the surface.
func SanitiseConfig(in, out []byte) (n int) {
	defer func() {
		if recover() != nil {
			n = policy.VerdictInternalError.ToExitCode()
		}
	}()
	if in == nil || out == nil || len(out) == 0 {
		return -policy.VerdictParseError.ToExitCode()
	}
	if len(in) > ociparse.MaxJSON || len(in) > len(out) {
		return -policy.VerdictParseError.ToExitCode()
	}
	status, _ := ociparse.ParseConfig(in)
	if status != ociparse.StatusOK {
		return -policy.VerdictParseError.ToExitCode()
	}
	copy(out, in)
	return len(in)
}

// ErrorMessage returns the stable diagnostic string for a verdict code.
// Integers outside the encoding report an unknown code.
func ErrorMessage(code int) string {
	return policy.MessageForCode(code)
}

// Version returns the validator version string.
func Version() string {
	return config.Version
}

// Init is the reserved one-shot initialisation hook. The validator keeps
// no state, so there is nothing to set up; it exists so embedders have a
// stable place to probe that the library is loaded and callable.
func Init() int {
	return 0
}
