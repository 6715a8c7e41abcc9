package embedfiles

import _ "embed"

// RuntimeConfigSchema is the JSON schema for the subset of the OCI runtime
// configuration the validator consumes. It is deliberately permissive about
// everything outside that subset.
//
//go:embed schemas/oci-runtime-config.schema.json
var RuntimeConfigSchema []byte
