// Command cshared builds the validator as a C shared library:
//
//	go build -buildmode=c-shared -o libgatekeeper.so ./cshared
//
// The exported symbols form the stable embedding surface for the runtime
// shim. All pointer handling lives here; the semantics live in
// pkg/boundary. Strings returned across the surface (messages, version)
// are allocated once at load time and have static lifetime; callers must
// not free them.
package main

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"unsafe"

	"gatekeeper/pkg/boundary"
	"gatekeeper/pkg/ociparse"
	"gatekeeper/pkg/policy"
)

// Verdict messages as C strings with static lifetime, indexed by the
// codes the boundary can produce.
var (
	cMessages = map[int]*C.char{
		0:  C.CString(boundary.ErrorMessage(0)),
		1:  C.CString(boundary.ErrorMessage(1)),
		2:  C.CString(boundary.ErrorMessage(2)),
		3:  C.CString(boundary.ErrorMessage(3)),
		4:  C.CString(boundary.ErrorMessage(4)),
		5:  C.CString(boundary.ErrorMessage(5)),
		-1: C.CString(boundary.ErrorMessage(-1)),
	}
	cUnknownMessage = C.CString("Unknown error code")
	cVersion        = C.CString(boundary.Version())
)

// goBytes copies the NUL-terminated input into Go memory, probing at most
// MaxJSON+1 bytes. Inputs longer than MaxJSON come back nil so the caller
// maps them to a parse error without walking an unbounded buffer.
func goBytes(s *C.char) []byte {
	if s == nil {
		return nil
	}
	n := C.strnlen(s, C.size_t(ociparse.MaxJSON+1))
	if n > C.size_t(ociparse.MaxJSON) {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(s), C.int(n))
}

//export verify_json_config
func verify_json_config(json *C.char) C.int {
	if json == nil {
		return C.int(policy.VerdictParseError.ToExitCode())
	}
	data := goBytes(json)
	if data == nil {
		return C.int(policy.VerdictParseError.ToExitCode())
	}
	return C.int(boundary.VerifyConfig(data))
}

//export sanitise_config
func sanitise_config(json *C.char, out *C.char, outLen C.int) C.int {
	parseFailure := C.int(-policy.VerdictParseError.ToExitCode())
	if json == nil || out == nil || outLen <= 0 {
		return parseFailure
	}
	data := goBytes(json)
	if data == nil {
		return parseFailure
	}
	// Reserve one byte for the terminating NUL.
	buf := make([]byte, int(outLen)-1)
	n := boundary.SanitiseConfig(data, buf)
	if n < 0 {
		return C.int(n)
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(out)), int(outLen))
	copy(dst, buf[:n])
	dst[n] = 0
	return C.int(n)
}

//export get_error_message
func get_error_message(code C.int) *C.char {
	if msg, ok := cMessages[int(code)]; ok {
		return msg
	}
	return cUnknownMessage
}

//export gatekeeper_version
func gatekeeper_version() *C.char {
	return cVersion
}

//export gatekeeper_init
func gatekeeper_init() C.int {
	return C.int(boundary.Init())
}

func main() {}
