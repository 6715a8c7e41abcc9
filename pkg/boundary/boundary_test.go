package boundary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatekeeper/pkg/ociparse"
)

func TestVerifyConfig(t *testing.T) {
	t.Run("nil input is a parse error", func(t *testing.T) {
		assert.Equal(t, 5, VerifyConfig(nil))
	})

	t.Run("empty input is a parse error", func(t *testing.T) {
		assert.Equal(t, 5, VerifyConfig([]byte{}))
	})

	t.Run("oversize input is a parse error", func(t *testing.T) {
		data := bytes.Repeat([]byte("x"), ociparse.MaxJSON+1)
		assert.Equal(t, 5, VerifyConfig(data))
	})

	t.Run("scenario table", func(t *testing.T) {
		scenarios := []struct {
			name string
			doc  string
			code int
		}{
			{"empty object uses secure defaults", `{}`, 0},
			{"root uid is hardened via user namespace", `{"process":{"user":{"uid":0}}}`, 0},
			{"pid namespace does not disturb the defaults",
				`{"process":{"user":{"uid":0}},"linux":{"namespaces":[{"type":"pid"}]}}`, 0},
			{"writable root is still secure", `{"root":{"readonly":false}}`, 0},
			{"garbage degrades to secure defaults", `%%%%`, 0},
		}
		for _, sc := range scenarios {
			t.Run(sc.name, func(t *testing.T) {
				assert.Equal(t, sc.code, VerifyConfig([]byte(sc.doc)))
			})
		}
	})

	t.Run("thousand-digit uid does not overflow", func(t *testing.T) {
		doc := `{"process":{"user":{"uid":` + strings.Repeat("9", 1000) + `}}}`
		assert.Equal(t, 0, VerifyConfig([]byte(doc)))
	})
}

func TestSanitiseConfig(t *testing.T) {
	t.Run("nil input buffer", func(t *testing.T) {
		out := make([]byte, 64)
		assert.Equal(t, -5, SanitiseConfig(nil, out))
	})

	t.Run("nil and empty output buffers", func(t *testing.T) {
		assert.Equal(t, -5, SanitiseConfig([]byte(`{}`), nil))
		assert.Equal(t, -5, SanitiseConfig([]byte(`{}`), []byte{}))
	})

	t.Run("oversize input", func(t *testing.T) {
		out := make([]byte, 64)
		data := bytes.Repeat([]byte("x"), ociparse.MaxJSON+1)
		assert.Equal(t, -5, SanitiseConfig(data, out))
	})

	t.Run("output buffer smaller than the document", func(t *testing.T) {
		out := make([]byte, 2)
		assert.Equal(t, -5, SanitiseConfig([]byte(`{"a":1}`), out))
	})

	t.Run("empty document is a parse error", func(t *testing.T) {
		out := make([]byte, 64)
		assert.Equal(t, -5, SanitiseConfig([]byte{}, out))
	})

	t.Run("success writes the document and returns its length", func(t *testing.T) {
		doc := []byte(`{"process":{"user":{"uid":0}}}`)
		out := make([]byte, 128)
		n := SanitiseConfig(doc, out)
		require.Equal(t, len(doc), n)
		assert.Equal(t, doc, out[:n])
	})
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "Configuration is valid and secure", ErrorMessage(0))
	assert.Equal(t, "Failed to parse container configuration", ErrorMessage(5))
	assert.Equal(t, "Internal error in security validation", ErrorMessage(-1))
	assert.Equal(t, "Unknown error code", ErrorMessage(17))
	assert.Equal(t, "Unknown error code", ErrorMessage(-3))
}

func TestVersionAndInit(t *testing.T) {
	assert.Equal(t, "0.1.0", Version())
	assert.Zero(t, Init())
}
