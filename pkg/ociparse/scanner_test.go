package ociparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadToken(t *testing.T) {
	var buf [tokenBufferSize]byte

	t.Run("plain token", func(t *testing.T) {
		n, next, ok := readToken([]byte(`"uid":1`), 0, &buf)
		require.True(t, ok)
		assert.Equal(t, "uid", string(buf[:n]))
		assert.Equal(t, 5, next)
	})

	t.Run("escape consumes the following byte verbatim", func(t *testing.T) {
		n, _, ok := readToken([]byte(`"a\"b"`), 0, &buf)
		require.True(t, ok)
		assert.Equal(t, `a"b`, string(buf[:n]))
	})

	t.Run("unterminated token reports failure", func(t *testing.T) {
		_, next, ok := readToken([]byte(`"never ends`), 0, &buf)
		assert.False(t, ok)
		assert.Equal(t, len(`"never ends`), next)
	})

	t.Run("overlong token truncates silently", func(t *testing.T) {
		data := []byte(`"` + strings.Repeat("x", 1000) + `"`)
		n, next, ok := readToken(data, 0, &buf)
		require.True(t, ok)
		assert.Equal(t, tokenBufferSize, n)
		assert.Equal(t, len(data), next)
	})

	t.Run("trailing backslash cannot run past the input", func(t *testing.T) {
		_, _, ok := readToken([]byte(`"abc\`), 0, &buf)
		assert.False(t, ok)
	})
}

func TestSeekKey(t *testing.T) {
	t.Run("finds a key at relative depth one", func(t *testing.T) {
		pos, ok := seekKey([]byte(`{"a":1,"b":2}`), 0, "b")
		require.True(t, ok)
		assert.Equal(t, byte('2'), []byte(`{"a":1,"b":2}`)[pos])
	})

	t.Run("ignores deeper occurrences", func(t *testing.T) {
		_, ok := seekKey([]byte(`{"a":{"b":2}}`), 0, "b")
		assert.False(t, ok)
	})

	t.Run("ignores string values that look like keys", func(t *testing.T) {
		data := []byte(`{"a":"b","b":3}`)
		pos, ok := seekKey(data, 0, "b")
		require.True(t, ok)
		assert.Equal(t, byte('3'), data[pos])
	})

	t.Run("missing key reports failure", func(t *testing.T) {
		_, ok := seekKey([]byte(`{"a":1}`), 0, "zzz")
		assert.False(t, ok)
	})
}

func TestParseUint(t *testing.T) {
	t.Run("reads a digit run with leading whitespace", func(t *testing.T) {
		v, ok := parseUint([]byte("   1234,"), 0)
		require.True(t, ok)
		assert.Equal(t, uint64(1234), v)
	})

	t.Run("saturates at the maximum", func(t *testing.T) {
		v, ok := parseUint([]byte(strings.Repeat("9", 40)), 0)
		require.True(t, ok)
		assert.Equal(t, ^uint64(0), v)
	})

	t.Run("non-digit is missing, not zero", func(t *testing.T) {
		_, ok := parseUint([]byte("-5"), 0)
		assert.False(t, ok)
		_, ok = parseUint([]byte(`"5"`), 0)
		assert.False(t, ok)
	})
}

func TestParseBool(t *testing.T) {
	assert.True(t, parseBool([]byte(" true"), 0))
	assert.False(t, parseBool([]byte("false"), 0))
	assert.False(t, parseBool([]byte("TRUE"), 0))
	assert.False(t, parseBool([]byte("tru"), 0))
	assert.False(t, parseBool([]byte(""), 0))
}
