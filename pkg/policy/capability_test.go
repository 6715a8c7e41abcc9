package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCapability(t *testing.T) {
	t.Run("accepts plain and CAP_ prefixed names", func(t *testing.T) {
		c, ok := ParseCapability("SYS_ADMIN")
		assert.True(t, ok)
		assert.Equal(t, CapSysAdmin, c)

		c, ok = ParseCapability("CAP_NET_ADMIN")
		assert.True(t, ok)
		assert.Equal(t, CapNetAdmin, c)

		c, ok = ParseCapability("net_bind_service")
		assert.True(t, ok)
		assert.Equal(t, CapNetBindService, c)
	})

	t.Run("unknown names are reported, not errors", func(t *testing.T) {
		for _, name := range []string{"SYS_PTRACE", "CAP_SYS_MODULE", "", "bogus"} {
			_, ok := ParseCapability(name)
			assert.False(t, ok, "name %q", name)
		}
	})

	t.Run("round trips through String", func(t *testing.T) {
		for _, c := range []Capability{CapChown, CapAuditWrite, CapSysAdmin} {
			parsed, ok := ParseCapability(c.String())
			assert.True(t, ok)
			assert.Equal(t, c, parsed)
		}
	})
}

func TestCapabilitySets(t *testing.T) {
	t.Run("default set excludes only the two admin capabilities", func(t *testing.T) {
		assert.False(t, DefaultCapabilities.Has(CapNetAdmin))
		assert.False(t, DefaultCapabilities.Has(CapSysAdmin))
		assert.Len(t, DefaultCapabilities.List(), 14)
	})

	t.Run("empty set has nothing", func(t *testing.T) {
		assert.Empty(t, EmptyCapabilities.List())
		assert.False(t, EmptyCapabilities.Has(CapChown))
	})

	t.Run("add and drop are inverses", func(t *testing.T) {
		s := EmptyCapabilities.Add(CapKill)
		assert.True(t, s.Has(CapKill))
		assert.False(t, s.Drop(CapKill).Has(CapKill))
		assert.Equal(t, EmptyCapabilities, s.Drop(CapKill))
	})

	t.Run("equal compares membership, not construction order", func(t *testing.T) {
		a := EmptyCapabilities.Add(CapKill).Add(CapChown)
		b := EmptyCapabilities.Add(CapChown).Add(CapKill)
		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(a.Drop(CapKill)))
		assert.True(t, DefaultCapabilities.Equal(DefaultCapabilities.Add(CapChown)))
	})
}
