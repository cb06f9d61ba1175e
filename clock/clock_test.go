package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Run("ReturnsSameInstance", func(t *testing.T) {
		a, err := Default()
		require.NoError(t, err)
		b, err := Default()
		require.NoError(t, err)
		assert.Same(t, a, b)
	})

	t.Run("IsMonotonic", func(t *testing.T) {
		c, err := Default()
		require.NoError(t, err)

		prev := c.Now()
		for i := 0; i < 1000; i++ {
			next := c.Now()
			assert.GreaterOrEqual(t, next, prev)
			prev = next
		}
	})

	t.Run("TracksSleep", func(t *testing.T) {
		c, err := Default()
		require.NoError(t, err)

		start := c.Now()
		time.Sleep(5 * time.Millisecond)
		elapsed := c.Now() - start
		assert.GreaterOrEqual(t, elapsed, uint64(5*time.Millisecond))
	})
}

func TestManual(t *testing.T) {
	t.Run("StartsAtGivenTime", func(t *testing.T) {
		m := NewManual(42)
		assert.Equal(t, uint64(42), m.Now())
	})

	t.Run("Advance", func(t *testing.T) {
		m := NewManual(0)
		m.Advance(time.Second)
		m.AdvanceNanos(5)
		assert.Equal(t, uint64(1_000_000_005), m.Now())
	})

	t.Run("IgnoresNegativeAdvance", func(t *testing.T) {
		m := NewManual(100)
		m.Advance(-time.Second)
		assert.Equal(t, uint64(100), m.Now())
	})
}
