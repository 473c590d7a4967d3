package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts nodes and cutoffs", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		for i := 0; i < 5; i++ {
			c.AddNode()
		}
		c.AddCutoff()

		got := c.Complete()

		require.Equal(t, int64(5), got.Nodes)
		require.Equal(t, int64(1), got.Cutoffs)
		require.GreaterOrEqual(t, got.Duration, time.Duration(0))
	})

	t.Run("start resets the previous move's counters", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddNode()
		c.AddCutoff()
		c.Complete()

		c.Start()
		c.AddNode()
		got := c.Complete()

		require.Equal(t, int64(1), got.Nodes)
		require.Equal(t, int64(0), got.Cutoffs)
	})

	t.Run("safe under concurrent reporting", func(t *testing.T) {
		c := NewCollector()
		c.Start()

		var wg sync.WaitGroup
		for w := 0; w < 8; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 1000; i++ {
					c.AddNode()
				}
			}()
		}
		wg.Wait()

		require.Equal(t, int64(8000), c.Complete().Nodes)
	})
}
