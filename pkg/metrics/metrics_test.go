package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	c := NewCollector()

	c.IncrementCounter("logins", "success")
	c.IncrementCounter("logins", "success")
	c.IncrementCounter("logins", "")

	counters := c.Counters()
	assert.Equal(t, int64(2), counters["logins"]["success"])
	assert.Equal(t, int64(1), counters["logins"]["default"])

	// The returned map is a copy.
	counters["logins"]["success"] = 99
	assert.Equal(t, int64(2), c.Counters()["logins"]["success"])
}

func TestLatencies(t *testing.T) {
	c := NewCollector()

	c.ObserveLatency("store_query", 10*time.Millisecond)
	c.ObserveLatency("store_query", 30*time.Millisecond)

	latencies := c.Latencies()
	require.Contains(t, latencies, "store_query")
	assert.InDelta(t, 20, latencies["store_query"]["avg_ms"], 0.001)
}

func TestLatencyWindowBounded(t *testing.T) {
	c := NewCollector()

	for i := 0; i < latencyWindow*2; i++ {
		c.ObserveLatency("op", time.Millisecond)
	}

	c.mutex.RLock()
	defer c.mutex.RUnlock()
	assert.Len(t, c.latencies["op"], latencyWindow)
}
