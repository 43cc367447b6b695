package metrics

import (
	"sync"
	"time"
)

// Collector is a small in-process metrics sink: named counters with a
// single label dimension, plus sliding latency windows per operation.
// It backs the /metrics endpoint and is safe for concurrent use.
type Collector struct {
	counters  map[string]map[string]int64
	latencies map[string][]time.Duration
	mutex     sync.RWMutex
}

const latencyWindow = 100

func NewCollector() *Collector {
	return &Collector{
		counters:  make(map[string]map[string]int64),
		latencies: make(map[string][]time.Duration),
	}
}

// IncrementCounter bumps counter name for the given label value.
// An empty label is recorded under "default".
func (c *Collector) IncrementCounter(name, label string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if label == "" {
		label = "default"
	}
	if _, exists := c.counters[name]; !exists {
		c.counters[name] = make(map[string]int64)
	}
	c.counters[name][label]++
}

// ObserveLatency appends a duration sample, keeping only the most
// recent latencyWindow observations per name.
func (c *Collector) ObserveLatency(name string, duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	samples := append(c.latencies[name], duration)
	if len(samples) > latencyWindow {
		samples = samples[len(samples)-latencyWindow:]
	}
	c.latencies[name] = samples
}

// Counters returns a copy of every counter.
func (c *Collector) Counters() map[string]map[string]int64 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	counters := make(map[string]map[string]int64, len(c.counters))
	for name, labels := range c.counters {
		counters[name] = make(map[string]int64, len(labels))
		for label, value := range labels {
			counters[name][label] = value
		}
	}
	return counters
}

// Latencies returns the average latency in milliseconds per operation.
func (c *Collector) Latencies() map[string]map[string]float64 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	result := make(map[string]map[string]float64)
	for name, durations := range c.latencies {
		if len(durations) == 0 {
			continue
		}
		var sum time.Duration
		for _, d := range durations {
			sum += d
		}
		result[name] = map[string]float64{
			"avg_ms": float64(sum) / float64(len(durations)) / float64(time.Millisecond),
		}
	}
	return result
}
