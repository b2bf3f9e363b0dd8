// Package metrics exports an Arena's bookkeeping as Prometheus gauges.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	arena "github.com/pavanmanishd/membump"
)

// Collector holds a set of Prometheus gauges mirroring an ArenaMetrics
// snapshot. It does not poll the arena itself; call Observe whenever a
// fresh snapshot should be published.
type Collector struct {
	allocatedBytes prometheus.Gauge
	capacity       prometheus.Gauge
	numChunks      prometheus.Gauge
	chunkCapacity  prometheus.Gauge
	utilization    prometheus.Gauge
}

// NewCollector creates and registers a Collector's gauges under namespace
// with the default Prometheus registry. Panics if registration fails
// (e.g. on a duplicate namespace), matching prometheus.MustRegister's
// contract.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		allocatedBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "arena_allocated_bytes",
			Help:      "Bytes currently allocated across all chunks.",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "arena_capacity_bytes",
			Help:      "Total capacity across all chunks.",
		}),
		numChunks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "arena_chunks",
			Help:      "Number of chunks currently held.",
		}),
		chunkCapacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "arena_current_chunk_capacity_bytes",
			Help:      "Capacity of the chunk currently receiving allocations.",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "arena_utilization_ratio",
			Help:      "Ratio of allocated bytes to total capacity.",
		}),
	}
	prometheus.MustRegister(c.allocatedBytes, c.capacity, c.numChunks, c.chunkCapacity, c.utilization)
	return c
}

// Observe publishes m to the collector's gauges.
func (c *Collector) Observe(m arena.ArenaMetrics) {
	c.allocatedBytes.Set(float64(m.AllocatedBytes))
	c.capacity.Set(float64(m.Capacity))
	c.numChunks.Set(float64(m.NumChunks))
	c.chunkCapacity.Set(float64(m.ChunkCapacity))
	c.utilization.Set(m.Utilization)
}
