package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one strategy invocation.
type SearchMetric struct {
	Nodes    int64
	Cutoffs  int64
	Duration time.Duration
}

// Collector accumulates search counters for one move. It satisfies
// searcher.Collector; the counters are atomic because parallel root
// workers report concurrently.
type Collector interface {
	Start()
	AddNode()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	nodes     atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for the next move.
func (c *collector) Start() {
	c.startTime = time.Now()
	c.nodes.Store(0)
	c.cutoffs.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Nodes:    c.nodes.Load(),
		Cutoffs:  c.cutoffs.Load(),
		Duration: time.Since(c.startTime),
	}
}
