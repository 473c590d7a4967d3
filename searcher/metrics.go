package searcher

// Collector receives search progress counters. Implementations must
// be safe for concurrent use: parallel root workers report into the
// same collector.
type Collector interface {
	AddNode()
	AddCutoff()
}

type nopCollector struct{}

func (nopCollector) AddNode()   {}
func (nopCollector) AddCutoff() {}
