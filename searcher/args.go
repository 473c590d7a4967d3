package searcher

import "github.com/Selvamathuvappan/ChineseCheckers/game"

type option func(m *Minimax)

// WithDepth sets the ply horizon. Depth 0 degrades to the greedy
// one-ply choice; negative depths are rejected by NewMinimax.
func WithDepth(depth int) option {
	return func(m *Minimax) {
		m.depth = depth
	}
}

// WithTopK caps how many moves are searched per ply, keeping the best
// k by move ordering. Zero means no cap.
func WithTopK(k int) option {
	return func(m *Minimax) {
		m.topK = k
	}
}

// WithParallel splits the root moves across the given number of
// worker goroutines. Each worker searches its branches on exclusively
// owned clones with a full alpha-beta window, so the chosen move is
// the same as the sequential search's.
func WithParallel(workers int) option {
	return func(m *Minimax) {
		m.parallel = workers
	}
}

func WithEvaluate(evaluate game.Evaluate) option {
	return func(m *Minimax) {
		m.evaluate = evaluate
	}
}

func WithCollector(c Collector) option {
	return func(m *Minimax) {
		m.collector = c
	}
}
