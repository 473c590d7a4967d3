package searcher

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"github.com/Selvamathuvappan/ChineseCheckers/game"
)

// winScore dominates every positional evaluation; the remaining depth
// is added on top so nearer wins outrank farther ones.
const winScore = 1e9

// Minimax is a depth-limited adversarial search with alpha-beta
// pruning, maximizing for the color to move at the root. Every other
// side to move minimizes the root color's score: with more than two
// players the opponents are treated as a single adversarial coalition
// rather than independent maximizers of their own positions.
type Minimax struct {
	depth     int
	topK      int
	parallel  int
	evaluate  game.Evaluate
	collector Collector
}

func NewMinimax(options ...option) (*Minimax, error) {
	m := &Minimax{
		depth:     2,
		evaluate:  game.Advancement,
		collector: nopCollector{},
	}
	for _, option := range options {
		option(m)
	}
	if m.depth < 0 {
		return nil, fmt.Errorf("%w: search depth %d is negative", game.ErrInvalidConfiguration, m.depth)
	}
	if m.topK < 0 {
		return nil, fmt.Errorf("%w: top-k %d is negative", game.ErrInvalidConfiguration, m.topK)
	}
	if m.parallel < 0 {
		return nil, fmt.Errorf("%w: %d parallel workers", game.ErrInvalidConfiguration, m.parallel)
	}
	return m, nil
}

func (m *Minimax) ChooseMove(state *game.GameState) (game.Move, error) {
	color := state.CurrentColor()
	moves := m.ordered(state, state.LegalMoves(), color)
	if len(moves) == 0 {
		return game.Move{}, ErrNoMove
	}
	// Move ordering already ranks by one-ply evaluation, so at
	// horizon 1 and below the first move is the greedy choice.
	if m.depth <= 1 {
		return moves[0], nil
	}
	if m.parallel > 1 {
		return moves[m.bestRootParallel(state, moves, color)], nil
	}
	return moves[m.bestRoot(state, moves, color)], nil
}

func (m *Minimax) bestRoot(state *game.GameState, moves []game.Move, color game.Color) int {
	best := 0
	alpha, beta := math.Inf(-1), math.Inf(1)
	for i, mv := range moves {
		// Only a strict improvement replaces the incumbent, so
		// score ties keep the earliest move.
		if score := m.search(state.Play(mv), m.depth-1, alpha, beta, color); score > alpha {
			alpha, best = score, i
		}
	}
	return best
}

// bestRootParallel searches each root move with a full window on its
// own cloned state. Sharing alpha across workers would make results
// depend on completion order, so every branch is scored exactly and
// the results are combined by (score, lowest index), matching the
// sequential search.
func (m *Minimax) bestRootParallel(state *game.GameState, moves []game.Move, color game.Color) int {
	type result struct {
		index int
		score float64
	}
	tasks := make(chan int, len(moves))
	results := make(chan result, len(moves))

	for w := 0; w < m.parallel; w++ {
		go func() {
			for i := range tasks {
				score := m.search(state.Play(moves[i]), m.depth-1, math.Inf(-1), math.Inf(1), color)
				results <- result{index: i, score: score}
			}
		}()
	}
	for i := range moves {
		tasks <- i
	}
	close(tasks)

	best := result{index: 0, score: math.Inf(-1)}
	for range moves {
		r := <-results
		if r.score > best.score || (r.score == best.score && r.index < best.index) {
			best = r
		}
	}
	return best.index
}

func (m *Minimax) search(state *game.GameState, depth int, alpha, beta float64, maximizer game.Color) float64 {
	m.collector.AddNode()

	if winner := state.Winner(); winner != game.NoColor {
		if winner == maximizer {
			return winScore + float64(depth)
		}
		return -winScore - float64(depth)
	}
	if depth == 0 {
		return m.evaluate(state, maximizer)
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		// Stuck side: the turn passes at the cost of one ply.
		return m.search(state.PassTurn(), depth-1, alpha, beta, maximizer)
	}
	moves = m.ordered(state, moves, maximizer)

	if state.CurrentColor() == maximizer {
		value := math.Inf(-1)
		for _, mv := range moves {
			value = max(value, m.search(state.Play(mv), depth-1, alpha, beta, maximizer))
			alpha = max(alpha, value)
			if alpha >= beta {
				m.collector.AddCutoff()
				break
			}
		}
		return value
	}

	value := math.Inf(1)
	for _, mv := range moves {
		value = min(value, m.search(state.Play(mv), depth-1, alpha, beta, maximizer))
		beta = min(beta, value)
		if alpha >= beta {
			m.collector.AddCutoff()
			break
		}
	}
	return value
}

// ordered sorts moves by the evaluation of the resulting state, best
// first for the layer searching them: descending for the maximizer's
// turns, ascending otherwise. Better-first ordering is not needed for
// correctness but tightens the alpha-beta window early; the optional
// top-k cap then keeps the branching factor tractable, as only the
// ordered head is searched.
func (m *Minimax) ordered(state *game.GameState, moves []game.Move, maximizer game.Color) []game.Move {
	if len(moves) == 0 {
		return moves
	}
	type scored struct {
		move  game.Move
		score float64
	}
	ranked := make([]scored, len(moves))
	for i, mv := range moves {
		ranked[i] = scored{move: mv, score: m.evaluate(state.Play(mv), maximizer)}
	}
	descending := state.CurrentColor() == maximizer
	slices.SortStableFunc(ranked, func(a, b scored) int {
		switch {
		case a.score == b.score:
			return 0
		case (a.score > b.score) == descending:
			return -1
		default:
			return 1
		}
	})
	if m.topK > 0 && len(ranked) > m.topK {
		ranked = ranked[:m.topK]
	}
	out := make([]game.Move, len(ranked))
	for i, r := range ranked {
		out[i] = r.move
	}
	return out
}
