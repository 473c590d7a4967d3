package searcher

import (
	"math"

	"github.com/Selvamathuvappan/ChineseCheckers/game"
)

// Greedy picks the legal move whose resulting state scores highest for
// the mover, a one-ply lookahead. Ties keep the first-seen move so
// repeated calls on the same state return the same move.
type Greedy struct {
	evaluate game.Evaluate
}

func NewGreedy(evaluate game.Evaluate) *Greedy {
	if evaluate == nil {
		evaluate = game.Advancement
	}
	return &Greedy{evaluate: evaluate}
}

func (g *Greedy) ChooseMove(state *game.GameState) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, ErrNoMove
	}

	color := state.CurrentColor()
	best := moves[0]
	bestScore := math.Inf(-1)
	for _, m := range moves {
		if score := g.evaluate(state.Play(m), color); score > bestScore {
			best, bestScore = m, score
		}
	}
	return best, nil
}
