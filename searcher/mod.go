// Package searcher implements the move-choosing strategies: greedy
// one-ply evaluation, depth-limited minimax with alpha-beta pruning,
// and UCT monte-carlo search.
package searcher

import (
	"errors"

	"github.com/Selvamathuvappan/ChineseCheckers/game"
)

// Strategy picks a move for the side to move. Implementations must
// not mutate the given state.
type Strategy interface {
	ChooseMove(state *game.GameState) (game.Move, error)
}

// ErrNoMove reports that the side to move has no legal move across
// all of its pegs. Callers should skip the turn, not abort the game.
var ErrNoMove = errors.New("no legal moves available")
