package gamemaster

import (
	"errors"
	"fmt"

	"github.com/Selvamathuvappan/ChineseCheckers/game"
	"github.com/Selvamathuvappan/ChineseCheckers/searcher"
)

// ErrResigned reports that a human seat declined to provide a move.
var ErrResigned = errors.New("player resigned")

// MoveProvider supplies a human-selected move for the given state and
// color, typically from a UI. Returning ok=false resigns. Only the
// origin and destination matter; the engine validates the move against
// the legal set and substitutes the canonical hop path.
type MoveProvider func(state *game.GameState, color game.Color) (game.Move, bool)

type human struct {
	provide MoveProvider
}

// NewHuman wraps a MoveProvider as a seat strategy.
func NewHuman(provide MoveProvider) searcher.Strategy {
	return &human{provide: provide}
}

func (h *human) ChooseMove(state *game.GameState) (game.Move, error) {
	move, ok := h.provide(state, state.CurrentColor())
	if !ok {
		return game.Move{}, fmt.Errorf("%v: %w", state.CurrentColor(), ErrResigned)
	}
	return move, nil
}
