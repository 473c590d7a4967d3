// Package gamemaster drives a local game: it owns the authoritative
// GameState, obtains moves from the configured seats, validates them
// against the legal-move set and applies them until a winner is found
// or every seat is stuck.
package gamemaster

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Selvamathuvappan/ChineseCheckers/game"
	"github.com/Selvamathuvappan/ChineseCheckers/searcher"
)

// Config describes a game: one strategy per seat, in turn order.
type Config struct {
	Strategies []searcher.Strategy
	Rules      game.Rules // nil means standard rules
	MaxTurns   int        // 0 means Rules.MaxTurns()
}

// Update is a read-only snapshot emitted after every applied move,
// for rendering. The state is a copy; consumers may not see every
// update, but the engine never blocks on slow consumers.
type Update struct {
	Move  game.Move
	State *game.GameState
	Hash  game.StateHash
}

type UpdateGetter func() (*Update, bool)

// maxMoveRetries bounds how often a seat may submit rejected moves in
// a row before the game is abandoned.
const maxMoveRetries = 3

type localEngine struct {
	state    *game.GameState
	seats    map[game.Color]searcher.Strategy
	maxTurns int
	updateCh chan Update
	gameOver bool
}

// NewLocalEngine validates the configuration and sets up the starting
// position. Unsupported seat counts and nil strategies are rejected
// before any game state is created.
func NewLocalEngine(cfg Config) (*localEngine, error) {
	rules := cfg.Rules
	if rules == nil {
		rules = game.NewStandardRules()
	}
	for i, s := range cfg.Strategies {
		if s == nil {
			return nil, fmt.Errorf("%w: seat %d has no strategy", game.ErrInvalidConfiguration, i)
		}
	}
	state, err := game.NewGameState(game.NewBoard(), rules, len(cfg.Strategies))
	if err != nil {
		return nil, err
	}

	seats := make(map[game.Color]searcher.Strategy, len(cfg.Strategies))
	for i, color := range state.Colors {
		seats[color] = cfg.Strategies[i]
	}
	maxTurns := cfg.MaxTurns
	if maxTurns <= 0 {
		maxTurns = rules.MaxTurns()
	}
	return &localEngine{
		state:    state,
		seats:    seats,
		maxTurns: maxTurns,
		updateCh: make(chan Update, 1),
	}, nil
}

// State returns the current authoritative state for display. Callers
// must treat it as read-only.
func (e *localEngine) State() *game.GameState {
	return e.state
}

// Updates returns a getter that yields the next pending update, if any.
func (e *localEngine) Updates() UpdateGetter {
	return func() (*Update, bool) {
		select {
		case u, ok := <-e.updateCh:
			if !ok {
				return nil, false
			}
			return &u, true
		default:
			return nil, true
		}
	}
}

// Play validates and applies an externally supplied move for the side
// to move. Moves are matched against the legal set by origin and
// destination; the canonical generated move (with its hop path) is
// what gets applied. Rejected moves leave the state untouched.
func (e *localEngine) Play(move game.Move) error {
	if e.gameOver {
		return fmt.Errorf("%w: game is over", game.ErrInvalidMove)
	}
	canonical, err := e.matchLegal(move)
	if err != nil {
		return err
	}
	e.apply(canonical)
	return nil
}

func (e *localEngine) matchLegal(move game.Move) (game.Move, error) {
	mover := e.state.CurrentColor()
	if e.state.ColorAt(move.From) != mover {
		return game.Move{}, fmt.Errorf("%w: no %v peg at %v", game.ErrInvalidMove, mover, move.From)
	}
	for _, legal := range e.state.PieceMoves(move.From) {
		if legal.From == move.From && legal.To == move.To {
			return legal, nil
		}
	}
	return game.Move{}, fmt.Errorf("%w: %v is not legal for %v",
		game.ErrInvalidMove, move, e.state.CurrentColor())
}

func (e *localEngine) apply(move game.Move) {
	e.state = e.state.Play(move)
	u := Update{Move: move, State: e.state.Copy(), Hash: e.state.Hash()}
	select {
	case e.updateCh <- u:
	default: // rendering never blocks the engine
	}
	if e.state.Winner() != game.NoColor {
		e.finish()
	}
}

func (e *localEngine) finish() {
	if !e.gameOver {
		e.gameOver = true
		close(e.updateCh)
	}
}

// Run plays the game to completion, asking each seat's strategy for a
// move in turn. It returns the winning color, or NoColor on a
// stalemate (every seat stuck) or when the turn cap is reached.
func (e *localEngine) Run() (game.Color, error) {
	defer e.finish()

	log.Info().Stringer("color", e.state.CurrentColor()).Msg("game starting")

	stuck, retries := 0, 0
	for e.state.Winner() == game.NoColor && e.state.MoveCount < e.maxTurns {
		color := e.state.CurrentColor()
		legal := e.state.LegalMoves()
		if len(legal) == 0 {
			log.Info().Stringer("color", color).Msg("no legal moves, skipping turn")
			e.state = e.state.PassTurn()
			stuck++
			if stuck >= len(e.state.Colors) {
				log.Info().Msg("every color is stuck, game drawn")
				return game.NoColor, nil
			}
			continue
		}
		stuck = 0

		move, err := e.seats[color].ChooseMove(e.state)
		if err != nil {
			return game.NoColor, fmt.Errorf("seat %v: %w", color, err)
		}
		canonical, err := e.matchLegal(move)
		if err != nil {
			// Rejected moves leave the state untouched; the same
			// seat is re-asked, up to a retry budget.
			log.Warn().Stringer("color", color).Err(err).Msg("move rejected")
			retries++
			if retries > maxMoveRetries {
				return game.NoColor, err
			}
			continue
		}
		retries = 0
		e.apply(canonical)

		log.Debug().
			Stringer("color", color).
			Stringer("move", canonical).
			Int("ply", e.state.MoveCount).
			Msg("move applied")
	}

	winner := e.state.Winner()
	if winner != game.NoColor {
		log.Info().Stringer("winner", winner).Int("plies", e.state.MoveCount).Msg("game over")
	} else {
		log.Info().Int("plies", e.state.MoveCount).Msg("turn cap reached without a winner")
	}
	return winner, nil
}
