package gamemaster

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Selvamathuvappan/ChineseCheckers/game"
	"github.com/Selvamathuvappan/ChineseCheckers/searcher"
)

func TestNewLocalEngine(t *testing.T) {
	t.Run("two greedy seats", func(t *testing.T) {
		engine, err := NewLocalEngine(Config{
			Strategies: []searcher.Strategy{searcher.NewGreedy(nil), searcher.NewGreedy(nil)},
		})

		require.NoError(t, err)
		require.Equal(t, []game.Color{game.Red, game.Blue}, engine.State().Colors)
	})

	t.Run("rejects a nil strategy", func(t *testing.T) {
		_, err := NewLocalEngine(Config{
			Strategies: []searcher.Strategy{searcher.NewGreedy(nil), nil},
		})

		require.ErrorIs(t, err, game.ErrInvalidConfiguration)
	})

	t.Run("rejects unsupported seat counts", func(t *testing.T) {
		seats := make([]searcher.Strategy, 5)
		for i := range seats {
			seats[i] = searcher.NewGreedy(nil)
		}

		_, err := NewLocalEngine(Config{Strategies: seats})

		require.ErrorIs(t, err, game.ErrInvalidConfiguration)
	})
}

func TestLocalEnginePlay(t *testing.T) {
	newEngine := func(t *testing.T) *localEngine {
		t.Helper()
		engine, err := NewLocalEngine(Config{
			Strategies: []searcher.Strategy{searcher.NewGreedy(nil), searcher.NewGreedy(nil)},
		})
		require.NoError(t, err)
		return engine
	}

	t.Run("applies a legal external move", func(t *testing.T) {
		engine := newEngine(t)
		move := engine.State().LegalMoves()[0]

		require.NoError(t, engine.Play(move))

		require.Equal(t, game.Blue, engine.State().CurrentColor())
		require.Equal(t, game.Red, engine.State().ColorAt(move.To))
	})

	t.Run("substitutes the canonical hop path", func(t *testing.T) {
		engine := newEngine(t)
		var jump game.Move
		for _, m := range engine.State().LegalMoves() {
			if m.IsJump() {
				jump = m
				break
			}
		}
		require.True(t, jump.IsJump(), "The opening position should offer a jump")

		// Only origin and destination are supplied, as a UI would.
		require.NoError(t, engine.Play(game.Move{From: jump.From, To: jump.To}))
		require.Equal(t, game.Red, engine.State().ColorAt(jump.To))
	})

	t.Run("rejects a move from an empty cell", func(t *testing.T) {
		engine := newEngine(t)
		before := engine.State().Hash()

		err := engine.Play(game.Move{From: game.Cell{X: 0, Y: 0}, To: game.Cell{X: 2, Y: 0}})

		require.ErrorIs(t, err, game.ErrInvalidMove)
		require.Equal(t, before, engine.State().Hash(), "Rejected moves must not change the state")
	})

	t.Run("rejects the opponent's peg", func(t *testing.T) {
		engine := newEngine(t)
		blue := engine.State().Board.HomeRegion(game.Blue)[0]

		err := engine.Play(game.Move{From: blue, To: game.Cell{X: 0, Y: 0}})

		require.ErrorIs(t, err, game.ErrInvalidMove)
	})

	t.Run("rejects an unreachable destination", func(t *testing.T) {
		engine := newEngine(t)
		red := engine.State().Pieces(game.Red)[0]

		err := engine.Play(game.Move{From: red, To: game.Cell{X: 0, Y: 0}})

		require.ErrorIs(t, err, game.ErrInvalidMove)
	})

	t.Run("every generated legal move validates unchanged", func(t *testing.T) {
		engine := newEngine(t)

		for _, m := range engine.State().LegalMoves() {
			canonical, err := engine.matchLegal(m)
			require.NoError(t, err, "%v should be accepted", m)
			require.True(t, canonical.Equal(m),
				"Validation should return %v unchanged, got %v", m, canonical)
		}
	})

	t.Run("publishes an update per applied move", func(t *testing.T) {
		engine := newEngine(t)
		getUpdate := engine.Updates()
		move := engine.State().LegalMoves()[0]

		require.NoError(t, engine.Play(move))

		update, open := getUpdate()
		require.True(t, open)
		require.NotNil(t, update)
		require.True(t, update.Move.Equal(move))
		require.Equal(t, engine.State().Hash(), update.Hash)
	})
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("greedy self-play ends cleanly", func(t *testing.T) {
		engine, err := NewLocalEngine(Config{
			Strategies: []searcher.Strategy{searcher.NewGreedy(nil), searcher.NewGreedy(nil)},
		})
		require.NoError(t, err)

		winner, err := engine.Run()
		require.NoError(t, err)

		final := engine.State()
		require.Equal(t, winner, final.Winner())
		require.Len(t, final.Pieces(game.Red), 10, "Pegs are never captured")
		require.Len(t, final.Pieces(game.Blue), 10)
		if winner != game.NoColor {
			require.True(t, final.HasWon(winner))
		} else {
			require.GreaterOrEqual(t, final.MoveCount, engine.maxTurns)
		}
	})

	t.Run("depth-two minimax self-play ends cleanly", func(t *testing.T) {
		seat := func() searcher.Strategy {
			m, err := searcher.NewMinimax(searcher.WithDepth(2), searcher.WithTopK(4))
			require.NoError(t, err)
			return m
		}
		engine, err := NewLocalEngine(Config{
			Strategies: []searcher.Strategy{seat(), seat()},
		})
		require.NoError(t, err)

		winner, err := engine.Run()
		require.NoError(t, err)

		final := engine.State()
		require.Equal(t, winner, final.Winner())
		require.Len(t, final.Pieces(game.Red), 10)
		require.Len(t, final.Pieces(game.Blue), 10)
		require.LessOrEqual(t, final.MoveCount, engine.maxTurns,
			"Self-play must stop within the turn cap")
	})

	t.Run("turn cap stops a stalled game", func(t *testing.T) {
		engine, err := NewLocalEngine(Config{
			Strategies: []searcher.Strategy{searcher.NewGreedy(nil), searcher.NewGreedy(nil)},
			MaxTurns:   10,
		})
		require.NoError(t, err)

		winner, err := engine.Run()
		require.NoError(t, err)

		require.Equal(t, game.NoColor, winner)
		require.Equal(t, 10, engine.State().MoveCount)
	})

	t.Run("a resigning seat aborts with the cause", func(t *testing.T) {
		resign := NewHuman(func(*game.GameState, game.Color) (game.Move, bool) {
			return game.Move{}, false
		})
		engine, err := NewLocalEngine(Config{
			Strategies: []searcher.Strategy{resign, searcher.NewGreedy(nil)},
		})
		require.NoError(t, err)

		_, err = engine.Run()

		require.ErrorIs(t, err, ErrResigned)
	})

	t.Run("an ill-behaved seat runs out of retries", func(t *testing.T) {
		offBoard := NewHuman(func(*game.GameState, game.Color) (game.Move, bool) {
			return game.Move{From: game.Cell{X: 0, Y: 0}, To: game.Cell{X: 2, Y: 0}}, true
		})
		engine, err := NewLocalEngine(Config{
			Strategies: []searcher.Strategy{offBoard, searcher.NewGreedy(nil)},
		})
		require.NoError(t, err)

		_, err = engine.Run()

		require.ErrorIs(t, err, game.ErrInvalidMove)
	})
}
