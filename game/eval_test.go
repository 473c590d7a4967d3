package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdvancement(t *testing.T) {
	scoreAt := func(t *testing.T, c Cell) float64 {
		t.Helper()
		gs := bareState(t)
		gs.Occupancy[c] = Red
		return Advancement(gs, Red)
	}

	t.Run("scores rise as a peg advances", func(t *testing.T) {
		// Red advances south, so each cell is strictly better than
		// the one before it.
		waypoints := []Cell{{0, 6}, {0, 4}, {0, 0}, {0, -4}, {0, -6}, {0, -8}}
		for i := 1; i < len(waypoints); i++ {
			require.Greater(t, scoreAt(t, waypoints[i]), scoreAt(t, waypoints[i-1]),
				"%v should score higher than %v", waypoints[i], waypoints[i-1])
		}
	})

	t.Run("entering the target region is rewarded", func(t *testing.T) {
		require.Greater(t, scoreAt(t, Cell{0, -6})-scoreAt(t, Cell{0, -4}), targetBonus,
			"Crossing into the target should add the bonus on top of the advance")
	})

	t.Run("pure function of the state", func(t *testing.T) {
		gs, err := NewGameState(NewBoard(), NewStandardRules(), 2)
		require.NoError(t, err)

		require.Equal(t, Advancement(gs, Red), Advancement(gs, Red))
		require.Equal(t, Advancement(gs, Red), Advancement(gs.Copy(), Red))
	})

	t.Run("opening position is symmetric", func(t *testing.T) {
		gs, err := NewGameState(NewBoard(), NewStandardRules(), 2)
		require.NoError(t, err)

		require.InDelta(t, Advancement(gs, Red), Advancement(gs, Blue), 1e-9,
			"Mirrored starting positions should score the same")
	})
}
