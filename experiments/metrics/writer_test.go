package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	writer, err := NewWriter(root)
	require.NoError(t, err)
	require.DirExists(t, writer.BaseDir())

	t.Run("agent configs", func(t *testing.T) {
		configs := []AgentConfig{
			{ID: 0, Kind: "greedy"},
			{ID: 1, Kind: "minimax", Depth: 2, TopK: 8, Workers: 4},
		}
		require.NoError(t, writer.WriteAgentConfigs(configs))

		rows := readCSV(t, filepath.Join(writer.BaseDir(), "agent_configs.csv"))
		require.Len(t, rows, 3, "Header plus one row per config")
		require.Equal(t, []string{"id", "kind", "depth", "top_k", "workers", "iterations"}, rows[0])
		require.Equal(t, []string{"1", "minimax", "2", "8", "4", "0"}, rows[2])
	})

	t.Run("game records", func(t *testing.T) {
		records := []GameRecord{
			{ID: 1, Agent1: 0, Agent2: 1, Winner: "red", Plies: 42, Duration: time.Second},
		}
		require.NoError(t, writer.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(writer.BaseDir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "0", "1", "red", "42", "1s"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		records := []MoveRecord{
			{Game: 1, Step: 3, Color: "blue",
				SearchMetric: SearchMetric{Nodes: 120, Cutoffs: 7, Duration: time.Millisecond}},
		}
		require.NoError(t, writer.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(writer.BaseDir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "3", "blue", "120", "7", "1ms"}, rows[1])
	})
}
