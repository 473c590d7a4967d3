package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig identifies one strategy configuration under test.
type AgentConfig struct {
	ID         int
	Kind       string // "greedy", "minimax" or "uct"
	Depth      int    // minimax
	TopK       int    // minimax
	Workers    int    // minimax root workers / uct goroutines
	Iterations int    // uct
}

// GameRecord is one played game.
type GameRecord struct {
	ID       int
	Agent1   int // AgentConfig.ID, first seat
	Agent2   int // AgentConfig.ID, second seat
	Winner   string
	Plies    int
	Duration time.Duration
}

// MoveRecord is one move within a game.
type MoveRecord struct {
	Game  int
	Step  int
	Color string
	SearchMetric
}

// Writer persists experiment records as CSV files under a
// timestamped directory.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create experiment directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, c := range configs {
		rows = append(rows, []string{
			strconv.Itoa(c.ID), c.Kind,
			strconv.Itoa(c.Depth), strconv.Itoa(c.TopK),
			strconv.Itoa(c.Workers), strconv.Itoa(c.Iterations),
		})
	}
	header := []string{"id", "kind", "depth", "top_k", "workers", "iterations"}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Agent1), strconv.Itoa(r.Agent2),
			r.Winner,
			strconv.Itoa(r.Plies),
			r.Duration.String(),
		})
	}
	header := []string{"id", "agent1", "agent2", "winner", "plies", "duration"}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Color,
			strconv.FormatInt(r.Nodes, 10),
			strconv.FormatInt(r.Cutoffs, 10),
			r.Duration.String(),
		})
	}
	header := []string{"game", "step", "color", "nodes", "cutoffs", "duration"}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return nil
}
