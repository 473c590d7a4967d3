// Package experiments runs automated self-play matchups between
// strategy configurations and records per-game and per-move metrics.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Selvamathuvappan/ChineseCheckers/experiments/metrics"
	"github.com/Selvamathuvappan/ChineseCheckers/game"
	"github.com/Selvamathuvappan/ChineseCheckers/searcher"
)

const (
	NumGames  = 10 // per matchup
	OutputDir = "experiments/records"
)

// RunDepthExperiment pits the greedy baseline against minimax at
// increasing depths, pairing each config with the baseline.
func RunDepthExperiment() error {
	baseline := metrics.AgentConfig{ID: 0, Kind: "greedy"}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: "minimax", Depth: 1, TopK: 8},
		{ID: 2, Kind: "minimax", Depth: 2, TopK: 8},
		{ID: 3, Kind: "minimax", Depth: 3, TopK: 8},
		{ID: 4, Kind: "minimax", Depth: 2, TopK: 8, Workers: 4},
		{ID: 5, Kind: "uct", Workers: 4, Iterations: 400},
	}
	matchUps := make([][2]metrics.AgentConfig, 0, len(configs))
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return runExperiment("depth", append(configs, baseline), matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) error {
	writer, err := metrics.NewWriter(OutputDir)
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}

	log.Info().Str("experiment", name).Str("dir", writer.BaseDir()).Msg("starting experiment")

	count := 0
	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	for mi, matchUp := range matchUps {
		log.Info().
			Int("matchup", mi+1).
			Int("of", len(matchUps)).
			Msgf("agent %d vs agent %d", matchUp[0].ID, matchUp[1].ID)

		for i := 0; i < NumGames; i++ {
			// Alternate the starting seat between games.
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}

			count++
			record, moves, err := runGame(count, first, second)
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, record)
			moveRecords = append(moveRecords, moves...)

			log.Info().
				Int("game", i+1).
				Str("winner", record.Winner).
				Int("plies", record.Plies).
				Msg("game finished")
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Str("experiment", name).Int("games", count).Msg("experiment complete")
	return nil
}

// runGame plays one two-seat game, driving the turn loop directly so
// each move can be wrapped with a collector start/complete pair.
func runGame(id int, first, second metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord, error) {
	rules := game.NewStandardRules()
	state, err := game.NewGameState(game.NewBoard(), rules, 2)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	collectors := map[game.Color]metrics.Collector{}
	seats := map[game.Color]searcher.Strategy{}
	for i, cfg := range []metrics.AgentConfig{first, second} {
		color := state.Colors[i]
		collector := metrics.NewCollector()
		strategy, err := buildStrategy(cfg, collector)
		if err != nil {
			return metrics.GameRecord{}, nil, err
		}
		collectors[color] = collector
		seats[color] = strategy
	}

	var moves []metrics.MoveRecord
	start := time.Now()
	stuck := 0
	for state.Winner() == game.NoColor && state.MoveCount < rules.MaxTurns() {
		color := state.CurrentColor()
		if len(state.LegalMoves()) == 0 {
			state = state.PassTurn()
			stuck++
			if stuck >= len(state.Colors) {
				break
			}
			continue
		}
		stuck = 0

		collector := collectors[color]
		collector.Start()
		move, err := seats[color].ChooseMove(state)
		if err != nil {
			return metrics.GameRecord{}, nil, fmt.Errorf("seat %v: %w", color, err)
		}
		state = state.Play(move)
		moves = append(moves, metrics.MoveRecord{
			Game:         id,
			Step:         state.MoveCount,
			Color:        color.String(),
			SearchMetric: collector.Complete(),
		})
	}

	record := metrics.GameRecord{
		ID:       id,
		Agent1:   first.ID,
		Agent2:   second.ID,
		Winner:   state.Winner().String(),
		Plies:    state.MoveCount,
		Duration: time.Since(start),
	}
	return record, moves, nil
}

func buildStrategy(cfg metrics.AgentConfig, collector metrics.Collector) (searcher.Strategy, error) {
	switch cfg.Kind {
	case "greedy":
		return searcher.NewGreedy(nil), nil
	case "minimax":
		return searcher.NewMinimax(
			searcher.WithDepth(cfg.Depth),
			searcher.WithTopK(cfg.TopK),
			searcher.WithParallel(cfg.Workers),
			searcher.WithCollector(collector),
		)
	case "uct":
		return searcher.NewUCT(
			searcher.WithGoroutines(cfg.Workers),
			searcher.WithIterations(cfg.Iterations),
		), nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy kind %q", game.ErrInvalidConfiguration, cfg.Kind)
	}
}
