package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Selvamathuvappan/ChineseCheckers/experiments"
	"github.com/Selvamathuvappan/ChineseCheckers/game"
	"github.com/Selvamathuvappan/ChineseCheckers/gamemaster"
	"github.com/Selvamathuvappan/ChineseCheckers/searcher"
)

func main() {
	seats := flag.String("seats", "minimax,greedy",
		"comma-separated strategy per seat (greedy, minimax, uct); 2, 3, 4 or 6 seats")
	depth := flag.Int("depth", 2, "minimax search depth in plies")
	topK := flag.Int("topk", 8, "search at most this many moves per ply (0 = all)")
	workers := flag.Int("workers", 1, "parallel root workers for minimax / goroutines for uct")
	iterations := flag.Int("iterations", 1000, "uct iterations per move")
	experiment := flag.Bool("experiment", false, "run the self-play depth experiment instead of a game")
	debug := flag.Bool("debug", false, "log every move")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if *experiment {
		if err := experiments.RunDepthExperiment(); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	strategies, err := parseSeats(*seats, *depth, *topK, *workers, *iterations)
	if err != nil {
		log.Fatal().Err(err).Msg("bad seat configuration")
	}
	engine, err := gamemaster.NewLocalEngine(gamemaster.Config{Strategies: strategies})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up game")
	}

	winner, err := engine.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	if winner == game.NoColor {
		fmt.Println("Game drawn.")
		return
	}
	fmt.Printf("Winner: %v\n", winner)
}

func parseSeats(seats string, depth, topK, workers, iterations int) ([]searcher.Strategy, error) {
	var strategies []searcher.Strategy
	for _, kind := range strings.Split(seats, ",") {
		switch strings.TrimSpace(kind) {
		case "greedy":
			strategies = append(strategies, searcher.NewGreedy(nil))
		case "minimax":
			m, err := searcher.NewMinimax(
				searcher.WithDepth(depth),
				searcher.WithTopK(topK),
				searcher.WithParallel(workers),
			)
			if err != nil {
				return nil, err
			}
			strategies = append(strategies, m)
		case "uct":
			strategies = append(strategies, searcher.NewUCT(
				searcher.WithGoroutines(workers),
				searcher.WithIterations(iterations),
			))
		default:
			return nil, fmt.Errorf("%w: unknown strategy %q", game.ErrInvalidConfiguration, kind)
		}
	}
	return strategies, nil
}
