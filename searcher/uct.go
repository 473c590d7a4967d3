package searcher

import (
	"math"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/Selvamathuvappan/ChineseCheckers/game"
)

// UCB1 exploration constant (squared).
const cSquared = 2.0

type uctOption func(u *uct)

func WithGoroutines(goroutines int) uctOption {
	return func(u *uct) {
		u.goroutines = goroutines
	}
}

func WithIterations(iterations int) uctOption {
	return func(u *uct) {
		u.iterations = iterations
	}
}

// WithCutoff truncates rollouts after the given number of plies;
// truncated rollouts are scored by the evaluator instead of a winner.
func WithCutoff(cutoff int) uctOption {
	return func(u *uct) {
		u.cutoff = cutoff
	}
}

func WithSeed(seed uint64) uctOption {
	return func(u *uct) {
		u.seed = seed
	}
}

func WithRolloutEvaluate(evaluate game.Evaluate) uctOption {
	return func(u *uct) {
		u.evaluate = evaluate
	}
}

// uct is a monte-carlo tree search strategy: UCB1 selection, random
// rollouts truncated at a cutoff, root-parallel workers each building
// an independent tree. Worker trees are merged by summing per-move
// root visit counts, so the search needs no locking.
type uct struct {
	goroutines int
	iterations int
	cutoff     int
	seed       uint64
	evaluate   game.Evaluate
}

func NewUCT(options ...uctOption) *uct {
	u := &uct{
		goroutines: 1,
		iterations: 1000,
		cutoff:     60,
		seed:       1,
		evaluate:   game.Advancement,
	}
	for _, option := range options {
		option(u)
	}
	if u.goroutines < 1 {
		u.goroutines = 1
	}
	return u
}

func (u *uct) ChooseMove(state *game.GameState) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, ErrNoMove
	}

	visits := make([][]float64, u.goroutines)
	var wg sync.WaitGroup
	for w := 0; w < u.goroutines; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(u.seed + uint64(w)))
			visits[w] = u.buildTree(state, moves, rng)
		}(w)
	}
	wg.Wait()

	best, bestVisits := 0, -1.0
	for i := range moves {
		total := 0.0
		for w := range visits {
			total += visits[w][i]
		}
		if total > bestVisits {
			best, bestVisits = i, total
		}
	}
	return moves[best], nil
}

type uctNode struct {
	move       game.Move  // move that led here from the parent
	mover      game.Color // color that played that move
	children   []*uctNode
	unexplored []game.Move
	visits     float64
	rewards    float64
}

// buildTree runs the iteration budget on a private tree and returns
// the visit count per root move.
func (u *uct) buildTree(state *game.GameState, moves []game.Move, rng *rand.Rand) []float64 {
	root := &uctNode{}
	mover := state.CurrentColor()
	for _, mv := range moves {
		root.children = append(root.children, &uctNode{
			move:       mv,
			mover:      mover,
			unexplored: state.Play(mv).LegalMoves(),
		})
	}

	for i := 0; i < u.iterations; i++ {
		// Visit every root move once before trusting UCB.
		pick := i % len(moves)
		if i >= len(moves) {
			pick = bestChild(root, rng)
		}
		child := root.children[pick]
		path := []*uctNode{root, child}
		leafState := u.descend(child, state.Play(child.move), &path, rng)

		rewards := u.rollout(leafState, rng)
		for _, node := range path {
			node.visits++
			node.rewards += rewards[node.mover]
		}
	}

	visits := make([]float64, len(moves))
	for i, child := range root.children {
		visits[i] = child.visits
	}
	return visits
}

// descend selects through fully expanded nodes by UCB1 and expands one
// unexplored move at the frontier, appending visited nodes to path.
func (u *uct) descend(node *uctNode, state *game.GameState, path *[]*uctNode, rng *rand.Rand) *game.GameState {
	for state.Winner() == game.NoColor {
		if len(node.unexplored) > 0 {
			pick := rng.Intn(len(node.unexplored))
			mv := node.unexplored[pick]
			node.unexplored = append(node.unexplored[:pick], node.unexplored[pick+1:]...)

			mover := state.CurrentColor()
			state = state.Play(mv)
			child := &uctNode{move: mv, mover: mover, unexplored: state.LegalMoves()}
			node.children = append(node.children, child)
			*path = append(*path, child)
			return state
		}
		if len(node.children) == 0 {
			// The side to move is stuck; treat as a leaf and let
			// the rollout pass the turn.
			return state
		}
		node = node.children[bestChild(node, rng)]
		state = state.Play(node.move)
		*path = append(*path, node)
	}
	return state
}

// bestChild picks the child maximizing UCB1, breaking ties uniformly.
func bestChild(parent *uctNode, rng *rand.Rand) int {
	c2LnN := cSquared * math.Log(math.Max(parent.visits, 1))
	best, bestScore, ties := 0, math.Inf(-1), 1
	for i, child := range parent.children {
		score := math.Inf(1) // unexplored first
		if child.visits > 0 {
			score = child.rewards/child.visits + math.Sqrt(c2LnN/child.visits)
		}
		switch {
		case score > bestScore:
			best, bestScore, ties = i, score, 1
		case score == bestScore:
			ties++
			if rng.Intn(ties) == 0 {
				best = i
			}
		}
	}
	return best
}

// rollout plays uniformly random moves until a winner or the cutoff,
// then apportions rewards per color: 1 for the winner, or on cutoff
// for the color leading on evaluation.
func (u *uct) rollout(state *game.GameState, rng *rand.Rand) map[game.Color]float64 {
	for ply := 0; ply < u.cutoff && state.Winner() == game.NoColor; ply++ {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			state = state.PassTurn()
			continue
		}
		state = state.Play(moves[rng.Intn(len(moves))])
	}

	rewards := make(map[game.Color]float64, len(state.Colors))
	if winner := state.Winner(); winner != game.NoColor {
		rewards[winner] = 1
		return rewards
	}
	leader, leaderScore := game.NoColor, math.Inf(-1)
	for _, color := range state.Colors {
		if score := u.evaluate(state, color); score > leaderScore {
			leader, leaderScore = color, score
		}
	}
	rewards[leader] = 1
	return rewards
}
