package game

// Evaluate scores a state from color's perspective; higher is better.
// Implementations must be pure functions of the state so scores stay
// comparable across calls within one search.
type Evaluate func(gs *GameState, color Color) float64

// Evaluation weights. The advancement term dominates; the distance
// term pulls stragglers toward the target tip, and the region terms
// reward emptying the home triangle and filling the target one.
const (
	tipDistanceWeight = 0.5
	targetBonus       = 3.0
	homePenalty       = 3.0
)

// Advancement is the standard positional heuristic: for each of
// color's pegs it sums the peg's progress along the color's advance
// direction, subtracts a weighted hex distance to the target tip, and
// applies a bonus for pegs already in the target region and a penalty
// for pegs still in the home region.
func Advancement(gs *GameState, color Color) float64 {
	board := gs.Board
	dir := board.AdvanceDirection(color)
	tip := board.TargetTip(color)

	var score float64
	for _, p := range gs.Pieces(color) {
		score += float64(p.X*dir.X + p.Y*dir.Y)
		score -= tipDistanceWeight * float64(Distance(p, tip))
		region, _ := board.Region(p)
		switch region {
		case int(color.Opposite()):
			score += targetBonus
		case int(color):
			score -= homePenalty
		}
	}
	return score
}
