package game

import "fmt"

// seatCombos lists which home triangles are used for each supported
// player count. Opposing triangles are paired so every color's target
// is either free or another player's home, per the standard rules.
var seatCombos = map[int][]Color{
	2: {Red, Blue},
	3: {Red, Green, White},
	4: {Red, Yellow, Blue, White},
	6: {Red, Yellow, Green, Blue, White, Black},
}

type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (sr *StandardRules) PegsPerColor() int {
	return 10
}

func (sr *StandardRules) SeatColors(players int) ([]Color, error) {
	combo, ok := seatCombos[players]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported player count %d (want 2, 3, 4 or 6)",
			ErrInvalidConfiguration, players)
	}
	colors := make([]Color, len(combo))
	copy(colors, combo)
	return colors, nil
}

func (sr *StandardRules) MaxTurns() int {
	return 400
}
