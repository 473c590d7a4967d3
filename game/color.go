package game

// Color identifies a player and the home triangle its pegs start in.
// Colors are numbered 1-6 matching the board's region indices; NoColor
// marks empty cells and "no winner yet".
type Color int8

const (
	NoColor Color = iota
	Red
	Yellow
	Green
	Blue
	White
	Black
)

// NumColors is the number of home triangles on the standard board.
const NumColors = 6

var colorNames = [...]string{"none", "red", "yellow", "green", "blue", "white", "black"}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "invalid"
	}
	return colorNames[c]
}

// Opposite returns the color whose home triangle is this color's target.
func (c Color) Opposite() Color {
	if c == NoColor {
		return NoColor
	}
	return Color((int(c)-1+NumColors/2)%NumColors + 1)
}
