package game

import "fmt"

// Cell is a position on the star board in doubled coordinates: a
// horizontal step changes x by two, a diagonal step changes x by one
// and y by one, so x+y is even for every cell on the board.
type Cell struct {
	X, Y int
}

// directions holds the six neighbor offsets, fixed order.
var directions = [6]Cell{
	{2, 0},   // east
	{1, 1},   // northeast
	{-1, 1},  // northwest
	{-2, 0},  // west
	{-1, -1}, // southwest
	{1, -1},  // southeast
}

func (c Cell) add(d Cell) Cell {
	return Cell{c.X + d.X, c.Y + d.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Distance returns the hexagonal grid distance between two cells.
func Distance(a, b Cell) int {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	if dx > dy {
		return dy + (dx-dy)/2
	}
	return dy
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
