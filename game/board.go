package game

import "fmt"

// BoardCells is the cell count of the standard 6-point star.
const BoardCells = 121

// hexSides are the half-planes a*x + b*y <= c bounding the central
// hexagon, indexed by the region that lies beyond each side: a cell
// violating side i belongs to triangle i+1.
var hexSides = [NumColors]struct{ a, b, c int }{
	{0, 1, 4},   // region 1, north
	{1, 1, 8},   // region 2, northeast
	{1, -1, 8},  // region 3, southeast
	{0, -1, 4},  // region 4, south
	{-1, -1, 8}, // region 5, southwest
	{-1, 1, 8},  // region 6, northwest
}

// Board is the fixed star topology: the cell set, its partition into
// the central hexagon and six home triangles, and the precomputed
// adjacency. Immutable after construction and shared read-only by
// every GameState.
type Board struct {
	cells       []Cell
	regions     map[Cell]int
	neighbors   map[Cell][]Cell
	regionCells [NumColors + 1][]Cell
	targetTips  [NumColors + 1]Cell
}

// NewBoard constructs the standard board and verifies the topology is
// internally consistent. Construction failures are programming
// defects, so they panic rather than return an error.
func NewBoard() *Board {
	b := &Board{
		regions:   make(map[Cell]int, BoardCells),
		neighbors: make(map[Cell][]Cell, BoardCells),
	}
	for y := 8; y >= -8; y-- {
		for x := -12; x <= 12; x++ {
			c := Cell{x, y}
			region, ok := starRegion(c)
			if !ok {
				continue
			}
			b.cells = append(b.cells, c)
			b.regions[c] = region
			b.regionCells[region] = append(b.regionCells[region], c)
		}
	}
	for _, c := range b.cells {
		for _, d := range directions {
			n := c.add(d)
			if _, ok := b.regions[n]; ok {
				b.neighbors[c] = append(b.neighbors[c], n)
			}
		}
	}
	for color := Red; color <= Black; color++ {
		b.targetTips[color] = tip(b.regionCells[int(color.Opposite())], b.AdvanceDirection(color))
	}
	b.validate()
	return b
}

// starRegion reports whether c is on the star and which region it
// belongs to: a cell is valid when it lies beyond at most one hexagon
// side, and belongs to the triangle past that side (0 if none).
func starRegion(c Cell) (int, bool) {
	if (c.X+c.Y)&1 != 0 {
		return 0, false
	}
	region := 0
	for i, s := range hexSides {
		if s.a*c.X+s.b*c.Y > s.c {
			if region != 0 {
				return 0, false
			}
			region = i + 1
		}
	}
	return region, true
}

func (b *Board) validate() {
	if len(b.cells) != BoardCells {
		panic(fmt.Sprintf("board has %d cells, want %d", len(b.cells), BoardCells))
	}
	for region := 1; region <= NumColors; region++ {
		if got := len(b.regionCells[region]); got != 10 {
			panic(fmt.Sprintf("region %d has %d cells, want 10", region, got))
		}
	}
	for c, ns := range b.neighbors {
		if len(ns) > len(directions) {
			panic(fmt.Sprintf("cell %v has %d neighbors", c, len(ns)))
		}
		for _, n := range ns {
			if !b.adjacent(n, c) {
				panic(fmt.Sprintf("adjacency not symmetric between %v and %v", c, n))
			}
		}
	}
}

func (b *Board) adjacent(a, c Cell) bool {
	for _, n := range b.neighbors[a] {
		if n == c {
			return true
		}
	}
	return false
}

// tip picks the cell of a region farthest along the given direction,
// i.e. the point of the target triangle.
func tip(cells []Cell, dir Cell) Cell {
	best := cells[0]
	bestDot := best.X*dir.X + best.Y*dir.Y
	for _, c := range cells[1:] {
		if dot := c.X*dir.X + c.Y*dir.Y; dot > bestDot {
			best, bestDot = c, dot
		}
	}
	return best
}

// Cells returns every board cell in a fixed deterministic order. The
// returned slice is shared and must not be modified.
func (b *Board) Cells() []Cell {
	return b.cells
}

func (b *Board) Contains(c Cell) bool {
	_, ok := b.regions[c]
	return ok
}

// Neighbors returns the adjacent cells of c (at most six). The
// returned slice is shared and must not be modified.
func (b *Board) Neighbors(c Cell) []Cell {
	return b.neighbors[c]
}

// Region returns the region index of c: 0 for the central hexagon,
// 1-6 for the home triangles. ok is false for cells off the board.
func (b *Board) Region(c Cell) (int, bool) {
	region, ok := b.regions[c]
	return region, ok
}

// HomeRegion returns the cells of color's starting triangle.
func (b *Board) HomeRegion(color Color) []Cell {
	return b.regionCells[color]
}

// TargetRegion returns the cells of the triangle color must fill to win.
func (b *Board) TargetRegion(color Color) []Cell {
	return b.regionCells[color.Opposite()]
}

// AdvanceDirection returns the unit offset pointing from color's home
// triangle toward its target triangle.
func (b *Board) AdvanceDirection(color Color) Cell {
	s := hexSides[color-1]
	return Cell{-s.a, -s.b}
}

// TargetTip returns the far point of color's target triangle.
func (b *Board) TargetTip(color Color) Cell {
	return b.targetTips[color]
}

// CanRest reports whether a peg of the given color may end a move on
// c: pegs may rest in the central hexagon, their own home triangle or
// their target triangle, but not in other players' triangles.
func (b *Board) CanRest(color Color, c Cell) bool {
	region, ok := b.regions[c]
	if !ok {
		return false
	}
	return region == 0 || region == int(color) || region == int(color.Opposite())
}
