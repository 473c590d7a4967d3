package game

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Move relocates the peg at From to the empty cell To. For jump chains
// Hops holds the intermediate landing cells in order; it is empty for
// a single adjacent step and for a single jump.
type Move struct {
	From Cell
	To   Cell
	Hops []Cell
}

// IsJump reports whether the move hops over at least one peg.
func (m Move) IsJump() bool {
	return len(m.Hops) > 0 || Distance(m.From, m.To) > 1
}

// Path returns every cell the peg lands on, From first and To last.
func (m Move) Path() []Cell {
	path := make([]Cell, 0, len(m.Hops)+2)
	path = append(path, m.From)
	path = append(path, m.Hops...)
	return append(path, m.To)
}

func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && slices.Equal(m.Hops, o.Hops)
}

func (m Move) String() string {
	var sb strings.Builder
	for i, c := range m.Path() {
		if i > 0 {
			sb.WriteString("->")
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
