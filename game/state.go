package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

type StateHash uint64

// GameState is a snapshot of one game: peg positions, the seats in
// turn order and whose turn it is. The Board and Rules are static and
// shared; everything else is copied by Copy and Play so hypothetical
// states explored by search never alias the original.
type GameState struct {
	Board     *Board
	Rules     Rules
	Occupancy map[Cell]Color // peg positions; absent key means empty
	Colors    []Color        // seats in turn order
	Turn      int            // index into Colors of the side to move
	MoveCount int            // applied plies, passes included
	Won       Color          // NoColor while the game is running
}

// NewGameState sets up a fresh game for the given seat count with
// every color's pegs on its home triangle.
func NewGameState(board *Board, rules Rules, players int) (*GameState, error) {
	colors, err := rules.SeatColors(players)
	if err != nil {
		return nil, err
	}
	gs := &GameState{
		Board:     board,
		Rules:     rules,
		Occupancy: make(map[Cell]Color, len(colors)*rules.PegsPerColor()),
		Colors:    colors,
	}
	for _, color := range colors {
		home := board.HomeRegion(color)
		if len(home) != rules.PegsPerColor() {
			return nil, fmt.Errorf("%w: %d pegs per color but home region has %d cells",
				ErrInvalidConfiguration, rules.PegsPerColor(), len(home))
		}
		for _, c := range home {
			gs.Occupancy[c] = color
		}
	}
	return gs, nil
}

func (gs *GameState) Copy() *GameState {
	occupancy := make(map[Cell]Color, len(gs.Occupancy))
	for c, color := range gs.Occupancy {
		occupancy[c] = color
	}
	colors := make([]Color, len(gs.Colors))
	copy(colors, gs.Colors)

	return &GameState{
		Board:     gs.Board, // static, shared
		Rules:     gs.Rules,
		Occupancy: occupancy,
		Colors:    colors,
		Turn:      gs.Turn,
		MoveCount: gs.MoveCount,
		Won:       gs.Won,
	}
}

// CurrentColor returns the side to move.
func (gs *GameState) CurrentColor() Color {
	return gs.Colors[gs.Turn]
}

// ColorAt returns the color of the peg on c, or NoColor if c is empty.
func (gs *GameState) ColorAt(c Cell) Color {
	return gs.Occupancy[c]
}

// Pieces returns color's peg cells in the board's deterministic order.
func (gs *GameState) Pieces(color Color) []Cell {
	pieces := make([]Cell, 0, gs.Rules.PegsPerColor())
	for _, c := range gs.Board.Cells() {
		if gs.Occupancy[c] == color {
			pieces = append(pieces, c)
		}
	}
	return pieces
}

// Play returns the state after applying m for the side to move. The
// move must come from LegalMoves (or be validated against it): a move
// that breaks the occupancy invariant is a programming defect and
// panics rather than corrupting the state.
func (gs *GameState) Play(m Move) *GameState {
	mover := gs.CurrentColor()
	if gs.Occupancy[m.From] != mover {
		panic(fmt.Sprintf("play %v: origin not occupied by %v", m, mover))
	}
	if _, occupied := gs.Occupancy[m.To]; occupied {
		panic(fmt.Sprintf("play %v: destination occupied", m))
	}
	if !gs.Board.Contains(m.To) {
		panic(fmt.Sprintf("play %v: destination off board", m))
	}

	next := gs.Copy()
	delete(next.Occupancy, m.From)
	next.Occupancy[m.To] = mover
	next.MoveCount++
	if next.HasWon(mover) {
		next.Won = mover
	}
	next.Turn = (next.Turn + 1) % len(next.Colors)
	return next
}

// PassTurn returns the state with only the side to move advanced,
// used when the active color is stuck with no legal move.
func (gs *GameState) PassTurn() *GameState {
	next := gs.Copy()
	next.MoveCount++
	next.Turn = (next.Turn + 1) % len(next.Colors)
	return next
}

// HasWon reports whether every peg of color rests in its target region.
func (gs *GameState) HasWon(color Color) bool {
	for _, c := range gs.Board.TargetRegion(color) {
		if gs.Occupancy[c] != color {
			return false
		}
	}
	return true
}

// Winner returns the winning color, or NoColor while the game is
// still running.
func (gs *GameState) Winner() Color {
	return gs.Won
}

// LegalMoves enumerates every legal move for the side to move across
// all its pegs. Callers must not rely on the enumeration order.
func (gs *GameState) LegalMoves() []Move {
	var moves []Move
	for _, origin := range gs.Pieces(gs.CurrentColor()) {
		moves = append(moves, gs.PieceMoves(origin)...)
	}
	return moves
}

// Hash folds the occupancy and side to move into a 64-bit FNV-1a hash.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()
	buf := make([]byte, 8)
	for _, c := range gs.Board.Cells() {
		binary.LittleEndian.PutUint64(buf, uint64(int64(gs.Occupancy[c])))
		hasher.Write(buf)
	}
	binary.LittleEndian.PutUint64(buf, uint64(int64(gs.Turn)))
	hasher.Write(buf)
	return StateHash(hasher.Sum64())
}
