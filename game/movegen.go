package game

import "fmt"

// PieceMoves enumerates every legal move for the peg at origin: single
// steps to empty adjacent cells, and every landing cell reachable by a
// chain of jumps. A jump hops over an occupied neighbor onto the empty
// cell directly beyond it; chains may stop after any hop, so every
// reachable landing is emitted as its own Move. Landing cells are
// visited at most once per traversal, which rules out loops and
// duplicate destinations. Jumps may pass through any triangle, but a
// move's final destination must satisfy Board.CanRest.
func (gs *GameState) PieceMoves(origin Cell) []Move {
	color, ok := gs.Occupancy[origin]
	if !ok {
		panic(fmt.Sprintf("piece moves: no peg at %v", origin))
	}

	var moves []Move
	for _, n := range gs.Board.Neighbors(origin) {
		if _, occupied := gs.Occupancy[n]; occupied {
			continue
		}
		if gs.Board.CanRest(color, n) {
			moves = append(moves, Move{From: origin, To: n})
		}
	}

	// Breadth-first traversal of chained jumps. parent records the
	// hop that first reached each landing, giving the shortest hop
	// path per destination.
	parent := map[Cell]Cell{}
	visited := map[Cell]bool{origin: true}
	queue := []Cell{origin}
	var landings []Cell
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range directions {
			over := cur.add(d)
			if _, occupied := gs.Occupancy[over]; !occupied {
				continue
			}
			land := over.add(d)
			if !gs.Board.Contains(land) || visited[land] {
				continue
			}
			if _, occupied := gs.Occupancy[land]; occupied {
				continue
			}
			visited[land] = true
			parent[land] = cur
			landings = append(landings, land)
			queue = append(queue, land)
		}
	}

	for _, dst := range landings {
		if !gs.Board.CanRest(color, dst) {
			continue
		}
		moves = append(moves, Move{From: origin, To: dst, Hops: hopPath(parent, origin, dst)})
	}
	return moves
}

// hopPath walks the parent chain back from dst and returns the
// intermediate landings between origin and dst in hop order.
func hopPath(parent map[Cell]Cell, origin, dst Cell) []Cell {
	var reversed []Cell
	for c := parent[dst]; c != origin; c = parent[c] {
		reversed = append(reversed, c)
	}
	hops := make([]Cell, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		hops = append(hops, reversed[i])
	}
	return hops
}
