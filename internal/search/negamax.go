// Package search implements the alpha-beta negamax core and the
// null-window iterative solve driver built on top of it, following
// the teacher's Searcher shape (internal/engine/search.go): a
// reusable value wrapping a transposition table and a node counter,
// with a recursive negamax method and no per-call heap allocation.
package search

import (
	"github.com/hailam/c4solver/internal/position"
	"github.com/hailam/c4solver/internal/sorter"
	"github.com/hailam/c4solver/internal/table"
)

// columnOrder visits columns center-first (3,2,4,1,5,0,6 for the
// standard 7-wide board), so that when two candidate moves score
// equally the search still tries the historically stronger central
// columns first.
var columnOrder = computeColumnOrder()

func computeColumnOrder() [position.Width]int {
	var order [position.Width]int
	for i := 0; i < position.Width; i++ {
		order[i] = position.Width/2 + (1-2*(i%2))*(i+1)/2
	}
	return order
}

// ttMoveBonus outweighs any popcount-based move score (which never
// exceeds a few dozen), so a column recorded as a previous best move
// is always tried first, mirroring the teacher's TTMoveScore priority
// constant in ordering.go.
const ttMoveBonus = 1 << 24

// Searcher runs negamax over a shared transposition table. The zero
// value is not usable; construct with New.
type Searcher struct {
	tt    *table.Table
	nodes uint64
}

// New builds a Searcher over tt, which the caller owns and may reuse
// (after Reset) across many Solve calls.
func New(tt *table.Table) *Searcher {
	return &Searcher{tt: tt}
}

// Reset clears the node counter for a fresh search; it does not touch
// the transposition table, whose lifetime the caller controls.
func (s *Searcher) Reset() { s.nodes = 0 }

// Nodes returns the number of negamax calls made since the last Reset.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// negamax returns pos's minimax value, fail-hard bounded to
// [alpha, beta]. Precondition: alpha < beta, and the player to move
// does not already have an immediate winning move (the caller
// special-cases that, since it would otherwise need its own recursion
// level for no benefit — the same shortcut the iterative driver takes
// before ever calling in).
func (s *Searcher) negamax(pos *position.Position, alpha, beta int) int {
	if alpha >= beta {
		panic("search: negamax called with alpha >= beta")
	}
	s.nodes++

	next := pos.PossibleNonLosingMoves()
	if next == 0 {
		// Every remaining move hands the opponent a win next turn.
		return -(position.MaxMoves - pos.Ply()) / 2
	}
	if pos.Ply() >= position.MaxMoves-2 {
		// At most one more ply can be played by each side: a draw.
		return 0
	}

	min := -(position.MaxMoves - 2 - pos.Ply()) / 2
	if alpha < min {
		alpha = min
		if alpha >= beta {
			return alpha
		}
	}

	key := pos.Key()
	max := (position.MaxMoves - 1 - pos.Ply()) / 2
	ttMove := int8(-1)
	if entry, ok := s.tt.Get(key); ok {
		max = int(entry.Value)
		ttMove = entry.BestMove
	}
	if beta > max {
		beta = max
		if alpha >= beta {
			return beta
		}
	}

	var moves sorter.Sorter
	for i := 0; i < position.Width; i++ {
		col := columnOrder[i]
		move := next & position.ColumnMask(col)
		if move == 0 {
			continue
		}
		score := pos.MoveScore(move)
		if int(ttMove) == col {
			score += ttMoveBonus
		}
		moves.Add(move, score)
	}

	bestCol := int8(-1)
	for moves.Len() > 0 {
		move := moves.Next()
		col := position.MoveColumn(move)

		pos.Play(move)
		score := -s.negamax(pos, -beta, -alpha)
		pos.Undo(move)

		if score >= beta {
			// Fail-high: score is only a lower bound on this node's true
			// value, but the table holds upper bounds only (see Get above),
			// so storing it here would later be misread as a tighter upper
			// bound than it is. Return without a store, per the canonical
			// Pons negamax.
			return score
		}
		if score > alpha {
			alpha = score
			bestCol = int8(col)
		}
	}

	s.tt.Put(key, int8(alpha), bestCol)
	return alpha
}
