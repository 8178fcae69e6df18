// Package sorter implements the move sorter the search uses to try
// its most promising moves first: a small, fixed-capacity buffer that
// keeps (move, score) pairs in descending score order as they are
// added, and pops them off highest-first.
package sorter

import "github.com/hailam/c4solver/internal/position"

// Sorter holds up to position.Width candidate moves, insertion-sorted
// by score as each is added. Its zero value is ready to use.
type Sorter struct {
	n      int
	moves  [position.Width]uint64
	scores [position.Width]int
}

// Reset empties the sorter for reuse at the next search node, exactly
// as the teacher's MoveOrderer.Clear prepares shared state for a fresh
// search rather than allocating a new one.
func (s *Sorter) Reset() { s.n = 0 }

// Add inserts move with the given heuristic score, maintaining
// ascending order internally (so the highest score sits at the tail,
// where Next can pop it with no shifting). Ties keep the
// earliest-added move closest to the tail, so moves of equal score
// still come out in the order they were added. Panics if the sorter
// is already full — a search node never has more than Width legal
// moves, so a full sorter on Add indicates a caller bug.
func (s *Sorter) Add(move uint64, score int) {
	if s.n >= len(s.moves) {
		panic("sorter: Add called on a full sorter")
	}
	i := s.n
	for i > 0 && s.scores[i-1] >= score {
		s.moves[i] = s.moves[i-1]
		s.scores[i] = s.scores[i-1]
		i--
	}
	s.moves[i] = move
	s.scores[i] = score
	s.n++
}

// Len returns the number of moves currently held.
func (s *Sorter) Len() int { return s.n }

// Next pops and returns the highest-scored remaining move. Panics if
// the sorter is empty.
func (s *Sorter) Next() uint64 {
	if s.n == 0 {
		panic("sorter: Next called on an empty sorter")
	}
	s.n--
	return s.moves[s.n]
}
