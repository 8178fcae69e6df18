package search

import (
	"github.com/hailam/c4solver/internal/position"
	"github.com/hailam/c4solver/internal/table"
)

// Solve runs the null-window iterative deepening driver: it bisects
// the score window (not the search depth — the negamax above always
// searches to the terminal position) by repeatedly probing a
// null-window around a midpoint med, narrowing [min,max] until they
// meet. Grounded on the teacher's iterative result-tightening loop in
// engine.go/worker.go, generalized from depth-stepping to
// score-window-bisection since Connect Four has no depth cutoff.
//
// A weak solve only establishes the sign of the result (win/draw/loss),
// trading off the caller's ability to read the exact move count left
// for a much narrower initial window and fewer negamax calls.
func (s *Searcher) Solve(pos *position.Position, weak bool) int {
	if pos.CanWinNext() {
		return (position.MaxMoves + 1 - pos.Ply()) / 2
	}

	min := -(position.MaxMoves - pos.Ply()) / 2
	max := (position.MaxMoves + 1 - pos.Ply()) / 2
	if weak {
		min, max = -1, 1
	}

	for min < max {
		med := min + (max-min)/2
		// Bias the probe away from clustering at zero: a med of exactly
		// 0 (or near it) makes both the winning and losing branches of
		// the window equally likely, which in practice causes far more
		// re-probes near a drawn position than biasing toward whichever
		// half of [min,max] is larger.
		if med <= 0 && min/2 < med {
			med = min / 2
		} else if med >= 0 && max/2 > med {
			med = max / 2
		}

		r := s.negamax(pos, med, med+1)
		if r <= med {
			max = r
		} else {
			min = r
		}
	}
	return min
}

// Solver bundles a transposition table with a Searcher into a single
// reusable value, grounded on the teacher's Engine struct
// (internal/engine/engine.go), which likewise bundles a
// TranspositionTable and search entry points behind one constructed-
// once, reused-many-times type — generalized down to single-threaded
// use, since this solver has no Lazy-SMP worker pool to coordinate.
type Solver struct {
	tt       *table.Table
	searcher *Searcher
}

// NewSolver builds a Solver with a freshly allocated transposition
// table sized to ttSizeMB megabytes.
func NewSolver(ttSizeMB int) *Solver {
	tt := table.New(ttSizeMB)
	return &Solver{tt: tt, searcher: New(tt)}
}

// Solve clears the transposition table and node counter, then solves
// pos, returning the game-theoretic score and the number of negamax
// calls made. Resetting before every top-level solve keeps entries
// from one game tree out of an unrelated one's search, the same
// happens-before relationship SPEC_FULL's resource model requires
// between reset() and the next solve().
func (sv *Solver) Solve(pos *position.Position, weak bool) (score int, nodes uint64) {
	sv.tt.Reset()
	sv.searcher.Reset()
	score = sv.searcher.Solve(pos, weak)
	return score, sv.searcher.Nodes()
}
