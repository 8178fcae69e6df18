// Command c4solve is the benchmark driver for the Connect Four solver:
// it reads move sequences from stdin, one per line, solves each to
// its exact game-theoretic value, and prints a result line per input.
// Grounded on the teacher's cmd/chessplay-uci/main.go (flag parsing,
// -cpuprofile/runtime-pprof scaffolding) and internal/uci/uci.go's
// bufio.Scanner(os.Stdin) command loop — generalized from an
// interactive UCI session to a one-shot batch pipeline, since this
// solver has no notion of an ongoing game to play.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/hailam/c4solver/internal/bench"
	"github.com/hailam/c4solver/internal/position"
	"github.com/hailam/c4solver/internal/search"
)

var (
	ttMB       = flag.Int("tt-mb", 64, "transposition table size in megabytes")
	weak       = flag.Bool("weak", false, "weak solve: only report win/draw/loss, not the exact score")
	statsDB    = flag.String("stats-db", "", "badger directory for persisted benchmark stats (default: OS data dir)")
	category   = flag.String("category", "adhoc", "label recorded against this run's accumulated stats")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", *cpuprofile)
	}

	dbDir := *statsDB
	if dbDir == "" {
		dir, err := bench.DefaultDataDir()
		if err != nil {
			log.Printf("warning: could not resolve default stats dir: %v (stats will not persist)", err)
		} else {
			dbDir = dir
		}
	}

	var store *bench.Store
	if dbDir != "" {
		var err error
		store, err = bench.Open(dbDir)
		if err != nil {
			log.Printf("warning: could not open stats db at %s: %v (stats will not persist)", dbDir, err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	solver := search.NewSolver(*ttMB)

	var solved int
	var totalNodes int64
	var totalMicros int64

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		seq := strings.Fields(line)[0]

		score, nodes, micros, ok := solveLine(solver, seq)
		if !ok {
			fmt.Println()
			continue
		}

		fmt.Printf("%s %d %d %d\n", seq, score, nodes, micros.Microseconds())
		solved++
		totalNodes += int64(nodes)
		totalMicros += micros.Microseconds()
	}
	if err := scanner.Err(); err != nil {
		log.Printf("error reading stdin: %v", err)
	}

	if store != nil && solved > 0 {
		rec, err := store.RecordRun(*category, solved, totalNodes, totalMicros)
		if err != nil {
			log.Printf("warning: could not persist run stats: %v", err)
		} else {
			log.Print(rec.Summary())
		}
	}
}

// solveLine plays seq from the empty position and solves it, catching
// any panic from a core invariant violation so one malformed or
// unexpectedly-terminal line never aborts the whole run — the same
// posture the teacher's UCI loop takes toward a single bad command.
func solveLine(solver *search.Solver, seq string) (score int, nodes uint64, elapsed time.Duration, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("line %q: recovered from panic: %v", seq, r)
			ok = false
		}
	}()

	pos := position.New()
	if n := pos.PlaySequence(seq); n != len(seq) {
		log.Printf("line %q: rejected at character %d (invalid column, full column, or a winning move)", seq, n)
		return 0, 0, 0, false
	}

	start := time.Now()
	score, nodes = solver.Solve(pos, *weak)
	elapsed = time.Since(start)
	return score, nodes, elapsed, true
}
