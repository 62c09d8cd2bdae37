package sudoku

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

/*
 * SolveParallel distributes the search tree over a bounded group of
 * workers. Sibling branches operate on disjoint clones, so the only
 * shared state is the solution list behind a mutex. Results agree with
 * Solve; only the order in which branches are visited differs.
 */
func SolveParallel(p Puzzle, workers int) Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		grp       errgroup.Group
		mu        sync.Mutex
		solutions []Puzzle
		explored  atomic.Int64
		branches  atomic.Int64
	)
	grp.SetLimit(workers)

	enough := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(solutions) >= 2
	}

	var explore func(g *GameState)
	explore = func(g *GameState) {
		if enough() {
			return
		}
		explored.Add(1)

		switch g.Propagate(nil) {
		case Solved:
			found := g.Puzzle()
			mu.Lock()
			if len(solutions) < 2 {
				solutions = append(solutions, found)
			}
			mu.Unlock()

		case InProgress:
			i := g.firstUndetermined()
			for _, d := range g.cells[i].Digits() {
				child := g.Clone()
				child.cells[i] &= SetOf(d)
				branches.Add(1)
				// hand the branch to a free worker, or descend into
				// it ourselves when the group is saturated
				if !grp.TryGo(func() error {
					explore(child)
					return nil
				}) {
					explore(child)
				}
			}
		}
	}

	grp.Go(func() error {
		explore(NewGameState(p))
		return nil
	})
	grp.Wait()

	res := Result{
		Explored: int(explored.Load()),
		Branches: int(branches.Load()),
	}
	switch len(solutions) {
	case 0:
		res.Outcome = NoSolution
	case 1:
		res.Outcome = UniqueSolution
		res.Solution = solutions[0]
	default:
		res.Outcome = MultipleSolutions
	}
	return res
}
