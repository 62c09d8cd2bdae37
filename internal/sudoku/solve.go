package sudoku

import "github.com/sirupsen/logrus"

type Outcome int8

const (
	NoSolution Outcome = iota
	UniqueSolution
	MultipleSolutions
)

func (o Outcome) String() string {
	switch o {
	case NoSolution:
		return "no solution"
	case UniqueSolution:
		return "unique"
	case MultipleSolutions:
		return "multiple solutions"
	default:
		return "unknown"
	}
}

type Result struct {
	Outcome Outcome
	// Solution is only meaningful for UniqueSolution
	Solution Puzzle
	// Explored counts states taken off the work queue, Branches the
	// hypothesis states pushed onto it
	Explored int
	Branches int
}

// Solve classifies a puzzle as uniquely solvable, unsolvable or
// ambiguous, returning the solution in the first case. The input must
// already have passed Validate.
func Solve(p Puzzle) Result {
	return SolveTraced(p, nil)
}

/*
 * SolveTraced is Solve with an observer. The controller keeps a work
 * queue of independent states. Each popped state is propagated to its
 * fixpoint; a contradiction discards it, a solution is recorded, and
 * anything still open branches into one clone per candidate digit of
 * its first undetermined cell, the digit pinned in the clone.
 *
 * Branches are pushed in increasing digit order and the newest state
 * is explored first, which bounds the live queue by tree depth. The
 * search stops as soon as two solutions exist: that already proves the
 * puzzle ambiguous, and distinct branches pin different digits into
 * the same cell, so no solution can ever be counted twice.
 */
func SolveTraced(p Puzzle, tr Tracer) Result {
	var (
		queue     = []*GameState{NewGameState(p)}
		solutions []Puzzle
		res       Result
	)

	for len(queue) > 0 && len(solutions) < 2 {
		g := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		res.Explored++

		switch g.Propagate(tr) {
		case Solved:
			solutions = append(solutions, g.Puzzle())

		case Contradiction:
			// dead branch

		case InProgress:
			i := g.firstUndetermined()
			for _, d := range g.cells[i].Digits() {
				child := g.Clone()
				child.cells[i] &= SetOf(d)
				queue = append(queue, child)
				res.Branches++
			}
			if tr != nil {
				tr.Branched(i/9, i%9, g.cells[i], len(queue))
			}
			Log.WithFields(logrus.Fields{
				"row":    i / 9,
				"col":    i % 9,
				"values": g.cells[i].String(),
				"queue":  len(queue),
			}).Debug("deduction stalled, branching")
		}
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
