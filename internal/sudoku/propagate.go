package sudoku

import "github.com/sirupsen/logrus"

type Status int8

const (
	InProgress Status = iota
	Solved
	Contradiction
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Solved:
		return "solved"
	case Contradiction:
		return "contradiction"
	default:
		return "unknown"
	}
}

// Tracer observes the solver without being able to mutate it. Every
// callback fires after the fact; a nil Tracer is always allowed.
type Tracer interface {
	RuleApplied(rule string, eliminated int)
	PassDone(pass, eliminated, remaining int)
	Branched(row, col int, candidates CellSet, queued int)
}

// LogTracer writes trace events to a logrus logger at debug level.
type LogTracer struct {
	Log *logrus.Logger
}

func (t LogTracer) RuleApplied(rule string, eliminated int) {
	t.Log.WithFields(logrus.Fields{
		"rule":       rule,
		"eliminated": eliminated,
	}).Debug("rule reduced cells")
}

func (t LogTracer) PassDone(pass, eliminated, remaining int) {
	t.Log.WithFields(logrus.Fields{
		"pass":       pass,
		"eliminated": eliminated,
		"remaining":  remaining,
	}).Debug("pass complete")
}

func (t LogTracer) Branched(row, col int, candidates CellSet, queued int) {
	t.Log.WithFields(logrus.Fields{
		"row":        row,
		"col":        col,
		"candidates": candidates.String(),
		"queued":     queued,
	}).Debug("hypothesizing")
}

/*
 * Propagate runs rule passes until a fixpoint. Within a pass the two
 * cheap rules always run; the expensive ones are tried one at a time
 * and only while nothing has worked yet, so swordfish is never paid
 * for unless everything else is stuck. The loop terminates because the
 * total candidate count must strictly decrease for it to continue and
 * it is bounded below by 81.
 */
func (g *GameState) Propagate(tr Tracer) Status {
	total := g.CandidateCount()
	for pass := 1; ; pass++ {
		count := 0
		for _, rule := range rules {
			if !rule.cheap && count > 0 {
				continue
			}
			n := rule.fn(g)
			count += n
			if tr != nil && n > 0 {
				tr.RuleApplied(rule.name, n)
			}
		}
		remaining := g.CandidateCount()
		if tr != nil {
			tr.PassDone(pass, count, remaining)
		}
		if remaining < total {
			total = remaining
		} else {
			break
		}
	}

	for _, cell := range g.cells {
		if cell == 0 {
			return Contradiction
		}
	}
	if total == 81 {
		return Solved
	}
	return InProgress
}
