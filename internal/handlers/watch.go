package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

// wsTracer streams solver progress events over a websocket. Send
// failures flip dead so the remaining events are dropped instead of
// aborting the solve.
type wsTracer struct {
	conn *websocket.Conn
	dead bool
}

type traceEvent struct {
	Event      string `json:"event"`
	Rule       string `json:"rule,omitempty"`
	Eliminated int    `json:"eliminated,omitempty"`
	Pass       int    `json:"pass,omitempty"`
	Remaining  int    `json:"remaining,omitempty"`
	Row        int    `json:"row,omitempty"`
	Col        int    `json:"col,omitempty"`
	Candidates string `json:"candidates,omitempty"`
	Queued     int    `json:"queued,omitempty"`
}

func (t *wsTracer) send(ev traceEvent) {
	if t.dead {
		return
	}
	if err := t.conn.WriteJSON(ev); err != nil {
		t.dead = true
	}
}

func (t *wsTracer) RuleApplied(rule string, eliminated int) {
	t.send(traceEvent{Event: "rule", Rule: rule, Eliminated: eliminated})
}

func (t *wsTracer) PassDone(pass, eliminated, remaining int) {
	t.send(traceEvent{
		Event:      "pass",
		Pass:       pass,
		Eliminated: eliminated,
		Remaining:  remaining,
	})
}

func (t *wsTracer) Branched(row, col int, candidates sudoku.CellSet, queued int) {
	t.send(traceEvent{
		Event:      "branch",
		Row:        row,
		Col:        col,
		Candidates: candidates.String(),
		Queued:     queued,
	})
}

type watchResult struct {
	Event    string  `json:"event"`
	Outcome  string  `json:"outcome"`
	Solution *string `json:"solution,omitempty"`
	Explored int     `json:"explored"`
	Branches int     `json:"branches"`
}

// Watch replays a stored solve job over a websocket, streaming every
// rule application, propagation pass and branch decision before the
// final outcome.
func (s Solver) Watch(w http.ResponseWriter, r *http.Request) {
	job, ok := s.fetchSolveJob(w, r)
	if !ok {
		return
	}

	puzzle, err := sudoku.ParsePuzzle(job.Puzzle)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		s.logger.Error("stored puzzle does not parse",
			"solve_job_id", job.SolveJobID, "error", err)
		return
	}

	conn, err := s.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	tracer := &wsTracer{conn: conn}
	res := sudoku.SolveTraced(puzzle, tracer)

	final := watchResult{
		Event:    "done",
		Outcome:  res.Outcome.String(),
		Explored: res.Explored,
		Branches: res.Branches,
	}
	if res.Outcome == sudoku.UniqueSolution {
		solution := res.Solution.String()
		final.Solution = &solution
	}
	if err := conn.WriteJSON(final); err != nil {
		s.logger.Debug("watch client went away", "error", err)
		return
	}

	conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
}
