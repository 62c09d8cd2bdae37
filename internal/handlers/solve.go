package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/sudoku-server/internal/config"
	"github.com/vancomm/sudoku-server/internal/middleware"
	"github.com/vancomm/sudoku-server/internal/repository"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

type Solver struct {
	logger  *slog.Logger
	repo    *repository.Queries
	ws      *config.WebSocket
	decoder *schema.Decoder
}

func NewSolver(logger *slog.Logger, db *pgxpool.Pool, ws *config.WebSocket) *Solver {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return &Solver{
		logger:  logger,
		repo:    repository.New(db),
		ws:      ws,
		decoder: decoder,
	}
}

type solveParams struct {
	Puzzle   string `schema:"puzzle,required"`
	Parallel bool   `schema:"parallel"`
	Workers  int    `schema:"workers"`
}

type SolveJobInfo struct {
	SolveJobId int64   `json:"solve_job_id"`
	Puzzle     string  `json:"puzzle"`
	Outcome    string  `json:"outcome"`
	Solution   *string `json:"solution,omitempty"`
	Explored   int     `json:"explored"`
	Branches   int     `json:"branches"`
	DurationMs float64 `json:"duration_ms"`
}

func solveJobInfo(job *repository.SolveJob) *SolveJobInfo {
	return &SolveJobInfo{
		SolveJobId: job.SolveJobID,
		Puzzle:     job.Puzzle,
		Outcome:    job.Outcome,
		Solution:   job.Solution,
		Explored:   int(job.Explored),
		Branches:   int(job.Branches),
		DurationMs: job.DurationMs,
	}
}

func (s Solver) Solve(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, s.logger, wrapError(err))
		return
	}

	var params solveParams
	if err := s.decoder.Decode(&params, r.PostForm); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, s.logger, wrapError(err))
		return
	}

	puzzle, err := sudoku.ParsePuzzle(params.Puzzle)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, s.logger, wrapError(err))
		return
	}

	start := time.Now()
	var res sudoku.Result
	if params.Parallel {
		workers := params.Workers
		if workers <= 0 {
			workers = config.SolveWorkers()
		}
		res = sudoku.SolveParallel(puzzle, workers)
	} else {
		res = sudoku.Solve(puzzle)
	}
	duration := time.Since(start)

	createParams := repository.CreateSolveJobParams{
		Puzzle:     puzzle.String(),
		Outcome:    res.Outcome.String(),
		Explored:   int32(res.Explored),
		Branches:   int32(res.Branches),
		DurationMs: float64(duration.Microseconds()) / 1000,
	}
	if res.Outcome == sudoku.UniqueSolution {
		solution := res.Solution.String()
		createParams.Solution = &solution
	}
	if claims, ok := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims); ok {
		createParams.PlayerID = &claims.PlayerId
	}

	job, err := s.repo.CreateSolveJob(r.Context(), createParams)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		s.logger.Error("unable to save solve job", "error", err)
		return
	}

	s.logger.Info(
		"puzzle solved",
		"solve_job_id", job.SolveJobID,
		"outcome", job.Outcome,
		"explored", job.Explored,
		"duration", duration,
	)
	sendJSONOrLog(w, s.logger, solveJobInfo(job))
}

var ErrSolveJobNotFound = fmt.Errorf("solve job not found")

func (s Solver) fetchSolveJob(w http.ResponseWriter, r *http.Request) (*repository.SolveJob, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, s.logger, wrapError(err))
		return nil, false
	}
	job, err := s.repo.FetchSolveJob(r.Context(), id)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		sendJSONOrLog(w, s.logger, wrapError(ErrSolveJobNotFound))
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		s.logger.Error("unable to fetch solve job", "error", err)
		return nil, false
	}
	return job, true
}

func (s Solver) Fetch(w http.ResponseWriter, r *http.Request) {
	job, ok := s.fetchSolveJob(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, s.logger, solveJobInfo(job))
}

type listParams struct {
	Username *string `schema:"username"`
	Outcome  *string `schema:"outcome"`
	Limit    int     `schema:"limit"`
}

func (s Solver) List(w http.ResponseWriter, r *http.Request) {
	var params listParams
	if err := s.decoder.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, s.logger, wrapError(err))
		return
	}
	if params.Limit <= 0 || params.Limit > 100 {
		params.Limit = 50
	}

	records, err := s.repo.ListSolveRecords(r.Context(), repository.SolveRecordFilter{
		Username: params.Username,
		Outcome:  params.Outcome,
	}, params.Limit)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		s.logger.Error("unable to list solve records", "error", err)
		return
	}

	sendJSONOrLog(w, s.logger, records)
}
