package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// SolveJob is one persisted run of the solver: the puzzle that came
// in, how it was classified, and what the search cost.
type SolveJob struct {
	SolveJobID int64
	PlayerID   *int64
	Puzzle     string
	Outcome    string
	Solution   *string
	Explored   int32
	Branches   int32
	DurationMs float64
	CreatedAt  pgtype.Timestamptz
}

type CreateSolveJobParams struct {
	PlayerID   *int64
	Puzzle     string
	Outcome    string
	Solution   *string
	Explored   int32
	Branches   int32
	DurationMs float64
}

func (q *Queries) CreateSolveJob(
	ctx context.Context, params CreateSolveJobParams,
) (*SolveJob, error) {
	args := pgx.NamedArgs{
		"puzzle":      params.Puzzle,
		"outcome":     params.Outcome,
		"solution":    params.Solution,
		"explored":    params.Explored,
		"branches":    params.Branches,
		"duration_ms": params.DurationMs,
	}
	if params.PlayerID != nil {
		args["player_id"] = *params.PlayerID
	} else {
		args["player_id"] = nil
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO solve_job (
			player_id, puzzle, outcome, solution, explored, branches, duration_ms
		)
		VALUES (
			@player_id, @puzzle, @outcome, @solution, @explored, @branches, @duration_ms
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolveJob])
}

func (q *Queries) FetchSolveJob(ctx context.Context, solveJobId int64) (*SolveJob, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM solve_job WHERE solve_job_id = $1",
		solveJobId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolveJob])
}

// SolveRecord is the public listing row, solve jobs joined with the
// player that submitted them.
type SolveRecord struct {
	SolveJobID int64   `json:"solve_job_id"`
	Username   *string `json:"username"`
	Puzzle     string  `json:"puzzle"`
	Outcome    string  `json:"outcome"`
	Explored   int32   `json:"explored"`
	Branches   int32   `json:"branches"`
	DurationMs float64 `json:"duration_ms"`
}

type SolveRecordFilter struct {
	Username *string
	Outcome  *string
}

func (f SolveRecordFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Outcome != nil {
		clauses = append(clauses, "outcome = @outcome")
		args["outcome"] = *f.Outcome
	}
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) ListSolveRecords(
	ctx context.Context, filter SolveRecordFilter, limit int,
) ([]SolveRecord, error) {
	query := `
	SELECT
		solve_job_id,
		username,
		puzzle,
		outcome,
		explored,
		branches,
		duration_ms
	FROM solve_job
		LEFT OUTER JOIN player using (player_id)
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " WHERE " + whereClause
	}

	query += " ORDER BY created_at DESC LIMIT @limit;"
	args["limit"] = limit

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[SolveRecord])
}
