package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Run is a finished traversal. The maze itself is not stored.
type Run struct {
	MazeRunId     int64     `db:"maze_run_id"`
	SessionId     uuid.UUID `db:"session_id"`
	PlayerId      *int64    `db:"player_id"`
	Width         int       `db:"width"`
	Height        int       `db:"height"`
	Moves         int       `db:"moves"`
	PathLength    int       `db:"path_length"`
	OptimalLength int       `db:"optimal_length"`
	StartedAt     time.Time `db:"started_at"`
	EndedAt       time.Time `db:"ended_at"`
	CreatedAt     time.Time `db:"created_at"`
}

type CreateRunParams struct {
	SessionId     uuid.UUID
	PlayerId      *int64
	Width         int
	Height        int
	Moves         int
	PathLength    int
	OptimalLength int
	StartedAt     time.Time
	EndedAt       time.Time
}

func (p CreateRunParams) Args() pgx.NamedArgs {
	return pgx.NamedArgs{
		"session_id":     p.SessionId,
		"player_id":      p.PlayerId,
		"width":          p.Width,
		"height":         p.Height,
		"moves":          p.Moves,
		"path_length":    p.PathLength,
		"optimal_length": p.OptimalLength,
		"started_at":     p.StartedAt,
		"ended_at":       p.EndedAt,
	}
}

func (q *Queries) CreateRun(ctx context.Context, params CreateRunParams) (*Run, error) {
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO maze_run (
			session_id, player_id, width, height, moves,
			path_length, optimal_length, started_at, ended_at
		)
		VALUES (
			@session_id, @player_id, @width, @height, @moves,
			@path_length, @optimal_length, @started_at, @ended_at
		)
		RETURNING *`,
		params.Args(),
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Run])
}
