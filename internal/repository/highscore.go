// custom query
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vancomm/maze-server/internal/maze"
)

type Highscore struct {
	MazeRunId     int64   `json:"maze_run_id" db:"maze_run_id"`
	Username      *string `json:"username" db:"username"`
	Width         int     `json:"width" db:"width"`
	Height        int     `json:"height" db:"height"`
	Moves         int     `json:"moves" db:"moves"`
	PathLength    int     `json:"path_length" db:"path_length"`
	OptimalLength int     `json:"optimal_length" db:"optimal_length"`
	PlaytimeMs    float64 `json:"playtime_ms" db:"playtime_ms"`
}

type HighscoreFilter struct {
	Username *string
	Params   *maze.Params
	Limit    int
}

func (f HighscoreFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Params != nil {
		clauses = append(clauses, "width = @width", "height = @height")
		args["width"] = f.Params.Width
		args["height"] = f.Params.Height
	}
	return strings.Join(clauses, " AND "), args
}

const defaultHighscoreLimit = 100

func (q *Queries) GetHighscores(
	ctx context.Context, filter HighscoreFilter,
) ([]Highscore, error) {
	query := `
	SELECT
		maze_run_id,
		username,
		width,
		height,
		moves,
		path_length,
		optimal_length,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM maze_run
		LEFT OUTER JOIN player using (player_id)`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " WHERE " + whereClause
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultHighscoreLimit
	}
	query += fmt.Sprintf(" ORDER BY playtime_ms, moves LIMIT %d", limit)

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Highscore])
}
