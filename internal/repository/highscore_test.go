package repository

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/vancomm/maze-server/internal/maze"
)

func TestHighscoreFilterWhereClause(t *testing.T) {
	username := "ariadne"
	tests := []struct {
		name   string
		filter HighscoreFilter
		clause string
		args   pgx.NamedArgs
	}{
		{"empty", HighscoreFilter{}, "", pgx.NamedArgs{}},
		{
			"username",
			HighscoreFilter{Username: &username},
			"username = @username",
			pgx.NamedArgs{"username": "ariadne"},
		},
		{
			"dimensions",
			HighscoreFilter{Params: &maze.Params{Width: 10, Height: 5}},
			"width = @width AND height = @height",
			pgx.NamedArgs{"width": 10, "height": 5},
		},
		{
			"both",
			HighscoreFilter{Username: &username, Params: &maze.Params{Width: 3, Height: 3}},
			"username = @username AND width = @width AND height = @height",
			pgx.NamedArgs{"username": "ariadne", "width": 3, "height": 3},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			clause, args := test.filter.WhereClause()
			assert.Equal(t, test.clause, clause)
			assert.Equal(t, test.args, args)
		})
	}
}

func TestCreateRunArgs(t *testing.T) {
	playerId := int64(3)
	args := CreateRunParams{PlayerId: &playerId, Width: 4, Height: 2, Moves: 9}.Args()
	assert.Equal(t, &playerId, args["player_id"])
	assert.Equal(t, 4, args["width"])
	assert.Equal(t, 9, args["moves"])

	args = CreateRunParams{}.Args()
	assert.Nil(t, args["player_id"])
}
