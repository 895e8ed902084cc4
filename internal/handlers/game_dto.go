package handlers

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/vancomm/maze-server/internal/maze"
	"github.com/vancomm/maze-server/internal/sessions"
)

var (
	ErrBadDimensions = errors.New("width and height must be positive integers")
	ErrTooLarge      = errors.New("maze is too large")
)

type CreateGameDTO struct {
	Width  int     `schema:"width,required"`
	Height int     `schema:"height,required"`
	Seed   *uint64 `schema:"seed"`
}

func ParseCreateGameDTO(src url.Values, maxDimension int) (CreateGameDTO, error) {
	var dto CreateGameDTO
	if err := decoder.Decode(&dto, src); err != nil {
		return dto, err
	}
	if dto.Width <= 0 || dto.Height <= 0 {
		return dto, ErrBadDimensions
	}
	if dto.Width > maxDimension || dto.Height > maxDimension {
		return dto, fmt.Errorf("%w: at most %dx%d", ErrTooLarge, maxDimension, maxDimension)
	}
	return dto, nil
}

func (dto CreateGameDTO) Params() maze.Params {
	return maze.Params{Width: dto.Width, Height: dto.Height}
}

type MoveDTO struct {
	Direction string `schema:"direction,required"`
}

func ParseMove(src url.Values) (maze.Direction, error) {
	var dto MoveDTO
	if err := decoder.Decode(&dto, src); err != nil {
		return 0, err
	}
	return maze.ParseDirection(dto.Direction)
}

type GameSessionDTO struct {
	SessionId  string `json:"session_id"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Cells      []int  `json:"cells"`
	Path       []int  `json:"path"`
	Position   int    `json:"position"`
	Finished   bool   `json:"finished"`
	Moves      int    `json:"moves"`
	Generation int    `json:"generation"`
	StartedAt  int64  `json:"started_at"`
	LastMove   string `json:"last_move,omitempty"`
}

func NewGameSessionDTO(state sessions.State) *GameSessionDTO {
	// []Cell would be marshalled as a base64 string
	cells := make([]int, len(state.Cells))
	for i, c := range state.Cells {
		cells[i] = int(c)
	}
	return &GameSessionDTO{
		SessionId:  state.ID.String(),
		Width:      state.Width,
		Height:     state.Height,
		Cells:      cells,
		Path:       state.Path,
		Position:   state.Position(),
		Finished:   state.Finished,
		Moves:      state.Moves,
		Generation: state.Generation,
		StartedAt:  state.StartedAt.UnixMilli(),
	}
}
