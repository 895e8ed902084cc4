package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/maze-server/internal/maze"
	"github.com/vancomm/maze-server/internal/repository"
)

var ErrBadHighscoreFilter = errors.New("width and height must be given together")

type HighscoreStore interface {
	GetHighscores(ctx context.Context, filter repository.HighscoreFilter) ([]repository.Highscore, error)
}

type HighscoreFilterDTO struct {
	Width    *int    `schema:"width"`
	Height   *int    `schema:"height"`
	Username *string `schema:"username"`
	Limit    int     `schema:"limit"`
}

func (dto HighscoreFilterDTO) Filter() (repository.HighscoreFilter, error) {
	filter := repository.HighscoreFilter{Username: dto.Username, Limit: dto.Limit}
	if (dto.Width == nil) != (dto.Height == nil) {
		return filter, ErrBadHighscoreFilter
	}
	if dto.Width != nil {
		params := maze.Params{Width: *dto.Width, Height: *dto.Height}
		if err := params.Validate(); err != nil {
			return filter, err
		}
		filter.Params = &params
	}
	return filter, nil
}

type Highscores struct {
	log    logrus.FieldLogger
	scores HighscoreStore
}

func NewHighscores(log logrus.FieldLogger, scores HighscoreStore) *Highscores {
	return &Highscores{log: log, scores: scores}
}

func (h Highscores) Fetch(w http.ResponseWriter, r *http.Request) {
	var dto HighscoreFilterDTO
	if err := decoder.Decode(&dto, r.URL.Query()); err != nil {
		sendError(w, h.log, http.StatusBadRequest, err)
		return
	}
	filter, err := dto.Filter()
	if err != nil {
		sendError(w, h.log, http.StatusBadRequest, err)
		return
	}

	highscores, err := h.scores.GetHighscores(r.Context(), filter)
	if err != nil {
		internalError(w, h.log, "failed to fetch highscores", err)
		return
	}
	if highscores == nil {
		highscores = []repository.Highscore{}
	}
	sendJSONOrLog(w, h.log, highscores)
}
