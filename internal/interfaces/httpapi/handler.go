package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fixture-board/internal/platform/logging"
	"github.com/riskibarqy/fixture-board/internal/usecase"
)

type Handler struct {
	boardService *usecase.FixtureBoardService
	defaults     usecase.BoardParams
	page         *boardPage
	logger       *logging.Logger
	validator    *validator.Validate
}

func NewHandler(boardService *usecase.FixtureBoardService, defaults usecase.BoardParams, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		boardService: boardService,
		defaults:     defaults,
		page:         newBoardPage(),
		logger:       logger,
		validator:    validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// BoardPage renders the HTML fixture board. Provider failures become the
// error banner on a 200 page; only a template failure is a 500.
func (h *Handler) BoardPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BoardPage")
	defer span.End()

	view := boardView{Title: h.defaults.Title}
	board, err := h.boardService.Build(ctx, h.defaults)
	if err != nil {
		h.logger.WarnContext(ctx, "build fixture board failed", "error", err)
		view.Banner = usecase.DescribeFailure(err)
	} else {
		view = boardViewFrom(board)
	}

	if err := h.page.render(ctx, w, view); err != nil {
		h.logger.ErrorContext(ctx, "render fixture board failed", "error", err)
		writeInternalError(ctx, w)
	}
}

type upcomingFixturesRequest struct {
	LeagueID      int `validate:"gt=0"`
	Season        int `validate:"gt=0"`
	LookaheadDays int `validate:"gte=0,lte=30"`
}

func (h *Handler) GetUpcomingFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUpcomingFixtures")
	defer span.End()

	params, err := h.boardParamsFromQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	board, err := h.boardService.Build(ctx, params)
	if err != nil {
		h.logger.WarnContext(ctx, "get upcoming fixtures failed",
			"league_id", params.LeagueID,
			"season", params.Season,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, boardToDTO(board))
}

// boardParamsFromQuery applies ?league=, ?season= and ?lookahead_days=
// overrides on top of the configured defaults.
func (h *Handler) boardParamsFromQuery(ctx context.Context, r *http.Request) (usecase.BoardParams, error) {
	params := h.defaults
	query := r.URL.Query()

	overrides := []struct {
		key    string
		target *int
	}{
		{key: "league", target: &params.LeagueID},
		{key: "season", target: &params.Season},
		{key: "lookahead_days", target: &params.LookaheadDays},
	}
	for _, item := range overrides {
		raw := strings.TrimSpace(query.Get(item.key))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return usecase.BoardParams{}, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, item.key)
		}
		*item.target = v
	}

	req := upcomingFixturesRequest{
		LeagueID:      params.LeagueID,
		Season:        params.Season,
		LookaheadDays: params.LookaheadDays,
	}
	if err := h.validator.StructCtx(ctx, req); err != nil {
		return usecase.BoardParams{}, fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return params, nil
}

type fixtureLineDTO struct {
	Position int    `json:"position"`
	Date     string `json:"date,omitempty"`
	Home     string `json:"home,omitempty"`
	Away     string `json:"away,omitempty"`
	Summary  string `json:"summary"`
	Error    string `json:"error,omitempty"`
}

type upcomingFixturesDTO struct {
	Title    string           `json:"title,omitempty"`
	LeagueID int              `json:"leagueId"`
	Season   int              `json:"season"`
	From     string           `json:"from"`
	To       string           `json:"to"`
	Found    int              `json:"found"`
	Fixtures []fixtureLineDTO `json:"fixtures"`
}

func boardToDTO(board usecase.Board) upcomingFixturesDTO {
	items := make([]fixtureLineDTO, 0, len(board.Lines))
	for _, line := range board.Lines {
		item := fixtureLineDTO{
			Position: line.Position,
			Summary:  line.Text(),
		}
		if line.OK() {
			item.Date = line.Fixture.Kickoff
			item.Home = line.Fixture.HomeTeam
			item.Away = line.Fixture.AwayTeam
		} else {
			item.Error = line.Err.Error()
		}
		items = append(items, item)
	}

	return upcomingFixturesDTO{
		Title:    board.Title,
		LeagueID: board.Query.LeagueID,
		Season:   board.Query.Season,
		From:     board.Query.FromDate(),
		To:       board.Query.ToDate(),
		Found:    board.Found,
		Fixtures: items,
	}
}
