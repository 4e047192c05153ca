package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/fixture-board/internal/domain/fixture"
	"github.com/riskibarqy/fixture-board/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// BoardParams configures one board build.
type BoardParams struct {
	Title         string
	LeagueID      int
	Season        int
	LookaheadDays int
}

type BoardLine struct {
	Position int
	Fixture  fixture.Fixture
	Err      error
}

func (l BoardLine) OK() bool {
	return l.Err == nil
}

func (l BoardLine) Text() string {
	if l.Err != nil {
		return fmt.Sprintf("fixture #%d: unavailable (%s)", l.Position+1, l.Err.Error())
	}
	return l.Fixture.Summary()
}

// Board is the rendered view model. Found counts every record in the
// response; Lines holds at most fixture.DisplayLimit of them.
type Board struct {
	Title string
	Query fixture.Query
	Found int
	Lines []BoardLine
}

type FixtureBoardService struct {
	provider fixture.Provider
	clock    clockwork.Clock
	location *time.Location
	logger   *logging.Logger
}

func NewFixtureBoardService(provider fixture.Provider, clock clockwork.Clock, location *time.Location, logger *logging.Logger) *FixtureBoardService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &FixtureBoardService{
		provider: provider,
		clock:    clock,
		location: location,
		logger:   logger,
	}
}

func (s *FixtureBoardService) Build(ctx context.Context, params BoardParams) (Board, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureBoardService.Build")
	defer span.End()

	today := s.clock.Now().In(s.location)
	query := fixture.NewQuery(params.LeagueID, params.Season, today, params.LookaheadDays)
	if err := query.Validate(); err != nil {
		return Board{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	span.SetAttributes(
		attribute.Int("fixtures.league_id", query.LeagueID),
		attribute.Int("fixtures.season", query.Season),
		attribute.String("fixtures.from", query.FromDate()),
		attribute.String("fixtures.to", query.ToDate()),
	)

	batch, err := s.provider.ListByWindow(ctx, query)
	if err != nil {
		s.logger.WarnContext(ctx, "list fixtures failed",
			"league_id", query.LeagueID,
			"season", query.Season,
			"from", query.FromDate(),
			"to", query.ToDate(),
			"error", err,
		)
		return Board{}, fmt.Errorf("list fixtures league=%d season=%d: %w", query.LeagueID, query.Season, err)
	}

	head := batch.Head(fixture.DisplayLimit)
	lines := make([]BoardLine, 0, len(head))
	for _, record := range head {
		if !record.OK() {
			s.logger.WarnContext(ctx, "skip fixture record", "position", record.Position, "error", record.Err)
		}
		lines = append(lines, BoardLine{
			Position: record.Position,
			Fixture:  record.Fixture,
			Err:      record.Err,
		})
	}

	s.logger.InfoContext(ctx, "fixture board built",
		"league_id", query.LeagueID,
		"from", query.FromDate(),
		"to", query.ToDate(),
		"found", batch.Len(),
		"rendered", len(lines),
	)

	return Board{
		Title: strings.TrimSpace(params.Title),
		Query: query,
		Found: batch.Len(),
		Lines: lines,
	}, nil
}
