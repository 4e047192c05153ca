package app

import (
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/fixture-board/external/apisports"
	"github.com/riskibarqy/fixture-board/internal/config"
	"github.com/riskibarqy/fixture-board/internal/interfaces/httpapi"
	"github.com/riskibarqy/fixture-board/internal/platform/logging"
	"github.com/riskibarqy/fixture-board/internal/usecase"
)

// BoardParams returns the configured default board.
func BoardParams(cfg config.Config) usecase.BoardParams {
	return usecase.BoardParams{
		Title:         cfg.FixturesPageTitle,
		LeagueID:      cfg.FixturesLeagueID,
		Season:        cfg.FixturesSeason,
		LookaheadDays: cfg.FixturesLookaheadDays,
	}
}

func NewFixtureBoardService(cfg config.Config, logger *logging.Logger) *usecase.FixtureBoardService {
	client := apisports.NewClient(apisports.ClientConfig{
		BaseURL: cfg.APISportsBaseURL,
		APIKey:  cfg.APISportsKey,
		Timeout: cfg.APISportsTimeout,
		Logger:  logger,
	})

	return usecase.NewFixtureBoardService(client, clockwork.NewRealClock(), cfg.FixturesLocation, logger)
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(NewFixtureBoardService(cfg, logger), BoardParams(cfg), logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
