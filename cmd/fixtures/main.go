package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/fixture-board/internal/app"
	"github.com/riskibarqy/fixture-board/internal/config"
	"github.com/riskibarqy/fixture-board/internal/interfaces/cli"
	"github.com/riskibarqy/fixture-board/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitError)
	}

	// stdout carries the board; logs go to stderr.
	logger := logging.NewJSONWriter(os.Stderr, cfg.LogLevel)

	cmd := cli.NewRootCmd(app.NewFixtureBoardService(cfg, logger), app.BoardParams(cfg))
	code := cli.Execute(cmd, os.Stderr)
	_ = logger.Sync()
	os.Exit(code)
}
