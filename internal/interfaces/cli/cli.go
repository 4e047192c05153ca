package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/riskibarqy/fixture-board/internal/usecase"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// errBoardFailed marks a failure whose banner was already printed.
var errBoardFailed = errors.New("fixture board failed")

type options struct {
	format        string
	leagueID      int
	season        int
	lookaheadDays int
}

// NewRootCmd creates the root command. Flag defaults come from the loaded
// configuration.
func NewRootCmd(service *usecase.FixtureBoardService, defaults usecase.BoardParams) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Show upcoming football fixtures from API-Football",
		Long: `Fetches the fixtures of one league and season for today and the next
few days from API-Football and prints how many were found plus the first five.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBoard(cmd, service, defaults, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", string(FormatText), "Output format: text or json")
	cmd.Flags().IntVar(&opts.leagueID, "league", defaults.LeagueID, "API-Football league id")
	cmd.Flags().IntVar(&opts.season, "season", defaults.Season, "Season year")
	cmd.Flags().IntVar(&opts.lookaheadDays, "lookahead-days", defaults.LookaheadDays, "Days after today to include")

	return cmd
}

func runBoard(cmd *cobra.Command, service *usecase.FixtureBoardService, defaults usecase.BoardParams, opts *options) error {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(opts.format)))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", opts.format)
	}

	params := defaults
	params.LeagueID = opts.leagueID
	params.Season = opts.season
	params.LookaheadDays = opts.lookaheadDays

	board, err := service.Build(cmd.Context(), params)
	if err != nil {
		result := &OutputResult{Title: params.Title, Error: usecase.DescribeFailure(err)}
		if writeErr := WriteOutput(cmd.OutOrStdout(), result, format); writeErr != nil {
			return fmt.Errorf("writing output: %w", writeErr)
		}
		return errBoardFailed
	}

	if err := WriteOutput(cmd.OutOrStdout(), resultFromBoard(board), format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// Execute runs cmd and returns the process exit code.
func Execute(cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errBoardFailed) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return ExitError
	}
	return ExitSuccess
}
