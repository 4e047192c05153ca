package cli

import (
	"fmt"
	"io"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fixture-board/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

type FixtureLine struct {
	Position int    `json:"position"`
	Summary  string `json:"summary"`
	Error    string `json:"error,omitempty"`
}

// OutputResult holds either a board or an error banner.
type OutputResult struct {
	Title    string        `json:"title,omitempty"`
	From     string        `json:"from,omitempty"`
	To       string        `json:"to,omitempty"`
	Found    int           `json:"found"`
	Fixtures []FixtureLine `json:"fixtures"`
	Error    string        `json:"error,omitempty"`
}

func resultFromBoard(board usecase.Board) *OutputResult {
	lines := make([]FixtureLine, 0, len(board.Lines))
	for _, line := range board.Lines {
		item := FixtureLine{Position: line.Position, Summary: line.Text()}
		if !line.OK() {
			item.Error = line.Err.Error()
		}
		lines = append(lines, item)
	}

	return &OutputResult{
		Title:    board.Title,
		From:     board.Query.FromDate(),
		To:       board.Query.ToDate(),
		Found:    board.Found,
		Fixtures: lines,
	}
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *OutputResult) error {
	if result.Fixtures == nil {
		result.Fixtures = []FixtureLine{}
	}
	encoder := sonic.ConfigStd.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *OutputResult) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if result.Title != "" {
		_, _ = buf.WriteString(result.Title)
		_ = buf.WriteByte('\n')
	}
	if result.Error != "" {
		_, _ = buf.WriteString(result.Error)
		_ = buf.WriteByte('\n')
	} else {
		_, _ = fmt.Fprintf(buf, "Matches found: %d\n", result.Found)
		for _, line := range result.Fixtures {
			_, _ = buf.WriteString(line.Summary)
			_ = buf.WriteByte('\n')
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}
