package httpapi

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/riskibarqy/fixture-board/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

//go:embed templates/board.html.tmpl
var templateFS embed.FS

type boardLineView struct {
	OK   bool
	Text string
}

// boardView is either a banner or a count with lines, never both.
type boardView struct {
	Title  string
	Banner string
	Found  int
	Lines  []boardLineView
}

func boardViewFrom(board usecase.Board) boardView {
	lines := make([]boardLineView, 0, len(board.Lines))
	for _, line := range board.Lines {
		lines = append(lines, boardLineView{OK: line.OK(), Text: line.Text()})
	}

	return boardView{
		Title: board.Title,
		Found: board.Found,
		Lines: lines,
	}
}

type boardPage struct {
	tmpl *template.Template
}

func newBoardPage() *boardPage {
	return &boardPage{
		tmpl: template.Must(template.ParseFS(templateFS, "templates/board.html.tmpl")),
	}
}

// render buffers the whole page before any header is written.
func (p *boardPage) render(ctx context.Context, w http.ResponseWriter, view boardView) error {
	_, span := startSpan(ctx, "httpapi.boardPage.render")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := p.tmpl.Execute(buf, view); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(buf.Bytes())
	return err
}
