package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/ui/output"
	"go.trai.ch/bit/internal/ui/style"
)

// printer writes command results, painting them when w is a terminal.
type printer struct {
	w     io.Writer
	out   *termenv.Output
	color bool
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, out: output.New(w), color: output.IsTerminal(w)}
}

func (p *printer) paint(text string, color lipgloss.Color) string {
	if !p.color {
		return text
	}
	return output.Paint(p.out, text, color)
}

func (p *printer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) success(msg string) {
	p.line("%s %s", p.paint(style.Check, style.Green), msg)
}

func (p *printer) ids(ids []string) {
	for _, id := range ids {
		p.line("%s %s", p.paint(style.Dot, style.Iris), id)
	}
}

func (p *printer) bits(bits domain.Bits) {
	ids := make([]string, len(bits))
	for i, b := range bits {
		ids[i] = b.ID().String()
	}
	p.ids(ids)
}

// table writes borderless aligned columns. A nil header omits the header row.
func (p *printer) table(header []string, rows [][]string) {
	profile := termenv.Ascii
	if p.color {
		profile = p.out.Profile
	}
	r := lipgloss.NewRenderer(p.w, termenv.WithProfile(profile))
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := r.NewStyle().PaddingRight(2)
			if row == table.HeaderRow || (header == nil && col == 0) {
				s = s.Foreground(style.Slate)
			}
			return s
		}).
		Rows(rows...)
	if header != nil {
		t = t.Headers(header...)
	}
	_, _ = fmt.Fprintln(p.w, t.Render())
}

func (p *printer) bit(bit *domain.Bit) {
	fields := [][]string{
		{"id", bit.ID().String()},
		{"description", bit.Meta.Description},
		{"impl", bit.Meta.Impl},
		{"spec", bit.Meta.Spec},
		{"compiler", bit.Meta.Compiler},
		{"tester", bit.Meta.Tester},
		{"dependencies", strings.Join(bit.Meta.Dependencies, ", ")},
		{"dist", strings.Join(bit.DistPaths(), ", ")},
	}
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		if f[1] != "" {
			rows = append(rows, f)
		}
	}
	p.table(nil, rows)
}

func (p *printer) remotes(remotes []domain.Remote) {
	rows := make([][]string, len(remotes))
	for i, r := range remotes {
		primary := ""
		if r.Primary {
			primary = style.Check
		}
		rows[i] = []string{r.Alias, r.Host, primary}
	}
	p.table([]string{"ALIAS", "HOST", "PRIMARY"}, rows)
}

func (p *printer) results(results []domain.SearchResult) {
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{r.ID, r.Description, fmt.Sprint(r.Score)}
	}
	p.table([]string{"ID", "DESCRIPTION", "SCORE"}, rows)
}

func (p *printer) report(report domain.TestReport) {
	if report.Output != "" {
		_, _ = io.WriteString(p.w, strings.TrimRight(report.Output, "\n")+"\n")
	}
	if report.Passed {
		p.line("%s tests passed", p.paint(style.Check, style.Green))
		return
	}
	p.line("%s tests failed", p.paint(style.Cross, style.Red))
}
