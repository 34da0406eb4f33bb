package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/nbserve/pkg/domain"
	"github.com/muesli/termenv"
)

// CellPrinter writes extracted notebook cells to a terminal.
type CellPrinter struct {
	Out      io.Writer
	Markdown func(string) (string, error)
	Plain    bool
}

// NewCellPrinter creates a printer; plain disables colors and markdown styling.
func NewCellPrinter(out io.Writer, plain bool) *CellPrinter {
	return &CellPrinter{Out: out, Markdown: NewRenderer(plain), Plain: plain}
}

// Print writes every cell in order.
func (p *CellPrinter) Print(cells []domain.Cell) error {
	for i, c := range cells {
		if err := p.printCell(i+1, c); err != nil {
			return err
		}
	}
	return nil
}

func (p *CellPrinter) printCell(n int, c domain.Cell) error {
	fmt.Fprintln(p.Out, p.header(fmt.Sprintf("[%d] %s", n, c.Kind)))

	if c.Kind == domain.CellText {
		rendered, err := p.Markdown(c.Source)
		if err != nil {
			return fmt.Errorf("render cell %d: %w", n, err)
		}
		fmt.Fprintln(p.Out, strings.TrimRight(rendered, "\n"))
		fmt.Fprintln(p.Out)
		return nil
	}

	fmt.Fprintln(p.Out, indent(c.Source, "    "))
	for _, o := range c.Outputs {
		fmt.Fprintln(p.Out, p.dim("  -> "+string(o.Kind)))
		fmt.Fprintln(p.Out, indent(summarize(o), "     "))
	}
	fmt.Fprintln(p.Out)
	return nil
}

func (p *CellPrinter) header(s string) string {
	if p.Plain {
		return s
	}
	return termenv.String(s).Bold().Foreground(termenv.ColorProfile().Color("#f97316")).String()
}

func (p *CellPrinter) dim(s string) string {
	if p.Plain {
		return s
	}
	return termenv.String(s).Faint().String()
}

// summarize keeps binary and markup payloads from flooding the terminal.
func summarize(o domain.Output) string {
	switch o.Kind {
	case domain.OutputImage:
		return fmt.Sprintf("<image/png, %d base64 bytes>", len(o.Text))
	case domain.OutputJSON:
		return string(o.Value)
	case domain.OutputHTML:
		if len(o.Text) > 200 {
			return o.Text[:200] + "..."
		}
		return o.Text
	default:
		return strings.TrimRight(o.Text, "\n")
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
