package notebook

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/nbserve/pkg/domain"
)

// Keys inspected by ClassifyOutput, in priority order.
const (
	keyText = "text"
	keyData = "data"

	mimePNG  = "image/png"
	mimeJSON = "application/json"
	mimeHTML = "text/html"
)

// Extract walks the document cells in order and returns their normalized form.
// Cells that are neither code nor markdown are not represented.
func Extract(doc *Document) []domain.Cell {
	cells := make([]domain.Cell, 0, len(doc.Cells))
	for _, c := range doc.Cells {
		switch c.Type {
		case CellTypeMarkdown:
			cells = append(cells, domain.NewTextCell(c.Source))
		case CellTypeCode:
			outputs := make([]domain.Output, 0, len(c.Outputs))
			for _, raw := range c.Outputs {
				if out, ok := ClassifyOutput(raw); ok {
					outputs = append(outputs, out)
				}
			}
			cells = append(cells, domain.NewCodeCell(c.Source, outputs))
		}
	}
	return cells
}

// ClassifyOutput picks the single recognized payload of a raw output entry.
// A top-level "text" key wins; otherwise the "data" bundle is searched for
// image/png, application/json and text/html, in that order. It reports false
// when the entry carries none of them.
func ClassifyOutput(raw RawOutput) (domain.Output, bool) {
	if v, ok := raw[keyText]; ok {
		return domain.Output{Kind: domain.OutputText, Text: stringify(v)}, true
	}

	data, ok := raw[keyData].(map[string]any)
	if !ok {
		return domain.Output{}, false
	}
	if v, ok := data[mimePNG]; ok {
		return domain.Output{Kind: domain.OutputImage, Text: stringify(v)}, true
	}
	if v, ok := data[mimeJSON]; ok {
		b, err := json.Marshal(v)
		if err != nil {
			b = []byte("null")
		}
		return domain.Output{Kind: domain.OutputJSON, Value: b}, true
	}
	if v, ok := data[mimeHTML]; ok {
		return domain.Output{Kind: domain.OutputHTML, Text: stringify(v)}, true
	}
	return domain.Output{}, false
}

// stringify renders a payload that is expected to be a multiline string.
// Anything else is kept as its JSON text rather than failing the whole notebook.
func stringify(v any) string {
	if s, err := joinMultiline(v); err == nil {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
