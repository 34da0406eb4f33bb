package tui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/nbserve/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewCellPrinter(&buf, true)

	err := p.Print([]domain.Cell{
		domain.NewTextCell("# Intro"),
		domain.NewCodeCell("print(1)\nprint(2)", []domain.Output{
			{Kind: domain.OutputText, Text: "1\n2\n"},
			{Kind: domain.OutputImage, Text: strings.Repeat("A", 12)},
			{Kind: domain.OutputJSON, Value: json.RawMessage(`{"a":1}`)},
		}),
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "[1] texto")
	assert.Contains(t, out, "# Intro")
	assert.Contains(t, out, "[2] código")
	assert.Contains(t, out, "    print(1)\n    print(2)")
	assert.Contains(t, out, "  -> texto\n     1\n     2")
	assert.Contains(t, out, "<image/png, 12 base64 bytes>")
	assert.Contains(t, out, `{"a":1}`)
	assert.NotContains(t, out, "\x1b[", "plain output must not carry escape codes")
}

func TestSummarize_TruncatesHTML(t *testing.T) {
	long := strings.Repeat("<p>x</p>", 50)
	got := summarize(domain.Output{Kind: domain.OutputHTML, Text: long})
	assert.Len(t, got, 203)
	assert.True(t, strings.HasSuffix(got, "..."))
}
