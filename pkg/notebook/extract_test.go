package notebook

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/nbserve/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractString(t *testing.T, src string) []domain.Cell {
	t.Helper()
	doc, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	return Extract(doc)
}

func TestExtract_MarkdownAndCode(t *testing.T) {
	cells := extractString(t, `{
		"nbformat": 4, "nbformat_minor": 5, "metadata": {},
		"cells": [
			{"cell_type": "markdown", "metadata": {}, "source": "hello"},
			{"cell_type": "code", "metadata": {}, "execution_count": 1, "source": "print(42)",
			 "outputs": [{"output_type": "stream", "name": "stdout", "text": "42"}]}
		]
	}`)

	got, err := json.Marshal(cells)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"tipo": "texto", "contenido": "hello"},
		{"tipo": "código", "contenido": "print(42)", "salidas": [{"tipo": "texto", "contenido": "42"}]}
	]`, string(got))
}

func TestExtract_SkipsOtherCellTypes(t *testing.T) {
	cells := extractString(t, `{
		"nbformat": 4, "nbformat_minor": 2, "metadata": {},
		"cells": [
			{"cell_type": "raw", "metadata": {}, "source": "raw text"},
			{"cell_type": "markdown", "metadata": {}, "source": ["# Title\n", "body"]},
			{"cell_type": "mystery", "metadata": {}, "source": ""}
		]
	}`)

	require.Len(t, cells, 1)
	assert.Equal(t, domain.NewTextCell("# Title\nbody"), cells[0])
}

func TestExtract_CodeCellWithoutOutputs(t *testing.T) {
	cells := extractString(t, `{
		"nbformat": 4, "nbformat_minor": 4, "metadata": {},
		"cells": [{"cell_type": "code", "metadata": {}, "source": ["a = 1\n", "b = 2"], "outputs": []}]
	}`)

	require.Len(t, cells, 1)
	assert.Equal(t, domain.CellCode, cells[0].Kind)
	assert.Equal(t, "a = 1\nb = 2", cells[0].Source)
	assert.NotNil(t, cells[0].Outputs)
	assert.Empty(t, cells[0].Outputs)
}

func TestClassifyOutput(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   domain.Output
		wantOK bool
	}{
		{
			name:   "Text wins over data",
			raw:    `{"output_type": "stream", "text": "plain", "data": {"image/png": "iVBOR", "text/html": "<p/>"}}`,
			want:   domain.Output{Kind: domain.OutputText, Text: "plain"},
			wantOK: true,
		},
		{
			name:   "Multiline text is joined",
			raw:    `{"output_type": "stream", "text": ["a\n", "b\n"]}`,
			want:   domain.Output{Kind: domain.OutputText, Text: "a\nb\n"},
			wantOK: true,
		},
		{
			name:   "Image before JSON and HTML",
			raw:    `{"output_type": "display_data", "data": {"text/html": "<p/>", "application/json": {"a": 1}, "image/png": "iVBOR"}}`,
			want:   domain.Output{Kind: domain.OutputImage, Text: "iVBOR"},
			wantOK: true,
		},
		{
			name:   "JSON before HTML",
			raw:    `{"output_type": "execute_result", "data": {"text/html": "<p/>", "application/json": {"a": [1, 2.5]}}}`,
			want:   domain.Output{Kind: domain.OutputJSON, Value: json.RawMessage(`{"a":[1,2.5]}`)},
			wantOK: true,
		},
		{
			name:   "HTML alone",
			raw:    `{"output_type": "display_data", "data": {"text/html": ["<table>", "</table>"], "text/plain": "df"}}`,
			want:   domain.Output{Kind: domain.OutputHTML, Text: "<table></table>"},
			wantOK: true,
		},
		{
			name:   "Plain text bundle is dropped",
			raw:    `{"output_type": "execute_result", "data": {"text/plain": "42"}}`,
			wantOK: false,
		},
		{
			name:   "Error output is dropped",
			raw:    `{"output_type": "error", "ename": "ValueError", "evalue": "boom", "traceback": []}`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := json.NewDecoder(strings.NewReader(tt.raw))
			dec.UseNumber()
			var raw RawOutput
			require.NoError(t, dec.Decode(&raw))

			got, ok := ClassifyOutput(raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
