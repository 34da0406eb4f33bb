package notebook

import (
	"strings"
	"testing"

	"github.com/aretw0/nbserve/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Errors(t *testing.T) {
	tests := map[string]string{
		"Invalid JSON":        `{"nbformat": 4,`,
		"Not an object":       `[1, 2, 3]`,
		"Missing version":     `{"cells": []}`,
		"Unsupported version": `{"nbformat": 2, "cells": []}`,
		"Cells not an array":  `{"nbformat": 4, "nbformat_minor": 0, "cells": {}}`,
		"Cell without type":   `{"nbformat": 4, "nbformat_minor": 0, "cells": [{"source": "x"}]}`,
		"Bad source":          `{"nbformat": 4, "nbformat_minor": 0, "cells": [{"cell_type": "code", "source": 7}]}`,
		"Trailing object":     `{"nbformat": 4, "nbformat_minor": 0, "cells": []} {"x": 1}`,
		"Trailing garbage":    `{"nbformat": 4, "nbformat_minor": 0, "cells": []} junk`,
		"Fractional version":  `{"nbformat": 4.5, "cells": []}`,
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(src))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidNotebook)
		})
	}
}

func TestDecode_UpgradesV3(t *testing.T) {
	v3 := `{
		"nbformat": 3, "nbformat_minor": 0, "metadata": {"name": "legacy"},
		"worksheets": [
			{"cells": [
				{"cell_type": "heading", "level": 2, "source": "Results"},
				{"cell_type": "markdown", "source": ["hello"]},
				{"cell_type": "code", "language": "python", "input": "print(42)", "prompt_number": 1,
				 "outputs": [
					{"output_type": "stream", "stream": "stdout", "text": "42\n"},
					{"output_type": "pyout", "prompt_number": 1, "text": "'x'"},
					{"output_type": "display_data", "png": "iVBOR", "text": "<Figure>"},
					{"output_type": "display_data", "json": "{\"k\": true}"},
					{"output_type": "pyerr", "ename": "E", "evalue": "v", "traceback": []}
				 ]}
			]},
			{"cells": [{"cell_type": "raw", "source": "ignored"}]}
		]
	}`

	doc, err := Decode(strings.NewReader(v3))
	require.NoError(t, err)
	assert.Equal(t, CurrentFormat, doc.Format)
	require.Len(t, doc.Cells, 4)

	cells := Extract(doc)
	require.Len(t, cells, 3)
	assert.Equal(t, domain.NewTextCell("## Results"), cells[0])
	assert.Equal(t, domain.NewTextCell("hello"), cells[1])

	code := cells[2]
	assert.Equal(t, domain.CellCode, code.Kind)
	assert.Equal(t, "print(42)", code.Source)
	require.Len(t, code.Outputs, 3)
	assert.Equal(t, domain.Output{Kind: domain.OutputText, Text: "42\n"}, code.Outputs[0])
	assert.Equal(t, domain.Output{Kind: domain.OutputImage, Text: "iVBOR"}, code.Outputs[1])
	assert.Equal(t, domain.OutputJSON, code.Outputs[2].Kind)
	assert.JSONEq(t, `{"k": true}`, string(code.Outputs[2].Value))
}

func TestDecode_KeepsMetadata(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{
		"nbformat": 4, "nbformat_minor": 5,
		"metadata": {"kernelspec": {"name": "python3"}},
		"cells": []
	}`))
	require.NoError(t, err)
	assert.Equal(t, 5, doc.FormatMinor)
	assert.Contains(t, doc.Metadata, "kernelspec")
	assert.Empty(t, doc.Cells)
}

func TestDecode_FractionalIntegralVersion(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"nbformat": 4.0, "nbformat_minor": 2.0, "metadata": {}, "cells": []}`))
	require.NoError(t, err)
	assert.Equal(t, CurrentFormat, doc.Format)
	assert.Equal(t, 2, doc.FormatMinor)
}

func TestDecode_TrailingWhitespace(t *testing.T) {
	_, err := Decode(strings.NewReader("{\"nbformat\": 4, \"nbformat_minor\": 0, \"cells\": []}\n\n"))
	require.NoError(t, err)
}
