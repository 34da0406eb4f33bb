package notebook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"

	"github.com/aretw0/nbserve/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Cell types as stored in nbformat 4.
const (
	CellTypeCode     = "code"
	CellTypeMarkdown = "markdown"
	CellTypeRaw      = "raw"
)

// CurrentFormat is the nbformat major version documents are normalized to.
const CurrentFormat = 4

// Document is a decoded notebook in canonical nbformat 4 layout.
type Document struct {
	Format      int            `mapstructure:"nbformat"`
	FormatMinor int            `mapstructure:"nbformat_minor"`
	Metadata    map[string]any `mapstructure:"metadata"`
	Cells       []RawCell      `mapstructure:"-"`
}

// RawCell is a single undecorated notebook cell.
type RawCell struct {
	Type     string         `mapstructure:"cell_type"`
	Source   string         `mapstructure:"-"`
	Metadata map[string]any `mapstructure:"metadata"`
	Outputs  []RawOutput    `mapstructure:"outputs"`
}

// RawOutput is an output entry exactly as stored in the notebook.
type RawOutput map[string]any

// Decode reads a notebook from r and normalizes it to nbformat 4.
// All failures wrap [domain.ErrInvalidNotebook].
func Decode(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var top map[string]any
	if err := dec.Decode(&top); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidNotebook, err)
	}
	if top == nil {
		return nil, fmt.Errorf("%w: top level is not an object", domain.ErrInvalidNotebook)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after notebook object", domain.ErrInvalidNotebook)
	}

	var doc Document
	if err := decodeHeader(top, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidNotebook, err)
	}
	if _, ok := top["nbformat"]; !ok {
		return nil, fmt.Errorf("%w: missing nbformat version", domain.ErrInvalidNotebook)
	}

	switch doc.Format {
	case CurrentFormat:
	case 3:
		if err := upgradeV3(top); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidNotebook, err)
		}
		doc.Format, doc.FormatMinor = CurrentFormat, 0
	default:
		return nil, fmt.Errorf("%w: unsupported nbformat version %d", domain.ErrInvalidNotebook, doc.Format)
	}

	cells, err := decodeCells(top["cells"])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidNotebook, err)
	}
	doc.Cells = cells
	return &doc, nil
}

func decodeHeader(top map[string]any, doc *Document) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       integralNumberHook,
		WeaklyTypedInput: true,
		Result:           doc,
	})
	if err != nil {
		return err
	}
	return dec.Decode(top)
}

// integralNumberHook lets integer fields accept integral JSON numbers written
// with a fraction, such as "nbformat": 4.0.
func integralNumberHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	n, ok := data.(json.Number)
	if !ok || to.Kind() != reflect.Int {
		return data, nil
	}
	if i, err := n.Int64(); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, err
	}
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("%s is not an integer", n)
	}
	return int(f), nil
}

func decodeCells(v any) ([]RawCell, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("cells must be an array")
	}
	cells := make([]RawCell, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("cell %d is not an object", i)
		}
		var cell RawCell
		if err := mapstructure.Decode(m, &cell); err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		if cell.Type == "" {
			return nil, fmt.Errorf("cell %d: missing cell_type", i)
		}
		source, err := joinMultiline(m["source"])
		if err != nil {
			return nil, fmt.Errorf("cell %d source: %w", i, err)
		}
		cell.Source = source
		cells = append(cells, cell)
	}
	return cells, nil
}

// joinMultiline flattens the nbformat "multiline string" encoding, where a
// text field may be stored either as a string or as a list of lines.
func joinMultiline(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case []any:
		var b strings.Builder
		for _, line := range t {
			s, ok := line.(string)
			if !ok {
				return "", fmt.Errorf("expected string line, got %T", line)
			}
			b.WriteString(s)
		}
		return b.String(), nil
	default:
		return "", fmt.Errorf("expected string or list of strings, got %T", v)
	}
}
