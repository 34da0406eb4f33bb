package domain

import (
	"encoding/json"
)

// CellKind tags a Cell as code or text. The values are the wire labels.
type CellKind string

const (
	// CellCode is a code cell; it carries Outputs.
	CellCode CellKind = "código"
	// CellText is a narrative cell originating from markdown.
	CellText CellKind = "texto"
)

// OutputKind tags the payload carried by an Output. The values are the wire labels.
type OutputKind string

const (
	OutputText  OutputKind = "texto"
	OutputImage OutputKind = "imagen"
	OutputJSON  OutputKind = "json"
	OutputHTML  OutputKind = "html"
)

// Cell is one normalized notebook cell, in document order.
type Cell struct {
	Kind    CellKind
	Source  string
	Outputs []Output // only meaningful for CellCode
}

// NewCodeCell builds a code cell. A nil outputs slice is normalized to empty so
// that code cells always serialize "salidas".
func NewCodeCell(source string, outputs []Output) Cell {
	if outputs == nil {
		outputs = []Output{}
	}
	return Cell{Kind: CellCode, Source: source, Outputs: outputs}
}

// NewTextCell builds a text cell.
func NewTextCell(source string) Cell {
	return Cell{Kind: CellText, Source: source}
}

type cellJSON struct {
	Kind    CellKind  `json:"tipo"`
	Source  string    `json:"contenido"`
	Outputs *[]Output `json:"salidas,omitempty"`
}

// MarshalJSON emits "salidas" for code cells (even when empty) and omits it for text cells.
func (c Cell) MarshalJSON() ([]byte, error) {
	out := cellJSON{Kind: c.Kind, Source: c.Source}
	if c.Kind == CellCode {
		outputs := c.Outputs
		if outputs == nil {
			outputs = []Output{}
		}
		out.Outputs = &outputs
	}
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var in cellJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	c.Kind = in.Kind
	c.Source = in.Source
	c.Outputs = nil
	if in.Outputs != nil {
		c.Outputs = *in.Outputs
	}
	return nil
}

// Output is a single recorded result of a code cell.
//
// Text holds the payload for text, image (base64 PNG) and HTML kinds.
// Value holds the verbatim structured payload for the JSON kind.
type Output struct {
	Kind  OutputKind
	Text  string
	Value json.RawMessage
}

type outputJSON struct {
	Kind    OutputKind      `json:"tipo"`
	Content json.RawMessage `json:"contenido"`
}

// MarshalJSON emits {"tipo": kind, "contenido": payload}.
func (o Output) MarshalJSON() ([]byte, error) {
	var content json.RawMessage
	if o.Kind == OutputJSON {
		content = o.Value
		if len(content) == 0 {
			content = json.RawMessage("null")
		}
	} else {
		b, err := json.Marshal(o.Text)
		if err != nil {
			return nil, err
		}
		content = b
	}
	return json.Marshal(outputJSON{Kind: o.Kind, Content: content})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (o *Output) UnmarshalJSON(data []byte) error {
	var in outputJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	o.Kind = in.Kind
	o.Text = ""
	o.Value = nil
	if in.Kind == OutputJSON {
		o.Value = append(json.RawMessage(nil), in.Content...)
		return nil
	}
	if len(in.Content) == 0 {
		return nil
	}
	return json.Unmarshal(in.Content, &o.Text)
}
