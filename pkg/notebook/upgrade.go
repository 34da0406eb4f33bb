package notebook

import (
	"encoding/json"
	"fmt"
	"strings"
)

// v3MIMEKeys maps the nbformat 3 output shortcut keys to their MIME types.
var v3MIMEKeys = map[string]string{
	"text":       "text/plain",
	"html":       "text/html",
	"svg":        "image/svg+xml",
	"png":        "image/png",
	"jpeg":       "image/jpeg",
	"latex":      "text/latex",
	"json":       "application/json",
	"javascript": "application/javascript",
}

// upgradeV3 rewrites an nbformat 3 document in place into the nbformat 4
// layout: worksheets are flattened into a single cell list and cells and
// outputs take their v4 names.
func upgradeV3(top map[string]any) error {
	var cells []any
	if raw, ok := top["worksheets"]; ok && raw != nil {
		worksheets, ok := raw.([]any)
		if !ok {
			return fmt.Errorf("worksheets must be an array")
		}
		for i, ws := range worksheets {
			wsMap, ok := ws.(map[string]any)
			if !ok {
				return fmt.Errorf("worksheet %d is not an object", i)
			}
			list, ok := wsMap["cells"].([]any)
			if !ok {
				return fmt.Errorf("worksheet %d: cells must be an array", i)
			}
			for j, c := range list {
				cell, ok := c.(map[string]any)
				if !ok {
					return fmt.Errorf("worksheet %d cell %d is not an object", i, j)
				}
				if err := upgradeCellV3(cell); err != nil {
					return fmt.Errorf("worksheet %d cell %d: %w", i, j, err)
				}
				cells = append(cells, cell)
			}
		}
	}
	if cells == nil {
		cells = []any{}
	}
	delete(top, "worksheets")
	top["cells"] = cells
	top["nbformat"] = json.Number("4")
	top["nbformat_minor"] = json.Number("0")
	return nil
}

func upgradeCellV3(cell map[string]any) error {
	switch cell["cell_type"] {
	case "code":
		cell["source"] = cell["input"]
		delete(cell, "input")
		cell["execution_count"] = cell["prompt_number"]
		delete(cell, "prompt_number")
		delete(cell, "language")

		raw, ok := cell["outputs"]
		if !ok || raw == nil {
			cell["outputs"] = []any{}
			return nil
		}
		outputs, ok := raw.([]any)
		if !ok {
			return fmt.Errorf("outputs must be an array")
		}
		for k, o := range outputs {
			out, ok := o.(map[string]any)
			if !ok {
				return fmt.Errorf("output %d is not an object", k)
			}
			upgradeOutputV3(out)
		}
	case "heading":
		level := 1
		if n, ok := cell["level"].(json.Number); ok {
			if v, err := n.Int64(); err == nil && v > 0 {
				level = int(v)
			}
		}
		source, err := joinMultiline(cell["source"])
		if err != nil {
			return err
		}
		cell["cell_type"] = "markdown"
		cell["source"] = strings.Repeat("#", level) + " " + strings.Join(strings.Split(source, "\n"), " ")
		delete(cell, "level")
	}
	return nil
}

func upgradeOutputV3(out map[string]any) {
	switch out["output_type"] {
	case "pyout", "display_data":
		if out["output_type"] == "pyout" {
			out["output_type"] = "execute_result"
			out["execution_count"] = out["prompt_number"]
			delete(out, "prompt_number")
		}
		data := map[string]any{}
		for key, mime := range v3MIMEKeys {
			v, ok := out[key]
			if !ok {
				continue
			}
			if key == "json" {
				v = decodeJSONString(v)
			}
			data[mime] = v
			delete(out, key)
		}
		out["data"] = data
	case "pyerr":
		out["output_type"] = "error"
	case "stream":
		if stream, ok := out["stream"]; ok {
			out["name"] = stream
			delete(out, "stream")
		}
	}
}

// decodeJSONString parses the v3 encoding of a JSON payload, which stored it
// as serialized text. Values that are not valid JSON text are left unchanged.
func decodeJSONString(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	var parsed any
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	if err := dec.Decode(&parsed); err != nil {
		return v
	}
	return parsed
}
