package tree

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ExportOptions controls the DOT export.
type ExportOptions struct {
	FeatureNames []string
	ClassNames   []string
	Rounded      bool // Rounded node boxes and helvetica fonts
	Filled       bool // Fill nodes with the majority class color
}

// DefaultExportOptions returns the fixed labels and flags used by the service.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		FeatureNames: DefaultFeatureNames,
		ClassNames:   DefaultClassNames,
		Rounded:      true,
		Filled:       true,
	}
}

// ExportDOT writes the Graphviz description of clf to w.
// A nil classifier, or one without a root, produces a graph without nodes.
func ExportDOT(w io.Writer, clf Classifier, opts ExportOptions) error {
	bw := bufio.NewWriter(w)
	e := &exporter{w: bw, opts: opts}

	e.header()
	var root *Node
	if clf != nil {
		root = clf.Root()
	}
	if root != nil {
		if err := e.validate(root); err != nil {
			return err
		}
		e.colors = colorBrew(len(root.Value))
		e.recurse(root, -1, true)
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

type exporter struct {
	w      *bufio.Writer
	opts   ExportOptions
	colors [][3]int
	nextID int
}

func (e *exporter) header() {
	e.w.WriteString("digraph Tree {\n")

	var styles []string
	if e.opts.Filled {
		styles = append(styles, "filled")
	}
	if e.opts.Rounded {
		styles = append(styles, "rounded")
	}
	node := `node [shape=box`
	if len(styles) > 0 {
		node += fmt.Sprintf(`, style="%s", color="black"`, strings.Join(styles, ", "))
	}
	if e.opts.Rounded {
		node += `, fontname="helvetica"`
	}
	e.w.WriteString(node + "] ;\n")
	if e.opts.Rounded {
		e.w.WriteString(`edge [fontname="helvetica"] ;` + "\n")
	}
}

func (e *exporter) validate(n *Node) error {
	if n == nil {
		return nil
	}
	if len(e.opts.ClassNames) > 0 && len(n.Value) != len(e.opts.ClassNames) {
		return fmt.Errorf("node has %d class values but %d class names were given", len(n.Value), len(e.opts.ClassNames))
	}
	if !n.IsLeaf() {
		if len(e.opts.FeatureNames) > 0 && n.Feature >= len(e.opts.FeatureNames) {
			return fmt.Errorf("split on feature %d but only %d feature names were given", n.Feature, len(e.opts.FeatureNames))
		}
		if err := e.validate(n.Left); err != nil {
			return err
		}
		return e.validate(n.Right)
	}
	return nil
}

// recurse writes n and its subtree in pre-order, numbering nodes as it goes.
func (e *exporter) recurse(n *Node, parent int, isLeft bool) {
	id := e.nextID
	e.nextID++

	attrs := fmt.Sprintf("label=%s", quote(e.label(n)))
	if e.opts.Filled {
		attrs += fmt.Sprintf(`, fillcolor="%s"`, e.fillColor(n.Value))
	}
	fmt.Fprintf(e.w, "%d [%s] ;\n", id, attrs)

	if parent >= 0 {
		fmt.Fprintf(e.w, "%d -> %d", parent, id)
		if parent == 0 {
			// Only the root edges are annotated.
			angle, head := 45, "True"
			if !isLeft {
				angle, head = -45, "False"
			}
			fmt.Fprintf(e.w, ` [labeldistance=2.5, labelangle=%d, headlabel="%s"]`, angle, head)
		}
		e.w.WriteString(" ;\n")
	}

	if n.IsLeaf() {
		return
	}
	if n.Left != nil {
		e.recurse(n.Left, id, true)
	}
	if n.Right != nil {
		e.recurse(n.Right, id, false)
	}
}

func (e *exporter) label(n *Node) string {
	return strings.Join(NodeLabel(n, e.opts), `\n`)
}

// NodeLabel returns the text lines describing n: the split test (internal
// nodes only), impurity, sample count, class values and majority class.
func NodeLabel(n *Node, opts ExportOptions) []string {
	var lines []string
	if !n.IsLeaf() {
		feature := fmt.Sprintf("x[%d]", n.Feature)
		if n.Feature < len(opts.FeatureNames) {
			feature = opts.FeatureNames[n.Feature]
		}
		lines = append(lines, fmt.Sprintf("%s <= %s", feature, round(n.Threshold)))
	}
	lines = append(lines,
		"gini = "+round(n.Impurity),
		fmt.Sprintf("samples = %d", n.Samples),
		"value = "+formatValues(n.Value),
	)
	if len(opts.ClassNames) > 0 && len(n.Value) > 0 {
		lines = append(lines, "class = "+opts.ClassNames[argmax(n.Value)])
	}
	return lines
}

// fillColor shades the majority class color by how pure the node is.
func (e *exporter) fillColor(value []float64) string {
	if len(value) == 0 || len(e.colors) == 0 {
		return "#ffffff"
	}
	var total float64
	for _, v := range value {
		total += v
	}
	if total == 0 {
		return "#ffffff"
	}
	norm := make([]float64, len(value))
	for i, v := range value {
		norm[i] = v / total
	}
	sorted := append([]float64(nil), norm...)
	sort.Float64s(sorted)

	alpha := 0.0
	if len(sorted) > 1 {
		top, second := sorted[len(sorted)-1], sorted[len(sorted)-2]
		if second < 1 {
			alpha = (top - second) / (1 - second)
		}
	}

	base := e.colors[argmax(value)]
	var rgb [3]int
	for i, c := range base {
		rgb[i] = int(math.Round(alpha*float64(c) + (1-alpha)*255))
	}
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

// colorBrew spreads n hues evenly around the color wheel.
func colorBrew(n int) [][3]int {
	if n <= 0 {
		return nil
	}
	const s, l = 0.75, 0.9
	c := s * l
	m := l - c

	colors := make([][3]int, 0, n)
	for i := 0; i < n; i++ {
		h := 25 + float64(i)*360/float64(n)
		hBar := h / 60
		x := c * (1 - math.Abs(math.Mod(hBar, 2)-1))
		table := [][3]float64{{c, x, 0}, {x, c, 0}, {0, c, x}, {0, x, c}, {x, 0, c}, {c, 0, x}, {c, x, 0}}
		rgb := table[int(hBar)]
		colors = append(colors, [3]int{
			int(255 * (rgb[0] + m)),
			int(255 * (rgb[1] + m)),
			int(255 * (rgb[2] + m)),
		})
	}
	return colors
}

func argmax(v []float64) int {
	best := 0
	for i := range v {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}

func round(f float64) string {
	return strconv.FormatFloat(math.Round(f*1000)/1000, 'f', -1, 64)
}

func formatValues(v []float64) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = round(f)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// quote renders a DOT string literal, keeping \n escapes as line breaks.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
