package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/nbserve/pkg/tree"
)

// GenerateMermaid produces a Mermaid flowchart of a decision tree.
// It applies semantic styling:
// - Split: {Rhombus}
// - Leaf: ([Stadium])
// Root edges carry True/False like the DOT export; the others are unlabeled.
// A nil classifier yields the bare header.
func GenerateMermaid(clf tree.Classifier, opts tree.ExportOptions) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	var root *tree.Node
	if clf != nil {
		root = clf.Root()
	}
	if root == nil {
		return sb.String()
	}

	m := &mermaid{sb: &sb, opts: opts}
	m.recurse(root, -1, true)

	if len(opts.ClassNames) > 0 {
		sb.WriteString("\n    %% Class Styles\n")
		for i, name := range opts.ClassNames {
			fmt.Fprintf(&sb, "    classDef %s fill:%s,color:#000;\n", sanitizeMermaidID(name), classColor(i))
		}
		for _, leaf := range m.leaves {
			fmt.Fprintf(&sb, "    class n%d %s;\n", leaf.id, sanitizeMermaidID(leaf.class))
		}
	}
	return sb.String()
}

type leafRef struct {
	id    int
	class string
}

type mermaid struct {
	sb     *strings.Builder
	opts   tree.ExportOptions
	nextID int
	leaves []leafRef
}

func (m *mermaid) recurse(n *tree.Node, parent int, isLeft bool) {
	id := m.nextID
	m.nextID++

	label := strings.ReplaceAll(strings.Join(tree.NodeLabel(n, m.opts), "<br/>"), "\"", "'")
	opener, closer := "{", "}"
	if n.IsLeaf() {
		opener, closer = "([", "])"
		if cls := majorityClass(n, m.opts); cls != "" {
			m.leaves = append(m.leaves, leafRef{id: id, class: cls})
		}
	}
	fmt.Fprintf(m.sb, "    n%d%s\"%s\"%s\n", id, opener, label, closer)

	if parent >= 0 {
		arrow := "-->"
		if parent == 0 {
			head := "True"
			if !isLeft {
				head = "False"
			}
			arrow = fmt.Sprintf("-- %s -->", head)
		}
		fmt.Fprintf(m.sb, "    n%d %s n%d\n", parent, arrow, id)
	}

	if n.IsLeaf() {
		return
	}
	if n.Left != nil {
		m.recurse(n.Left, id, true)
	}
	if n.Right != nil {
		m.recurse(n.Right, id, false)
	}
}

func majorityClass(n *tree.Node, opts tree.ExportOptions) string {
	if len(n.Value) == 0 || len(n.Value) != len(opts.ClassNames) {
		return ""
	}
	best := 0
	for i, v := range n.Value {
		if v > n.Value[best] {
			best = i
		}
	}
	return opts.ClassNames[best]
}

// classColor cycles through a fixed palette of light fills.
func classColor(i int) string {
	palette := []string{"#f9c9a6", "#b8f0a6", "#a6c8f0", "#f0a6e0", "#f0eaa6", "#a6f0ea"}
	return palette[i%len(palette)]
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
