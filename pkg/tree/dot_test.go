package tree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() StaticTree {
	return StaticTree{Tree: &Node{
		Feature: 0, Threshold: 0.5, Impurity: 0.66, Samples: 30, Value: []float64{10, 10, 10},
		Left: &Node{Feature: -1, Impurity: 0, Samples: 10, Value: []float64{10, 0, 0}},
		Right: &Node{
			Feature: 1, Threshold: 2.25, Impurity: 0.5, Samples: 20, Value: []float64{0, 10, 10},
			Left:  &Node{Feature: -1, Samples: 9, Value: []float64{0, 9, 0}},
			Right: &Node{Feature: -1, Impurity: 0.18, Samples: 11, Value: []float64{0, 1, 10}},
		},
	}}
}

func TestExportDOT_NilClassifier(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportDOT(&buf, nil, DefaultExportOptions()))

	assert.Equal(t, "digraph Tree {\n"+
		`node [shape=box, style="filled, rounded", color="black", fontname="helvetica"] ;`+"\n"+
		`edge [fontname="helvetica"] ;`+"\n"+
		"}\n", buf.String())
}

func TestExportDOT_PlainStyle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportDOT(&buf, nil, ExportOptions{}))
	assert.Equal(t, "digraph Tree {\nnode [shape=box] ;\n}\n", buf.String())
}

func TestExportDOT_Tree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportDOT(&buf, sampleTree(), DefaultExportOptions()))
	out := buf.String()

	assert.Contains(t, out, `0 [label="feature1 <= 0.5\ngini = 0.66\nsamples = 30\nvalue = [10, 10, 10]\nclass = benign", fillcolor="#ffffff"] ;`)
	assert.Contains(t, out, `1 [label="gini = 0\nsamples = 10\nvalue = [10, 0, 0]\nclass = benign", fillcolor="#e58139"] ;`)
	assert.Contains(t, out, `0 -> 1 [labeldistance=2.5, labelangle=45, headlabel="True"] ;`)
	assert.Contains(t, out, `2 [label="feature2 <= 2.25`)
	assert.Contains(t, out, `0 -> 2 [labeldistance=2.5, labelangle=-45, headlabel="False"] ;`)
	assert.Contains(t, out, "2 -> 3 ;\n")
	assert.Contains(t, out, "2 -> 4 ;\n")
	assert.Contains(t, out, `class = malware`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestExportDOT_Validation(t *testing.T) {
	t.Run("Class count mismatch", func(t *testing.T) {
		clf := StaticTree{Tree: &Node{Feature: -1, Value: []float64{1, 2}}}
		err := ExportDOT(&bytes.Buffer{}, clf, DefaultExportOptions())
		assert.ErrorContains(t, err, "class names")
	})

	t.Run("Unknown feature", func(t *testing.T) {
		clf := StaticTree{Tree: &Node{
			Feature: 5, Value: []float64{1, 1, 1},
			Left:  &Node{Feature: -1, Value: []float64{1, 0, 0}},
			Right: &Node{Feature: -1, Value: []float64{0, 1, 1}},
		}}
		err := ExportDOT(&bytes.Buffer{}, clf, DefaultExportOptions())
		assert.ErrorContains(t, err, "feature names")
	})
}

func TestColorBrew(t *testing.T) {
	assert.Equal(t, [][3]int{{229, 129, 57}, {57, 229, 129}, {129, 57, 229}}, colorBrew(3))
	assert.Nil(t, colorBrew(0))
}
