package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadModel(t *testing.T) {
	clf, err := LoadModel(strings.NewReader(`{
		"feature": 0, "threshold": 0.5, "impurity": 0.5, "samples": 4, "value": [2, 1, 1],
		"left":  {"feature": -1, "samples": 2, "value": [2, 0, 0]},
		"right": {"feature": -1, "samples": 2, "value": [0, 1, 1]}
	}`))
	require.NoError(t, err)

	root := clf.Root()
	require.NotNil(t, root)
	assert.False(t, root.IsLeaf())
	assert.Equal(t, 0.5, root.Threshold)
	assert.True(t, root.Left.IsLeaf())
	assert.Equal(t, []float64{0, 1, 1}, root.Right.Value)
}

func TestLoadModel_Rejects(t *testing.T) {
	_, err := LoadModel(strings.NewReader(`{"feature": 0, "depth": 3}`))
	assert.ErrorContains(t, err, "decode tree model")

	_, err = LoadModel(strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestNodeLabel(t *testing.T) {
	opts := DefaultExportOptions()
	root := sampleTree().Root()

	assert.Equal(t, []string{
		"feature1 <= 0.5",
		"gini = 0.66",
		"samples = 30",
		"value = [10, 10, 10]",
		"class = benign",
	}, NodeLabel(root, opts))

	assert.Equal(t, []string{
		"gini = 0.18",
		"samples = 11",
		"value = [0, 1, 10]",
		"class = malware",
	}, NodeLabel(root.Right.Right, opts))
}
