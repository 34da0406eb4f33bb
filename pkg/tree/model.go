package tree

import (
	"encoding/json"
	"fmt"
	"io"
)

// Node is one node of a fitted decision tree.
// Leaves have Feature < 0 and no children.
type Node struct {
	Feature   int       `json:"feature"`   // Index into the feature names
	Threshold float64   `json:"threshold"` // Split goes left when feature <= Threshold
	Impurity  float64   `json:"impurity"`  // Gini impurity
	Samples   int       `json:"samples"`   // Training samples reaching the node
	Value     []float64 `json:"value"`     // Per-class sample counts (or weights)
	Left      *Node     `json:"left,omitempty"`
	Right     *Node     `json:"right,omitempty"`
}

// IsLeaf reports whether n has no split.
func (n *Node) IsLeaf() bool {
	return n.Feature < 0 || (n.Left == nil && n.Right == nil)
}

// Classifier is a fitted decision tree.
type Classifier interface {
	Root() *Node
}

// StaticTree is a Classifier backed by an in-memory node tree.
type StaticTree struct {
	Tree *Node
}

// Root returns the root node.
func (t StaticTree) Root() *Node {
	return t.Tree
}

// Labels used for the malware classification tree.
var (
	DefaultFeatureNames = []string{"feature1", "feature2"}
	DefaultClassNames   = []string{"benign", "adware", "malware"}
)

// LoadModel decodes a fitted tree from its JSON node form:
//
//	{"feature": 0, "threshold": 0.5, "impurity": 0.6, "samples": 10,
//	 "value": [5, 3, 2], "left": {...}, "right": {...}}
//
// Leaves use "feature": -1 and omit children.
func LoadModel(r io.Reader) (StaticTree, error) {
	var root Node
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&root); err != nil {
		return StaticTree{}, fmt.Errorf("decode tree model: %w", err)
	}
	return StaticTree{Tree: &root}, nil
}
