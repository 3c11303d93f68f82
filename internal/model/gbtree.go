package model

import (
	"errors"
	"fmt"

	"github.com/kidneycare/backend/pkg/utils"
)

// TreeNode is one node of a flattened regression tree.
// Children are indices into the same tree's node list.
type TreeNode struct {
	FeatureIdx int     `json:"feature_idx"`
	Threshold  float64 `json:"threshold"`
	LeftChild  int     `json:"left_child"`
	RightChild int     `json:"right_child"`
	IsLeaf     bool    `json:"is_leaf"`
	LeafValue  float64 `json:"leaf_value"`
}

// GBTree is a gradient-boosted ensemble scored with a logistic link
type GBTree struct {
	trees      [][]TreeNode
	baseMargin float64
	features   int
}

func newGBTree(trees [][]TreeNode, baseScore float64, features int) (*GBTree, error) {
	if len(trees) == 0 {
		return nil, errors.New("model: gbtree artifact has no trees")
	}
	if baseScore == 0 {
		baseScore = 0.5
	}
	if baseScore <= 0 || baseScore >= 1 {
		return nil, fmt.Errorf("model: base_score %v outside (0, 1)", baseScore)
	}

	for t, nodes := range trees {
		if err := validateTree(nodes, features); err != nil {
			return nil, fmt.Errorf("model: tree %d: %w", t, err)
		}
	}

	return &GBTree{
		trees:      trees,
		baseMargin: utils.Logit(baseScore),
		features:   features,
	}, nil
}

// validateTree checks that traversal from the root always ends at a leaf
func validateTree(nodes []TreeNode, features int) error {
	if len(nodes) == 0 {
		return errors.New("empty tree")
	}
	for i, n := range nodes {
		if n.IsLeaf {
			continue
		}
		if n.FeatureIdx < 0 || n.FeatureIdx >= features {
			return fmt.Errorf("node %d: feature index %d out of range", i, n.FeatureIdx)
		}
		// children must point forward, which rules out cycles
		if n.LeftChild <= i || n.LeftChild >= len(nodes) {
			return fmt.Errorf("node %d: invalid left child %d", i, n.LeftChild)
		}
		if n.RightChild <= i || n.RightChild >= len(nodes) {
			return fmt.Errorf("node %d: invalid right child %d", i, n.RightChild)
		}
	}
	return nil
}

func (m *GBTree) Kind() string     { return KindGBTree }
func (m *GBTree) NumFeatures() int { return m.features }

// Margin returns the raw log-odds score for x
func (m *GBTree) Margin(x []float64) (float64, error) {
	if err := checkLength(x, m.features); err != nil {
		return 0, err
	}
	margin := m.baseMargin
	for _, nodes := range m.trees {
		margin += leafValue(nodes, x)
	}
	return margin, nil
}

func leafValue(nodes []TreeNode, x []float64) float64 {
	idx := 0
	for {
		node := nodes[idx]
		if node.IsLeaf {
			return node.LeafValue
		}
		if x[node.FeatureIdx] < node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
	}
}

func (m *GBTree) PredictProba(x []float64) ([]float64, error) {
	margin, err := m.Margin(x)
	if err != nil {
		return nil, err
	}
	p1 := utils.Sigmoid(margin)
	return []float64{1 - p1, p1}, nil
}

func (m *GBTree) Predict(x []float64) (int, error) {
	proba, err := m.PredictProba(x)
	if err != nil {
		return 0, err
	}
	return LabelFor(proba[1]), nil
}
