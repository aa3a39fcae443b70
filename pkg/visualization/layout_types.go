package visualization

import (
	"gonum.org/v1/gonum/graph"
)

// Position represents a 2D coordinate
type Position struct {
	X float64
	Y float64
}

// LayoutConfig configures layout parameters
type LayoutConfig struct {
	Width      float64 // Canvas width
	Height     float64 // Canvas height
	Iterations int     // Number of iterations for iterative algorithms
	Padding    float64 // Padding from edges
}

// Layout computes node positions for a graph drawing.
type Layout interface {
	ComputeLayout(g graph.Undirected) (map[int64]Position, error)
}
