package visualization

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
)

// CircularLayout arranges nodes in a circle in node-ID order, which puts a
// ring lattice's neighbors next to each other on the circle.
type CircularLayout struct {
	config *LayoutConfig
}

// NewCircularLayout creates a new circular layout
func NewCircularLayout(config *LayoutConfig) *CircularLayout {
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &CircularLayout{config: config}
}

// ComputeLayout arranges nodes in a circle
func (cl *CircularLayout) ComputeLayout(g graph.Undirected) (map[int64]Position, error) {
	nodes := graph.NodesOf(g.Nodes())
	positions := make(map[int64]Position, len(nodes))

	if len(nodes) == 0 {
		return positions, nil
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	centerX := cl.config.Width / 2
	centerY := cl.config.Height / 2
	radius := math.Min(centerX, centerY) - cl.config.Padding

	angleStep := 2 * math.Pi / float64(len(nodes))

	for i, node := range nodes {
		angle := float64(i) * angleStep
		positions[node.ID()] = Position{
			X: centerX + radius*math.Cos(angle),
			Y: centerY + radius*math.Sin(angle),
		}
	}

	return positions, nil
}
