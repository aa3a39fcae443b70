package visualization

import (
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/graph"
)

// ForceDirectedLayout implements force-directed graph layout. Initial
// positions come from the supplied random source, so a fixed seed gives a
// reproducible drawing.
type ForceDirectedLayout struct {
	config *LayoutConfig
	rnd    *rand.Rand
}

// NewForceDirectedLayout creates a new force-directed layout seeded from src.
func NewForceDirectedLayout(config *LayoutConfig, src rand.Source) *ForceDirectedLayout {
	if config.Iterations == 0 {
		config.Iterations = 50
	}
	if config.Padding == 0 {
		config.Padding = 50
	}
	if src == nil {
		src = rand.NewPCG(1, 1)
	}
	return &ForceDirectedLayout{config: config, rnd: rand.New(src)}
}

// ComputeLayout computes positions using a force-directed algorithm
func (fdl *ForceDirectedLayout) ComputeLayout(g graph.Undirected) (map[int64]Position, error) {
	nodes := graph.NodesOf(g.Nodes())
	if len(nodes) == 0 {
		return make(map[int64]Position), nil
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	// Single node - center it
	if len(nodes) == 1 {
		return map[int64]Position{
			nodes[0].ID(): {
				X: fdl.config.Width / 2,
				Y: fdl.config.Height / 2,
			},
		}, nil
	}

	// Initialize random positions
	positions := make(map[int64]Position, len(nodes))
	for _, node := range nodes {
		positions[node.ID()] = Position{
			X: fdl.rnd.Float64()*(fdl.config.Width-2*fdl.config.Padding) + fdl.config.Padding,
			Y: fdl.rnd.Float64()*(fdl.config.Height-2*fdl.config.Padding) + fdl.config.Padding,
		}
	}

	// Neighbor map for fast attraction lookup
	edgeMap := make(map[int64]map[int64]bool, len(nodes))
	for _, node := range nodes {
		neighbors := make(map[int64]bool)
		it := g.From(node.ID())
		for it.Next() {
			neighbors[it.Node().ID()] = true
		}
		edgeMap[node.ID()] = neighbors
	}

	// Force-directed iterations
	k := math.Sqrt((fdl.config.Width * fdl.config.Height) / float64(len(nodes))) // Optimal distance
	temperature := fdl.config.Width / 10.0

	for iter := 0; iter < fdl.config.Iterations; iter++ {
		forces := make(map[int64]Position, len(nodes))
		for _, node := range nodes {
			forces[node.ID()] = Position{}
		}

		// Repulsion between all pairs
		for i, n1 := range nodes {
			for j := i + 1; j < len(nodes); j++ {
				n2 := nodes[j]
				dx := positions[n1.ID()].X - positions[n2.ID()].X
				dy := positions[n1.ID()].Y - positions[n2.ID()].Y
				dist := math.Sqrt(dx*dx + dy*dy)

				if dist < 0.01 {
					dist = 0.01
				}

				force := (k * k) / dist
				fx := (dx / dist) * force
				fy := (dy / dist) * force

				forces[n1.ID()] = Position{X: forces[n1.ID()].X + fx, Y: forces[n1.ID()].Y + fy}
				forces[n2.ID()] = Position{X: forces[n2.ID()].X - fx, Y: forces[n2.ID()].Y - fy}
			}
		}

		// Attraction between connected nodes
		for _, n1 := range nodes {
			for id2 := range edgeMap[n1.ID()] {
				dx := positions[n1.ID()].X - positions[id2].X
				dy := positions[n1.ID()].Y - positions[id2].Y
				dist := math.Sqrt(dx*dx + dy*dy)

				if dist < 0.01 {
					continue
				}

				force := (dist * dist) / k
				fx := (dx / dist) * force
				fy := (dy / dist) * force

				forces[n1.ID()] = Position{X: forces[n1.ID()].X - fx, Y: forces[n1.ID()].Y - fy}
			}
		}

		// Apply forces with cooling
		cool := 1.0 - float64(iter)/float64(fdl.config.Iterations)
		for _, node := range nodes {
			fx := forces[node.ID()].X
			fy := forces[node.ID()].Y
			force := math.Sqrt(fx*fx + fy*fy)

			if force > 0 {
				dx := (fx / force) * math.Min(force, temperature) * cool
				dy := (fy / force) * math.Min(force, temperature) * cool

				positions[node.ID()] = Position{
					X: positions[node.ID()].X + dx,
					Y: positions[node.ID()].Y + dy,
				}
			}
		}

		temperature *= 0.95
	}

	// Normalize positions to bounds
	return normalizePositions(positions, fdl.config.Width, fdl.config.Height, fdl.config.Padding), nil
}
