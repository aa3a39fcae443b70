package algorithms

import (
	"gonum.org/v1/gonum/graph"
)

// ClusteringResult holds the clustering coefficient of a graph along with
// the per-node coefficients it was averaged from.
type ClusteringResult struct {
	// Average is the mean local clustering coefficient over all nodes
	Average float64
	// PerNode maps node ID to its local clustering coefficient. Nodes with
	// fewer than two neighbors contribute zero.
	PerNode map[int64]float64
}

// ClusteringCoefficient computes the average local clustering coefficient
// of g: for each node, the fraction of its neighbor pairs that are
// themselves adjacent.
func ClusteringCoefficient(g graph.Undirected) ClusteringResult {
	nodes := graph.NodesOf(g.Nodes())

	// Undirected neighbor sets, self-loops excluded
	neighborSets := make(map[int64]map[int64]bool, len(nodes))
	for _, u := range nodes {
		neighbors := make(map[int64]bool)
		it := g.From(u.ID())
		for it.Next() {
			neighbors[it.Node().ID()] = true
		}
		delete(neighbors, u.ID())
		neighborSets[u.ID()] = neighbors
	}

	result := ClusteringResult{PerNode: make(map[int64]float64, len(nodes))}
	if len(nodes) == 0 {
		return result
	}

	var total float64
	for _, u := range nodes {
		uNeighbors := neighborSets[u.ID()]
		k := len(uNeighbors)
		if k < 2 {
			result.PerNode[u.ID()] = 0
			continue
		}

		ids := make([]int64, 0, k)
		for v := range uNeighbors {
			ids = append(ids, v)
		}

		closed := 0
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				if neighborSets[ids[i]][ids[j]] {
					closed++
				}
			}
		}

		coefficient := float64(closed) / float64(k*(k-1)/2)
		result.PerNode[u.ID()] = coefficient
		total += coefficient
	}

	result.Average = total / float64(len(nodes))
	return result
}

// LatticeClustering is the clustering coefficient of the unrewired ring
// lattice of degree k: 3(k-2) / 4(k-1).
func LatticeClustering(k int) float64 {
	if k < 2 {
		return 0
	}
	return 3 * float64(k-2) / (4 * float64(k-1))
}

// TheoreticalClustering is the Watts–Strogatz expectation for the
// clustering coefficient after rewiring with probability beta:
// the lattice value damped by (1-beta)^3.
func TheoreticalClustering(k int, beta float64) float64 {
	d := 1 - beta
	return LatticeClustering(k) * d * d * d
}
