package smallworld

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/graph/graphs/gen"
	"gonum.org/v1/gonum/graph/simple"
)

// Generation parameter errors. These fire before any graph is built so an
// invalid tuple can never produce a malformed graph.
var (
	ErrTooFewNodes    = errors.New("smallworld: node count must be at least 3")
	ErrOddDegree      = errors.New("smallworld: degree must be even")
	ErrDegreeTooSmall = errors.New("smallworld: degree must be positive")
	ErrDegreeTooLarge = errors.New("smallworld: degree must be less than node count")
	ErrBetaOutOfRange = errors.New("smallworld: rewiring probability must be in [0, 1]")
)

// Params describes one Watts–Strogatz graph: n nodes on a ring, each
// joined to its Degree/2 nearest neighbors per side, with every lattice
// edge rewired with probability Beta.
type Params struct {
	Nodes  int
	Degree int
	Beta   float64
}

// Validate checks the generation contract for a single parameter tuple.
func (p Params) Validate() error {
	if p.Nodes < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewNodes, p.Nodes)
	}
	if p.Degree <= 0 {
		return fmt.Errorf("%w: got %d", ErrDegreeTooSmall, p.Degree)
	}
	if p.Degree%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrOddDegree, p.Degree)
	}
	if p.Degree >= p.Nodes {
		return fmt.Errorf("%w: degree %d, nodes %d", ErrDegreeTooLarge, p.Degree, p.Nodes)
	}
	if p.Beta < 0 || p.Beta > 1 {
		return fmt.Errorf("%w: got %g", ErrBetaOutOfRange, p.Beta)
	}
	return nil
}

// Generate builds one undirected small-world graph with node IDs 0..n-1.
//
// The gonum Batagelj–Brandes generator covers rewiring probabilities
// strictly between 0 and 1, so both endpoints are built directly: beta
// zero is the deterministic ring lattice, and beta one rewires every
// lattice edge to a uniformly chosen new endpoint. In every case the
// random stream comes from src alone.
func Generate(p Params, src rand.Source) (*simple.UndirectedGraph, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	dst := simple.NewUndirectedGraph()
	switch {
	case p.Beta == 0:
		ringLattice(dst, p.Nodes, p.Degree)
	case p.Beta == 1:
		ringLattice(dst, p.Nodes, p.Degree)
		rewireAll(dst, p.Nodes, p.Degree, intN(src))
	default:
		if err := gen.SmallWorldsBB(dst, p.Nodes, p.Degree/2, p.Beta, src); err != nil {
			return nil, fmt.Errorf("smallworld: generate n=%d k=%d beta=%g: %w", p.Nodes, p.Degree, p.Beta, err)
		}
	}
	return dst, nil
}

// intN adapts src to an int picker, falling back to the global stream
// when src is nil, as the gonum generators do.
func intN(src rand.Source) func(int) int {
	if src == nil {
		return rand.IntN
	}
	return rand.New(src).IntN
}

// rewireAll replaces each lattice edge (u, v) with an edge from u to a
// uniformly chosen node that is neither u nor already a neighbor of u.
// The replacement is picked before (u, v) is removed, so an edge never
// rewires onto itself. A node already joined to every other node keeps
// its edge.
func rewireAll(dst *simple.UndirectedGraph, n, k int, intn func(int) int) {
	for i := 0; i < n; i++ {
		u := int64(i)
		for j := 1; j <= k/2; j++ {
			v := int64((i + j) % n)
			if dst.From(u).Len() >= n-1 {
				continue
			}
			w := int64(intn(n))
			for w == u || dst.HasEdgeBetween(u, w) {
				w = int64(intn(n))
			}
			dst.RemoveEdge(u, v)
			dst.SetEdge(dst.NewEdge(simple.Node(u), simple.Node(w)))
		}
	}
}

// ringLattice joins node i to its k/2 nearest neighbors on each side.
func ringLattice(dst *simple.UndirectedGraph, n, k int) {
	for i := 0; i < n; i++ {
		dst.AddNode(simple.Node(i))
	}
	for i := 0; i < n; i++ {
		for j := 1; j <= k/2; j++ {
			dst.SetEdge(dst.NewEdge(simple.Node(i), simple.Node((i+j)%n)))
		}
	}
}
