package smallworld

import (
	"math/rand/v2"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestGenerateProperties verifies the generation contract over random
// valid and invalid parameter tuples.
func TestGenerateProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Property 1: every valid tuple produces a graph with exactly n nodes
	properties.Property("valid tuples generate n nodes", prop.ForAll(
		func(n int, halfDegree int, beta float64, seed uint64) bool {
			k := 2 * halfDegree
			if k >= n {
				k = ((n - 1) / 2) * 2 // largest even degree below n
			}
			if k <= 0 {
				return true // no valid degree for this n; skip
			}

			g, err := Generate(Params{Nodes: n, Degree: k, Beta: beta}, rand.NewPCG(seed, 0))
			if err != nil {
				return false
			}
			return g.Nodes().Len() == n
		},
		gen.IntRange(3, 60),
		gen.IntRange(1, 10),
		gen.Float64Range(0, 1),
		gen.UInt64(),
	))

	// Property 2: odd degrees are always rejected
	properties.Property("odd degrees are rejected", prop.ForAll(
		func(n int, k int, beta float64) bool {
			if k%2 == 0 {
				k++
			}
			_, err := Generate(Params{Nodes: n, Degree: k, Beta: beta}, rand.NewPCG(1, 1))
			return err != nil
		},
		gen.IntRange(3, 60),
		gen.IntRange(1, 59),
		gen.Float64Range(0, 1),
	))

	// Property 3: probabilities outside [0,1] are always rejected
	properties.Property("out-of-range beta is rejected", prop.ForAll(
		func(beta float64) bool {
			if beta >= 0 && beta <= 1 {
				beta += 1.5
			}
			_, err := Generate(Params{Nodes: 20, Degree: 4, Beta: beta}, rand.NewPCG(1, 1))
			return err != nil
		},
		gen.Float64Range(-10, 10),
	))

	properties.TestingRun(t)
}
