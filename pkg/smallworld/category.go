package smallworld

// Category names the network family a rewiring probability produces.
type Category string

const (
	// Regular is the unrewired ring lattice (beta = 0)
	Regular Category = "Regular network (Ring lattice)"
	// Random is the fully rewired graph (beta = 1)
	Random Category = "Random network"
	// SmallWorld is everything in between
	SmallWorld Category = "Small-world network"
)

// Classify maps a rewiring probability to its network category.
func Classify(beta float64) Category {
	switch {
	case beta == 0:
		return Regular
	case beta == 1:
		return Random
	default:
		return SmallWorld
	}
}
