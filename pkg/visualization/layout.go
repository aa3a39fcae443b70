package visualization

import (
	"fmt"
	"math/rand/v2"
)

// NewLayout builds a layout engine by name ("circular" or "force").
// src seeds layouts that place nodes randomly; circular ignores it.
func NewLayout(name string, config *LayoutConfig, src rand.Source) (Layout, error) {
	switch name {
	case "circular":
		return NewCircularLayout(config), nil
	case "force":
		return NewForceDirectedLayout(config, src), nil
	default:
		return nil, fmt.Errorf("visualization: unknown layout %q", name)
	}
}
