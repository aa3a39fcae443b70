package visualization

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrGraphTooLarge is returned when a graph exceeds the render node limit.
var ErrGraphTooLarge = errors.New("visualization: too many nodes to render graph as an image")

// labelLimit is the node count above which per-node labels are omitted;
// beyond this they are unreadable anyway.
const labelLimit = 100

var (
	edgeColor = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	nodeColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
)

// Renderer draws graphs and metric curves to image files.
type Renderer struct {
	layout   Layout
	maxNodes int
}

// NewRenderer creates a renderer that refuses graphs above maxNodes.
func NewRenderer(layout Layout, maxNodes int) *Renderer {
	return &Renderer{layout: layout, maxNodes: maxNodes}
}

// undirectedEdgeLister is an undirected graph that can enumerate all of
// its edges, as *simple.UndirectedGraph does.
type undirectedEdgeLister interface {
	graph.Undirected
	Edges() graph.Edges
}

// RenderGraph draws g with the renderer's layout and writes a PNG to path.
// The title is printed above the drawing, one line per metric.
func (r *Renderer) RenderGraph(g undirectedEdgeLister, title, path string) error {
	n := g.Nodes().Len()
	if n > r.maxNodes {
		return fmt.Errorf("%w: %d nodes exceeds limit %d", ErrGraphTooLarge, n, r.maxNodes)
	}

	positions, err := r.layout.ComputeLayout(g)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = title
	p.HideAxes()

	edges := g.Edges()
	for edges.Next() {
		e := edges.Edge()
		from := positions[e.From().ID()]
		to := positions[e.To().ID()]
		line, err := plotter.NewLine(plotter.XYs{
			{X: from.X, Y: from.Y},
			{X: to.X, Y: to.Y},
		})
		if err != nil {
			return fmt.Errorf("draw edge %d-%d: %w", e.From().ID(), e.To().ID(), err)
		}
		line.Color = edgeColor
		p.Add(line)
	}

	points := make(plotter.XYs, 0, n)
	labels := make([]string, 0, n)
	nodes := g.Nodes()
	for nodes.Next() {
		id := nodes.Node().ID()
		pos := positions[id]
		points = append(points, plotter.XY{X: pos.X, Y: pos.Y})
		labels = append(labels, strconv.FormatInt(id, 10))
	}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return fmt.Errorf("draw nodes: %w", err)
	}
	scatter.GlyphStyle.Color = nodeColor
	scatter.GlyphStyle.Radius = vg.Points(4)
	p.Add(scatter)

	if n <= labelLimit {
		nodeLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: labels})
		if err != nil {
			return fmt.Errorf("draw labels: %w", err)
		}
		p.Add(nodeLabels)
	}

	if err := p.Save(7*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("save graph image %s: %w", path, err)
	}
	return nil
}

// MetricCurves is the plotting view of a merged metric series.
// Slices are index-aligned with Betas.
type MetricCurves struct {
	Betas                 []float64
	AvgPathLength         []float64
	Clustering            []float64
	TheoreticalClustering []float64
}

// RenderCurves plots path length and clustering against beta, each curve
// normalized by its value at the first sweep point so the two share one
// axis, and writes a PNG to path.
func (r *Renderer) RenderCurves(c MetricCurves, path string) error {
	p := plot.New()
	p.Title.Text = "Small-world metrics vs rewiring probability"
	p.X.Label.Text = "beta"
	p.Y.Label.Text = "normalized metric"
	p.Y.Min = 0

	err := plotutil.AddLinePoints(p,
		"L(beta)/L(beta0)", normalizedXYs(c.Betas, c.AvgPathLength),
		"C(beta)/C(beta0)", normalizedXYs(c.Betas, c.Clustering),
		"C theory", normalizedXYs(c.Betas, c.TheoreticalClustering),
	)
	if err != nil {
		return fmt.Errorf("plot metric curves: %w", err)
	}

	if err := p.Save(7*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save metric curves %s: %w", path, err)
	}
	return nil
}

// normalizedXYs divides a curve by its first finite value. NaN points
// (e.g. path length of an unmeasurable graph) are dropped.
func normalizedXYs(betas, values []float64) plotter.XYs {
	var base float64 = 1
	for _, v := range values {
		if !math.IsNaN(v) && v != 0 {
			base = v
			break
		}
	}

	xys := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		xys = append(xys, plotter.XY{X: betas[i], Y: v / base})
	}
	return xys
}
