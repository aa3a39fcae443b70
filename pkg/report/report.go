package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/TrungPhamSet99/small-world-network/pkg/config"
	"github.com/TrungPhamSet99/small-world-network/pkg/sweep"
)

// Reporter prints the final results table to the terminal.
type Reporter struct {
	w      io.Writer
	styled bool
}

// New creates a reporter. With styled set, the table is rendered with
// borders and color; otherwise it is plain fixed-width text.
func New(w io.Writer, styled bool) *Reporter {
	return &Reporter{w: w, styled: styled}
}

// Print writes the experiment header and one row per sweep point.
func (r *Reporter) Print(cfg *config.ExperimentConfig, series sweep.Series) {
	fmt.Fprintf(r.w, "Number of nodes: %d\n", cfg.Nodes)
	fmt.Fprintf(r.w, "K: %d\n", cfg.Degree)

	if r.styled {
		r.printStyled(series)
		return
	}
	r.printPlain(series)
}

func (r *Reporter) printPlain(series sweep.Series) {
	fmt.Fprintf(r.w, "%-5s |%20s |%30s |%30s\n",
		"beta", "avg shortest path", "clustering coefficient", "network category")
	for _, point := range series {
		fmt.Fprintf(r.w, "%-5s |%20s |%30s |%30s\n",
			formatBeta(point.Beta),
			formatMetric(point.AvgPathLength),
			formatMetric(point.Clustering),
			string(point.Category))
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func (r *Reporter) printStyled(series sweep.Series) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers("beta", "avg shortest path", "clustering coefficient", "network category")

	for _, point := range series {
		t.Row(
			formatBeta(point.Beta),
			formatMetric(point.AvgPathLength),
			formatMetric(point.Clustering),
			string(point.Category),
		)
	}
	fmt.Fprintln(r.w, t.Render())
}

func formatBeta(beta float64) string {
	return strconv.FormatFloat(beta, 'g', -1, 64)
}

// formatMetric rounds to two decimals; NaN (unmeasurable path length)
// prints as n/a.
func formatMetric(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
