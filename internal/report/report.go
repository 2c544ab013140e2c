// Package report renders interactive HTML views of velocity grids with
// go-echarts, for inspection in a browser when no display is attached.
package report

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Dai411/ISTRICI-tools/internal/grid"
)

// maxCells caps the number of heatmap cells per chart so large grids
// stay responsive in the browser; grids above the cap are decimated by
// stride along both axes.
const maxCells = 20000

var viridis = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

var blueRed = []string{"#3b4cc0", "#8db0fe", "#dddddd", "#f49a7b", "#b40426"}

// heatmap builds one heatmap chart of g. Depth categories are emitted
// in reverse so depth grows downwards, matching the seismic display
// convention.
func heatmap(g *grid.Grid, title, subtitle string, colors []string, min, max float64) *charts.HeatMap {
	stride := 1
	for (g.N1/stride)*(g.N2/stride) > maxCells {
		stride++
	}

	xLabels := make([]string, 0, g.N2/stride+1)
	for i2 := 0; i2 < g.N2; i2 += stride {
		xLabels = append(xLabels, strconv.Itoa(i2))
	}
	yLabels := make([]string, 0, g.N1/stride+1)
	for i1 := g.N1 - 1; i1 >= 0; i1 -= stride {
		yLabels = append(yLabels, strconv.Itoa(i1))
	}

	data := make([]opts.HeatMapData, 0, len(xLabels)*len(yLabels))
	for xi, i2 := 0, 0; i2 < g.N2; xi, i2 = xi+1, i2+stride {
		for yi, i1 := len(yLabels)-1, 0; i1 < g.N1; yi, i1 = yi-1, i1+stride {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{xi, yi, g.At(i1, i2)}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "520px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "Trace Index (n2)", Data: xLabels}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Name: "Depth Index (n1)", Data: yLabels}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(min),
			Max:        float32(max),
			InRange:    &opts.VisualMapInRange{Color: colors},
		}),
	)
	hm.SetXAxis(xLabels).AddSeries("samples", data)
	return hm
}

// WriteGridHTML renders g as a standalone interactive heatmap page.
func WriteGridHTML(g *grid.Grid, title, path string) error {
	min, max := valueRange(g)
	page := components.NewPage()
	page.AddCharts(heatmap(g, title, fmt.Sprintf("%dx%d samples", g.N1, g.N2), viridis, min, max))
	return renderPage(page, path)
}

// WriteComparisonHTML renders the original, smoothed and difference
// grids as one page of three heatmaps. The difference chart uses a
// diverging colormap over a range symmetric around zero.
func WriteComparisonHTML(original, smoothed *grid.Grid, path string) error {
	if !original.SameShape(smoothed) {
		return &grid.ShapeError{N1: original.N1, N2: original.N2, Len: len(smoothed.Data)}
	}

	diff := original.Clone()
	maxAbs := 0.0
	for i := range diff.Data {
		diff.Data[i] -= smoothed.Data[i]
		if a := math.Abs(diff.Data[i]); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	min, max := valueRange(original)
	size := fmt.Sprintf("%dx%d samples", original.N1, original.N2)

	page := components.NewPage()
	page.AddCharts(
		heatmap(original, "Original", size, viridis, min, max),
		heatmap(smoothed, "Smoothed", size, viridis, min, max),
		heatmap(diff, "Difference (Original - Smoothed)", size, blueRed, -maxAbs, maxAbs),
	)
	return renderPage(page, path)
}

func renderPage(page *components.Page, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("render report %s: %w", path, err)
	}
	return nil
}

func valueRange(g *grid.Grid) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range g.Data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
