// Package seisplot renders grids and horizons to PNG files with
// gonum/plot, following the seismic display convention of depth
// increasing downwards.
package seisplot

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/Dai411/ISTRICI-tools/internal/grid"
)

// panel dimensions for saved figures.
const (
	panelWidth  = 5 * vg.Inch
	panelHeight = 4 * vg.Inch
)

// heatGrid adapts a grid.Grid to plotter.GridXYZ: columns are traces
// (axis 2), rows are depth samples (axis 1).
type heatGrid struct {
	g *grid.Grid
}

func (h heatGrid) Dims() (c, r int)   { return h.g.N2, h.g.N1 }
func (h heatGrid) Z(c, r int) float64 { return h.g.At(r, c) }
func (h heatGrid) X(c int) float64    { return float64(c) }
func (h heatGrid) Y(r int) float64    { return float64(r) }

// newPanel returns a plot with seismic axis conventions: trace index
// along x, depth index along an inverted y axis.
func newPanel(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Trace Index (n2)"
	p.Y.Label.Text = "Depth Index (n1)"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	return p
}

// velocityPalette is the sequential colormap used for data panels.
func velocityPalette() palette.Palette {
	cm := moreland.Kindlmann()
	cm.SetMin(0)
	cm.SetMax(1)
	return cm.Palette(255)
}

// differencePalette is the diverging colormap used for error panels.
func differencePalette() palette.Palette {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(1)
	return cm.Palette(255)
}

// SaveHeatmap renders g as a single heatmap panel PNG.
func SaveHeatmap(g *grid.Grid, title, path string) error {
	pal := velocityPalette()
	p := newPanel(title)
	p.Add(plotter.NewHeatMap(heatGrid{g: g}, pal))
	if err := p.Save(panelWidth, panelHeight, path); err != nil {
		return fmt.Errorf("save heatmap %s: %w", path, err)
	}
	return nil
}

// SaveComparison renders the three-panel original / smoothed /
// difference figure to a single PNG. The difference panel uses a
// diverging palette with a range symmetric around zero.
func SaveComparison(original, smoothed *grid.Grid, path string) error {
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

	velPal := velocityPalette()
	diffPal := differencePalette()

	pOrig := newPanel("Original")
	pOrig.Add(plotter.NewHeatMap(heatGrid{g: original}, velPal))

	pSmooth := newPanel("Smoothed")
	hSmooth := plotter.NewHeatMap(heatGrid{g: smoothed}, velPal)
	// Share the colour range with the original panel so the two are
	// visually comparable.
	hOrig := plotter.NewHeatMap(heatGrid{g: original}, velPal)
	hSmooth.Min, hSmooth.Max = hOrig.Min, hOrig.Max
	pSmooth.Add(hSmooth)

	pDiff := newPanel("Difference (Original - Smoothed)")
	hDiff := plotter.NewHeatMap(heatGrid{g: diff}, diffPal)
	hDiff.Min, hDiff.Max = -maxAbs, maxAbs
	pDiff.Add(hDiff)

	plots := [][]*plot.Plot{{pOrig, pSmooth, pDiff}}

	img := vgimg.New(3*panelWidth, panelHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:     1,
		Cols:     3,
		PadX:     vg.Millimeter * 4,
		PadLeft:  vg.Millimeter * 2,
		PadRight: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i, p := range plots[0] {
		p.Draw(canvases[0][i])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save comparison %s: %w", path, err)
	}
	defer f.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("save comparison %s: %w", path, err)
	}
	return nil
}

var horizonColors = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
}

// SaveHorizons renders each horizon as a depth-vs-distance line for
// visual inspection before a model is built. Each horizon holds one
// depth per trace; dx scales trace index to distance.
func SaveHorizons(horizons [][]float64, dx float64, path string) error {
	p := plot.New()
	p.Title.Text = "Horizons"
	p.X.Label.Text = "Distance (m)"
	p.Y.Label.Text = "Depth (m)"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	for i, zs := range horizons {
		pts := make(plotter.XYs, len(zs))
		for j, z := range zs {
			pts[j] = plotter.XY{X: float64(j) * dx, Y: z}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("horizon %d: %w", i+1, err)
		}
		line.Width = vg.Points(1)
		line.Color = horizonColors[i%len(horizonColors)]
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("Horizon %d", i+1), line)
	}

	if err := p.Save(panelWidth*2, panelHeight, path); err != nil {
		return fmt.Errorf("save horizons %s: %w", path, err)
	}
	return nil
}
