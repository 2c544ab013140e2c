// Package main provides the velgen tool: an interactive builder for
// layered 2D velocity models. It collects the grid geometry, reads
// horizon files (raw picks or previously interpolated horizons),
// resamples picks onto the trace grid, asks how to fill each layer, and
// writes the model as a raw float32 grid with optional previews.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Dai411/ISTRICI-tools/internal/formula"
	"github.com/Dai411/ISTRICI-tools/internal/grid"
	"github.com/Dai411/ISTRICI-tools/internal/interp"
	"github.com/Dai411/ISTRICI-tools/internal/prompt"
	"github.com/Dai411/ISTRICI-tools/internal/report"
	"github.com/Dai411/ISTRICI-tools/internal/seisplot"
	"github.com/Dai411/ISTRICI-tools/internal/velio"
	"github.com/Dai411/ISTRICI-tools/internal/velmodel"
	"github.com/Dai411/ISTRICI-tools/internal/version"
)

func main() {
	out := flag.String("out", "vel_model.bin", "output path for the binary model")
	showVers := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVers {
		fmt.Println("velgen", version.String())
		return
	}

	p := prompt.New(os.Stdin, os.Stdout)
	if err := run(p, *out); err != nil {
		log.Fatalf("velgen: %v", err)
	}
}

func run(p *prompt.Reader, out string) error {
	m, err := askGeometry(p)
	if err != nil {
		return err
	}

	var horizons [][]float64
	for {
		more := "Add a horizon file?"
		if len(horizons) == 0 {
			more = "Add the first horizon file?"
		}
		add, err := p.YesNo(more, len(horizons) == 0)
		if err != nil {
			return err
		}
		if !add {
			break
		}
		zs, err := askHorizon(p, m)
		if err != nil {
			return err
		}
		if err := m.AddHorizon(zs); err != nil {
			return err
		}
		horizons = append(horizons, zs)
	}

	if len(horizons) > 0 {
		preview, err := p.YesNo("Preview the horizons?", false)
		if err != nil {
			return err
		}
		if preview {
			path, err := p.String("Horizon plot path", "horizons.png")
			if err != nil {
				return err
			}
			if err := seisplot.SaveHorizons(horizons, m.Dx, path); err != nil {
				return err
			}
			fmt.Printf("Horizon plot saved to %s\n", path)
		}
	}

	layers := make([]velmodel.Layer, 0, m.NumLayers())
	for i := 0; i < m.NumLayers(); i++ {
		fmt.Printf("Layer %d of %d (below horizon %d):\n", i+1, m.NumLayers(), i+1)
		layer, err := askLayer(p)
		if err != nil {
			return err
		}
		layers = append(layers, layer)
	}

	g, err := m.Build(layers)
	if err != nil {
		return err
	}
	if err := velio.WriteGrid(out, g); err != nil {
		return err
	}
	fmt.Printf("Model written to %s (%dx%d float32)\n", out, g.N1, g.N2)

	return askPreviews(p, g)
}

func askGeometry(p *prompt.Reader) (*velmodel.Model, error) {
	nz, err := p.Int("Number of depth samples nz", nil)
	if err != nil {
		return nil, err
	}
	nx, err := p.Int("Number of traces nx", nil)
	if err != nil {
		return nil, err
	}
	dzDef, dxDef := 1.0, 1.0
	dz, err := p.Float("Depth sampling dz", &dzDef)
	if err != nil {
		return nil, err
	}
	dx, err := p.Float("Trace spacing dx", &dxDef)
	if err != nil {
		return nil, err
	}
	bgDef := 1500.0
	bg, err := p.Float("Background velocity", &bgDef)
	if err != nil {
		return nil, err
	}
	return velmodel.New(nz, nx, dz, dx, bg)
}

// askHorizon loads one horizon and returns a depth per trace. Raw pick
// files hold sparse (z, x) pairs and are resampled onto the trace grid;
// interpolated files already hold (x, z) rows for every trace.
func askHorizon(p *prompt.Reader, m *velmodel.Model) ([]float64, error) {
	path, err := p.String("Horizon file", "")
	if err != nil {
		return nil, err
	}
	raw, err := p.YesNo("Is this a raw picks file (z x pairs)?", true)
	if err != nil {
		return nil, err
	}

	var xs, zs []float64
	if raw {
		xs, zs, err = velio.ReadPicks(path)
	} else {
		xs, zs, err = velio.ReadHorizon(path)
	}
	if err != nil {
		return nil, err
	}

	if !raw && len(zs) == m.Nx {
		return zs, nil
	}

	method := interp.Linear
	if raw {
		name, err := p.String("Interpolation method (linear, cubic, akima, fritschbutland, nearest)", "linear")
		if err != nil {
			return nil, err
		}
		method, err = interp.ParseMethod(name)
		if err != nil {
			return nil, err
		}
	}

	fx := 0.0
	lx := float64(m.Nx-1) * m.Dx
	xi, zi, err := interp.Resample(xs, zs, fx, lx, m.Dx, method)
	if err != nil {
		return nil, err
	}
	if len(zi) != m.Nx {
		return nil, fmt.Errorf("horizon %s resampled to %d traces, want %d", path, len(zi), m.Nx)
	}

	if raw {
		save, err := p.YesNo("Save the interpolated horizon?", false)
		if err != nil {
			return nil, err
		}
		if save {
			out, err := p.String("Interpolated horizon path", path+".interp")
			if err != nil {
				return nil, err
			}
			if err := velio.WriteHorizon(out, xi, zi); err != nil {
				return nil, err
			}
			fmt.Printf("Interpolated horizon saved to %s\n", out)
		}
	}
	return zi, nil
}

func askLayer(p *prompt.Reader) (velmodel.Layer, error) {
	constant, err := p.YesNo("Constant velocity layer?", true)
	if err != nil {
		return velmodel.Layer{}, err
	}
	if constant {
		v, err := p.Float("Layer velocity", nil)
		if err != nil {
			return velmodel.Layer{}, err
		}
		return velmodel.Layer{Constant: true, V: v}, nil
	}

	vTop, err := p.Float("Velocity at layer top", nil)
	if err != nil {
		return velmodel.Layer{}, err
	}
	vBottom, err := p.Float("Velocity at layer bottom", nil)
	if err != nil {
		return velmodel.Layer{}, err
	}
	name, err := p.String("Profile shape (linear, log, exp, sqrt, square, sigmoid, bell, custom)", "linear")
	if err != nil {
		return velmodel.Layer{}, err
	}
	shape, err := interp.ParseShape(name)
	if err != nil {
		return velmodel.Layer{}, err
	}
	layer := velmodel.Layer{VTop: vTop, VBottom: vBottom, Shape: shape}
	if shape == interp.ShapeCustom {
		src, err := p.String("Formula in t (0 at top, 1 at bottom), e.g. 1500 + 800*t^2", "")
		if err != nil {
			return velmodel.Layer{}, err
		}
		expr, err := formula.Parse(src)
		if err != nil {
			return velmodel.Layer{}, err
		}
		layer.Formula = expr
	}
	return layer, nil
}

func askPreviews(p *prompt.Reader, g *grid.Grid) error {
	png, err := p.YesNo("Save a PNG preview?", false)
	if err != nil {
		return err
	}
	if png {
		path, err := p.String("PNG path", "vel_model.png")
		if err != nil {
			return err
		}
		if err := seisplot.SaveHeatmap(g, "Velocity model", path); err != nil {
			return err
		}
		fmt.Printf("Preview saved to %s\n", path)
	}

	html, err := p.YesNo("Save an interactive HTML preview?", false)
	if err != nil {
		return err
	}
	if html {
		path, err := p.String("HTML path", "vel_model.html")
		if err != nil {
			return err
		}
		if !strings.HasSuffix(path, ".html") {
			path += ".html"
		}
		if err := report.WriteGridHTML(g, "Velocity model", path); err != nil {
			return err
		}
		fmt.Printf("HTML preview saved to %s\n", path)
	}
	return nil
}
