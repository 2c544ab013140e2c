// Package main provides the smooth2 tool: regularized 2D smoothing of
// velocity grids in the manner of Seismic Unix smooth2. Parameters
// come from flags, or interactively when no flags are given.
//
// Usage:
//
//	smooth2 -in model.bin -out smoothed.bin -n1 500 -n2 300 \
//	        -r1 1.0 -r2 0.5 -win 100,400,50,200 \
//	        -efile error.txt -save-plot comparison.png -html comparison.html
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Dai411/ISTRICI-tools/internal/config"
	"github.com/Dai411/ISTRICI-tools/internal/grid"
	"github.com/Dai411/ISTRICI-tools/internal/prompt"
	"github.com/Dai411/ISTRICI-tools/internal/report"
	"github.com/Dai411/ISTRICI-tools/internal/seisplot"
	"github.com/Dai411/ISTRICI-tools/internal/smooth"
	"github.com/Dai411/ISTRICI-tools/internal/velio"
	"github.com/Dai411/ISTRICI-tools/internal/version"
)

// Config holds the resolved tool parameters.
type Config struct {
	Input    string
	Output   string
	N1       int
	N2       int
	R1       float64
	R2       float64
	Win      string
	EFile    string
	SavePlot string
	HTML     string
}

func parseFlags() Config {
	var cfg Config
	var configPath string
	flag.StringVar(&cfg.Input, "in", "", "input binary grid (float32, Fortran order)")
	flag.StringVar(&cfg.Output, "out", "", "output binary grid")
	flag.IntVar(&cfg.N1, "n1", 0, "first dimension size (depth samples)")
	flag.IntVar(&cfg.N2, "n2", 0, "second dimension size (traces)")
	flag.Float64Var(&cfg.R1, "r1", 0, "smoothing strength along depth")
	flag.Float64Var(&cfg.R2, "r2", 0, "smoothing strength along traces")
	flag.StringVar(&cfg.Win, "win", "", "processing window as i1s,i1e,i2s,i2e (default: full grid)")
	flag.StringVar(&cfg.EFile, "efile", "", "optional path for relative error report")
	flag.StringVar(&cfg.SavePlot, "save-plot", "", "optional path for three-panel comparison PNG")
	flag.StringVar(&cfg.HTML, "html", "", "optional path for interactive HTML comparison")
	flag.StringVar(&configPath, "config", "", "optional JSON defaults file")
	showVers := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVers {
		fmt.Println("smooth2", version.String())
		os.Exit(0)
	}

	if configPath != "" {
		defaults, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		seen := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { seen[f.Name] = true })
		if !seen["r1"] {
			cfg.R1 = defaults.GetR1()
		}
		if !seen["r2"] {
			cfg.R2 = defaults.GetR2()
		}
	}
	return cfg
}

// interactiveMode collects the parameters with line prompts, for use
// without flags.
func interactiveMode(cfg *Config) error {
	fmt.Println("Entering interactive mode:")
	p := prompt.New(os.Stdin, os.Stdout)

	var err error
	if cfg.Input, err = p.String("Input file path (float32 binary)", ""); err != nil {
		return err
	}
	if cfg.N1, err = p.Int("n1 (first dimension size: depth)", nil); err != nil {
		return err
	}
	if cfg.N2, err = p.Int("n2 (second dimension size: distance)", nil); err != nil {
		return err
	}
	if cfg.Output, err = p.String("Output filename", ""); err != nil {
		return err
	}

	whole, err := p.YesNo("Smooth entire section?", true)
	if err != nil {
		return err
	}
	if !whole {
		bounds := make([]int, 4)
		for i, label := range []string{"Window start i1", "Window end i1", "Window start i2", "Window end i2"} {
			if bounds[i], err = p.Int(label, nil); err != nil {
				return err
			}
		}
		cfg.Win = fmt.Sprintf("%d,%d,%d,%d", bounds[0], bounds[1], bounds[2], bounds[3])
	}

	zero := 0.0
	if cfg.R1, err = p.Float("r1 parameter (vertical smoothing)", &zero); err != nil {
		return err
	}
	if cfg.R2, err = p.Float("r2 parameter (horizontal smoothing)", &zero); err != nil {
		return err
	}

	saveError, err := p.YesNo("Save error file?", false)
	if err != nil {
		return err
	}
	if saveError {
		if cfg.EFile, err = p.String("Error filename", ""); err != nil {
			return err
		}
	}
	savePlot, err := p.YesNo("Save comparison plot?", false)
	if err != nil {
		return err
	}
	if savePlot {
		if cfg.SavePlot, err = p.String("Plot filename (png)", ""); err != nil {
			return err
		}
	}
	return nil
}

// parseWindow parses "i1s,i1e,i2s,i2e".
func parseWindow(s string) (*grid.Window, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("window %q: need four comma-separated integers", s)
	}
	bounds := make([]int, 4)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("window %q: %w", s, err)
		}
		bounds[i] = v
	}
	return &grid.Window{I1Start: bounds[0], I1End: bounds[1], I2Start: bounds[2], I2End: bounds[3]}, nil
}

func main() {
	cfg := parseFlags()

	if flag.NFlag() == 0 {
		if err := interactiveMode(&cfg); err != nil {
			log.Fatalf("Interactive mode failed: %v", err)
		}
	}
	if cfg.Input == "" || cfg.Output == "" || cfg.N1 <= 0 || cfg.N2 <= 0 {
		flag.Usage()
		log.Fatal("in, out, n1 and n2 are required")
	}

	var win *grid.Window
	if cfg.Win != "" {
		w, err := parseWindow(cfg.Win)
		if err != nil {
			log.Fatalf("Invalid window: %v", err)
		}
		win = w
	}

	g, err := velio.ReadGrid(cfg.Input, cfg.N1, cfg.N2)
	if err != nil {
		log.Fatalf("Failed to load grid: %v", err)
	}

	smoothed, err := smooth.Smooth(g, cfg.R1, cfg.R2, win)
	if err != nil {
		log.Fatalf("Smoothing failed: %v", err)
	}

	if err := velio.WriteGrid(cfg.Output, smoothed); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	log.Printf("Smoothed grid written to %s (r1=%g r2=%g)", cfg.Output, cfg.R1, cfg.R2)

	rep, err := velio.CompareGrids(g, smoothed)
	if err != nil {
		log.Printf("Error analysis skipped: %v", err)
		return
	}
	log.Printf("Smoothing error: relative=%.6e mean_abs=%.6e max_abs=%.6e",
		rep.Relative, rep.MeanAbs, rep.MaxAbs)

	if cfg.EFile != "" {
		if err := velio.WriteErrorReport(cfg.EFile, rep); err != nil {
			log.Fatalf("Failed to write error report: %v", err)
		}
		log.Printf("Error report saved to %s", cfg.EFile)
	}
	if cfg.SavePlot != "" {
		if err := seisplot.SaveComparison(g, smoothed, cfg.SavePlot); err != nil {
			log.Fatalf("Failed to save comparison plot: %v", err)
		}
		log.Printf("Comparison plot saved to %s", cfg.SavePlot)
	}
	if cfg.HTML != "" {
		if err := report.WriteComparisonHTML(g, smoothed, cfg.HTML); err != nil {
			log.Fatalf("Failed to write HTML comparison: %v", err)
		}
		log.Printf("HTML comparison saved to %s", cfg.HTML)
	}
}
