// Package main provides the velcheck tool for inspecting raw binary
// velocity grids. It validates the file size against the declared
// dimensions, prints summary statistics, guesses the storage order of
// the samples, and can render quick-look previews.
//
// Usage:
//
//	velcheck -in vel.bin -n1 500 -n2 300 [-png preview.png] [-html preview.html]
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Dai411/ISTRICI-tools/internal/grid"
	"github.com/Dai411/ISTRICI-tools/internal/report"
	"github.com/Dai411/ISTRICI-tools/internal/seisplot"
	"github.com/Dai411/ISTRICI-tools/internal/units"
	"github.com/Dai411/ISTRICI-tools/internal/velio"
	"github.com/Dai411/ISTRICI-tools/internal/version"
)

func main() {
	var (
		in       = flag.String("in", "", "binary grid to inspect")
		n1       = flag.Int("n1", 0, "first dimension size (depth samples)")
		n2       = flag.Int("n2", 0, "second dimension size (traces)")
		unit     = flag.String("units", units.MPS, "units for printed statistics ("+units.GetValidUnitsString()+")")
		png      = flag.String("png", "", "optional path for a PNG preview")
		html     = flag.String("html", "", "optional path for an interactive HTML preview")
		showVers = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVers {
		fmt.Println("velcheck", version.String())
		return
	}

	if !units.IsValid(*unit) {
		log.Fatalf("Invalid units %q (valid: %s)", *unit, units.GetValidUnitsString())
	}
	if *in == "" || *n1 <= 0 || *n2 <= 0 {
		flag.Usage()
		log.Fatal("in, n1 and n2 are required")
	}

	info, err := os.Stat(*in)
	if err != nil {
		log.Fatalf("Failed to stat %s: %v", *in, err)
	}
	want := int64(*n1) * int64(*n2) * 4
	if info.Size() != want {
		log.Fatalf("File size mismatch: %s holds %d bytes, %dx%d float32 grid needs %d",
			*in, info.Size(), *n1, *n2, want)
	}

	g, err := velio.ReadGrid(*in, *n1, *n2)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *in, err)
	}

	printStats(g, *unit)

	order, colRough, rowRough := detectOrder(g)
	fmt.Printf("Storage order guess: %s (column roughness %.4g, row roughness %.4g)\n",
		order, colRough, rowRough)
	if order == "row-major" {
		fmt.Println("Hint: the depth axis does not appear to be the fastest axis.")
		fmt.Println("Swap n1 and n2, or transpose the file before smoothing.")
	}

	if *png != "" {
		if err := seisplot.SaveHeatmap(g, "Velocity preview", *png); err != nil {
			log.Fatalf("Failed to save preview: %v", err)
		}
		log.Printf("Preview saved to %s", *png)
	}
	if *html != "" {
		if err := report.WriteGridHTML(g, "Velocity preview", *html); err != nil {
			log.Fatalf("Failed to write HTML preview: %v", err)
		}
		log.Printf("HTML preview saved to %s", *html)
	}
}

// histogramBins is the number of equal-width bins in the printed
// velocity histogram.
const histogramBins = 10

func printStats(g *grid.Grid, unit string) {
	mean, std := stat.MeanStdDev(g.Data, nil)
	min, max := g.Data[0], g.Data[0]
	finite := true
	for _, v := range g.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			finite = false
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	fmt.Printf("Grid %dx%d (%d samples), values in %s\n", g.N1, g.N2, len(g.Data), unit)
	fmt.Printf("  min %.4f  max %.4f\n",
		units.ConvertVelocity(min, unit), units.ConvertVelocity(max, unit))
	fmt.Printf("  mean %.4f  stddev %.4f\n",
		units.ConvertVelocity(mean, unit), units.ConvertVelocity(std, unit))
	if finite && max > min {
		fmt.Println("  histogram:")
		sorted := make([]float64, len(g.Data))
		copy(sorted, g.Data)
		sort.Float64s(sorted)
		dividers := make([]float64, histogramBins+1)
		floats.Span(dividers, min, math.Nextafter(max, math.Inf(1)))
		counts := stat.Histogram(nil, dividers, sorted, nil)
		for i, c := range counts {
			fmt.Printf("    [%9.2f, %9.2f) %d\n",
				units.ConvertVelocity(dividers[i], unit),
				units.ConvertVelocity(dividers[i+1], unit), int(c))
		}
	}
	if !finite {
		fmt.Println("  WARNING: grid contains NaN or Inf samples")
	}
}

// detectOrder guesses whether the flat file samples were written with
// the depth axis fastest (column-major, the layout every tool here
// expects) or the trace axis fastest. Velocity varies smoothly with
// depth within a trace, so each candidate decoding is scored by the
// mean step between depth-adjacent samples: consecutive stream entries
// within runs of n1 under column order, entries a fixed n2 apart under
// row order. The decoding with the smaller step is the likely one.
func detectOrder(g *grid.Grid) (order string, colRough, rowRough float64) {
	colRough = runRoughness(g.Data, g.N1)
	rowRough = strideRoughness(g.Data, g.N2)
	if rowRough < colRough {
		return "row-major", colRough, rowRough
	}
	return "column-major", colRough, rowRough
}

// runRoughness is the mean absolute difference between consecutive
// samples within each run of length elements.
func runRoughness(data []float64, length int) float64 {
	var sum float64
	var n int
	for start := 0; start < len(data); start += length {
		for i := start + 1; i < start+length; i++ {
			sum += math.Abs(data[i] - data[i-1])
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// strideRoughness is the mean absolute difference between samples a
// fixed stride apart in the flat stream.
func strideRoughness(data []float64, stride int) float64 {
	if stride >= len(data) {
		return 0
	}
	var sum float64
	var n int
	for i := 0; i+stride < len(data); i++ {
		sum += math.Abs(data[i+stride] - data[i])
		n++
	}
	return sum / float64(n)
}
