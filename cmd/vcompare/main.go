// Package main provides the vcompare tool: it compares two velocity
// grids of the same dimensions and reports their relative L2 error and
// mean/max absolute differences, optionally rendering a three-panel
// comparison figure.
//
// Usage:
//
//	vcompare -a original.bin -b smoothed.bin -n1 500 -n2 300 \
//	         [-efile error.txt] [-save-plot comparison.png] [-html comparison.html]
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Dai411/ISTRICI-tools/internal/report"
	"github.com/Dai411/ISTRICI-tools/internal/seisplot"
	"github.com/Dai411/ISTRICI-tools/internal/velio"
	"github.com/Dai411/ISTRICI-tools/internal/version"
)

func main() {
	var (
		pathA    = flag.String("a", "", "first binary grid (reference)")
		pathB    = flag.String("b", "", "second binary grid")
		n1       = flag.Int("n1", 0, "first dimension size (depth samples)")
		n2       = flag.Int("n2", 0, "second dimension size (traces)")
		efile    = flag.String("efile", "", "optional path for error report")
		savePlot = flag.String("save-plot", "", "optional path for comparison PNG")
		html     = flag.String("html", "", "optional path for interactive HTML comparison")
		showVers = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVers {
		fmt.Println("vcompare", version.String())
		return
	}

	if *pathA == "" || *pathB == "" || *n1 <= 0 || *n2 <= 0 {
		flag.Usage()
		log.Fatal("a, b, n1 and n2 are required")
	}

	a, err := velio.ReadGrid(*pathA, *n1, *n2)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *pathA, err)
	}
	b, err := velio.ReadGrid(*pathB, *n1, *n2)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *pathB, err)
	}

	rep, err := velio.CompareGrids(a, b)
	if err != nil {
		log.Fatalf("Comparison failed: %v", err)
	}
	log.Printf("Comparison of %s vs %s:", *pathA, *pathB)
	log.Printf("  relative L2 error: %.6e", rep.Relative)
	log.Printf("  mean abs difference: %.6e", rep.MeanAbs)
	log.Printf("  max abs difference: %.6e", rep.MaxAbs)

	if *efile != "" {
		if err := velio.WriteErrorReport(*efile, rep); err != nil {
			log.Fatalf("Failed to write error report: %v", err)
		}
		log.Printf("Error report saved to %s", *efile)
	}
	if *savePlot != "" {
		if err := seisplot.SaveComparison(a, b, *savePlot); err != nil {
			log.Fatalf("Failed to save comparison plot: %v", err)
		}
		log.Printf("Comparison plot saved to %s", *savePlot)
	}
	if *html != "" {
		if err := report.WriteComparisonHTML(a, b, *html); err != nil {
			log.Fatalf("Failed to write HTML comparison: %v", err)
		}
		log.Printf("HTML comparison saved to %s", *html)
	}
}
