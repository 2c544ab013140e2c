package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dai411/ISTRICI-tools/internal/grid"
	"github.com/Dai411/ISTRICI-tools/internal/testutil"
)

func testGrid() *grid.Grid {
	return testutil.RampGrid(6, 8)
}

func TestWriteGridHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.html")
	testutil.AssertNoError(t, WriteGridHTML(testGrid(), "Velocity Model", path))
	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(body)
	for _, want := range []string{"echarts", "Velocity Model", "heatmap"} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWriteComparisonHTML(t *testing.T) {
	g := testGrid()
	s := g.Clone()
	s.Set(2, 2, s.At(2, 2)+250)

	path := filepath.Join(t.TempDir(), "comparison.html")
	testutil.AssertNoError(t, WriteComparisonHTML(g, s, path))
	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(body)
	for _, want := range []string{"Original", "Smoothed", "Difference"} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q panel", want)
		}
	}
}

func TestWriteComparisonHTMLShapeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.html")
	testutil.AssertError(t, WriteComparisonHTML(grid.New(2, 2), grid.New(3, 3), path))
}
