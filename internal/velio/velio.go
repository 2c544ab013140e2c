// Package velio reads and writes the on-disk formats used by the
// toolbox: flat float32 binary velocity grids in Fortran
// (axis-1-fastest) order, two-column horizon text files, and
// plain-text smoothing error reports.
package velio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/Dai411/ISTRICI-tools/internal/grid"
	"github.com/Dai411/ISTRICI-tools/internal/smooth"
)

// ReadGrid loads an (n1, n2) grid from a flat little-endian float32
// binary file. The file must hold exactly n1*n2 values; the on-disk
// axis-1-fastest layout matches the in-memory layout, so no reordering
// happens.
func ReadGrid(path string, n1, n2 int) (*grid.Grid, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grid %s: %w", path, err)
	}
	if n1 <= 0 || n2 <= 0 || len(raw) != 4*n1*n2 {
		return nil, fmt.Errorf("grid %s: %w", path,
			&grid.ShapeError{N1: n1, N2: n2, Len: len(raw) / 4})
	}
	data := make([]float64, n1*n2)
	for i := range data {
		bits := binary.LittleEndian.Uint32(raw[4*i:])
		data[i] = float64(math.Float32frombits(bits))
	}
	return grid.NewFrom(n1, n2, data)
}

// WriteGrid stores g as a flat little-endian float32 binary file, the
// exact inverse of ReadGrid.
func WriteGrid(path string, g *grid.Grid) error {
	raw := make([]byte, 4*len(g.Data))
	for i, v := range g.Data {
		binary.LittleEndian.PutUint32(raw[4*i:], math.Float32bits(float32(v)))
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write grid %s: %w", path, err)
	}
	return nil
}

// ReadPicks loads a picked-horizon file: whitespace-separated rows of
// (z, x). Blank lines and lines starting with '#' are skipped. Returns
// parallel x and z slices in file order.
func ReadPicks(path string) (xs, zs []float64, err error) {
	return readColumns(path, true)
}

// ReadHorizon loads an interpolated-horizon file: rows of (x, z).
func ReadHorizon(path string) (xs, zs []float64, err error) {
	return readColumns(path, false)
}

func readColumns(path string, zFirst bool) (xs, zs []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read horizon %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("horizon %s line %d: need two columns, have %d", path, line, len(fields))
		}
		a, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("horizon %s line %d: %w", path, line, err)
		}
		b, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("horizon %s line %d: %w", path, line, err)
		}
		if zFirst {
			zs = append(zs, a)
			xs = append(xs, b)
		} else {
			xs = append(xs, a)
			zs = append(zs, b)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("read horizon %s: %w", path, err)
	}
	if len(xs) == 0 {
		return nil, nil, fmt.Errorf("horizon %s: no data rows", path)
	}
	return xs, zs, nil
}

// WriteHorizon stores an interpolated horizon as (x, z) rows.
func WriteHorizon(path string, xs, zs []float64) error {
	if len(xs) != len(zs) {
		return fmt.Errorf("write horizon %s: %d x values but %d z values", path, len(xs), len(zs))
	}
	var b strings.Builder
	for i := range xs {
		fmt.Fprintf(&b, "%.6f %.6f\n", xs[i], zs[i])
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write horizon %s: %w", path, err)
	}
	return nil
}

// ErrorReport summarises the deviation between an original and a
// smoothed grid.
type ErrorReport struct {
	Relative float64
	MeanAbs  float64
	MaxAbs   float64
}

// CompareGrids computes the error report for two same-shape grids.
// The relative error uses the L2 norm over the full grid; an all-zero
// original propagates smooth.DivideByZeroError.
func CompareGrids(original, smoothed *grid.Grid) (ErrorReport, error) {
	rel, err := smooth.RelativeError(original, smoothed)
	if err != nil {
		return ErrorReport{}, err
	}
	var sum, maxAbs float64
	for i := range original.Data {
		d := math.Abs(original.Data[i] - smoothed.Data[i])
		sum += d
		if d > maxAbs {
			maxAbs = d
		}
	}
	return ErrorReport{
		Relative: rel,
		MeanAbs:  sum / float64(len(original.Data)),
		MaxAbs:   maxAbs,
	}, nil
}

// WriteErrorReport stores the report in the simple key: value text
// format the smoothing tools emit next to their outputs.
func WriteErrorReport(path string, r ErrorReport) error {
	body := fmt.Sprintf("relative_error: %.6e\nmean_abs_error: %.6e\nmax_abs_error: %.6e\n",
		r.Relative, r.MeanAbs, r.MaxAbs)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write error report %s: %w", path, err)
	}
	return nil
}
