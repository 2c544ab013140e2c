// Package velmodel builds layered 2D velocity models from horizons.
//
// A model is a (nz, nx) grid seeded with a background velocity. Layers
// are the regions between consecutive horizons (plus an implicit
// bottom horizon at the model base); each layer is filled column by
// column with either a constant velocity or a profile sampled between
// top and bottom velocities.
package velmodel

import (
	"fmt"
	"math"

	"github.com/Dai411/ISTRICI-tools/internal/formula"
	"github.com/Dai411/ISTRICI-tools/internal/grid"
	"github.com/Dai411/ISTRICI-tools/internal/interp"
)

// Model accumulates horizons before the grid is filled.
type Model struct {
	Nz, Nx     int
	Dz, Dx     float64
	Background float64

	horizons [][]float64
}

// New returns an empty model of nz depth samples by nx traces with the
// given sample spacings and background velocity.
func New(nz, nx int, dz, dx, background float64) (*Model, error) {
	if nz <= 0 || nx <= 0 {
		return nil, fmt.Errorf("velmodel: invalid grid (%d, %d)", nz, nx)
	}
	if dz <= 0 || dx <= 0 {
		return nil, fmt.Errorf("velmodel: invalid spacing dz=%g dx=%g", dz, dx)
	}
	return &Model{Nz: nz, Nx: nx, Dz: dz, Dx: dx, Background: background}, nil
}

// AddHorizon appends a horizon given as one depth per trace. Horizons
// must be added top to bottom.
func (m *Model) AddHorizon(zs []float64) error {
	if len(zs) != m.Nx {
		return fmt.Errorf("velmodel: horizon has %d samples, want %d", len(zs), m.Nx)
	}
	h := make([]float64, len(zs))
	copy(h, zs)
	m.horizons = append(m.horizons, h)
	return nil
}

// NumLayers returns the number of layers the current horizons define,
// counting the implicit bottom horizon.
func (m *Model) NumLayers() int { return len(m.horizons) }

// Layer describes how to fill the region between two horizons.
type Layer struct {
	// Constant selects a uniform fill with V; otherwise the layer is
	// filled with a Shape profile from VTop to VBottom.
	Constant bool
	V        float64

	VTop, VBottom float64
	Shape         interp.Shape
	Formula       *formula.Expr // required when Shape == interp.ShapeCustom
}

// Build fills the model grid. layers must hold one entry per horizon
// (the layer below it); samples above the first horizon keep the
// background velocity.
func (m *Model) Build(layers []Layer) (*grid.Grid, error) {
	if len(layers) != len(m.horizons) {
		return nil, fmt.Errorf("velmodel: %d layers for %d horizons", len(layers), len(m.horizons))
	}

	g := grid.New(m.Nz, m.Nx)
	g.Fill(m.Background)

	// Implicit bottom horizon at the model base.
	bottom := make([]float64, m.Nx)
	for j := range bottom {
		bottom[j] = float64(m.Nz) * m.Dz
	}
	horizons := append(append([][]float64{}, m.horizons...), bottom)

	for i, layer := range layers {
		top, bot := horizons[i], horizons[i+1]
		for j := 0; j < m.Nx; j++ {
			zTop := m.depthIndex(top[j])
			zBot := m.depthIndex(bot[j])
			if zTop >= zBot {
				continue
			}
			if layer.Constant {
				for k := zTop; k < zBot; k++ {
					g.Set(k, j, layer.V)
				}
				continue
			}
			npts := zBot - zTop
			if npts <= 1 {
				continue
			}
			profile, err := interp.Profile(layer.Shape, npts, layer.VTop, layer.VBottom, layer.Formula)
			if err != nil {
				return nil, fmt.Errorf("velmodel: layer %d: %w", i+1, err)
			}
			for k, v := range profile {
				g.Set(zTop+k, j, v)
			}
		}
	}
	return g, nil
}

// depthIndex maps a depth in model units to a sample index clamped to
// [0, nz].
func (m *Model) depthIndex(z float64) int {
	idx := int(math.Floor(z / m.Dz))
	if idx < 0 {
		return 0
	}
	if idx > m.Nz {
		return m.Nz
	}
	return idx
}
