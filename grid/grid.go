//Package grid bins per-particle tensor attributes onto a fixed regular grid
//of sample points, averaging them per cell and per snapshot. Every particle
//contributes to the bin of its nearest grid point, under the periodic-boundary
//wrap of its own snapshot.
package grid

import (
	"math"

	voxel "github.com/rmera/govoxel"
)

// Grid is a fixed set of Nx x Ny x Nz sample points, evenly spaced along
// each principal axis of a box and spanning [-L/2, +L/2], both endpoints
// included. It never changes once built, even if the boxes of the binned
// snapshots fluctuate.
type Grid struct {
	nx, ny, nz int
	xs, ys, zs []float64
	steps      [3]float64
}

// NewGrid builds a grid with the given resolution from the principal-axis
// lengths of the given box. The box should be the average box of the
// trajectory to be binned. Resolutions smaller than 1 are an error.
func NewGrid(box *voxel.Box, nx, ny, nz int) (*Grid, error) {
	if box == nil {
		return nil, Error{NilBox, []string{"NewGrid"}, true}
	}
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, Error{BadResolution, []string{"NewGrid"}, true}
	}
	G := new(Grid)
	G.nx, G.ny, G.nz = nx, ny, nz
	lens := box.Lengths()
	ns := [3]int{nx, ny, nz}
	axes := make([][]float64, 3)
	for a := 0; a < 3; a++ {
		axes[a] = make([]float64, ns[a])
		if ns[a] == 1 {
			//the degenerate case of an even span with a single point
			axes[a][0] = -lens[a] / 2
			G.steps[a] = lens[a]
			continue
		}
		G.steps[a] = lens[a] / float64(ns[a]-1)
		for i := 0; i < ns[a]; i++ {
			axes[a][i] = -lens[a]/2 + float64(i)*G.steps[a]
		}
	}
	G.xs, G.ys, G.zs = axes[0], axes[1], axes[2]
	return G, nil
}

// Dims returns the resolution of the grid along each axis.
func (G *Grid) Dims() (int, int, int) {
	return G.nx, G.ny, G.nz
}

// Cells returns the total number of grid points.
func (G *Grid) Cells() int {
	return G.nx * G.ny * G.nz
}

// Point returns the position of the grid point with the given 3D index.
// It panics if the index is out of range.
func (G *Grid) Point(ix, iy, iz int) [3]float64 {
	return [3]float64{G.xs[ix], G.ys[iy], G.zs[iz]}
}

// Index flattens a 3D grid index, with the z index varying fastest.
func (G *Grid) Index(ix, iy, iz int) int {
	return (ix*G.ny+iy)*G.nz + iz
}

// Unravel is the inverse of Index.
func (G *Grid) Unravel(i int) (int, int, int) {
	iz := i % G.nz
	iy := (i / G.nz) % G.ny
	ix := i / (G.nz * G.ny)
	return ix, iy, iz
}

// MaxSpacing returns the largest spacing between consecutive grid points
// along any axis. It is the default search radius for the particle
// assignment: a particle always has its nearest grid point within this
// distance.
func (G *Grid) MaxSpacing() float64 {
	return math.Max(G.steps[0], math.Max(G.steps[1], G.steps[2]))
}

// Xs returns the grid coordinates along the first axis. The slice is the
// internal one, so the caller must not modify it. Ys and Zs are analogous.
func (G *Grid) Xs() []float64 { return G.xs }

// Ys returns the grid coordinates along the second axis.
func (G *Grid) Ys() []float64 { return G.ys }

// Zs returns the grid coordinates along the third axis.
func (G *Grid) Zs() []float64 { return G.zs }

// Nearest returns the flat index of the grid point nearest to pos, with
// periodicity given by the box of the snapshot pos belongs to (not by the
// averaged box the grid was built from), plus the minimum-image distance to
// that point. The position is first wrapped to the cell centered at the
// origin; the per-axis rounding then matches the Euclidean nearest point
// for the orthorhombic boxes this library is meant for.
func (G *Grid) Nearest(pos [3]float64, box *voxel.Box) (int, float64) {
	w := box.MinImage(pos)
	ns := [3]int{G.nx, G.ny, G.nz}
	var idx [3]int
	for a := 0; a < 3; a++ {
		if ns[a] == 1 {
			continue
		}
		lo := -G.steps[a] * float64(ns[a]-1) / 2 //first grid point of the axis
		k := int(math.Round((w[a] - lo) / G.steps[a]))
		if k < 0 {
			k = 0
		}
		if k >= ns[a] {
			k = ns[a] - 1
		}
		idx[a] = k
	}
	p := G.Point(idx[0], idx[1], idx[2])
	return G.Index(idx[0], idx[1], idx[2]), box.Dist(w, p)
}
