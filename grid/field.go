package grid

import (
	"encoding/json"

	voxel "github.com/rmera/govoxel"
	"gonum.org/v1/gonum/mat"
)

// TensorField is a dense field of symmetric 3x3 tensors on a regular grid,
// the output of an aggregation run. Internally each cell holds its 6 Voigt
// components; the full matrices are expanded on demand, so the symmetry of
// the output holds by construction.
type TensorField struct {
	nx, ny, nz int
	xs, ys, zs []float64
	data       []float64 //Cells x 6, Voigt order
}

func newTensorField(g *Grid) *TensorField {
	F := new(TensorField)
	F.nx, F.ny, F.nz = g.Dims()
	F.xs = append([]float64{}, g.Xs()...)
	F.ys = append([]float64{}, g.Ys()...)
	F.zs = append([]float64{}, g.Zs()...)
	F.data = make([]float64, g.Cells()*voxel.VoigtComps)
	return F
}

// Dims returns the resolution of the field along each axis.
func (F *TensorField) Dims() (int, int, int) {
	return F.nx, F.ny, F.nz
}

func (F *TensorField) index(ix, iy, iz int) int {
	return ((ix*F.ny+iy)*F.nz + iz) * voxel.VoigtComps
}

func (F *TensorField) inRange(ix, iy, iz int) bool {
	return ix >= 0 && ix < F.nx && iy >= 0 && iy < F.ny && iz >= 0 && iz < F.nz
}

// Voigt puts the 6 Voigt components of the cell (ix,iy,iz) in dst,
// allocating it if needed, and returns it.
func (F *TensorField) Voigt(ix, iy, iz int, dst []float64) ([]float64, error) {
	if !F.inRange(ix, iy, iz) {
		return nil, Error{BadIndex, []string{"Voigt"}, true}
	}
	if len(dst) < voxel.VoigtComps {
		dst = make([]float64, voxel.VoigtComps)
	}
	copy(dst, F.data[F.index(ix, iy, iz):F.index(ix, iy, iz)+voxel.VoigtComps])
	return dst[:voxel.VoigtComps], nil
}

// At returns the cell (ix,iy,iz) expanded into a full symmetric matrix,
// put in dst, which is allocated if nil.
func (F *TensorField) At(ix, iy, iz int, dst *mat.SymDense) (*mat.SymDense, error) {
	v, err := F.Voigt(ix, iy, iz, nil)
	if err != nil {
		return nil, errDecorate(err, "At")
	}
	ret, err := voxel.VoigtExpand(v, dst)
	if err != nil {
		return nil, errDecorate(err, "At")
	}
	return ret, nil
}

// Hydrostatic returns the hydrostatic part of the tensor at the given cell.
func (F *TensorField) Hydrostatic(ix, iy, iz int) (float64, error) {
	v, err := F.Voigt(ix, iy, iz, nil)
	if err != nil {
		return 0, errDecorate(err, "Hydrostatic")
	}
	return voxel.Hydrostatic(v), nil
}

// VonMises returns the von Mises equivalent of the tensor at the given cell.
func (F *TensorField) VonMises(ix, iy, iz int) (float64, error) {
	v, err := F.Voigt(ix, iy, iz, nil)
	if err != nil {
		return 0, errDecorate(err, "VonMises")
	}
	return voxel.VonMises(v), nil
}

// Principal returns the eigenvalues of the tensor at the given cell, in
// ascending order.
func (F *TensorField) Principal(ix, iy, iz int) ([]float64, error) {
	v, err := F.Voigt(ix, iy, iz, nil)
	if err != nil {
		return nil, errDecorate(err, "Principal")
	}
	ret, err := voxel.Principal(v)
	if err != nil {
		return nil, errDecorate(err, "Principal")
	}
	return ret, nil
}

// Plane is one 2D cut of a scalar quantity derived from a tensor field,
// with the grid coordinates of its two in-plane axes. It implements the
// GridXYZ interface of gonum/plot's plotter, so it can be handed directly
// to a heatmap.
type Plane struct {
	xs, ys []float64
	z      []float64 //len(xs) x len(ys), x varying slowest
}

// Dims returns the number of columns and rows of the plane.
func (P *Plane) Dims() (int, int) {
	return len(P.xs), len(P.ys)
}

// X returns the coordinate of the cth column.
func (P *Plane) X(c int) float64 { return P.xs[c] }

// Y returns the coordinate of the rth row.
func (P *Plane) Y(r int) float64 { return P.ys[r] }

// Z returns the value at column c, row r.
func (P *Plane) Z(c, r int) float64 { return P.z[c*len(P.ys)+r] }

// ScalarPlane cuts the field with the plane normal to the given axis
// (0, 1 or 2) at the given grid index, evaluating f on the Voigt components
// of each cell in the cut.
func (F *TensorField) ScalarPlane(axis, index int, f func([]float64) float64) (*Plane, error) {
	ns := [3]int{F.nx, F.ny, F.nz}
	axes := [3][]float64{F.xs, F.ys, F.zs}
	if axis < 0 || axis > 2 {
		return nil, Error{BadAxis, []string{"ScalarPlane"}, true}
	}
	if index < 0 || index >= ns[axis] {
		return nil, Error{BadIndex, []string{"ScalarPlane"}, true}
	}
	a1, a2 := (axis+1)%3, (axis+2)%3
	if a1 > a2 {
		a1, a2 = a2, a1 //keep the in-plane axes in x,y,z order
	}
	P := new(Plane)
	P.xs = append([]float64{}, axes[a1]...)
	P.ys = append([]float64{}, axes[a2]...)
	P.z = make([]float64, len(P.xs)*len(P.ys))
	v := make([]float64, voxel.VoigtComps)
	var idx [3]int
	idx[axis] = index
	var err error
	for i := 0; i < ns[a1]; i++ {
		for j := 0; j < ns[a2]; j++ {
			idx[a1], idx[a2] = i, j
			v, err = F.Voigt(idx[0], idx[1], idx[2], v)
			if err != nil {
				return nil, errDecorate(err, "ScalarPlane")
			}
			P.z[i*ns[a2]+j] = f(v)
		}
	}
	return P, nil
}

// ComponentPlane is ScalarPlane for one (row,col) component of the tensors.
func (F *TensorField) ComponentPlane(axis, index, row, col int) (*Plane, error) {
	vi, err := voigtIndex(row, col)
	if err != nil {
		return nil, errDecorate(err, "ComponentPlane")
	}
	P, err := F.ScalarPlane(axis, index, func(v []float64) float64 { return v[vi] })
	if err != nil {
		return nil, errDecorate(err, "ComponentPlane")
	}
	return P, nil
}

// voigtIndex maps a (row,col) pair of the full matrix to its Voigt index.
func voigtIndex(row, col int) (int, error) {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return 0, Error{BadIndex, []string{"voigtIndex"}, true}
	}
	if row == col {
		return row, nil
	}
	return 6 - row - col, nil //(1,2)->3, (0,2)->4, (0,1)->5, either order
}

// MarshalJSON serializes the field, coordinates included, so it can be
// saved and plotted elsewhere.
func (F *TensorField) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		Nx   int       `json:"nx"`
		Ny   int       `json:"ny"`
		Nz   int       `json:"nz"`
		Xs   []float64 `json:"xs"`
		Ys   []float64 `json:"ys"`
		Zs   []float64 `json:"zs"`
		Data []float64 `json:"data"`
	}{
		Nx: F.nx, Ny: F.ny, Nz: F.nz,
		Xs: F.xs, Ys: F.ys, Zs: F.zs,
		Data: F.data,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (F *TensorField) UnmarshalJSON(b []byte) error {
	var a struct {
		Nx   int       `json:"nx"`
		Ny   int       `json:"ny"`
		Nz   int       `json:"nz"`
		Xs   []float64 `json:"xs"`
		Ys   []float64 `json:"ys"`
		Zs   []float64 `json:"zs"`
		Data []float64 `json:"data"`
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if a.Nx*a.Ny*a.Nz*voxel.VoigtComps != len(a.Data) {
		return Error{BadDump, []string{"UnmarshalJSON"}, true}
	}
	F.nx, F.ny, F.nz = a.Nx, a.Ny, a.Nz
	F.xs, F.ys, F.zs = a.Xs, a.Ys, a.Zs
	F.data = a.Data
	return nil
}
