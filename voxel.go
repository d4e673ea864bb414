/*
 * voxel.go, part of govoxel.
 *
 * Copyright 2023 Raul Mera <rmeraaatacademicosdotutadotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package voxel

import (
	"gonum.org/v1/gonum/mat"
)

// VoigtComps is the number of components of a symmetric tensor in Voigt
// notation. The order used throughout the library is xx, yy, zz, yz, xz, xy.
const VoigtComps int = 6

// Frame contains one snapshot of a particle system: the periodic box, the
// particle ids, the coordinates (one row vector per particle) and the
// per-particle tensor attribute, in Voigt notation (one 6-component row per
// particle).
type Frame struct {
	Box     *Box
	IDs     []int
	Coords  *mat.Dense //NAtoms x 3
	Tensors *mat.Dense //NAtoms x 6
}

// NewFrame builds a Frame from its components, checking that the dimensions
// are consistent. ids may be nil, in which case sequential ids are made up.
func NewFrame(box *Box, ids []int, coords, tensors *mat.Dense) (*Frame, error) {
	if box == nil || coords == nil || tensors == nil {
		return nil, CError{NilData, []string{"NewFrame"}}
	}
	cr, cc := coords.Dims()
	tr, tc := tensors.Dims()
	if cc != 3 || tc != VoigtComps || cr != tr {
		return nil, CError{WrongDimension, []string{"NewFrame"}}
	}
	if ids != nil && len(ids) != cr {
		return nil, CError{WrongDimension, []string{"NewFrame"}}
	}
	if ids == nil {
		ids = make([]int, cr)
		for i := range ids {
			ids[i] = i
		}
	}
	return &Frame{Box: box, IDs: ids, Coords: coords, Tensors: tensors}, nil
}

// Len returns the number of particles in the frame.
func (F *Frame) Len() int {
	if F == nil || F.Coords == nil {
		return 0
	}
	r, _ := F.Coords.Dims()
	return r
}

// Pos returns the position of the ith particle. It panics if i is out of
// range, as the gonum accessors do.
func (F *Frame) Pos(i int) [3]float64 {
	return [3]float64{F.Coords.At(i, 0), F.Coords.At(i, 1), F.Coords.At(i, 2)}
}

// Voigt puts the 6 tensor components of the ith particle in dst and returns
// it. If dst is nil or too short, a new slice is allocated.
func (F *Frame) Voigt(i int, dst []float64) []float64 {
	if len(dst) < VoigtComps {
		dst = make([]float64, VoigtComps)
	}
	for j := 0; j < VoigtComps; j++ {
		dst[j] = F.Tensors.At(i, j)
	}
	return dst[:VoigtComps]
}

// Copy returns a deep copy of the frame. The box is shared, as boxes are
// immutable.
func (F *Frame) Copy() *Frame {
	ret := new(Frame)
	ret.Box = F.Box
	ret.IDs = make([]int, len(F.IDs))
	copy(ret.IDs, F.IDs)
	ret.Coords = mat.DenseCopyOf(F.Coords)
	ret.Tensors = mat.DenseCopyOf(F.Tensors)
	return ret
}
