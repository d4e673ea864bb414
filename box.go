/*
 * box.go, part of govoxel.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to compare floats to zero

// Box represents a periodic simulation box. The rows of the box matrix are
// the 3 lattice vectors. Boxes are immutable once built: the inverse matrix
// used for the minimum-image computations is cached at construction.
type Box struct {
	m   [3][3]float64
	inv [3][3]float64
}

// NewBox builds a Box from a 9-element, row-major slice where each row
// is one lattice vector. It returns an error if the slice has the wrong
// length or the matrix is not invertible.
func NewBox(lattice []float64) (*Box, error) {
	if lattice == nil {
		return nil, CError{NilData, []string{"NewBox"}}
	}
	if len(lattice) != 9 {
		return nil, CError{WrongDimension, []string{"NewBox"}}
	}
	B := new(Box)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			B.m[i][j] = lattice[3*i+j]
		}
	}
	d := mat.NewDense(3, 3, lattice)
	var inv mat.Dense
	if err := inv.Inverse(d); err != nil {
		return nil, CError{SingularBox, []string{"mat.Inverse", "NewBox"}}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			B.inv[i][j] = inv.At(i, j)
		}
	}
	return B, nil
}

// NewBoxTriclinic builds a Box from the 6 scalar triclinic parameters:
// the lengths lx, ly and lz and the tilt factors xy, xz and yz, using the
// usual MD convention for the lattice vectors:
//
//	a = (lx,  0,  0)
//	b = (xy, ly,  0)
//	c = (xz, yz, lz)
func NewBoxTriclinic(lx, ly, lz, xy, xz, yz float64) (*Box, error) {
	lattice := []float64{
		lx, 0, 0,
		xy, ly, 0,
		xz, yz, lz,
	}
	B, err := NewBox(lattice)
	if err != nil {
		return nil, errDecorate(err, "NewBoxTriclinic")
	}
	return B, nil
}

// Slice returns the box matrix as a new 9-element row-major slice.
func (B *Box) Slice() []float64 {
	ret := make([]float64, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ret[3*i+j] = B.m[i][j]
		}
	}
	return ret
}

// Matrix returns the box matrix as a gonum dense matrix.
func (B *Box) Matrix() *mat.Dense {
	return mat.NewDense(3, 3, B.Slice())
}

// Lengths returns the diagonal of the box matrix, i.e. the lengths of the
// box along its principal axes.
func (B *Box) Lengths() [3]float64 {
	return [3]float64{B.m[0][0], B.m[1][1], B.m[2][2]}
}

// Vector returns the ith lattice vector.
func (B *Box) Vector(i int) [3]float64 {
	return B.m[i]
}

// Orthorhombic returns true if all the off-diagonal elements of the box
// matrix are zero.
func (B *Box) Orthorhombic() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j && math.Abs(B.m[i][j]) > appzero {
				return false
			}
		}
	}
	return true
}

// Volume returns the volume of the box.
func (B *Box) Volume() float64 {
	return math.Abs(mat.Det(B.Matrix()))
}

// MinImage returns the minimum-image convention equivalent of the
// displacement vector d under the periodicity of the box. The vector is
// taken to fractional coordinates, each component is wrapped to
// [-0.5, 0.5) and the result is taken back to cartesian coordinates.
func (B *Box) MinImage(d [3]float64) [3]float64 {
	var f [3]float64
	for j := 0; j < 3; j++ {
		f[j] = d[0]*B.inv[0][j] + d[1]*B.inv[1][j] + d[2]*B.inv[2][j]
	}
	for j := 0; j < 3; j++ {
		f[j] -= math.Round(f[j])
	}
	var ret [3]float64
	for j := 0; j < 3; j++ {
		ret[j] = f[0]*B.m[0][j] + f[1]*B.m[1][j] + f[2]*B.m[2][j]
	}
	return ret
}

// Dist returns the minimum-image distance between the points a and b.
func (B *Box) Dist(a, b [3]float64) float64 {
	d := B.MinImage([3]float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]})
	return math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
}

// AverageBox returns the element-wise arithmetic mean of the given boxes.
// The frame-to-frame fluctuation of the box in an NPT-like run is small, so
// the average box is what the sampling grid of a whole trajectory is built
// from.
func AverageBox(boxes ...*Box) (*Box, error) {
	if len(boxes) == 0 {
		return nil, CError{NilData, []string{"AverageBox"}}
	}
	sum := make([]float64, 9)
	for _, v := range boxes {
		if v == nil {
			return nil, CError{NilData, []string{"AverageBox"}}
		}
		for i, m := range v.Slice() {
			sum[i] += m
		}
	}
	for i := range sum {
		sum[i] /= float64(len(boxes))
	}
	ret, err := NewBox(sum)
	if err != nil {
		return nil, errDecorate(err, "AverageBox")
	}
	return ret, nil
}
