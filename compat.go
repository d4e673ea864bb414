/*
 * compat.go, part of govoxel.
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

//compat.go keeps goVoxel usable together with the tools written against the
//old go.matrix types, from before the gonum era. Only conversions live here;
//no computation is done with the legacy matrices.

package voxel

import (
	matrix "github.com/skelterjohn/go.matrix"
	"gonum.org/v1/gonum/mat"
)

// GoMatrixCoords returns the coordinates of the frame as a go.matrix
// DenseMatrix with one row per particle.
func (F *Frame) GoMatrixCoords() *matrix.DenseMatrix {
	return dense2GoMatrix(F.Coords)
}

// GoMatrixTensors returns the Voigt tensors of the frame as a go.matrix
// DenseMatrix with one row per particle.
func (F *Frame) GoMatrixTensors() *matrix.DenseMatrix {
	return dense2GoMatrix(F.Tensors)
}

func dense2GoMatrix(d *mat.Dense) *matrix.DenseMatrix {
	r, c := d.Dims()
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = d.At(i, j)
		}
	}
	return matrix.MakeDenseMatrix(data, r, c)
}

// GoMatrix2Dense converts a go.matrix DenseMatrix into a gonum one.
func GoMatrix2Dense(old *matrix.DenseMatrix) *mat.Dense {
	r, c := old.Rows(), old.Cols()
	ret := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			ret.Set(i, j, old.Get(i, j))
		}
	}
	return ret
}
