/*
 * tensor.go, part of govoxel.
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

//tensor.go handles the Voigt-notation representation of symmetric 3x3
//tensors. The component order is the usual one: xx, yy, zz, yz, xz, xy.

package voxel

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

//Indexes of the components in a Voigt-notation slice.
const (
	XX = iota
	YY
	ZZ
	YZ
	XZ
	XY
)

// VoigtExpand expands the 6-component Voigt slice v into a full 3x3
// symmetric matrix, put in dst, which is allocated if nil. The mapping is
// 0->(0,0), 1->(1,1), 2->(2,2), 3->(1,2), 4->(0,2), 5->(0,1), plus the
// symmetric counterparts.
func VoigtExpand(v []float64, dst *mat.SymDense) (*mat.SymDense, error) {
	if v == nil {
		return nil, CError{NilData, []string{"VoigtExpand"}}
	}
	if len(v) != VoigtComps {
		return nil, CError{WrongDimension, []string{"VoigtExpand"}}
	}
	if dst == nil {
		dst = mat.NewSymDense(3, nil)
	}
	dst.SetSym(0, 0, v[XX])
	dst.SetSym(1, 1, v[YY])
	dst.SetSym(2, 2, v[ZZ])
	dst.SetSym(1, 2, v[YZ])
	dst.SetSym(0, 2, v[XZ])
	dst.SetSym(0, 1, v[XY])
	return dst, nil
}

// VoigtCompress is the inverse of VoigtExpand. The matrix is assumed
// symmetric; only the upper triangle is read.
func VoigtCompress(S *mat.SymDense, dst []float64) ([]float64, error) {
	if S == nil {
		return nil, CError{NilData, []string{"VoigtCompress"}}
	}
	if len(dst) < VoigtComps {
		dst = make([]float64, VoigtComps)
	}
	dst[XX] = S.At(0, 0)
	dst[YY] = S.At(1, 1)
	dst[ZZ] = S.At(2, 2)
	dst[YZ] = S.At(1, 2)
	dst[XZ] = S.At(0, 2)
	dst[XY] = S.At(0, 1)
	return dst[:VoigtComps], nil
}

// Hydrostatic returns the hydrostatic (isotropic) part of the tensor,
// i.e. one third of its trace.
func Hydrostatic(v []float64) float64 {
	return (v[XX] + v[YY] + v[ZZ]) / 3.0
}

// VonMises returns the von Mises equivalent of the tensor, the usual
// scalar measure of its deviatoric part.
func VonMises(v []float64) float64 {
	d := (v[XX]-v[YY])*(v[XX]-v[YY]) +
		(v[YY]-v[ZZ])*(v[YY]-v[ZZ]) +
		(v[ZZ]-v[XX])*(v[ZZ]-v[XX])
	s := v[YZ]*v[YZ] + v[XZ]*v[XZ] + v[XY]*v[XY]
	return math.Sqrt(0.5*d + 3.0*s)
}

// Principal returns the 3 eigenvalues of the tensor, in ascending order.
func Principal(v []float64) ([]float64, error) {
	S, err := VoigtExpand(v, nil)
	if err != nil {
		return nil, errDecorate(err, "Principal")
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(S, false); !ok {
		return nil, CError{"goVoxel: Eigendecomposition failed", []string{"mat.EigenSym.Factorize", "Principal"}}
	}
	return eig.Values(nil), nil
}
