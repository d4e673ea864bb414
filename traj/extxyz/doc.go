/*
 * doc.go, part of govoxel.
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

//Package extxyz reads particle snapshots written in a reduced form of the
//extended-XYZ convention, one snapshot per file:
//
//Line 1 is ignored, except that, if it holds a single integer, that integer
//is taken as the particle count and used to preallocate.
//
//Line 2 must contain a token
//
//	Lattice="ax ay az bx by bz cx cy cz"
//
//with the 9 components of the box matrix, row-major. As in the extended-XYZ
//convention, the matrix in the file has the lattice vectors as columns, so it
//is transposed on reading to obtain the row-vector convention used by the
//voxel package.
//
//Each following line holds one particle: an integer id, the 3 cartesian
//coordinates, and the 6 components of a symmetric tensor attribute in Voigt
//order (xx, yy, zz, yz, xz, xy), all whitespace-separated. Lines with fewer
//than 10 fields are an error; extra trailing fields are ignored.
//
//Files with names ending in .gz or .zst are transparently decompressed.
package extxyz
