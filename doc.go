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

/*Package voxel is the main package of the goVoxel library. It provides types for
periodic simulation boxes and particle snapshots carrying per-particle symmetric
tensor attributes (strain, stress or similar, in Voigt notation), plus the
interfaces implemented by the snapshot readers and by the binning machinery in
the subpackages.


	**goVoxel capabilities**

    Reads extended-XYZ snapshot files with a per-particle 6-component
	tensor attribute, plain or gzip/zstd compressed (traj/extxyz).

    Handles orthorhombic and triclinic periodic boxes, including
	minimum-image displacements and distances.

    Bins particles onto a fixed regular grid built from the average box of
	a trajectory, averaging the tensor attribute per grid cell and per
	snapshot (grid).

    Expands the binned 6-component averages into full 3x3 symmetric
	tensors, and derives scalar fields (hydrostatic part, von Mises
	equivalent, principal values) from them (grid).

    Renders 2D slices of the resulting fields as heatmaps (fieldplot).

goVoxel follows the conventions of the goChem library, from which it borrows
its error system and its trajectory-reading idiom.
*/
package voxel
