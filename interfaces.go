/*
 * interfaces.go, part of govoxel.
 *
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
 *
 */

package voxel

/*A snapshot trajectory is simply a sequence of files, one frame per file, so unlike
 * in goChem there is no need for a separate concurrent-reading interface: a reader
 * just hands out one *Frame per call until it runs out of files.*/

// Traj is the interface for any source of snapshot frames.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//Next reads the next frame of the trajectory, returning it
	//with its box. When no frames are left it returns an error
	//implementing LastFrameError.
	Next() (*Frame, error)

	//Returns the total number of frames in the trajectory.
	Len() int

	//Reset rewinds the trajectory so Next starts again from the
	//first frame. Needed because building the sampling grid takes
	//one pass over the boxes before the frames are binned.
	Reset() error
}

// BoxReader is implemented by trajectories that can read the box of the
// next frame without parsing its particles. The box-averaging pass over a
// trajectory uses it, when available, instead of full Next calls.
type BoxReader interface {

	//NextBox reads the box of the next frame, advancing the
	//trajectory, with the same exhaustion behavior as Next.
	NextBox() (*Box, error)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else. It follows the error system of goChem.
type Error interface {
	Error() string
	Decorate(string) []string //Adds information when the error is passed up. If given an empty string, just returns the current decoration.
}

// TrajError is the interface for errors in snapshot sources.
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError is implemented by the harmless error returned upon
// normal trajectory exhaustion, so it can be filtered in a typeswitch.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
