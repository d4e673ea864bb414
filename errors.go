/*
 * errors.go, part of govoxel.
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

import "fmt"

// CError is the concrete error type for the root package.
// It implements the voxel.Error interface.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds new information to the error and returns the
// current decoration.
func (err CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// NewError returns a CError with the given message, built with
// the same format semantics of fmt.Sprintf.
func NewError(format string, a ...interface{}) CError {
	return CError{msg: fmt.Sprintf(format, a...), deco: []string{}}
}

// errDecorate decorates err with deco if err implements the Error
// interface of this library, and just returns it otherwise.
func errDecorate(err error, deco string) error {
	err2, ok := err.(Error)
	if ok {
		err2.Decorate(deco)
		return err2
	}
	return err
}

// Messages for the errors returned by the root package.
const (
	NilData        = "goVoxel: Nil data given"
	WrongDimension = "goVoxel: Wrong dimension for the given data"
	SingularBox    = "goVoxel: Box matrix is singular"
)
