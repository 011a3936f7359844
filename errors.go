/*
 * errors.go, part of gomodel.
 *
 * Copyright 2024 The goModel developers
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

package model

// Error is the interface for errors in this library. The Decorate method
// allows adding information to the error as it is passed up the calling stack,
// without changing its type or wrapping it in something else. Each call returns
// the current decoration slice. Passing an empty string just returns the
// current value without appending.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete error type used throughout the library.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds dec to the decoration slice of the error, and returns the
// resulting slice. The slice should contain the names of the functions the
// error crossed, plus any relevant extra info.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate decorates err with the caller's name, asserting that it
// implements Error. It panics otherwise, as mixing error types here means the
// program is wrong.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// PanicMsg is a message used for panics in the low-level geometry helpers.
// It satisfies the error interface anyway, but for returned errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilAtom    = PanicMsg("goModel: operation on a nil Atom")
	ErrNilResidue = PanicMsg("goModel: operation on a nil Residue")
	ErrOutOfRange = PanicMsg("goModel: index out of range")
	ErrPDBRead    = PanicMsg("goModel: failed to read PDB input")
)
