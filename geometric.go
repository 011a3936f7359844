/*
 * geometric.go, part of gomodel
 *
 * Copyright 2024 The goModel developers
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
*/

package model

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// Rad2Deg and Deg2Rad convert between radians and degrees.
const (
	Rad2Deg = 180 / math.Pi
	Deg2Rad = math.Pi / 180
)

//Dihedral calculates the dihedral between the points a, b, c, d, where the
//first plane is defined by abc and the second by bcd. The value is signed by
//the handedness around the b-c axis, and in (-Pi, Pi].
func Dihedral(a, b, c, d r3.Vec) float64 {
	bma := r3.Sub(b, a)
	cmb := r3.Sub(c, b)
	dmc := r3.Sub(d, c)
	first := r3.Dot(r3.Scale(r3.Norm(cmb), bma), r3.Cross(cmb, dmc))
	second := r3.Dot(r3.Cross(bma, cmb), r3.Cross(cmb, dmc))
	return math.Atan2(first, second)
}

//degenerateDihedral reports whether any of the three bond vectors of a
//dihedral is too short for the angle to mean anything (coincident atoms).
//An atan2 over such vectors quietly returns 0, which would mislabel the
//bond, so callers must check this first.
func degenerateDihedral(a, b, c, d r3.Vec) bool {
	return r3.Norm(r3.Sub(b, a)) <= appzero ||
		r3.Norm(r3.Sub(c, b)) <= appzero ||
		r3.Norm(r3.Sub(d, c)) <= appzero
}

//tripleProduct returns v1xv2 . v3.
func tripleProduct(v1, v2, v3 r3.Vec) float64 {
	return r3.Dot(r3.Cross(v1, v2), v3)
}

// Angle takes 2 vectors and calculates the angle in radians between them.
func Angle(v1, v2 r3.Vec) float64 {
	normproduct := r3.Norm(v1) * r3.Norm(v2)
	argument := r3.Dot(v1, v2) / normproduct
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}
