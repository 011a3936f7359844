/*
 * amide.go, part of gomodel.
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

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// AmideLabel classifies the planarity of a peptide bond.
type AmideLabel int

const (
	AmideTrans AmideLabel = iota
	AmideCis
	AmideNonPlanar
)

func (l AmideLabel) String() string {
	switch l {
	case AmideTrans:
		return "TRANS"
	case AmideCis:
		return "CIS"
	}
	return "NON_PLANAR"
}

const (
	// AmideTolerance is the half-width, in degrees, of the bands around 0
	// and 180 within which an omega dihedral still counts as cis or trans,
	// respectively. The value is the usual convention, not a physical
	// constant, hence exported and not buried in the code.
	AmideTolerance = 30.0

	// MaxPeptideBond is the largest donor-C to acceptor-N distance, in
	// Angstroms, still taken as a covalent peptide bond. Consecutive
	// residues further apart than this (chain breaks, gaps in the model)
	// have no bond to classify.
	MaxPeptideBond = 2.0
)

// AmideBondFinding is the result of the planarity check on the peptide bond
// between two consecutive residues. Donor is the residue contributing the
// carbonyl (C=O), Acceptor the one contributing the amide nitrogen. Angle is
// the omega dihedral in degrees, in (-180, 180]. CisProline marks cis bonds
// whose acceptor is a proline: those are chemically common and must not be
// lumped with other, far more suspect, cis bonds.
type AmideBondFinding struct {
	Donor      *Residue
	Acceptor   *Residue
	Angle      float64
	Label      AmideLabel
	CisProline bool
}

// AssignAmide classifies the peptide bond between head and tail from the
// CA-C-N-CA omega dihedral. The second return is false when there is nothing
// to classify: a required atom is missing, the C-N distance says the
// residues are not actually bonded, or the geometry is degenerate. A band of
// AmideTolerance degrees around 0 is cis, around 180 is trans, anything else
// non-planar; tol, if given, replaces AmideTolerance.
func AssignAmide(head, tail *Residue, tol ...float64) (AmideBondFinding, bool) {
	if head == nil || tail == nil {
		panic(ErrNilResidue)
	}
	band := AmideTolerance
	if len(tol) > 0 {
		band = tol[0]
	}
	none := AmideBondFinding{}
	ca1 := head.Atom("CA")
	c := head.Atom("C")
	n := tail.Atom("N")
	ca2 := tail.Atom("CA")
	if ca1 == nil || c == nil || n == nil || ca2 == nil {
		return none, false
	}
	if r3.Norm(r3.Sub(n.Coord, c.Coord)) > MaxPeptideBond {
		return none, false
	}
	if degenerateDihedral(ca1.Coord, c.Coord, n.Coord, ca2.Coord) {
		return none, false
	}
	angle := Dihedral(ca1.Coord, c.Coord, n.Coord, ca2.Coord) * Rad2Deg
	ret := AmideBondFinding{Donor: head, Acceptor: tail, Angle: angle}
	switch {
	case math.Abs(angle) <= band:
		ret.Label = AmideCis
		ret.CisProline = tail.Name == "PRO"
	case math.Abs(angle) >= 180-band:
		ret.Label = AmideTrans
	default:
		ret.Label = AmideNonPlanar
	}
	return ret, true
}

// AmideBonds classifies every peptide bond of S: each pair of consecutive
// residues within a chain, in structure order. Pairs with missing atoms or
// without an actual bond are skipped, never reported as errors. An optional
// tolerance (degrees) replaces AmideTolerance.
func AmideBonds(S *Structure, tol ...float64) []AmideBondFinding {
	if S == nil {
		return nil
	}
	var ret []AmideBondFinding
	for _, chain := range S.Chains() {
		residues := S.ChainResidues(chain)
		for i := 0; i < len(residues)-1; i++ {
			f, ok := AssignAmide(residues[i], residues[i+1], tol...)
			if !ok {
				continue
			}
			ret = append(ret, f)
		}
	}
	return ret
}
