/*
 * chirality.go, part of gomodel.
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

// ChiralLabel is the handedness assigned to an alpha-carbon stereocenter.
type ChiralLabel int

const (
	// ChiralUndetermined means the residue lacks the atoms needed for the
	// check, or its geometry is too degenerate to call.
	ChiralUndetermined ChiralLabel = iota
	ChiralL
	ChiralD
)

func (l ChiralLabel) String() string {
	switch l {
	case ChiralL:
		return "L"
	case ChiralD:
		return "D"
	}
	return "UNDETERMINED"
}

// ChiralityFinding is the result of the chirality check on one residue.
type ChiralityFinding struct {
	Res   *Residue
	Label ChiralLabel
}

// A SubstituentRanker gives, for a residue type, the names of the three
// substituent atoms of the alpha carbon in descending priority order, plus
// whether the type has a stereocenter at all. It decouples the geometric
// part of the check from how priorities are assigned, so the built-in
// fixed table can later be swapped for a full CIP resolver without touching
// AssignChirality.
type SubstituentRanker func(resname string) ([3]string, bool)

// FixedRanker is the default SubstituentRanker: a per-residue-type lookup
// table with the convention N > C > CB. Glycine (and anything that is not a
// standard aminoacid) has no entry, hence no stereocenter.
func FixedRanker(resname string) ([3]string, bool) {
	subs, ok := chiralSubstituents[resname]
	return subs, ok
}

// AssignChirality labels the alpha-carbon stereocenter of res as L or D from
// the sign of the triple product (A1-A3)x(A2-A3).(CA-A3), where A1, A2, A3
// are the substituents in descending priority. A residue missing CA or any
// substituent, or whose substituents are (near) coplanar with the
// stereocenter, is labeled undetermined; this function cannot fail.
// If no ranker is given, FixedRanker is used.
func AssignChirality(res *Residue, ranker ...SubstituentRanker) ChiralLabel {
	if res == nil {
		panic(ErrNilResidue)
	}
	rank := FixedRanker
	if len(ranker) > 0 && ranker[0] != nil {
		rank = ranker[0]
	}
	subs, ok := rank(res.Name)
	if !ok {
		return ChiralUndetermined
	}
	ca := res.Atom("CA")
	a1 := res.Atom(subs[0])
	a2 := res.Atom(subs[1])
	a3 := res.Atom(subs[2])
	if ca == nil || a1 == nil || a2 == nil || a3 == nil {
		return ChiralUndetermined
	}
	v1 := r3.Sub(a1.Coord, a3.Coord)
	v2 := r3.Sub(a2.Coord, a3.Coord)
	vc := r3.Sub(ca.Coord, a3.Coord)
	s := tripleProduct(v1, v2, vc)
	//The threshold scales with the vectors so the call doesn't depend on the
	//units or the overall size of the residue.
	scale := r3.Norm(v1) * r3.Norm(v2) * r3.Norm(vc)
	if scale <= appzero || math.Abs(s) <= appzero*scale {
		return ChiralUndetermined
	}
	if s > 0 {
		return ChiralD
	}
	return ChiralL
}

// Chirality runs the chirality check on every aminoacidic residue of S, in
// structure order. Glycine has no stereocenter and yields no finding, as do
// non-aminoacid residues; incomplete residues yield undetermined findings.
// An optional ranker replaces the built-in priority table.
func Chirality(S *Structure, ranker ...SubstituentRanker) []ChiralityFinding {
	if S == nil {
		return nil
	}
	var ret []ChiralityFinding
	for _, res := range S.Residues() {
		if !IsAminoAcid(res.Name) || res.Name == "GLY" {
			continue
		}
		ret = append(ret, ChiralityFinding{Res: res, Label: AssignChirality(res, ranker...)})
	}
	return ret
}
