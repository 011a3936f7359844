/*
 * clash_test.go
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
	"reflect"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

//Two 1.5 A radius atoms on different residues, at the given distance.
func twoAtomStructure(dist float64) *Structure {
	S := NewStructure()
	r1 := testResidue("CYS", 1, "A", []*Atom{
		{Name: "SG", Symbol: "S", Vdw: 1.5, Coord: r3.Vec{}},
	})
	r2 := testResidue("CYS", 5, "A", []*Atom{
		{Name: "SG", Symbol: "S", Vdw: 1.5, Coord: r3.Vec{X: dist}},
	})
	S.AddResidue(r1)
	S.AddResidue(r2)
	return S
}

func TestClashThreshold(Te *testing.T) {
	//combined radius 3.0, tolerance 0.5: the threshold is 2.5
	found := Clashes(twoAtomStructure(2.4))
	if len(found) != 1 {
		Te.Fatalf("2.4 A apart: expected a clash, got %d", len(found))
	}
	f := found[0]
	if !floatsEq(f.Distance, 2.4) || !floatsEq(f.Threshold, 2.5) {
		Te.Errorf("wrong distance/threshold: %v %v", f.Distance, f.Threshold)
	}
	if f.A.Residue().ID != 1 || f.B.Residue().ID != 5 {
		Te.Error("clash pair not in structure order")
	}
	if found = Clashes(twoAtomStructure(2.6)); len(found) != 0 {
		Te.Errorf("2.6 A apart: expected no clash, got %d", len(found))
	}
}

func floatsEq(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestClashSameResidue(Te *testing.T) {
	S := NewStructure()
	S.AddResidue(testResidue("CYS", 1, "A", []*Atom{
		{Name: "SG", Vdw: 1.8, Coord: r3.Vec{}},
		{Name: "CB", Vdw: 1.7, Coord: r3.Vec{X: 0.4}},
	}))
	if found := Clashes(S); len(found) != 0 {
		Te.Errorf("atoms of the same residue flagged as clashing: %v", found)
	}
}

func TestClashBondedBackbonePair(Te *testing.T) {
	S := NewStructure()
	S.AddResidue(testResidue("ALA", 1, "A", []*Atom{
		{Name: "C", Vdw: 1.7, Coord: r3.Vec{}},
	}))
	S.AddResidue(testResidue("ALA", 2, "A", []*Atom{
		{Name: "N", Vdw: 1.55, Coord: r3.Vec{X: 1.33}},
	}))
	if found := Clashes(S); len(found) != 0 {
		Te.Errorf("the bonded C/N pair must never be a clash: %v", found)
	}
	//the reverse pair, N of a residue against C of the next, is NOT bonded
	S2 := NewStructure()
	S2.AddResidue(testResidue("ALA", 1, "A", []*Atom{
		{Name: "N", Vdw: 1.55, Coord: r3.Vec{}},
	}))
	S2.AddResidue(testResidue("ALA", 2, "A", []*Atom{
		{Name: "C", Vdw: 1.7, Coord: r3.Vec{X: 1.33}},
	}))
	if found := Clashes(S2); len(found) != 1 {
		Te.Errorf("N(i)/C(i+1) is not a bonded pair, expected a clash: %v", found)
	}
	//same atom names on different chains: not bonded either
	S3 := NewStructure()
	S3.AddResidue(testResidue("ALA", 1, "A", []*Atom{
		{Name: "C", Vdw: 1.7, Coord: r3.Vec{}},
	}))
	S3.AddResidue(testResidue("ALA", 1, "B", []*Atom{
		{Name: "N", Vdw: 1.55, Coord: r3.Vec{X: 1.33}},
	}))
	if found := Clashes(S3); len(found) != 1 {
		Te.Errorf("C/N on different chains, expected a clash: %v", found)
	}
}

func TestClashCustomTolerance(Te *testing.T) {
	//with a large enough tolerance the 2.4 pair stops being a clash
	if found := Clashes(twoAtomStructure(2.4), 0.7); len(found) != 0 {
		Te.Errorf("tolerance 0.7: expected no clash, got %v", found)
	}
}

//The k-d tree search must agree with the naive quadratic one.
func TestClashAgainstBruteForce(Te *testing.T) {
	S := NewStructure()
	//a loose lattice of residues, some of them within clashing distance
	id := 1
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 3; k++ {
				res := NewResidue("GLY", id, "A")
				res.AddAtom(&Atom{Name: "CA", Symbol: "C", Vdw: 1.7,
					Coord: r3.Vec{X: 2.1 * float64(i), Y: 2.3 * float64(j), Z: 2.5 * float64(k)}})
				S.AddResidue(res)
				id++
			}
		}
	}
	got := Clashes(S)
	//brute force over the same flattened structure
	refs := flatten(S)
	var want []ClashFinding
	for i := 0; i < len(refs); i++ {
		for j := i + 1; j < len(refs); j++ {
			if excluded(refs[i], refs[j]) {
				continue
			}
			threshold := refs[i].at.Vdw + refs[j].at.Vdw - ClashTolerance
			dist := r3.Norm(r3.Sub(refs[i].at.Coord, refs[j].at.Coord))
			if dist < threshold {
				want = append(want, ClashFinding{A: refs[i].at, B: refs[j].at, Distance: dist, Threshold: threshold})
			}
		}
	}
	if len(want) == 0 {
		Te.Fatal("bad test setup: the lattice should contain clashes")
	}
	if !reflect.DeepEqual(got, want) {
		Te.Errorf("tree search disagrees with brute force: %d vs %d findings", len(got), len(want))
	}
}

func TestClashDeterminism(Te *testing.T) {
	S := twoAtomStructure(2.4)
	a := Clashes(S)
	b := Clashes(S)
	if !reflect.DeepEqual(a, b) {
		Te.Error("two runs over the same structure gave different findings")
	}
}
