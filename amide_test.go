/*
 * amide_test.go
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
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

//amidePair builds two consecutive residues whose omega dihedral is
//atan2(z, y): the donor contributes CA and C, the acceptor N and CA, with
//the C-N bond on the x axis.
func amidePair(acceptorName string, y, z float64) (*Residue, *Residue) {
	donor := testResidue("ALA", 1, "A", []*Atom{
		{Name: "CA", Coord: r3.Vec{X: -1, Y: 1}},
		{Name: "C", Coord: r3.Vec{}},
	})
	acceptor := testResidue(acceptorName, 2, "A", []*Atom{
		{Name: "N", Coord: r3.Vec{X: 1.33}},
		{Name: "CA", Coord: r3.Vec{X: 2.33, Y: y, Z: z}},
	})
	return donor, acceptor
}

func TestAssignAmide(Te *testing.T) {
	cases := []struct {
		y, z  float64
		want  AmideLabel
		angle float64
	}{
		{1, 0, AmideCis, 0},
		{-1, 0, AmideTrans, 180},
		{0, 1, AmideNonPlanar, 90},
		{0, -1, AmideNonPlanar, -90},
	}
	for _, cs := range cases {
		donor, acceptor := amidePair("ALA", cs.y, cs.z)
		f, ok := AssignAmide(donor, acceptor)
		if !ok {
			Te.Fatalf("bond (y=%v z=%v) not classified", cs.y, cs.z)
		}
		if f.Label != cs.want {
			Te.Errorf("bond (y=%v z=%v): got %v, want %v", cs.y, cs.z, f.Label, cs.want)
		}
		if !scalar.EqualWithinAbs(f.Angle, cs.angle, 1e-9) {
			Te.Errorf("bond (y=%v z=%v): angle %v, want %v", cs.y, cs.z, f.Angle, cs.angle)
		}
		if f.CisProline {
			Te.Error("non-proline acceptor must not set the proline flag")
		}
	}
}

func TestCisProline(Te *testing.T) {
	donor, acceptor := amidePair("PRO", 1, 0)
	f, ok := AssignAmide(donor, acceptor)
	if !ok || f.Label != AmideCis {
		Te.Fatalf("expected a cis bond, got %v (classified: %v)", f.Label, ok)
	}
	if !f.CisProline {
		Te.Error("cis bond to proline must carry the proline flag")
	}
	//trans to proline is the normal case, no flag
	donor, acceptor = amidePair("PRO", -1, 0)
	f, _ = AssignAmide(donor, acceptor)
	if f.CisProline {
		Te.Error("trans bond to proline must not carry the proline flag")
	}
}

func TestAmideSkipped(Te *testing.T) {
	//missing acceptor CA
	donor, acceptor := amidePair("ALA", 1, 0)
	broken := NewResidue("ALA", 2, "A")
	broken.AddAtom(acceptor.Atom("N").Copy())
	if _, ok := AssignAmide(donor, broken); ok {
		Te.Error("bond with a missing atom must be skipped")
	}
	//C and N too far apart: a chain break, not a peptide bond
	donor = testResidue("ALA", 1, "A", []*Atom{
		{Name: "CA", Coord: r3.Vec{X: -1, Y: 1}},
		{Name: "C", Coord: r3.Vec{}},
	})
	far := testResidue("ALA", 2, "A", []*Atom{
		{Name: "N", Coord: r3.Vec{X: 4}},
		{Name: "CA", Coord: r3.Vec{X: 5, Y: 1}},
	})
	if _, ok := AssignAmide(donor, far); ok {
		Te.Error("residues beyond bonding distance must be skipped")
	}
}

func TestAssignAmideNil(Te *testing.T) {
	defer func() {
		if r := recover(); r != ErrNilResidue {
			Te.Errorf("expected the nil-residue panic, got %v", r)
		}
	}()
	donor, _ := amidePair("ALA", 1, 0)
	AssignAmide(donor, nil)
}

//The label must survive a rigid motion of the whole structure.
func TestAmideRigidMotion(Te *testing.T) {
	rot := r3.NewRotation(0.7, r3.Vec{X: -1, Y: 0.3, Z: 2})
	shift := r3.Vec{X: -4, Y: 9, Z: 0.5}
	for _, yz := range [][2]float64{{1, 0}, {-1, 0}, {0, 1}} {
		donor, acceptor := amidePair("ALA", yz[0], yz[1])
		ref, _ := AssignAmide(donor, acceptor)
		for _, res := range []*Residue{donor, acceptor} {
			for _, name := range res.Names() {
				at := res.Atom(name)
				at.Coord = r3.Add(rot.Rotate(at.Coord), shift)
			}
		}
		moved, ok := AssignAmide(donor, acceptor)
		if !ok || moved.Label != ref.Label {
			Te.Errorf("label changed under rigid motion: %v vs %v", moved.Label, ref.Label)
		}
		if !scalar.EqualWithinAbs(moved.Angle, ref.Angle, 1e-6) {
			Te.Errorf("angle changed under rigid motion: %v vs %v", moved.Angle, ref.Angle)
		}
	}
}

func TestAmideBondsPerChain(Te *testing.T) {
	S := NewStructure()
	d1, a1 := amidePair("ALA", 1, 0)
	S.AddResidue(d1)
	S.AddResidue(a1)
	//a residue on another chain: no bond between a1 and this one
	other := testResidue("ALA", 1, "B", []*Atom{
		{Name: "N", Coord: r3.Vec{X: 2.0}},
		{Name: "CA", Coord: r3.Vec{X: 3.0}},
		{Name: "C", Coord: r3.Vec{X: 4.0}},
	})
	S.AddResidue(other)
	findings := AmideBonds(S)
	if len(findings) != 1 {
		Te.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].Donor != d1 || findings[0].Acceptor != a1 {
		Te.Error("finding does not reference the bonded pair")
	}
}
