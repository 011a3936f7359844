/*
 * clash.go, part of gomodel.
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
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// ClashTolerance, in Angstroms, is subtracted from the sum of the van
	// der Waals radii before comparing with the interatomic distance, so
	// atoms in normal vdW contact are not flagged.
	ClashTolerance = 0.5

	// ClashCutoff is the pruning distance for the spatial search, in
	// Angstroms. Pairs further apart than this can't possibly clash, as no
	// two bio-element radii sum to more than it.
	ClashCutoff = 5.0
)

// ClashFinding is one pair of non-bonded atoms closer than their combined
// van der Waals radii allow. Threshold is the violated distance,
// radius(A)+radius(B)-ClashTolerance.
type ClashFinding struct {
	A, B      *Atom
	Distance  float64
	Threshold float64
}

//The kdtree machinery. An atomRef ties each atom to its position in the
//flattened structure, so query results can be mapped back to atoms and the
//bonded-pair exclusions can be decided from residue positions alone.

type atomRef struct {
	at    *Atom
	index int //position in the flattened atom list
	res   int //ordinal of the owning residue in the flattened structure
	chain int //ordinal of the owning chain
}

func (p atomRef) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(atomRef)
	switch d {
	case 0:
		return p.at.Coord.X - q.at.Coord.X
	case 1:
		return p.at.Coord.Y - q.at.Coord.Y
	default:
		return p.at.Coord.Z - q.at.Coord.Z
	}
}

func (p atomRef) Dims() int { return 3 }

//Distance is the squared euclidean distance, as the kdtree package expects.
func (p atomRef) Distance(c kdtree.Comparable) float64 {
	q := c.(atomRef)
	return r3.Norm2(r3.Sub(p.at.Coord, q.at.Coord))
}

type atomRefs []atomRef

func (p atomRefs) Index(i int) kdtree.Comparable { return p[i] }
func (p atomRefs) Len() int                      { return len(p) }
func (p atomRefs) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}
func (p atomRefs) Pivot(d kdtree.Dim) int {
	return refPlane{Dim: d, atomRefs: p}.Pivot()
}

//refPlane lets the kdtree partition atomRefs along one dimension.
type refPlane struct {
	kdtree.Dim
	atomRefs
}

func (p refPlane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.atomRefs[i].at.Coord.X < p.atomRefs[j].at.Coord.X
	case 1:
		return p.atomRefs[i].at.Coord.Y < p.atomRefs[j].at.Coord.Y
	default:
		return p.atomRefs[i].at.Coord.Z < p.atomRefs[j].at.Coord.Z
	}
}

func (p refPlane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

func (p refPlane) Slice(start, end int) kdtree.SortSlicer {
	p.atomRefs = p.atomRefs[start:end]
	return p
}

func (p refPlane) Swap(i, j int) {
	p.atomRefs[i], p.atomRefs[j] = p.atomRefs[j], p.atomRefs[i]
}

//flatten returns every atom of S with its structure-order index and the
//ordinals of its residue and chain.
func flatten(S *Structure) []atomRef {
	var refs []atomRef
	resi := 0
	for chi, chain := range S.Chains() {
		for _, res := range S.ChainResidues(chain) {
			for i := 0; i < res.Len(); i++ {
				refs = append(refs, atomRef{at: res.AtomAt(i), index: len(refs), res: resi, chain: chi})
			}
			resi++
		}
	}
	return refs
}

//excluded reports whether the pair a,b is exempt from the clash check:
//both atoms in the same residue, or the two being the covalently bonded
//backbone pair (C of a residue and N of the next one in the same chain).
func excluded(a, b atomRef) bool {
	if a.res == b.res {
		return true
	}
	if a.chain != b.chain {
		return false
	}
	if a.res+1 == b.res && a.at.Name == "C" && b.at.Name == "N" {
		return true
	}
	if b.res+1 == a.res && b.at.Name == "C" && a.at.Name == "N" {
		return true
	}
	return false
}

// Clashes finds every pair of atoms of S whose distance is below the sum of
// their van der Waals radii minus ClashTolerance (or the given tolerance, in
// Angstroms, if any). Atoms within a residue, and the bonded C/N backbone
// pair between consecutive residues, are never flagged. The search is pruned
// with a k-d tree and a ClashCutoff ball around each atom, so only nearby
// pairs pay the exact check. Findings come out in structure order, first
// atom first, so repeated runs on the same structure give identical slices.
func Clashes(S *Structure, tolerance ...float64) []ClashFinding {
	if S == nil {
		return nil
	}
	tol := ClashTolerance
	if len(tolerance) > 0 {
		tol = tolerance[0]
	}
	refs := flatten(S)
	if len(refs) < 2 {
		return nil
	}
	//The tree partitions its input in place, so it gets its own copy and
	//refs stays in structure order for the iteration below.
	treerefs := make(atomRefs, len(refs))
	copy(treerefs, refs)
	tree := kdtree.New(treerefs, false)

	var ret []ClashFinding
	neighbors := make([]int, 0, 32)
	for _, a := range refs {
		keep := kdtree.NewDistKeeper(ClashCutoff * ClashCutoff) //squared, as Distance is
		tree.NearestSet(keep, a)
		neighbors = neighbors[:0]
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue
			}
			b := c.Comparable.(atomRef)
			//each pair is checked once, from its lower-index atom
			if b.index > a.index {
				neighbors = append(neighbors, b.index)
			}
		}
		//the heap order is not deterministic; the report must be
		sort.Ints(neighbors)
		for _, j := range neighbors {
			b := refs[j]
			if excluded(a, b) {
				continue
			}
			threshold := a.at.Vdw + b.at.Vdw - tol
			dist := r3.Norm(r3.Sub(a.at.Coord, b.at.Coord))
			if dist < threshold {
				ret = append(ret, ClashFinding{A: a.at, B: b.at, Distance: dist, Threshold: threshold})
			}
		}
	}
	return ret
}
