/*
 * model.go, part of gomodel.
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
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

/**Note: Some functions here panic instead of returning errors. They are "fundamental"
 * functions: if something goes wrong in them, the program is way-most likely wrong
 * and should crash. The panics are related to nil objects and out-of-range access.**/

// Atom is one atom of a residue. The position is cartesian, in Angstroms.
// The van der Waals radius is assigned from the element when the structure is
// built, so the clash check doesn't need an element table at analysis time.
type Atom struct {
	Name   string //PDB name, "CA", "OG1", etc.
	Symbol string //element symbol
	Vdw    float64
	Coord  r3.Vec
	res    *Residue //back-reference to the owning residue, not ownership
}

// Residue returns the residue the atom belongs to, nil if the atom has not
// been added to any.
func (A *Atom) Residue() *Residue {
	if A == nil {
		panic(ErrNilAtom)
	}
	return A.res
}

// Copy returns a copy of the Atom. The back-reference is not copied: the new
// atom belongs to no residue until added to one.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic(ErrNilAtom)
	}
	return &Atom{Name: A.Name, Symbol: A.Symbol, Vdw: A.Vdw, Coord: A.Coord}
}

// Residue is one residue of a chain: a named, ordered set of atoms.
// Atom names are unique within a residue; the backbone ones ("N", "CA", "C",
// "O") are shared by every aminoacid, the rest depend on the residue type.
type Residue struct {
	Name  string //3-letter residue type, "ALA", "PRO"...
	ID    int    //sequence number, as in the PDB
	Chain string
	names []string //insertion order, so iteration is deterministic
	atoms map[string]*Atom
}

// NewResidue returns an empty residue of the given type, sequence number and
// chain.
func NewResidue(name string, id int, chain string) *Residue {
	return &Residue{Name: name, ID: id, Chain: chain, atoms: make(map[string]*Atom)}
}

// AddAtom adds at to the residue and sets its back-reference. Adding an atom
// with a name already present replaces the previous one (as with PDB altlocs,
// the last read wins) without disturbing the atom order.
func (R *Residue) AddAtom(at *Atom) {
	if R == nil {
		panic(ErrNilResidue)
	}
	if at == nil {
		panic(ErrNilAtom)
	}
	if _, ok := R.atoms[at.Name]; !ok {
		R.names = append(R.names, at.Name)
	}
	at.res = R
	R.atoms[at.Name] = at
}

// Atom returns the atom with the given PDB name, or nil if the residue
// doesn't have it. Missing atoms are normal (incomplete models) so this
// doesn't panic or return an error.
func (R *Residue) Atom(name string) *Atom {
	if R == nil {
		panic(ErrNilResidue)
	}
	return R.atoms[name]
}

// Len returns the number of atoms in the residue.
func (R *Residue) Len() int {
	return len(R.names)
}

// AtomAt returns the i-th atom of the residue, in insertion order.
// Panics if out of range.
func (R *Residue) AtomAt(i int) *Atom {
	if i < 0 || i >= len(R.names) {
		panic(ErrOutOfRange)
	}
	return R.atoms[R.names[i]]
}

// Names returns the atom names of the residue in insertion order. The
// returned slice is a copy, so the caller can't disturb the residue.
func (R *Residue) Names() []string {
	ret := make([]string, len(R.names))
	copy(ret, R.names)
	return ret
}

// OneLetter returns the 1-letter code for the residue type, or 'X' if the
// type is not a standard aminoacid.
func (R *Residue) OneLetter() byte {
	s, ok := three2OneLetter[R.Name]
	if !ok {
		return 'X'
	}
	return s
}

// String returns a compact identifier for the residue, like "A:PRO121".
func (R *Residue) String() string {
	return fmt.Sprintf("%s:%s%d", R.Chain, R.Name, R.ID)
}

// Structure is an ordered set of chains, each an ordered set of residues.
// The order matters: it is what defines which residues are consecutive for
// the peptide-bond and bonded-pair checks. A Structure is built once, by
// AddResidue calls, and never mutated by the analysis functions.
type Structure struct {
	chainIDs []string //first-seen order
	chains   map[string][]*Residue
}

// NewStructure returns an empty structure.
func NewStructure() *Structure {
	return &Structure{chains: make(map[string][]*Residue)}
}

// AddResidue appends res to its chain, creating the chain if this is the
// first residue seen for it.
func (S *Structure) AddResidue(res *Residue) {
	if res == nil {
		panic(ErrNilResidue)
	}
	if _, ok := S.chains[res.Chain]; !ok {
		S.chainIDs = append(S.chainIDs, res.Chain)
	}
	S.chains[res.Chain] = append(S.chains[res.Chain], res)
}

// Chains returns the chain identifiers in structure order.
func (S *Structure) Chains() []string {
	ret := make([]string, len(S.chainIDs))
	copy(ret, S.chainIDs)
	return ret
}

// ChainResidues returns the residues of the given chain, in sequence order.
// It returns nil for a chain the structure doesn't have.
func (S *Structure) ChainResidues(chain string) []*Residue {
	return S.chains[chain]
}

// Residues returns all residues of the structure, chain by chain, in
// structure order.
func (S *Structure) Residues() []*Residue {
	var ret []*Residue
	for _, ch := range S.chainIDs {
		ret = append(ret, S.chains[ch]...)
	}
	return ret
}

// Len returns the total number of residues in the structure.
func (S *Structure) Len() int {
	n := 0
	for _, ch := range S.chainIDs {
		n += len(S.chains[ch])
	}
	return n
}
