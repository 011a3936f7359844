/*
 * doc.go, part of gomodel.
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

/*Package model checks protein structural models for geometric defects that make
them physically implausible. It works on an in-memory representation of
chains, residues and atoms with cartesian coordinates, normally read from
a PDB file.



	**goModel capabilities**


    Reads PDB and mmCIF files, plain or gzip-compressed, into a
	chain/residue/atom structure.

    Assigns L/D chirality to every aminoacidic residue with a complete
	alpha-carbon stereocenter, from the sign of a triple product over
	the substituents. Residues with missing atoms, or degenerate,
	near-planar geometry, are labeled as undetermined instead of
	producing an error.

    Classifies every peptide bond as cis, trans or non-planar from the
	CA-C-N-CA dihedral, distinguishing the (chemically common) cis bonds
	to proline from other cis bonds.

    Detects van der Waals clashes between non-bonded atoms, pruning the
	pairwise search with a k-d tree so large structures don't pay the
	full quadratic cost.

    Aggregates the three checks into a single immutable Report. The
	checks share no state and run concurrently.

    Translates findings into PyMOL selection commands (pymol.go) and
	omega-dihedral plots (subpackage modelplot), so defects can be
	inspected visually.

The analysis functions never mutate the Structure, and none of them is
fatal: incomplete input yields undetermined or skipped findings, and an
empty structure yields an empty report. Only the file-reading layer can
return hard errors.
*/
package model
