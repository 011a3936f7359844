/*
 * atomicdata.go, part of gomodel.
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

//A map for assigning van der Waals radii to elements
//Values from 10.1021/j100785a001 and 10.1021/jp8111556
//metal radii from 10.1023/A:1011625728803
//Note that just common "bio-elements" are present
var symbolVdwrad = map[string]float64{
	"H":  1.10,
	"C":  1.70,
	"O":  1.52,
	"N":  1.55,
	"P":  1.80,
	"S":  1.80,
	"Se": 1.90,
	"K":  2.75,
	"Ca": 2.31,
	"Mg": 1.73,
	"Cl": 1.75,
	"Na": 2.27,
	"Cu": 2.00,
	"Zn": 2.02,
	"Co": 1.95,
	"Fe": 1.96,
	"Mn": 1.96,
	"Cr": 1.97,
	"Si": 2.10,
	"Be": 1.53,
	"F":  1.47,
	"Br": 1.83,
	"I":  1.98,
}

// VdwDefault is the radius assigned to elements missing from the table.
// A generic heavy-atom value, so unknown elements still take part in the
// clash check instead of silently never clashing.
const VdwDefault = 1.70

// VdwTable maps element symbols to van der Waals radii, in Angstroms.
// The table is built once, when the structure is read, and only consulted
// afterwards. It is passed to the reading functions rather than used as
// ambient global state.
type VdwTable map[string]float64

// DefaultVdw returns a fresh copy of the built-in radii table. The copy can
// be amended (say, with a radius for an exotic element) before building a
// structure with it, without affecting other structures.
func DefaultVdw() VdwTable {
	ret := make(VdwTable, len(symbolVdwrad))
	for k, v := range symbolVdwrad {
		ret[k] = v
	}
	return ret
}

// Radius returns the van der Waals radius for the element symbol, falling
// back to VdwDefault when the table doesn't have it.
func (T VdwTable) Radius(symbol string) float64 {
	if r, ok := T[symbol]; ok {
		return r
	}
	return VdwDefault
}

//A map between 3-letters name for aminoacidic residues to the corresponding 1-letter names.
var three2OneLetter = map[string]byte{
	"SER": 'S',
	"THR": 'T',
	"ASN": 'N',
	"GLN": 'Q',
	"SEC": 'U', //Selenocysteine!
	"CYS": 'C',
	"GLY": 'G',
	"PRO": 'P',
	"ALA": 'A',
	"VAL": 'V',
	"ILE": 'I',
	"LEU": 'L',
	"MET": 'M',
	"PHE": 'F',
	"TYR": 'Y',
	"TRP": 'W',
	"ARG": 'R',
	"HIS": 'H',
	"LYS": 'K',
	"ASP": 'D',
	"GLU": 'E',
}

// IsAminoAcid reports whether the 3-letter code names a standard aminoacid.
func IsAminoAcid(resname string) bool {
	_, ok := three2OneLetter[resname]
	return ok
}

//Residues that are read in PDB files but are not part of the model proper:
//solvent and capping groups. They are skipped when building a Structure.
var skipResidues = map[string]bool{
	"HOH": true,
	"WAT": true,
	"ACE": true,
	"NME": true,
}

//The substituents of the alpha-carbon stereocenter for each residue type, in
//descending priority. This is a fixed, per-type convention, not a CIP
//ranking computed from atomic numbers: for the standard aminoacids both
//agree, and the table keeps the geometric part of the chirality check
//independent from how priorities are obtained (cf. SubstituentRanker).
//Glycine is deliberately absent: its alpha carbon is not a stereocenter.
var chiralSubstituents = map[string][3]string{
	"ALA": {"N", "C", "CB"},
	"ARG": {"N", "C", "CB"},
	"ASN": {"N", "C", "CB"},
	"ASP": {"N", "C", "CB"},
	"CYS": {"N", "C", "CB"},
	"GLN": {"N", "C", "CB"},
	"GLU": {"N", "C", "CB"},
	"HIS": {"N", "C", "CB"},
	"ILE": {"N", "C", "CB"},
	"LEU": {"N", "C", "CB"},
	"LYS": {"N", "C", "CB"},
	"MET": {"N", "C", "CB"},
	"PHE": {"N", "C", "CB"},
	"PRO": {"N", "C", "CB"},
	"SEC": {"N", "C", "CB"},
	"SER": {"N", "C", "CB"},
	"THR": {"N", "C", "CB"},
	"TRP": {"N", "C", "CB"},
	"TYR": {"N", "C", "CB"},
	"VAL": {"N", "C", "CB"},
}
