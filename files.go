/*
 * files.go, part of gomodel.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/gonum/spatial/r3"
)

//PDB reading. Only the parts of the format the analysis needs: ATOM records
//of the first model. HETATM records, solvent and capping residues are not
//part of the model proper and are skipped. The mmCIF reader lives in cif.go;
//both feed the same structureBuilder below.

//This tries to guess a chemical element symbol from a PDB atom name, for
//files that lack the element column. Mostly based on AMBER names. It only
//deals with common bio-elements.
func symbolFromName(name string) (string, error) {
	symbol := ""
	if len(name) == 4 || name[0] == 'H' { //I thiiink only Hs can have 4-char names in amber.
		symbol = "H"
	} else if name[0] == 'C' {
		switch name {
		case "CU":
			symbol = "Cu"
		case "CO":
			symbol = "Co"
		case "CL":
			symbol = "Cl"
		case "CA": //the alpha carbon, not calcium, in an ATOM record
			symbol = "C"
		default:
			symbol = "C"
		}
	} else if name[0] == 'N' {
		if name == "NA" {
			symbol = "Na"
		} else {
			symbol = "N"
		}
	} else if name[0] == 'O' {
		symbol = "O"
	} else if name[0] == 'P' {
		symbol = "P"
	} else if name[0] == 'S' {
		if name == "SE" {
			symbol = "Se"
		} else {
			symbol = "S"
		}
	} else if strings.HasPrefix(name, "ZN") {
		symbol = "Zn"
	}
	if symbol == "" {
		return symbol, CError{fmt.Sprintf("Could not guess an element symbol from the atom name %s", name), []string{"symbolFromName"}}
	}
	return symbol, nil
}

//normalizeSymbol brings an element field as written in coordinate files
//("SE", "se", " C") to the capitalization the radii table uses ("Se", "C").
//PDB element columns are uppercase, so without this, two-letter elements
//would silently miss the table and get the default radius.
func normalizeSymbol(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

//atomRecord is one parsed per-atom record, whatever the format it came from.
type atomRecord struct {
	name    string
	altLoc  byte
	resName string
	chain   string
	resSeq  int
	iCode   byte
	coord   r3.Vec
	symbol  string
}

//structureBuilder assembles a Structure out of atom records in file order.
//The format readers only differ in how they extract the records; the
//residue grouping, the skips and the radius assignment are the same for all
//of them and live here.
type structureBuilder struct {
	vdw     VdwTable
	S       *Structure
	current *Residue
	currkey string
}

func newStructureBuilder(table []VdwTable) *structureBuilder {
	vdw := DefaultVdw()
	if len(table) > 0 && table[0] != nil {
		vdw = table[0]
	}
	return &structureBuilder{vdw: vdw, S: NewStructure()}
}

//add appends one record, opening a new residue whenever the record doesn't
//belong to the current one. Solvent/capping residues and alternate locations
//other than the first are dropped here.
func (b *structureBuilder) add(at *atomRecord) {
	if at.altLoc != ' ' && at.altLoc != 'A' {
		return
	}
	if skipResidues[at.resName] {
		return
	}
	key := fmt.Sprintf("%s|%d|%c|%s", at.chain, at.resSeq, at.iCode, at.resName)
	if b.current == nil || key != b.currkey {
		b.current = NewResidue(at.resName, at.resSeq, at.chain)
		b.S.AddResidue(b.current)
		b.currkey = key
	}
	b.current.AddAtom(&Atom{
		Name:   at.name,
		Symbol: at.symbol,
		Vdw:    b.vdw.Radius(at.symbol),
		Coord:  at.coord,
	})
}

func readPDBLine(line string) (*atomRecord, error) {
	if len(line) < 54 {
		return nil, CError{fmt.Sprintf("ATOM record too short: %q", line), []string{"readPDBLine"}}
	}
	ret := new(atomRecord)
	ret.name = strings.TrimSpace(line[12:16])
	ret.altLoc = line[16]
	ret.resName = strings.TrimSpace(line[17:20])
	ret.chain = strings.TrimSpace(line[21:22])
	ret.iCode = line[26]
	var err error
	ret.resSeq, err = strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return nil, CError{fmt.Sprintf("Bad residue number in record %q", line), []string{"readPDBLine"}}
	}
	coords := [3]float64{}
	for i := 0; i < 3; i++ {
		field := line[30+8*i : 38+8*i]
		coords[i], err = strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, CError{fmt.Sprintf("Bad coordinate %q in record %q", field, line), []string{"readPDBLine"}}
		}
	}
	ret.coord = r3.Vec{X: coords[0], Y: coords[1], Z: coords[2]}
	if len(line) >= 78 {
		ret.symbol = normalizeSymbol(line[76:78])
	}
	if ret.symbol == "" {
		ret.symbol, err = symbolFromName(ret.name)
		if err != nil {
			return nil, errDecorate(err, "readPDBLine")
		}
	}
	return ret, nil
}

// PDBRead reads a structure in PDB format from r. Only ATOM records of the
// first model are used; HETATM records, solvent (HOH, WAT) and capping
// groups (ACE, NME) are skipped, as are alternate locations other than the
// first. Van der Waals radii are assigned from table, or from the default
// table if none is given.
func PDBRead(r io.Reader, table ...VdwTable) (*Structure, error) {
	b := newStructureBuilder(table)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "ENDMDL") {
			break //only the first model of multi-model files
		}
		if !strings.HasPrefix(line, "ATOM  ") {
			continue
		}
		at, err := readPDBLine(line)
		if err != nil {
			return nil, errDecorate(err, "PDBRead")
		}
		b.add(at)
	}
	if err := scanner.Err(); err != nil {
		return nil, CError{fmt.Sprintf("%s: %s", ErrPDBRead, err.Error()), []string{"PDBRead"}}
	}
	return b.S, nil
}

//fileRead opens name, transparently decompressing gzip, and hands the stream
//to the given format reader.
func fileRead(name string, read func(io.Reader, ...VdwTable) (*Structure, error), caller string, table ...VdwTable) (*Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, CError{err.Error(), []string{"os.Open", caller}}
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, CError{err.Error(), []string{"gzip.NewReader", caller}}
		}
		defer gz.Close()
		r = gz
	}
	ret, err := read(r, table...)
	if err != nil {
		return nil, errDecorate(err, caller+" "+name)
	}
	return ret, nil
}

// PDBFileRead reads a structure from the PDB file pdbname, which may be
// gzip-compressed (".gz" suffix). See PDBRead for what is read and skipped.
func PDBFileRead(pdbname string, table ...VdwTable) (*Structure, error) {
	return fileRead(pdbname, PDBRead, "PDBFileRead", table...)
}

// CIFFileRead reads a structure from the mmCIF file cifname, which may be
// gzip-compressed (".gz" suffix). See CIFRead for what is read and skipped.
func CIFFileRead(cifname string, table ...VdwTable) (*Structure, error) {
	return fileRead(cifname, CIFRead, "CIFFileRead", table...)
}

// FileRead reads a structure from name, picking the format from the file
// name: ".cif" or ".mmcif" is read as mmCIF, anything else as PDB. A final
// ".gz" means gzip compression, for either format.
func FileRead(name string, table ...VdwTable) (*Structure, error) {
	base := strings.TrimSuffix(name, ".gz")
	if strings.HasSuffix(base, ".cif") || strings.HasSuffix(base, ".mmcif") {
		return CIFFileRead(name, table...)
	}
	return PDBFileRead(name, table...)
}
