/*
 * cif.go, part of gomodel.
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
	"strconv"
	"strings"
)

//mmCIF reading. Only the atom_site loop is interpreted; every other data
//block of the file is passed over. The loop header gives the column order,
//so files with any item arrangement read the same.

//cifSplit splits a data row into its fields. Values with blanks come quoted
//(primed atom names like "O5'" do), so a plain strings.Fields won't do.
func cifSplit(line string) []string {
	var ret []string
	i := 0
	for i < len(line) {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) {
			break
		}
		if line[i] == '\'' || line[i] == '"' {
			q := line[i]
			j := i + 1
			for j < len(line) && line[j] != q {
				j++
			}
			ret = append(ret, line[i+1:j])
			i = j + 1
			continue
		}
		j := i
		for j < len(line) && line[j] != ' ' && line[j] != '\t' {
			j++
		}
		ret = append(ret, line[i:j])
		i = j
	}
	return ret
}

//readCIFRow turns one atom_site data row into an atomRecord, given the
//column positions from the loop header. HETATM rows give a nil record, no
//error. The second return is the model number field, for the caller to stop
//at the first model.
func readCIFRow(fields []string, cols map[string]int) (*atomRecord, string, error) {
	get := func(item string) string {
		i, ok := cols[item]
		if !ok || i >= len(fields) {
			return ""
		}
		v := fields[i]
		if v == "." || v == "?" {
			return ""
		}
		return v
	}
	//author items when present, data-collection ones otherwise
	pick := func(auth, label string) string {
		if v := get(auth); v != "" {
			return v
		}
		return get(label)
	}
	if get("group_PDB") != "ATOM" {
		return nil, "", nil
	}
	ret := new(atomRecord)
	ret.name = pick("auth_atom_id", "label_atom_id")
	ret.resName = pick("auth_comp_id", "label_comp_id")
	ret.chain = pick("auth_asym_id", "label_asym_id")
	seq := pick("auth_seq_id", "label_seq_id")
	var err error
	ret.resSeq, err = strconv.Atoi(seq)
	if err != nil {
		return nil, "", CError{fmt.Sprintf("Bad residue number %q in atom_site row %v", seq, fields), []string{"readCIFRow"}}
	}
	ret.altLoc = ' '
	if al := get("label_alt_id"); al != "" {
		ret.altLoc = al[0]
	}
	ret.iCode = ' '
	if ic := get("pdbx_PDB_ins_code"); ic != "" {
		ret.iCode = ic[0]
	}
	coords := [3]float64{}
	for i, item := range []string{"Cartn_x", "Cartn_y", "Cartn_z"} {
		field := get(item)
		coords[i], err = strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, "", CError{fmt.Sprintf("Bad coordinate %q in atom_site row %v", field, fields), []string{"readCIFRow"}}
		}
	}
	ret.coord.X, ret.coord.Y, ret.coord.Z = coords[0], coords[1], coords[2]
	ret.symbol = normalizeSymbol(get("type_symbol"))
	if ret.symbol == "" {
		ret.symbol, err = symbolFromName(ret.name)
		if err != nil {
			return nil, "", errDecorate(err, "readCIFRow")
		}
	}
	return ret, get("pdbx_PDB_model_num"), nil
}

// CIFRead reads a structure in mmCIF format from r, taking the atoms from
// the atom_site loop. The same things are read and skipped as for PDBRead:
// ATOM rows of the first model, no solvent or capping groups, first
// alternate location only. Van der Waals radii are assigned from table, or
// from the default table if none is given.
func CIFRead(r io.Reader, table ...VdwTable) (*Structure, error) {
	b := newStructureBuilder(table)
	var cols map[string]int
	firstModel := ""
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "_atom_site.") {
			if cols == nil {
				cols = make(map[string]int)
			}
			cols[strings.TrimPrefix(line, "_atom_site.")] = len(cols)
			continue
		}
		if cols == nil {
			continue //still before the atom_site loop
		}
		if line == "" || line == "loop_" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "_") {
			break //the loop ended
		}
		at, mdl, err := readCIFRow(cifSplit(line), cols)
		if err != nil {
			return nil, errDecorate(err, "CIFRead")
		}
		if at == nil { //a HETATM row
			continue
		}
		if firstModel == "" {
			firstModel = mdl
		}
		if mdl != firstModel {
			break //only the first model of multi-model files
		}
		b.add(at)
	}
	if err := scanner.Err(); err != nil {
		return nil, CError{fmt.Sprintf("%s: %s", ErrPDBRead, err.Error()), []string{"CIFRead"}}
	}
	if cols == nil {
		return nil, CError{"No atom_site loop in the mmCIF input", []string{"CIFRead"}}
	}
	return b.S, nil
}
