/*
 * files_test.go
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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

//atomLine formats one well-aligned ATOM record.
func atomLine(serial int, name, resname, chain string, resseq int, x, y, z float64, element string) string {
	aname := name
	if len(aname) < 4 {
		aname = " " + aname //short names start one column in
	}
	return fmt.Sprintf("ATOM  %5d %-4s %3s %1s%4d    %8.3f%8.3f%8.3f  1.00  0.00          %2s",
		serial, aname, resname, chain, resseq, x, y, z, element)
}

func samplePDB() string {
	lines := []string{
		"HEADER    TEST STRUCTURE",
		atomLine(1, "N", "ALA", "A", 1, 11.104, 6.134, -6.504, "N"),
		atomLine(2, "CA", "ALA", "A", 1, 11.639, 6.071, -5.147, "C"),
		atomLine(3, "C", "ALA", "A", 1, 10.729, 6.768, -4.123, "C"),
		atomLine(4, "O", "ALA", "A", 1, 9.514, 6.613, -4.197, "O"),
		atomLine(5, "CB", "ALA", "A", 1, 11.814, 4.621, -4.741, "C"),
		atomLine(6, "N", "PRO", "A", 2, 11.310, 7.520, -3.185, "N"),
		atomLine(7, "CA", "PRO", "A", 2, 10.553, 8.233, -2.157, "C"),
		"HETATM 1000 ZN    ZN A 200       0.000   0.000   0.000  1.00  0.00          ZN",
		atomLine(1001, "O", "HOH", "A", 300, 5.0, 5.0, 5.0, "O"),
		atomLine(8, "N", "SER", "B", 1, 0.0, 0.0, 0.0, "N"),
		"END",
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestPDBRead(Te *testing.T) {
	S, err := PDBRead(strings.NewReader(samplePDB()))
	if err != nil {
		Te.Fatal(err)
	}
	if S.Len() != 3 {
		Te.Fatalf("expected 3 residues (HETATM and HOH skipped), got %d", S.Len())
	}
	chains := S.Chains()
	if len(chains) != 2 || chains[0] != "A" || chains[1] != "B" {
		Te.Fatalf("chains: %v", chains)
	}
	ala := S.ChainResidues("A")[0]
	if ala.Name != "ALA" || ala.ID != 1 || ala.Len() != 5 {
		Te.Errorf("first residue read wrong: %v with %d atoms", ala, ala.Len())
	}
	ca := ala.Atom("CA")
	if ca == nil {
		Te.Fatal("no CA in the first residue")
	}
	if ca.Symbol != "C" || ca.Vdw != 1.70 {
		Te.Errorf("CA element/radius: %s %v", ca.Symbol, ca.Vdw)
	}
	if ca.Coord.X != 11.639 || ca.Coord.Y != 6.071 || ca.Coord.Z != -5.147 {
		Te.Errorf("CA coordinates: %v", ca.Coord)
	}
	if ca.Residue() != ala {
		Te.Error("back-reference not set by the reader")
	}
	pro := S.ChainResidues("A")[1]
	if pro.Name != "PRO" || pro.ID != 2 {
		Te.Errorf("second residue: %v", pro)
	}
}

//A file without the element column still gets symbols, guessed from names.
func TestPDBReadNoElement(Te *testing.T) {
	line := atomLine(1, "CA", "ALA", "A", 1, 1, 2, 3, "C")[:54]
	S, err := PDBRead(strings.NewReader(line + "\n"))
	if err != nil {
		Te.Fatal(err)
	}
	at := S.Residues()[0].Atom("CA")
	if at.Symbol != "C" {
		Te.Errorf("guessed symbol: %s", at.Symbol)
	}
}

//The element column of PDB files is uppercase; the radii table is not.
func TestPDBReadElementCase(Te *testing.T) {
	line := atomLine(1, "SE", "SEC", "A", 1, 1, 2, 3, "SE")
	S, err := PDBRead(strings.NewReader(line + "\n"))
	if err != nil {
		Te.Fatal(err)
	}
	at := S.Residues()[0].Atom("SE")
	if at.Symbol != "Se" {
		Te.Errorf("element not normalized: %s", at.Symbol)
	}
	if at.Vdw != 1.90 {
		Te.Errorf("selenium radius: %v", at.Vdw)
	}
}

func TestPDBReadMalformed(Te *testing.T) {
	bad := "ATOM      1  N   ALA A   X      11.104\n"
	if _, err := PDBRead(strings.NewReader(bad)); err == nil {
		Te.Error("malformed record must be a hard error at the reading boundary")
	}
}

func TestPDBFileReadGzip(Te *testing.T) {
	dir := Te.TempDir()
	name := filepath.Join(dir, "sample.pdb.gz")
	f, err := os.Create(name)
	if err != nil {
		Te.Fatal(err)
	}
	w := gzip.NewWriter(f)
	if _, err := w.Write([]byte(samplePDB())); err != nil {
		Te.Fatal(err)
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}
	f.Close()
	S, err := PDBFileRead(name)
	if err != nil {
		Te.Fatal(err)
	}
	if S.Len() != 3 {
		Te.Errorf("gzip read: expected 3 residues, got %d", S.Len())
	}
}

func TestPDBReadCustomVdw(Te *testing.T) {
	table := DefaultVdw()
	table["N"] = 2.22
	S, err := PDBRead(strings.NewReader(samplePDB()), table)
	if err != nil {
		Te.Fatal(err)
	}
	if at := S.Residues()[0].Atom("N"); at.Vdw != 2.22 {
		Te.Errorf("injected table not used: %v", at.Vdw)
	}
}
