/*
 * pymol.go, part of gomodel.
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

//Translation of findings into PyMOL selection and coloring commands. This is
//a one-way adapter: the analysis knows nothing about PyMOL, it just carries
//enough identity (chain, residue number, atom name) on each finding for the
//selections to be unambiguous.

import (
	"fmt"
	"strings"
)

//pymolResi selects one residue.
func pymolResi(r *Residue) string {
	if r.Chain == "" {
		return fmt.Sprintf("(resi %d)", r.ID)
	}
	return fmt.Sprintf("(chain %s and resi %d)", r.Chain, r.ID)
}

// Selection returns a PyMOL selection string for the residue of the finding.
func (f ChiralityFinding) Selection() string {
	return pymolResi(f.Res)
}

// Selection returns a PyMOL selection string covering both residues of the
// peptide bond.
func (f AmideBondFinding) Selection() string {
	return fmt.Sprintf("%s or %s", pymolResi(f.Donor), pymolResi(f.Acceptor))
}

// Selection returns a PyMOL selection string naming the two clashing atoms.
func (f ClashFinding) Selection() string {
	a := f.A.Residue()
	b := f.B.Residue()
	return fmt.Sprintf("(%s and name %s) or (%s and name %s)",
		strings.Trim(pymolResi(a), "()"), f.A.Name,
		strings.Trim(pymolResi(b), "()"), f.B.Name)
}

//The colors for each kind of defect follow the conventions of the CLI:
//suspect things in red, common-but-notable in yellow.
var pymolGroups = []struct {
	name  string
	color string
	sel   func(*Report) []string
}{
	{"chir_D", "magenta", func(rep *Report) []string {
		var s []string
		for _, f := range rep.Chirality {
			if f.Label == ChiralD {
				s = append(s, f.Selection())
			}
		}
		return s
	}},
	{"chir_undetermined", "grey50", func(rep *Report) []string {
		var s []string
		for _, f := range rep.Chirality {
			if f.Label == ChiralUndetermined {
				s = append(s, f.Selection())
			}
		}
		return s
	}},
	{"amide_cis", "red", func(rep *Report) []string {
		var s []string
		for _, f := range rep.AmideBonds {
			if f.Label == AmideCis && !f.CisProline {
				s = append(s, f.Selection())
			}
		}
		return s
	}},
	{"amide_cis_proline", "yellow", func(rep *Report) []string {
		var s []string
		for _, f := range rep.AmideBonds {
			if f.CisProline {
				s = append(s, f.Selection())
			}
		}
		return s
	}},
	{"amide_non_planar", "orange", func(rep *Report) []string {
		var s []string
		for _, f := range rep.AmideBonds {
			if f.Label == AmideNonPlanar {
				s = append(s, f.Selection())
			}
		}
		return s
	}},
	{"clashes", "cyan", func(rep *Report) []string {
		var s []string
		for _, f := range rep.Clashes {
			s = append(s, f.Selection())
		}
		return s
	}},
}

// PymolScript renders the report as a PyMOL script that loads pdbname,
// shows the model as a cartoon and creates one named, colored selection per
// kind of defect found. Categories without findings produce no selection.
func PymolScript(rep *Report, pdbname string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "load %s\n", pdbname)
	b.WriteString("color white\n")
	b.WriteString("set cartoon_transparency, 0.3\n")
	b.WriteString("hide lines\n")
	b.WriteString("show cartoon\n")
	for _, g := range pymolGroups {
		sels := g.sel(rep)
		if len(sels) == 0 {
			continue
		}
		selstr := strings.Join(sels, " or ")
		fmt.Fprintf(&b, "select %s, %s\n", g.name, selstr)
		fmt.Fprintf(&b, "color %s, %s\n", g.color, g.name)
		fmt.Fprintf(&b, "show sticks, %s\n", g.name)
	}
	b.WriteString("color atomic, not elem C\n")
	b.WriteString("deselect\n")
	return b.String()
}
