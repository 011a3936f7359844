/*
 * main.go, part of gomodel.
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

//gomodel checks a protein model in PDB or mmCIF format for geometric
//defects: D-aminoacids, cis and non-planar peptide bonds, and van der Waals
//clashes.
//
//	gomodel [flags] model.{pdb,cif}[.gz]
//
//Each of the three checks can be turned off with -chiralities=false,
//-amides=false or -clashes=false. The tunable tolerances can also be set in
//the environment (or a .env file): GOMODEL_CLASH_TOLERANCE and
//GOMODEL_AMIDE_TOLERANCE.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	model "github.com/rmera/gomodel"
	"github.com/rmera/gomodel/modelplot"
)

var (
	styleBad    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)  //red
	styleWarn   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))            //yellow
	styleNote   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))            //magenta
	styleClash  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))            //cyan
	styleOK     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))            //green
	styleHeader = lipgloss.NewStyle().Bold(true).Underline(true)
)

func main() {
	pymolOut := flag.String("pymol", "", "write a PyMOL script highlighting the defects to this file")
	plotOut := flag.String("plot", "", "write an omega-dihedral plot to this file (format from extension)")
	envFile := flag.String("env", "", "read tolerance settings from this env file")
	doChir := flag.Bool("chiralities", true, "check alpha-carbon chirality")
	doAmides := flag.Bool("amides", true, "check peptide-bond planarity")
	doClashes := flag.Bool("clashes", true, "check van der Waals clashes")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] model.{pdb,cif}[.gz]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			die(err)
		}
	} else {
		godotenv.Load() //a .env in the working directory is optional
	}

	pdbname := flag.Arg(0)
	S, err := model.FileRead(pdbname)
	if err != nil {
		die(err)
	}

	clashTol, err := envFloat("GOMODEL_CLASH_TOLERANCE", model.ClashTolerance)
	if err != nil {
		die(err)
	}
	amideTol, err := envFloat("GOMODEL_AMIDE_TOLERANCE", model.AmideTolerance)
	if err != nil {
		die(err)
	}

	var rep *model.Report
	if *doChir && *doAmides && *doClashes &&
		clashTol == model.ClashTolerance && amideTol == model.AmideTolerance {
		rep = model.Analyze(S)
	} else {
		var chir []model.ChiralityFinding
		var amides []model.AmideBondFinding
		var clashes []model.ClashFinding
		if *doChir {
			chir = model.Chirality(S)
		}
		if *doAmides {
			amides = model.AmideBonds(S, amideTol)
		}
		if *doClashes {
			clashes = model.Clashes(S, clashTol)
		}
		rep = model.MakeReport(S, chir, amides, clashes)
	}

	printReport(rep, pdbname)

	if *pymolOut != "" {
		if err := os.WriteFile(*pymolOut, []byte(model.PymolScript(rep, pdbname)), 0644); err != nil {
			die(err)
		}
	}
	if *plotOut != "" {
		if err := modelplot.Omega(rep, pdbname, *plotOut); err != nil {
			die(err)
		}
	}
	//Defects found are the product, not a failure, so always exit 0 here.
}

func die(err error) {
	fmt.Fprintln(os.Stderr, styleBad.Render("gomodel: "+err.Error()))
	os.Exit(1)
}

//envFloat reads an environment override for a tolerance, falling back to def.
func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number: %q", key, v)
	}
	return f, nil
}

//resid writes a residue the way the report names them, like P121.
func resid(r *model.Residue) string {
	return fmt.Sprintf("%c%03d", r.OneLetter(), r.ID)
}

func printReport(rep *model.Report, pdbname string) {
	fmt.Println(styleHeader.Render(pdbname))
	fmt.Printf("%d residues in %d chains\n\n", rep.Structure.Len(), len(rep.Structure.Chains()))

	var dres, undet []string
	for _, f := range rep.Chirality {
		switch f.Label {
		case model.ChiralD:
			dres = append(dres, resid(f.Res))
		case model.ChiralUndetermined:
			undet = append(undet, resid(f.Res))
		}
	}
	section("D-aminoacids", styleNote, dres)
	section("Undetermined chirality", styleWarn, undet)

	var cis, cispro, nonplanar []string
	for _, f := range rep.AmideBonds {
		pair := fmt.Sprintf("%s-%s", resid(f.Donor), resid(f.Acceptor))
		switch {
		case f.CisProline:
			cispro = append(cispro, pair)
		case f.Label == model.AmideCis:
			cis = append(cis, pair)
		case f.Label == model.AmideNonPlanar:
			nonplanar = append(nonplanar, pair)
		}
	}
	section("Cis amide bonds", styleBad, cis)
	section("Cis prolines", styleWarn, cispro)
	section("Non-planar amide bonds", styleWarn, nonplanar)

	var clashes []string
	for _, f := range rep.Clashes {
		clashes = append(clashes, fmt.Sprintf("%s/%s-%s/%s (%.2f A)",
			resid(f.A.Residue()), f.A.Name, resid(f.B.Residue()), f.B.Name, f.Distance))
	}
	section("VdW clashes", styleClash, clashes)

	if len(dres)+len(undet)+len(cis)+len(cispro)+len(nonplanar)+len(clashes) == 0 {
		fmt.Println(styleOK.Render("No defects found"))
	}
}

func section(title string, style lipgloss.Style, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s (%d):\n", style.Render(title), len(items))
	for _, it := range items {
		fmt.Println("    " + it)
	}
	fmt.Println()
}
