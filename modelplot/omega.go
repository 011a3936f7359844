/*
 * omega.go, part of gomodel
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

//Package modelplot draws plots of goModel analysis results.
package modelplot

import (
	"fmt"
	"image/color"

	"github.com/rmera/gomodel"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicOmegaPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Residue"
	p.Y.Label.Text = "Omega (deg)"
	//Constant Y axis, so plots of different structures compare at a glance.
	p.Y.Min = -180
	p.Y.Max = 180
	p.Add(plotter.NewGrid())
	return p
}

//One scatter series per bond label.
var omegaSeries = []struct {
	name  string
	color color.RGBA
	want  func(f model.AmideBondFinding) bool
}{
	{"trans", color.RGBA{B: 255, A: 255}, func(f model.AmideBondFinding) bool {
		return f.Label == model.AmideTrans
	}},
	{"cis (Pro)", color.RGBA{R: 200, G: 180, A: 255}, func(f model.AmideBondFinding) bool {
		return f.CisProline
	}},
	{"cis", color.RGBA{R: 255, A: 255}, func(f model.AmideBondFinding) bool {
		return f.Label == model.AmideCis && !f.CisProline
	}},
	{"non-planar", color.RGBA{R: 255, G: 130, A: 255}, func(f model.AmideBondFinding) bool {
		return f.Label == model.AmideNonPlanar
	}},
}

// Omega plots the omega dihedral of every classified peptide bond in the
// report against the sequence number of the donor residue, one series (and
// color) per label, and saves the plot to plotname. The format is taken from
// the extension (.png, .svg, .pdf...). Reports without amide findings
// produce an empty, but valid, plot.
func Omega(rep *model.Report, title, plotname string) error {
	if rep == nil {
		return fmt.Errorf("modelplot.Omega: nil report")
	}
	p := basicOmegaPlot(title)
	for _, series := range omegaSeries {
		pts := make(plotter.XYs, 0, len(rep.AmideBonds))
		for _, f := range rep.AmideBonds {
			if !series.want(f) {
				continue
			}
			pts = append(pts, plotter.XY{X: float64(f.Donor.ID), Y: f.Angle})
		}
		if len(pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = series.color
		s.GlyphStyle.Radius = vg.Points(2)
		p.Add(s)
		p.Legend.Add(series.name, s)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, plotname)
}
