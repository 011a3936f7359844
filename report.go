/*
 * report.go, part of gomodel.
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

import "sync"

// Report is the aggregated result of one analysis run over a structure.
// The finding slices keep the order their checks produced them in
// (structure order). A report is assembled once and read-only afterwards.
type Report struct {
	Structure  *Structure
	Chirality  []ChiralityFinding
	AmideBonds []AmideBondFinding
	Clashes    []ClashFinding
}

// MakeReport assembles the findings of the three checks into a Report. Pure
// assembly: nothing is computed, reordered or filtered here.
func MakeReport(S *Structure, chir []ChiralityFinding, amide []AmideBondFinding, clashes []ClashFinding) *Report {
	return &Report{Structure: S, Chirality: chir, AmideBonds: amide, Clashes: clashes}
}

// Analyze runs the three checks on S and aggregates their findings. The
// checks only read from S and each writes its own slice, so they run
// concurrently without locking. Running Analyze twice on the same structure
// gives identical reports. An empty or nil structure yields an empty report,
// not an error.
func Analyze(S *Structure) *Report {
	var chir []ChiralityFinding
	var amide []AmideBondFinding
	var clashes []ClashFinding
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		chir = Chirality(S)
	}()
	go func() {
		defer wg.Done()
		amide = AmideBonds(S)
	}()
	go func() {
		defer wg.Done()
		clashes = Clashes(S)
	}()
	wg.Wait()
	return MakeReport(S, chir, amide, clashes)
}
