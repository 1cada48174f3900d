// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"

	"github.com/cpmech/gobeam/fem"
	"github.com/cpmech/gobeam/inp"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cpmech/gosl/io"
)

// Banner returns the splash banner
func Banner(theme Theme, version string) string {
	title := theme.Title.Render("gobeam " + version)
	sub := theme.Subtitle.Render("linear static analysis of Euler-Bernoulli beams")
	return theme.Banner.Render(lipgloss.JoinVertical(lipgloss.Left, title, sub))
}

// ControlTable returns a table with the input file, output directory and control data
func ControlTable(theme Theme, fnamepath, dirout string, ctrl *inp.Control) string {
	rows := [][]string{
		{"input file", "input", fnamepath},
		{"output directory", "dirout", dirout},
		{"constraint method", "method", ctrl.Method},
		{"penalty factor", "penalty", num(ctrl.Penalty)},
		{"tolerance", "tol", num(ctrl.Tol)},
		{"Cholesky factorisation", "symmetric", io.Sf("%v", ctrl.Symmetric)},
		{"number of workers", "workers", io.Sf("%d", ctrl.Nworkers)},
		{"number of stations", "nstations", io.Sf("%d", ctrl.Nstations)},
	}
	return newTable(theme, []string{"description", "flag", "value"}, rows)
}

// PrintResults prints all results tables
func PrintResults(theme Theme, res *fem.Results) {
	io.Pf("%s\n", ResultsTables(theme, res))
}

// ResultsTables returns the global stiffness matrix, nodal and element results as tables
func ResultsTables(theme Theme, res *fem.Results) string {
	var b strings.Builder

	// global K
	b.WriteString(theme.Title.Render("global stiffness matrix (before constraints)") + "\n")
	hdr := []string{""}
	for j := 0; j < res.Ny; j++ {
		hdr = append(hdr, io.Sf("%d", j))
	}
	rows := make([][]string, res.Ny)
	for i, row := range res.K {
		rows[i] = []string{io.Sf("%d", i)}
		for _, v := range row {
			rows[i] = append(rows[i], num(v))
		}
	}
	b.WriteString(newTable(theme, hdr, rows) + "\n")

	// nodes
	b.WriteString(theme.Title.Render("nodes") + "\n")
	rows = make([][]string, len(res.Nodes))
	for i, n := range res.Nodes {
		rows[i] = []string{io.Sf("%d", n.Id), num(n.X), num(n.Uy), num(n.Rz), num(n.Fy), num(n.Mz)}
	}
	b.WriteString(newTable(theme, []string{"node", "x", "uy", "rz", "Fy (reaction)", "Mz (reaction)"}, rows) + "\n")

	// elements: ends
	b.WriteString(theme.Title.Render("elements") + "\n")
	rows = rows[:0]
	for _, e := range res.Elems {
		last := len(e.X) - 1
		for _, k := range []int{0, last} {
			rows = append(rows, []string{io.Sf("%d", e.Id), num(e.X[k]), num(e.U[k]), num(e.V[k]), num(e.M[k]), num(e.Sig[k]), num(e.Eps[k])})
		}
	}
	b.WriteString(newTable(theme, []string{"elem", "x", "uy", "V", "M", "σ", "ε"}, rows) + "\n")

	// summary
	b.WriteString(theme.Title.Render("summary") + "\n")
	rows = [][]string{
		{"max |uy|", num(res.UyMax), io.Sf("node %d", res.UyMaxNode)},
		{"max |M|", num(res.Mmax), ""},
		{"max |σ|", num(res.SigMax), ""},
		{"Σ Fy", num(res.SumFy), "loads + reactions"},
		{"Σ Mz", num(res.SumMz), "about x = 0"},
		{"rcond", num(res.Rcond), "scaled system"},
	}
	b.WriteString(newTable(theme, []string{"quantity", "value", "note"}, rows))
	return b.String()
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

func newTable(theme Theme, headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.Header
			}
			return theme.Cell
		}).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}

func num(v float64) string {
	return io.Sf("%.6g", v)
}
