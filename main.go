// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gobeam/fem"
	"github.com/cpmech/gobeam/inp"
	"github.com/cpmech/gobeam/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

const version = "v1"

// options holds the command line options
type options struct {
	fnamepath string // input file
	dirout    string // output directory
	verbose   bool   // show messages
	showMat   bool   // print K, F and Y while running
	enc       string // encoding of results file
	png       bool   // save PNG diagrams
	html      bool   // save HTML charts
	ctrl      inp.Control
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:          "gobeam",
		Short:        "gobeam -- linear static analysis of beams using the finite element method",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &o)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.fnamepath, "input", "i", "", "input file (.txt or .yaml)")
	flags.StringVar(&o.dirout, "dirout", "/tmp/gobeam", "directory for output files")
	flags.BoolVar(&o.verbose, "verbose", true, "show messages")
	flags.BoolVar(&o.showMat, "showmat", false, "print global matrix and vectors while running")
	flags.StringVar(&o.enc, "enc", fem.EncYaml, "encoding of results file: yaml, json or gob")
	flags.BoolVar(&o.png, "png", false, "save PNG diagrams")
	flags.BoolVar(&o.html, "html", false, "save HTML charts")
	flags.StringVar(&o.ctrl.Method, "method", inp.MethodElimination, "constraint imposition method: elimination or penalty")
	flags.Float64Var(&o.ctrl.Penalty, "penalty", 1e8, "penalty factor")
	flags.Float64Var(&o.ctrl.Tol, "tol", 1e-12, "smallest admissible reciprocal condition number")
	flags.BoolVar(&o.ctrl.Symmetric, "symmetric", false, "use Cholesky factorisation instead of LU")
	flags.IntVar(&o.ctrl.Nworkers, "workers", 1, "number of goroutines to compute element matrices")
	flags.IntVar(&o.ctrl.Nstations, "nstations", 11, "number of stations along each element")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func run(cmd *cobra.Command, o *options) (err error) {

	// message
	io.Verbose = o.verbose
	theme := out.DefaultTheme()
	io.Pf("%s\n", out.Banner(theme, version))

	// read input data
	mdl, err := inp.ReadModel(o.fnamepath)
	if err != nil {
		return
	}

	// control: flags override the values in the input file
	if mdl.Control == nil {
		mdl.Control = inp.DefaultControl()
	}
	ctrl := mdl.Control
	flags := cmd.Flags()
	if flags.Changed("method") {
		ctrl.Method = o.ctrl.Method
	}
	if flags.Changed("penalty") {
		ctrl.Penalty = o.ctrl.Penalty
	}
	if flags.Changed("tol") {
		ctrl.Tol = o.ctrl.Tol
	}
	if flags.Changed("symmetric") {
		ctrl.Symmetric = o.ctrl.Symmetric
	}
	if flags.Changed("workers") {
		ctrl.Nworkers = o.ctrl.Nworkers
	}
	if flags.Changed("nstations") {
		ctrl.Nstations = o.ctrl.Nstations
	}
	ctrl.SetDefault()

	io.Pf("%s\n", out.ControlTable(theme, o.fnamepath, o.dirout, ctrl))

	// analysis
	analysis, err := fem.NewFEM(mdl, ctrl, &out.Console{ShowMat: o.showMat})
	if err != nil {
		return
	}
	res, err := analysis.Run()
	if err != nil {
		return
	}

	// output
	out.PrintResults(theme, res)
	_, err = out.SaveResults(o.dirout, mdl.Fnkey, o.enc, res)
	if err != nil {
		return chk.Err("cannot save results:\n%v", err)
	}
	if o.png {
		fns, err := out.PlotDiagrams(o.dirout, mdl.Fnkey, res)
		if err != nil {
			return chk.Err("cannot plot diagrams:\n%v", err)
		}
		for _, fn := range fns {
			io.Pfgreen("file <%s> written\n", fn)
		}
	}
	if o.html {
		fn, err := out.SaveHtml(o.dirout, mdl.Fnkey, res)
		if err != nil {
			return chk.Err("cannot save charts:\n%v", err)
		}
		io.Pfgreen("file <%s> written\n", fn)
	}
	return
}
