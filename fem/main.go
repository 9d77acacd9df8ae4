// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the host time loop that drives boundary conditions and
// relaxation zones as a finite element solver does
package fem

import (
	"math"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/prklVIP/proteus/bcs"
	"github.com/prklVIP/proteus/inp"
	"github.com/prklVIP/proteus/out"
	"github.com/prklVIP/proteus/zone"
)

// Main holds all data for a simulation
type Main struct {
	Sim     *inp.Simulation // simulation data
	Mesh    *inp.Mesh       // mesh of tank
	BcSets  []*bcs.BcSet    // boundary conditions of all faces
	Gen     *zone.Generator // relaxation zones
	Level   *zone.Level     // quadrature data of mesh
	History *out.History    // statistics of zones at output times
	ShowMsg bool            // show messages
	Nsteps  int             // number of time steps performed by Run
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim or .toml) filename including full path
//   verbose     -- show messages
func NewMain(simfilepath string, verbose bool) (o *Main, err error) {

	// read input data
	o = &Main{ShowMsg: verbose, History: out.NewHistory()}
	o.Sim, err = inp.ReadSim(simfilepath)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Simulation file read\n")
	}

	// mesh
	o.Mesh, err = o.Sim.NewTank()
	if err != nil {
		return nil, err
	}
	o.Level = o.Mesh.NewLevel()

	// boundary conditions
	o.BcSets, err = o.Sim.NewBcSets(o.Mesh)
	if err != nil {
		return nil, err
	}

	// relaxation zones
	o.Sim.Data.Verbose = o.Sim.Data.Verbose && verbose
	o.Gen, err = o.Sim.NewGenerator()
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Mesh with %d cells, %d faces with conditions and %d zones allocated\n", len(o.Mesh.Cells), len(o.BcSets), len(o.Gen.Zones))
	}
	return
}

// SetTimeSteps replaces the time control with nsteps steps of size dt
func (o *Main) SetTimeSteps(nsteps int, dt float64) error {
	if nsteps < 1 || dt <= 0 {
		return chk.Err("number of steps and step size must be positive. nsteps=%d, dt=%g", nsteps, dt)
	}
	o.Sim.Control.Dt = dt
	o.Sim.Control.Tf = float64(nsteps) * dt
	if o.Sim.Control.DtOut < dt {
		o.Sim.Control.DtOut = dt
	}
	return nil
}

// Run runs the time loop: the forcing of relaxation zones is computed at every time
// step and results are recorded at output times
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// boundary conditions
	if o.Sim.Data.ListBcs && o.ShowMsg {
		o.listBcs(0)
	}

	// time loop
	ctl := o.Sim.Control
	t := 0.0
	tout := 0.0
	o.Nsteps = 0
	for {

		// forcing of relaxation zones
		o.Level.T = t
		err = o.Gen.Calculate(o.Level)
		if err != nil {
			return
		}

		// output
		if t >= tout-ctl.Dt*1e-8 {
			stats := out.Stats(o.Gen, o.Level)
			o.History.Record(t, stats)
			if o.ShowMsg {
				io.Pf("%s", out.ZoneSummary(t, stats))
			}
			tout += ctl.DtOut
		}

		// next time
		if t >= ctl.Tf-ctl.Dt*1e-8 {
			break
		}
		t = math.Min(t+ctl.Dt, ctl.Tf)
		o.Nsteps++
	}

	// final boundary conditions
	if o.Sim.Data.ListBcs && o.ShowMsg {
		o.listBcs(t)
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// listBcs prints the boundary conditions of all faces at time t
func (o *Main) listBcs(t float64) {
	for _, bc := range o.BcSets {
		var X [][]float64
		if f := o.Mesh.Face(bc.Name); f != nil {
			X = f.X
		}
		io.Pforan("%s", out.BcTable(bc, t, X))
	}
}

// onexit prints final message with simulation and cpu times
func (o *Main) onexit(cputime time.Time, prevErr error) error {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> %d time steps. CPU time = %v\n", o.Nsteps, time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
