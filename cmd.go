// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/prklVIP/proteus/bcs"
	"github.com/prklVIP/proteus/fem"
	"github.com/prklVIP/proteus/mdl/wave"
	"github.com/prklVIP/proteus/out"
	"github.com/spf13/cobra"
)

// Root is the main command
var Root = &cobra.Command{
	Use:   "gowaves",
	Short: "Boundary conditions and relaxation zones for two-phase wave flows.",
	Long: `gowaves builds the boundary conditions and relaxation zones of a numerical
wave tank described in a .sim (JSON) or .toml file and drives them along time
as the host finite element solver would.`,
	SilenceUsage: true,
}

// runCmd runs a simulation
var runCmd = &cobra.Command{
	Use:   "run [flags] file",
	Short: "Run the time loop of a simulation file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		steps, _ := cmd.Flags().GetInt("steps")
		dt, _ := cmd.Flags().GetFloat64("dt")
		dbpath, _ := cmd.Flags().GetString("db")
		return run(args[0], verbose, steps, dt, dbpath)
	},
}

// presetsCmd lists presets
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the presets of boundary conditions and the wave models.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Print(presetsTable())
	},
}

func init() {
	runCmd.Flags().BoolP("verbose", "v", false, "show messages")
	runCmd.Flags().IntP("steps", "n", 0, "number of time steps; 0 => use time control of file")
	runCmd.Flags().Float64("dt", 0, "time step size; used with --steps")
	runCmd.Flags().String("db", "", "sqlite database to save the history of zones")
	Root.AddCommand(runCmd, presetsCmd)
}

// run runs the simulation in file
//  dbpath -- sqlite database to save results; empty => do not save
func run(fnamepath string, verbose bool, steps int, dt float64, dbpath string) error {

	// message
	if verbose {
		io.PfWhite("\ngowaves -- two-phase wave boundary conditions and relaxation zones\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"number of steps", "steps", steps,
			"time step size", "dt", dt,
			"database", "dbpath", dbpath,
		))
	}

	// allocate and run
	analysis, err := fem.NewMain(fnamepath, verbose)
	if err != nil {
		return err
	}
	if steps > 0 {
		if dt <= 0 {
			dt = analysis.Sim.Control.Dt
		}
		if err = analysis.SetTimeSteps(steps, dt); err != nil {
			return err
		}
	}
	if err = analysis.Run(); err != nil {
		return err
	}
	if dbpath != "" {
		return out.SaveHistory(dbpath, analysis.Sim.Key, analysis.History)
	}
	return nil
}

// presetsTable returns a table with all presets, their aliases and all wave models
func presetsTable() string {
	aliases := make(map[bcs.Preset][]string)
	for name, p := range bcs.PresetNameMap {
		aliases[p] = append(aliases[p], name)
	}
	l := "presets:\n"
	for p := bcs.None; p <= bcs.HydrostaticPressureOutletWithDepth; p++ {
		sort.Strings(aliases[p])
		l += io.Sf("  %-36s%s\n", p, strings.Join(aliases[p], ", "))
	}
	l += io.Sf("wave models:\n  %s\n", strings.Join(wave.Names(), ", "))
	return l
}
