// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/prklVIP/proteus/bcs"
	"github.com/prklVIP/proteus/mdl/wave"
	"github.com/prklVIP/proteus/zone"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// deep implements wave.Model with a uniform current in deep water
type deep struct{}

func (o deep) Mwl() float64                       { return 10 }
func (o deep) Eta(t float64, x []float64) float64 { return 0 }

func (o deep) U(u []float64, t float64, x []float64) {
	u[0], u[1], u[2] = 3, 4, 0
}

// newGenerator returns a generator with absorption (1), generation (2) and porous (7) zones
func newGenerator(tst *testing.T) *zone.Generator {
	waves, err := wave.NewBlender(deep{}, nil, wave.DefaultOpts(2))
	if err != nil {
		tst.Fatalf("NewBlender failed: %v\n", err)
	}
	abs, err := zone.New(zone.Absorption, []float64{0, 0}, []float64{1, 0}, 2, nil)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	gen, err := zone.New(zone.Generation, []float64{4, 0}, []float64{-1, 0}, 1, waves)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	por, err := zone.New(zone.Porous, []float64{8, 0}, []float64{1, 0}, 0.3, nil)
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	g, err := zone.NewGenerator(map[int]*zone.Zone{1: abs, 2: gen, 7: por}, 2)
	if err != nil {
		tst.Fatalf("NewGenerator failed: %v\n", err)
	}
	if err = g.Init(); err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	return g
}

func Test_stats01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stats01. statistics of zones")

	g := newGenerator(tst)
	lev := zone.NewLevel(3, 2)
	lev.MatTypes = []int{1, -1, 2}
	copy(lev.X, []float64{
		0.5, 1, 0, 1.5, 1, 0,
		2.5, 1, 0, 3.0, 1, 0,
		4.5, 1, 0, 5.0, 1, 0,
	})
	if err := g.Calculate(lev); err != nil {
		tst.Errorf("Calculate failed: %v\n", err)
		return
	}

	stats := Stats(g, lev)
	if len(stats) != 3 {
		tst.Errorf("there should be 3 zones. %d is incorrect\n", len(stats))
		return
	}
	chk.Ints(tst, "ids", []int{stats[0].Id, stats[1].Id, stats[2].Id}, []int{1, 2, 7})
	chk.Ints(tst, "npts", []int{stats[0].Npts, stats[1].Npts, stats[2].Npts}, []int{2, 2, 0})

	s := stats[0]
	chk.Float64(tst, "abs: phimin", 1e-15, s.PhiMin, -1.5)
	chk.Float64(tst, "abs: phimax", 1e-15, s.PhiMax, -0.5)
	chk.Float64(tst, "abs: umax", 1e-15, s.SpeedMax, 0)

	s = stats[1]
	chk.Float64(tst, "gen: phimin", 1e-15, s.PhiMin, 0.5)
	chk.Float64(tst, "gen: phimax", 1e-15, s.PhiMax, 1)
	chk.Float64(tst, "gen: umax", 1e-15, s.SpeedMax, 5)
	chk.Float64(tst, "gen: umean", 1e-15, s.SpeedMean, 5)
	chk.Float64(tst, "gen: Get(umean)", 1e-15, s.Get("umean"), 5)
	chk.Float64(tst, "gen: Get(npts)", 1e-15, s.Get("npts"), 2)

	s = stats[2]
	chk.Float64(tst, "por: phimax", 1e-17, s.PhiMax, 0)

	l := ZoneSummary(0, stats)
	io.Pf("%s", l)
	for _, word := range []string{"absorption", "generation", "porous", "phimin"} {
		if !strings.Contains(l, word) {
			tst.Errorf("summary should contain %q\n", word)
		}
	}

	// history
	hist := NewHistory()
	hist.Record(0, stats)
	lev.T = 1
	if err := g.Calculate(lev); err != nil {
		tst.Errorf("Calculate failed: %v\n", err)
		return
	}
	hist.Record(1, Stats(g, lev))
	chk.Array(tst, "times", 1e-17, hist.Times, []float64{0, 1})
	chk.Array(tst, "umax of gen", 1e-15, hist.GetRes("umax", 2, -1), []float64{5, 5})
	chk.Array(tst, "phimin of abs @ 1", 1e-15, hist.GetRes("phimin", 1, 1), []float64{-1.5})
	if res := hist.GetRes("phimin", 1, 5); res != nil {
		tst.Errorf("there should be no results at index 5\n")
	}
	if res := hist.GetRes("phimin", 3, -1); len(res) != 0 {
		tst.Errorf("there should be no results of zone 3\n")
	}
}

func Test_bctable01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bctable01. table of boundary conditions")

	bc, err := bcs.NewBcSet("y+", nil, []float64{0, 1, 0})
	if err != nil {
		tst.Errorf("NewBcSet failed: %v\n", err)
		return
	}
	if err = bc.SetAtmosphere(nil, 1); err != nil {
		tst.Errorf("SetAtmosphere failed: %v\n", err)
		return
	}
	l := BcTable(bc, 0, [][]float64{{0, 1, 0}, {1, 1, 0}})
	io.Pf("%s", l)
	lines := strings.Split(strings.TrimSpace(l), "\n")
	chk.Int(tst, "number of lines", len(lines), 1+len(bc.Keys()))
	if !strings.Contains(lines[0], "OpenAir") {
		tst.Errorf("header should contain the name of the preset: %q\n", lines[0])
	}
	for _, line := range lines[1:] {
		if strings.HasPrefix(strings.TrimSpace(line), "u_dirichlet") {
			tst.Errorf("u_dirichlet should not be listed\n")
		}
		if strings.HasPrefix(strings.TrimSpace(line), "vof_dirichlet") && !strings.Contains(line, "1") {
			tst.Errorf("vof_dirichlet should be 1: %q\n", line)
		}
	}

	// partially constrained
	if err = bc.SetTwoPhaseVelocityInlet([]float64{0.5, 0, 0}, 0.5, 1, 1, 0); err != nil {
		tst.Errorf("SetTwoPhaseVelocityInlet failed: %v\n", err)
		return
	}
	l = BcTable(bc, 0, [][]float64{{0, 0.2, 0}, {0, 0.8, 0}})
	io.Pf("%s", l)
	found := false
	for _, line := range strings.Split(l, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "u_dirichlet") {
			found = true
			if !strings.HasSuffix(line, "-") {
				tst.Errorf("u_dirichlet should be unconstrained above the water: %q\n", line)
			}
		}
	}
	if !found {
		tst.Errorf("u_dirichlet should be listed\n")
	}
}
