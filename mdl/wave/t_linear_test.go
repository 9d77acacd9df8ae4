// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wave

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_linear01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linear01. dispersion relation")

	g := 9.81
	for _, h := range []float64{0.5, 1, 5, 50} {
		for _, T := range []float64{1, 2, 8} {
			ω := 2 * math.Pi / T
			k, err := Dispersion(ω, h, g)
			if err != nil {
				tst.Errorf("Dispersion failed:\n%v", err)
				return
			}
			io.Pforan("h=%4g T=%4g => k=%v\n", h, T, k)
			chk.Float64(tst, "ω² - g・k・tanh(k・h)", 1e-12, ω*ω-g*k*math.Tanh(k*h), 0)
		}
	}

	// deep water limit
	ω := 2 * math.Pi
	k, err := Dispersion(ω, 1000, g)
	if err != nil {
		tst.Errorf("Dispersion failed:\n%v", err)
		return
	}
	chk.Float64(tst, "deep water k", 1e-12, k, ω*ω/g)
}

func Test_linear02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linear02. elevation and velocity")

	wav := &Linear{Height: 0.1, Period: 2, Depth: 1, Level: 1}
	err := wav.Init(1)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Float64(tst, "mwl", 1e-17, wav.Mwl(), 1)

	// crest at t=0, x=0
	x := []float64{0, 1, 0}
	chk.Float64(tst, "η(0,0)", 1e-15, wav.Eta(0, x), 0.05)

	// half period later: trough
	chk.Float64(tst, "η(T/2,0)", 1e-15, wav.Eta(1, x), -0.05)

	// quarter wavelength ahead: zero elevation
	x[0] = wav.Wavelength() / 4
	chk.Float64(tst, "η(0,L/4)", 1e-15, wav.Eta(0, x), 0)

	// velocity at crest on the still water level
	u := make([]float64, 3)
	x[0] = 0
	wav.U(u, 0, x)
	aω := 0.05 * wav.Omega
	chk.Array(tst, "u @ crest", 1e-15, u, []float64{aω / math.Tanh(wav.K), 0, 0})

	// velocity at seabed is horizontal
	x[0], x[1] = 0.3, 0
	wav.U(u, 0.7, x)
	chk.Float64(tst, "v @ seabed", 1e-15, u[1], 0)
}

func Test_linear03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linear03. direction and errors")

	wav := &Linear{Height: 0.2, Period: 3, Depth: 2, Dir: []float64{1, 1, 5}}
	err := wav.Init(2)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	u := make([]float64, 3)
	wav.U(u, 0, []float64{0, 0, 0})
	chk.Float64(tst, "ux == uy", 1e-15, u[0], u[1])

	if err = (&Linear{Height: 0.2, Period: 3, Depth: 2, Dir: []float64{0, 0, 1}}).Init(2); err == nil {
		tst.Errorf("vertical direction of propagation should have failed\n")
	}
	if err = (&Linear{Height: 0.2, Period: 0, Depth: 2}).Init(2); err == nil {
		tst.Errorf("zero period should have failed\n")
	}
	if err = (&Linear{Height: 0.2, Period: 1, Depth: 2}).Init(3); err == nil {
		tst.Errorf("invalid vertical axis should have failed\n")
	}

	// factory
	mdl, err := New("linear", &Prms{Height: 0.2, Period: 3, Depth: 2, Level: 2}, 1)
	if err != nil {
		tst.Errorf("cannot allocate linear model: %v\n", err)
		return
	}
	lin, ok := mdl.(*Linear)
	if !ok {
		tst.Errorf("factory returned wrong type %T\n", mdl)
		return
	}
	chk.Float64(tst, "K", 1e-15, lin.K, wav.K)
	chk.Float64(tst, "mwl", 1e-17, lin.Mwl(), 2)
	if _, err = New("linear", &Prms{Height: 0.2, Period: 3}, 1); err == nil {
		tst.Errorf("linear model without depth should have failed\n")
	}
	if _, err = New("stokes5", nil, 1); err == nil {
		tst.Errorf("unknown model should not be available\n")
	}
	mdl, err = New("still", &Prms{Level: 0.7}, 1)
	if err != nil {
		tst.Errorf("cannot allocate still model: %v\n", err)
		return
	}
	chk.Float64(tst, "still: mwl", 1e-17, mdl.Mwl(), 0.7)
	chk.Strings(tst, "names", Names(), []string{"linear", "still"})
}
