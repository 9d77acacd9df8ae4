// Copyright 2026 The Proteus Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wave

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Linear implements a monochromatic wave according to linear (Airy) wave theory:
//
//   η(t,x) = a・cos(θ)      with   a = H/2   and   θ = k・(d・x) - ω・t + ϕ
//
//   u_h = a・ω・cosh(k・zb)/sinh(k・h)・cos(θ)    (along d)
//   u_v = a・ω・sinh(k・zb)/sinh(k・h)・sin(θ)    (along the vertical axis)
//
//  where zb is the elevation above the seabed, h is the depth and ω² = g・k・tanh(k・h)
type Linear struct {

	// input
	Height float64   // wave height H (crest to trough)
	Period float64   // wave period T
	Depth  float64   // still water depth h
	Level  float64   // mean water level (elevation of still surface)
	Dir    []float64 // direction of propagation
	Phase  float64   // phase ϕ [rad]
	Grav   float64   // gravity acceleration (positive); 0 => 9.81

	// derived
	Omega float64    // angular frequency
	K     float64    // wave number
	vert  int        // index of vertical axis
	dir   [3]float64 // unit direction of propagation
}

// add model to factory
func init() {
	allocators["linear"] = func(prms *Prms, vert int) (Model, error) {
		o := &Linear{
			Height: prms.Height,
			Period: prms.Period,
			Depth:  prms.Depth,
			Level:  prms.Level,
			Dir:    prms.Dir,
			Phase:  prms.Phase,
			Grav:   prms.Grav,
		}
		return o, o.Init(vert)
	}
}

// Init initialises this structure
//  vert -- index of vertical axis (aligned with gravity)
func (o *Linear) Init(vert int) (err error) {

	// check
	if vert < 0 || vert > 2 {
		return chk.Err("vertical axis index must be 0, 1 or 2. %d is invalid", vert)
	}
	if o.Height < 0 || o.Period <= 0 || o.Depth <= 0 {
		return chk.Err("wave height must be non-negative and period and depth must be positive. H=%g, T=%g, h=%g", o.Height, o.Period, o.Depth)
	}
	if o.Grav == 0 {
		o.Grav = 9.81
	}
	o.vert = vert

	// direction of propagation: horizontal and unit
	o.dir = [3]float64{1, 0, 0}
	if vert == 0 {
		o.dir = [3]float64{0, 1, 0}
	}
	if len(o.Dir) > 0 {
		o.dir = [3]float64{}
		copy(o.dir[:], o.Dir)
		o.dir[vert] = 0
		norm := math.Sqrt(o.dir[0]*o.dir[0] + o.dir[1]*o.dir[1] + o.dir[2]*o.dir[2])
		if norm < 1e-14 {
			return chk.Err("direction of propagation %v has no horizontal component", o.Dir)
		}
		for i := 0; i < 3; i++ {
			o.dir[i] /= norm
		}
	}

	// dispersion relation
	o.Omega = 2.0 * math.Pi / o.Period
	o.K, err = Dispersion(o.Omega, o.Depth, o.Grav)
	return
}

// Wavelength returns the wave length
func (o Linear) Wavelength() float64 {
	return 2.0 * math.Pi / o.K
}

// Mwl returns the mean water level
func (o Linear) Mwl() float64 { return o.Level }

// Eta returns the free surface elevation above the mean water level
func (o Linear) Eta(t float64, x []float64) float64 {
	return 0.5 * o.Height * math.Cos(o.theta(t, x))
}

// U computes the orbital velocity
func (o Linear) U(u []float64, t float64, x []float64) {
	θ := o.theta(t, x)
	zb := x[o.vert] - o.Level + o.Depth
	aω := 0.5 * o.Height * o.Omega
	den := math.Sinh(o.K * o.Depth)
	uh := aω * math.Cosh(o.K*zb) / den * math.Cos(θ)
	uv := aω * math.Sinh(o.K*zb) / den * math.Sin(θ)
	for i := 0; i < 3; i++ {
		u[i] = uh * o.dir[i]
	}
	u[o.vert] = uv
}

// theta computes the phase angle
func (o Linear) theta(t float64, x []float64) float64 {
	return o.K*(o.dir[0]*x[0]+o.dir[1]*x[1]+o.dir[2]*x[2]) - o.Omega*t + o.Phase
}

// Dispersion solves ω² = g・k・tanh(k・h) for the wave number k using Newton's method
func Dispersion(ω, h, g float64) (k float64, err error) {
	ω2 := ω * ω
	k0 := ω2 / g                        // deep water
	k = k0 / math.Sqrt(math.Tanh(k0*h)) // Eckart's approximation
	for it := 0; it < 50; it++ {
		th := math.Tanh(k * h)
		f := g*k*th - ω2
		df := g*th + g*k*h*(1.0-th*th)
		δk := f / df
		k -= δk
		if math.Abs(δk) <= 1e-14*k {
			return
		}
	}
	return k, chk.Err("dispersion relation did not converge. ω=%g, h=%g, g=%g", ω, h, g)
}
